package out

import (
	"context"

	flashcardout "gojuon/internal/modules/flashcard/port/out"
	progressdto "gojuon/internal/modules/progress/dto"
	progressin "gojuon/internal/modules/progress/port/in"
)

// ProgressAdapter forwards card self-assessments to the progress module.
type ProgressAdapter struct {
	progress progressin.Usecase
}

func NewProgressAdapter(progress progressin.Usecase) flashcardout.ProgressPort {
	return &ProgressAdapter{progress: progress}
}

func (a *ProgressAdapter) Mark(ctx context.Context, canonical, literal string, easy bool) (flashcardout.MarkFact, error) {
	out, err := a.progress.MarkCard(ctx, progressdto.CardMarkInput{Glyph: literal, Canonical: canonical, Easy: easy})
	if err != nil {
		return flashcardout.MarkFact{}, err
	}
	fact := flashcardout.MarkFact{
		Status:    out.To,
		Points:    out.Points,
		LeveledUp: out.LeveledUp,
	}
	for _, u := range out.Unlocked {
		fact.Unlocked = append(fact.Unlocked, flashcardout.Unlock{ID: u.ID, Name: u.Name})
	}
	return fact, nil
}
