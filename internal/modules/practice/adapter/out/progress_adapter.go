package out

import (
	"context"

	practiceout "gojuon/internal/modules/practice/port/out"
	progressdto "gojuon/internal/modules/progress/dto"
	progressin "gojuon/internal/modules/progress/port/in"
)

// ProgressAdapter forwards evaluated answers to the progress module.
type ProgressAdapter struct {
	progress progressin.Usecase
}

func NewProgressAdapter(progress progressin.Usecase) practiceout.ProgressPort {
	return &ProgressAdapter{progress: progress}
}

func (a *ProgressAdapter) RecordAttempt(ctx context.Context, canonical, literal, mode string, correct bool) (practiceout.AttemptFact, error) {
	out, err := a.progress.RecordAttempt(ctx, progressdto.AttemptInput{
		Glyph:     literal,
		Canonical: canonical,
		Mode:      mode,
		Correct:   correct,
	})
	if err != nil {
		return practiceout.AttemptFact{}, err
	}
	fact := practiceout.AttemptFact{
		Consecutive: out.Consecutive,
		Mastered:    out.To == "mastered",
		Points:      out.Points,
		LeveledUp:   out.LeveledUp,
	}
	for _, a := range out.Unlocked {
		fact.Unlocked = append(fact.Unlocked, practiceout.Unlock{ID: a.ID, Name: a.Name})
	}
	return fact, nil
}
