package usecase

import (
	"context"
	"fmt"

	"gojuon/internal/modules/flashcard/domain"
	"gojuon/internal/modules/flashcard/dto"
	flashcardin "gojuon/internal/modules/flashcard/port/in"
	flashcardout "gojuon/internal/modules/flashcard/port/out"
	"gojuon/internal/modules/flashcard/service"
)

type Interactor struct {
	svc      *service.FlashcardService
	progress flashcardout.ProgressPort
}

func NewInteractor(svc *service.FlashcardService, progress flashcardout.ProgressPort) flashcardin.Usecase {
	return &Interactor{svc: svc, progress: progress}
}

func (i *Interactor) Load(ctx context.Context, input dto.LoadInput) (dto.CardOutput, error) {
	deck, err := i.svc.Load(ctx, input.Script)
	if err != nil {
		return dto.CardOutput{}, err
	}
	return toCardOutput(deck), nil
}

func (i *Interactor) Current(ctx context.Context) (dto.CardOutput, error) {
	deck, err := i.svc.Deck()
	if err != nil {
		return dto.CardOutput{}, err
	}
	return toCardOutput(deck), nil
}

func (i *Interactor) Flip(ctx context.Context) (dto.CardOutput, error) {
	deck, err := i.svc.Deck()
	if err != nil {
		return dto.CardOutput{}, err
	}
	deck.Flip()
	return toCardOutput(deck), nil
}

func (i *Interactor) Next(ctx context.Context) (dto.CardOutput, error) {
	deck, err := i.svc.Deck()
	if err != nil {
		return dto.CardOutput{}, err
	}
	deck.Next()
	return toCardOutput(deck), nil
}

func (i *Interactor) Prev(ctx context.Context) (dto.CardOutput, error) {
	deck, err := i.svc.Deck()
	if err != nil {
		return dto.CardOutput{}, err
	}
	deck.Prev()
	return toCardOutput(deck), nil
}

func (i *Interactor) Shuffle(ctx context.Context) (dto.CardOutput, error) {
	deck, err := i.svc.Shuffle()
	if err != nil {
		return dto.CardOutput{}, err
	}
	return toCardOutput(deck), nil
}

func (i *Interactor) MarkEasy(ctx context.Context) (dto.MarkOutput, error) {
	return i.mark(ctx, true)
}

func (i *Interactor) MarkDifficult(ctx context.Context) (dto.MarkOutput, error) {
	return i.mark(ctx, false)
}

// mark records the self-assessment for the current card and advances.
func (i *Interactor) mark(ctx context.Context, easy bool) (dto.MarkOutput, error) {
	deck, err := i.svc.Deck()
	if err != nil {
		return dto.MarkOutput{}, err
	}
	card := deck.Current()
	fact, err := i.progress.Mark(ctx, card.Canonical, card.Glyph, easy)
	if err != nil {
		return dto.MarkOutput{}, fmt.Errorf("mark card: %w", err)
	}
	deck.Next()

	out := dto.MarkOutput{
		Glyph:     card.Glyph,
		Status:    fact.Status,
		Points:    fact.Points,
		LeveledUp: fact.LeveledUp,
	}
	for _, u := range fact.Unlocked {
		out.Unlocked = append(out.Unlocked, dto.UnlockOutput{ID: u.ID, Name: u.Name})
	}
	return out, nil
}

func toCardOutput(deck *domain.Deck) dto.CardOutput {
	card := deck.Current()
	return dto.CardOutput{
		Glyph:   card.Glyph,
		Romaji:  card.Romaji,
		Index:   deck.Index(),
		Total:   deck.Count(),
		Flipped: deck.Flipped(),
	}
}
