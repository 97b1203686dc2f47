package usecase

import (
	"context"
	"fmt"

	"gojuon/internal/modules/practice/domain"
	"gojuon/internal/modules/practice/dto"
	practicein "gojuon/internal/modules/practice/port/in"
	practiceout "gojuon/internal/modules/practice/port/out"
	"gojuon/internal/modules/practice/service"
	apperrors "gojuon/internal/platform/errors"
)

type Interactor struct {
	svc      *service.PracticeService
	progress practiceout.ProgressPort
}

func NewInteractor(svc *service.PracticeService, progress practiceout.ProgressPort) practicein.Usecase {
	return &Interactor{svc: svc, progress: progress}
}

func (i *Interactor) Next(ctx context.Context, input dto.NextInput) (dto.QuestionOutput, error) {
	kind := domain.Kind(input.Kind)
	if input.Kind == "" {
		kind = domain.KindRecognition
	}
	if !kind.Valid() {
		return dto.QuestionOutput{}, fmt.Errorf("%w: unknown practice kind %q", apperrors.ErrInvalidInput, input.Kind)
	}
	q, err := i.svc.Next(ctx, input.Script, kind, input.Row)
	if err != nil {
		return dto.QuestionOutput{}, err
	}
	return toQuestionOutput(q), nil
}

func (i *Interactor) Evaluate(ctx context.Context, input dto.EvaluateInput) (dto.EvaluateOutput, error) {
	q, correct, err := i.svc.Evaluate(input.Answer)
	if err != nil {
		return dto.EvaluateOutput{}, err
	}
	fact, err := i.progress.RecordAttempt(ctx, q.Canonical, q.Glyph, string(q.Kind), correct)
	if err != nil {
		return dto.EvaluateOutput{}, fmt.Errorf("record attempt: %w", err)
	}

	out := dto.EvaluateOutput{
		Correct:       correct,
		CorrectAnswer: q.Answer,
		Consecutive:   fact.Consecutive,
		Points:        fact.Points,
		LeveledUp:     fact.LeveledUp,
	}
	for _, u := range fact.Unlocked {
		out.Unlocked = append(out.Unlocked, dto.UnlockOutput{ID: u.ID, Name: u.Name})
	}
	switch {
	case correct && fact.Mastered:
		out.Feedback = "Correct! You've mastered this kana!"
	case correct:
		out.Feedback = fmt.Sprintf("Correct! %d/3 in a row", fact.Consecutive)
	default:
		out.Feedback = fmt.Sprintf("Wrong. The answer is %s", q.Answer)
	}
	return out, nil
}

func (i *Interactor) Current(ctx context.Context) (dto.QuestionOutput, error) {
	q, ok := i.svc.Current()
	if !ok {
		return dto.QuestionOutput{}, apperrors.ErrNoQuestion
	}
	return toQuestionOutput(q), nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	i.svc.Clear()
	return nil
}

func toQuestionOutput(q domain.Question) dto.QuestionOutput {
	return dto.QuestionOutput{
		Kind:    string(q.Kind),
		Glyph:   q.Glyph,
		Romaji:  q.Romaji,
		Prompt:  q.Prompt,
		Options: append([]string(nil), q.Options...),
	}
}
