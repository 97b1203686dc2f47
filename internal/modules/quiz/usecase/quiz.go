package usecase

import (
	"context"
	"fmt"

	"gojuon/internal/modules/quiz/domain"
	"gojuon/internal/modules/quiz/dto"
	quizin "gojuon/internal/modules/quiz/port/in"
	quizout "gojuon/internal/modules/quiz/port/out"
	"gojuon/internal/modules/quiz/service"
)

type Interactor struct {
	svc     *service.QuizService
	results quizout.ResultPort
	// applied guards against folding one finished run into the profile
	// twice (an answer and a racing tick can both observe Finished).
	applied bool
	last    *dto.ResultOutput
}

func NewInteractor(svc *service.QuizService, results quizout.ResultPort) quizin.Usecase {
	return &Interactor{svc: svc, results: results}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StateOutput, error) {
	if err := i.svc.Start(ctx, input.Script, input.Count); err != nil {
		return dto.StateOutput{}, err
	}
	i.applied = false
	i.last = nil
	return i.state(), nil
}

func (i *Interactor) Answer(ctx context.Context, input dto.AnswerInput) (dto.StateOutput, error) {
	if err := i.svc.Answer(input.Answer); err != nil {
		return dto.StateOutput{}, err
	}
	if err := i.applyIfFinished(ctx); err != nil {
		return dto.StateOutput{}, err
	}
	return i.state(), nil
}

func (i *Interactor) Tick(ctx context.Context, generation int) (dto.StateOutput, error) {
	if err := i.svc.Tick(generation); err != nil {
		return dto.StateOutput{}, err
	}
	if err := i.applyIfFinished(ctx); err != nil {
		return dto.StateOutput{}, err
	}
	return i.state(), nil
}

func (i *Interactor) Stop(ctx context.Context) error {
	return i.svc.Stop()
}

func (i *Interactor) State(ctx context.Context) (dto.StateOutput, error) {
	return i.state(), nil
}

func (i *Interactor) applyIfFinished(ctx context.Context) error {
	result, ok := i.svc.Quiz().Result()
	if !ok || i.applied {
		return nil
	}
	fact, err := i.results.Apply(ctx, i.svc.Script(), result.Total, result.Correct, result.Accuracy, result.DurationSecs, result.Points)
	if err != nil {
		return fmt.Errorf("apply quiz result: %w", err)
	}
	i.applied = true
	out := dto.ResultOutput{
		Total:        result.Total,
		Correct:      result.Correct,
		Accuracy:     result.Accuracy,
		DurationSecs: result.DurationSecs,
		Points:       result.Points,
		Bonus:        result.Bonus,
		Perfect:      result.Perfect,
		Level:        fact.Level,
		LeveledUp:    fact.LeveledUp,
	}
	for _, u := range fact.Unlocked {
		out.Unlocked = append(out.Unlocked, dto.UnlockOutput{ID: u.ID, Name: u.Name})
	}
	i.last = &out
	return nil
}

func (i *Interactor) state() dto.StateOutput {
	quiz := i.svc.Quiz()
	out := dto.StateOutput{
		Phase:         string(quiz.Phase()),
		Generation:    i.svc.Generation(),
		Index:         quiz.Index(),
		Total:         quiz.Total(),
		RemainingSecs: quiz.Remaining(),
	}
	if question, ok := quiz.Current(); ok {
		out.Question = &dto.QuestionOutput{Glyph: question.Glyph, Options: append([]string(nil), question.Options...)}
	}
	if answers := quiz.Answers(); len(answers) > 0 {
		last := answers[len(answers)-1]
		out.LastAnswer = &dto.AnswerOutput{Glyph: last.Glyph, CorrectAnswer: last.CorrectAnswer, Given: last.Given, Correct: last.Correct}
	}
	if quiz.Phase() == domain.Finished {
		out.Result = i.last
	}
	return out
}
