package out

import (
	"context"

	progressdto "gojuon/internal/modules/progress/dto"
	progressin "gojuon/internal/modules/progress/port/in"
	quizout "gojuon/internal/modules/quiz/port/out"
)

// ProgressAdapter folds finished quizzes into the learner profile.
type ProgressAdapter struct {
	progress progressin.Usecase
}

func NewProgressAdapter(progress progressin.Usecase) quizout.ResultPort {
	return &ProgressAdapter{progress: progress}
}

func (a *ProgressAdapter) Apply(ctx context.Context, script string, total, correct, accuracy, durationSecs, points int) (quizout.ResultFact, error) {
	out, err := a.progress.ApplyQuizResult(ctx, progressdto.QuizResultInput{
		Script:       script,
		Total:        total,
		Correct:      correct,
		Accuracy:     accuracy,
		DurationSecs: durationSecs,
		Points:       points,
	})
	if err != nil {
		return quizout.ResultFact{}, err
	}
	fact := quizout.ResultFact{Level: out.Level, LeveledUp: out.LeveledUp, Perfect: out.Perfect}
	for _, u := range out.Unlocked {
		fact.Unlocked = append(fact.Unlocked, quizout.Unlock{ID: u.ID, Name: u.Name})
	}
	return fact, nil
}
