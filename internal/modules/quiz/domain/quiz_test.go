package domain_test

import (
	"errors"
	"testing"
	"time"

	"gojuon/internal/modules/quiz/domain"
	apperrors "gojuon/internal/platform/errors"
)

func questions(n int) []domain.Question {
	qs := make([]domain.Question, 0, n)
	romaji := []string{"a", "i", "u", "e", "o"}
	glyphs := []string{"あ", "い", "う", "え", "お"}
	for i := 0; i < n; i++ {
		qs = append(qs, domain.Question{Glyph: glyphs[i%5], Romaji: romaji[i%5]})
	}
	return qs
}

func TestStartGuards(t *testing.T) {
	t.Parallel()
	q := domain.NewQuiz()
	now := time.Now()

	if err := q.Start(nil, now); !errors.Is(err, apperrors.ErrNoQuestion) {
		t.Fatalf("empty start: err = %v, want ErrNoQuestion", err)
	}
	if err := q.Start(questions(3), now); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := q.Start(questions(3), now); !errors.Is(err, apperrors.ErrQuizActive) {
		t.Fatalf("double start: err = %v, want ErrQuizActive", err)
	}
}

func TestAnswerAdvancesAndFinishes(t *testing.T) {
	t.Parallel()
	q := domain.NewQuiz()
	start := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	if err := q.Start(questions(2), start); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := q.Answer("a", start.Add(4*time.Second)); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if q.Index() != 1 || q.Remaining() != domain.QuestionSeconds {
		t.Fatalf("index %d remaining %d, want 1 and a fresh countdown", q.Index(), q.Remaining())
	}

	if err := q.Answer("wrong", start.Add(9*time.Second)); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	result, ok := q.Result()
	if !ok {
		t.Fatal("quiz should be finished")
	}
	if result.Total != 2 || result.Correct != 1 || result.Accuracy != 50 {
		t.Fatalf("result = %+v", result)
	}
	if result.DurationSecs != 9 {
		t.Fatalf("duration = %d, want 9", result.DurationSecs)
	}
	if result.Points != 1*domain.PointsPerQuestion {
		t.Fatalf("points = %d, want %d", result.Points, domain.PointsPerQuestion)
	}
}

func TestTickTimesOutAsWrongAnswer(t *testing.T) {
	t.Parallel()
	q := domain.NewQuiz()
	now := time.Now()
	if err := q.Start(questions(2), now); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := 0; i < domain.QuestionSeconds; i++ {
		if err := q.Tick(now); err != nil {
			t.Fatalf("Tick %d: %v", i, err)
		}
	}
	answers := q.Answers()
	if len(answers) != 1 {
		t.Fatalf("answers = %d, want the timed-out question recorded", len(answers))
	}
	if answers[0].Correct || answers[0].Given != "" {
		t.Fatalf("timeout answer = %+v, want empty and wrong", answers[0])
	}
	if answers[0].TimeSpentSecs != domain.QuestionSeconds {
		t.Fatalf("time spent = %d, want %d", answers[0].TimeSpentSecs, domain.QuestionSeconds)
	}
	if q.Index() != 1 {
		t.Fatalf("index = %d, want 1", q.Index())
	}
}

func TestStopDiscardsRun(t *testing.T) {
	t.Parallel()
	q := domain.NewQuiz()
	now := time.Now()

	if err := q.Stop(); !errors.Is(err, apperrors.ErrQuizNotActive) {
		t.Fatalf("stop while idle: err = %v, want ErrQuizNotActive", err)
	}
	if err := q.Start(questions(3), now); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := q.Answer("a", now); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if err := q.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if q.Phase() != domain.Idle || len(q.Answers()) != 0 {
		t.Fatalf("after stop: phase %s answers %d, want idle and none", q.Phase(), len(q.Answers()))
	}
	if err := q.Start(questions(3), now); err != nil {
		t.Fatalf("restart after stop: %v", err)
	}
}

func TestPerfectRunScoring(t *testing.T) {
	t.Parallel()
	q := domain.NewQuiz()
	start := time.Now()
	qs := questions(20)
	if err := q.Start(qs, start); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for _, question := range qs {
		if err := q.Answer(question.Romaji, start.Add(time.Minute)); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}
	result, ok := q.Result()
	if !ok {
		t.Fatal("quiz should be finished")
	}
	if !result.Perfect || result.Accuracy != 100 {
		t.Fatalf("result = %+v, want perfect", result)
	}
	if result.Points != 20*domain.PointsPerQuestion+50 {
		t.Fatalf("points = %d, want 250", result.Points)
	}
}

func TestAccuracyBonus(t *testing.T) {
	t.Parallel()
	cases := []struct {
		accuracy int
		want     int
	}{
		{100, 50}, {90, 50}, {89, 30}, {80, 30}, {79, 20}, {70, 20}, {69, 0}, {0, 0},
	}
	for _, tc := range cases {
		if got := domain.AccuracyBonus(tc.accuracy); got != tc.want {
			t.Errorf("AccuracyBonus(%d) = %d, want %d", tc.accuracy, got, tc.want)
		}
	}
}
