package domain

import (
	"time"

	apperrors "gojuon/internal/platform/errors"
)

// QuestionSeconds is the countdown per question.
const QuestionSeconds = 10

// DefaultQuestionCount is the standard quiz length. A smaller catalog
// shortens the quiz rather than repeating kana.
const DefaultQuestionCount = 20

// Phase is the quiz lifecycle position.
type Phase string

const (
	Idle       Phase = "idle"
	InProgress Phase = "in_progress"
	Finished   Phase = "finished"
)

// Question is one quiz prompt with its shuffled options.
type Question struct {
	Glyph   string
	Romaji  string
	Options []string
}

// Answer is one submitted (or timed-out) response.
type Answer struct {
	Glyph         string
	CorrectAnswer string
	Given         string
	Correct       bool
	TimeSpentSecs int
}

// Result summarizes a finished quiz.
type Result struct {
	Total        int
	Correct      int
	Accuracy     int
	DurationSecs int
	Points       int
	Bonus        int
	Perfect      bool
}

// Quiz is the Idle -> InProgress -> Finished -> Idle state machine. All
// methods are guard-checked; the UI prevents misuse and treats the sentinel
// errors as no-ops.
type Quiz struct {
	phase     Phase
	questions []Question
	index     int
	remaining int
	answers   []Answer
	startedAt time.Time
	result    Result
}

func NewQuiz() *Quiz {
	return &Quiz{phase: Idle}
}

func (q *Quiz) Phase() Phase      { return q.phase }
func (q *Quiz) Index() int        { return q.index }
func (q *Quiz) Total() int        { return len(q.questions) }
func (q *Quiz) Remaining() int    { return q.remaining }
func (q *Quiz) Answers() []Answer { return q.answers }

// Current returns the question in play.
func (q *Quiz) Current() (Question, bool) {
	if q.phase != InProgress || q.index >= len(q.questions) {
		return Question{}, false
	}
	return q.questions[q.index], true
}

// Result is valid once the quiz is finished.
func (q *Quiz) Result() (Result, bool) {
	if q.phase != Finished {
		return Result{}, false
	}
	return q.result, true
}

// Start begins a run over the given questions. Starting over a run already
// in progress is a guard violation; starting from Finished resets first.
func (q *Quiz) Start(questions []Question, now time.Time) error {
	if q.phase == InProgress {
		return apperrors.ErrQuizActive
	}
	if len(questions) == 0 {
		return apperrors.ErrNoQuestion
	}
	q.phase = InProgress
	q.questions = questions
	q.index = 0
	q.remaining = QuestionSeconds
	q.answers = nil
	q.startedAt = now
	q.result = Result{}
	return nil
}

// Answer records a response for the current question and advances. The
// countdown resets per question; an empty answer is how a timeout scores.
func (q *Quiz) Answer(text string, now time.Time) error {
	if q.phase != InProgress {
		return apperrors.ErrQuizNotActive
	}
	question := q.questions[q.index]
	correct := text != "" && text == question.Romaji
	q.answers = append(q.answers, Answer{
		Glyph:         question.Glyph,
		CorrectAnswer: question.Romaji,
		Given:         text,
		Correct:       correct,
		TimeSpentSecs: QuestionSeconds - q.remaining,
	})

	q.index++
	q.remaining = QuestionSeconds
	if q.index >= len(q.questions) {
		q.finish(now)
	}
	return nil
}

// Tick burns one countdown second; at zero the question times out as an
// empty, incorrect answer.
func (q *Quiz) Tick(now time.Time) error {
	if q.phase != InProgress {
		return apperrors.ErrQuizNotActive
	}
	q.remaining--
	if q.remaining <= 0 {
		return q.Answer("", now)
	}
	return nil
}

// Stop abandons the run and discards its answers.
func (q *Quiz) Stop() error {
	if q.phase != InProgress {
		return apperrors.ErrQuizNotActive
	}
	q.phase = Idle
	q.questions = nil
	q.answers = nil
	q.index = 0
	q.remaining = 0
	return nil
}

// Reset returns a finished quiz to Idle so a new run can start.
func (q *Quiz) Reset() {
	if q.phase == Finished {
		q.phase = Idle
		q.questions = nil
		q.answers = nil
		q.index = 0
	}
}

func (q *Quiz) finish(now time.Time) {
	correct := 0
	for _, a := range q.answers {
		if a.Correct {
			correct++
		}
	}
	total := len(q.answers)
	accuracy := 0
	if total > 0 {
		accuracy = int(float64(correct)/float64(total)*100 + 0.5)
	}
	bonus := AccuracyBonus(accuracy)
	q.result = Result{
		Total:        total,
		Correct:      correct,
		Accuracy:     accuracy,
		DurationSecs: int(now.Sub(q.startedAt).Seconds()),
		Points:       correct*PointsPerQuestion + bonus,
		Bonus:        bonus,
		Perfect:      total > 0 && correct == total,
	}
	q.phase = Finished
}

// PointsPerQuestion is the base award per correct quiz answer.
const PointsPerQuestion = 10

// AccuracyBonus is the extra award for a strong run.
func AccuracyBonus(accuracy int) int {
	switch {
	case accuracy >= 90:
		return 50
	case accuracy >= 80:
		return 30
	case accuracy >= 70:
		return 20
	default:
		return 0
	}
}
