package service

import (
	"context"
	"fmt"

	"gojuon/internal/modules/quiz/domain"
	quizout "gojuon/internal/modules/quiz/port/out"
	"gojuon/internal/platform/clock"
	apperrors "gojuon/internal/platform/errors"
	"gojuon/internal/platform/randsrc"
)

const optionCount = 4

// QuizService owns the single quiz run and its countdown generation. Every
// state change bumps the generation, which invalidates countdown callbacks
// scheduled before the change.
type QuizService struct {
	catalog    quizout.CatalogPort
	rand       randsrc.Source
	clock      clock.Clock
	quiz       *domain.Quiz
	script     string
	generation int
}

func NewQuizService(catalog quizout.CatalogPort, rand randsrc.Source, clk clock.Clock) *QuizService {
	return &QuizService{catalog: catalog, rand: rand, clock: clk, quiz: domain.NewQuiz()}
}

func (s *QuizService) Quiz() *domain.Quiz { return s.quiz }
func (s *QuizService) Generation() int    { return s.generation }
func (s *QuizService) Script() string     { return s.script }

// Start builds a question set and begins the run. A finished quiz resets
// first; one in progress is a guard violation.
func (s *QuizService) Start(ctx context.Context, script string, count int) error {
	if s.quiz.Phase() == domain.InProgress {
		return apperrors.ErrQuizActive
	}
	if count <= 0 {
		count = domain.DefaultQuestionCount
	}
	entries, err := s.catalog.Sample(ctx, script, count)
	if err != nil {
		return fmt.Errorf("sample quiz kana: %w", err)
	}

	questions := make([]domain.Question, 0, len(entries))
	for _, entry := range entries {
		options, err := s.options(ctx, entry, script)
		if err != nil {
			return err
		}
		questions = append(questions, domain.Question{Glyph: entry.Glyph, Romaji: entry.Romaji, Options: options})
	}

	s.quiz.Reset()
	if err := s.quiz.Start(questions, s.clock.Now()); err != nil {
		return err
	}
	s.script = script
	s.generation++
	return nil
}

func (s *QuizService) Answer(text string) error {
	if err := s.quiz.Answer(text, s.clock.Now()); err != nil {
		return err
	}
	s.generation++
	return nil
}

// Tick burns one second for the given generation. A stale generation means
// the countdown it belonged to is over; nothing happens.
func (s *QuizService) Tick(generation int) error {
	if generation != s.generation {
		return nil
	}
	if err := s.quiz.Tick(s.clock.Now()); err != nil {
		return err
	}
	if s.quiz.Remaining() == domain.QuestionSeconds || s.quiz.Phase() != domain.InProgress {
		// the tick timed the question out and advanced
		s.generation++
	}
	return nil
}

func (s *QuizService) Stop() error {
	if err := s.quiz.Stop(); err != nil {
		return err
	}
	s.generation++
	return nil
}

func (s *QuizService) options(ctx context.Context, entry quizout.Entry, script string) ([]string, error) {
	distractors, err := s.catalog.Distractors(ctx, entry.Glyph, script, optionCount-1)
	if err != nil {
		return nil, fmt.Errorf("distractors: %w", err)
	}
	options := make([]string, 0, optionCount)
	options = append(options, entry.Romaji)
	for _, d := range distractors {
		options = append(options, d.Romaji)
	}
	s.rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options, nil
}
