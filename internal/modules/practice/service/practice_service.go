package service

import (
	"context"
	"fmt"

	"gojuon/internal/modules/practice/domain"
	practiceout "gojuon/internal/modules/practice/port/out"
	apperrors "gojuon/internal/platform/errors"
	"gojuon/internal/platform/randsrc"
)

// optionCount is the number of choices shown per multiple-choice question.
const optionCount = 4

// PracticeService generates questions and tracks the one round in flight.
type PracticeService struct {
	catalog practiceout.CatalogPort
	rand    randsrc.Source
	round   *domain.Round
}

func NewPracticeService(catalog practiceout.CatalogPort, rand randsrc.Source) *PracticeService {
	return &PracticeService{catalog: catalog, rand: rand}
}

// Next draws a fresh question and replaces any round in flight. There is no
// anti-repeat: the same kana may come up twice in a row.
func (s *PracticeService) Next(ctx context.Context, script string, kind domain.Kind, row string) (domain.Question, error) {
	entries, err := s.catalog.Sample(ctx, script, row, 1)
	if err != nil {
		return domain.Question{}, fmt.Errorf("sample kana: %w", err)
	}
	if len(entries) == 0 {
		return domain.Question{}, fmt.Errorf("%w: no kana available", apperrors.ErrNoQuestion)
	}
	entry := entries[0]

	canonical, err := s.catalog.Canonical(ctx, entry.Glyph, script)
	if err != nil {
		canonical = entry.Glyph
	}

	q := domain.Question{
		Kind:      kind,
		Glyph:     entry.Glyph,
		Canonical: canonical,
		Romaji:    entry.Romaji,
	}
	switch kind {
	case domain.KindWriting:
		q.Prompt = entry.Romaji
		q.Answer = entry.Glyph
	default:
		// Recognition and listening share a shape: the kana is shown (or
		// spoken) and the learner picks its romanization.
		q.Prompt = entry.Glyph
		q.Answer = entry.Romaji
		options, err := s.options(ctx, entry, script, func(e practiceout.Entry) string { return e.Romaji })
		if err != nil {
			return domain.Question{}, err
		}
		q.Options = options
	}

	s.round = &domain.Round{Question: q, Phase: domain.AwaitingAnswer}
	return q, nil
}

// Evaluate closes the round in flight. A second call without a new question
// reports ErrNoQuestion.
func (s *PracticeService) Evaluate(raw string) (domain.Question, bool, error) {
	if s.round == nil || s.round.Phase != domain.AwaitingAnswer {
		return domain.Question{}, false, apperrors.ErrNoQuestion
	}
	s.round.Phase = domain.Evaluated
	return s.round.Question, s.round.Question.Check(raw), nil
}

func (s *PracticeService) Current() (domain.Question, bool) {
	if s.round == nil || s.round.Phase != domain.AwaitingAnswer {
		return domain.Question{}, false
	}
	return s.round.Question, true
}

func (s *PracticeService) Clear() {
	s.round = nil
}

// options builds the shuffled choice list: the right answer plus distinct
// distractors, with the correct position randomized.
func (s *PracticeService) options(ctx context.Context, entry practiceout.Entry, script string, text func(practiceout.Entry) string) ([]string, error) {
	distractors, err := s.catalog.Distractors(ctx, entry.Glyph, script, optionCount-1)
	if err != nil {
		return nil, fmt.Errorf("distractors: %w", err)
	}
	options := make([]string, 0, optionCount)
	options = append(options, text(entry))
	for _, d := range distractors {
		options = append(options, text(d))
	}
	s.rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options, nil
}
