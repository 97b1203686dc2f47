package service

import (
	"fmt"

	"gojuon/internal/modules/catalog/domain"
	apperrors "gojuon/internal/platform/errors"
	"gojuon/internal/platform/randsrc"
)

// CatalogService answers queries over the static kana tables. The random
// source is injected so sampling and distractor selection are reproducible
// in tests.
type CatalogService struct {
	rand randsrc.Source
}

func NewCatalogService(rand randsrc.Source) *CatalogService {
	return &CatalogService{rand: rand}
}

func (s *CatalogService) List(script domain.Script, includeArchaic bool) []domain.KanaEntry {
	entries := domain.Entries(script)
	if includeArchaic {
		out := make([]domain.KanaEntry, len(entries))
		copy(out, entries)
		return out
	}
	out := make([]domain.KanaEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Archaic() {
			out = append(out, e)
		}
	}
	return out
}

func (s *CatalogService) Lookup(glyph string, script domain.Script) (domain.KanaEntry, error) {
	for _, e := range domain.Entries(script) {
		if e.Glyph == glyph {
			return e, nil
		}
	}
	return domain.KanaEntry{}, fmt.Errorf("%w: %q in %s", apperrors.ErrKanaNotFound, glyph, script)
}

func (s *CatalogService) ByRow(row string, script domain.Script) ([]domain.KanaEntry, error) {
	if _, ok := domain.RowTitles[row]; !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownRow, row)
	}
	var out []domain.KanaEntry
	for _, e := range domain.Entries(script) {
		if e.Row == row {
			out = append(out, e)
		}
	}
	return out, nil
}

// Sample draws n distinct entries uniformly without replacement. Requests
// beyond the available pool return the whole pool.
func (s *CatalogService) Sample(n int, script domain.Script, row string, includeArchaic bool) []domain.KanaEntry {
	pool := s.List(script, includeArchaic)
	if row != "" {
		filtered := pool[:0]
		for _, e := range pool {
			if e.Row == row {
				filtered = append(filtered, e)
			}
		}
		pool = filtered
	}
	s.rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// Distractors picks up to k wrong options for target, preferring the same row
// or a difficulty within one tier, then backfilling from the rest of the
// non-archaic catalog. Archaic glyphs and the target itself never qualify.
func (s *CatalogService) Distractors(target domain.KanaEntry, script domain.Script, k int) []domain.KanaEntry {
	var preferred, rest []domain.KanaEntry
	for _, e := range domain.Entries(script) {
		if e.Glyph == target.Glyph || e.Archaic() {
			continue
		}
		if e.Row == target.Row || abs(e.Difficulty-target.Difficulty) <= 1 {
			preferred = append(preferred, e)
		} else {
			rest = append(rest, e)
		}
	}
	s.rand.Shuffle(len(preferred), func(i, j int) {
		preferred[i], preferred[j] = preferred[j], preferred[i]
	})
	if len(preferred) < k {
		s.rand.Shuffle(len(rest), func(i, j int) {
			rest[i], rest[j] = rest[j], rest[i]
		})
		preferred = append(preferred, rest...)
	}
	if k > len(preferred) {
		k = len(preferred)
	}
	return preferred[:k]
}

// Correspond maps a glyph to its counterpart in the other script via the
// shared (romaji, row) pair. Absence is an expected result for the archaic
// asymmetries, reported as ErrNoCorrespondence.
func (s *CatalogService) Correspond(glyph string, from, to domain.Script) (domain.KanaEntry, error) {
	src, err := s.Lookup(glyph, from)
	if err != nil {
		return domain.KanaEntry{}, err
	}
	for _, e := range domain.Entries(to) {
		if e.Romaji == src.Romaji && e.Row == src.Row {
			return e, nil
		}
	}
	return domain.KanaEntry{}, fmt.Errorf("%w: %q in %s", apperrors.ErrNoCorrespondence, glyph, to)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
