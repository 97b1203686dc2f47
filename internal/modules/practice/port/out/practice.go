package out

import "context"

// Entry is the slice of the catalog a practice question needs.
type Entry struct {
	Glyph  string
	Romaji string
	Row    string
}

// CatalogPort supplies kana material for question generation.
type CatalogPort interface {
	Sample(ctx context.Context, script, row string, count int) ([]Entry, error)
	Distractors(ctx context.Context, glyph, script string, count int) ([]Entry, error)
	// Canonical resolves a glyph to its hiragana form.
	Canonical(ctx context.Context, glyph, script string) (string, error)
}

// AttemptFact is what recording one answer produced upstream.
type AttemptFact struct {
	Consecutive int
	Mastered    bool
	Points      int
	LeveledUp   bool
	Unlocked    []Unlock
}

type Unlock struct {
	ID   string
	Name string
}

// ProgressPort records evaluated answers against the learner profile.
type ProgressPort interface {
	RecordAttempt(ctx context.Context, canonical, literal, mode string, correct bool) (AttemptFact, error)
}
