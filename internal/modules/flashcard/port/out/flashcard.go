package out

import "context"

// Entry is the catalog material one card is built from.
type Entry struct {
	Glyph     string
	Canonical string
	Romaji    string
}

// CatalogPort lists the card material for a script.
type CatalogPort interface {
	Cards(ctx context.Context, script string) ([]Entry, error)
}

// MarkFact is what a self-assessment produced upstream.
type MarkFact struct {
	Status    string
	Points    int
	LeveledUp bool
	Unlocked  []Unlock
}

type Unlock struct {
	ID   string
	Name string
}

// ProgressPort records card self-assessments against the learner profile.
type ProgressPort interface {
	Mark(ctx context.Context, canonical, literal string, easy bool) (MarkFact, error)
}
