package out

import "context"

// Entry is the catalog material a quiz question is built from.
type Entry struct {
	Glyph  string
	Romaji string
}

// CatalogPort supplies the question pool and option fillers.
type CatalogPort interface {
	Sample(ctx context.Context, script string, count int) ([]Entry, error)
	Distractors(ctx context.Context, glyph, script string, count int) ([]Entry, error)
}

// ResultFact is what folding a finished quiz into the profile produced.
type ResultFact struct {
	Level     int
	LeveledUp bool
	Perfect   bool
	Unlocked  []Unlock
}

type Unlock struct {
	ID   string
	Name string
}

// ResultPort hands a finished run to the progress tracker and history log.
type ResultPort interface {
	Apply(ctx context.Context, script string, total, correct, accuracy, durationSecs, points int) (ResultFact, error)
}
