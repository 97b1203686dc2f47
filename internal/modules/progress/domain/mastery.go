package domain

import "time"

// Status is the learning state of a single kana record.
type Status string

const (
	Unseen   Status = "unseen"
	Learning Status = "learning"
	Mastered Status = "mastered"
)

// MasteryThreshold is the consecutive-correct count that promotes a kana.
const MasteryThreshold = 3

// KanaStats holds per-glyph attempt accounting. Records are keyed by the
// hiragana canonical glyph; both scripts of a sound share one record.
type KanaStats struct {
	TotalAttempts      int       `json:"total_attempts"`
	CorrectAttempts    int       `json:"correct_attempts"`
	ConsecutiveCorrect int       `json:"consecutive_correct"`
	LastAttempt        time.Time `json:"last_attempt"`
}

// MasteryDelta describes the status transition produced by one attempt.
type MasteryDelta struct {
	Glyph   string
	From    Status
	To      Status
	Correct bool
}

// MasteryBook tracks every kana's stats and status. Created records are
// never removed except by Reset.
type MasteryBook struct {
	Stats    map[string]*KanaStats
	mastered map[string]bool
	learning map[string]bool
}

func NewMasteryBook() *MasteryBook {
	return &MasteryBook{
		Stats:    map[string]*KanaStats{},
		mastered: map[string]bool{},
		learning: map[string]bool{},
	}
}

func (b *MasteryBook) StatusOf(glyph string) Status {
	switch {
	case b.mastered[glyph]:
		return Mastered
	case b.learning[glyph]:
		return Learning
	default:
		return Unseen
	}
}

func (b *MasteryBook) stats(glyph string) *KanaStats {
	s, ok := b.Stats[glyph]
	if !ok {
		s = &KanaStats{}
		b.Stats[glyph] = s
	}
	return s
}

// RecordAttempt applies one answer. Attempt accounting and the streak live
// on the canonical (hiragana) record, so both scripts of a sound share one
// learning history; mastered/learning membership moves the literal glyph
// that was practiced, so each script's progress display counts its own
// glyphs. A correct attempt extends the streak and promotes at the
// threshold; a wrong one zeroes the streak and demotes mastered back to
// learning, never to unseen.
func (b *MasteryBook) RecordAttempt(canonical, literal string, correct bool, now time.Time) MasteryDelta {
	from := b.StatusOf(literal)
	s := b.stats(canonical)
	s.TotalAttempts++
	s.LastAttempt = now

	if correct {
		s.CorrectAttempts++
		s.ConsecutiveCorrect++
		if s.ConsecutiveCorrect >= MasteryThreshold {
			b.mastered[literal] = true
			delete(b.learning, literal)
		} else {
			b.learning[literal] = true
		}
	} else {
		s.ConsecutiveCorrect = 0
		delete(b.mastered, literal)
		b.learning[literal] = true
	}
	return MasteryDelta{Glyph: literal, From: from, To: b.StatusOf(literal), Correct: correct}
}

// Touch marks an unseen kana as learning, as the browse grid does on first
// interaction. Mastered and learning records are left alone.
func (b *MasteryBook) Touch(glyph string) bool {
	if b.mastered[glyph] || b.learning[glyph] {
		return false
	}
	b.learning[glyph] = true
	return true
}

// ForceMastered promotes a kana directly, used when a flashcard is marked
// easy. The streak is pinned at the threshold so a later wrong answer
// demotes normally.
func (b *MasteryBook) ForceMastered(canonical, literal string, now time.Time) MasteryDelta {
	from := b.StatusOf(literal)
	s := b.stats(canonical)
	s.ConsecutiveCorrect = MasteryThreshold
	s.LastAttempt = now
	b.mastered[literal] = true
	delete(b.learning, literal)
	return MasteryDelta{Glyph: literal, From: from, To: Mastered, Correct: true}
}

// Demote resets a kana's streak and moves it to learning, used when a
// flashcard is marked difficult.
func (b *MasteryBook) Demote(canonical, literal string, now time.Time) MasteryDelta {
	from := b.StatusOf(literal)
	s := b.stats(canonical)
	s.ConsecutiveCorrect = 0
	s.LastAttempt = now
	delete(b.mastered, literal)
	b.learning[literal] = true
	return MasteryDelta{Glyph: literal, From: from, To: Learning}
}

// MasteredCount counts how many of the given glyphs are mastered by literal
// glyph membership. Progress displays count each script's own glyphs even
// though transitions share the hiragana record.
func (b *MasteryBook) MasteredCount(glyphs []string) int {
	n := 0
	for _, g := range glyphs {
		if b.mastered[g] {
			n++
		}
	}
	return n
}

func (b *MasteryBook) LearningCount(glyphs []string) int {
	n := 0
	for _, g := range glyphs {
		if b.learning[g] {
			n++
		}
	}
	return n
}

func (b *MasteryBook) MasteredGlyphs() []string { return setToList(b.mastered) }
func (b *MasteryBook) LearningGlyphs() []string { return setToList(b.learning) }

func (b *MasteryBook) Reset() {
	b.Stats = map[string]*KanaStats{}
	b.mastered = map[string]bool{}
	b.learning = map[string]bool{}
}
