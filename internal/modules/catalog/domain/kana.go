package domain

import (
	"fmt"

	apperrors "gojuon/internal/platform/errors"
)

// Script selects one of the two kana syllabaries.
type Script string

const (
	Hiragana Script = "hiragana"
	Katakana Script = "katakana"
)

func (s Script) Validate() error {
	switch s {
	case Hiragana, Katakana:
		return nil
	default:
		return fmt.Errorf("%w: script %q", apperrors.ErrInvalidInput, string(s))
	}
}

// Other returns the opposite script.
func (s Script) Other() Script {
	if s == Hiragana {
		return Katakana
	}
	return Hiragana
}

// Difficulty tiers run 1..4. Tier 4 marks archaic glyphs (ゐ ゑ ヰ ヱ) that
// are excluded from practice, quizzes, and mastery accounting.
const ArchaicTier = 4

type KanaEntry struct {
	Glyph      string `json:"glyph"`
	Romaji     string `json:"romaji"`
	Row        string `json:"row"`
	Difficulty int    `json:"difficulty"`
}

func (e KanaEntry) Archaic() bool {
	return e.Difficulty >= ArchaicTier
}

// Rows in gojūon order. The grid layout below references these by index.
var Rows = []string{
	"a-row", "ka-row", "sa-row", "ta-row", "na-row",
	"ha-row", "ma-row", "ya-row", "ra-row", "wa-row", "n-row",
}

// RowTitles maps row identifiers to their display headers (あ行 etc.).
var RowTitles = map[string]string{
	"a-row":  "あ行",
	"ka-row": "か行",
	"sa-row": "さ行",
	"ta-row": "た行",
	"na-row": "な行",
	"ha-row": "は行",
	"ma-row": "ま行",
	"ya-row": "や行",
	"ra-row": "ら行",
	"wa-row": "わ行",
	"n-row":  "ん行",
}
