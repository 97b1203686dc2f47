package domain

import "strings"

// Kind selects how a question prompts and accepts its answer.
type Kind string

const (
	// KindRecognition shows a kana and offers romaji options.
	KindRecognition Kind = "recognition"
	// KindListening is recognition with the kana voiced by the UI; the
	// answer is still the romanization.
	KindListening Kind = "listening"
	// KindWriting shows romaji and accepts a typed kana.
	KindWriting Kind = "writing"
)

func (k Kind) Valid() bool {
	return k == KindRecognition || k == KindListening || k == KindWriting
}

// Phase is the round's position in the answer cycle.
type Phase string

const (
	AwaitingAnswer Phase = "awaiting"
	Evaluated      Phase = "evaluated"
)

// Question is one generated practice prompt. Canonical is the hiragana key
// the mastery record lives under; Glyph is the literal form shown.
type Question struct {
	Kind      Kind
	Glyph     string
	Canonical string
	Romaji    string
	Prompt    string
	Options   []string
	Answer    string
}

// Round pairs a question with its phase so a second evaluation of the same
// question cannot happen.
type Round struct {
	Question Question
	Phase    Phase
}

// Check compares a raw answer against the question: trimmed and
// case-insensitive, which leaves kana untouched.
func (q Question) Check(raw string) bool {
	return strings.ToLower(strings.TrimSpace(raw)) == strings.ToLower(q.Answer)
}
