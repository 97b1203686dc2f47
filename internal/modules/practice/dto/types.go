package dto

type NextInput struct {
	Script string
	Kind   string
	Row    string
}

type QuestionOutput struct {
	Kind    string
	Glyph   string
	Romaji  string
	Prompt  string
	Options []string
}

type EvaluateInput struct {
	Answer string
}

type UnlockOutput struct {
	ID   string
	Name string
}

type EvaluateOutput struct {
	Correct       bool
	CorrectAnswer string
	Feedback      string
	Consecutive   int
	Points        int
	LeveledUp     bool
	Unlocked      []UnlockOutput
}
