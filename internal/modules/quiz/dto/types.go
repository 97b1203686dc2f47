package dto

type StartInput struct {
	Script string
	Count  int
}

type AnswerInput struct {
	Answer string
}

type QuestionOutput struct {
	Glyph   string
	Options []string
}

type AnswerOutput struct {
	Glyph         string
	CorrectAnswer string
	Given         string
	Correct       bool
}

type UnlockOutput struct {
	ID   string
	Name string
}

type ResultOutput struct {
	Total        int
	Correct      int
	Accuracy     int
	DurationSecs int
	Points       int
	Bonus        int
	Perfect      bool
	Level        int
	LeveledUp    bool
	Unlocked     []UnlockOutput
}

// StateOutput is the full view the quiz screen renders from. Question is
// set while in progress, Result once finished. Generation stamps the
// countdown so stale ticks can be dropped.
type StateOutput struct {
	Phase         string
	Generation    int
	Index         int
	Total         int
	RemainingSecs int
	Question      *QuestionOutput
	LastAnswer    *AnswerOutput
	Result        *ResultOutput
}
