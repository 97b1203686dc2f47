package dto

import "time"

type AttemptInput struct {
	// Glyph is the literal kana that was shown; Canonical is its hiragana
	// form, which keys the shared learning record. Empty Canonical means
	// the glyph is its own canonical form.
	Glyph     string
	Canonical string
	Mode      string
	Correct   bool
}

type AttemptOutput struct {
	Glyph       string
	From        string
	To          string
	Consecutive int
	Points      int
	Level       int
	LeveledUp   bool
	Unlocked    []AchievementOutput
}

type QuizResultInput struct {
	Script       string
	Total        int
	Correct      int
	Accuracy     int
	DurationSecs int
	Points       int
}

type QuizResultOutput struct {
	Points    int
	Level     int
	LeveledUp bool
	Perfect   bool
	Unlocked  []AchievementOutput
}

type CardMarkInput struct {
	Glyph     string
	Canonical string
	Easy      bool
}

type AchievementOutput struct {
	ID          string
	Name        string
	Description string
	Unlocked    bool
}

type StatusOutput struct {
	Glyph       string
	Status      string
	Attempts    int
	Correct     int
	Consecutive int
}

type OverviewOutput struct {
	Level            int
	LevelTitle       string
	Points           int
	NextLevelPoints  int
	Accuracy         int
	TotalQuestions   int
	CorrectAnswers   int
	CurrentStreak    int
	MaxStreak        int
	StudyMinutes     int
	StudyDays        int
	StudyDayStreak   int
	PerfectQuizzes   int
	MasteredTotal    int
	LearningTotal    int
	KanaTotal        int
	OverallPercent   int
	UnlockedCount    int
	AchievementCount int
}

type ScriptProgressOutput struct {
	Script   string
	Total    int
	Mastered int
	Learning int
	Percent  int
}

type RowProgressOutput struct {
	Row      string
	Title    string
	Total    int
	Mastered int
	Learning int
	Percent  int
}

type SettingsOutput struct {
	DefaultScript     string
	QuizQuestionCount int
}

type SettingsInput struct {
	DefaultScript     string
	QuizQuestionCount int
}

type QuizHistoryOutput struct {
	ID           string
	Script       string
	Total        int
	Correct      int
	Accuracy     int
	DurationSecs int
	Points       int
	FinishedAt   time.Time
}

type TroubleKanaOutput struct {
	Glyph    string
	Attempts int
	Accuracy int
}

type ExportOutput struct {
	Path string
}

type ReportOutput struct {
	Path string
}
