package out

import (
	"context"

	"gojuon/internal/modules/progress/domain"
)

// ProfileStore persists the progress/mastery bundle. Load returns
// (zero, false, nil) when no prior data exists or the stored document is
// unreadable; both mean a fresh profile.
type ProfileStore interface {
	Load(ctx context.Context) (domain.Snapshot, bool, error)
	Save(ctx context.Context, snap domain.Snapshot) error
}

// SettingsStore persists the settings bundle.
type SettingsStore interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}

// AttemptLog records answer and quiz history for the dashboard and CLI.
type AttemptLog interface {
	AppendAttempt(ctx context.Context, rec domain.AttemptRecord) error
	AppendQuiz(ctx context.Context, rec domain.QuizRecord) error
	RecentQuizzes(ctx context.Context, limit int) ([]domain.QuizRecord, error)
	GlyphAggregates(ctx context.Context, minAttempts, limit int) ([]domain.GlyphAggregate, error)
	Reset(ctx context.Context) error
}

// KanaIndex exposes the catalog glyph lists the progress views need,
// keeping this module decoupled from the catalog packages.
type KanaIndex interface {
	Glyphs(ctx context.Context, script string) ([]string, error)
	RowGlyphs(ctx context.Context, script string) ([]RowGlyphs, error)
}

type RowGlyphs struct {
	Row    string
	Title  string
	Glyphs []string
}

// ExportWriter renders snapshots and reports to files and reads
// snapshots back for import.
type ExportWriter interface {
	WriteSnapshot(ctx context.Context, snap domain.Snapshot, dir string) (string, error)
	ReadSnapshot(ctx context.Context, path string) (domain.Snapshot, error)
	WriteReport(ctx context.Context, report Report, dir string) (string, error)
}

// Report is the read-only projection behind the human-readable export.
type Report struct {
	GeneratedAt   string
	Level         int
	LevelTitle    string
	Points        int
	Accuracy      int
	StudyDays     int
	StudyHours    int
	StudyStreak   int
	MaxStreak     int
	PerfectCount  int
	MasteredCount int
	LearningCount int
	KanaTotal     int
	OverallPct    int
	Rows          []ReportRow
	Achievements  []ReportAchievement
	TroubleKanas  []ReportTrouble
}

type ReportRow struct {
	Title    string
	Total    int
	Mastered int
	Learning int
	Percent  int
}

type ReportAchievement struct {
	Name        string
	Description string
}

type ReportTrouble struct {
	Glyph    string
	Attempts int
	Accuracy int
}
