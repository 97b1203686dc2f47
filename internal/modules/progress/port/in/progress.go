package in

import (
	"context"

	"gojuon/internal/modules/progress/dto"
)

type Usecase interface {
	RecordAttempt(ctx context.Context, input dto.AttemptInput) (dto.AttemptOutput, error)
	ApplyQuizResult(ctx context.Context, input dto.QuizResultInput) (dto.QuizResultOutput, error)
	MarkCard(ctx context.Context, input dto.CardMarkInput) (dto.AttemptOutput, error)
	TouchKana(ctx context.Context, glyph string) (bool, error)
	StatusOf(ctx context.Context, glyph string) (dto.StatusOutput, error)
	RecordStudyTick(ctx context.Context) error
	RecordStudyDay(ctx context.Context) (bool, error)
	RecordModeUsed(ctx context.Context, mode string) ([]dto.AchievementOutput, error)
	Overview(ctx context.Context) (dto.OverviewOutput, error)
	ScriptProgress(ctx context.Context, script string) (dto.ScriptProgressOutput, error)
	RowProgress(ctx context.Context, script string) ([]dto.RowProgressOutput, error)
	Achievements(ctx context.Context) ([]dto.AchievementOutput, error)
	Settings(ctx context.Context) (dto.SettingsOutput, error)
	UpdateSettings(ctx context.Context, input dto.SettingsInput) (dto.SettingsOutput, error)
	QuizHistory(ctx context.Context, limit int) ([]dto.QuizHistoryOutput, error)
	TroubleKanas(ctx context.Context, limit int) ([]dto.TroubleKanaOutput, error)
	ExportSnapshot(ctx context.Context, dir string) (dto.ExportOutput, error)
	ImportSnapshot(ctx context.Context, path string) error
	WriteReport(ctx context.Context, dir string) (dto.ReportOutput, error)
	Reset(ctx context.Context) error
}
