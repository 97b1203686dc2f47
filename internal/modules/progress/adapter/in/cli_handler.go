package in

import (
	"context"

	"gojuon/internal/modules/progress/dto"
	progressin "gojuon/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	return h.usecase.Overview(ctx)
}

func (h CLIHandler) RowProgress(ctx context.Context, script string) ([]dto.RowProgressOutput, error) {
	return h.usecase.RowProgress(ctx, script)
}

func (h CLIHandler) Achievements(ctx context.Context) ([]dto.AchievementOutput, error) {
	return h.usecase.Achievements(ctx)
}

func (h CLIHandler) QuizHistory(ctx context.Context, limit int) ([]dto.QuizHistoryOutput, error) {
	return h.usecase.QuizHistory(ctx, limit)
}

func (h CLIHandler) Settings(ctx context.Context) (dto.SettingsOutput, error) {
	return h.usecase.Settings(ctx)
}

func (h CLIHandler) UpdateSettings(ctx context.Context, script string, questions int) (dto.SettingsOutput, error) {
	return h.usecase.UpdateSettings(ctx, dto.SettingsInput{DefaultScript: script, QuizQuestionCount: questions})
}

func (h CLIHandler) Export(ctx context.Context, dir string) (dto.ExportOutput, error) {
	return h.usecase.ExportSnapshot(ctx, dir)
}

func (h CLIHandler) Import(ctx context.Context, path string) error {
	return h.usecase.ImportSnapshot(ctx, path)
}

func (h CLIHandler) Report(ctx context.Context, dir string) (dto.ReportOutput, error) {
	return h.usecase.WriteReport(ctx, dir)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
