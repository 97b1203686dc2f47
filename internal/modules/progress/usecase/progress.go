package usecase

import (
	"context"
	"fmt"
	"strings"

	"gojuon/internal/modules/progress/domain"
	"gojuon/internal/modules/progress/dto"
	progressin "gojuon/internal/modules/progress/port/in"
	progressout "gojuon/internal/modules/progress/port/out"
	"gojuon/internal/modules/progress/service"
	"gojuon/internal/platform/clock"
	apperrors "gojuon/internal/platform/errors"
	"gojuon/internal/platform/id"
)

// troubleMinAttempts and troubleMaxAccuracy bound what counts as a
// trouble kana in history projections.
const (
	troubleMinAttempts = 3
	troubleMaxAccuracy = 79
)

type Interactor struct {
	svc      *service.ProgressService
	settings progressout.SettingsStore
	log      progressout.AttemptLog
	index    progressout.KanaIndex
	exporter progressout.ExportWriter
	ids      id.Generator
	clock    clock.Clock
}

func NewInteractor(
	svc *service.ProgressService,
	settings progressout.SettingsStore,
	log progressout.AttemptLog,
	index progressout.KanaIndex,
	exporter progressout.ExportWriter,
	ids id.Generator,
	clk clock.Clock,
) progressin.Usecase {
	return &Interactor{svc: svc, settings: settings, log: log, index: index, exporter: exporter, ids: ids, clock: clk}
}

func (i *Interactor) RecordAttempt(ctx context.Context, input dto.AttemptInput) (dto.AttemptOutput, error) {
	glyph := strings.TrimSpace(input.Glyph)
	if glyph == "" {
		return dto.AttemptOutput{}, fmt.Errorf("%w: glyph is required", apperrors.ErrInvalidInput)
	}
	canonical := strings.TrimSpace(input.Canonical)
	if canonical == "" {
		canonical = glyph
	}
	res := i.svc.RecordAttempt(ctx, canonical, glyph, input.Correct)
	rec := domain.AttemptRecord{Glyph: canonical, Mode: input.Mode, Correct: input.Correct, AnsweredAt: i.clock.Now()}
	if err := i.log.AppendAttempt(ctx, rec); err != nil {
		return dto.AttemptOutput{}, fmt.Errorf("append attempt: %w", err)
	}
	return i.toAttemptOutput(glyph, res), nil
}

func (i *Interactor) ApplyQuizResult(ctx context.Context, input dto.QuizResultInput) (dto.QuizResultOutput, error) {
	if input.Total <= 0 || input.Correct < 0 || input.Correct > input.Total {
		return dto.QuizResultOutput{}, fmt.Errorf("%w: quiz totals out of range", apperrors.ErrInvalidInput)
	}
	out := i.svc.ApplyQuizResult(ctx, input.Total, input.Correct, input.Accuracy, input.Points)
	rec := domain.QuizRecord{
		ID:           i.ids.New(),
		Script:       input.Script,
		Total:        input.Total,
		Correct:      input.Correct,
		Accuracy:     input.Accuracy,
		DurationSecs: input.DurationSecs,
		Points:       input.Points,
		FinishedAt:   i.clock.Now(),
	}
	if err := i.log.AppendQuiz(ctx, rec); err != nil {
		return dto.QuizResultOutput{}, fmt.Errorf("append quiz: %w", err)
	}
	return dto.QuizResultOutput{
		Points:    out.Points,
		Level:     i.svc.Profile().Progression.Level,
		LeveledUp: out.LeveledUp,
		Perfect:   out.Perfect,
		Unlocked:  toAchievementOutputs(out.Unlocked),
	}, nil
}

func (i *Interactor) MarkCard(ctx context.Context, input dto.CardMarkInput) (dto.AttemptOutput, error) {
	glyph := strings.TrimSpace(input.Glyph)
	if glyph == "" {
		return dto.AttemptOutput{}, fmt.Errorf("%w: glyph is required", apperrors.ErrInvalidInput)
	}
	canonical := strings.TrimSpace(input.Canonical)
	if canonical == "" {
		canonical = glyph
	}
	res := i.svc.MarkCard(ctx, canonical, glyph, input.Easy)
	return i.toAttemptOutput(glyph, res), nil
}

func (i *Interactor) TouchKana(ctx context.Context, glyph string) (bool, error) {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return false, fmt.Errorf("%w: glyph is required", apperrors.ErrInvalidInput)
	}
	return i.svc.Touch(ctx, glyph), nil
}

func (i *Interactor) StatusOf(ctx context.Context, glyph string) (dto.StatusOutput, error) {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return dto.StatusOutput{}, fmt.Errorf("%w: glyph is required", apperrors.ErrInvalidInput)
	}
	status, stats := i.svc.StatusOf(glyph)
	return dto.StatusOutput{
		Glyph:       glyph,
		Status:      string(status),
		Attempts:    stats.TotalAttempts,
		Correct:     stats.CorrectAttempts,
		Consecutive: stats.ConsecutiveCorrect,
	}, nil
}

func (i *Interactor) RecordStudyTick(ctx context.Context) error {
	i.svc.RecordStudyTick(ctx)
	return nil
}

func (i *Interactor) RecordStudyDay(ctx context.Context) (bool, error) {
	return i.svc.RecordStudyDay(ctx), nil
}

func (i *Interactor) RecordModeUsed(ctx context.Context, mode string) ([]dto.AchievementOutput, error) {
	mode = strings.TrimSpace(mode)
	if mode == "" {
		return nil, fmt.Errorf("%w: mode is required", apperrors.ErrInvalidInput)
	}
	return toAchievementOutputs(i.svc.RecordModeUsed(ctx, mode)), nil
}

func (i *Interactor) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	profile := i.svc.Profile()
	p := profile.Progression

	var kanaTotal, mastered, learning int
	for _, script := range []string{"hiragana", "katakana"} {
		glyphs, err := i.index.Glyphs(ctx, script)
		if err != nil {
			return dto.OverviewOutput{}, fmt.Errorf("index %s: %w", script, err)
		}
		kanaTotal += len(glyphs)
		mastered += profile.Mastery.MasteredCount(glyphs)
		learning += profile.Mastery.LearningCount(glyphs)
	}

	out := dto.OverviewOutput{
		Level:            p.Level,
		LevelTitle:       domain.LevelTitles[p.Level-1],
		Points:           p.Points,
		NextLevelPoints:  nextLevelPoints(p.Level),
		Accuracy:         p.Accuracy(),
		TotalQuestions:   p.TotalQuestions,
		CorrectAnswers:   p.CorrectAnswers,
		CurrentStreak:    p.CurrentStreak,
		MaxStreak:        p.MaxStreak,
		StudyMinutes:     p.StudyMinutes,
		StudyDays:        p.StudyDays,
		StudyDayStreak:   p.ConsecutiveStudyDays(),
		PerfectQuizzes:   p.PerfectQuizzes,
		MasteredTotal:    mastered,
		LearningTotal:    learning,
		KanaTotal:        kanaTotal,
		OverallPercent:   percent(mastered, kanaTotal),
		AchievementCount: len(domain.Achievements),
	}
	for _, done := range profile.Unlocked {
		if done {
			out.UnlockedCount++
		}
	}
	return out, nil
}

func (i *Interactor) ScriptProgress(ctx context.Context, script string) (dto.ScriptProgressOutput, error) {
	glyphs, err := i.index.Glyphs(ctx, script)
	if err != nil {
		return dto.ScriptProgressOutput{}, fmt.Errorf("index %s: %w", script, err)
	}
	book := i.svc.Profile().Mastery
	mastered := book.MasteredCount(glyphs)
	return dto.ScriptProgressOutput{
		Script:   script,
		Total:    len(glyphs),
		Mastered: mastered,
		Learning: book.LearningCount(glyphs),
		Percent:  percent(mastered, len(glyphs)),
	}, nil
}

func (i *Interactor) RowProgress(ctx context.Context, script string) ([]dto.RowProgressOutput, error) {
	rows, err := i.index.RowGlyphs(ctx, script)
	if err != nil {
		return nil, fmt.Errorf("index rows %s: %w", script, err)
	}
	book := i.svc.Profile().Mastery
	out := make([]dto.RowProgressOutput, 0, len(rows))
	for _, row := range rows {
		mastered := book.MasteredCount(row.Glyphs)
		out = append(out, dto.RowProgressOutput{
			Row:      row.Row,
			Title:    row.Title,
			Total:    len(row.Glyphs),
			Mastered: mastered,
			Learning: book.LearningCount(row.Glyphs),
			Percent:  percent(mastered, len(row.Glyphs)),
		})
	}
	return out, nil
}

func (i *Interactor) Achievements(ctx context.Context) ([]dto.AchievementOutput, error) {
	unlocked := i.svc.Profile().Unlocked
	out := make([]dto.AchievementOutput, 0, len(domain.Achievements))
	for _, a := range domain.Achievements {
		out = append(out, dto.AchievementOutput{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Unlocked:    unlocked[a.ID],
		})
	}
	return out, nil
}

func (i *Interactor) Settings(ctx context.Context) (dto.SettingsOutput, error) {
	s, err := i.settings.Load(ctx)
	if err != nil {
		return dto.SettingsOutput{}, fmt.Errorf("load settings: %w", err)
	}
	s = s.Normalize()
	return dto.SettingsOutput{DefaultScript: s.DefaultScript, QuizQuestionCount: s.QuizQuestionCount}, nil
}

func (i *Interactor) UpdateSettings(ctx context.Context, input dto.SettingsInput) (dto.SettingsOutput, error) {
	if input.DefaultScript != "hiragana" && input.DefaultScript != "katakana" {
		return dto.SettingsOutput{}, fmt.Errorf("%w: unknown script %q", apperrors.ErrInvalidInput, input.DefaultScript)
	}
	if input.QuizQuestionCount <= 0 {
		return dto.SettingsOutput{}, fmt.Errorf("%w: question count must be positive", apperrors.ErrInvalidInput)
	}
	s := domain.Settings{DefaultScript: input.DefaultScript, QuizQuestionCount: input.QuizQuestionCount}
	if err := i.settings.Save(ctx, s); err != nil {
		return dto.SettingsOutput{}, fmt.Errorf("save settings: %w", err)
	}
	return dto.SettingsOutput{DefaultScript: s.DefaultScript, QuizQuestionCount: s.QuizQuestionCount}, nil
}

func (i *Interactor) QuizHistory(ctx context.Context, limit int) ([]dto.QuizHistoryOutput, error) {
	if limit <= 0 {
		limit = 10
	}
	recs, err := i.log.RecentQuizzes(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent quizzes: %w", err)
	}
	out := make([]dto.QuizHistoryOutput, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.QuizHistoryOutput{
			ID:           r.ID,
			Script:       r.Script,
			Total:        r.Total,
			Correct:      r.Correct,
			Accuracy:     r.Accuracy,
			DurationSecs: r.DurationSecs,
			Points:       r.Points,
			FinishedAt:   r.FinishedAt,
		})
	}
	return out, nil
}

func (i *Interactor) TroubleKanas(ctx context.Context, limit int) ([]dto.TroubleKanaOutput, error) {
	if limit <= 0 {
		limit = 5
	}
	aggs, err := i.log.GlyphAggregates(ctx, troubleMinAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("glyph aggregates: %w", err)
	}
	out := make([]dto.TroubleKanaOutput, 0, len(aggs))
	for _, a := range aggs {
		if a.Accuracy() > troubleMaxAccuracy {
			continue
		}
		out = append(out, dto.TroubleKanaOutput{Glyph: a.Glyph, Attempts: a.Attempts, Accuracy: a.Accuracy()})
	}
	return out, nil
}

func (i *Interactor) ExportSnapshot(ctx context.Context, dir string) (dto.ExportOutput, error) {
	snap := i.svc.Profile().Snapshot()
	snap.ExportedAt = i.clock.Now()
	path, err := i.exporter.WriteSnapshot(ctx, snap, dir)
	if err != nil {
		return dto.ExportOutput{}, fmt.Errorf("write snapshot: %w", err)
	}
	return dto.ExportOutput{Path: path}, nil
}

func (i *Interactor) ImportSnapshot(ctx context.Context, path string) error {
	snap, err := i.exporter.ReadSnapshot(ctx, path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	i.svc.ImportProfile(ctx, snap)
	return nil
}

func (i *Interactor) WriteReport(ctx context.Context, dir string) (dto.ReportOutput, error) {
	overview, err := i.Overview(ctx)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	report := progressout.Report{
		GeneratedAt:   i.clock.Now().Format("2006-01-02 15:04"),
		Level:         overview.Level,
		LevelTitle:    overview.LevelTitle,
		Points:        overview.Points,
		Accuracy:      overview.Accuracy,
		StudyDays:     overview.StudyDays,
		StudyHours:    overview.StudyMinutes / 60,
		StudyStreak:   overview.StudyDayStreak,
		MaxStreak:     overview.MaxStreak,
		PerfectCount:  overview.PerfectQuizzes,
		MasteredCount: overview.MasteredTotal,
		LearningCount: overview.LearningTotal,
		KanaTotal:     overview.KanaTotal,
		OverallPct:    overview.OverallPercent,
	}

	for _, script := range []string{"hiragana", "katakana"} {
		rows, err := i.RowProgress(ctx, script)
		if err != nil {
			return dto.ReportOutput{}, err
		}
		for _, row := range rows {
			report.Rows = append(report.Rows, progressout.ReportRow{
				Title:    fmt.Sprintf("%s (%s)", row.Title, script),
				Total:    row.Total,
				Mastered: row.Mastered,
				Learning: row.Learning,
				Percent:  row.Percent,
			})
		}
	}

	unlocked := i.svc.Profile().Unlocked
	for _, a := range domain.Achievements {
		if unlocked[a.ID] {
			report.Achievements = append(report.Achievements, progressout.ReportAchievement{Name: a.Name, Description: a.Description})
		}
	}

	trouble, err := i.TroubleKanas(ctx, 5)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	for _, t := range trouble {
		report.TroubleKanas = append(report.TroubleKanas, progressout.ReportTrouble{Glyph: t.Glyph, Attempts: t.Attempts, Accuracy: t.Accuracy})
	}

	path, err := i.exporter.WriteReport(ctx, report, dir)
	if err != nil {
		return dto.ReportOutput{}, fmt.Errorf("write report: %w", err)
	}
	return dto.ReportOutput{Path: path}, nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	i.svc.Reset(ctx)
	if err := i.log.Reset(ctx); err != nil {
		return fmt.Errorf("reset history: %w", err)
	}
	return nil
}

func (i *Interactor) toAttemptOutput(glyph string, res service.AttemptResult) dto.AttemptOutput {
	return dto.AttemptOutput{
		Glyph:       glyph,
		From:        string(res.Delta.From),
		To:          string(res.Delta.To),
		Consecutive: res.Consecutive,
		Points:      res.Points,
		Level:       i.svc.Profile().Progression.Level,
		LeveledUp:   res.LeveledUp,
		Unlocked:    toAchievementOutputs(res.Unlocked),
	}
}

func toAchievementOutputs(list []domain.Achievement) []dto.AchievementOutput {
	out := make([]dto.AchievementOutput, 0, len(list))
	for _, a := range list {
		out = append(out, dto.AchievementOutput{ID: a.ID, Name: a.Name, Description: a.Description, Unlocked: true})
	}
	return out
}

func nextLevelPoints(level int) int {
	if level >= domain.MaxLevel {
		return 0
	}
	return domain.LevelThresholds[level]
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(part)/float64(total)*100 + 0.5)
}
