package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gojuon/internal/modules/progress/domain"
	"gojuon/internal/modules/progress/dto"
	progressin "gojuon/internal/modules/progress/port/in"
	progressout "gojuon/internal/modules/progress/port/out"
	"gojuon/internal/modules/progress/service"
	"gojuon/internal/modules/progress/usecase"
	apperrors "gojuon/internal/platform/errors"
)

type memoryProfileStore struct {
	snap domain.Snapshot
	ok   bool
}

func (m *memoryProfileStore) Load(context.Context) (domain.Snapshot, bool, error) {
	return m.snap, m.ok, nil
}

func (m *memoryProfileStore) Save(_ context.Context, snap domain.Snapshot) error {
	m.snap, m.ok = snap, true
	return nil
}

type memorySettingsStore struct{ settings *domain.Settings }

func (m *memorySettingsStore) Load(context.Context) (domain.Settings, error) {
	if m.settings == nil {
		return domain.DefaultSettings(), nil
	}
	return *m.settings, nil
}

func (m *memorySettingsStore) Save(_ context.Context, s domain.Settings) error {
	m.settings = &s
	return nil
}

type memoryAttemptLog struct {
	attempts []domain.AttemptRecord
	quizzes  []domain.QuizRecord
}

func (m *memoryAttemptLog) AppendAttempt(_ context.Context, rec domain.AttemptRecord) error {
	m.attempts = append(m.attempts, rec)
	return nil
}

func (m *memoryAttemptLog) AppendQuiz(_ context.Context, rec domain.QuizRecord) error {
	m.quizzes = append(m.quizzes, rec)
	return nil
}

func (m *memoryAttemptLog) RecentQuizzes(_ context.Context, limit int) ([]domain.QuizRecord, error) {
	if len(m.quizzes) > limit {
		return m.quizzes[len(m.quizzes)-limit:], nil
	}
	return m.quizzes, nil
}

func (m *memoryAttemptLog) GlyphAggregates(_ context.Context, minAttempts, limit int) ([]domain.GlyphAggregate, error) {
	counts := map[string]*domain.GlyphAggregate{}
	order := []string{}
	for _, rec := range m.attempts {
		agg, ok := counts[rec.Glyph]
		if !ok {
			agg = &domain.GlyphAggregate{Glyph: rec.Glyph}
			counts[rec.Glyph] = agg
			order = append(order, rec.Glyph)
		}
		agg.Attempts++
		if rec.Correct {
			agg.Correct++
		}
	}
	var out []domain.GlyphAggregate
	for _, glyph := range order {
		if counts[glyph].Attempts >= minAttempts && len(out) < limit {
			out = append(out, *counts[glyph])
		}
	}
	return out, nil
}

func (m *memoryAttemptLog) Reset(context.Context) error {
	m.attempts, m.quizzes = nil, nil
	return nil
}

type memoryExporter struct {
	snap   *domain.Snapshot
	report *progressout.Report
}

func (m *memoryExporter) WriteSnapshot(_ context.Context, snap domain.Snapshot, dir string) (string, error) {
	m.snap = &snap
	return dir + "/snapshot.json", nil
}

func (m *memoryExporter) ReadSnapshot(context.Context, string) (domain.Snapshot, error) {
	if m.snap == nil {
		return domain.Snapshot{}, errors.New("nothing exported")
	}
	return *m.snap, nil
}

func (m *memoryExporter) WriteReport(_ context.Context, report progressout.Report, dir string) (string, error) {
	m.report = &report
	return dir + "/report.md", nil
}

type staticIndex struct{}

func (staticIndex) Glyphs(_ context.Context, script string) ([]string, error) {
	if script == "katakana" {
		return []string{"ア", "カ"}, nil
	}
	return []string{"あ", "か"}, nil
}

func (staticIndex) RowGlyphs(_ context.Context, script string) ([]progressout.RowGlyphs, error) {
	if script == "katakana" {
		return []progressout.RowGlyphs{{Row: "a-row", Title: "ア行", Glyphs: []string{"ア", "カ"}}}, nil
	}
	return []progressout.RowGlyphs{{Row: "a-row", Title: "あ行", Glyphs: []string{"あ", "か"}}}, nil
}

type seqIDs struct{ n int }

func (s *seqIDs) New() string {
	s.n++
	return string(rune('a' + s.n - 1))
}

type testClock struct{ now time.Time }

func (c testClock) Now() time.Time { return c.now }

func newUsecase(t *testing.T) (progressin.Usecase, *memoryAttemptLog, *memoryExporter) {
	t.Helper()
	clk := testClock{now: time.Date(2026, 7, 1, 15, 0, 0, 0, time.UTC)}
	svc := service.NewProgressService(clk, &memoryProfileStore{}, staticIndex{})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	log := &memoryAttemptLog{}
	exporter := &memoryExporter{}
	uc := usecase.NewInteractor(svc, &memorySettingsStore{}, log, staticIndex{}, exporter, &seqIDs{}, clk)
	return uc, log, exporter
}

func TestRecordAttemptValidatesGlyph(t *testing.T) {
	t.Parallel()
	uc, _, _ := newUsecase(t)
	_, err := uc.RecordAttempt(context.Background(), dto.AttemptInput{Glyph: "  "})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRecordAttemptLogsCanonicalGlyph(t *testing.T) {
	t.Parallel()
	uc, log, _ := newUsecase(t)

	out, err := uc.RecordAttempt(context.Background(), dto.AttemptInput{Glyph: "カ", Canonical: "か", Mode: "practice", Correct: true})
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if out.Points != domain.PointsPerCorrect {
		t.Fatalf("points = %d, want %d", out.Points, domain.PointsPerCorrect)
	}
	if len(log.attempts) != 1 || log.attempts[0].Glyph != "か" {
		t.Fatalf("log = %+v, want one attempt keyed by か", log.attempts)
	}
}

func TestStatusOfReportsAttemptCounts(t *testing.T) {
	t.Parallel()
	uc, _, _ := newUsecase(t)
	ctx := context.Background()

	if _, err := uc.RecordAttempt(ctx, dto.AttemptInput{Glyph: "あ", Mode: "practice", Correct: true}); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if _, err := uc.RecordAttempt(ctx, dto.AttemptInput{Glyph: "あ", Mode: "practice", Correct: false}); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	status, err := uc.StatusOf(ctx, "あ")
	if err != nil {
		t.Fatalf("StatusOf: %v", err)
	}
	if status.Status != string(domain.Learning) {
		t.Fatalf("status = %s, want learning", status.Status)
	}
	if status.Attempts != 2 || status.Correct != 1 || status.Consecutive != 0 {
		t.Fatalf("counts = %d/%d/%d, want 2/1/0", status.Attempts, status.Correct, status.Consecutive)
	}

	if _, err := uc.StatusOf(ctx, " "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank glyph err = %v, want ErrInvalidInput", err)
	}
}

func TestOverviewCountsBothScripts(t *testing.T) {
	t.Parallel()
	uc, _, _ := newUsecase(t)
	ctx := context.Background()

	for i := 0; i < domain.MasteryThreshold; i++ {
		if _, err := uc.RecordAttempt(ctx, dto.AttemptInput{Glyph: "あ", Mode: "practice", Correct: true}); err != nil {
			t.Fatalf("RecordAttempt: %v", err)
		}
	}
	overview, err := uc.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.KanaTotal != 4 {
		t.Fatalf("kana total = %d, want 4", overview.KanaTotal)
	}
	if overview.MasteredTotal != 1 {
		t.Fatalf("mastered = %d, want 1", overview.MasteredTotal)
	}
	if overview.OverallPercent != 25 {
		t.Fatalf("overall = %d%%, want 25", overview.OverallPercent)
	}
	if overview.Points != 2*domain.PointsPerCorrect+domain.PointsPerMastery {
		t.Fatalf("points = %d", overview.Points)
	}
}

func TestApplyQuizResultValidatesTotals(t *testing.T) {
	t.Parallel()
	uc, _, _ := newUsecase(t)
	_, err := uc.ApplyQuizResult(context.Background(), dto.QuizResultInput{Total: 10, Correct: 11})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestQuizHistoryRecordsRuns(t *testing.T) {
	t.Parallel()
	uc, _, _ := newUsecase(t)
	ctx := context.Background()

	input := dto.QuizResultInput{Script: "hiragana", Total: 20, Correct: 18, Accuracy: 90, DurationSecs: 120, Points: 230}
	if _, err := uc.ApplyQuizResult(ctx, input); err != nil {
		t.Fatalf("ApplyQuizResult: %v", err)
	}
	history, err := uc.QuizHistory(ctx, 10)
	if err != nil {
		t.Fatalf("QuizHistory: %v", err)
	}
	if len(history) != 1 || history[0].Points != 230 || history[0].ID == "" {
		t.Fatalf("history = %+v", history)
	}
}

func TestTroubleKanasFiltersAccurateOnes(t *testing.T) {
	t.Parallel()
	uc, _, _ := newUsecase(t)
	ctx := context.Background()

	// あ keeps failing, か is solid
	for i := 0; i < 4; i++ {
		if _, err := uc.RecordAttempt(ctx, dto.AttemptInput{Glyph: "あ", Mode: "practice", Correct: false}); err != nil {
			t.Fatal(err)
		}
		if _, err := uc.RecordAttempt(ctx, dto.AttemptInput{Glyph: "か", Mode: "practice", Correct: true}); err != nil {
			t.Fatal(err)
		}
	}
	trouble, err := uc.TroubleKanas(ctx, 5)
	if err != nil {
		t.Fatalf("TroubleKanas: %v", err)
	}
	if len(trouble) != 1 || trouble[0].Glyph != "あ" {
		t.Fatalf("trouble = %+v, want only あ", trouble)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	uc, _, _ := newUsecase(t)
	ctx := context.Background()

	for i := 0; i < domain.MasteryThreshold; i++ {
		if _, err := uc.RecordAttempt(ctx, dto.AttemptInput{Glyph: "あ", Mode: "practice", Correct: true}); err != nil {
			t.Fatal(err)
		}
	}
	exported, err := uc.ExportSnapshot(ctx, "/tmp/exports")
	if err != nil {
		t.Fatalf("ExportSnapshot: %v", err)
	}
	if exported.Path == "" {
		t.Fatal("export should report the written path")
	}

	if err := uc.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if err := uc.ImportSnapshot(ctx, exported.Path); err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}
	status, err := uc.StatusOf(ctx, "あ")
	if err != nil {
		t.Fatalf("StatusOf: %v", err)
	}
	if status.Status != string(domain.Mastered) {
		t.Fatalf("status = %s, want mastered after import", status.Status)
	}
}

func TestUpdateSettingsValidates(t *testing.T) {
	t.Parallel()
	uc, _, _ := newUsecase(t)
	ctx := context.Background()

	if _, err := uc.UpdateSettings(ctx, dto.SettingsInput{DefaultScript: "kanji", QuizQuestionCount: 20}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	saved, err := uc.UpdateSettings(ctx, dto.SettingsInput{DefaultScript: "katakana", QuizQuestionCount: 10})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	loaded, err := uc.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if loaded != saved {
		t.Fatalf("loaded %+v, want %+v", loaded, saved)
	}
}

func TestWriteReportAssemblesSections(t *testing.T) {
	t.Parallel()
	uc, _, exporter := newUsecase(t)
	ctx := context.Background()

	for i := 0; i < domain.MasteryThreshold; i++ {
		if _, err := uc.RecordAttempt(ctx, dto.AttemptInput{Glyph: "あ", Mode: "practice", Correct: true}); err != nil {
			t.Fatal(err)
		}
	}
	out, err := uc.WriteReport(ctx, "/tmp/exports")
	if err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if out.Path == "" {
		t.Fatal("report should report the written path")
	}
	if exporter.report == nil {
		t.Fatal("report was not rendered")
	}
	if exporter.report.MasteredCount != 1 {
		t.Fatalf("report mastered = %d, want 1", exporter.report.MasteredCount)
	}
	if len(exporter.report.Rows) != 2 {
		t.Fatalf("report rows = %d, want one per script", len(exporter.report.Rows))
	}
	if len(exporter.report.Achievements) == 0 {
		t.Fatal("first_step should appear in the report")
	}
}
