package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	progressout "gojuon/internal/modules/progress/adapter/out"
	"gojuon/internal/modules/progress/domain"
	outport "gojuon/internal/modules/progress/port/out"
)

func TestFileProfileStoreMissingFileMeansFresh(t *testing.T) {
	t.Parallel()
	store := progressout.NewFileProfileStore(filepath.Join(t.TempDir(), "profile.json"))
	_, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load missing profile: %v", err)
	}
	if found {
		t.Fatal("expected no snapshot for a missing file")
	}
}

func TestFileProfileStoreRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "profile.json")
	store := progressout.NewFileProfileStore(path)
	in := domain.Snapshot{
		Version:       domain.SchemaVersion,
		Points:        230,
		Level:         2,
		MasteredKanas: []string{"あ", "い"},
		LearningKanas: []string{"う"},
		StudyDates:    []string{"2026-08-29", "2026-08-30"},
		PracticeStats: map[string]domain.KanaStats{
			"あ": {TotalAttempts: 4, CorrectAttempts: 4, ConsecutiveCorrect: 3},
		},
	}
	if err := store.Save(context.Background(), in); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	out, found, err := store.Load(context.Background())
	if err != nil || !found {
		t.Fatalf("load profile: found=%v err=%v", found, err)
	}
	if out.Points != 230 || out.Level != 2 {
		t.Fatalf("points/level = %d/%d, want 230/2", out.Points, out.Level)
	}
	if len(out.MasteredKanas) != 2 || out.PracticeStats["あ"].ConsecutiveCorrect != 3 {
		t.Fatalf("unexpected round-trip snapshot: %+v", out)
	}
}

func TestFileProfileStoreUnparsableMeansFresh(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	store := progressout.NewFileProfileStore(path)
	_, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load corrupt profile: %v", err)
	}
	if found {
		t.Fatal("corrupt file should yield a fresh profile, not a snapshot")
	}
}

func TestYAMLSettingsStoreDefaultsWhenMissing(t *testing.T) {
	t.Parallel()
	store := progressout.NewYAMLSettingsStore(filepath.Join(t.TempDir(), "settings.yaml"))
	settings, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load missing settings: %v", err)
	}
	if settings != domain.DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", settings)
	}
}

func TestYAMLSettingsStoreNormalizesOnLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("default_script: klingon\nquiz_question_count: -3\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	store := progressout.NewYAMLSettingsStore(path)
	settings, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings != domain.DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults for invalid values", settings)
	}
}

func TestYAMLSettingsStoreRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store := progressout.NewYAMLSettingsStore(path)
	in := domain.Settings{DefaultScript: "katakana", QuizQuestionCount: 10}
	if err := store.Save(context.Background(), in); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	out, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if out != in {
		t.Fatalf("settings = %+v, want %+v", out, in)
	}
}

func TestSQLiteAttemptLogQuizHistoryAndAggregates(t *testing.T) {
	t.Parallel()
	log, err := progressout.NewSQLiteAttemptLog(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open attempt log: %v", err)
	}
	defer func() { _ = log.Close() }()
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	attempts := []domain.AttemptRecord{
		{Glyph: "あ", Mode: "practice", Correct: true, AnsweredAt: base},
		{Glyph: "あ", Mode: "practice", Correct: true, AnsweredAt: base.Add(time.Minute)},
		{Glyph: "ぬ", Mode: "practice", Correct: false, AnsweredAt: base.Add(2 * time.Minute)},
		{Glyph: "ぬ", Mode: "quiz", Correct: false, AnsweredAt: base.Add(3 * time.Minute)},
		{Glyph: "ぬ", Mode: "quiz", Correct: true, AnsweredAt: base.Add(4 * time.Minute)},
	}
	for _, rec := range attempts {
		if err := log.AppendAttempt(ctx, rec); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		rec := domain.QuizRecord{
			ID:         string(rune('a' + i)),
			Script:     "hiragana",
			Total:      20,
			Correct:    15 + i,
			Accuracy:   (15 + i) * 5,
			Points:     (15 + i) * 10,
			FinishedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := log.AppendQuiz(ctx, rec); err != nil {
			t.Fatalf("append quiz: %v", err)
		}
	}

	recent, err := log.RecentQuizzes(ctx, 2)
	if err != nil {
		t.Fatalf("recent quizzes: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 quizzes, got %d", len(recent))
	}
	if recent[0].ID != "c" || recent[1].ID != "b" {
		t.Fatalf("expected newest first, got %s then %s", recent[0].ID, recent[1].ID)
	}

	aggs, err := log.GlyphAggregates(ctx, 2, 10)
	if err != nil {
		t.Fatalf("glyph aggregates: %v", err)
	}
	if len(aggs) != 2 {
		t.Fatalf("expected 2 aggregates, got %d", len(aggs))
	}
	// ぬ has the lower accuracy and sorts first.
	if aggs[0].Glyph != "ぬ" || aggs[0].Attempts != 3 || aggs[0].Correct != 1 {
		t.Fatalf("unexpected trouble aggregate: %+v", aggs[0])
	}

	if err := log.Reset(ctx); err != nil {
		t.Fatalf("reset log: %v", err)
	}
	recent, err = log.RecentQuizzes(ctx, 10)
	if err != nil {
		t.Fatalf("recent after reset: %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("expected empty history after reset, got %d", len(recent))
	}
}

func TestFileExportWriterSnapshotRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writer := progressout.NewFileExportWriter()
	snap := domain.Snapshot{
		Version:       domain.SchemaVersion,
		ExportedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Points:        120,
		MasteredKanas: []string{"か"},
	}
	path, err := writer.WriteSnapshot(context.Background(), snap, dir)
	if err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	got, err := writer.ReadSnapshot(context.Background(), path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if got.Points != 120 || len(got.MasteredKanas) != 1 {
		t.Fatalf("unexpected snapshot after round trip: %+v", got)
	}
}

func TestFileExportWriterReportKeepsNotesOutsideManagedBlock(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writer := progressout.NewFileExportWriter()
	report := outport.Report{
		GeneratedAt: "2026-08-30T12:00:00Z",
		Level:       3,
		LevelTitle:  "Apprentice",
		Points:      640,
		Accuracy:    82,
	}
	path, err := writer.WriteReport(context.Background(), report, dir)
	if err != nil {
		t.Fatalf("write report: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	withNote := string(data) + "\nMy own study notes.\n"
	if err := os.WriteFile(path, []byte(withNote), 0o644); err != nil {
		t.Fatalf("append note: %v", err)
	}

	report.Points = 700
	if _, err := writer.WriteReport(context.Background(), report, dir); err != nil {
		t.Fatalf("regenerate report: %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("reread report: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "My own study notes.") {
		t.Fatal("regenerating the report dropped notes outside the managed block")
	}
	if !strings.Contains(content, "Points: 700") {
		t.Fatal("managed block was not refreshed")
	}
	if strings.Contains(content, "Points: 640") {
		t.Fatal("stale managed content survived regeneration")
	}
}
