package service_test

import (
	"context"
	"testing"
	"time"

	"gojuon/internal/modules/progress/domain"
	progressout "gojuon/internal/modules/progress/port/out"
	"gojuon/internal/modules/progress/service"
)

type fakeProfileStore struct {
	snap  domain.Snapshot
	ok    bool
	saves int
}

func (f *fakeProfileStore) Load(context.Context) (domain.Snapshot, bool, error) {
	return f.snap, f.ok, nil
}

func (f *fakeProfileStore) Save(_ context.Context, snap domain.Snapshot) error {
	f.snap = snap
	f.ok = true
	f.saves++
	return nil
}

type fakeIndex struct {
	hiragana []string
	katakana []string
}

func (f fakeIndex) Glyphs(_ context.Context, script string) ([]string, error) {
	if script == "katakana" {
		return f.katakana, nil
	}
	return f.hiragana, nil
}

func (f fakeIndex) RowGlyphs(context.Context, string) ([]progressout.RowGlyphs, error) {
	return nil, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newService(t *testing.T) (*service.ProgressService, *fakeProfileStore) {
	t.Helper()
	store := &fakeProfileStore{}
	svc := service.NewProgressService(
		fixedClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)},
		store,
		fakeIndex{hiragana: []string{"あ", "か"}, katakana: []string{"ア", "カ"}},
	)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return svc, store
}

func TestRecordAttemptAwardsPoints(t *testing.T) {
	t.Parallel()
	svc, store := newService(t)
	ctx := context.Background()

	res := svc.RecordAttempt(ctx, "あ", "あ", true)
	if res.Points != domain.PointsPerCorrect {
		t.Fatalf("points = %d, want %d", res.Points, domain.PointsPerCorrect)
	}
	svc.RecordAttempt(ctx, "あ", "あ", true)
	res = svc.RecordAttempt(ctx, "あ", "あ", true)
	if res.Points != domain.PointsPerMastery {
		t.Fatalf("mastery transition points = %d, want %d", res.Points, domain.PointsPerMastery)
	}
	if res.Delta.To != domain.Mastered {
		t.Fatalf("status = %s, want mastered", res.Delta.To)
	}

	// already mastered: back to the plain award
	res = svc.RecordAttempt(ctx, "あ", "あ", true)
	if res.Points != domain.PointsPerCorrect {
		t.Fatalf("repeat points = %d, want %d", res.Points, domain.PointsPerCorrect)
	}

	res = svc.RecordAttempt(ctx, "あ", "あ", false)
	if res.Points != 0 {
		t.Fatalf("wrong answer points = %d, want 0", res.Points)
	}
	if store.saves != 5 {
		t.Fatalf("saves = %d, want one per attempt", store.saves)
	}
}

func TestRecordAttemptUnlocksFirstStep(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	res := svc.RecordAttempt(context.Background(), "あ", "あ", true)
	found := false
	for _, a := range res.Unlocked {
		if a.ID == "first_step" {
			found = true
		}
	}
	if !found {
		t.Fatalf("unlocked = %v, want first_step", res.Unlocked)
	}

	// never unlocks twice
	res = svc.RecordAttempt(context.Background(), "あ", "あ", true)
	for _, a := range res.Unlocked {
		if a.ID == "first_step" {
			t.Fatal("first_step unlocked twice")
		}
	}
}

func TestScriptMasteredAchievement(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	var unlocked []domain.Achievement
	for _, glyph := range []string{"あ", "か"} {
		for i := 0; i < domain.MasteryThreshold; i++ {
			res := svc.RecordAttempt(ctx, glyph, glyph, true)
			unlocked = append(unlocked, res.Unlocked...)
		}
	}
	found := false
	for _, a := range unlocked {
		if a.ID == "hiragana_master" {
			found = true
		}
		if a.ID == "katakana_master" {
			t.Fatal("katakana_master should not unlock from hiragana practice")
		}
	}
	if !found {
		t.Fatal("hiragana_master should unlock once both glyphs are mastered")
	}
}

func TestApplyQuizResultPerfect(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	out := svc.ApplyQuizResult(context.Background(), 20, 20, 100, 250)
	if !out.Perfect {
		t.Fatal("100% accuracy should count as perfect")
	}
	if !out.LeveledUp {
		t.Fatal("250 points should cross the level 2 threshold")
	}
	p := svc.Profile().Progression
	if p.Points != 250 || p.Level != 2 || p.PerfectQuizzes != 1 {
		t.Fatalf("progression = %d pts, level %d, %d perfect; want 250/2/1", p.Points, p.Level, p.PerfectQuizzes)
	}
	if p.TotalQuestions != 20 || p.CorrectAnswers != 20 {
		t.Fatalf("totals = %d/%d, want 20/20", p.TotalQuestions, p.CorrectAnswers)
	}
}

func TestMarkCard(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	res := svc.MarkCard(ctx, "か", "カ", true)
	if res.Delta.To != domain.Mastered || res.Points != domain.PointsPerCorrect {
		t.Fatalf("easy mark: status %s, points %d", res.Delta.To, res.Points)
	}
	res = svc.MarkCard(ctx, "か", "カ", false)
	if res.Delta.From != domain.Mastered || res.Delta.To != domain.Learning {
		t.Fatalf("difficult mark: %s -> %s, want mastered -> learning", res.Delta.From, res.Delta.To)
	}
	if res.Consecutive != 0 {
		t.Fatalf("streak = %d, want 0", res.Consecutive)
	}
}

func TestLoadRestoresSavedState(t *testing.T) {
	t.Parallel()
	svc, store := newService(t)
	ctx := context.Background()

	svc.RecordAttempt(ctx, "あ", "あ", true)
	svc.RecordStudyDay(ctx)

	again := service.NewProgressService(
		fixedClock{now: time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)},
		store,
		fakeIndex{hiragana: []string{"あ", "か"}, katakana: []string{"ア", "カ"}},
	)
	if err := again.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	p := again.Profile()
	if p.Progression.Points != domain.PointsPerCorrect {
		t.Fatalf("points = %d, want %d", p.Progression.Points, domain.PointsPerCorrect)
	}
	if p.Mastery.StatusOf("あ") != domain.Learning {
		t.Fatal("あ should restore as learning")
	}
	if !again.RecordStudyDay(ctx) {
		t.Fatal("a new calendar day should count")
	}
}

func TestResetDropsEverything(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	svc.RecordAttempt(ctx, "あ", "あ", true)
	svc.Reset(ctx)

	p := svc.Profile()
	if p.Progression.Points != 0 || p.Progression.Level != 1 {
		t.Fatalf("after reset: %d pts level %d, want 0 pts level 1", p.Progression.Points, p.Progression.Level)
	}
	if p.Mastery.StatusOf("あ") != domain.Unseen {
		t.Fatal("mastery records should be gone after reset")
	}
}
