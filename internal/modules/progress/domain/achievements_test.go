package domain_test

import (
	"testing"

	"gojuon/internal/modules/progress/domain"
)

func TestEvaluateAchievementsUnlocksOnce(t *testing.T) {
	t.Parallel()
	unlocked := map[string]bool{}
	snap := domain.EvalSnapshot{TotalQuestions: 1, Accuracy: 100}

	fresh := domain.EvaluateAchievements(unlocked, snap)
	if len(fresh) != 1 || fresh[0].ID != "first_step" {
		t.Fatalf("fresh = %v, want only first_step", fresh)
	}

	// same state again: nothing new
	if again := domain.EvaluateAchievements(unlocked, snap); len(again) != 0 {
		t.Fatalf("re-evaluation unlocked %v, want nothing", again)
	}
}

func TestAccuracyConditionNeedsMinQuestions(t *testing.T) {
	t.Parallel()
	a, ok := domain.AchievementByID("accuracy_expert")
	if !ok {
		t.Fatal("accuracy_expert not in table")
	}
	if a.Condition.Met(domain.EvalSnapshot{TotalQuestions: 5, Accuracy: 100}) {
		t.Fatal("5 questions should not satisfy the accuracy condition")
	}
	if !a.Condition.Met(domain.EvalSnapshot{TotalQuestions: 20, Accuracy: 95}) {
		t.Fatal("20 questions at 95% should satisfy the accuracy condition")
	}
}

func TestScriptMasteredCondition(t *testing.T) {
	t.Parallel()
	unlocked := map[string]bool{}
	snap := domain.EvalSnapshot{ScriptMastered: map[string]bool{"hiragana": true}}

	fresh := domain.EvaluateAchievements(unlocked, snap)
	ids := map[string]bool{}
	for _, a := range fresh {
		ids[a.ID] = true
	}
	if !ids["hiragana_master"] {
		t.Fatal("hiragana_master should unlock")
	}
	if ids["katakana_master"] {
		t.Fatal("katakana_master should not unlock")
	}
}

func TestAchievementIDsUnique(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, a := range domain.Achievements {
		if seen[a.ID] {
			t.Fatalf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
	}
}
