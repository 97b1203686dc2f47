package domain

// ConditionKind enumerates the predicate shapes an achievement may use.
// Conditions are data, not code, so the rule table stays enumerable and
// testable on its own.
type ConditionKind string

const (
	CondTotalQuestions  ConditionKind = "total_questions"
	CondAccuracy        ConditionKind = "accuracy"
	CondScriptMastered  ConditionKind = "script_mastered"
	CondStudyStreakDays ConditionKind = "study_streak_days"
	CondStudyMinutes    ConditionKind = "study_minutes"
	CondAnswerStreak    ConditionKind = "answer_streak"
	CondModesUsed       ConditionKind = "modes_used"
	CondLevel           ConditionKind = "level"
	CondPerfectQuizzes  ConditionKind = "perfect_quizzes"
)

type Condition struct {
	Kind      ConditionKind
	Threshold int
	// Script qualifies CondScriptMastered.
	Script string
	// MinQuestions gates accuracy conditions so an early lucky answer does
	// not unlock them.
	MinQuestions int
}

type Achievement struct {
	ID          string
	Name        string
	Description string
	Condition   Condition
}

// Achievements is the fixed rule table. Order is display order.
var Achievements = []Achievement{
	{ID: "first_step", Name: "First Step", Description: "Answer your first question",
		Condition: Condition{Kind: CondTotalQuestions, Threshold: 1}},
	{ID: "practice_master", Name: "Practice Master", Description: "Answer 100 questions",
		Condition: Condition{Kind: CondTotalQuestions, Threshold: 100}},
	{ID: "accuracy_expert", Name: "Sharpshooter", Description: "Reach 90% overall accuracy",
		Condition: Condition{Kind: CondAccuracy, Threshold: 90, MinQuestions: 20}},
	{ID: "hiragana_master", Name: "Hiragana Master", Description: "Master every basic hiragana",
		Condition: Condition{Kind: CondScriptMastered, Script: "hiragana"}},
	{ID: "katakana_master", Name: "Katakana Master", Description: "Master every basic katakana",
		Condition: Condition{Kind: CondScriptMastered, Script: "katakana"}},
	{ID: "persistent_learner", Name: "Persistent Learner", Description: "Study 7 days in a row",
		Condition: Condition{Kind: CondStudyStreakDays, Threshold: 7}},
	{ID: "time_master", Name: "Time Master", Description: "Study for 10 hours in total",
		Condition: Condition{Kind: CondStudyMinutes, Threshold: 600}},
	{ID: "perfectionist", Name: "Perfectionist", Description: "Answer 50 questions in a row correctly",
		Condition: Condition{Kind: CondAnswerStreak, Threshold: 50}},
	{ID: "explorer", Name: "Explorer", Description: "Try every learning mode",
		Condition: Condition{Kind: CondModesUsed, Threshold: 4}},
	{ID: "level_5", Name: "Progress Tracker", Description: "Reach level 5",
		Condition: Condition{Kind: CondLevel, Threshold: 5}},
	{ID: "level_10", Name: "Gojūon Master", Description: "Reach level 10",
		Condition: Condition{Kind: CondLevel, Threshold: 10}},
	{ID: "perfect_quiz", Name: "Quiz Expert", Description: "Score 3 perfect quizzes",
		Condition: Condition{Kind: CondPerfectQuizzes, Threshold: 3}},
	{ID: "dedication", Name: "Dedication", Description: "Study 30 days in a row",
		Condition: Condition{Kind: CondStudyStreakDays, Threshold: 30}},
	{ID: "marathon", Name: "Study Marathon", Description: "Study for 50 hours in total",
		Condition: Condition{Kind: CondStudyMinutes, Threshold: 3000}},
}

// AchievementByID is derived from the table above.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// EvalSnapshot is the read-only view conditions are checked against.
type EvalSnapshot struct {
	TotalQuestions int
	Accuracy       int
	Level          int
	MaxStreak      int
	StudyMinutes   int
	StudyDayStreak int
	PerfectQuizzes int
	ModesUsed      int
	ScriptMastered map[string]bool
}

func (c Condition) Met(snap EvalSnapshot) bool {
	switch c.Kind {
	case CondTotalQuestions:
		return snap.TotalQuestions >= c.Threshold
	case CondAccuracy:
		return snap.TotalQuestions >= c.MinQuestions && snap.Accuracy >= c.Threshold
	case CondScriptMastered:
		return snap.ScriptMastered[c.Script]
	case CondStudyStreakDays:
		return snap.StudyDayStreak >= c.Threshold
	case CondStudyMinutes:
		return snap.StudyMinutes >= c.Threshold
	case CondAnswerStreak:
		return snap.MaxStreak >= c.Threshold
	case CondModesUsed:
		return snap.ModesUsed >= c.Threshold
	case CondLevel:
		return snap.Level >= c.Threshold
	case CondPerfectQuizzes:
		return snap.PerfectQuizzes >= c.Threshold
	default:
		return false
	}
}

// EvaluateAchievements returns the achievements whose conditions newly hold.
// Unlocks are monotonic; re-running with unchanged state yields nothing.
func EvaluateAchievements(unlocked map[string]bool, snap EvalSnapshot) []Achievement {
	var fresh []Achievement
	for _, a := range Achievements {
		if unlocked[a.ID] {
			continue
		}
		if a.Condition.Met(snap) {
			unlocked[a.ID] = true
			fresh = append(fresh, a)
		}
	}
	return fresh
}
