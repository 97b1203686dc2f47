package domain

import (
	"sort"
	"time"
)

// SchemaVersion tags exported snapshots so older importers can be detected
// and newer fields defaulted on the way in.
const SchemaVersion = 1

// Points awarded by the practice flow.
const (
	PointsPerCorrect = 5
	PointsPerMastery = 10
)

// Profile is the whole persisted learner state: the account-wide
// progression plus the per-kana mastery book and the unlock/mode sets.
type Profile struct {
	Progression *Progression
	Mastery     *MasteryBook
	Unlocked    map[string]bool
	ModesUsed   map[string]bool
}

func NewProfile() *Profile {
	return &Profile{
		Progression: NewProgression(),
		Mastery:     NewMasteryBook(),
		Unlocked:    map[string]bool{},
		ModesUsed:   map[string]bool{},
	}
}

// Snapshot is the serialized form of a Profile. The id-set fields are
// lists whose order carries no meaning; importers must treat them as sets.
type Snapshot struct {
	Version              int                  `json:"version"`
	ExportedAt           time.Time            `json:"exported_at,omitzero"`
	Points               int                  `json:"points"`
	Level                int                  `json:"level"`
	CurrentStreak        int                  `json:"current_streak"`
	MaxStreak            int                  `json:"max_streak"`
	TotalQuestions       int                  `json:"total_questions"`
	CorrectAnswers       int                  `json:"correct_answers"`
	Accuracy             int                  `json:"accuracy"`
	StudyMinutes         int                  `json:"study_minutes"`
	StudyDays            int                  `json:"study_days"`
	LastStudyDate        string               `json:"last_study_date,omitempty"`
	StudyDates           []string             `json:"study_dates,omitempty"`
	PerfectQuizzes       int                  `json:"perfect_quizzes"`
	MasteredKanas        []string             `json:"mastered_kanas"`
	LearningKanas        []string             `json:"learning_kanas"`
	UnlockedAchievements []string             `json:"unlocked_achievements"`
	ModesUsed            []string             `json:"modes_used"`
	PracticeStats        map[string]KanaStats `json:"practice_stats,omitempty"`
}

// Snapshot renders the profile for persistence or export. List fields are
// sorted so repeated saves stay diffable.
func (p *Profile) Snapshot() Snapshot {
	stats := make(map[string]KanaStats, len(p.Mastery.Stats))
	for glyph, s := range p.Mastery.Stats {
		stats[glyph] = *s
	}
	return Snapshot{
		Version:              SchemaVersion,
		Points:               p.Progression.Points,
		Level:                p.Progression.Level,
		CurrentStreak:        p.Progression.CurrentStreak,
		MaxStreak:            p.Progression.MaxStreak,
		TotalQuestions:       p.Progression.TotalQuestions,
		CorrectAnswers:       p.Progression.CorrectAnswers,
		Accuracy:             p.Progression.Accuracy(),
		StudyMinutes:         p.Progression.StudyMinutes,
		StudyDays:            p.Progression.StudyDays,
		LastStudyDate:        p.Progression.LastStudyDate,
		StudyDates:           append([]string(nil), p.Progression.StudyDates...),
		PerfectQuizzes:       p.Progression.PerfectQuizzes,
		MasteredKanas:        p.Mastery.MasteredGlyphs(),
		LearningKanas:        p.Mastery.LearningGlyphs(),
		UnlockedAchievements: setToList(p.Unlocked),
		ModesUsed:            setToList(p.ModesUsed),
		PracticeStats:        stats,
	}
}

// ProfileFromSnapshot rebuilds a profile, defaulting anything missing.
// Level is never trusted below what the points imply.
func ProfileFromSnapshot(snap Snapshot) *Profile {
	p := NewProfile()
	p.Progression.Points = snap.Points
	p.Progression.Level = snap.Level
	if computed := LevelFor(snap.Points); computed > p.Progression.Level {
		p.Progression.Level = computed
	}
	if p.Progression.Level < 1 {
		p.Progression.Level = 1
	}
	p.Progression.CurrentStreak = snap.CurrentStreak
	p.Progression.MaxStreak = snap.MaxStreak
	p.Progression.TotalQuestions = snap.TotalQuestions
	p.Progression.CorrectAnswers = snap.CorrectAnswers
	p.Progression.StudyMinutes = snap.StudyMinutes
	p.Progression.StudyDays = snap.StudyDays
	p.Progression.LastStudyDate = snap.LastStudyDate
	p.Progression.StudyDates = append([]string(nil), snap.StudyDates...)
	p.Progression.PerfectQuizzes = snap.PerfectQuizzes

	for glyph, s := range snap.PracticeStats {
		copied := s
		p.Mastery.Stats[glyph] = &copied
	}
	for _, glyph := range snap.MasteredKanas {
		p.Mastery.mastered[glyph] = true
	}
	for _, glyph := range snap.LearningKanas {
		if !p.Mastery.mastered[glyph] {
			p.Mastery.learning[glyph] = true
		}
	}
	for _, id := range snap.UnlockedAchievements {
		p.Unlocked[id] = true
	}
	for _, mode := range snap.ModesUsed {
		p.ModesUsed[mode] = true
	}
	return p
}

func setToList(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Settings is the second, independent persisted bundle.
type Settings struct {
	DefaultScript     string `yaml:"default_script"`
	QuizQuestionCount int    `yaml:"quiz_question_count"`
}

func DefaultSettings() Settings {
	return Settings{DefaultScript: "hiragana", QuizQuestionCount: 20}
}

// Normalize fills invalid or missing fields with defaults.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if s.DefaultScript != "hiragana" && s.DefaultScript != "katakana" {
		s.DefaultScript = def.DefaultScript
	}
	if s.QuizQuestionCount <= 0 {
		s.QuizQuestionCount = def.QuizQuestionCount
	}
	return s
}

// AttemptRecord is one practice answer as logged to the history store.
type AttemptRecord struct {
	Glyph      string
	Mode       string
	Correct    bool
	AnsweredAt time.Time
}

// QuizRecord is one finished quiz as logged to the history store.
type QuizRecord struct {
	ID           string
	Script       string
	Total        int
	Correct      int
	Accuracy     int
	DurationSecs int
	Points       int
	FinishedAt   time.Time
}

// GlyphAggregate summarizes logged attempts for one glyph.
type GlyphAggregate struct {
	Glyph    string
	Attempts int
	Correct  int
}

func (g GlyphAggregate) Accuracy() int {
	if g.Attempts == 0 {
		return 0
	}
	return int(float64(g.Correct)/float64(g.Attempts)*100 + 0.5)
}
