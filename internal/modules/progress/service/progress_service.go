package service

import (
	"context"
	"fmt"

	"gojuon/internal/modules/progress/domain"
	progressout "gojuon/internal/modules/progress/port/out"
	"gojuon/internal/platform/clock"
)

// AttemptResult is what one recorded answer produced.
type AttemptResult struct {
	Delta       domain.MasteryDelta
	Consecutive int
	Points      int
	LeveledUp   bool
	Unlocked    []domain.Achievement
}

// QuizOutcome is what one finished quiz produced.
type QuizOutcome struct {
	Points    int
	LeveledUp bool
	Perfect   bool
	Unlocked  []domain.Achievement
}

// ProgressService is the single writer of the learner profile. Every
// mutating call applies the domain transition, re-evaluates level and
// achievements, and checkpoints to the store. Saves are best-effort: a
// failed write is reported but never blocks or corrupts in-memory state.
type ProgressService struct {
	clock   clock.Clock
	store   progressout.ProfileStore
	index   progressout.KanaIndex
	profile *domain.Profile
	saveErr error
}

func NewProgressService(clk clock.Clock, store progressout.ProfileStore, index progressout.KanaIndex) *ProgressService {
	return &ProgressService{clock: clk, store: store, index: index, profile: domain.NewProfile()}
}

// Load restores the persisted bundle. Absent or unreadable data means a
// fresh profile, never an error.
func (s *ProgressService) Load(ctx context.Context) error {
	snap, ok, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if ok {
		s.profile = domain.ProfileFromSnapshot(snap)
	} else {
		s.profile = domain.NewProfile()
	}
	return nil
}

func (s *ProgressService) Profile() *domain.Profile { return s.profile }

// LastSaveErr reports the outcome of the most recent checkpoint.
func (s *ProgressService) LastSaveErr() error { return s.saveErr }

func (s *ProgressService) checkpoint(ctx context.Context) {
	s.saveErr = s.store.Save(ctx, s.profile.Snapshot())
}

// RecordAttempt applies one practice answer. The streak lives on the
// canonical (hiragana) record while the literal glyph moves between the
// mastered and learning sets: +5 points for a correct answer, +10 when it
// completes a mastery, nothing when wrong.
func (s *ProgressService) RecordAttempt(ctx context.Context, canonical, literal string, correct bool) AttemptResult {
	now := s.clock.Now()
	delta := s.profile.Mastery.RecordAttempt(canonical, literal, correct, now)
	s.profile.Progression.RecordAnswer(correct)

	points := 0
	if correct {
		if delta.To == domain.Mastered && delta.From != domain.Mastered {
			points = domain.PointsPerMastery
		} else {
			points = domain.PointsPerCorrect
		}
	}
	leveled := false
	if points > 0 {
		leveled = s.profile.Progression.AwardPoints(points)
	}
	unlocked := s.evaluate(ctx)
	s.checkpoint(ctx)
	return AttemptResult{
		Delta:       delta,
		Consecutive: s.profile.Mastery.Stats[canonical].ConsecutiveCorrect,
		Points:      points,
		LeveledUp:   leveled,
		Unlocked:    unlocked,
	}
}

// ApplyQuizResult folds a finished quiz into the account totals. The quiz
// engine computes the earned points; answers do not touch per-kana mastery.
func (s *ProgressService) ApplyQuizResult(ctx context.Context, total, correct, accuracy, points int) QuizOutcome {
	p := s.profile.Progression
	p.TotalQuestions += total
	p.CorrectAnswers += correct
	perfect := accuracy == 100 && total > 0
	if perfect {
		p.PerfectQuizzes++
	}
	leveled := p.AwardPoints(points)
	unlocked := s.evaluate(ctx)
	s.checkpoint(ctx)
	return QuizOutcome{Points: points, LeveledUp: leveled, Perfect: perfect, Unlocked: unlocked}
}

// MarkCard handles the flashcard self-assessment: easy promotes straight to
// mastered (worth +5), difficult resets the streak and demotes.
func (s *ProgressService) MarkCard(ctx context.Context, canonical, literal string, easy bool) AttemptResult {
	now := s.clock.Now()
	var delta domain.MasteryDelta
	points := 0
	leveled := false
	if easy {
		delta = s.profile.Mastery.ForceMastered(canonical, literal, now)
		points = domain.PointsPerCorrect
		leveled = s.profile.Progression.AwardPoints(points)
	} else {
		delta = s.profile.Mastery.Demote(canonical, literal, now)
	}
	unlocked := s.evaluate(ctx)
	s.checkpoint(ctx)
	return AttemptResult{
		Delta:       delta,
		Consecutive: s.profile.Mastery.Stats[canonical].ConsecutiveCorrect,
		Points:      points,
		LeveledUp:   leveled,
		Unlocked:    unlocked,
	}
}

// Touch marks an unseen kana as learning when the browse grid is used.
func (s *ProgressService) Touch(ctx context.Context, glyph string) bool {
	if !s.profile.Mastery.Touch(glyph) {
		return false
	}
	s.checkpoint(ctx)
	return true
}

func (s *ProgressService) StatusOf(glyph string) (domain.Status, domain.KanaStats) {
	status := s.profile.Mastery.StatusOf(glyph)
	if stats, ok := s.profile.Mastery.Stats[glyph]; ok {
		return status, *stats
	}
	return status, domain.KanaStats{}
}

func (s *ProgressService) RecordStudyTick(ctx context.Context) {
	s.profile.Progression.RecordStudyTick()
	s.checkpoint(ctx)
}

func (s *ProgressService) RecordStudyDay(ctx context.Context) bool {
	if !s.profile.Progression.RecordStudyDay(s.clock.Now()) {
		return false
	}
	s.checkpoint(ctx)
	return true
}

func (s *ProgressService) RecordModeUsed(ctx context.Context, mode string) []domain.Achievement {
	if s.profile.ModesUsed[mode] {
		return nil
	}
	s.profile.ModesUsed[mode] = true
	unlocked := s.evaluate(ctx)
	s.checkpoint(ctx)
	return unlocked
}

// Reset drops every record. The only path by which level and mastery go down.
func (s *ProgressService) Reset(ctx context.Context) {
	s.profile = domain.NewProfile()
	s.checkpoint(ctx)
}

// ImportProfile replaces the in-memory state with an imported snapshot.
func (s *ProgressService) ImportProfile(ctx context.Context, snap domain.Snapshot) {
	s.profile = domain.ProfileFromSnapshot(snap)
	s.evaluate(ctx)
	s.checkpoint(ctx)
}

// evaluate runs the achievement table against the current state and
// returns only the fresh unlocks.
func (s *ProgressService) evaluate(ctx context.Context) []domain.Achievement {
	p := s.profile.Progression
	snap := domain.EvalSnapshot{
		TotalQuestions: p.TotalQuestions,
		Accuracy:       p.Accuracy(),
		Level:          p.Level,
		MaxStreak:      p.MaxStreak,
		StudyMinutes:   p.StudyMinutes,
		StudyDayStreak: p.ConsecutiveStudyDays(),
		PerfectQuizzes: p.PerfectQuizzes,
		ModesUsed:      len(s.profile.ModesUsed),
		ScriptMastered: map[string]bool{},
	}
	if s.index != nil {
		for _, script := range []string{"hiragana", "katakana"} {
			glyphs, err := s.index.Glyphs(ctx, script)
			if err != nil || len(glyphs) == 0 {
				continue
			}
			snap.ScriptMastered[script] = s.profile.Mastery.MasteredCount(glyphs) == len(glyphs)
		}
	}
	return domain.EvaluateAchievements(s.profile.Unlocked, snap)
}
