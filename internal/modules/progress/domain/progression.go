package domain

import (
	"sort"
	"time"
)

// LevelThresholds holds the points required for levels 1..10.
var LevelThresholds = []int{0, 100, 300, 600, 1000, 1500, 2100, 2800, 3600, 4500}

// MaxLevel is the highest reachable level.
const MaxLevel = 10

// LevelFor returns the highest level whose threshold the points meet.
func LevelFor(points int) int {
	level := 1
	for i, threshold := range LevelThresholds {
		if points >= threshold {
			level = i + 1
		}
	}
	return level
}

// LevelTitles name each level on the dashboard and in reports.
var LevelTitles = []string{
	"Beginner", "Practice Novice", "Quiz Challenger", "Memory Adept",
	"Progress Tracker", "Data Keeper", "Study Analyst", "Personalization Expert",
	"Achievement Collector", "Gojūon Master",
}

// studyDateLayout is the calendar-day key for the study-date history.
const studyDateLayout = "2006-01-02"

// maxStudyDates caps the retained history; oldest entries drop first.
const maxStudyDates = 90

// Progression is the single account-wide state: points, level, streaks,
// totals, and the study calendar. Level only ever moves up during normal
// play; Reset is the one way down.
type Progression struct {
	Points         int
	Level          int
	CurrentStreak  int
	MaxStreak      int
	TotalQuestions int
	CorrectAnswers int
	StudyMinutes   int
	StudyDays      int
	LastStudyDate  string
	StudyDates     []string
	PerfectQuizzes int
}

func NewProgression() *Progression {
	return &Progression{Level: 1}
}

// AwardPoints adds n and recomputes the level, reporting whether it rose.
func (p *Progression) AwardPoints(n int) bool {
	p.Points += n
	if next := LevelFor(p.Points); next > p.Level {
		p.Level = next
		return true
	}
	return false
}

// Accuracy is the rounded global percentage, 0 before any question.
func (p *Progression) Accuracy() int {
	if p.TotalQuestions == 0 {
		return 0
	}
	return int(float64(p.CorrectAnswers)/float64(p.TotalQuestions)*100 + 0.5)
}

// RecordAnswer updates the global totals and the answer streak.
func (p *Progression) RecordAnswer(correct bool) {
	p.TotalQuestions++
	if correct {
		p.CorrectAnswers++
		p.CurrentStreak++
		if p.CurrentStreak > p.MaxStreak {
			p.MaxStreak = p.CurrentStreak
		}
	} else {
		p.CurrentStreak = 0
	}
}

// RecordStudyDay appends today to the study calendar when the day changed
// since the last visit. Reports whether a new day was recorded.
func (p *Progression) RecordStudyDay(now time.Time) bool {
	day := now.Format(studyDateLayout)
	if p.LastStudyDate == day {
		return false
	}
	p.LastStudyDate = day
	p.StudyDays++
	for _, d := range p.StudyDates {
		if d == day {
			return true
		}
	}
	p.StudyDates = append(p.StudyDates, day)
	if len(p.StudyDates) > maxStudyDates {
		p.StudyDates = p.StudyDates[len(p.StudyDates)-maxStudyDates:]
	}
	return true
}

// RecordStudyTick adds one minute of study time. The caller schedules it at
// most once per minute boundary.
func (p *Progression) RecordStudyTick() {
	p.StudyMinutes++
}

// ConsecutiveStudyDays counts the streak of adjacent calendar days ending at
// the most recent recorded day.
func (p *Progression) ConsecutiveStudyDays() int {
	if len(p.StudyDates) == 0 {
		return 0
	}
	days := make([]time.Time, 0, len(p.StudyDates))
	for _, d := range p.StudyDates {
		t, err := time.Parse(studyDateLayout, d)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) == 24*time.Hour {
			streak++
			continue
		}
		break
	}
	return streak
}
