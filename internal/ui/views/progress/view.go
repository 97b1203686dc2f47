package progress

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "gojuon/internal/modules/progress/dto"
	"gojuon/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ProgressPort interface {
	Overview(ctx context.Context) (progressdto.OverviewOutput, error)
	ScriptProgress(ctx context.Context, script string) (progressdto.ScriptProgressOutput, error)
	RowProgress(ctx context.Context, script string) ([]progressdto.RowProgressOutput, error)
	TroubleKanas(ctx context.Context, limit int) ([]progressdto.TroubleKanaOutput, error)
	QuizHistory(ctx context.Context, limit int) ([]progressdto.QuizHistoryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Overview progressdto.OverviewOutput
	Scripts  []progressdto.ScriptProgressOutput
	Rows     map[string][]progressdto.RowProgressOutput
	Trouble  []progressdto.TroubleKanaOutput
	Quizzes  []progressdto.QuizHistoryOutput
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port ProgressPort

	data   LoadedMsg
	loaded bool
	bar    progress.Model
	body   viewport.Model

	width  int
	height int
}

func New(port ProgressPort) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false

	vp := viewport.New(0, 0)
	return Model{port: port, bar: bar, body: vp}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh reloads every dashboard section.
func (m Model) Refresh() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		ctx := context.Background()
		overview, err := port.Overview(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		var scripts []progressdto.ScriptProgressOutput
		rows := make(map[string][]progressdto.RowProgressOutput)
		for _, script := range []string{"hiragana", "katakana"} {
			sp, err := port.ScriptProgress(ctx, script)
			if err != nil {
				return LoadedMsg{Err: err}
			}
			scripts = append(scripts, sp)
			rp, err := port.RowProgress(ctx, script)
			if err != nil {
				return LoadedMsg{Err: err}
			}
			rows[script] = rp
		}
		trouble, err := port.TroubleKanas(ctx, 5)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		quizzes, err := port.QuizHistory(ctx, 5)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Overview: overview, Scripts: scripts, Rows: rows, Trouble: trouble, Quizzes: quizzes}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(m.width-20, 40)
		m.body.Width = m.width - 4
		m.body.Height = m.height - 2
		if m.loaded {
			m.body.SetContent(m.renderBody())
		}

	case LoadedMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.data = msg
		m.loaded = true
		m.body.SetContent(m.renderBody())

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Refresh()
		}
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Loading progress…"))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(m.body.View())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderBody() string {
	o := m.data.Overview
	var sb strings.Builder

	sb.WriteString(theme.Title.Render("Progress") + "\n\n")

	sb.WriteString(theme.Hot.Render(fmt.Sprintf("Level %d — %s", o.Level, o.LevelTitle)) + "\n")
	sb.WriteString(m.levelBar(o) + "\n\n")

	sb.WriteString(fmt.Sprintf("%s%d   %s%d%%   %s%d/%d\n",
		theme.Muted.Render("points: "), o.Points,
		theme.Muted.Render("accuracy: "), o.Accuracy,
		theme.Muted.Render("answers: "), o.CorrectAnswers, o.TotalQuestions))
	sb.WriteString(fmt.Sprintf("%s%d (max %d)   %s%dm over %d days (streak %d)\n",
		theme.Muted.Render("streak: "), o.CurrentStreak, o.MaxStreak,
		theme.Muted.Render("study: "), o.StudyMinutes, o.StudyDays, o.StudyDayStreak))
	sb.WriteString(fmt.Sprintf("%s%d/%d kana mastered (%d%%), %d learning\n\n",
		theme.Muted.Render("kana:   "), o.MasteredTotal, o.KanaTotal, o.OverallPercent, o.LearningTotal))

	for _, sp := range m.data.Scripts {
		sb.WriteString(theme.Title.Render(sp.Script) + " " +
			theme.Muted.Render(fmt.Sprintf("%d/%d mastered", sp.Mastered, sp.Total)) + "\n")
		sb.WriteString(m.bar.ViewAs(float64(sp.Percent)/100) + fmt.Sprintf(" %d%%\n", sp.Percent))
		sb.WriteString(m.renderRows(sp.Script) + "\n")
	}

	if len(m.data.Trouble) > 0 {
		sb.WriteString(theme.Title.Render("Needs work") + "\n")
		for _, t := range m.data.Trouble {
			sb.WriteString(fmt.Sprintf("  %s  %s\n", theme.Wrong.Render(t.Glyph),
				theme.Muted.Render(fmt.Sprintf("%d%% over %d attempts", t.Accuracy, t.Attempts))))
		}
		sb.WriteString("\n")
	}

	if len(m.data.Quizzes) > 0 {
		sb.WriteString(theme.Title.Render("Recent quizzes") + "\n")
		for _, q := range m.data.Quizzes {
			sb.WriteString(fmt.Sprintf("  %s  %s %d/%d (%d%%) +%d pts\n",
				theme.Muted.Render(q.FinishedAt.Format("2006-01-02 15:04")),
				q.Script, q.Correct, q.Total, q.Accuracy, q.Points))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(theme.Muted.Render("r: refresh  ↑/↓: scroll"))
	return sb.String()
}

func (m Model) levelBar(o progressdto.OverviewOutput) string {
	if o.NextLevelPoints == 0 {
		return theme.Mastered.Render("max level reached")
	}
	ratio := float64(o.Points) / float64(o.NextLevelPoints)
	if ratio > 1 {
		ratio = 1
	}
	return m.bar.ViewAs(ratio) + theme.Muted.Render(fmt.Sprintf(" %d/%d to next level", o.Points, o.NextLevelPoints))
}

func (m Model) renderRows(script string) string {
	rows := m.data.Rows[script]
	var sb strings.Builder
	for _, r := range rows {
		if r.Total == 0 {
			continue
		}
		state := theme.Muted
		switch {
		case r.Mastered == r.Total:
			state = theme.Mastered
		case r.Mastered > 0 || r.Learning > 0:
			state = theme.Learning
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			state.Render(fmt.Sprintf("%-14s", r.Title)),
			theme.Muted.Render(fmt.Sprintf("%d/%d", r.Mastered, r.Total))))
	}
	return sb.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
