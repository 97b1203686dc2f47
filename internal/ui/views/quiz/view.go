package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	quizdomain "gojuon/internal/modules/quiz/domain"
	quizdto "gojuon/internal/modules/quiz/dto"
	"gojuon/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type QuizPort interface {
	Start(ctx context.Context, input quizdto.StartInput) (quizdto.StateOutput, error)
	Answer(ctx context.Context, input quizdto.AnswerInput) (quizdto.StateOutput, error)
	Tick(ctx context.Context, generation int) (quizdto.StateOutput, error)
	Stop(ctx context.Context) error
}

// ─── messages ────────────────────────────────────────────────────────────────

// StateMsg carries every quiz state refresh; the app watches it for a
// finished result so the status bar can pick up the points.
type StateMsg struct {
	State quizdto.StateOutput
	Err   error
}

type countdownMsg struct{ generation int }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port QuizPort

	script string
	count  int
	state  quizdto.StateOutput
	err    error

	width  int
	height int
}

func New(port QuizPort, count int) Model {
	if count <= 0 {
		count = quizdomain.DefaultQuestionCount
	}
	return Model{port: port, script: "hiragana", count: count}
}

func (m Model) Init() tea.Cmd { return nil }

// SetScript changes the script used by the next quiz.
func (m *Model) SetScript(script string) {
	if script == "hiragana" || script == "katakana" {
		m.script = script
	}
}

// SetCount changes the question count used by the next quiz.
func (m *Model) SetCount(count int) {
	if count > 0 {
		m.count = count
	}
}

// Start begins a quiz with the configured script and size.
func (m Model) Start() tea.Cmd {
	port, script, count := m.port, m.script, m.count
	return func() tea.Msg {
		state, err := port.Start(context.Background(), quizdto.StartInput{Script: script, Count: count})
		return StateMsg{State: state, Err: err}
	}
}

// Teardown discards an in-flight quiz when the tab loses focus.
func (m *Model) Teardown() tea.Cmd {
	if m.state.Phase != string(quizdomain.InProgress) {
		return nil
	}
	m.state = quizdto.StateOutput{}
	port := m.port
	return func() tea.Msg {
		_ = port.Stop(context.Background())
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case StateMsg:
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		started := m.state.Phase != string(quizdomain.InProgress) &&
			msg.State.Phase == string(quizdomain.InProgress)
		m.state = msg.State
		if started {
			// One countdown chain per quiz; ticks re-arm themselves.
			return m, m.countdownCmd(m.state.Generation)
		}

	case countdownMsg:
		if m.state.Phase != string(quizdomain.InProgress) {
			return m, nil
		}
		port := m.port
		gen := msg.generation
		return m, func() tea.Msg {
			state, err := port.Tick(context.Background(), gen)
			return tickedMsg{state: state, err: err}
		}

	case tickedMsg:
		if msg.err != nil {
			return m, nil
		}
		prevResult := m.state.Result
		m.state = msg.state
		if m.state.Phase == string(quizdomain.InProgress) {
			return m, m.countdownCmd(m.state.Generation)
		}
		if m.state.Result != nil && prevResult == nil {
			// Countdown expired on the last question; surface the result.
			state := m.state
			return m, func() tea.Msg { return StateMsg{State: state} }
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

type tickedMsg struct {
	state quizdto.StateOutput
	err   error
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.state.Phase {
	case string(quizdomain.InProgress):
		switch msg.String() {
		case "1", "2", "3", "4":
			if m.state.Question == nil {
				return m, nil
			}
			idx := int(msg.String()[0] - '1')
			if idx >= len(m.state.Question.Options) {
				return m, nil
			}
			answer := m.state.Question.Options[idx]
			port := m.port
			return m, func() tea.Msg {
				state, err := port.Answer(context.Background(), quizdto.AnswerInput{Answer: answer})
				return StateMsg{State: state, Err: err}
			}
		case "esc":
			cmd := m.Teardown()
			return m, cmd
		}
	default:
		switch msg.String() {
		case "enter", " ":
			return m, m.Start()
		case "s":
			if m.script == "hiragana" {
				m.script = "katakana"
			} else {
				m.script = "hiragana"
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.state.Phase {
	case string(quizdomain.InProgress):
		body = m.renderQuestion()
	case string(quizdomain.Finished):
		body = m.renderResult()
	default:
		body = m.renderIdle()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.Pane.Width(min(m.width-4, 60)).Render(body))
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderIdle() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Quiz") + "\n\n")
	sb.WriteString(theme.Muted.Render("script:    ") + m.script + "\n")
	sb.WriteString(theme.Muted.Render("questions: ") + fmt.Sprintf("%d", m.count) + "\n\n")
	if m.err != nil {
		sb.WriteString(theme.Wrong.Render(m.err.Error()) + "\n\n")
	}
	sb.WriteString(theme.Muted.Render("enter: start  s: script"))
	return sb.String()
}

func (m Model) renderQuestion() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Quiz") + "  " +
		theme.Muted.Render(fmt.Sprintf("question %d/%d", m.state.Index+1, m.state.Total)) + "\n\n")
	sb.WriteString(m.renderCountdown() + "\n\n")

	if q := m.state.Question; q != nil {
		sb.WriteString(theme.Hot.Render(q.Glyph) + "\n\n")
		for i, opt := range q.Options {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, opt))
		}
	}

	if a := m.state.LastAnswer; a != nil {
		sb.WriteString("\n")
		if a.Correct {
			sb.WriteString(theme.Mastered.Render("✓ " + a.Glyph + " = " + a.CorrectAnswer))
		} else {
			sb.WriteString(theme.Wrong.Render("✗ " + a.Glyph + " = " + a.CorrectAnswer))
		}
	}
	return sb.String()
}

func (m Model) renderCountdown() string {
	total := quizdomain.QuestionSeconds
	remaining := m.state.RemainingSecs
	style := theme.Mastered
	if remaining <= 3 {
		style = theme.Wrong
	}
	bar := style.Render(strings.Repeat("█", remaining)) +
		theme.Muted.Render(strings.Repeat("░", total-remaining))
	return bar + fmt.Sprintf(" %2ds", remaining)
}

func (m Model) renderResult() string {
	r := m.state.Result
	if r == nil {
		return m.renderIdle()
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Quiz complete") + "\n\n")
	if r.Perfect {
		sb.WriteString(theme.Hot.Render("Perfect score!") + "\n\n")
	}
	sb.WriteString(theme.Muted.Render("score:    ") + fmt.Sprintf("%d/%d", r.Correct, r.Total) + "\n")
	sb.WriteString(theme.Muted.Render("accuracy: ") + fmt.Sprintf("%d%%", r.Accuracy) + "\n")
	sb.WriteString(theme.Muted.Render("time:     ") + fmt.Sprintf("%ds", r.DurationSecs) + "\n")
	sb.WriteString(theme.Muted.Render("points:   ") + fmt.Sprintf("+%d", r.Points))
	if r.Bonus > 0 {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf(" (incl. %d bonus)", r.Bonus)))
	}
	sb.WriteString("\n")
	if r.LeveledUp {
		sb.WriteString("\n" + theme.Hot.Render(fmt.Sprintf("Level up! Now level %d", r.Level)) + "\n")
	}
	for _, u := range r.Unlocked {
		sb.WriteString(theme.Hot.Render("🏆 "+u.Name) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: play again"))
	return sb.String()
}

func (m Model) countdownCmd(generation int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownMsg{generation: generation}
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
