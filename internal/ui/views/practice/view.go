package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	practicedto "gojuon/internal/modules/practice/dto"
	"gojuon/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PracticePort interface {
	Next(ctx context.Context, input practicedto.NextInput) (practicedto.QuestionOutput, error)
	Evaluate(ctx context.Context, input practicedto.EvaluateInput) (practicedto.EvaluateOutput, error)
	Clear(ctx context.Context) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type QuestionMsg struct {
	Question practicedto.QuestionOutput
	Err      error
}

// AnsweredMsg bubbles up so the app can refresh the status bar with the
// points and unlocks the attempt produced.
type AnsweredMsg struct {
	Result practicedto.EvaluateOutput
	Err    error
}

type advanceMsg struct{ generation int }

const advanceDelay = 2 * time.Second

var kinds = []string{"recognition", "listening", "writing"}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port PracticePort

	script string
	kind   string

	question practicedto.QuestionOutput
	active   bool
	answered bool
	result   practicedto.EvaluateOutput

	cursor     int
	input      textinput.Model
	generation int

	width  int
	height int
}

func New(port PracticePort) Model {
	ti := textinput.New()
	ti.Placeholder = "type the kana…"
	ti.CharLimit = 8
	return Model{
		port:   port,
		script: "hiragana",
		kind:   "recognition",
		input:  ti,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Typing reports whether free text entry is active, in which case global
// key bindings must yield.
func (m Model) Typing() bool {
	return m.active && !m.answered && m.question.Kind == "writing"
}

// SetScript changes the source script for subsequent questions.
func (m *Model) SetScript(script string) {
	if script == "hiragana" || script == "katakana" {
		m.script = script
	}
}

// SetKind changes the question kind for subsequent questions.
func (m *Model) SetKind(kind string) bool {
	for _, k := range kinds {
		if k == kind {
			m.kind = kind
			return true
		}
	}
	return false
}

// Teardown discards any in-flight question when the tab loses focus.
func (m *Model) Teardown() tea.Cmd {
	if !m.active {
		return nil
	}
	m.active = false
	m.answered = false
	m.generation++
	m.input.Blur()
	port := m.port
	return func() tea.Msg {
		_ = port.Clear(context.Background())
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case QuestionMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.question = msg.Question
		m.active = true
		m.answered = false
		m.cursor = 0
		m.generation++
		if msg.Question.Kind == "writing" {
			m.input.SetValue("")
			return m, m.input.Focus()
		}
		m.input.Blur()

	case AnsweredMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.answered = true
		m.result = msg.Result
		m.generation++
		gen := m.generation
		return m, tea.Tick(advanceDelay, func(time.Time) tea.Msg {
			return advanceMsg{generation: gen}
		})

	case advanceMsg:
		// A stale generation means the user already moved on.
		if msg.generation != m.generation || !m.answered {
			return m, nil
		}
		return m, m.nextCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Typing() {
		switch msg.String() {
		case "enter":
			return m, m.evaluateCmd(m.input.Value())
		case "esc":
			cmd := m.Teardown()
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "n", "enter":
		if m.answered || !m.active {
			return m, m.nextCmd()
		}
		if m.active && len(m.question.Options) > 0 {
			return m, m.evaluateCmd(m.question.Options[m.cursor])
		}
	case "1", "2", "3", "4":
		if m.active && !m.answered {
			idx := int(msg.String()[0] - '1')
			if idx < len(m.question.Options) {
				return m, m.evaluateCmd(m.question.Options[idx])
			}
		}
	case "up", "k":
		if m.active && !m.answered && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.active && !m.answered && m.cursor < len(m.question.Options)-1 {
			m.cursor++
		}
	case "m":
		for i, k := range kinds {
			if k == m.kind {
				m.kind = kinds[(i+1)%len(kinds)]
				break
			}
		}
		cmd := m.Teardown()
		return m, cmd
	case "s":
		if m.script == "hiragana" {
			m.script = "katakana"
		} else {
			m.script = "hiragana"
		}
		cmd := m.Teardown()
		return m, cmd
	case "esc":
		cmd := m.Teardown()
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Practice") + "  " +
		theme.Muted.Render(m.script+" · "+m.kind) + "\n\n")

	switch {
	case !m.active:
		sb.WriteString(theme.Muted.Render("n: new question  m: mode  s: script"))
	default:
		sb.WriteString(m.renderQuestion())
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.Pane.Width(min(m.width-4, 60)).Render(sb.String()))
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderQuestion() string {
	var sb strings.Builder
	sb.WriteString(m.question.Prompt + "\n\n")
	sb.WriteString(glyphStyle.Render(m.promptGlyph()) + "\n\n")

	if m.question.Kind == "writing" {
		sb.WriteString(m.input.View() + "\n")
	} else {
		for i, opt := range m.question.Options {
			line := fmt.Sprintf("%d. %s", i+1, opt)
			switch {
			case m.answered && opt == m.result.CorrectAnswer:
				line = theme.Mastered.Render(line)
			case m.answered:
				line = theme.Muted.Render(line)
			case i == m.cursor:
				line = theme.Hot.Render("▸ " + line)
			default:
				line = "  " + line
			}
			sb.WriteString(line + "\n")
		}
	}

	if m.answered {
		sb.WriteString("\n" + m.renderFeedback())
	}
	return sb.String()
}

func (m Model) promptGlyph() string {
	switch m.question.Kind {
	case "listening":
		return "🔊 " + m.question.Glyph
	case "writing":
		return m.question.Romaji
	}
	return m.question.Glyph
}

func (m Model) renderFeedback() string {
	style := theme.Wrong
	if m.result.Correct {
		style = theme.Mastered
	}
	line := style.Render(m.result.Feedback)
	if m.result.Points > 0 {
		line += theme.Muted.Render(fmt.Sprintf("  +%d pts", m.result.Points))
	}
	if m.result.LeveledUp {
		line += "\n" + theme.Hot.Render("Level up!")
	}
	for _, u := range m.result.Unlocked {
		line += "\n" + theme.Hot.Render("🏆 "+u.Name)
	}
	return line
}

var glyphStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) nextCmd() tea.Cmd {
	input := practicedto.NextInput{Script: m.script, Kind: m.kind}
	port := m.port
	return func() tea.Msg {
		q, err := port.Next(context.Background(), input)
		return QuestionMsg{Question: q, Err: err}
	}
}

func (m Model) evaluateCmd(answer string) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		out, err := port.Evaluate(context.Background(), practicedto.EvaluateInput{Answer: answer})
		return AnsweredMsg{Result: out, Err: err}
	}
}
