package cards

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	flashcarddto "gojuon/internal/modules/flashcard/dto"
	"gojuon/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CardPort interface {
	Load(ctx context.Context, input flashcarddto.LoadInput) (flashcarddto.CardOutput, error)
	Current(ctx context.Context) (flashcarddto.CardOutput, error)
	Flip(ctx context.Context) (flashcarddto.CardOutput, error)
	Next(ctx context.Context) (flashcarddto.CardOutput, error)
	Prev(ctx context.Context) (flashcarddto.CardOutput, error)
	Shuffle(ctx context.Context) (flashcarddto.CardOutput, error)
	MarkEasy(ctx context.Context) (flashcarddto.MarkOutput, error)
	MarkDifficult(ctx context.Context) (flashcarddto.MarkOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type CardMsg struct {
	Card flashcarddto.CardOutput
	Err  error
}

// MarkedMsg bubbles up so the app can refresh the status bar.
type MarkedMsg struct {
	Mark flashcarddto.MarkOutput
	Err  error
}

type autoTickMsg struct {
	generation int
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   CardPort
	script string
	card   flashcarddto.CardOutput
	loaded bool

	// Autoplay flips each card two seconds in and advances two seconds
	// later. The generation invalidates ticks armed before a toggle.
	autoplay   bool
	autoPhase  int
	generation int

	width  int
	height int
}

func New(port CardPort) Model {
	return Model{port: port, script: "hiragana"}
}

func (m Model) Init() tea.Cmd { return nil }

// Activate loads the deck the first time the tab gains focus.
func (m Model) Activate() tea.Cmd {
	if m.loaded {
		return nil
	}
	return m.loadCmd(m.script)
}

// Teardown stops autoplay when the tab loses focus.
func (m *Model) Teardown() {
	m.autoplay = false
	m.generation++
}

// ShuffleDeck reshuffles, loading the deck first if needed.
func (m Model) ShuffleDeck() tea.Cmd {
	port, script := m.port, m.script
	loaded := m.loaded
	return func() tea.Msg {
		ctx := context.Background()
		if !loaded {
			if _, err := port.Load(ctx, flashcarddto.LoadInput{Script: script}); err != nil {
				return CardMsg{Err: err}
			}
		}
		card, err := port.Shuffle(ctx)
		return CardMsg{Card: card, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case CardMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.card = msg.Card
		m.loaded = true

	case MarkedMsg:
		if msg.Err != nil {
			return m, nil
		}
		// The deck already advanced; fetch the card it now points at.
		return m, m.callCmd(func(ctx context.Context) (flashcarddto.CardOutput, error) {
			return m.port.Current(ctx)
		})

	case autoTickMsg:
		if !m.autoplay || msg.generation != m.generation {
			return m, nil
		}
		m.autoPhase++
		switch m.autoPhase {
		case 2:
			flip := m.callCmd(func(ctx context.Context) (flashcarddto.CardOutput, error) { return m.port.Flip(ctx) })
			return m, tea.Batch(flip, m.autoTickCmd())
		case 4:
			m.autoPhase = 0
			next := m.callCmd(func(ctx context.Context) (flashcarddto.CardOutput, error) { return m.port.Next(ctx) })
			return m, tea.Batch(next, m.autoTickCmd())
		}
		return m, m.autoTickCmd()

	case tea.KeyMsg:
		if !m.loaded {
			return m, nil
		}
		// Any manual interaction takes over from autoplay.
		if m.autoplay && msg.String() != "p" {
			m.autoplay = false
			m.generation++
		}
		switch msg.String() {
		case "p":
			m.autoplay = !m.autoplay
			m.generation++
			if !m.autoplay {
				return m, nil
			}
			m.autoPhase = 0
			if m.card.Flipped {
				m.autoPhase = 2
			}
			return m, m.autoTickCmd()
		case " ", "enter":
			return m, m.callCmd(func(ctx context.Context) (flashcarddto.CardOutput, error) { return m.port.Flip(ctx) })
		case "right", "l":
			return m, m.callCmd(func(ctx context.Context) (flashcarddto.CardOutput, error) { return m.port.Next(ctx) })
		case "left", "h":
			return m, m.callCmd(func(ctx context.Context) (flashcarddto.CardOutput, error) { return m.port.Prev(ctx) })
		case "r":
			return m, m.callCmd(func(ctx context.Context) (flashcarddto.CardOutput, error) { return m.port.Shuffle(ctx) })
		case "e":
			return m, m.markCmd(true)
		case "d":
			return m, m.markCmd(false)
		case "s":
			if m.script == "hiragana" {
				m.script = "katakana"
			} else {
				m.script = "hiragana"
			}
			return m, m.loadCmd(m.script)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Flashcards") + "  " + theme.Muted.Render(m.script) + "\n\n")

	if !m.loaded {
		sb.WriteString(theme.Muted.Render("loading deck…"))
	} else {
		face := m.card.Glyph
		style := cardFront
		if m.card.Flipped {
			face = m.card.Romaji
			style = cardBack
		}
		sb.WriteString(style.Render(face) + "\n\n")
		counter := fmt.Sprintf("card %d/%d", m.card.Index+1, m.card.Total)
		if m.autoplay {
			counter += "  ▶ auto"
		}
		sb.WriteString(theme.Muted.Render(counter) + "\n\n")
		sb.WriteString(theme.Muted.Render("space: flip  ←/→: move  r: shuffle  e: easy  d: hard  p: auto  s: script"))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.Pane.Width(min(m.width-4, 48)).Render(sb.String()))
}

// ─── private ─────────────────────────────────────────────────────────────────

var (
	cardFront = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(theme.Lavender).
			Foreground(theme.Text).
			Bold(true).
			Padding(1, 4)

	cardBack = cardFront.BorderForeground(theme.Sapphire).Foreground(theme.Sapphire)
)

func (m Model) loadCmd(script string) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		card, err := port.Load(context.Background(), flashcarddto.LoadInput{Script: script})
		return CardMsg{Card: card, Err: err}
	}
}

func (m Model) callCmd(call func(context.Context) (flashcarddto.CardOutput, error)) tea.Cmd {
	return func() tea.Msg {
		card, err := call(context.Background())
		return CardMsg{Card: card, Err: err}
	}
}

func (m Model) autoTickCmd() tea.Cmd {
	gen := m.generation
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return autoTickMsg{generation: gen}
	})
}

func (m Model) markCmd(easy bool) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		var out flashcarddto.MarkOutput
		var err error
		if easy {
			out, err = port.MarkEasy(context.Background())
		} else {
			out, err = port.MarkDifficult(context.Background())
		}
		return MarkedMsg{Mark: out, Err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
