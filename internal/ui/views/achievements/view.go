package achievements

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "gojuon/internal/modules/progress/dto"
	"gojuon/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AchievementPort interface {
	Achievements(ctx context.Context) ([]progressdto.AchievementOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Achievements []progressdto.AchievementOutput
	Err          error
}

// ─── list item ───────────────────────────────────────────────────────────────

type achievementItem struct {
	a progressdto.AchievementOutput
}

func (i achievementItem) Title() string {
	if i.a.Unlocked {
		return "🏆 " + i.a.Name
	}
	return "🔒 " + i.a.Name
}
func (i achievementItem) Description() string { return i.a.Description }
func (i achievementItem) FilterValue() string { return i.a.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    AchievementPort
	list    list.Model
	loading bool
	width   int
	height  int
}

func New(port AchievementPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Achievements"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l, loading: true}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh reloads the achievement list.
func (m Model) Refresh() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		out, err := port.Achievements(context.Background())
		return LoadedMsg{Achievements: out, Err: err}
	}
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height)

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Achievements — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Achievements))
		for i, a := range msg.Achievements {
			items[i] = achievementItem{a: a}
		}
		m.list.Title = "Achievements"
		cmds = append(cmds, m.list.SetItems(items))
	}

	if !m.loading {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Loading achievements…"))
	}
	return m.list.View()
}
