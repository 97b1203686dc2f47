package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "gojuon/internal/modules/catalog/dto"
	progressdto "gojuon/internal/modules/progress/dto"
	"gojuon/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type CatalogPort interface {
	Grid(ctx context.Context, script string) (catalogdto.GridOutput, error)
	Lookup(ctx context.Context, input catalogdto.LookupInput) (catalogdto.KanaOutput, error)
	Correspond(ctx context.Context, input catalogdto.CorrespondInput) (catalogdto.KanaOutput, error)
}

type ProgressPort interface {
	StatusOf(ctx context.Context, glyph string) (progressdto.StatusOutput, error)
	TouchKana(ctx context.Context, glyph string) (bool, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type GridLoadedMsg struct {
	Grid     catalogdto.GridOutput
	Statuses map[string]string
	Err      error
}

type DetailLoadedMsg struct {
	Kana        catalogdto.KanaOutput
	Counterpart string
	Status      progressdto.StatusOutput
	Err         error
}

type touchedMsg struct {
	glyph string
	fresh bool
	err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	catalog  CatalogPort
	progress ProgressPort

	script   string
	grid     catalogdto.GridOutput
	statuses map[string]string
	row, col int

	detail      catalogdto.KanaOutput
	counterpart string
	detailStat  progressdto.StatusOutput

	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(catalog CatalogPort, progress ProgressPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		catalog:  catalog,
		progress: progress,
		script:   "hiragana",
		statuses: map[string]string{},
		spinner:  sp,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadGridCmd(m.script), m.spinner.Tick)
}

// Script returns the script currently shown in the grid.
func (m Model) Script() string { return m.script }

// SetScript switches the grid to the given script and reloads it.
func (m *Model) SetScript(script string) tea.Cmd {
	if script != "hiragana" && script != "katakana" {
		return nil
	}
	m.script = script
	m.loading = true
	return m.loadGridCmd(script)
}

// Refresh reloads the grid so mastery colors reflect the latest attempts.
func (m Model) Refresh() tea.Cmd {
	return m.loadGridCmd(m.script)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case GridLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			return m, nil
		}
		m.grid = msg.Grid
		m.statuses = msg.Statuses
		m.clampCursor()
		cmds = append(cmds, m.loadDetailCmd())

	case DetailLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Kana
			m.counterpart = msg.Counterpart
			m.detailStat = msg.Status
		}

	case touchedMsg:
		if msg.err == nil && msg.fresh {
			m.statuses[msg.glyph] = "learning"
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.loading {
			break
		}
		moved := false
		switch msg.String() {
		case "up", "k":
			m.row--
			moved = true
		case "down", "j":
			m.row++
			moved = true
		case "left", "h":
			m.col--
			moved = true
		case "right", "l":
			m.col++
			moved = true
		case "s":
			if m.script == "hiragana" {
				return m, m.SetScript("katakana")
			}
			return m, m.SetScript("hiragana")
		case "enter":
			if g := m.selectedGlyph(); g != "" {
				cmds = append(cmds, m.touchCmd(g))
			}
		}
		if moved {
			m.clampCursor()
			cmds = append(cmds, m.loadDetailCmd())
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading kana…")
	}

	gridW := m.width * 6 / 10
	detailW := m.width - gridW

	gridPane := lipgloss.NewStyle().
		Width(gridW).
		Height(m.height).
		Padding(1, 2).
		Render(m.renderGrid())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Padding(1).
		Render(m.renderDetail())

	return lipgloss.JoinHorizontal(lipgloss.Top, gridPane, detailPane)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) selectedGlyph() string {
	if m.row < 0 || m.row >= len(m.grid.Cells) {
		return ""
	}
	cells := m.grid.Cells[m.row]
	if m.col < 0 || m.col >= len(cells) {
		return ""
	}
	return cells[m.col]
}

func (m *Model) clampCursor() {
	if len(m.grid.Cells) == 0 {
		m.row, m.col = 0, 0
		return
	}
	if m.row < 0 {
		m.row = 0
	}
	if m.row >= len(m.grid.Cells) {
		m.row = len(m.grid.Cells) - 1
	}
	if m.col < 0 {
		m.col = 0
	}
	if last := len(m.grid.Cells[m.row]) - 1; m.col > last {
		m.col = last
	}
}

var cursorStyle = lipgloss.NewStyle().Background(theme.Lavender).Foreground(theme.Base).Bold(true)

func (m Model) renderGrid() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(strings.ToUpper(m.script[:1])+m.script[1:]) + "\n\n")

	sb.WriteString("      ")
	for _, col := range m.grid.ColumnTitles {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf(" %-3s", col)))
	}
	sb.WriteString("\n")

	for r, cells := range m.grid.Cells {
		title := ""
		if r < len(m.grid.RowTitles) {
			title = m.grid.RowTitles[r]
		}
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-6s", title)))
		for c, glyph := range cells {
			cell := " · "
			if glyph != "" {
				cell = " " + glyph + " "
			}
			switch {
			case r == m.row && c == m.col:
				sb.WriteString(cursorStyle.Render(cell))
			case glyph == "":
				sb.WriteString(theme.Muted.Render(cell))
			default:
				sb.WriteString(m.statusStyle(glyph).Render(cell))
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(theme.Mastered.Render("■") + theme.Muted.Render(" mastered  "))
	sb.WriteString(theme.Learning.Render("■") + theme.Muted.Render(" learning  "))
	sb.WriteString(theme.Muted.Render("■ unseen"))
	return sb.String()
}

func (m Model) statusStyle(glyph string) lipgloss.Style {
	switch m.statuses[glyph] {
	case "mastered":
		return theme.Mastered
	case "learning":
		return theme.Learning
	}
	return lipgloss.NewStyle().Foreground(theme.Text)
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.Glyph == "" {
		return theme.Muted.Render("Move the cursor to inspect a kana")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Glyph) + "  " + theme.Hot.Render(d.Romaji) + "\n\n")
	sb.WriteString(theme.Muted.Render("row:     ") + d.Row + "\n")
	sb.WriteString(theme.Muted.Render("status:  ") + m.renderStatus() + "\n")
	if m.counterpart != "" {
		label := "katakana:"
		if m.script == "katakana" {
			label = "hiragana:"
		}
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-9s", label)) + m.counterpart + "\n")
	}
	if m.detailStat.Attempts > 0 {
		sb.WriteString(fmt.Sprintf("%s%d/%d correct, streak %d\n",
			theme.Muted.Render("history: "),
			m.detailStat.Correct, m.detailStat.Attempts, m.detailStat.Consecutive))
	}
	if d.Archaic {
		sb.WriteString(theme.Muted.Render("archaic form\n"))
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: mark as seen  s: switch script"))
	return sb.String()
}

func (m Model) renderStatus() string {
	switch m.statuses[m.detail.Glyph] {
	case "mastered":
		return theme.Mastered.Render("mastered")
	case "learning":
		return theme.Learning.Render("learning")
	}
	return theme.Muted.Render("unseen")
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadGridCmd(script string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		grid, err := m.catalog.Grid(ctx, script)
		if err != nil {
			return GridLoadedMsg{Err: err}
		}
		statuses := make(map[string]string)
		for _, row := range grid.Cells {
			for _, glyph := range row {
				if glyph == "" {
					continue
				}
				if st, err := m.progress.StatusOf(ctx, glyph); err == nil {
					statuses[glyph] = st.Status
				}
			}
		}
		return GridLoadedMsg{Grid: grid, Statuses: statuses}
	}
}

func (m Model) loadDetailCmd() tea.Cmd {
	glyph := m.selectedGlyph()
	if glyph == "" {
		return nil
	}
	script := m.script
	return func() tea.Msg {
		ctx := context.Background()
		kana, err := m.catalog.Lookup(ctx, catalogdto.LookupInput{Glyph: glyph, Script: script})
		if err != nil {
			return DetailLoadedMsg{Err: err}
		}
		other := "katakana"
		if script == "katakana" {
			other = "hiragana"
		}
		counterpart := ""
		if c, err := m.catalog.Correspond(ctx, catalogdto.CorrespondInput{Glyph: glyph, From: script, To: other}); err == nil {
			counterpart = c.Glyph
		}
		status, _ := m.progress.StatusOf(ctx, glyph)
		return DetailLoadedMsg{Kana: kana, Counterpart: counterpart, Status: status}
	}
}

func (m Model) touchCmd(glyph string) tea.Cmd {
	return func() tea.Msg {
		fresh, err := m.progress.TouchKana(context.Background(), glyph)
		return touchedMsg{glyph: glyph, fresh: fresh, err: err}
	}
}
