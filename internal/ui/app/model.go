package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "gojuon/internal/modules/catalog/dto"
	flashcarddto "gojuon/internal/modules/flashcard/dto"
	practicedto "gojuon/internal/modules/practice/dto"
	progressdto "gojuon/internal/modules/progress/dto"
	quizdto "gojuon/internal/modules/quiz/dto"
	"gojuon/internal/ui/components"
	"gojuon/internal/ui/theme"
	achievementsview "gojuon/internal/ui/views/achievements"
	browseview "gojuon/internal/ui/views/browse"
	cardsview "gojuon/internal/ui/views/cards"
	practiceview "gojuon/internal/ui/views/practice"
	progressview "gojuon/internal/ui/views/progress"
	quizview "gojuon/internal/ui/views/quiz"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type catalogPort interface {
	Grid(ctx context.Context, script string) (catalogdto.GridOutput, error)
	Lookup(ctx context.Context, input catalogdto.LookupInput) (catalogdto.KanaOutput, error)
	Correspond(ctx context.Context, input catalogdto.CorrespondInput) (catalogdto.KanaOutput, error)
}

type practicePort interface {
	Next(ctx context.Context, input practicedto.NextInput) (practicedto.QuestionOutput, error)
	Evaluate(ctx context.Context, input practicedto.EvaluateInput) (practicedto.EvaluateOutput, error)
	Clear(ctx context.Context) error
}

type quizPort interface {
	Start(ctx context.Context, input quizdto.StartInput) (quizdto.StateOutput, error)
	Answer(ctx context.Context, input quizdto.AnswerInput) (quizdto.StateOutput, error)
	Tick(ctx context.Context, generation int) (quizdto.StateOutput, error)
	Stop(ctx context.Context) error
}

type cardPort interface {
	Load(ctx context.Context, input flashcarddto.LoadInput) (flashcarddto.CardOutput, error)
	Current(ctx context.Context) (flashcarddto.CardOutput, error)
	Flip(ctx context.Context) (flashcarddto.CardOutput, error)
	Next(ctx context.Context) (flashcarddto.CardOutput, error)
	Prev(ctx context.Context) (flashcarddto.CardOutput, error)
	Shuffle(ctx context.Context) (flashcarddto.CardOutput, error)
	MarkEasy(ctx context.Context) (flashcarddto.MarkOutput, error)
	MarkDifficult(ctx context.Context) (flashcarddto.MarkOutput, error)
}

type progressPort interface {
	Overview(ctx context.Context) (progressdto.OverviewOutput, error)
	ScriptProgress(ctx context.Context, script string) (progressdto.ScriptProgressOutput, error)
	RowProgress(ctx context.Context, script string) ([]progressdto.RowProgressOutput, error)
	Achievements(ctx context.Context) ([]progressdto.AchievementOutput, error)
	StatusOf(ctx context.Context, glyph string) (progressdto.StatusOutput, error)
	TouchKana(ctx context.Context, glyph string) (bool, error)
	TroubleKanas(ctx context.Context, limit int) ([]progressdto.TroubleKanaOutput, error)
	QuizHistory(ctx context.Context, limit int) ([]progressdto.QuizHistoryOutput, error)
	RecordStudyTick(ctx context.Context) error
	RecordStudyDay(ctx context.Context) (bool, error)
	RecordModeUsed(ctx context.Context, mode string) ([]progressdto.AchievementOutput, error)
	Settings(ctx context.Context) (progressdto.SettingsOutput, error)
	UpdateSettings(ctx context.Context, input progressdto.SettingsInput) (progressdto.SettingsOutput, error)
	ExportSnapshot(ctx context.Context, dir string) (progressdto.ExportOutput, error)
	ImportSnapshot(ctx context.Context, path string) error
	WriteReport(ctx context.Context, dir string) (progressdto.ReportOutput, error)
	Reset(ctx context.Context) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabBrowse tabID = iota
	tabPractice
	tabQuiz
	tabCards
	tabProgress
	tabAwards
	tabCount
)

var tabLabels = [tabCount]string{
	"Browse", "Practice", "Quiz", "Cards", "Progress", "Awards",
}

// modeNames feed the explorer achievement; only learning tabs count.
var modeNames = [tabCount]string{
	"browse", "practice", "quiz", "flashcards", "", "",
}

// ─── async messages ───────────────────────────────────────────────────────────

type statsMsg struct {
	overview progressdto.OverviewOutput
	err      error
}

type settingsMsg struct {
	settings progressdto.SettingsOutput
	err      error
}

type studyDayMsg struct {
	fresh bool
	err   error
}

type modeUsedMsg struct {
	unlocked []progressdto.AchievementOutput
	err      error
}

type studyTickMsg struct{}

type paletteDoneMsg struct {
	status string
	err    error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Script  key.Binding
	Answer  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Script:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "switch script")),
		Answer:  key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "answer")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Help, k.Palette, k.Quit},
		{k.Script, k.Answer},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	progress progressPort

	browseView   browseview.Model
	practiceView practiceview.Model
	quizView     quizview.Model
	cardsView    cardsview.Model
	progressView progressview.Model
	awardsView   achievementsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	palette   components.Palette
	showHelp  bool

	overview progressdto.OverviewOutput
	status   string

	width  int
	height int
}

func NewModel(catalog catalogPort, practice practicePort, quiz quizPort, cards cardPort, progress progressPort) Model {
	return Model{
		progress:     progress,
		browseView:   browseview.New(catalog, progress),
		practiceView: practiceview.New(practice),
		quizView:     quizview.New(quiz, 0),
		cardsView:    cardsview.New(cards),
		progressView: progressview.New(progress),
		awardsView:   achievementsview.New(progress),
		activeTab:    tabBrowse,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.browseView.Init(),
		m.progressView.Init(),
		m.awardsView.Init(),
		m.statsCmd(),
		m.settingsCmd(),
		m.studyDayCmd(),
		m.recordModeCmd("browse"),
		studyTickCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case statsMsg:
		if msg.err == nil {
			m.overview = msg.overview
		}

	case settingsMsg:
		if msg.err == nil {
			m.quizView.SetCount(msg.settings.QuizQuestionCount)
			m.practiceView.SetScript(msg.settings.DefaultScript)
			m.quizView.SetScript(msg.settings.DefaultScript)
		}

	case studyDayMsg:
		if msg.err == nil && msg.fresh {
			m.status = "welcome back"
		}

	case modeUsedMsg:
		if msg.err == nil && len(msg.unlocked) > 0 {
			m.status = "🏆 " + msg.unlocked[0].Name
			cmds = append(cmds, m.awardsView.Refresh())
		}

	case studyTickMsg:
		progress := m.progress
		cmds = append(cmds,
			func() tea.Msg {
				_ = progress.RecordStudyTick(context.Background())
				return nil
			},
			studyTickCmd(),
			m.statsCmd(),
		)

	case paletteDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = msg.status
		}
		cmds = append(cmds, m.statsCmd())

	// Attempt results bubble up from the practice tab so the status bar
	// and the award list stay current.
	case practiceview.AnsweredMsg:
		if msg.Err != nil {
			m.status = "practice: " + msg.Err.Error()
		} else {
			m.status = attemptStatus(msg.Result)
			cmds = append(cmds, m.statsCmd())
			if len(msg.Result.Unlocked) > 0 {
				cmds = append(cmds, m.awardsView.Refresh())
			}
		}

	case quizview.StateMsg:
		if msg.Err == nil && msg.State.Result != nil {
			r := msg.State.Result
			m.status = fmt.Sprintf("quiz: %d/%d, +%d pts", r.Correct, r.Total, r.Points)
			cmds = append(cmds, m.statsCmd())
			if len(r.Unlocked) > 0 {
				cmds = append(cmds, m.awardsView.Refresh())
			}
		}

	case cardsview.MarkedMsg:
		if msg.Err == nil {
			m.status = fmt.Sprintf("%s marked %s", msg.Mark.Glyph, msg.Mark.Status)
			cmds = append(cmds, m.statsCmd())
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the sub-view while it accepts free text.
		if m.subViewTyping() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			return m.switchTab((m.activeTab + 1) % tabCount)
		case "shift+tab":
			return m.switchTab((m.activeTab + tabCount - 1) % tabCount)
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabBrowse:
		m.browseView, tabCmd = m.browseView.Update(msg)
	case tabPractice:
		m.practiceView, tabCmd = m.practiceView.Update(msg)
	case tabQuiz:
		m.quizView, tabCmd = m.quizView.Update(msg)
	case tabCards:
		m.cardsView, tabCmd = m.cardsView.Update(msg)
	case tabProgress:
		m.progressView, tabCmd = m.progressView.Update(msg)
	case tabAwards:
		m.awardsView, tabCmd = m.awardsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// switchTab tears down the old tab, records the new mode, and primes the
// new tab's data.
func (m Model) switchTab(next tabID) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch m.activeTab {
	case tabPractice:
		cmds = append(cmds, m.practiceView.Teardown())
	case tabQuiz:
		cmds = append(cmds, m.quizView.Teardown())
	case tabCards:
		m.cardsView.Teardown()
	}

	m.activeTab = next

	if mode := modeNames[next]; mode != "" {
		cmds = append(cmds, m.recordModeCmd(mode))
	}
	switch next {
	case tabBrowse:
		cmds = append(cmds, m.browseView.Refresh())
	case tabCards:
		cmds = append(cmds, m.cardsView.Activate())
	case tabProgress:
		cmds = append(cmds, m.progressView.Refresh())
	case tabAwards:
		cmds = append(cmds, m.awardsView.Refresh())
	}

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabBrowse:
		return m.browseView.View()
	case tabPractice:
		return m.practiceView.View()
	case tabQuiz:
		return m.quizView.View()
	case tabCards:
		return m.cardsView.View()
	case tabProgress:
		return m.progressView.View()
	case tabAwards:
		return m.awardsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "gojuon  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.overview.Level > 0 {
		left = theme.Hot.Render(fmt.Sprintf("Lv%d · %d pts", m.overview.Level, m.overview.Points)) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	progress := m.progress

	switch parts[0] {
	case "script":
		if len(parts) < 2 {
			m.status = "usage: script <hiragana|katakana>"
			return m, nil
		}
		script := parts[1]
		if script != "hiragana" && script != "katakana" {
			m.status = "unknown script: " + script
			return m, nil
		}
		m.practiceView.SetScript(script)
		m.quizView.SetScript(script)
		m.status = "script: " + script
		cmd := m.browseView.SetScript(script)
		return m, cmd

	case "practice:kind":
		if len(parts) < 2 || !m.practiceView.SetKind(parts[1]) {
			m.status = "usage: practice:kind <recognition|listening|writing>"
			return m, nil
		}
		m.activeTab = tabPractice
		m.status = "practice kind: " + parts[1]
		return m, nil

	case "quiz:start":
		if len(parts) >= 2 {
			if n, err := strconv.Atoi(parts[1]); err == nil {
				m.quizView.SetCount(n)
			}
		}
		m.activeTab = tabQuiz
		return m, m.quizView.Start()

	case "cards:shuffle":
		m.activeTab = tabCards
		return m, m.cardsView.ShuffleDeck()

	case "progress:export":
		dir := "."
		if len(parts) >= 2 {
			dir = parts[1]
		}
		return m, func() tea.Msg {
			out, err := progress.ExportSnapshot(context.Background(), dir)
			if err != nil {
				return paletteDoneMsg{err: err}
			}
			return paletteDoneMsg{status: "exported " + out.Path}
		}

	case "progress:report":
		dir := "."
		if len(parts) >= 2 {
			dir = parts[1]
		}
		return m, func() tea.Msg {
			out, err := progress.WriteReport(context.Background(), dir)
			if err != nil {
				return paletteDoneMsg{err: err}
			}
			return paletteDoneMsg{status: "report " + out.Path}
		}

	case "progress:import":
		if len(parts) < 2 {
			m.status = "usage: progress:import <path>"
			return m, nil
		}
		path := parts[1]
		return m, func() tea.Msg {
			if err := progress.ImportSnapshot(context.Background(), path); err != nil {
				return paletteDoneMsg{err: err}
			}
			return paletteDoneMsg{status: "imported " + path}
		}

	case "progress:reset":
		return m, func() tea.Msg {
			if err := progress.Reset(context.Background()); err != nil {
				return paletteDoneMsg{err: err}
			}
			return paletteDoneMsg{status: "progress reset"}
		}

	case "settings:script":
		if len(parts) < 2 {
			m.status = "usage: settings:script <hiragana|katakana>"
			return m, nil
		}
		script := parts[1]
		return m, func() tea.Msg {
			ctx := context.Background()
			cur, err := progress.Settings(ctx)
			if err != nil {
				return paletteDoneMsg{err: err}
			}
			out, err := progress.UpdateSettings(ctx, progressdto.SettingsInput{
				DefaultScript:     script,
				QuizQuestionCount: cur.QuizQuestionCount,
			})
			if err != nil {
				return paletteDoneMsg{err: err}
			}
			return settingsMsg{settings: out}
		}

	case "settings:quiz-size":
		if len(parts) < 2 {
			m.status = "usage: settings:quiz-size <n>"
			return m, nil
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid count"
			return m, nil
		}
		return m, func() tea.Msg {
			ctx := context.Background()
			cur, err := progress.Settings(ctx)
			if err != nil {
				return paletteDoneMsg{err: err}
			}
			out, err := progress.UpdateSettings(ctx, progressdto.SettingsInput{
				DefaultScript:     cur.DefaultScript,
				QuizQuestionCount: n,
			})
			if err != nil {
				return paletteDoneMsg{err: err}
			}
			return settingsMsg{settings: out}
		}

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewTyping reports whether the active tab accepts free text input, in
// which case global key bindings must yield.
func (m Model) subViewTyping() bool {
	switch m.activeTab {
	case tabPractice:
		return m.practiceView.Typing()
	case tabAwards:
		return m.awardsView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.browseView, _ = m.browseView.Update(sz)
	m.practiceView, _ = m.practiceView.Update(sz)
	m.quizView, _ = m.quizView.Update(sz)
	m.cardsView, _ = m.cardsView.Update(sz)
	m.progressView, _ = m.progressView.Update(sz)
	m.awardsView, _ = m.awardsView.Update(sz)
}

func attemptStatus(r practicedto.EvaluateOutput) string {
	if !r.Correct {
		return "wrong answer"
	}
	s := fmt.Sprintf("+%d pts", r.Points)
	if r.LeveledUp {
		s += ", level up!"
	}
	if len(r.Unlocked) > 0 {
		s += ", 🏆 " + r.Unlocked[0].Name
	}
	return s
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) statsCmd() tea.Cmd {
	progress := m.progress
	return func() tea.Msg {
		overview, err := progress.Overview(context.Background())
		return statsMsg{overview: overview, err: err}
	}
}

func (m Model) settingsCmd() tea.Cmd {
	progress := m.progress
	return func() tea.Msg {
		settings, err := progress.Settings(context.Background())
		return settingsMsg{settings: settings, err: err}
	}
}

func (m Model) studyDayCmd() tea.Cmd {
	progress := m.progress
	return func() tea.Msg {
		fresh, err := progress.RecordStudyDay(context.Background())
		return studyDayMsg{fresh: fresh, err: err}
	}
}

func (m Model) recordModeCmd(mode string) tea.Cmd {
	progress := m.progress
	return func() tea.Msg {
		unlocked, err := progress.RecordModeUsed(context.Background(), mode)
		return modeUsedMsg{unlocked: unlocked, err: err}
	}
}

// studyTickCmd fires once a minute to accumulate study time.
func studyTickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(time.Time) tea.Msg {
		return studyTickMsg{}
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
