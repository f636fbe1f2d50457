package tui

import (
	"fmt"

	"github.com/akyairhashvil/tomato/internal/config"
	"github.com/akyairhashvil/tomato/internal/models"
	"github.com/akyairhashvil/tomato/internal/pomodoro"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

// Options configure the presentation of a Model.
type Options struct {
	Clock     clockwork.Clock
	Theme     string
	Language  string
	ReportDir string
}

// Model is the root bubbletea model. It turns key presses, mouse clicks and
// clock ticks into controller calls and renders the resulting state.
type Model struct {
	ctrl      *pomodoro.Controller
	clock     clockwork.Clock
	tickID    int
	themeName string
	theme     Theme
	labels    Labels
	keys      *HandlerRegistry
	help      help.Model
	settings  *SettingsForm
	status    string
	statusErr bool
	reportDir string
	width     int
	height    int
	quitting  bool
}

func NewModel(ctrl *pomodoro.Controller, opts Options) Model {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	themeName := opts.Theme
	if _, ok := Themes[themeName]; !ok {
		themeName = config.DefaultTheme
	}
	return Model{
		ctrl:      ctrl,
		clock:     clock,
		themeName: themeName,
		theme:     ResolveTheme(themeName),
		labels:    ResolveLabels(opts.Language),
		keys:      defaultRegistry(),
		help:      help.New(),
		reportDir: opts.ReportDir,
	}
}

// State exposes the controller state for rendering and tests.
func (m Model) State() models.SessionState {
	return m.ctrl.State()
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.labels.TitleFor(m.ctrl.State().CompletedFocusCount))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	case reportExportedMsg:
		if msg.err != nil {
			m.setStatusError(fmt.Sprintf(m.labels.ReportFailed, msg.err))
		} else {
			m.setStatus(fmt.Sprintf(m.labels.ReportSaved, msg.path))
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.settings != nil {
			return m.handleSettingsKey(msg)
		}
		next, cmd, _ := m.keys.Handle(m, msg)
		return next, cmd
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	if m.settings != nil {
		return m, m.settings.Update(msg)
	}
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if msg.ID != m.tickID || !m.ctrl.State().Running {
		return m, nil
	}
	before := m.ctrl.State().Mode
	if !m.ctrl.Tick() {
		return m, tickCmd(m.clock, m.tickID)
	}
	m.tickID++
	s := m.ctrl.State()
	m.setStatus(fmt.Sprintf(m.labels.PhaseDone, m.labels.ModeLabel(before), m.labels.ModeLabel(s.Mode)))
	return m, tea.SetWindowTitle(m.labels.TitleFor(s.CompletedFocusCount))
}

// toggleRunning starts or stops the tick source together with the
// controller. Bumping tickID orphans any tick already in flight.
func (m Model) toggleRunning() (Model, tea.Cmd) {
	running := m.ctrl.ToggleRunning()
	m.tickID++
	if running {
		return m, tickCmd(m.clock, m.tickID)
	}
	return m, nil
}

func (m Model) openSettings() (Model, tea.Cmd) {
	form, cmd := newSettingsForm(m.ctrl.State(), m.labels)
	m.settings = form
	return m, cmd
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.settings = nil
		return m, nil
	case tea.KeyEnter:
		values, err := m.settings.Values()
		if err != nil {
			m.settings.err = err
			return m, nil
		}
		m.ctrl.Reconfigure(values.Task, values.Focus, values.ShortBreak, values.LongBreak)
		m.settings = nil
		m.setStatus("")
		return m, nil
	}
	return m, m.settings.Update(msg)
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.settings != nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch msg.Y {
	case config.TitleBarRow:
		return m.handleTitleBarClick(msg.X)
	case clockRow:
		return m.toggleRunning()
	}
	return m, nil
}

// handleTitleBarClick maps the window dots: close, minimize, maximize,
// settings. A terminal cannot minimize or maximize itself.
func (m Model) handleTitleBarClick(x int) (Model, tea.Cmd) {
	offset := x - config.DotColumn
	if offset < 0 || offset%config.DotSpacing != 0 {
		return m, nil
	}
	switch offset / config.DotSpacing {
	case 0:
		return m.quit()
	case 3:
		return m.openSettings()
	}
	return m, nil
}

func (m Model) exportReport() tea.Cmd {
	report := sessionReport{
		State:       m.ctrl.State(),
		History:     m.ctrl.History(),
		GeneratedAt: m.clock.Now(),
	}
	return exportReportCmd(m.reportDir, report)
}

func (m Model) cycleTheme() Model {
	m.themeName = nextThemeName(m.themeName)
	m.theme = ResolveTheme(m.themeName)
	return m
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setStatusError(msg string) {
	m.status = msg
	m.statusErr = true
}
