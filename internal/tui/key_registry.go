package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Priority int
}

// HandlerRegistry dispatches key presses on the timer screen. It also
// serves as the help.KeyMap for the footer.
type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if !b.Binding.Enabled() || !key.Matches(msg, b.Binding) {
			continue
		}
		next, cmd, handled := b.Handler(m)
		if handled {
			return next, cmd, true
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, b.Binding)
	}
	return out
}

func (r *HandlerRegistry) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	short := r.ShortHelp()
	for len(short) > 0 {
		n := min(3, len(short))
		cols = append(cols, short[:n])
		short = short[n:]
	}
	return cols
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/pause")),
		Handler:  func(m Model) (Model, tea.Cmd, bool) { next, cmd := m.toggleRunning(); return next, cmd, true },
		Priority: 100,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("s", ","), key.WithHelp("s", "settings")),
		Handler:  func(m Model) (Model, tea.Cmd, bool) { next, cmd := m.openSettings(); return next, cmd, true },
		Priority: 90,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export report")),
		Handler:  func(m Model) (Model, tea.Cmd, bool) { return m, m.exportReport(), true },
		Priority: 50,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Handler:  func(m Model) (Model, tea.Cmd, bool) { return m.cycleTheme(), nil, true },
		Priority: 40,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Handler: func(m Model) (Model, tea.Cmd, bool) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil, true
		},
		Priority: 30,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Handler:  func(m Model) (Model, tea.Cmd, bool) { next, cmd := m.quit(); return next, cmd, true },
		Priority: 10,
	})
	return r
}
