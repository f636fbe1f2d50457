package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestHandlerRegistryPriority(t *testing.T) {
	r := NewHandlerRegistry()
	var order []string
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("x")),
		Handler:  func(m Model) (Model, tea.Cmd, bool) { order = append(order, "low"); return m, nil, true },
		Priority: 1,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("x")),
		Handler:  func(m Model) (Model, tea.Cmd, bool) { order = append(order, "high"); return m, nil, false },
		Priority: 5,
	})
	_, _, handled := r.Handle(Model{}, keyMsg("x"))
	if !handled {
		t.Fatalf("expected key to be handled")
	}
	if len(order) != 2 || order[0] != "high" || order[1] != "low" {
		t.Fatalf("unexpected dispatch order %v", order)
	}
}

func TestHandlerRegistrySkipsDisabled(t *testing.T) {
	r := NewHandlerRegistry()
	b := key.NewBinding(key.WithKeys("x"))
	b.SetEnabled(false)
	r.Register(KeyBinding{
		Binding: b,
		Handler: func(m Model) (Model, tea.Cmd, bool) { t.Fatalf("disabled binding fired"); return m, nil, true },
	})
	if _, _, handled := r.Handle(Model{}, keyMsg("x")); handled {
		t.Fatalf("disabled binding must not handle")
	}
}

func TestHandlerRegistryUnknownKey(t *testing.T) {
	r := defaultRegistry()
	m := setupTestModel(t)
	next, cmd, handled := r.Handle(m, keyMsg("z"))
	if handled || cmd != nil || next.State().Running {
		t.Fatalf("unknown key should be ignored")
	}
}

func TestDefaultRegistryHelp(t *testing.T) {
	r := defaultRegistry()
	short := r.ShortHelp()
	if len(short) != 6 {
		t.Fatalf("expected 6 bindings, got %d", len(short))
	}
	if short[0].Help().Desc != "start/pause" {
		t.Fatalf("highest priority binding should be start/pause, got %q", short[0].Help().Desc)
	}
	full := r.FullHelp()
	if len(full) != 2 || len(full[0]) != 3 || len(full[1]) != 3 {
		t.Fatalf("unexpected full help layout %v", full)
	}
}
