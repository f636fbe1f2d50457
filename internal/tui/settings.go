package tui

import (
	"strconv"
	"strings"

	"github.com/akyairhashvil/tomato/internal/config"
	"github.com/akyairhashvil/tomato/internal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTask = iota
	fieldFocus
	fieldShort
	fieldLong
	fieldCount
)

// SettingsForm is the modal that edits the task and the three durations.
// It only validates; the caller applies accepted values.
type SettingsForm struct {
	inputs []textinput.Model
	focus  int
	err    error
}

type settingsValues struct {
	Task       string
	Focus      int
	ShortBreak int
	LongBreak  int
}

func newSettingsForm(s models.SessionState, labels Labels) (*SettingsForm, tea.Cmd) {
	f := &SettingsForm{inputs: make([]textinput.Model, fieldCount)}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = config.SettingsInputWidth
		ti.CharLimit = config.MaxMinutesDigits
		f.inputs[i] = ti
	}
	f.inputs[fieldTask].CharLimit = config.MaxTaskLength
	f.inputs[fieldTask].Placeholder = labels.TaskPlaceholder
	f.inputs[fieldTask].SetValue(s.TaskLabel)
	f.inputs[fieldFocus].SetValue(strconv.Itoa(s.FocusDurationSec / 60))
	f.inputs[fieldShort].SetValue(strconv.Itoa(s.ShortBreakDurationSec / 60))
	f.inputs[fieldLong].SetValue(strconv.Itoa(s.LongBreakDurationSec / 60))
	return f, f.inputs[fieldTask].Focus()
}

// Update moves between fields or forwards the message to the focused one.
func (f *SettingsForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			return f.focusField((f.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return f.focusField((f.focus + fieldCount - 1) % fieldCount)
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *SettingsForm) focusField(idx int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = idx
	return f.inputs[f.focus].Focus()
}

// Values parses the form. Minutes outside their range are rejected here
// and never reach the controller.
func (f *SettingsForm) Values() (settingsValues, error) {
	focus, err := config.ParseMinutes("focus", f.inputs[fieldFocus].Value(), config.MinFocusMinutes, config.MaxFocusMinutes)
	if err != nil {
		return settingsValues{}, err
	}
	short, err := config.ParseMinutes("short break", f.inputs[fieldShort].Value(), config.MinShortBreakMinutes, config.MaxShortBreakMinutes)
	if err != nil {
		return settingsValues{}, err
	}
	long, err := config.ParseMinutes("long break", f.inputs[fieldLong].Value(), config.MinLongBreakMinutes, config.MaxLongBreakMinutes)
	if err != nil {
		return settingsValues{}, err
	}
	return settingsValues{
		Task:       strings.TrimSpace(f.inputs[fieldTask].Value()),
		Focus:      focus,
		ShortBreak: short,
		LongBreak:  long,
	}, nil
}

func (f *SettingsForm) View(theme Theme, labels Labels) string {
	var b strings.Builder
	b.WriteString(theme.Focused.Render(labels.SettingsTitle) + "\n\n")
	names := []string{labels.TaskField, labels.FocusField, labels.ShortField, labels.LongField}
	for i, name := range names {
		style := theme.Dim
		marker := "  "
		if i == f.focus {
			style = theme.Focused
			marker = "> "
		}
		b.WriteString(style.Render(marker+name) + "\n")
		b.WriteString("  " + f.inputs[i].View() + "\n")
	}
	if f.err != nil {
		b.WriteString("\n" + theme.StatusError.Render(f.err.Error()) + "\n")
	}
	b.WriteString("\n" + theme.Dim.Render(labels.SettingsHint))
	return b.String()
}
