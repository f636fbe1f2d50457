package tui

import (
	"strings"

	"github.com/akyairhashvil/tomato/internal/config"
	"github.com/akyairhashvil/tomato/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// clockRow is the screen row of the MM:SS readout: title bar, spacer, task.
const clockRow = config.TitleBarRow + 3

const dot = "●"

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.settings != nil {
		return m.renderSettings()
	}
	return m.renderTimer()
}

func (m Model) innerWidth() int {
	// border and horizontal padding
	return config.WindowWidth - 2
}

func (m Model) renderTimer() string {
	s := m.ctrl.State()
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.renderTitleBar(s),
		"",
		m.theme.Task.Render(truncateLabel(s.TaskLabel, m.innerWidth(), config.TruncationSuffix)),
		m.renderClock(s),
		m.theme.State.Render(truncateLabel(m.labels.StateLine(s), m.innerWidth(), config.TruncationSuffix)),
		"",
		m.renderStatus(),
	)
	frame := m.theme.Frame.Width(config.WindowWidth).Render(body)
	return frame + "\n" + m.help.View(m.keys)
}

// renderTitleBar draws the four window dots and the counter readout. It is
// padded to the full inner width so the dots keep fixed columns.
func (m Model) renderTitleBar(s models.SessionState) string {
	dots := strings.Join([]string{
		m.theme.Close.Render(dot),
		m.theme.Minimize.Render(dot),
		m.theme.Maximize.Render(dot),
		m.theme.SettingsDot.Render(dot),
	}, " ")
	room := m.innerWidth() - ansi.StringWidth(dots) - 2
	title := m.theme.Title.Render(truncateLabel(m.labels.TitleFor(s.CompletedFocusCount), room, config.TruncationSuffix))
	return lipgloss.NewStyle().Width(m.innerWidth()).Render(dots + "  " + title)
}

func (m Model) renderClock(s models.SessionState) string {
	style := m.theme.ClockPaused
	switch {
	case s.Running && s.Mode.IsBreak():
		style = m.theme.Break
	case s.Running:
		style = m.theme.Clock
	}
	return style.Render(FormatClock(s.RemainingSeconds))
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	text := truncateLabel(m.status, m.innerWidth(), config.TruncationSuffix)
	if m.statusErr {
		return m.theme.StatusError.Render(text)
	}
	return m.theme.Status.Render(text)
}

func (m Model) renderSettings() string {
	content := m.settings.View(m.theme, m.labels)
	return m.theme.Frame.Width(config.WindowWidth).Align(lipgloss.Left).Render(content)
}
