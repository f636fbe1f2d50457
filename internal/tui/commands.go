package tui

import (
	"time"

	"github.com/akyairhashvil/tomato/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

// --- Messages ---

// TickMsg is one elapsed second. ID ties it to the run that scheduled it;
// ticks from a run that was paused in the meantime are dropped.
type TickMsg struct {
	ID   int
	Time time.Time
}

type reportExportedMsg struct {
	path string
	err  error
}

func tickCmd(clock clockwork.Clock, id int) tea.Cmd {
	return func() tea.Msg {
		t := <-clock.After(config.TickInterval)
		return TickMsg{ID: id, Time: t}
	}
}

func exportReportCmd(dir string, report sessionReport) tea.Cmd {
	return func() tea.Msg {
		path, err := ExportSessionReport(dir, report)
		return reportExportedMsg{path: path, err: err}
	}
}
