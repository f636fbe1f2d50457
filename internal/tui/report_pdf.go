package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/tomato/internal/config"
	"github.com/akyairhashvil/tomato/internal/models"
	"github.com/go-pdf/fpdf"
)

var ErrNoReportDir = errors.New("no report directory configured")

// sessionReport is a snapshot of the session taken when the user asks for
// a report.
type sessionReport struct {
	State       models.SessionState
	History     []models.PhaseChange
	GeneratedAt time.Time
}

func reportFileName(t time.Time) string {
	return fmt.Sprintf("%s_%s.pdf", config.ReportFilePrefix, t.Format("20060102_150405"))
}

// ExportSessionReport writes the report into dir and returns its path.
func ExportSessionReport(dir string, report sessionReport) (string, error) {
	if dir == "" {
		return "", ErrNoReportDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, reportFileName(report.GeneratedAt))
	if err := writeSessionReport(path, report); err != nil {
		return "", err
	}
	return path, nil
}

// writeSessionReport always uses the English labels; the core PDF fonts
// cannot render CJK text.
func writeSessionReport(path string, report sessionReport) error {
	labels := ResolveLabels("en")
	s := report.State

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr(fmt.Sprintf("Pomodoro Report: %s", report.GeneratedAt.Format("2006-01-02 15:04"))))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, tr("Task: "+s.TaskLabel))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Completed focus sessions: %d", s.CompletedFocusCount))
	pdf.Ln(8)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Current phase: %s, %s left", labels.ModeLabel(s.Mode), FormatClock(s.RemainingSeconds))))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Durations")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, mode := range []models.Mode{models.ModeFocus, models.ModeShortBreak, models.ModeLongBreak} {
		d := secondsToDuration(s.DurationFor(mode))
		pdf.Cell(0, 8, fmt.Sprintf("  %s: %s", labels.ModeLabel(mode), FormatDuration(d)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 8, fmt.Sprintf("  Long break every %d focus sessions", s.LongBreakInterval))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Completed phases")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(report.History) == 0 {
		pdf.Cell(0, 8, "  - No phase finished yet.")
		pdf.Ln(8)
	}
	for _, h := range report.History {
		line := fmt.Sprintf("[%s] %s -> %s", h.At.Format("15:04:05"), labels.ModeLabel(h.From), labels.ModeLabel(h.To))
		if h.From == models.ModeFocus {
			line += fmt.Sprintf(" (#%d)", h.CompletedFocusCount)
		}
		pdf.MultiCell(0, 8, tr(line), "", "", false)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
