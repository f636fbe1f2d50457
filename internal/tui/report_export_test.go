package tui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/tomato/internal/config"
	"github.com/akyairhashvil/tomato/internal/models"
	"github.com/akyairhashvil/tomato/internal/testutil"
)

func TestReportFileName(t *testing.T) {
	at := time.Date(2026, 10, 15, 14, 3, 9, 0, time.UTC)
	if got := reportFileName(at); got != config.ReportFilePrefix+"_20261015_140309.pdf" {
		t.Fatalf("reportFileName = %q", got)
	}
}

func TestExportSessionReportWritesPDF(t *testing.T) {
	ctrl := testutil.NewController().WithTask("Crypto paper · draft").Build()
	ctrl.ToggleRunning()
	for !ctrl.Tick() {
	}
	report := sessionReport{
		State:       ctrl.State(),
		History:     ctrl.History(),
		GeneratedAt: time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC),
	}
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	path, err := ExportSessionReport(dir, report)
	if err != nil {
		t.Fatalf("ExportSessionReport failed: %v", err)
	}
	if filepath.Dir(path) != dir || !strings.HasSuffix(path, ".pdf") {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected a PDF header")
	}
}

func TestExportSessionReportWithoutHistory(t *testing.T) {
	report := sessionReport{
		State:       models.SessionState{TaskLabel: config.DefaultTaskLabel, FocusDurationSec: 1500},
		GeneratedAt: time.Now(),
	}
	if _, err := ExportSessionReport(t.TempDir(), report); err != nil {
		t.Fatalf("ExportSessionReport failed: %v", err)
	}
}

func TestExportSessionReportRequiresDir(t *testing.T) {
	if _, err := ExportSessionReport("", sessionReport{}); !errors.Is(err, ErrNoReportDir) {
		t.Fatalf("expected ErrNoReportDir, got %v", err)
	}
}

func TestExportKeyProducesReport(t *testing.T) {
	m := setupTestModel(t)
	_, cmd := update(t, m, keyMsg("e"))
	if cmd == nil {
		t.Fatalf("expected export command")
	}
	msg, ok := cmd().(reportExportedMsg)
	if !ok {
		t.Fatalf("expected reportExportedMsg")
	}
	if msg.err != nil {
		t.Fatalf("export failed: %v", msg.err)
	}
	if _, err := os.Stat(msg.path); err != nil {
		t.Fatalf("report missing: %v", err)
	}
}
