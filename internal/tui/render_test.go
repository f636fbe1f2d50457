package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/tomato/internal/config"
	"github.com/akyairhashvil/tomato/internal/testutil"
	"github.com/charmbracelet/x/ansi"
	"github.com/jonboulle/clockwork"
)

func viewLines(m Model) []string {
	return strings.Split(ansi.Strip(m.View()), "\n")
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:     "00:00",
		59:    "00:59",
		61:    "01:01",
		1500:  "25:00",
		10800: "180:00",
		-5:    "00:00",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(secondsToDuration(45)); got != "45s" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDuration(secondsToDuration(25 * 60)); got != "25m" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDuration(secondsToDuration(3 * 3600)); got != "3h" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDuration(secondsToDuration(90 * 60)); got != "1h 30m" {
		t.Fatalf("got %q", got)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short", 10, "…"); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := truncateLabel("a much longer label", 8, "…"); ansi.StringWidth(got) > 8 || !strings.HasSuffix(got, "…") {
		t.Fatalf("got %q", got)
	}
	if got := truncateLabel("anything", 0, "…"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestViewRendersPausedFocus(t *testing.T) {
	ctrl := testutil.NewController().WithDurations(25*time.Minute, 5*time.Minute, 15*time.Minute).WithTask("Thesis").Build()
	m := newModelFor(t, ctrl)
	out := ansi.Strip(m.View())
	for _, want := range []string{"25:00", "Thesis", "Pomodoro · today 0", "Focus (click the time to start)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestViewLayoutMatchesClickTargets(t *testing.T) {
	m := setupTestModel(t)
	lines := viewLines(m)
	if len(lines) <= clockRow {
		t.Fatalf("view too short: %d lines", len(lines))
	}
	if !strings.Contains(lines[clockRow], "00:05") {
		t.Fatalf("expected clock on row %d, got %q", clockRow, lines[clockRow])
	}
	title := []rune(lines[config.TitleBarRow])
	for i := 0; i < 4; i++ {
		col := config.DotColumn + i*config.DotSpacing
		if col >= len(title) || title[col] != '●' {
			t.Fatalf("expected dot %d at column %d in %q", i, col, lines[config.TitleBarRow])
		}
	}
}

func TestViewRunningBreakAndCounter(t *testing.T) {
	m := setupTestModel(t)
	m, _ = update(t, m, keyMsg(" "))
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{ID: m.tickID})
	}
	m, _ = update(t, m, keyMsg(" "))
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Pomodoro · today 1") {
		t.Fatalf("expected counter readout:\n%s", out)
	}
	if !strings.Contains(out, "Short break in progress") {
		t.Fatalf("expected running break phrasing:\n%s", out)
	}
}

func TestViewChineseLabels(t *testing.T) {
	m := NewModel(testutil.NewController().Build(), Options{Clock: clockwork.NewFakeClock(), Language: "zh"})
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "番茄时钟 · 今日 0 个") {
		t.Fatalf("expected chinese title:\n%s", out)
	}
	if !strings.Contains(out, "状态：专注（点击时间开始）") {
		t.Fatalf("expected chinese state line:\n%s", out)
	}
}

func TestViewSettingsForm(t *testing.T) {
	m := setupTestModel(t)
	m, _ = update(t, m, keyMsg("s"))
	out := ansi.Strip(m.View())
	for _, want := range []string{"Pomodoro settings", "Current task", "Focus (minutes)", "Long break (minutes)", "esc cancel"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in settings view:\n%s", want, out)
		}
	}
	if strings.Contains(out, "00:05") {
		t.Fatalf("settings form should replace the timer")
	}
}

func TestViewShowsStatusError(t *testing.T) {
	m := setupTestModel(t)
	m.setStatusError("Report failed: boom")
	if out := ansi.Strip(m.View()); !strings.Contains(out, "Report failed: boom") {
		t.Fatalf("expected status line:\n%s", out)
	}
}
