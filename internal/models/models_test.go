package models

import "testing"

func TestModeConstants(t *testing.T) {
	if ModeFocus != 0 || ModeShortBreak != 1 || ModeLongBreak != 2 {
		t.Fatalf("unexpected mode constants")
	}
}

func TestModeString(t *testing.T) {
	cases := map[Mode]string{
		ModeFocus:      "focus",
		ModeShortBreak: "short_break",
		ModeLongBreak:  "long_break",
		Mode(42):       "focus",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Fatalf("Mode(%d).String() = %q, want %q", int(mode), got, want)
		}
	}
}

func TestModeIsBreak(t *testing.T) {
	if ModeFocus.IsBreak() {
		t.Fatalf("focus should not be a break")
	}
	if !ModeShortBreak.IsBreak() || !ModeLongBreak.IsBreak() {
		t.Fatalf("expected both break modes to report IsBreak")
	}
}

func TestSessionStateZeroValue(t *testing.T) {
	var s SessionState
	if s.Running || s.RemainingSeconds != 0 || s.CompletedFocusCount != 0 {
		t.Fatalf("expected zero session state")
	}
	if s.Mode != ModeFocus {
		t.Fatalf("expected zero mode to be focus")
	}
}

func TestSessionStateDurationFor(t *testing.T) {
	s := SessionState{FocusDurationSec: 1500, ShortBreakDurationSec: 300, LongBreakDurationSec: 900}
	if s.DurationFor(ModeFocus) != 1500 || s.DurationFor(ModeShortBreak) != 300 || s.DurationFor(ModeLongBreak) != 900 {
		t.Fatalf("unexpected durations")
	}
}
