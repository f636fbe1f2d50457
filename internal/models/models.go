package models

import "time"

// Mode enumerates the phases of a pomodoro cycle.
type Mode int

const (
	ModeFocus Mode = iota
	ModeShortBreak
	ModeLongBreak
)

func (m Mode) String() string {
	switch m {
	case ModeShortBreak:
		return "short_break"
	case ModeLongBreak:
		return "long_break"
	default:
		return "focus"
	}
}

// IsBreak reports whether the mode is one of the rest phases.
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// SessionState is the complete state of one timer session.
type SessionState struct {
	Mode                  Mode
	RemainingSeconds      int
	CompletedFocusCount   int
	Running               bool
	TaskLabel             string
	FocusDurationSec      int
	ShortBreakDurationSec int
	LongBreakDurationSec  int
	LongBreakInterval     int
}

// DurationFor maps a mode to its configured length in seconds.
func (s SessionState) DurationFor(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return s.ShortBreakDurationSec
	case ModeLongBreak:
		return s.LongBreakDurationSec
	default:
		return s.FocusDurationSec
	}
}

// PhaseChange records a phase that ran down to zero.
type PhaseChange struct {
	From                Mode
	To                  Mode
	CompletedFocusCount int
	At                  time.Time
}
