package config

import "time"

// Timer durations.
const (
	FocusDuration      = 25 * time.Minute
	ShortBreakDuration = 5 * time.Minute
	LongBreakDuration  = 15 * time.Minute
	TickInterval       = time.Second
)

// LongBreakInterval is the number of completed focus phases per long break.
const LongBreakInterval = 4

// Accepted minute ranges for the settings form and the preferences file.
const (
	MinFocusMinutes      = 1
	MaxFocusMinutes      = 180
	MinShortBreakMinutes = 1
	MaxShortBreakMinutes = 60
	MinLongBreakMinutes  = 1
	MaxLongBreakMinutes  = 120
)

// DefaultTaskLabel replaces an empty task description.
const DefaultTaskLabel = "Focus · Deep Work"

// Application settings.
const (
	AppName          = "tomato"
	ConfigFileName   = "config.yaml"
	LogFileName      = "debug.log"
	ReportFilePrefix = "pomodoro_report"
	DefaultTheme     = "default"
	DefaultLanguage  = "en"
)
