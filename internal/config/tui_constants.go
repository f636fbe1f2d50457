package config

// Layout constants.
const (
	// WindowWidth is the inner width of the timer frame.
	WindowWidth = 40

	// TitleBarRow is the screen row of the title bar (row 0 is the frame border).
	TitleBarRow = 1

	// DotColumn is the screen column of the first title bar dot.
	DotColumn = 2

	// DotSpacing is the distance between two title bar dots.
	DotSpacing = 2

	// SettingsInputWidth is the width of text fields in the settings form.
	SettingsInputWidth = 28
)

// Display limits.
const (
	// TruncationSuffix is appended to truncated labels.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxTaskLength is the maximum task label length accepted by the form.
	MaxTaskLength = 80

	// MaxMinutesDigits limits the minute fields of the settings form.
	MaxMinutesDigits = 3
)
