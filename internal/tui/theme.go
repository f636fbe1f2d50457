package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name        string
	Frame       lipgloss.Style
	Title       lipgloss.Style
	Close       lipgloss.Style
	Minimize    lipgloss.Style
	Maximize    lipgloss.Style
	SettingsDot lipgloss.Style
	Task        lipgloss.Style
	Clock       lipgloss.Style
	ClockPaused lipgloss.Style
	Break       lipgloss.Style
	State       lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Input       lipgloss.Style
	Focused     lipgloss.Style
	Dim         lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:        "Default",
		Frame:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1).Align(lipgloss.Center),
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Close:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f57")),
		Minimize:    lipgloss.NewStyle().Foreground(lipgloss.Color("#febc2e")),
		Maximize:    lipgloss.NewStyle().Foreground(lipgloss.Color("#28c840")),
		SettingsDot: lipgloss.NewStyle().Foreground(lipgloss.Color("#c4c4c4")),
		Task:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Clock:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		ClockPaused: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Break:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		State:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	// Black on white, the look of the desktop original.
	"light": {
		Name:        "Light",
		Frame:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#dddddd")).Background(lipgloss.Color("#ffffff")).Padding(0, 1).Align(lipgloss.Center),
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).Background(lipgloss.Color("#ffffff")),
		Close:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f57")).Background(lipgloss.Color("#ffffff")),
		Minimize:    lipgloss.NewStyle().Foreground(lipgloss.Color("#febc2e")).Background(lipgloss.Color("#ffffff")),
		Maximize:    lipgloss.NewStyle().Foreground(lipgloss.Color("#28c840")).Background(lipgloss.Color("#ffffff")),
		SettingsDot: lipgloss.NewStyle().Foreground(lipgloss.Color("#afafaf")).Background(lipgloss.Color("#ffffff")),
		Task:        lipgloss.NewStyle().Foreground(lipgloss.Color("#111111")).Background(lipgloss.Color("#ffffff")).Bold(true),
		Clock:       lipgloss.NewStyle().Foreground(lipgloss.Color("#111111")).Background(lipgloss.Color("#ffffff")).Bold(true),
		ClockPaused: lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")).Background(lipgloss.Color("#ffffff")).Bold(true),
		Break:       lipgloss.NewStyle().Foreground(lipgloss.Color("#28a040")).Background(lipgloss.Color("#ffffff")).Bold(true),
		State:       lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")).Background(lipgloss.Color("#ffffff")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).Background(lipgloss.Color("#ffffff")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f57")).Background(lipgloss.Color("#ffffff")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#dddddd")).Padding(0, 1),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("#111111")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),
	},
	"dracula": {
		Name:        "Dracula",
		Frame:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1).Align(lipgloss.Center), // Purple
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),                                                                              // Comment
		Close:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Minimize:    lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
		Maximize:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		SettingsDot: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Task:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Clock:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		ClockPaused: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Break:       lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		State:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("50")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

var themeOrder = []string{"default", "light", "dracula"}

// ResolveTheme returns the named theme, or the default one.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

func nextThemeName(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}
