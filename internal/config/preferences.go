package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akyairhashvil/tomato/internal/util"
	"gopkg.in/yaml.v3"
)

// Preferences are the startup defaults read from the optional config file.
// They seed a session; nothing is ever written back.
type Preferences struct {
	Task              string `yaml:"task"`
	FocusMinutes      int    `yaml:"focus_minutes"`
	ShortBreakMinutes int    `yaml:"short_break_minutes"`
	LongBreakMinutes  int    `yaml:"long_break_minutes"`
	Theme             string `yaml:"theme"`
	Language          string `yaml:"language"`
	Bell              bool   `yaml:"bell"`
}

// Languages lists the supported label languages.
var Languages = []string{"en", "zh"}

func DefaultPreferences() Preferences {
	return Preferences{
		Task:              DefaultTaskLabel,
		FocusMinutes:      int(FocusDuration.Minutes()),
		ShortBreakMinutes: int(ShortBreakDuration.Minutes()),
		LongBreakMinutes:  int(LongBreakDuration.Minutes()),
		Theme:             DefaultTheme,
		Language:          DefaultLanguage,
		Bell:              true,
	}
}

// DefaultPath returns the preferences file location.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// LoadPreferences reads path on top of the defaults. A missing file is not
// an error. The returned warnings describe values that were clamped or reset.
func LoadPreferences(path string) (Preferences, []error, error) {
	prefs := DefaultPreferences()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil, nil
		}
		return prefs, nil, fmt.Errorf("read preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return DefaultPreferences(), nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	warnings := prefs.Normalize()
	return prefs, warnings, nil
}

// Normalize clamps durations into their accepted ranges and resets unknown
// values to defaults.
func (p *Preferences) Normalize() []error {
	var warnings []error
	clamp := func(field string, v *int, min, max int) {
		if *v < min || *v > max {
			warnings = append(warnings, &ConfigError{Field: field, Value: strconv.Itoa(*v), Err: ErrOutOfRange})
			*v = util.Clamp(*v, min, max)
		}
	}
	clamp("focus_minutes", &p.FocusMinutes, MinFocusMinutes, MaxFocusMinutes)
	clamp("short_break_minutes", &p.ShortBreakMinutes, MinShortBreakMinutes, MaxShortBreakMinutes)
	clamp("long_break_minutes", &p.LongBreakMinutes, MinLongBreakMinutes, MaxLongBreakMinutes)

	p.Task = strings.TrimSpace(p.Task)
	if p.Task == "" {
		p.Task = DefaultTaskLabel
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = DefaultTheme
	}
	lang := strings.ToLower(strings.TrimSpace(p.Language))
	if !isLanguage(lang) {
		warnings = append(warnings, &ConfigError{Field: "language", Value: p.Language, Err: ErrUnknownValue})
		lang = DefaultLanguage
	}
	p.Language = lang
	return warnings
}

// ParseMinutes validates a minute count typed by the user.
func ParseMinutes(field, raw string, min, max int) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ConfigError{Field: field, Value: raw, Err: ErrNotANumber}
	}
	if n < min || n > max {
		return 0, &ConfigError{Field: field, Value: raw, Err: fmt.Errorf("%w (%d-%d)", ErrOutOfRange, min, max)}
	}
	return n, nil
}

func isLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}
