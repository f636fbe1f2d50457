package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/tomato/internal/config"
	"github.com/akyairhashvil/tomato/internal/pomodoro"
	"github.com/akyairhashvil/tomato/internal/tui"
	"github.com/akyairhashvil/tomato/internal/util"
	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var errNotATerminal = errors.New("stdout is not a terminal")

type cliFlags struct {
	Config  string           `short:"c" help:"Preferences file path." type:"path"`
	Task    string           `short:"t" help:"Task label for this session."`
	Focus   int              `short:"f" help:"Focus length in minutes (1-180)."`
	Short   int              `short:"s" help:"Short break length in minutes (1-60)."`
	Long    int              `short:"l" help:"Long break length in minutes (1-120)."`
	Theme   string           `help:"Colour theme (default, light, dracula)."`
	Lang    string           `help:"Label language (en, zh)."`
	NoBell  bool             `help:"Do not ring the terminal bell when a phase ends."`
	Debug   bool             `help:"Write a debug log to the state directory."`
	Version kong.VersionFlag `short:"v" help:"Print version and exit."`
}

func main() {
	var cli cliFlags
	kong.Parse(&cli,
		kong.Name(config.AppName),
		kong.Description("A pomodoro timer for the terminal."),
		kong.Vars{"version": tui.VersionLabel()},
	)
	if err := run(cli); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(cli cliFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotATerminal
	}

	// Anything logged to the terminal would tear the alt screen.
	log.SetOutput(io.Discard)
	if cli.Debug {
		f, err := setupDebugLog(util.StateDir(config.AppName))
		if err != nil {
			return err
		}
		defer f.Close()
	}

	path := cli.Config
	if path == "" {
		path = config.DefaultPath()
	}
	prefs, warnings, err := config.LoadPreferences(path)
	util.LogError("load preferences", err)
	util.LogWarnings("preferences", warnings)
	prefs, warnings = applyFlags(prefs, cli)
	util.LogWarnings("flags", warnings)

	model := tui.NewModel(newController(prefs, os.Stderr), tui.Options{
		Theme:     prefs.Theme,
		Language:  prefs.Language,
		ReportDir: util.ReportsDir(config.AppName),
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// applyFlags lays command line overrides over the loaded preferences.
func applyFlags(prefs config.Preferences, cli cliFlags) (config.Preferences, []error) {
	if cli.Task != "" {
		prefs.Task = cli.Task
	}
	if cli.Focus != 0 {
		prefs.FocusMinutes = cli.Focus
	}
	if cli.Short != 0 {
		prefs.ShortBreakMinutes = cli.Short
	}
	if cli.Long != 0 {
		prefs.LongBreakMinutes = cli.Long
	}
	if cli.Theme != "" {
		prefs.Theme = cli.Theme
	}
	if cli.Lang != "" {
		prefs.Language = cli.Lang
	}
	if cli.NoBell {
		prefs.Bell = false
	}
	warnings := prefs.Normalize()
	return prefs, warnings
}

func newController(prefs config.Preferences, bell io.Writer) *pomodoro.Controller {
	opts := []pomodoro.Option{
		pomodoro.WithTask(prefs.Task),
		pomodoro.WithDurations(
			time.Duration(prefs.FocusMinutes)*time.Minute,
			time.Duration(prefs.ShortBreakMinutes)*time.Minute,
			time.Duration(prefs.LongBreakMinutes)*time.Minute,
		),
	}
	if prefs.Bell {
		opts = append(opts, pomodoro.WithNotifier(pomodoro.NewBellNotifier(bell)))
	}
	return pomodoro.NewController(opts...)
}

func setupDebugLog(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(filepath.Join(dir, config.LogFileName), config.AppName)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return f, nil
}
