// Package pomodoro owns the countdown and the focus/break cycle of a
// single timer session. It has no knowledge of how ticks are scheduled or
// how the state is drawn; callers deliver ticks and intents sequentially.
package pomodoro

import (
	"strings"
	"time"

	"github.com/akyairhashvil/tomato/internal/config"
	"github.com/akyairhashvil/tomato/internal/models"
	"github.com/jonboulle/clockwork"
)

// Controller mutates a SessionState in response to ticks and user intents.
// It is not safe for concurrent use.
type Controller struct {
	state    models.SessionState
	clock    clockwork.Clock
	notifier Notifier
	history  []models.PhaseChange
}

type Option func(*Controller)

// WithClock sets the clock used to timestamp phase changes.
func WithClock(c clockwork.Clock) Option {
	return func(ctrl *Controller) {
		ctrl.clock = c
	}
}

// WithNotifier sets the sink for phase-end alerts.
func WithNotifier(n Notifier) Option {
	return func(ctrl *Controller) {
		ctrl.notifier = n
	}
}

// WithDurations overrides the phase durations with second precision.
func WithDurations(focus, short, long time.Duration) Option {
	return func(ctrl *Controller) {
		ctrl.state.FocusDurationSec = int(focus / time.Second)
		ctrl.state.ShortBreakDurationSec = int(short / time.Second)
		ctrl.state.LongBreakDurationSec = int(long / time.Second)
	}
}

// WithTask sets the initial task label. Blank labels keep the placeholder.
func WithTask(task string) Option {
	return func(ctrl *Controller) {
		if task = strings.TrimSpace(task); task != "" {
			ctrl.state.TaskLabel = task
		}
	}
}

// NewController starts a paused focus phase with the default durations.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		state: models.SessionState{
			Mode:                  models.ModeFocus,
			TaskLabel:             config.DefaultTaskLabel,
			FocusDurationSec:      int(config.FocusDuration / time.Second),
			ShortBreakDurationSec: int(config.ShortBreakDuration / time.Second),
			LongBreakDurationSec:  int(config.LongBreakDuration / time.Second),
			LongBreakInterval:     config.LongBreakInterval,
		},
		clock:    clockwork.NewRealClock(),
		notifier: NopNotifier{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state.RemainingSeconds = c.DurationFor(c.state.Mode)
	return c
}

// State returns a copy of the current session state.
func (c *Controller) State() models.SessionState {
	return c.state
}

// History returns the completed phases, oldest first.
func (c *Controller) History() []models.PhaseChange {
	out := make([]models.PhaseChange, len(c.history))
	copy(out, c.history)
	return out
}

// DurationFor maps a mode to its configured length in seconds.
func (c *Controller) DurationFor(mode models.Mode) int {
	return c.state.DurationFor(mode)
}

// Tick advances the countdown by one second. The tick that brings the
// countdown to zero also stops the timer, alerts and moves to the next
// phase, so zero is never observed while running. It reports whether a
// phase change happened.
func (c *Controller) Tick() bool {
	if !c.state.Running {
		return false
	}
	if c.state.RemainingSeconds > 0 {
		c.state.RemainingSeconds--
	}
	if c.state.RemainingSeconds > 0 {
		return false
	}

	c.state.Running = false
	from := c.state.Mode
	to := c.nextMode()
	c.notifier.Alert(from, to)

	c.state.Mode = to
	c.state.RemainingSeconds = c.DurationFor(to)
	c.history = append(c.history, models.PhaseChange{
		From:                from,
		To:                  to,
		CompletedFocusCount: c.state.CompletedFocusCount,
		At:                  c.clock.Now(),
	})
	return true
}

// nextMode increments the focus counter when a focus phase ends.
func (c *Controller) nextMode() models.Mode {
	if c.state.Mode != models.ModeFocus {
		return models.ModeFocus
	}
	c.state.CompletedFocusCount++
	if c.state.LongBreakInterval > 0 && c.state.CompletedFocusCount%c.state.LongBreakInterval == 0 {
		return models.ModeLongBreak
	}
	return models.ModeShortBreak
}

// ToggleRunning flips between running and paused and returns the new
// running flag. The caller starts or stops its tick source to match.
func (c *Controller) ToggleRunning() bool {
	if c.state.Running {
		c.state.Running = false
		return false
	}
	if c.state.RemainingSeconds <= 0 {
		c.state.RemainingSeconds = c.DurationFor(c.state.Mode)
	}
	c.state.Running = true
	return true
}

// Reconfigure replaces the task label and the three durations, given in
// minutes. Range checks belong to the caller. While paused the countdown
// restarts at the new duration of the current mode; while running the
// change applies from the next phase on.
func (c *Controller) Reconfigure(task string, focusMin, shortMin, longMin int) {
	task = strings.TrimSpace(task)
	if task == "" {
		task = config.DefaultTaskLabel
	}
	c.state.TaskLabel = task
	c.state.FocusDurationSec = focusMin * 60
	c.state.ShortBreakDurationSec = shortMin * 60
	c.state.LongBreakDurationSec = longMin * 60

	if !c.state.Running {
		c.state.RemainingSeconds = c.DurationFor(c.state.Mode)
	}
}
