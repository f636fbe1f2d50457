package testutil

import (
	"time"

	"github.com/akyairhashvil/tomato/internal/pomodoro"
	"github.com/jonboulle/clockwork"
)

// ControllerBuilder provides fluent API for creating test controllers.
type ControllerBuilder struct {
	focus, short, long time.Duration
	clock              clockwork.Clock
	notifier           pomodoro.Notifier
	running            bool
	task               string
}

// NewController starts from short phases so tests can run whole cycles.
func NewController() *ControllerBuilder {
	return &ControllerBuilder{
		focus: 5 * time.Second,
		short: 2 * time.Second,
		long:  3 * time.Second,
		clock: clockwork.NewFakeClockAt(time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)),
	}
}

func (b *ControllerBuilder) WithDurations(focus, short, long time.Duration) *ControllerBuilder {
	b.focus, b.short, b.long = focus, short, long
	return b
}

func (b *ControllerBuilder) WithClock(c clockwork.Clock) *ControllerBuilder {
	b.clock = c
	return b
}

func (b *ControllerBuilder) WithNotifier(n pomodoro.Notifier) *ControllerBuilder {
	b.notifier = n
	return b
}

// WithTask sets the task label while keeping the configured durations.
func (b *ControllerBuilder) WithTask(task string) *ControllerBuilder {
	b.task = task
	return b
}

func (b *ControllerBuilder) Running() *ControllerBuilder {
	b.running = true
	return b
}

func (b *ControllerBuilder) Build() *pomodoro.Controller {
	opts := []pomodoro.Option{
		pomodoro.WithDurations(b.focus, b.short, b.long),
		pomodoro.WithClock(b.clock),
	}
	if b.notifier != nil {
		opts = append(opts, pomodoro.WithNotifier(b.notifier))
	}
	if b.task != "" {
		opts = append(opts, pomodoro.WithTask(b.task))
	}
	ctrl := pomodoro.NewController(opts...)
	if b.running {
		ctrl.ToggleRunning()
	}
	return ctrl
}
