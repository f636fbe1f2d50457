package pomodoro

import (
	"io"

	"github.com/akyairhashvil/tomato/internal/models"
	"github.com/akyairhashvil/tomato/internal/util"
	"github.com/charmbracelet/x/ansi"
)

// Notifier receives an alert whenever a phase runs out.
//
//go:generate mockgen -source=notify.go -destination=mock_notifier_test.go -package=pomodoro
type Notifier interface {
	Alert(from, to models.Mode)
}

// NopNotifier discards alerts.
type NopNotifier struct{}

func (NopNotifier) Alert(models.Mode, models.Mode) {}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(from, to models.Mode)

func (f NotifierFunc) Alert(from, to models.Mode) {
	f(from, to)
}

// BellNotifier rings the terminal bell.
type BellNotifier struct {
	W io.Writer
}

func NewBellNotifier(w io.Writer) *BellNotifier {
	return &BellNotifier{W: w}
}

func (b *BellNotifier) Alert(models.Mode, models.Mode) {
	if b == nil || b.W == nil {
		return
	}
	_, err := b.W.Write([]byte{ansi.BEL})
	util.LogError("ring bell", err)
}

var (
	_ Notifier = NopNotifier{}
	_ Notifier = NotifierFunc(nil)
	_ Notifier = (*BellNotifier)(nil)
)
