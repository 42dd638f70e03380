// Package timer holds the real-time widget state machines. Machines are
// pure: they never start goroutines or read the clock. Each tick returns
// the events it produced and the caller decides what to do with them.
package timer

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotRunnable     = errors.New("nothing left to run")
	ErrRunning         = errors.New("timer is running")
	ErrNotRunning      = errors.New("timer is not running")
	ErrNotEnoughTime   = errors.New("not enough time left")
	ErrPhaseOutOfRange = errors.New("phase index out of range")
	ErrInvalidPhase    = errors.New("invalid phase")
)

type EventKind string

const (
	EventExpired           EventKind = "expired"
	EventPhaseAdvanced     EventKind = "phase_advanced"
	EventSequenceCompleted EventKind = "sequence_completed"
)

// Event is a notification produced by a tick.
type Event struct {
	Kind EventKind
	// Phase is the new current phase for EventPhaseAdvanced.
	Phase int
	// Alert is set when the event should be announced audibly.
	Alert bool
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatStopwatch renders d as MM:SS.cc.
func FormatStopwatch(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d:%02d.%02d", ms/60000, (ms%60000)/1000, (ms%1000)/10)
}
