package typewriter

import (
	"sync"
	"time"
)

// Timer is a pending scheduled callback
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay. Implementations must invoke
// callbacks on the goroutine that owns the Revealer.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
}

// TimerScheduler schedules on the wall clock with time.AfterFunc and hands
// each expired callback to Dispatch, which is expected to run it on the
// owner's goroutine (for example by sending it over a channel to an event loop).
// The TUI does not use it; it schedules through the Bubble Tea loop instead.
type TimerScheduler struct {
	Dispatch func(fn func())
}

// NewTimerScheduler creates a scheduler that funnels callbacks through dispatch
func NewTimerScheduler(dispatch func(fn func())) *TimerScheduler {
	return &TimerScheduler{Dispatch: dispatch}
}

// After implements Scheduler
func (s *TimerScheduler) After(d time.Duration, fn func()) Timer {
	t := &wallTimer{}
	t.timer = time.AfterFunc(d, func() {
		s.Dispatch(func() {
			// Stop may have raced with expiry; re-check on the owner's goroutine
			if t.fire() {
				fn()
			}
		})
	})
	return t
}

type wallTimer struct {
	mu    sync.Mutex
	timer *time.Timer
	done  bool
}

func (t *wallTimer) fire() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

func (t *wallTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.timer.Stop()
	return true
}
