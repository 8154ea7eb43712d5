// Package typewriter reveals text one character at a time on a timed cadence.
package typewriter

import (
	"slices"
	"time"
)

// State is a snapshot of a reveal in progress
type State struct {
	Text     []rune
	Revealed int
	Complete bool
}

// Prefix returns the currently displayed part of the text
func (s State) Prefix() string {
	return string(s.Text[:s.Revealed])
}

// clone returns a copy that does not share the text buffer
func (s State) clone() State {
	s.Text = slices.Clone(s.Text)
	return s
}

// Len returns the length of the full text in runes
func (s State) Len() int {
	return len(s.Text)
}

// Revealer drives a typewriter effect through a Scheduler. Each step schedules
// the next one only after it commits, so load-induced drift accumulates per
// step rather than being corrected.
//
// A Revealer is not safe for concurrent use; every method and every scheduled
// callback must run on the same goroutine.
type Revealer struct {
	sched  Scheduler
	onStep func(State)

	state      State
	onComplete func()
	interval   time.Duration

	// gen identifies the active sequence. Scheduled steps capture it and do
	// nothing if it moved on by the time they run.
	gen     uint64
	pending Timer
}

// New creates a revealer. onStep, if non-nil, observes every committed state.
func New(sched Scheduler, onStep func(State)) *Revealer {
	return &Revealer{sched: sched, onStep: onStep}
}

// Start begins revealing text, cancelling any sequence already running.
// Negative durations are treated as zero. onComplete runs exactly once,
// after the last character, unless the sequence is cancelled first.
func (r *Revealer) Start(text string, interval, delay time.Duration, onComplete func()) {
	r.Cancel()

	r.state = State{Text: []rune(text)}
	r.interval = max(interval, 0)
	r.onComplete = onComplete
	gen := r.gen

	if len(r.state.Text) == 0 {
		r.state.Complete = true
		r.emit()
		r.finish(gen)
		return
	}
	r.emit()
	if gen != r.gen {
		return
	}

	r.pending = r.sched.After(max(delay, 0), func() {
		if gen != r.gen {
			return
		}
		r.schedule(gen)
	})
}

// Cancel stops the running sequence. Steps already handed to the scheduler
// become no-ops and onComplete will not be called.
func (r *Revealer) Cancel() {
	r.gen++
	if r.pending != nil {
		r.pending.Stop()
		r.pending = nil
	}
	r.onComplete = nil
}

// State returns a copy of the current reveal state
func (r *Revealer) State() State {
	return r.state.clone()
}

// Prefix returns the currently displayed text
func (r *Revealer) Prefix() string {
	return r.state.Prefix()
}

// Complete reports whether the full text has been revealed
func (r *Revealer) Complete() bool {
	return r.state.Complete
}

func (r *Revealer) schedule(gen uint64) {
	r.pending = r.sched.After(r.interval, func() {
		r.step(gen)
	})
}

func (r *Revealer) step(gen uint64) {
	if gen != r.gen {
		return
	}
	r.pending = nil

	r.state.Revealed++
	r.state.Complete = r.state.Revealed == len(r.state.Text)
	r.emit()

	if r.state.Complete {
		r.finish(gen)
		return
	}
	// The observer may have restarted or cancelled us
	if gen == r.gen {
		r.schedule(gen)
	}
}

func (r *Revealer) finish(gen uint64) {
	// The observer may have restarted or cancelled us
	if gen != r.gen {
		return
	}

	done := r.onComplete
	r.onComplete = nil
	if done != nil {
		done()
	}
}

func (r *Revealer) emit() {
	if r.onStep != nil {
		r.onStep(r.state.clone())
	}
}
