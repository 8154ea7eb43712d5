package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mablo/mablo/internal/typewriter"
)

// timerFiredMsg is delivered when a scheduled callback is due
type timerFiredMsg struct {
	id uint64
}

// loopScheduler implements typewriter.Scheduler on top of the Bubble Tea
// message loop: each timer is a tea.Tick, and the callback runs inside
// Update when the tick's message arrives. Callbacks therefore never race
// with rendering.
type loopScheduler struct {
	next   uint64
	live   map[uint64]func()
	queued []tea.Cmd
}

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{live: make(map[uint64]func())}
}

// After registers fn and queues the tick that will fire it
func (s *loopScheduler) After(d time.Duration, fn func()) typewriter.Timer {
	s.next++
	id := s.next
	s.live[id] = fn
	s.queued = append(s.queued, tea.Tick(max(d, 0), func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return loopTimer{sched: s, id: id}
}

// Fire runs the callback for id unless it was stopped or already ran
func (s *loopScheduler) Fire(id uint64) {
	fn, ok := s.live[id]
	if !ok {
		return
	}
	delete(s.live, id)
	fn()
}

// Drain returns the ticks queued since the last drain
func (s *loopScheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Pending reports how many callbacks are still live
func (s *loopScheduler) Pending() int {
	return len(s.live)
}

type loopTimer struct {
	sched *loopScheduler
	id    uint64
}

func (t loopTimer) Stop() bool {
	if _, ok := t.sched.live[t.id]; !ok {
		return false
	}
	delete(t.sched.live, t.id)
	return true
}
