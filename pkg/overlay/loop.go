package overlay

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/alertkit/pkg/alert"
)

var timerSeq atomic.Uint64

// TimerMsg fires a Loop timer. It is produced by tea.Tick.
type TimerMsg struct {
	ID uint64
}

// Loop schedules callbacks on the bubbletea event loop. Timers become
// tea.Tick commands collected by Drain; their messages are routed back
// through Handle.
type Loop struct {
	timers  map[uint64]*loopTimer
	pending []tea.Cmd
}

type loopTimer struct {
	loop  *Loop
	id    uint64
	every time.Duration
	fn    func()
}

func (t *loopTimer) Stop() {
	delete(t.loop.timers, t.id)
}

func NewLoop() *Loop {
	return &Loop{timers: make(map[uint64]*loopTimer)}
}

// After implements alert.Scheduler.
func (l *Loop) After(d time.Duration, fn func()) alert.Timer {
	return l.add(d, 0, fn)
}

// Every implements alert.Scheduler.
func (l *Loop) Every(d time.Duration, fn func()) alert.Timer {
	return l.add(d, d, fn)
}

func (l *Loop) add(d, every time.Duration, fn func()) *loopTimer {
	t := &loopTimer{loop: l, id: timerSeq.Add(1), every: every, fn: fn}
	l.timers[t.id] = t
	l.pending = append(l.pending, tick(d, t.id))
	return t
}

func tick(d time.Duration, id uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return TimerMsg{ID: id} })
}

// Handle runs the timer behind msg. It reports whether msg belonged to the
// loop. Messages for stopped timers are swallowed.
func (l *Loop) Handle(msg tea.Msg) bool {
	tm, ok := msg.(TimerMsg)
	if !ok {
		return false
	}
	t, ok := l.timers[tm.ID]
	if !ok {
		return true
	}
	if t.every > 0 {
		l.pending = append(l.pending, tick(t.every, t.id))
	} else {
		delete(l.timers, t.id)
	}
	t.fn()
	return true
}

// Drain returns the ticks scheduled since the last call.
func (l *Loop) Drain() tea.Cmd {
	if len(l.pending) == 0 {
		return nil
	}
	cmds := l.pending
	l.pending = nil
	return tea.Batch(cmds...)
}

// Active returns the number of armed timers.
func (l *Loop) Active() int {
	return len(l.timers)
}

// Flush runs pending one-shot timers in the order they were armed, then
// drops every repeating timer. It is used after the program has quit so
// in-flight animations can complete.
func (l *Loop) Flush() {
	for {
		var next *loopTimer
		for _, t := range l.timers {
			if t.every == 0 && (next == nil || t.id < next.id) {
				next = t
			}
		}
		if next == nil {
			break
		}
		delete(l.timers, next.id)
		next.fn()
	}
	clear(l.timers)
	l.pending = nil
}
