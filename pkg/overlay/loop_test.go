package overlay

import (
	"strings"
	"testing"
	"time"

	"github.com/marcus/alertkit/pkg/alert"
)

// fire delivers the timer's message as if its tick had elapsed.
func fire(l *Loop, t alert.Timer) bool {
	return l.Handle(TimerMsg{ID: t.(*loopTimer).id})
}

func TestLoopAfter(t *testing.T) {
	l := NewLoop()
	n := 0
	tm := l.After(time.Second, func() { n++ })

	if l.Drain() == nil {
		t.Fatal("expected a tick command")
	}
	if l.Drain() != nil {
		t.Error("Drain should empty the queue")
	}
	if !fire(l, tm) {
		t.Fatal("timer message not handled")
	}
	if n != 1 {
		t.Errorf("calls: got %d, want 1", n)
	}
	fire(l, tm)
	if n != 1 {
		t.Errorf("one-shot fired twice")
	}
	if l.Active() != 0 {
		t.Errorf("active: got %d, want 0", l.Active())
	}
}

func TestLoopEveryRearms(t *testing.T) {
	l := NewLoop()
	n := 0
	tm := l.Every(time.Second, func() { n++ })
	l.Drain()

	for i := 0; i < 3; i++ {
		fire(l, tm)
		if l.Drain() == nil {
			t.Fatalf("fire %d: repeating timer not re-armed", i)
		}
	}
	if n != 3 {
		t.Errorf("calls: got %d, want 3", n)
	}

	tm.Stop()
	tm.Stop()
	if !fire(l, tm) {
		t.Error("stale timer message should still be consumed")
	}
	if n != 3 {
		t.Errorf("stopped timer fired")
	}
	if l.Drain() != nil {
		t.Error("stopped timer re-armed")
	}
}

func TestLoopIgnoresOtherMessages(t *testing.T) {
	l := NewLoop()
	if l.Handle("not a timer") {
		t.Error("Handle claimed a foreign message")
	}
}

func TestTweenerCompletes(t *testing.T) {
	l := NewLoop()
	tw := NewTweener(l)
	from := alert.Pose{Offset: alert.Point{Y: -400}}
	to := alert.Pose{Opacity: 1}
	done := 0

	tw.Animate(200*time.Millisecond, from, to, func() { done++ })
	if !tw.Animating() || tw.Pose() != from {
		t.Fatalf("start: animating=%v pose=%+v", tw.Animating(), tw.Pose())
	}
	a := tw.active

	for i := 0; i < 3; i++ {
		fire(l, a.frame)
	}
	mid := tw.Pose()
	if mid.Offset.Y <= from.Offset.Y {
		t.Errorf("no progress after frames: %+v", mid)
	}
	if tw.Frames() != 3 {
		t.Errorf("frames: got %d, want 3", tw.Frames())
	}

	fire(l, a.done)
	if done != 1 {
		t.Fatalf("completion calls: got %d, want 1", done)
	}
	if tw.Pose() != to || tw.Animating() {
		t.Errorf("end: pose=%+v animating=%v", tw.Pose(), tw.Animating())
	}
	if l.Active() != 0 {
		t.Errorf("timers left armed: %d", l.Active())
	}
}

func TestTweenerInterruptCompletesPrevious(t *testing.T) {
	l := NewLoop()
	tw := NewTweener(l)
	var order []string
	tw.Animate(time.Second, alert.Pose{}, alert.Pose{Opacity: 1}, func() { order = append(order, "first") })
	tw.Animate(time.Second, alert.Pose{Opacity: 1}, alert.Pose{}, func() { order = append(order, "second") })

	if len(order) != 1 || order[0] != "first" {
		t.Fatalf("order: %v", order)
	}
	fire(l, tw.active.done)
	if len(order) != 2 {
		t.Errorf("order: %v", order)
	}
}

func TestTweenerZeroDuration(t *testing.T) {
	tw := NewTweener(NewLoop())
	done := false
	tw.Animate(0, alert.Pose{}, alert.Pose{Opacity: 1}, func() { done = true })
	if !done || tw.Pose().Opacity != 1 {
		t.Errorf("zero duration: done=%v pose=%+v", done, tw.Pose())
	}
}

func TestLoopFlushRunsChainedOneShots(t *testing.T) {
	l := NewLoop()
	var order []string
	ticks := 0
	l.Every(time.Millisecond, func() { ticks++ })
	l.After(time.Second, func() {
		order = append(order, "first")
		l.After(time.Second, func() { order = append(order, "chained") })
	})
	l.After(2*time.Second, func() { order = append(order, "second") })

	l.Flush()

	if got := strings.Join(order, ","); got != "first,second,chained" {
		t.Errorf("order: got %s, want first,second,chained", got)
	}
	if ticks != 0 {
		t.Errorf("repeating timer ran %d times during flush", ticks)
	}
	if l.Active() != 0 || l.Drain() != nil {
		t.Errorf("flush left %d timers", l.Active())
	}
}
