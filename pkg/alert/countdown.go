package alert

import (
	"fmt"
	"math"
	"time"
)

const tickInterval = time.Second

// Countdown is the timed auto-dismiss: a repeating one-second tick and a
// one-shot deadline.
type Countdown struct {
	sched    Scheduler
	onTick   func(remaining int)
	onExpire func()

	remaining int
	ticks     int
	running   bool
	tick      Timer
	deadline  Timer
}

// NewCountdown returns a stopped countdown.
func NewCountdown(s Scheduler, onTick func(remaining int), onExpire func()) *Countdown {
	return &Countdown{sched: s, onTick: onTick, onExpire: onExpire}
}

// Start counts down from seconds.
func (c *Countdown) Start(seconds int) {
	c.StartFor(time.Duration(seconds) * time.Second)
}

// StartFor arms the tick timer and then a deadline timer due after exactly
// d. The label starts at d rounded up to whole seconds.
func (c *Countdown) StartFor(d time.Duration) {
	c.Stop()
	if d <= 0 {
		return
	}
	c.remaining = int(math.Ceil(d.Seconds()))
	c.ticks = 0
	c.running = true
	c.tick = c.sched.Every(tickInterval, c.fireTick)
	c.deadline = c.sched.After(d, c.fireDeadline)
}

func (c *Countdown) fireTick() {
	if !c.running || c.remaining <= 0 {
		return
	}
	c.remaining--
	c.ticks++
	if c.onTick != nil {
		c.onTick(c.remaining)
	}
}

// fireDeadline delivers any ticks the scheduler has not yet fired so every
// remaining value is shown exactly once, stops both timers, then expires.
func (c *Countdown) fireDeadline() {
	if !c.running {
		return
	}
	for c.remaining > 0 {
		c.fireTick()
	}
	c.Stop()
	if c.onExpire != nil {
		c.onExpire()
	}
}

// Stop invalidates both timers. It is safe to call at any time.
func (c *Countdown) Stop() {
	c.running = false
	if c.tick != nil {
		c.tick.Stop()
		c.tick = nil
	}
	if c.deadline != nil {
		c.deadline.Stop()
		c.deadline = nil
	}
}

func (c *Countdown) Remaining() int { return c.remaining }
func (c *Countdown) Ticks() int { return c.ticks }
func (c *Countdown) Running() bool { return c.running }

// DurationLabel formats a button title with the remaining seconds.
func DurationLabel(label string, remaining int) string {
	return fmt.Sprintf("%s (%d)", label, remaining)
}
