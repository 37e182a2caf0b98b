package overlay

import (
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/marcus/alertkit/pkg/alert"
)

const (
	tweenFPS      = 30
	springFreq    = 18.0
	springDamping = 0.8
	frameInterval = time.Second / tweenFPS
)

// Tweener animates alert poses with a spring. Frames and completion are
// Loop timers, so the animation advances only as the program handles
// messages.
type Tweener struct {
	loop   *Loop
	spring harmonica.Spring

	active *tween
	pose   alert.Pose
	frames int
}

type tween struct {
	from, to   alert.Pose
	progress   float64
	velocity   float64
	frame      alert.Timer
	done       alert.Timer
	completion func()
}

func NewTweener(loop *Loop) *Tweener {
	return &Tweener{
		loop:   loop,
		spring: harmonica.NewSpring(harmonica.FPS(tweenFPS), springFreq, springDamping),
		pose:   alert.Pose{Opacity: 1},
	}
}

// Animate implements alert.Animator. Starting a new animation completes
// the running one first.
func (tw *Tweener) Animate(d time.Duration, from, to alert.Pose, completion func()) {
	tw.finish()

	t := &tween{from: from, to: to, completion: completion}
	tw.active = t
	tw.pose = from
	if d <= 0 {
		tw.finish()
		return
	}
	t.frame = tw.loop.Every(frameInterval, func() { tw.step(t) })
	t.done = tw.loop.After(d, func() {
		if tw.active == t {
			tw.finish()
		}
	})
}

func (tw *Tweener) step(t *tween) {
	if tw.active != t {
		return
	}
	t.progress, t.velocity = tw.spring.Update(t.progress, t.velocity, 1)
	tw.pose = lerpPose(t.from, t.to, t.progress)
	tw.frames++
}

// finish snaps the running tween to its target and runs its completion.
func (tw *Tweener) finish() {
	t := tw.active
	if t == nil {
		return
	}
	tw.active = nil
	if t.frame != nil {
		t.frame.Stop()
	}
	if t.done != nil {
		t.done.Stop()
	}
	tw.pose = t.to
	if t.completion != nil {
		t.completion()
	}
}

// Pose returns the pose to draw this frame.
func (tw *Tweener) Pose() alert.Pose { return tw.pose }

// Animating reports whether a tween is running.
func (tw *Tweener) Animating() bool { return tw.active != nil }

func (tw *Tweener) Frames() int { return tw.frames }

func lerpPose(from, to alert.Pose, p float64) alert.Pose {
	op := from.Opacity + (to.Opacity-from.Opacity)*p
	op = min(1, max(0, op))
	return alert.Pose{
		Opacity: op,
		Offset: alert.Point{
			X: from.Offset.X + (to.Offset.X-from.Offset.X)*p,
			Y: from.Offset.Y + (to.Offset.Y-from.Offset.Y)*p,
		},
	}
}
