package alert

import "time"

// Measurer measures wrapped text. It must be pure.
type Measurer interface {
	Measure(text string, font Font, maxWidth float64) Size
}

// Surface is the host the alert attaches to. The alert holds it as a
// back-reference only.
type Surface interface {
	// Size returns the current viewport, or false when none is available.
	Size() (Size, bool)
	Attach(a *Alert)
	Detach(a *Alert)
	// OnKeyboardChange registers fn for keyboard inset changes. An inset of
	// zero means the keyboard is hidden. The returned func unsubscribes.
	OnKeyboardChange(fn func(inset float64)) (cancel func())
}

// Pose is the animatable part of an alert: its opacity and its offset from
// the laid-out position.
type Pose struct {
	Opacity float64
	Offset  Point
}

// Animator runs one animation. completion must be called exactly once per
// call, even if the animation is interrupted.
type Animator interface {
	Animate(d time.Duration, from, to Pose, completion func())
}

// Timer is a scheduled callback. Stop is idempotent.
type Timer interface {
	Stop()
}

// Scheduler runs callbacks on the alert's event loop.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
	Every(d time.Duration, fn func()) Timer
}

// instantAnimator jumps straight to the target pose.
type instantAnimator struct{}

func (instantAnimator) Animate(_ time.Duration, _, _ Pose, completion func()) {
	if completion != nil {
		completion()
	}
}

// InstantAnimator returns an Animator that completes synchronously.
func InstantAnimator() Animator { return instantAnimator{} }
