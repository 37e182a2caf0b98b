package alert

import (
	"fmt"
	"time"
)

type presentOptions struct {
	duration time.Duration
	style    AnimationStyle
}

// PresentOption configures a presentation.
type PresentOption func(*presentOptions)

// WithDuration auto-dismisses the alert d after it is shown. Countdown
// labels show d rounded up to whole seconds.
func WithDuration(d time.Duration) PresentOption {
	return func(o *presentOptions) { o.duration = d }
}

// WithAnimation selects the entrance style.
func WithAnimation(s AnimationStyle) PresentOption {
	return func(o *presentOptions) { o.style = s }
}

// Present lays the alert out, attaches it to its surface and starts the
// entrance animation.
func (a *Alert) Present(opts ...PresentOption) (*Responder, error) {
	po := presentOptions{style: AnimationTopToBottom}
	for _, opt := range opts {
		opt(&po)
	}

	if a.state != StateCreated {
		return nil, &TransitionError{Op: "present", From: a.state, To: StatePresenting, AlertID: a.id}
	}
	if a.surface == nil {
		return nil, fmt.Errorf("present %s: %w", a.id, ErrMissingHostSurface)
	}
	size, ok := a.surface.Size()
	if !ok {
		return nil, fmt.Errorf("present %s: viewport unavailable: %w", a.id, ErrMissingHostSurface)
	}
	if po.duration > 0 && a.scheduler == nil {
		return nil, fmt.Errorf("present %s: %w", a.id, ErrMissingScheduler)
	}

	a.style = po.style
	a.duration = po.duration
	a.viewport = size

	accent := a.appearance.Accent()
	for _, b := range a.content.Buttons {
		b.resolveColors(accent)
	}
	if a.appearance.ShowCircularIcon {
		a.icon = a.icons.IconFor(a.appearance.Category)
		if a.appearance.Icon != "" {
			a.icon.Glyph = a.appearance.Icon
		}
	}
	a.relayout()

	a.state = StatePresenting
	a.presentedAt = time.Now()
	a.registry.add(a)
	a.stopKeyboard = a.surface.OnKeyboardChange(a.keyboardChanged)

	a.logger.Debug("present alert",
		"alert", a.id,
		"category", a.appearance.Category.String(),
		"style", a.style.String(),
		"duration", a.duration,
		"buttons", len(a.content.Buttons))

	start, overshoot, rest := entrancePoses(a.style)
	if a.style == AnimationNone {
		a.pose = rest
		a.surface.Attach(a)
		a.enterShown()
		return &Responder{alert: a}, nil
	}

	a.pose = start
	a.surface.Attach(a)
	a.animator.Animate(entrancePhaseDuration, start, overshoot, func() {
		a.pose = overshoot
		a.animator.Animate(entrancePhaseDuration, overshoot, rest, func() {
			a.pose = rest
			a.enterShown()
		})
	})
	return &Responder{alert: a}, nil
}

func (a *Alert) enterShown() {
	if a.state != StatePresenting {
		return
	}
	a.state = StateShown

	if a.pending != ReasonNone {
		reason := a.pending
		a.pending = ReasonNone
		a.beginDismiss(reason)
		return
	}

	if a.duration > 0 {
		a.countdown = NewCountdown(a.scheduler, a.countdownTick, a.countdownExpired)
		a.countdown.StartFor(a.duration)
	}
}

func (a *Alert) countdownTick(remaining int) {
	for _, b := range a.content.Buttons {
		if b.showsDurationStatus {
			b.title = DurationLabel(b.label, remaining)
		}
	}
}

func (a *Alert) countdownExpired() {
	if err := a.requestDismiss(ReasonTimeout); err != nil {
		a.logger.Warn("timeout dismiss", "alert", a.id, "err", err)
	}
}

// Dismiss requests dismissal with reason. Requests made during the entrance
// animation are applied once the alert is shown.
func (a *Alert) Dismiss(reason DismissReason) error {
	return a.requestDismiss(reason)
}

func (a *Alert) requestDismiss(reason DismissReason) error {
	switch a.state {
	case StatePresenting:
		if a.pending == ReasonNone {
			a.pending = reason
		}
		return nil
	case StateShown:
		a.beginDismiss(reason)
		return nil
	default:
		return &TransitionError{Op: "dismiss", From: a.state, To: StateDismissing, AlertID: a.id}
	}
}

func (a *Alert) beginDismiss(reason DismissReason) {
	a.state = StateDismissing
	a.reason = reason
	if a.countdown != nil {
		a.countdown.Stop()
	}
	if a.stopKeyboard != nil {
		a.stopKeyboard()
		a.stopKeyboard = nil
	}

	from := a.pose
	to := Pose{Opacity: 0, Offset: from.Offset}
	a.animator.Animate(exitDuration, from, to, func() {
		a.pose = to
		a.finishDismiss()
	})
}

func (a *Alert) finishDismiss() {
	if a.state != StateDismissing {
		return
	}
	a.state = StateDismissed
	a.dismissedAt = time.Now()

	a.logger.Debug("dismiss alert", "alert", a.id, "reason", a.reason.String(), "button", a.tapped)

	if fn := a.onDismiss; fn != nil {
		a.onDismiss = nil
		fn(a.reason)
	}
	a.surface.Detach(a)
	for _, b := range a.content.Buttons {
		b.action = Action{}
	}
	a.registry.remove(a)
}

// SetTitle replaces the title and re-lays out a visible alert in place.
func (a *Alert) SetTitle(title string) error {
	if err := a.checkContentChange("set title"); err != nil {
		return err
	}
	a.content.Title = title
	a.contentChanged()
	return nil
}

// SetSubtitle replaces the subtitle and re-lays out a visible alert in place.
func (a *Alert) SetSubtitle(subtitle string) error {
	if err := a.checkContentChange("set subtitle"); err != nil {
		return err
	}
	a.content.Subtitle = subtitle
	a.contentChanged()
	return nil
}

func (a *Alert) checkContentChange(op string) error {
	if a.state == StateDismissing || a.state == StateDismissed {
		return &TransitionError{Op: op, From: a.state, To: a.state, AlertID: a.id}
	}
	return nil
}

func (a *Alert) contentChanged() {
	if a.state == StatePresenting || a.state == StateShown {
		a.relayout()
	}
}

// ViewportChanged re-lays out a visible alert for a new viewport size.
func (a *Alert) ViewportChanged(size Size) {
	if a.state != StatePresenting && a.state != StateShown {
		return
	}
	a.viewport = size
	if a.savedOrigin != nil {
		y := ComputeLayout(a.appearance, a.content, size, 0, a.measurer).Alert.Y
		a.savedOrigin = &y
	}
	a.relayout()
}

// Layout computes the geometry the alert would have in viewport without
// changing its state.
func (a *Alert) Layout(viewport Size, keyboardInset float64) Geometry {
	return ComputeLayout(a.appearance, a.content, viewport, keyboardInset, a.measurer)
}

// relayout recomputes geometry. The subtitle box only ever shrinks.
func (a *Alert) relayout() {
	g := ComputeLayout(a.appearance, a.content, a.viewport, a.keyboardInset, a.measurer)
	if g.TextHeight < a.appearance.TextHeight {
		a.appearance.TextHeight = g.TextHeight
	}
	a.geometry = g
}

func (a *Alert) keyboardChanged(inset float64) {
	if a.state != StatePresenting && a.state != StateShown {
		return
	}
	if inset > 0 {
		a.keyboardShown(inset)
		return
	}
	a.keyboardHidden()
}

func (a *Alert) keyboardShown(inset float64) {
	if a.savedOrigin == nil {
		y := a.geometry.Alert.Y
		a.savedOrigin = &y
	}
	a.keyboardInset = inset
	a.relayout()
}

// keyboardHidden restores the stored origin. Without a stored origin it
// does nothing.
func (a *Alert) keyboardHidden() {
	if a.savedOrigin == nil {
		return
	}
	a.keyboardInset = 0
	a.relayout()
	delta := *a.savedOrigin - a.geometry.Alert.Y
	a.geometry.Alert.Y = *a.savedOrigin
	a.geometry.Circle.Y += delta
	a.geometry.Icon.Y += delta
	a.geometry.KeyboardShift = 0
	a.savedOrigin = nil
}
