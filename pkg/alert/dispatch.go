package alert

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// pressedBrightness scales a pressed button's HSV value.
const pressedBrightness = 0.85

// PressStart darkens button idx while it is held.
func (a *Alert) PressStart(idx int) error {
	b, err := a.Button(idx)
	if err != nil {
		return fmt.Errorf("press start %d: %w", idx, err)
	}
	if a.state != StateShown || b.pressed {
		return nil
	}
	c, err := colorful.Hex(b.current)
	if err != nil {
		a.logger.Debug("press start: unparsable color", "alert", a.id, "color", b.current, "err", err)
		return nil
	}
	h, s, v := c.Hsv()
	b.current = colorful.Hsv(h, s, v*pressedBrightness).Clamped().Hex()
	b.pressed = true
	return nil
}

// PressEnd restores button idx to its resolved color whether or not the
// press became a tap.
func (a *Alert) PressEnd(idx int, confirmed bool) error {
	b, err := a.Button(idx)
	if err != nil {
		return fmt.Errorf("press end %d: %w", idx, err)
	}
	b.current = b.background
	b.pressed = false
	if !confirmed {
		a.logger.Debug("press cancelled", "alert", a.id, "button", idx)
	}
	return nil
}

// Tap runs button idx's action, then dismisses the alert when the
// appearance asks for it and the alert is still shown.
func (a *Alert) Tap(idx int) error {
	b, err := a.Button(idx)
	if err != nil {
		return fmt.Errorf("tap %d: %w", idx, err)
	}
	if a.state != StateShown {
		return nil
	}
	a.tapped = idx

	switch act := b.action; {
	case act.Kind == ActionCallback && act.Func != nil:
		act.Func()
	case act.Kind == ActionTarget && act.Target != nil:
		act.Target.Perform(act.Selector)
	default:
		a.logger.Warn("button tapped", "alert", a.id, "button", idx, "label", b.label,
			"action", act.Kind.String(), "err", ErrUnresolvedAction)
	}

	if a.appearance.ShouldAutoDismiss && a.state == StateShown {
		return a.requestDismiss(ReasonButton)
	}
	return nil
}

// TapBackground handles a tap outside the alert box.
func (a *Alert) TapBackground() error {
	if a.state != StateShown || !a.appearance.HideWhenBackgroundTapped {
		return nil
	}
	return a.requestDismiss(ReasonBackground)
}
