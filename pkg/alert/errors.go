package alert

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the alert's current lifecycle state.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrMissingHostSurface is returned by Present when there is no surface
	// or the surface cannot report a viewport size.
	ErrMissingHostSurface = errors.New("no host surface available")

	// ErrMissingScheduler is returned by Present when a duration is
	// requested but no Scheduler was configured.
	ErrMissingScheduler = errors.New("no scheduler configured for timed dismissal")

	// ErrUnresolvedAction marks a button tapped without an action. It is
	// logged, never returned.
	ErrUnresolvedAction = errors.New("button has no action")

	// ErrNoSuchButton is returned when a button index is out of range.
	ErrNoSuchButton = errors.New("no such button")
)

// TransitionError describes a rejected lifecycle operation.
type TransitionError struct {
	Op      string
	From    State
	To      State
	AlertID string
}

func (e *TransitionError) Error() string {
	if e.From == e.To {
		if e.AlertID != "" {
			return fmt.Sprintf("cannot %s alert %s while %s", e.Op, e.AlertID, e.From)
		}
		return fmt.Sprintf("cannot %s alert while %s", e.Op, e.From)
	}
	if e.AlertID != "" {
		return fmt.Sprintf("cannot %s alert %s: %s -> %s not allowed", e.Op, e.AlertID, e.From, e.To)
	}
	return fmt.Sprintf("cannot %s alert: %s -> %s not allowed", e.Op, e.From, e.To)
}

// Unwrap lets errors.Is match ErrInvalidTransition.
func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
