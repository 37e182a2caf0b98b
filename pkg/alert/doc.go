// Package alert implements a modal alert presentation engine: layout,
// lifecycle, button dispatch and timed auto-dismiss.
//
// The engine is host agnostic. Text measurement, the presentation surface,
// animation and timers are supplied through small interfaces (see
// collaborators.go); pkg/overlay provides a bubbletea implementation of all
// of them.
//
// # Quick Start
//
//	a := alert.New("Hold On...", "You have not saved your submission yet.",
//	    alert.WithCategory(alert.CategoryError),
//	    alert.WithSurface(host), alert.WithScheduler(host.Scheduler()),
//	    alert.WithAnimator(host.Animator()), alert.WithMeasurer(host.Measurer()))
//
//	a.AddButton("Done", alert.Callback(func() { saved = true }))
//
//	resp, err := a.Present(alert.WithDuration(10*time.Second))
//	if err != nil {
//	    return err
//	}
//	resp.SetDismissCallback(func(r alert.DismissReason) { log.Println(r) })
//
// # Lifecycle
//
// An alert moves through Created, Presenting, Shown, Dismissing and
// Dismissed. Content may only be added while Created. Dismiss requests that
// arrive during the entrance animation are queued until it completes. A
// dismissed alert can never be presented again.
//
// # Layout
//
// ComputeLayout is a pure function from appearance, content, viewport size
// and keyboard inset to a Geometry. Units are abstract; the terminal host
// maps them onto cells.
package alert
