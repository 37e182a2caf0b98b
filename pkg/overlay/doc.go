// Package overlay hosts alerts inside a bubbletea program.
//
// A Host implements every collaborator the alert engine needs: it is the
// alert's Surface, its Scheduler (timers are tea.Tick messages), its
// Animator (a harmonica spring driven by frame ticks) and its Measurer
// (cell-grid text wrapping). Everything runs on the bubbletea event loop.
//
// # Integration
//
//	host := overlay.NewHost()
//	a := alert.New("Saved", "Your changes were written.", host.AlertOptions()...)
//	a.AddButton("OK", alert.NoAction())
//
//	// In Update():
//	cmd := host.Update(msg)
//
//	// In View():
//	return host.View(background)
//
// Present the alert after the first tea.WindowSizeMsg so the host knows its
// viewport; Model does this for you.
//
// # Input
//
//   - Tab/Shift+Tab cycle focus over inputs and buttons
//   - Enter presses the focused button (or advances from an input)
//   - Esc closes the alert
//   - F1 toggles the key help panel, which behaves like an on-screen
//     keyboard: the alert moves up to stay clear of it
//   - Mouse press, drag and release drive button feedback; clicking the
//     backdrop is a background tap
package overlay
