package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/alertkit/internal/journal"
	"github.com/marcus/alertkit/pkg/alert"
	"github.com/marcus/alertkit/pkg/overlay"
)

// dismissedAlert presents an alert on an off-screen host, taps button idx
// and runs the exit animation to completion.
func dismissedAlert(t *testing.T, idx int) *alert.Alert {
	t.Helper()
	h := overlay.NewHost()
	h.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	s := alertSpec{
		category:     alert.CategoryInfo,
		animation:    alert.AnimationNone,
		title:        "Login",
		inputs:       []string{"User"},
		secureInputs: []string{"Password"},
		buttons:      []buttonFlag{{label: "Cancel"}, {label: "Sign in"}},
	}
	a, err := s.build(&tapRecorder{}, append(h.AlertOptions(), alert.WithRegistry(alert.NewRegistry()))...)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if _, err := a.Present(s.presentOptions()...); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	a.Inputs()[0].SetValue("ada")
	a.Inputs()[1].SetValue("hunter2")
	if err := a.Tap(idx); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	h.Loop().Flush()
	if a.State() != alert.StateDismissed {
		t.Fatalf("state: got %v, want dismissed", a.State())
	}
	return a
}

func TestNewOutcome(t *testing.T) {
	a := dismissedAlert(t, 1)
	o := newOutcome(a)

	if o.AlertID != a.ID() || o.Category != "info" || o.Title != "Login" {
		t.Errorf("identity: got %+v", o)
	}
	if o.Reason != "button" || o.Button != "Sign in" || o.ButtonIndex != 1 {
		t.Errorf("dismissal: got reason %q button %q index %d", o.Reason, o.Button, o.ButtonIndex)
	}
	if len(o.Inputs) != 2 || o.Inputs[0] != "ada" || o.Inputs[1] != "hunter2" {
		t.Errorf("inputs: got %v", o.Inputs)
	}
	if o.DismissedAt.Before(o.PresentedAt) {
		t.Errorf("timestamps: presented %v after dismissed %v", o.PresentedAt, o.DismissedAt)
	}

	var buf bytes.Buffer
	o.writeText(&buf)
	want := "DISMISSED " + a.ID() + " (button)\nBUTTON Sign in\nINPUT[0] ada\nINPUT[1] hunter2\n"
	if buf.String() != want {
		t.Errorf("writeText:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestRecordOutcome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "j.db")
	o := newOutcome(dismissedAlert(t, 0))
	recordOutcome(context.Background(), path, o)

	j, err := journal.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer j.Close()
	got, err := j.Recent(context.Background(), 1)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 1 || got[0].AlertID != o.AlertID || got[0].Button != "Cancel" {
		t.Errorf("journal: got %+v", got)
	}
	if !strings.Contains(historyNodes(got)[0].Title, "Login") {
		t.Errorf("history node: got %+v", historyNodes(got)[0])
	}
}
