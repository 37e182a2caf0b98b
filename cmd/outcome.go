package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/marcus/alertkit/internal/journal"
	"github.com/marcus/alertkit/pkg/alert"
)

// outcome is what show prints once the alert is gone.
type outcome struct {
	AlertID         string    `json:"alert_id"`
	Category        string    `json:"category"`
	Title           string    `json:"title"`
	Reason          string    `json:"reason"`
	Button          string    `json:"button,omitempty"`
	ButtonIndex     int       `json:"button_index"`
	Inputs          []string  `json:"inputs,omitempty"`
	DurationSeconds int       `json:"duration_seconds,omitempty"`
	PresentedAt     time.Time `json:"presented_at"`
	DismissedAt     time.Time `json:"dismissed_at"`
}

func newOutcome(a *alert.Alert) outcome {
	o := outcome{
		AlertID:         a.ID(),
		Category:        a.Appearance().Category.String(),
		Title:           a.Title(),
		Reason:          a.Reason().String(),
		ButtonIndex:     a.TappedButton(),
		Inputs:          a.InputValues(),
		DurationSeconds: int(a.Duration() / time.Second),
		PresentedAt:     a.PresentedAt(),
		DismissedAt:     a.DismissedAt(),
	}
	if b, err := a.Button(o.ButtonIndex); err == nil {
		o.Button = b.Label()
	}
	return o
}

func (o outcome) journalEntry() journal.Outcome {
	return journal.Outcome{
		AlertID:         o.AlertID,
		Category:        o.Category,
		Title:           o.Title,
		Reason:          o.Reason,
		Button:          o.Button,
		DurationSeconds: o.DurationSeconds,
		PresentedAt:     o.PresentedAt,
		DismissedAt:     o.DismissedAt,
	}
}

// writeText prints one "KEY value" line per field.
func (o outcome) writeText(w io.Writer) {
	fmt.Fprintf(w, "DISMISSED %s (%s)\n", o.AlertID, o.Reason)
	if o.Button != "" {
		fmt.Fprintf(w, "BUTTON %s\n", o.Button)
	}
	for i, v := range o.Inputs {
		fmt.Fprintf(w, "INPUT[%d] %s\n", i, v)
	}
}

// recordOutcome appends o to the journal at path. Failures are logged only.
func recordOutcome(ctx context.Context, path string, o outcome) {
	j, err := journal.Open(path)
	if err != nil {
		logger.Error("open journal", "path", path, "err", err)
		return
	}
	defer j.Close()
	if _, err := j.Record(ctx, o.journalEntry()); err != nil {
		logger.Error("record outcome", "alert", o.AlertID, "err", err)
	}
}
