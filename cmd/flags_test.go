package cmd

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/marcus/alertkit/pkg/alert"
)

func TestCategoryValue(t *testing.T) {
	tests := []struct {
		in      string
		want    alert.Category
		wantErr bool
	}{
		{"success", alert.CategorySuccess, false},
		{"Warning", alert.CategoryWarning, false},
		{"wait", alert.CategoryWait, false},
		{"bogus", alert.CategorySuccess, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var v categoryValue
			err := v.Set(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if v.c != tt.want {
				t.Errorf("Set(%q): got %v, want %v", tt.in, v.c, tt.want)
			}
			if v.set == tt.wantErr {
				t.Errorf("set flag: got %v, want %v", v.set, !tt.wantErr)
			}
		})
	}
}

func TestAnimationValue(t *testing.T) {
	var v animationValue
	if err := v.Set("bottom-to-top"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v.s != alert.AnimationBottomToTop {
		t.Errorf("style: got %v, want %v", v.s, alert.AnimationBottomToTop)
	}
	if v.String() != "bottom-to-top" {
		t.Errorf("String: got %q", v.String())
	}
	if err := v.Set("sideways"); err == nil {
		t.Error("Set(sideways): expected error")
	}
}

func TestContentFlagsParse(t *testing.T) {
	var f contentFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addContentFlags(fs, &f)

	err := fs.Parse([]string{
		"--category", "error",
		"-t", "Oops",
		"-b", "Retry", "-b", "Cancel",
		"--duration-button", "Later",
		"--secure-input", "Password",
		"-d", "4",
		"--no-icon",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if f.category.c != alert.CategoryError || !f.category.set {
		t.Errorf("category: got %v set=%v", f.category.c, f.category.set)
	}
	if f.animation.set {
		t.Error("animation should be unset")
	}
	if f.title != "Oops" || len(f.buttons) != 3 || f.buttons[1].label != "Cancel" {
		t.Errorf("parsed: got title %q buttons %v", f.title, f.buttons)
	}
	if !f.buttons[2].duration || len(f.secureInputs) != 1 || f.duration.n != 4 || !f.duration.set || !f.noIcon {
		t.Errorf("parsed: got %+v", f)
	}

	if got := fs.Lookup("category").Value.Type(); got != "category" {
		t.Errorf("category flag type: got %q", got)
	}
}

func TestButtonFlagsKeepOrder(t *testing.T) {
	var f contentFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addContentFlags(fs, &f)

	err := fs.Parse([]string{
		"-b", "Cancel",
		"--duration-button", "Wait",
		"-b", "Retry",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []buttonFlag{
		{label: "Cancel"},
		{label: "Wait", duration: true},
		{label: "Retry"},
	}
	if len(f.buttons) != len(want) {
		t.Fatalf("buttons: got %v, want %v", f.buttons, want)
	}
	for i := range want {
		if f.buttons[i] != want[i] {
			t.Errorf("button %d: got %+v, want %+v", i, f.buttons[i], want[i])
		}
	}
	if got := fs.Lookup("button").Value.String(); got != "[Cancel,Retry]" {
		t.Errorf("button flag String: got %q", got)
	}
	if f.duration.set {
		t.Error("duration should be unset")
	}

	s, err := resolveSpec(&f, nil, t.TempDir())
	if err != nil {
		t.Fatalf("resolveSpec failed: %v", err)
	}
	a, err := s.build(&tapRecorder{}, alert.WithRegistry(alert.NewRegistry()))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	for i, b := range a.Buttons() {
		if b.Label() != want[i].label || b.ShowsDurationStatus() != want[i].duration {
			t.Errorf("alert button %d: got %q/%v, want %q/%v", i, b.Label(), b.ShowsDurationStatus(), want[i].label, want[i].duration)
		}
	}
}

func TestSecondsValue(t *testing.T) {
	var v secondsValue
	if err := v.Set("0"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v.n != 0 || !v.set {
		t.Errorf("Set(0): got %d set=%v", v.n, v.set)
	}
	if err := v.Set("soon"); err == nil {
		t.Error("Set(soon): expected error")
	}
}
