package alert

import (
	"reflect"
	"testing"
)

func testContent(buttons int) Content {
	c := Content{Title: "Title", Subtitle: "Sub"}
	for i := 0; i < buttons; i++ {
		c.Buttons = append(c.Buttons, &Button{index: i, label: "B", title: "B"})
	}
	return c
}

var testMeasurer = fixedMeasurer{"Title": 24, "Sub": 40}

func TestComputeLayoutReference(t *testing.T) {
	g := ComputeLayout(DefaultAppearance(), testContent(1), Size{W: 400, H: 800}, 0, testMeasurer)

	if g.ConsumedHeight != 158 {
		t.Errorf("consumed: got %v, want 158", g.ConsumedHeight)
	}
	if g.BodyHeight != 40 || g.BodyScrollable {
		t.Errorf("body: got %v scrollable=%v, want 40 false", g.BodyHeight, g.BodyScrollable)
	}
	if g.TextHeight != 40 {
		t.Errorf("text height: got %v, want 40", g.TextHeight)
	}
	want := Rect{X: 40, Y: 296.625, W: 320, H: 198}
	if g.Alert != want {
		t.Errorf("alert: got %+v, want %+v", g.Alert, want)
	}
	wantCircle := Rect{X: 150, Y: 242.625, W: 100, H: 100}
	if g.Circle != wantCircle {
		t.Errorf("circle: got %+v, want %+v", g.Circle, wantCircle)
	}
	if g.Shadow != (Rect{W: 400, H: 800}) {
		t.Errorf("shadow: got %+v", g.Shadow)
	}

	wantElements := []Element{
		{Kind: ElementTitle, Rect: Rect{X: 25, Y: 50, W: 270, H: 24}},
		{Kind: ElementBody, Rect: Rect{X: 25, Y: 88, W: 270, H: 40}},
		{Kind: ElementSeparator, Rect: Rect{X: 0, Y: 153, W: 320, H: 0.5}},
		{Kind: ElementButton, Rect: Rect{X: 0, Y: 153, W: 320, H: 45}},
	}
	if !reflect.DeepEqual(g.Elements, wantElements) {
		t.Errorf("elements:\n got %+v\nwant %+v", g.Elements, wantElements)
	}
	if last := g.Elements[len(g.Elements)-1].Rect.MaxY(); last != g.Alert.H {
		t.Errorf("last element bottom: got %v, want alert height %v", last, g.Alert.H)
	}
}

func TestComputeLayoutIdempotent(t *testing.T) {
	c := testContent(3)
	c.Inputs = []*InputField{{placeholder: "a"}}
	c.TextBlocks = []*TextBlock{{text: "b"}}
	a := DefaultAppearance()

	g1 := ComputeLayout(a, c, Size{W: 375, H: 667}, 120, testMeasurer)
	g2 := ComputeLayout(a, c, Size{W: 375, H: 667}, 120, testMeasurer)
	if !reflect.DeepEqual(g1, g2) {
		t.Errorf("layout not repeatable:\n%+v\n%+v", g1, g2)
	}
	if a.TextHeight != 90 {
		t.Errorf("ComputeLayout mutated appearance: TextHeight %v", a.TextHeight)
	}
}

func TestComputeLayoutTwoButtonsShareRow(t *testing.T) {
	for _, width := range []float64{300, 375, 401, 1024} {
		g := ComputeLayout(DefaultAppearance(), testContent(2), Size{W: width, H: 700}, 0, testMeasurer)
		btns := g.Buttons()
		if len(btns) != 2 {
			t.Fatalf("width %v: got %d buttons, want 2", width, len(btns))
		}
		if btns[0].Rect.Y != btns[1].Rect.Y {
			t.Errorf("width %v: buttons on different rows: %v vs %v", width, btns[0].Rect.Y, btns[1].Rect.Y)
		}
		if btns[0].Rect.W != btns[1].Rect.W {
			t.Errorf("width %v: unequal widths %v and %v", width, btns[0].Rect.W, btns[1].Rect.W)
		}
		if sum := btns[0].Rect.W + btns[1].Rect.W; sum != g.Alert.W {
			t.Errorf("width %v: widths sum to %v, want %v", width, sum, g.Alert.W)
		}
		if btns[1].Rect.X != btns[0].Rect.MaxX() {
			t.Errorf("width %v: second button at %v, want %v", width, btns[1].Rect.X, btns[0].Rect.MaxX())
		}
		seps := g.ElementsOf(ElementSeparator)
		if len(seps) != 2 {
			t.Fatalf("width %v: got %d separators, want 2", width, len(seps))
		}
		if seps[0].Rect.W != g.Alert.W || seps[1].Rect.H != DefaultAppearance().ButtonHeight {
			t.Errorf("width %v: separators %+v", width, seps)
		}
	}
}

func TestComputeLayoutStackedButtons(t *testing.T) {
	a := DefaultAppearance()
	for _, n := range []int{1, 3, 4} {
		g := ComputeLayout(a, testContent(n), Size{W: 400, H: 900}, 0, testMeasurer)
		btns := g.Buttons()
		if len(btns) != n {
			t.Fatalf("n=%d: got %d buttons", n, len(btns))
		}
		for i, b := range btns {
			if b.Rect.H != a.ButtonHeight {
				t.Errorf("n=%d button %d: height %v, want %v", n, i, b.Rect.H, a.ButtonHeight)
			}
			if b.Rect.W != g.Alert.W {
				t.Errorf("n=%d button %d: width %v, want %v", n, i, b.Rect.W, g.Alert.W)
			}
			if i > 0 && b.Rect.Y != btns[i-1].Rect.MaxY() {
				t.Errorf("n=%d button %d: y %v, want %v", n, i, b.Rect.Y, btns[i-1].Rect.MaxY())
			}
		}
		if len(g.ElementsOf(ElementSeparator)) != n {
			t.Errorf("n=%d: want one divider per button", n)
		}
	}
}

func TestComputeLayoutEdgeCases(t *testing.T) {
	a := DefaultAppearance()

	t.Run("zero buttons", func(t *testing.T) {
		g := ComputeLayout(a, testContent(0), Size{W: 400, H: 800}, 0, testMeasurer)
		if len(g.Buttons()) != 0 || len(g.ElementsOf(ElementSeparator)) != 0 {
			t.Errorf("expected no button row, got %+v", g.Elements)
		}
		if g.ConsumedHeight != 158-45 {
			t.Errorf("consumed: got %v, want %v", g.ConsumedHeight, 158-45)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		c := testContent(1)
		c.Title = ""
		g := ComputeLayout(a, c, Size{W: 400, H: 800}, 0, testMeasurer)
		if _, ok := g.Element(ElementTitle, 0); ok {
			t.Error("empty title should not be laid out")
		}
		if g.ConsumedHeight != 158-50-24 {
			t.Errorf("consumed: got %v, want %v", g.ConsumedHeight, 158-50-24)
		}
	})

	t.Run("hidden icon", func(t *testing.T) {
		shown := ComputeLayout(a, testContent(1), Size{W: 400, H: 800}, 0, testMeasurer)
		hidden := ComputeLayout(a.With(WithCircularIcon(false)), testContent(1), Size{W: 400, H: 800}, 0, testMeasurer)
		if hidden.Alert.H != shown.Alert.H-12 {
			t.Errorf("height: got %v, want %v", hidden.Alert.H, shown.Alert.H-12)
		}
		if hidden.HasIcon || hidden.Circle != (Rect{}) {
			t.Errorf("hidden icon still laid out: %+v", hidden.Circle)
		}
		title, _ := hidden.Element(ElementTitle, 0)
		if title.Rect.Y != 38 {
			t.Errorf("title y: got %v, want 38", title.Rect.Y)
		}
	})

	t.Run("narrow viewport", func(t *testing.T) {
		g := ComputeLayout(a, testContent(1), Size{W: 50, H: 800}, 0, testMeasurer)
		if g.Alert.W != 0 {
			t.Errorf("width: got %v, want 0", g.Alert.W)
		}
	})

	t.Run("body capped", func(t *testing.T) {
		m := fixedMeasurer{"Title": 24, "Sub": 1000}
		g := ComputeLayout(a, testContent(1), Size{W: 400, H: 500}, 0, m)
		want := 500.0 - 100 - 158
		if g.BodyHeight != want || !g.BodyScrollable {
			t.Errorf("body: got %v scrollable=%v, want %v true", g.BodyHeight, g.BodyScrollable, want)
		}
		if g.TextHeight != 90 {
			t.Errorf("text height should not shrink when body is taller, got %v", g.TextHeight)
		}
	})

	t.Run("custom content replaces subtitle", func(t *testing.T) {
		c := testContent(1)
		c.Custom = fixedCustom{W: 100, H: 60}
		g := ComputeLayout(a, c, Size{W: 400, H: 800}, 0, testMeasurer)
		if g.BodyHeight != 60 {
			t.Errorf("body: got %v, want 60", g.BodyHeight)
		}
		if g.TextHeight != 90 {
			t.Errorf("custom content must not shrink text height, got %v", g.TextHeight)
		}
	})

	t.Run("inputs and text blocks", func(t *testing.T) {
		c := testContent(1)
		c.Inputs = []*InputField{{}, {}}
		c.TextBlocks = []*TextBlock{{}}
		g := ComputeLayout(a, c, Size{W: 400, H: 800}, 0, testMeasurer)
		if g.ConsumedHeight != 158+2*45+80 {
			t.Errorf("consumed: got %v, want %v", g.ConsumedHeight, 158+2*45+80)
		}
		in0, _ := g.Element(ElementInput, 0)
		in1, _ := g.Element(ElementInput, 1)
		tb, _ := g.Element(ElementTextBlock, 0)
		if in0.Rect.Y != 128 || in1.Rect.Y != 173 || tb.Rect.Y != 218 {
			t.Errorf("y positions: inputs %v %v, text block %v", in0.Rect.Y, in1.Rect.Y, tb.Rect.Y)
		}
		if in0.Rect.H != 30 || tb.Rect.H != 70 {
			t.Errorf("heights: input %v, text block %v", in0.Rect.H, tb.Rect.H)
		}
	})
}

func TestComputeLayoutKeyboardShift(t *testing.T) {
	a := DefaultAppearance()
	c := testContent(1)
	vp := Size{W: 400, H: 800}

	tests := []struct {
		name  string
		inset float64
		shift float64
	}{
		{"no keyboard", 0, 0},
		{"keyboard below alert", 300, 0},
		{"keyboard overlaps", 400, 94.625},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ComputeLayout(a, c, vp, tt.inset, testMeasurer)
			if g.KeyboardShift != tt.shift {
				t.Errorf("shift: got %v, want %v", g.KeyboardShift, tt.shift)
			}
			if g.Alert.Y != 296.625-tt.shift {
				t.Errorf("alert y: got %v, want %v", g.Alert.Y, 296.625-tt.shift)
			}
			if g.Circle.Y != 242.625-tt.shift {
				t.Errorf("circle y: got %v, want %v", g.Circle.Y, 242.625-tt.shift)
			}
		})
	}
}

func TestMonospaceMeasurer(t *testing.T) {
	m := MonospaceMeasurer{Advance: 8, LineHeight: 16}

	if got := m.Measure("", Font{}, 100); got != (Size{}) {
		t.Errorf("empty: got %+v", got)
	}
	got := m.Measure("hello", Font{}, 800)
	if got != (Size{W: 40, H: 16}) {
		t.Errorf("single line: got %+v, want {40 16}", got)
	}
	got = m.Measure("hello world", Font{}, 80)
	if got.H != 32 {
		t.Errorf("wrapped height: got %v, want 32", got.H)
	}
	if got.W > 80 {
		t.Errorf("wrapped width %v exceeds max 80", got.W)
	}
}

func TestAlertLayoutLeavesStateAlone(t *testing.T) {
	a := New("Title", "Sub", WithMeasurer(testMeasurer), WithRegistry(NewRegistry()))
	if _, err := a.AddButton("OK", NoAction()); err != nil {
		t.Fatalf("AddButton failed: %v", err)
	}
	g := a.Layout(Size{W: 400, H: 800}, 0)
	want := ComputeLayout(a.Appearance(), a.Content(), Size{W: 400, H: 800}, 0, testMeasurer)
	if !reflect.DeepEqual(g, want) {
		t.Errorf("Layout: got %+v, want %+v", g, want)
	}
	if a.State() != StateCreated {
		t.Errorf("state: got %v, want %v", a.State(), StateCreated)
	}
	if a.Geometry().Alert.W != 0 {
		t.Errorf("stored geometry changed: %+v", a.Geometry().Alert)
	}
}
