package alert

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	// chromeReserve is the vertical space kept free around the alert.
	chromeReserve = 100

	hiddenIconOffset   = -12
	separatorThickness = 0.5

	// Inputs and text blocks are drawn shorter than the row they occupy.
	inputGap     = 15
	textBlockGap = 10
)

// ComputeLayout lays out content inside viewport. It is a pure function:
// identical inputs always produce identical geometry.
//
// keyboardInset is the height of the on-screen keyboard (or any bottom
// obstruction) measured from the viewport's bottom edge.
func ComputeLayout(a Appearance, c Content, viewport Size, keyboardInset float64, m Measurer) Geometry {
	if m == nil {
		m = DefaultMeasurer
	}
	g := Geometry{Viewport: viewport, TextHeight: a.TextHeight}

	width := math.Max(0, viewport.W-2*a.Margin)
	inner := math.Max(0, width-2*a.Padding)

	var titleHeight float64
	if c.Title != "" {
		titleHeight = m.Measure(c.Title, a.TitleFont, inner).H
	}

	consumed := a.TitleBottomMargin + a.Padding
	if c.Title != "" {
		consumed += a.TitleTop + titleHeight
	}
	consumed += buttonRowsHeight(a, len(c.Buttons))
	consumed += float64(len(c.Inputs)) * a.TextFieldHeight
	consumed += float64(len(c.TextBlocks)) * a.TextViewHeight
	g.ConsumedHeight = consumed

	maxBody := math.Max(0, viewport.H-chromeReserve-consumed)

	var measured float64
	hasBody := c.Custom != nil || c.Subtitle != ""
	switch {
	case c.Custom != nil:
		measured = c.Custom.Size().H
	case c.Subtitle != "":
		measured = m.Measure(c.Subtitle, a.TextFont, inner).H
	}
	body := math.Min(measured, maxBody)
	g.BodyHeight = body
	g.BodyScrollable = measured > maxBody

	if c.Custom == nil && c.Subtitle != "" && body < g.TextHeight {
		g.TextHeight = body
	}

	iconOffset := 0.0
	if !a.ShowCircularIcon {
		iconOffset = hiddenIconOffset
	}
	height := math.Max(0, consumed+body+iconOffset)

	x := (viewport.W - width) / 2
	y := (viewport.H - height - a.CircleHeight/8) / 2
	if keyboardInset > 0 {
		overlap := (y + height) - (viewport.H - keyboardInset)
		g.KeyboardShift = math.Max(0, overlap)
		y -= g.KeyboardShift
	}
	g.Alert = Rect{X: x, Y: y, W: width, H: height}

	if a.ShowCircularIcon {
		g.HasIcon = true
		bg := a.CircleHeightBackground
		g.Circle = Rect{
			X: (viewport.W - bg) / 2,
			Y: y - bg*0.6 + 6,
			W: bg,
			H: bg,
		}
		g.Icon = Rect{
			X: g.Circle.X + (bg-a.CircleHeight)/2,
			Y: g.Circle.Y + (bg-a.CircleHeight)/2,
			W: a.CircleHeight,
			H: a.CircleHeight,
		}
	}
	if a.ShowDropShadow {
		g.Shadow = Rect{W: viewport.W, H: viewport.H}
	}

	// Elements, top to bottom, in alert-local coordinates.
	cursor := iconOffset
	if c.Title != "" {
		g.Elements = append(g.Elements, Element{
			Kind: ElementTitle,
			Rect: Rect{X: a.Padding, Y: cursor + a.TitleTop, W: inner, H: titleHeight},
		})
		cursor += a.TitleTop + titleHeight
	}
	cursor += a.TitleBottomMargin

	if hasBody {
		g.Elements = append(g.Elements, Element{
			Kind: ElementBody,
			Rect: Rect{X: a.Padding, Y: cursor, W: inner, H: body},
		})
	}
	cursor += body

	for i := range c.Inputs {
		g.Elements = append(g.Elements, Element{
			Kind:  ElementInput,
			Index: i,
			Rect:  Rect{X: a.Padding, Y: cursor, W: inner, H: math.Max(0, a.TextFieldHeight-inputGap)},
		})
		cursor += a.TextFieldHeight
	}
	for i := range c.TextBlocks {
		g.Elements = append(g.Elements, Element{
			Kind:  ElementTextBlock,
			Index: i,
			Rect:  Rect{X: a.Padding, Y: cursor, W: inner, H: math.Max(0, a.TextViewHeight-textBlockGap)},
		})
		cursor += a.TextViewHeight
	}
	cursor += a.Padding

	g.Elements = appendButtons(g.Elements, a, len(c.Buttons), width, cursor)
	return g
}

func buttonRowsHeight(a Appearance, n int) float64 {
	switch {
	case n == 0:
		return 0
	case n == 2:
		return a.ButtonHeight
	default:
		return float64(n) * a.ButtonHeight
	}
}

func appendButtons(els []Element, a Appearance, n int, width, y float64) []Element {
	bh := a.ButtonHeight
	if n == 2 {
		half := width / 2
		return append(els,
			Element{Kind: ElementSeparator, Index: 0, Rect: Rect{X: 0, Y: y, W: width, H: separatorThickness}},
			Element{Kind: ElementSeparator, Index: 1, Rect: Rect{X: half, Y: y, W: separatorThickness, H: bh}},
			Element{Kind: ElementButton, Index: 0, Rect: Rect{X: 0, Y: y, W: half, H: bh}},
			Element{Kind: ElementButton, Index: 1, Rect: Rect{X: half, Y: y, W: width - half, H: bh}},
		)
	}
	for i := 0; i < n; i++ {
		els = append(els,
			Element{Kind: ElementSeparator, Index: i, Rect: Rect{X: 0, Y: y, W: width, H: separatorThickness}},
			Element{Kind: ElementButton, Index: i, Rect: Rect{X: 0, Y: y, W: width, H: bh}},
		)
		y += bh
	}
	return els
}

// MonospaceMeasurer measures text on a fixed character grid. Advance is the
// width of one column and LineHeight the height of one line, both in layout
// units.
type MonospaceMeasurer struct {
	Advance    float64
	LineHeight float64
}

// DefaultMeasurer assumes 8x16 unit cells.
var DefaultMeasurer Measurer = MonospaceMeasurer{Advance: 8, LineHeight: 16}

// Measure wraps text at maxWidth and returns the wrapped block's size.
func (m MonospaceMeasurer) Measure(text string, _ Font, maxWidth float64) Size {
	if text == "" || m.Advance <= 0 {
		return Size{}
	}
	lines := WrapLines(text, int(maxWidth/m.Advance))
	widest := 0
	for _, line := range lines {
		widest = max(widest, ansi.StringWidth(line))
	}
	return Size{W: float64(widest) * m.Advance, H: float64(len(lines)) * m.LineHeight}
}

// WrapLines wraps text to cols columns the same way Measure does.
func WrapLines(text string, cols int) []string {
	if text == "" {
		return nil
	}
	if cols < 1 {
		cols = 1
	}
	return strings.Split(ansi.Wrap(text, cols, " -"), "\n")
}
