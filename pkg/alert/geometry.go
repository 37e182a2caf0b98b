package alert

// Size is a width/height pair in layout units.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Point is a position in layout units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in layout units.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Offset returns r translated by p.
func (r Rect) Offset(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}

// Contains reports whether p lies inside r. Edges at MaxX/MaxY are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// ElementKind identifies what a laid-out rectangle holds.
type ElementKind int

const (
	ElementTitle ElementKind = iota
	ElementBody
	ElementInput
	ElementTextBlock
	ElementSeparator
	ElementButton
)

func (k ElementKind) String() string {
	switch k {
	case ElementTitle:
		return "title"
	case ElementBody:
		return "body"
	case ElementInput:
		return "input"
	case ElementTextBlock:
		return "text-block"
	case ElementSeparator:
		return "separator"
	case ElementButton:
		return "button"
	default:
		return "unknown"
	}
}

// Element is one laid-out rectangle. Index is the position among elements
// of the same kind.
type Element struct {
	Kind  ElementKind
	Index int
	Rect  Rect
}

// Geometry is the output of ComputeLayout.
//
// Viewport, Alert, Shadow and Circle are in viewport coordinates. Elements
// are relative to the alert's top-left corner and ordered top to bottom.
type Geometry struct {
	Viewport Size
	Alert    Rect
	Shadow   Rect
	Circle   Rect
	Icon     Rect
	HasIcon  bool

	Elements []Element

	ConsumedHeight float64
	BodyHeight     float64
	BodyScrollable bool

	// TextHeight is the subtitle box height after the measurement-driven
	// shrink. It never exceeds the appearance's TextHeight.
	TextHeight float64

	// KeyboardShift is how far the alert was raised to clear the keyboard.
	KeyboardShift float64
}

// ElementsOf returns the elements of one kind in display order.
func (g Geometry) ElementsOf(kind ElementKind) []Element {
	var out []Element
	for _, e := range g.Elements {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Buttons returns the button rectangles in button order.
func (g Geometry) Buttons() []Element {
	return g.ElementsOf(ElementButton)
}

// Element returns the idx-th element of kind.
func (g Geometry) Element(kind ElementKind, idx int) (Element, bool) {
	for _, e := range g.Elements {
		if e.Kind == kind && e.Index == idx {
			return e, true
		}
	}
	return Element{}, false
}

// Absolute returns e's rectangle in viewport coordinates.
func (g Geometry) Absolute(e Element) Rect {
	return e.Rect.Offset(g.Alert.Origin())
}
