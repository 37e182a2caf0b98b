package output

import (
	"fmt"
	"strconv"

	"github.com/marcus/alertkit/pkg/alert"
)

// FormatRect prints a rect as "x,y wxh" with trailing zeros trimmed.
func FormatRect(r alert.Rect) string {
	return fmt.Sprintf("%s,%s %sx%s", num(r.X), num(r.Y), num(r.W), num(r.H))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GeometryTree builds a tree of the frames in g. Element rects are
// relative to the alert box.
func GeometryTree(g alert.Geometry) TreeNode {
	box := TreeNode{ID: "alert", Kind: "box", Title: FormatRect(g.Alert)}
	if g.BodyScrollable {
		box.Flags = append(box.Flags, "scroll")
	}
	if g.KeyboardShift != 0 {
		box.Flags = append(box.Flags, "shift="+num(g.KeyboardShift))
	}
	for _, e := range g.Elements {
		box.Children = append(box.Children, TreeNode{
			ID:    fmt.Sprintf("%s[%d]", e.Kind, e.Index),
			Kind:  "element",
			Title: FormatRect(e.Rect),
		})
	}

	root := TreeNode{
		ID:    "viewport",
		Title: fmt.Sprintf("%sx%s", num(g.Viewport.W), num(g.Viewport.H)),
	}
	if g.Shadow.W > 0 {
		root.Children = append(root.Children, TreeNode{ID: "shadow", Kind: "frame", Title: FormatRect(g.Shadow)})
	}
	root.Children = append(root.Children, box)
	if g.HasIcon {
		root.Children = append(root.Children,
			TreeNode{ID: "circle", Kind: "frame", Title: FormatRect(g.Circle)},
			TreeNode{ID: "icon", Kind: "frame", Title: FormatRect(g.Icon)},
		)
	}
	return root
}

// GeometrySummary is the JSON form of a layout.
type GeometrySummary struct {
	Viewport       alert.Size   `json:"viewport"`
	Alert          alert.Rect   `json:"alert"`
	Circle         *alert.Rect  `json:"circle,omitempty"`
	Icon           *alert.Rect  `json:"icon,omitempty"`
	Elements       []ElementRow `json:"elements"`
	BodyHeight     float64      `json:"body_height"`
	BodyScrollable bool         `json:"body_scrollable"`
	KeyboardShift  float64      `json:"keyboard_shift,omitempty"`
}

type ElementRow struct {
	Kind  string     `json:"kind"`
	Index int        `json:"index"`
	Rect  alert.Rect `json:"rect"`
}

// SummarizeGeometry converts g for JSON output.
func SummarizeGeometry(g alert.Geometry) GeometrySummary {
	s := GeometrySummary{
		Viewport:       g.Viewport,
		Alert:          g.Alert,
		BodyHeight:     g.BodyHeight,
		BodyScrollable: g.BodyScrollable,
		KeyboardShift:  g.KeyboardShift,
		Elements:       make([]ElementRow, 0, len(g.Elements)),
	}
	if g.HasIcon {
		circle, icon := g.Circle, g.Icon
		s.Circle, s.Icon = &circle, &icon
	}
	for _, e := range g.Elements {
		s.Elements = append(s.Elements, ElementRow{Kind: e.Kind.String(), Index: e.Index, Rect: e.Rect})
	}
	return s
}
