// Package mouse maps terminal mouse events onto named screen regions and
// tracks button presses across press, drag and release.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const doubleClickThreshold = 400 * time.Millisecond

// Rect is a cell rectangle. Width and height are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named hit area.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions in insertion order. Later regions win on overlap.
type HitMap struct {
	regions []Region
}

func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region.
func (h *HitMap) AddRect(id string, x, y, w, ht int, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: ht}, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}

func (h *HitMap) Regions() []Region {
	return h.regions
}

func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// ActionType classifies a mouse event after hit testing.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionDrag
	ActionDragEnd
	// ActionPressExit and ActionPressEnter report the pointer leaving or
	// re-entering the region a press started in.
	ActionPressExit
	ActionPressEnter
	// ActionRelease ends a press. Pressed is the region the press started
	// in and Inside reports whether the release landed back on it.
	ActionRelease
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionDoubleClick:
		return "double-click"
	case ActionHover:
		return "hover"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	case ActionScrollLeft:
		return "scroll-left"
	case ActionScrollRight:
		return "scroll-right"
	case ActionDrag:
		return "drag"
	case ActionDragEnd:
		return "drag-end"
	case ActionPressExit:
		return "press-exit"
	case ActionPressEnter:
		return "press-enter"
	case ActionRelease:
		return "release"
	default:
		return "none"
	}
}

// MouseAction is the result of HandleMouse.
type MouseAction struct {
	Type    ActionType
	Region  *Region
	X, Y    int
	DragDX  int
	DragDY  int
	Pressed *Region
	Inside  bool
}

// ClickResult is the result of HandleClick.
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// Handler combines a HitMap with click, drag and press state.
type Handler struct {
	HitMap *HitMap

	lastClickID   string
	lastClickTime time.Time

	dragging       bool
	dragRegion     string
	dragStartX     int
	dragStartY     int
	dragStartValue int

	pressed       *Region
	pressedInside bool
}

func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleClick hit tests (x, y) and detects double clicks on the same region.
func (h *Handler) HandleClick(x, y int) ClickResult {
	r := h.HitMap.Test(x, y)
	now := time.Now()
	res := ClickResult{Region: r}
	if r != nil && r.ID == h.lastClickID && now.Sub(h.lastClickTime) < doubleClickThreshold {
		res.IsDoubleClick = true
		h.lastClickID = ""
		h.lastClickTime = time.Time{}
		return res
	}
	if r != nil {
		h.lastClickID = r.ID
	} else {
		h.lastClickID = ""
	}
	h.lastClickTime = now
	return res
}

func (h *Handler) StartDrag(x, y int, region string, startValue int) {
	h.dragging = true
	h.dragRegion = region
	h.dragStartX = x
	h.dragStartY = y
	h.dragStartValue = startValue
}

func (h *Handler) EndDrag() {
	h.dragging = false
	h.dragRegion = ""
}

func (h *Handler) IsDragging() bool { return h.dragging }
func (h *Handler) DragRegion() string { return h.dragRegion }
func (h *Handler) DragStartValue() int { return h.dragStartValue }

func (h *Handler) DragDelta(x, y int) (int, int) {
	return x - h.dragStartX, y - h.dragStartY
}

// Pressed returns the region the current press started in, or nil.
func (h *Handler) Pressed() *Region { return h.pressed }

// HandleMouse classifies msg.
func (h *Handler) HandleMouse(msg tea.MouseMsg) MouseAction {
	act := MouseAction{X: msg.X, Y: msg.Y, Region: h.HitMap.Test(msg.X, msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			act.Type = ActionScrollUp
			if msg.Shift {
				act.Type = ActionScrollLeft
			}
		case tea.MouseButtonWheelDown:
			act.Type = ActionScrollDown
			if msg.Shift {
				act.Type = ActionScrollRight
			}
		case tea.MouseButtonWheelLeft:
			act.Type = ActionScrollLeft
		case tea.MouseButtonWheelRight:
			act.Type = ActionScrollRight
		case tea.MouseButtonLeft:
			res := h.HandleClick(msg.X, msg.Y)
			act.Type = ActionClick
			if res.IsDoubleClick {
				act.Type = ActionDoubleClick
			}
			h.pressed = act.Region
			h.pressedInside = act.Region != nil
			act.Pressed = h.pressed
			act.Inside = h.pressedInside
		}

	case tea.MouseActionMotion:
		if h.dragging {
			act.Type = ActionDrag
			act.DragDX, act.DragDY = h.DragDelta(msg.X, msg.Y)
			return act
		}
		act.Type = ActionHover
		if h.pressed != nil {
			inside := h.pressed.Rect.Contains(msg.X, msg.Y)
			switch {
			case h.pressedInside && !inside:
				act.Type = ActionPressExit
			case !h.pressedInside && inside:
				act.Type = ActionPressEnter
			}
			h.pressedInside = inside
			act.Pressed = h.pressed
			act.Inside = inside
		}

	case tea.MouseActionRelease:
		if h.dragging {
			act.Type = ActionDragEnd
			act.DragDX, act.DragDY = h.DragDelta(msg.X, msg.Y)
			h.EndDrag()
			return act
		}
		act.Type = ActionRelease
		if h.pressed != nil {
			act.Pressed = h.pressed
			act.Inside = h.pressed.Rect.Contains(msg.X, msg.Y)
		}
		h.pressed = nil
		h.pressedInside = false
	}
	return act
}

// Clear drops all regions and any press in progress.
func (h *Handler) Clear() {
	h.HitMap.Clear()
	h.pressed = nil
	h.pressedInside = false
}
