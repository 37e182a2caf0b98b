package alert

import "sync"

// Icon is an opaque, drawn icon handle. The terminal host renders Glyph in
// the icon circle.
type Icon struct {
	Category Category
	Glyph    string
}

// IconProvider supplies the stock icon for a category.
type IconProvider interface {
	IconFor(c Category) Icon
}

// DrawFunc produces the icon for one category. It may be expensive.
type DrawFunc func(c Category) Icon

// StyleKit is a lazily populated icon cache. Each category is drawn at most
// once for the lifetime of the kit.
type StyleKit struct {
	draw DrawFunc

	mu    sync.Mutex
	cache map[Category]Icon
	draws int
}

// NewStyleKit returns a kit that draws with draw, or DrawStockIcon when nil.
func NewStyleKit(draw DrawFunc) *StyleKit {
	if draw == nil {
		draw = DrawStockIcon
	}
	return &StyleKit{draw: draw, cache: make(map[Category]Icon)}
}

// IconFor returns the cached icon for c, drawing it on first use.
func (k *StyleKit) IconFor(c Category) Icon {
	k.mu.Lock()
	defer k.mu.Unlock()
	if icon, ok := k.cache[c]; ok {
		return icon
	}
	icon := k.draw(c)
	k.cache[c] = icon
	k.draws++
	return icon
}

// Draws reports how many icons the kit has drawn.
func (k *StyleKit) Draws() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.draws
}

var (
	defaultKitOnce sync.Once
	defaultKit     *StyleKit
)

// DefaultStyleKit returns the process-wide kit.
func DefaultStyleKit() *StyleKit {
	defaultKitOnce.Do(func() {
		defaultKit = NewStyleKit(DrawStockIcon)
	})
	return defaultKit
}

// DrawStockIcon draws the built-in glyph for c.
func DrawStockIcon(c Category) Icon {
	glyph := "✔"
	switch c {
	case CategoryError:
		glyph = "✖"
	case CategoryNotice:
		glyph = "●"
	case CategoryWarning:
		glyph = "!"
	case CategoryInfo:
		glyph = "i"
	case CategoryEdit:
		glyph = "✎"
	case CategoryWait:
		glyph = "◌"
	}
	return Icon{Category: c, Glyph: glyph}
}
