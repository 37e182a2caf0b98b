package alert

// Font describes a typeface request. The measurer decides what a size means
// for its medium.
type Font struct {
	Size   float64
	Bold   bool
	Italic bool
}

// Alignment is horizontal text alignment.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// ParseAlignment accepts "left", "center" or "right". Anything else is center.
func ParseAlignment(s string) Alignment {
	switch s {
	case "left":
		return AlignLeft
	case "right":
		return AlignRight
	default:
		return AlignCenter
	}
}

// Appearance holds every visual and layout parameter of an alert. It is a
// value: an alert copies it at construction and never shares it.
//
// Colors are "#RRGGBB" strings; an empty string means "none".
type Appearance struct {
	ShadowOpacity float64

	CircleTopPosition           float64
	CircleBackgroundTopPosition float64
	CircleHeightBackground      float64
	CircleHeight                float64
	CircleIconHeight            float64

	TitleTop          float64
	TextHeight        float64
	TextFieldHeight   float64
	TextViewHeight    float64
	ButtonHeight      float64
	TitleBottomMargin float64
	Padding           float64
	Margin            float64

	ContentViewCornerRadius float64
	FieldCornerRadius       float64
	ButtonCornerRadius      float64

	ContentViewColor       string
	ContentViewBorderColor string
	TitleColor             string
	SubtitleColor          string
	ButtonSeparatorColor   string

	TitleFont  Font
	TextFont   Font
	ButtonFont Font

	TitleAlignment Alignment
	TextAlignment  Alignment

	ShowCircularIcon         bool
	ShouldAutoDismiss        bool
	ShowDropShadow           bool
	HideWhenBackgroundTapped bool

	// Category selects the stock icon and, unless AccentColor is set, the
	// accent used for buttons and the icon circle.
	Category    Category
	AccentColor string

	// Icon overrides the stock glyph when non-empty.
	Icon                string
	IconBackgroundColor string
}

// DefaultAppearance returns the documented defaults.
func DefaultAppearance() Appearance {
	return Appearance{
		ShadowOpacity: 0.7,

		CircleTopPosition:           -12,
		CircleBackgroundTopPosition: -15,
		CircleHeightBackground:      100,
		CircleHeight:                70,
		CircleIconHeight:            60,

		TitleTop:          50,
		TextHeight:        90,
		TextFieldHeight:   45,
		TextViewHeight:    80,
		ButtonHeight:      45,
		TitleBottomMargin: 14,
		Padding:           25,
		Margin:            40,

		ContentViewCornerRadius: 5,
		FieldCornerRadius:       3,
		ButtonCornerRadius:      3,

		ContentViewColor:     "#FFFFFF",
		TitleColor:           "#4D4D4D",
		SubtitleColor:        "#4D4D4D",
		ButtonSeparatorColor: "#FFFFFF",

		TitleFont:  Font{Size: 20},
		TextFont:   Font{Size: 14},
		ButtonFont: Font{Size: 14, Bold: true},

		TitleAlignment: AlignCenter,
		TextAlignment:  AlignCenter,

		ShowCircularIcon:         true,
		ShouldAutoDismiss:        true,
		ShowDropShadow:           true,
		HideWhenBackgroundTapped: false,

		Category: CategorySuccess,
	}
}

// Accent returns the resolved accent color.
func (a Appearance) Accent() string {
	if a.AccentColor != "" {
		return a.AccentColor
	}
	return AccentColor(a.Category)
}

// CircleColor returns the icon circle fill.
func (a Appearance) CircleColor() string {
	if a.IconBackgroundColor != "" {
		return a.IconBackgroundColor
	}
	return a.Accent()
}

// AppearanceOption overrides one part of an Appearance.
type AppearanceOption func(*Appearance)

// NewAppearance starts from DefaultAppearance and applies opts in order.
func NewAppearance(opts ...AppearanceOption) Appearance {
	a := DefaultAppearance()
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// With returns a copy of a with opts applied.
func (a Appearance) With(opts ...AppearanceOption) Appearance {
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func WithCategoryStyle(c Category) AppearanceOption {
	return func(a *Appearance) { a.Category = c }
}

func WithAccentColor(hex string) AppearanceOption {
	return func(a *Appearance) { a.AccentColor = hex }
}

func WithPadding(p float64) AppearanceOption {
	return func(a *Appearance) { a.Padding = p }
}

func WithMargin(m float64) AppearanceOption {
	return func(a *Appearance) { a.Margin = m }
}

func WithTitleTop(v float64) AppearanceOption {
	return func(a *Appearance) { a.TitleTop = v }
}

func WithTitleBottomMargin(v float64) AppearanceOption {
	return func(a *Appearance) { a.TitleBottomMargin = v }
}

func WithTextHeight(v float64) AppearanceOption {
	return func(a *Appearance) { a.TextHeight = v }
}

func WithTextFieldHeight(v float64) AppearanceOption {
	return func(a *Appearance) { a.TextFieldHeight = v }
}

func WithTextViewHeight(v float64) AppearanceOption {
	return func(a *Appearance) { a.TextViewHeight = v }
}

func WithButtonHeight(v float64) AppearanceOption {
	return func(a *Appearance) { a.ButtonHeight = v }
}

// WithCircleSizes sets the icon circle background, circle and icon sizes.
func WithCircleSizes(background, circle, icon float64) AppearanceOption {
	return func(a *Appearance) {
		a.CircleHeightBackground = background
		a.CircleHeight = circle
		a.CircleIconHeight = icon
	}
}

func WithCornerRadii(content, field, button float64) AppearanceOption {
	return func(a *Appearance) {
		a.ContentViewCornerRadius = content
		a.FieldCornerRadius = field
		a.ButtonCornerRadius = button
	}
}

func WithShadowOpacity(v float64) AppearanceOption {
	return func(a *Appearance) { a.ShadowOpacity = v }
}

// WithContentColors sets the box fill and border. An empty border means no border.
func WithContentColors(background, border string) AppearanceOption {
	return func(a *Appearance) {
		a.ContentViewColor = background
		a.ContentViewBorderColor = border
	}
}

func WithTextColors(title, subtitle string) AppearanceOption {
	return func(a *Appearance) {
		a.TitleColor = title
		a.SubtitleColor = subtitle
	}
}

func WithButtonSeparatorColor(hex string) AppearanceOption {
	return func(a *Appearance) { a.ButtonSeparatorColor = hex }
}

func WithFonts(title, text, button Font) AppearanceOption {
	return func(a *Appearance) {
		a.TitleFont = title
		a.TextFont = text
		a.ButtonFont = button
	}
}

func WithAlignment(title, text Alignment) AppearanceOption {
	return func(a *Appearance) {
		a.TitleAlignment = title
		a.TextAlignment = text
	}
}

func WithCircularIcon(show bool) AppearanceOption {
	return func(a *Appearance) { a.ShowCircularIcon = show }
}

func WithAutoDismiss(v bool) AppearanceOption {
	return func(a *Appearance) { a.ShouldAutoDismiss = v }
}

func WithDropShadow(v bool) AppearanceOption {
	return func(a *Appearance) { a.ShowDropShadow = v }
}

func WithHideOnBackgroundTap(v bool) AppearanceOption {
	return func(a *Appearance) { a.HideWhenBackgroundTapped = v }
}

// WithCustomIcon replaces the stock glyph and optionally the circle fill.
func WithCustomIcon(glyph, background string) AppearanceOption {
	return func(a *Appearance) {
		a.Icon = glyph
		a.IconBackgroundColor = background
	}
}
