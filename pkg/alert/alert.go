package alert

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Alert is one modal alert and its whole lifecycle. All methods must be
// called from the host's event loop.
type Alert struct {
	id         string
	appearance Appearance
	content    Content
	state      State

	surface   Surface
	measurer  Measurer
	animator  Animator
	scheduler Scheduler
	icons     IconProvider
	registry  *Registry
	logger    *slog.Logger

	icon     Icon
	iconTint string

	viewport      Size
	geometry      Geometry
	keyboardInset float64
	savedOrigin   *float64
	stopKeyboard  func()
	pose          Pose

	style     AnimationStyle
	duration  time.Duration
	countdown *Countdown

	pending   DismissReason
	reason    DismissReason
	onDismiss func(DismissReason)
	tapped    int

	presentedAt time.Time
	dismissedAt time.Time
}

type options struct {
	appearance *Appearance
	category   *Category
	surface    Surface
	measurer   Measurer
	animator   Animator
	scheduler  Scheduler
	icons      IconProvider
	registry   *Registry
	logger     *slog.Logger
	iconTint   string
}

// Option configures an Alert at construction.
type Option func(*options)

// WithCategory styles the alert with a category's accent and icon. Combined
// with WithAppearance it only replaces the appearance's category.
func WithCategory(c Category) Option {
	return func(o *options) { o.category = &c }
}

// WithAppearance supplies a complete appearance instead of a category default.
func WithAppearance(a Appearance) Option {
	return func(o *options) { o.appearance = &a }
}

func WithSurface(s Surface) Option {
	return func(o *options) { o.surface = s }
}

func WithMeasurer(m Measurer) Option {
	return func(o *options) { o.measurer = m }
}

func WithAnimator(an Animator) Option {
	return func(o *options) { o.animator = an }
}

func WithScheduler(s Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithIconProvider replaces DefaultStyleKit.
func WithIconProvider(p IconProvider) Option {
	return func(o *options) { o.icons = p }
}

// WithRegistry replaces DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithIconTint colors the icon glyph instead of the default white.
func WithIconTint(hex string) Option {
	return func(o *options) { o.iconTint = hex }
}

// New constructs an alert in the Created state.
func New(title, subtitle string, opts ...Option) *Alert {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var ap Appearance
	switch {
	case o.appearance != nil:
		ap = *o.appearance
		if o.category != nil {
			ap.Category = *o.category
		}
	case o.category != nil:
		ap = AppearanceFor(*o.category)
	default:
		ap = DefaultAppearance()
	}

	a := &Alert{
		id:         uuid.NewString(),
		appearance: ap,
		content:    Content{Title: title, Subtitle: subtitle},
		state:      StateCreated,
		surface:    o.surface,
		measurer:   o.measurer,
		animator:   o.animator,
		scheduler:  o.scheduler,
		icons:      o.icons,
		registry:   o.registry,
		logger:     o.logger,
		iconTint:   o.iconTint,
		style:      AnimationTopToBottom,
		tapped:     -1,
	}
	if a.measurer == nil {
		a.measurer = DefaultMeasurer
	}
	if a.animator == nil {
		a.animator = InstantAnimator()
	}
	if a.icons == nil {
		a.icons = DefaultStyleKit()
	}
	if a.registry == nil {
		a.registry = DefaultRegistry()
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

func (a *Alert) ID() string { return a.id }
func (a *Alert) State() State { return a.state }
func (a *Alert) Appearance() Appearance { return a.appearance }
func (a *Alert) Geometry() Geometry { return a.geometry }
func (a *Alert) Pose() Pose { return a.pose }
func (a *Alert) Icon() Icon { return a.icon }
func (a *Alert) IconTint() string { return a.iconTint }
func (a *Alert) Style() AnimationStyle { return a.style }
func (a *Alert) Duration() time.Duration { return a.duration }
func (a *Alert) Reason() DismissReason { return a.reason }
func (a *Alert) PresentedAt() time.Time { return a.presentedAt }
func (a *Alert) DismissedAt() time.Time { return a.dismissedAt }
func (a *Alert) Countdown() *Countdown { return a.countdown }
func (a *Alert) Title() string { return a.content.Title }
func (a *Alert) Subtitle() string { return a.content.Subtitle }
func (a *Alert) Custom() CustomContent { return a.content.Custom }
func (a *Alert) Inputs() []*InputField { return a.content.Inputs }
func (a *Alert) TextBlocks() []*TextBlock { return a.content.TextBlocks }
func (a *Alert) Buttons() []*Button { return a.content.Buttons }
func (a *Alert) InputValues() []string { return a.content.InputValues() }
func (a *Alert) Content() Content { return a.content }
func (a *Alert) Viewport() Size { return a.viewport }

// TappedButton returns the index of the last tapped button, or -1.
func (a *Alert) TappedButton() int { return a.tapped }

// Button returns the button at idx.
func (a *Alert) Button(idx int) (*Button, error) {
	if idx < 0 || idx >= len(a.content.Buttons) {
		return nil, ErrNoSuchButton
	}
	return a.content.Buttons[idx], nil
}

func (a *Alert) checkMutable(op string) error {
	if a.state != StateCreated {
		return &TransitionError{Op: op, From: a.state, To: a.state, AlertID: a.id}
	}
	return nil
}

// AddInput appends a text input.
func (a *Alert) AddInput(placeholder string) (*InputField, error) {
	return a.addInput("add input", placeholder, false)
}

// AddSecureInput appends a text input whose value is masked.
func (a *Alert) AddSecureInput(placeholder string) (*InputField, error) {
	return a.addInput("add secure input", placeholder, true)
}

func (a *Alert) addInput(op, placeholder string, secure bool) (*InputField, error) {
	if err := a.checkMutable(op); err != nil {
		return nil, err
	}
	f := &InputField{index: len(a.content.Inputs), placeholder: placeholder, secure: secure}
	a.content.Inputs = append(a.content.Inputs, f)
	return f, nil
}

// AddTextBlock appends a read-only multi-line text block.
func (a *Alert) AddTextBlock(text string) (*TextBlock, error) {
	if err := a.checkMutable("add text block"); err != nil {
		return nil, err
	}
	b := &TextBlock{index: len(a.content.TextBlocks), text: text}
	a.content.TextBlocks = append(a.content.TextBlocks, b)
	return b, nil
}

// SetCustomContent sets the block shown instead of the subtitle. A later
// call replaces an earlier one.
func (a *Alert) SetCustomContent(c CustomContent) error {
	if err := a.checkMutable("set custom content"); err != nil {
		return err
	}
	a.content.Custom = c
	return nil
}

// AddButton appends a button. The action is fixed for the button's life.
func (a *Alert) AddButton(label string, action Action, opts ...ButtonOption) (*Button, error) {
	if err := a.checkMutable("add button"); err != nil {
		return nil, err
	}
	b := &Button{
		index:  len(a.content.Buttons),
		label:  label,
		title:  label,
		action: action,
	}
	for _, opt := range opts {
		opt(b)
	}
	a.content.Buttons = append(a.content.Buttons, b)
	return b, nil
}

// SetDismissCallback registers fn to run once when the alert is dismissed.
func (a *Alert) SetDismissCallback(fn func(DismissReason)) error {
	if a.state == StateDismissed {
		return &TransitionError{Op: "set dismiss callback", From: a.state, To: a.state, AlertID: a.id}
	}
	a.onDismiss = fn
	return nil
}
