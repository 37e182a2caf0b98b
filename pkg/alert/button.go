package alert

// ActionKind tags an Action variant.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionCallback
	ActionTarget
)

func (k ActionKind) String() string {
	switch k {
	case ActionCallback:
		return "callback"
	case ActionTarget:
		return "target"
	default:
		return "none"
	}
}

// Target receives named method invocations from TargetMethod actions.
type Target interface {
	Perform(selector string)
}

// Action is what a button does when tapped.
type Action struct {
	Kind     ActionKind
	Func     func()
	Target   Target
	Selector string
}

// NoAction is an action that does nothing. Tapping it is logged.
func NoAction() Action { return Action{} }

// Callback runs fn on tap.
func Callback(fn func()) Action {
	if fn == nil {
		return Action{}
	}
	return Action{Kind: ActionCallback, Func: fn}
}

// TargetMethod calls target.Perform(selector) on tap.
func TargetMethod(target Target, selector string) Action {
	if target == nil {
		return Action{}
	}
	return Action{Kind: ActionTarget, Target: target, Selector: selector}
}

// Empty reports whether the action holds no references.
func (a Action) Empty() bool {
	return a.Func == nil && a.Target == nil && a.Selector == ""
}

// Button is one entry in the alert's button list.
type Button struct {
	index int
	label string
	title string

	customBackground string
	customText       string

	showsDurationStatus bool
	action              Action

	// Resolved at Present.
	background string
	text       string
	current    string
	pressed    bool
}

func (b *Button) Index() int { return b.index }

// Label is the title the button was created with.
func (b *Button) Label() string { return b.label }

// Title is the currently displayed title, including any countdown suffix.
func (b *Button) Title() string { return b.title }

func (b *Button) ShowsDurationStatus() bool { return b.showsDurationStatus }

// Action returns the button's action. It is empty after dismissal.
func (b *Button) Action() Action { return b.action }

// Background returns the color the button is currently drawn with.
func (b *Button) Background() string { return b.current }

// ResolvedBackground is the un-pressed background.
func (b *Button) ResolvedBackground() string { return b.background }

func (b *Button) TextColor() string { return b.text }

func (b *Button) Pressed() bool { return b.pressed }

// ButtonOption configures a button at add time.
type ButtonOption func(*Button)

// WithButtonColors sets custom background and text colors. Empty strings
// keep the defaults.
func WithButtonColors(background, text string) ButtonOption {
	return func(b *Button) {
		b.customBackground = background
		b.customText = text
	}
}

// WithDurationStatus makes the button show the remaining countdown.
func WithDurationStatus() ButtonOption {
	return func(b *Button) { b.showsDurationStatus = true }
}

const defaultButtonText = "#FFFFFF"

func (b *Button) resolveColors(accent string) {
	b.background = accent
	if b.customBackground != "" {
		b.background = b.customBackground
	}
	b.text = defaultButtonText
	if b.customText != "" {
		b.text = b.customText
	}
	b.current = b.background
	b.pressed = false
}
