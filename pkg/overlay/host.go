package overlay

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/alertkit/pkg/alert"
	"github.com/marcus/alertkit/pkg/overlay/mouse"
)

const (
	// pressFlash is how long a keyboard-activated button stays darkened.
	pressFlash = 120 * time.Millisecond

	defaultHelpRows = 4
)

// KeyboardInsetMsg reports an obstruction of Rows rows along the bottom of
// the screen, such as an on-screen keyboard or a docked panel.
type KeyboardInsetMsg struct {
	Rows int
}

// DismissedMsg is sent once an alert has been detached from the host.
type DismissedMsg struct {
	Alert *alert.Alert
}

// Host is a bubbletea component that presents alerts.
type Host struct {
	metrics  CellMetrics
	measurer alert.Measurer
	loop     *Loop
	tween    *Tweener
	logger   *slog.Logger
	mouse    *mouse.Handler

	width, height int

	alert *alert.Alert
	last  *alert.Alert

	inputs []textinput.Model
	areas  []textarea.Model
	body   viewport.Model
	focus  int
	flash  bool

	keyboardRows int
	helpRows     int
	showHelp     bool
	subs         map[int]func(float64)
	nextSub      int

	out []tea.Cmd
}

// HostOption configures a Host.
type HostOption func(*Host)

func WithMetrics(m CellMetrics) HostOption {
	return func(h *Host) { h.metrics = m }
}

func WithHostLogger(l *slog.Logger) HostOption {
	return func(h *Host) { h.logger = l }
}

// WithHelpRows sets the height of the F1 help panel.
func WithHelpRows(n int) HostOption {
	return func(h *Host) { h.helpRows = n }
}

func NewHost(opts ...HostOption) *Host {
	h := &Host{
		metrics:  DefaultCellMetrics,
		loop:     NewLoop(),
		logger:   slog.Default(),
		mouse:    mouse.NewHandler(),
		helpRows: defaultHelpRows,
		subs:     make(map[int]func(float64)),
		body:     viewport.New(0, 0),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.tween = NewTweener(h.loop)
	h.measurer = TextMeasurer{Metrics: h.metrics}
	return h
}

func (h *Host) Scheduler() alert.Scheduler { return h.loop }
func (h *Host) Animator() alert.Animator { return h.tween }
func (h *Host) Measurer() alert.Measurer { return h.measurer }
func (h *Host) Metrics() CellMetrics { return h.metrics }
func (h *Host) Loop() *Loop { return h.loop }

// AlertOptions wires an alert to this host.
func (h *Host) AlertOptions() []alert.Option {
	return []alert.Option{
		alert.WithSurface(h),
		alert.WithScheduler(h.loop),
		alert.WithAnimator(h.tween),
		alert.WithMeasurer(h.measurer),
		alert.WithLogger(h.logger),
	}
}

// Current returns the attached alert, or nil.
func (h *Host) Current() *alert.Alert { return h.alert }

// Last returns the most recently detached alert.
func (h *Host) Last() *alert.Alert { return h.last }

// Size implements alert.Surface.
func (h *Host) Size() (alert.Size, bool) {
	if h.width <= 0 || h.height <= 0 {
		return alert.Size{}, false
	}
	return h.metrics.Units(h.width, h.height), true
}

// Attach implements alert.Surface.
func (h *Host) Attach(a *alert.Alert) {
	if h.alert != nil && h.alert != a {
		h.logger.Warn("attach replaces visible alert", "old", h.alert.ID(), "new", a.ID())
	}
	h.alert = a
	h.mouse.Clear()
	h.body.SetYOffset(0)

	h.inputs = h.inputs[:0]
	for _, f := range a.Inputs() {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder()
		ti.SetValue(f.Value())
		if f.Secure() {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		h.inputs = append(h.inputs, ti)
	}
	h.areas = h.areas[:0]
	for _, b := range a.TextBlocks() {
		ta := textarea.New()
		ta.ShowLineNumbers = false
		ta.Prompt = ""
		ta.SetValue(b.Text())
		ta.Blur()
		h.areas = append(h.areas, ta)
	}
	h.focus = 0
	h.applyFocus()
}

// Detach implements alert.Surface.
func (h *Host) Detach(a *alert.Alert) {
	if h.alert != a {
		return
	}
	h.alert = nil
	h.last = a
	h.inputs = nil
	h.areas = nil
	h.flash = false
	h.mouse.Clear()
	h.out = append(h.out, func() tea.Msg { return DismissedMsg{Alert: a} })
}

// OnKeyboardChange implements alert.Surface.
func (h *Host) OnKeyboardChange(fn func(float64)) func() {
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	return func() { delete(h.subs, id) }
}

func (h *Host) insetRows() int {
	rows := h.keyboardRows
	if h.showHelp {
		rows = max(rows, h.helpRows)
	}
	return rows
}

func (h *Host) notifyKeyboard(before int) {
	after := h.insetRows()
	if after == before {
		return
	}
	inset := float64(after) * h.metrics.Row
	for _, fn := range h.subs {
		fn(inset)
	}
}

// Update handles msg and returns the commands the host needs run.
func (h *Host) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case TimerMsg:
		h.loop.Handle(msg)
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		if h.alert != nil {
			h.alert.ViewportChanged(h.metrics.Units(msg.Width, msg.Height))
		}
	case KeyboardInsetMsg:
		before := h.insetRows()
		h.keyboardRows = max(0, msg.Rows)
		h.notifyKeyboard(before)
	case tea.KeyMsg:
		cmd = h.handleKey(msg)
	case tea.MouseMsg:
		h.handleMouse(msg)
	default:
		cmd = h.updateFocusedInput(msg)
	}
	return tea.Batch(cmd, h.Drain())
}

// Drain returns pending host commands. Call it after driving an alert
// directly (for example right after Present).
func (h *Host) Drain() tea.Cmd {
	cmds := append(h.out, h.loop.Drain())
	h.out = nil
	return tea.Batch(cmds...)
}

// focusables: inputs first, then buttons.
func (h *Host) focusCount() int {
	if h.alert == nil {
		return 0
	}
	return len(h.inputs) + len(h.alert.Buttons())
}

func (h *Host) focusedButton() (int, bool) {
	if h.alert == nil || h.focus < len(h.inputs) {
		return 0, false
	}
	idx := h.focus - len(h.inputs)
	return idx, idx < len(h.alert.Buttons())
}

func (h *Host) moveFocus(delta int) {
	n := h.focusCount()
	if n == 0 {
		return
	}
	h.focus = ((h.focus+delta)%n + n) % n
	h.applyFocus()
}

func (h *Host) applyFocus() {
	for i := range h.inputs {
		if i == h.focus {
			h.out = append(h.out, h.inputs[i].Focus())
		} else {
			h.inputs[i].Blur()
		}
	}
}

func (h *Host) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "f1" {
		before := h.insetRows()
		h.showHelp = !h.showHelp
		h.notifyKeyboard(before)
		return nil
	}
	a := h.alert
	if a == nil || a.State() != alert.StateShown {
		return nil
	}

	switch msg.String() {
	case "esc":
		h.logError("close", a.Dismiss(alert.ReasonClose))
		return nil
	case "tab", "down":
		if msg.String() == "down" && h.focus < len(h.inputs) {
			break
		}
		h.moveFocus(1)
		return nil
	case "shift+tab", "up":
		if msg.String() == "up" && h.focus < len(h.inputs) {
			break
		}
		h.moveFocus(-1)
		return nil
	case "left", "right":
		if _, ok := h.focusedButton(); ok {
			if msg.String() == "left" {
				h.moveFocus(-1)
			} else {
				h.moveFocus(1)
			}
			return nil
		}
	case "pgup":
		h.scrollBody(-h.body.Height)
		return nil
	case "pgdown":
		h.scrollBody(h.body.Height)
		return nil
	case "enter":
		if idx, ok := h.focusedButton(); ok {
			h.pressButton(idx)
			return nil
		}
		h.moveFocus(1)
		return nil
	}
	return h.updateFocusedInput(msg)
}

// pressButton darkens idx, then releases and taps it after a short flash.
func (h *Host) pressButton(idx int) {
	if h.flash {
		return
	}
	a := h.alert
	h.flash = true
	h.logError("press", a.PressStart(idx))
	h.loop.After(pressFlash, func() {
		h.flash = false
		h.logError("release", a.PressEnd(idx, true))
		h.logError("tap", a.Tap(idx))
	})
}

func (h *Host) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if h.alert == nil || h.focus >= len(h.inputs) {
		return nil
	}
	var cmd tea.Cmd
	h.inputs[h.focus], cmd = h.inputs[h.focus].Update(msg)
	if fields := h.alert.Inputs(); h.focus < len(fields) {
		fields[h.focus].SetValue(h.inputs[h.focus].Value())
	}
	return cmd
}

func (h *Host) scrollBody(delta int) {
	h.body.SetYOffset(h.body.YOffset + delta)
}

func (h *Host) handleMouse(msg tea.MouseMsg) {
	a := h.alert
	if a == nil {
		return
	}
	act := h.mouse.HandleMouse(msg)

	switch act.Type {
	case mouse.ActionClick, mouse.ActionDoubleClick:
		if idx, ok := buttonIndex(act.Region); ok {
			h.logError("press", a.PressStart(idx))
		}
	case mouse.ActionPressExit:
		if idx, ok := buttonIndex(act.Pressed); ok {
			h.logError("press exit", a.PressEnd(idx, false))
		}
	case mouse.ActionPressEnter:
		if idx, ok := buttonIndex(act.Pressed); ok {
			h.logError("press enter", a.PressStart(idx))
		}
	case mouse.ActionRelease:
		if idx, ok := buttonIndex(act.Pressed); ok {
			h.logError("release", a.PressEnd(idx, act.Inside))
			if act.Inside {
				h.logError("tap", a.Tap(idx))
			}
			return
		}
		if act.Pressed != nil && act.Pressed.ID == regionBackdrop &&
			act.Region != nil && act.Region.ID == regionBackdrop {
			h.logError("background tap", a.TapBackground())
		}
	case mouse.ActionScrollUp:
		if act.Region != nil && act.Region.ID == regionBody {
			h.scrollBody(-1)
		}
	case mouse.ActionScrollDown:
		if act.Region != nil && act.Region.ID == regionBody {
			h.scrollBody(1)
		}
	}
}

const (
	regionBackdrop = "backdrop"
	regionAlert    = "alert"
	regionBody     = "body"
	buttonPrefix   = "button:"
)

func buttonIndex(r *mouse.Region) (int, bool) {
	if r == nil || !strings.HasPrefix(r.ID, buttonPrefix) {
		return 0, false
	}
	idx, err := strconv.Atoi(strings.TrimPrefix(r.ID, buttonPrefix))
	return idx, err == nil
}

func (h *Host) logError(op string, err error) {
	if err != nil {
		h.logger.Warn("alert "+op, "err", err)
	}
}
