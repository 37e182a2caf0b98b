package overlay

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/alertkit/pkg/alert"
)

// minVisibleOpacity hides the box at the very start of an entrance.
const minVisibleOpacity = 0.05

// Renderer is implemented by custom content that can draw itself.
type Renderer interface {
	Render(width, height int) string
}

// View composites the attached alert, its backdrop and the help panel over
// background. It also rebuilds the mouse hit map.
func (h *Host) View(background string) string {
	if h.width <= 0 || h.height <= 0 {
		return background
	}
	lines := fitLines(background, h.width, h.height)

	h.mouse.HitMap.Clear()
	if a := h.alert; a != nil {
		h.drawAlert(lines, a)
	}
	if h.showHelp {
		h.drawHelp(lines)
	}
	return strings.Join(lines, "\n")
}

func (h *Host) drawAlert(lines []string, a *alert.Alert) {
	ap := a.Appearance()
	g := a.Geometry()
	pose := a.Pose()
	if h.tween.Animating() {
		pose = h.tween.Pose()
	}

	if ap.ShowDropShadow {
		shade := lipgloss.NewStyle().Foreground(shadeColor(ap.ShadowOpacity * pose.Opacity))
		for i, l := range lines {
			lines[i] = shade.Render(ansi.Strip(l))
		}
	}
	h.mouse.HitMap.AddRect(regionBackdrop, 0, 0, h.width, h.height, nil)

	if pose.Opacity <= minVisibleOpacity {
		return
	}

	x, y, w, bh := h.metrics.CellRect(g.Alert.Offset(pose.Offset))
	box := h.renderBox(a, ap, g, w, bh)
	bx, by := x, y
	if ap.ContentViewBorderColor != "" {
		border := lipgloss.NormalBorder()
		if ap.ContentViewCornerRadius > 0 {
			border = lipgloss.RoundedBorder()
		}
		framed := lipgloss.NewStyle().
			Border(border).
			BorderForeground(color(ap.ContentViewBorderColor)).
			BorderBackground(color(ap.ContentViewColor)).
			Render(strings.Join(box, "\n"))
		box = strings.Split(framed, "\n")
		bx, by = x-1, y-1
	}
	if pose.Opacity < 1 {
		faint := lipgloss.NewStyle().Faint(true)
		for i, l := range box {
			box[i] = faint.Render(ansi.Strip(l))
		}
	}
	place(lines, box, bx, by)
	h.mouse.HitMap.AddRect(regionAlert, x, y, w, bh, nil)

	for _, e := range g.Elements {
		if e.Kind != alert.ElementButton && e.Kind != alert.ElementBody {
			continue
		}
		ex, ey, ew, eh := h.metrics.CellRect(g.Absolute(e).Offset(pose.Offset))
		id := regionBody
		if e.Kind == alert.ElementButton {
			id = buttonPrefix + strconv.Itoa(e.Index)
		}
		h.mouse.HitMap.AddRect(id, ex, ey, ew, max(1, eh), e.Index)
	}

	if g.HasIcon {
		badge := h.badge(a, ap)
		c := g.Circle.Offset(pose.Offset)
		cx := h.metrics.Cols(c.X + c.W/2)
		cy := h.metrics.Rows(c.Y + c.H/2)
		place(lines, badge, cx-lipgloss.Width(badge[0])/2, cy-len(badge)/2)
	}
}

// renderBox draws the alert body as w-wide lines.
func (h *Host) renderBox(a *alert.Alert, ap alert.Appearance, g alert.Geometry, w, rows int) []string {
	if w <= 0 || rows <= 0 {
		return nil
	}
	base := boxStyle(ap)
	lines := make([]string, rows)
	blank := base.Render(strings.Repeat(" ", w))
	for i := range lines {
		lines[i] = blank
	}

	buttons := a.Buttons()
	focused, hasFocus := h.focusedButton()

	for _, e := range g.Elements {
		ex, ey, ew, eh := h.metrics.CellRect(e.Rect)
		if ew <= 0 {
			continue
		}
		eh = max(1, eh)

		switch e.Kind {
		case alert.ElementTitle:
			st := base.Foreground(color(ap.TitleColor)).Bold(true).Width(ew).Align(lipAlign(ap.TitleAlignment))
			for i, l := range alert.WrapLines(a.Title(), ew) {
				if i >= eh {
					break
				}
				putLine(lines, ey+i, ex, st.Render(l))
			}

		case alert.ElementBody:
			for i, l := range h.bodyLines(a, ap, ew, eh) {
				putLine(lines, ey+i, ex, l)
			}

		case alert.ElementInput:
			if e.Index >= len(h.inputs) {
				continue
			}
			in := &h.inputs[e.Index]
			in.Width = max(1, ew-3)
			field := lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(color(ap.Accent())).
				Width(ew - 1).
				Render(" " + in.View())
			putLine(lines, ey, ex, field)

		case alert.ElementTextBlock:
			if e.Index >= len(h.areas) {
				continue
			}
			ta := &h.areas[e.Index]
			ta.SetWidth(max(1, ew-1))
			ta.SetHeight(eh)
			framed := lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(color(ap.Accent())).
				Render(ta.View())
			for i, l := range strings.Split(framed, "\n") {
				if i >= eh {
					break
				}
				putLine(lines, ey+i, ex, l)
			}

		case alert.ElementButton:
			if e.Index >= len(buttons) {
				continue
			}
			b := buttons[e.Index]
			st := lipgloss.NewStyle().
				Background(color(b.Background())).
				Foreground(color(b.TextColor())).
				Bold(ap.ButtonFont.Bold).
				Width(ew).
				Align(lipgloss.Center)
			label := b.Title()
			if hasFocus && focused == e.Index {
				label = "› " + label + " ‹"
			}
			label = ansi.Truncate(label, ew, "…")
			for r := 0; r < eh; r++ {
				text := ""
				if r == eh/2 {
					text = label
				}
				putLine(lines, ey+r, ex, st.Render(text))
			}
		}
	}

	// Vertical separators go over the buttons they divide.
	for _, e := range g.ElementsOf(alert.ElementSeparator) {
		if e.Rect.H <= e.Rect.W || len(buttons) < 2 {
			continue
		}
		ex, ey, _, eh := h.metrics.CellRect(e.Rect)
		sep := lipgloss.NewStyle().
			Foreground(color(ap.ButtonSeparatorColor)).
			Background(color(buttons[1].Background())).
			Render("│")
		for r := 0; r < max(1, eh); r++ {
			putLine(lines, ey+r, ex, sep)
		}
	}
	return lines
}

func (h *Host) bodyLines(a *alert.Alert, ap alert.Appearance, w, rows int) []string {
	if r, ok := a.Custom().(Renderer); ok {
		return strings.Split(r.Render(w, rows), "\n")
	}
	h.body.Width = w
	h.body.Height = rows
	h.body.SetContent(strings.Join(alert.WrapLines(a.Subtitle(), w), "\n"))

	st := boxStyle(ap).
		Foreground(color(ap.SubtitleColor)).
		Width(w).
		Align(lipAlign(ap.TextAlignment))
	var out []string
	for _, l := range strings.Split(h.body.View(), "\n") {
		out = append(out, st.Render(strings.TrimRight(l, " ")))
	}
	if a.Geometry().BodyScrollable && len(out) > 0 {
		more := boxStyle(ap).Foreground(Muted).Render("↓")
		last := len(out) - 1
		out[last] = splice(out[last], w-1, more)
	}
	return out
}

func (h *Host) badge(a *alert.Alert, ap alert.Appearance) []string {
	tint := a.IconTint()
	if tint == "" {
		tint = "#FFFFFF"
	}
	circle := color(ap.CircleColor())
	inner := lipgloss.NewStyle().
		Background(circle).
		Foreground(color(tint)).
		Bold(true).
		Padding(0, 1).
		Render(a.Icon().Glyph)
	return strings.Split(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(circle).
		Render(inner), "\n")
}

func (h *Host) drawHelp(lines []string) {
	rows := min(h.helpRows, len(lines))
	text := []string{
		HelpKey.Render("tab") + HelpPanel.Render(" focus  ") +
			HelpKey.Render("enter") + HelpPanel.Render(" press  ") +
			HelpKey.Render("esc") + HelpPanel.Render(" close"),
		HelpKey.Render("pgup/pgdn") + HelpPanel.Render(" scroll  ") +
			HelpKey.Render("mouse") + HelpPanel.Render(" press and release buttons  ") +
			HelpKey.Render("f1") + HelpPanel.Render(" hide help"),
	}
	start := len(lines) - rows
	for i := 0; i < rows; i++ {
		content := ""
		if i > 0 && i-1 < len(text) {
			content = " " + text[i-1]
		}
		lines[start+i] = HelpPanel.Width(h.width).Render(ansi.Truncate(content, h.width, ""))
	}
}

// fitLines splits s into exactly rows lines of exactly cols cells.
func fitLines(s string, cols, rows int) []string {
	src := strings.Split(s, "\n")
	out := make([]string, rows)
	for i := range out {
		var l string
		if i < len(src) {
			l = ansi.Truncate(src[i], cols, "")
		}
		if pad := cols - lipgloss.Width(l); pad > 0 {
			l += strings.Repeat(" ", pad)
		}
		out[i] = l
	}
	return out
}

// place pastes block onto lines with its top-left at (x, y), clipping at
// the edges.
func place(lines, block []string, x, y int) {
	for i, bl := range block {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		col := x
		if col < 0 {
			bl = ansi.TruncateLeft(bl, -col, "")
			col = 0
		}
		lines[row] = splice(lines[row], col, bl)
	}
}

func putLine(lines []string, row, col int, s string) {
	if row < 0 || row >= len(lines) {
		return
	}
	lines[row] = splice(lines[row], col, s)
}

// splice overwrites base starting at cell col with s, keeping base's width.
func splice(base string, col int, s string) string {
	total := lipgloss.Width(base)
	if col >= total {
		return base
	}
	s = ansi.Truncate(s, total-col, "")
	left := ansi.Truncate(base, col, "")
	if pad := col - lipgloss.Width(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(base, col+lipgloss.Width(s), "")
	return left + ansi.ResetStyle + s + ansi.ResetStyle + right
}
