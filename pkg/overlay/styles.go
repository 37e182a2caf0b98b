package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/marcus/alertkit/pkg/alert"
)

// Terminal-only colors. Everything else comes from the alert's Appearance.
var (
	Muted  = lipgloss.Color("241")
	HelpBg = lipgloss.Color("236")
)

var (
	HelpPanel = lipgloss.NewStyle().
			Background(HelpBg).
			Foreground(lipgloss.Color("250"))

	HelpKey = lipgloss.NewStyle().
		Background(HelpBg).
		Foreground(lipgloss.Color("212")).
		Bold(true)
)

func color(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

func boxStyle(a alert.Appearance) lipgloss.Style {
	return lipgloss.NewStyle().Background(color(a.ContentViewColor))
}

func lipAlign(al alert.Alignment) lipgloss.Position {
	switch al {
	case alert.AlignLeft:
		return lipgloss.Left
	case alert.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

// shadeColor is the backdrop text color for a shadow of the given opacity:
// light gray fading toward black as opacity rises.
func shadeColor(opacity float64) lipgloss.Color {
	light := colorful.Color{R: 0.85, G: 0.85, B: 0.85}
	dark := colorful.Color{R: 0.1, G: 0.1, B: 0.1}
	return lipgloss.Color(light.BlendRgb(dark, min(1, max(0, opacity))).Clamped().Hex())
}
