package overlay

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/alertkit/pkg/alert"
)

// CellMetrics converts between layout units and terminal cells.
type CellMetrics struct {
	Col float64 // units per column
	Row float64 // units per row
}

// DefaultCellMetrics treats a cell as 8x16 units.
var DefaultCellMetrics = CellMetrics{Col: 8, Row: 16}

// Units converts a cell size to layout units.
func (m CellMetrics) Units(cols, rows int) alert.Size {
	return alert.Size{W: float64(cols) * m.Col, H: float64(rows) * m.Row}
}

func (m CellMetrics) Cols(units float64) int {
	return int(math.Round(units / m.Col))
}

func (m CellMetrics) Rows(units float64) int {
	return int(math.Round(units / m.Row))
}

// CellRect converts a unit rectangle to cells.
func (m CellMetrics) CellRect(r alert.Rect) (x, y, w, h int) {
	x, y = m.Cols(r.X), m.Rows(r.Y)
	return x, y, m.Cols(r.MaxX()) - x, m.Rows(r.MaxY()) - y
}

// TextMeasurer measures text wrapped on the cell grid.
type TextMeasurer struct {
	Metrics CellMetrics
}

// Measure implements alert.Measurer.
func (t TextMeasurer) Measure(text string, _ alert.Font, maxWidth float64) alert.Size {
	if text == "" {
		return alert.Size{}
	}
	lines := alert.WrapLines(text, int(maxWidth/t.Metrics.Col))
	return t.Metrics.Units(lipgloss.Width(strings.Join(lines, "\n")), len(lines))
}
