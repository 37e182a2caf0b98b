package cmd

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders src for a body cols wide. The source is returned
// unchanged if rendering fails.
func renderMarkdown(src string, cols int) string {
	if cols < 10 {
		cols = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(cols),
	)
	if err != nil {
		logger.Warn("markdown renderer", "err", err)
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		logger.Warn("render markdown", "err", err)
		return src
	}

	return dedent(out)
}

// dedent strips trailing spaces and the common left margin.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	margin := -1
	for i, l := range lines {
		l = strings.TrimRight(l, " ")
		lines[i] = l
		if l == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " "))
		if margin < 0 || n < margin {
			margin = n
		}
	}
	for i, l := range lines {
		if len(l) >= margin && margin > 0 {
			lines[i] = l[margin:]
		}
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
