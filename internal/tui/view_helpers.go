package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	}

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(uiDivider)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return b.String()
}

// fitText truncates v to max display cells, marking the cut with "...".
// Escape sequences in v are preserved.
func fitText(v string, max int) string {
	if max <= 0 || ansi.StringWidth(v) <= max {
		return v
	}
	return ansi.Truncate(v, max, "...")
}
