package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: выход"))

	return b.String()
}

// renderStatus renders the OK and error lines shown under page content.
func renderStatus(status, errMsg string) string {
	var b strings.Builder
	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("OK: " + status))
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + errMsg))
	}
	return b.String()
}

// renderTable lays rows out in columns separated by "│". The row at
// selected gets a ">" marker; pass -1 for no selection.
func renderTable(headers []string, rows [][]string, selected int) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(marker string, cells []string) {
		b.WriteString(marker)
		b.WriteString(" ")
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i > 0 {
				b.WriteString(" │ ")
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
		}
		b.WriteString("\n")
	}

	writeRow(" ", headers)
	b.WriteString("──")
	for i, w := range widths {
		if i > 0 {
			b.WriteString("─┼─")
		}
		b.WriteString(strings.Repeat("─", w))
	}
	b.WriteString("\n")

	for i, row := range rows {
		marker := " "
		if i == selected {
			marker = ">"
		}
		writeRow(marker, row)
	}

	return strings.TrimRight(b.String(), "\n")
}

func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func yesNo(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}

func formatCell(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", t), "0"), ".")
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, formatCell(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(t)
	}
}

// moveIndex clamps idx+delta into [0, n).
func moveIndex(idx, delta, n int) int {
	idx += delta
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
