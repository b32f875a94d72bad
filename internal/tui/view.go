package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) View() string {
	width := a.cfg.UI.Width
	if width <= 0 {
		width = 36
	}
	if a.width > 0 && a.width-4 < width {
		width = max(a.width-4, 12)
	}
	st := themes[a.theme].styles(width)

	var b strings.Builder
	b.WriteString(st.title.Render("jaskcalc"))
	b.WriteString(st.muted.Render(fmt.Sprintf("  [%s]", themes[a.theme].name)))
	b.WriteString("\n")

	display := a.out.DisplayText
	if a.out.ErrorActive {
		b.WriteString(st.display.Render(st.errText.Render(display)))
	} else {
		b.WriteString(st.display.Render(display))
	}
	b.WriteString("\n")
	b.WriteString(a.renderIndicators(st))
	b.WriteString("\n")
	b.WriteString(st.muted.Render(a.out.Expression))
	b.WriteString("\n")
	b.WriteString(a.renderHistory(st))
	b.WriteString("\n")

	if a.out.Notice != "" {
		b.WriteString(st.modal.Render(a.out.Notice + "\n" + st.muted.Render("press any key")))
		b.WriteString("\n")
	}
	if a.status != "" {
		b.WriteString(st.status.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(a.help.View(a.keys))
	return st.app.Render(b.String())
}

func (a *App) renderIndicators(st styles) string {
	var parts []string
	if a.out.HasMemory {
		parts = append(parts, st.key.Render("M"))
	}
	if a.out.Depth > 0 {
		parts = append(parts, st.key.Render(fmt.Sprintf("( %d", a.out.Depth)))
	}
	if a.out.ErrorActive {
		parts = append(parts, st.errText.Render("ERR"))
	}
	if len(parts) == 0 {
		return " "
	}
	return strings.Join(parts, "  ")
}

func (a *App) renderHistory(st styles) string {
	lines := a.out.HistoryLines
	if len(lines) == 0 {
		return st.panel.Render(st.muted.Render("no history"))
	}
	return st.panel.Render(lipgloss.JoinVertical(lipgloss.Right, lines...))
}
