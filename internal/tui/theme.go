package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type theme struct {
	name   string
	bg     lipgloss.Color
	fg     lipgloss.Color
	accent lipgloss.Color
	muted  lipgloss.Color
	err    lipgloss.Color
}

// themes follow the light, dark and blue panels of the desktop calculator.
var themes = []theme{
	{name: "light", bg: "#e6e6e6", fg: "#000000", accent: "#1e66f5", muted: "#6c6f85", err: "#d20f39"},
	{name: "dark", bg: "#323232", fg: "#ffffff", accent: "#89b4fa", muted: "#a6adc8", err: "#f38ba8"},
	{name: "blue", bg: "#c8e6ff", fg: "#000000", accent: "#04508c", muted: "#4c6a85", err: "#b00020"},
}

// themeIndex returns the theme named name, falling back to dark.
func themeIndex(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, t := range themes {
		if t.name == name {
			return i
		}
	}
	return 1
}

type styles struct {
	app     lipgloss.Style
	title   lipgloss.Style
	display lipgloss.Style
	errText lipgloss.Style
	muted   lipgloss.Style
	panel   lipgloss.Style
	modal   lipgloss.Style
	key     lipgloss.Style
	status  lipgloss.Style
}

func (t theme) styles(width int) styles {
	base := lipgloss.NewStyle().Foreground(t.fg).Background(t.bg)
	return styles{
		app:   base.Padding(0, 1),
		title: base.Foreground(t.accent).Bold(true),
		display: base.
			Bold(true).
			Width(width).
			Align(lipgloss.Right).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.accent).
			Padding(0, 1),
		errText: base.Foreground(t.err).Bold(true),
		muted:   base.Foreground(t.muted),
		panel: base.
			Width(width).
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.muted).
			Padding(0, 1),
		modal: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.err).
			Padding(0, 1),
		key:    base.Foreground(t.accent).Bold(true),
		status: base.Foreground(t.muted).Italic(true),
	}
}
