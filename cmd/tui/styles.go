package main

import (
	"github.com/charmbracelet/lipgloss"

	"pomofade/internal/core/palette"
)

var (
	colorInk   = lipgloss.Color("#333333")
	colorMuted = lipgloss.Color("#666666")
	colorError = lipgloss.Color("#c0392b")

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorInk)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(colorMuted)

	activeTabStyle = tabStyle.
			Bold(true).
			Underline(true).
			Foreground(colorInk)

	statusStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)

	promptStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorInk)
)

// background converts an engine color into a lipgloss color.
func background(color palette.RGB) lipgloss.Color {
	return lipgloss.Color(color.Hex())
}
