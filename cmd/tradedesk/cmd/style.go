package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rustyeddy/tradedesk/pair"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	bullishStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	bearishStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	highlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	todayStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)
)

func renderBias(b pair.Bias) string {
	switch b {
	case pair.Bullish:
		return bullishStyle.Render(string(b))
	case pair.Bearish:
		return bearishStyle.Render(string(b))
	}
	return string(b)
}

func renderStatus(status string) string {
	switch status {
	case pair.StatusValid:
		return validStyle.Render(status)
	case pair.StatusDeactivated:
		return errorStyle.Render(status)
	}
	return warningStyle.Render(status)
}

// pad right-pads a rendered string to n visible cells.
func pad(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
