// Package render pretty-prints a batch.Matrix as a bordered terminal
// table, styled with lipgloss.
package render

import "github.com/charmbracelet/lipgloss"

// theme holds the handful of styles the result table needs.
type theme struct {
	Header    lipgloss.Style
	RowLabel  lipgloss.Style
	CellRed   lipgloss.Style
	CellBlack lipgloss.Style
	Border    lipgloss.Style
	Mismatch  lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3498DB")).
			Bold(true).
			Width(5).
			Align(lipgloss.Center),
		RowLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2C3E50")).
			Bold(true).
			Width(7),
		CellRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E74C3C")).
			Width(5).
			Align(lipgloss.Center),
		CellBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2C3E50")).
			Width(5).
			Align(lipgloss.Center),
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7F8C8D")),
		Mismatch: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#E74C3C")).
			Bold(true).
			Width(5).
			Align(lipgloss.Center),
	}
}
