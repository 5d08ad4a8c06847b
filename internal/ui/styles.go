package ui

import "github.com/charmbracelet/lipgloss"

var (
	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)
	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 2)

	bannerErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9")).
				Bold(true)
	bannerInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(16)
	labelFocusedStyle = labelStyle.
				Foreground(lipgloss.Color("15")).
				Bold(true)

	selectedMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cursorMarkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	hintStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
