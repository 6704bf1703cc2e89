package app

import "github.com/charmbracelet/lipgloss"

// Color palette — calm, readable on dark terminals.
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorBot     = lipgloss.Color("#14B8A6") // Teal
	colorUser    = lipgloss.Color("#F97316") // Orange
	colorDim     = lipgloss.Color("#94A3B8") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	ruleStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	botLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBot)

	userLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorUser)
)
