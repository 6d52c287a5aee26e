package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#C2410C")
	secondaryColor = lipgloss.Color("#6B7280")
	successColor   = lipgloss.Color("#10B981")

	// Status bar
	statusBarStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	// Result rows
	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	hintStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true).
			PaddingLeft(2)

	// Input area
	inputPromptStyle = lipgloss.NewStyle().
				Foreground(primaryColor)
)
