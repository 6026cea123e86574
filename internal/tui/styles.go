package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Primary   = lipgloss.Color("#0D47A1") // Navy
	Accent    = lipgloss.Color("#ADD8E6") // Light blue
	Success   = lipgloss.Color("#2E7D32") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Selected  = lipgloss.Color("#1E3A5F") // Dark blue
	Highlight = lipgloss.Color("#F9FAFB") // Light
)

// Styles
var (
	AppStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(Muted)

	FilterStyle = lipgloss.NewStyle().
			Foreground(Accent)

	ActiveFlagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Success)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Muted).
			Underline(true)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(Selected).
				Foreground(Highlight)

	IDStyle = lipgloss.NewStyle().
		Foreground(Muted)

	CursorStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(Success)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			Padding(1, 2)
)

// Checkboxes
var (
	BoxChecked   = lipgloss.NewStyle().Foreground(Success).Render("[✓]")
	BoxUnchecked = lipgloss.NewStyle().Foreground(Muted).Render("[ ]")
	BoxLocked    = lipgloss.NewStyle().Foreground(Muted).Render("[✓]")
)
