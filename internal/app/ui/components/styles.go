package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// TitleStyle for the subject title
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	// HeaderStyle wraps the header line
	HeaderStyle = lipgloss.NewStyle().
			Padding(1, 0, 0, 0)

	// SeparatorStyle for horizontal lines
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SeparatorColor)

	// FooterStyle wraps the footer block
	FooterStyle = lipgloss.NewStyle()

	// FooterHelpStyle positions help text under the footer line
	FooterHelpStyle = lipgloss.NewStyle().
			PaddingTop(0)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder).
			Padding(0, 2)

	// ContentStyle for the page area
	ContentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	// TabStyle for unselected tabs
	TabStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			Padding(0, 2)

	// ActiveTabStyle for the selected tab
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary).
			Background(BgSelection).
			Padding(0, 2)

	// FavoriteStyle for the watchlist glyph
	FavoriteStyle = lipgloss.NewStyle().
			Foreground(FgFavorite)

	// MutedStyle for secondary text
	MutedStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// PanelStyle for modal borders
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgPrimary).
			Padding(0, 1)

	// SelectedRowStyle for the focused row of a list
	SelectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(FgPrimary).
				Background(BgSelection)

	// ToastStyle for confirmations
	ToastStyle = lipgloss.NewStyle().
			Foreground(FgPositive)

	// ToastErrorStyle for collaborator failures
	ToastErrorStyle = lipgloss.NewStyle().
			Foreground(FgError)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(FgError)

	// EmptyStateStyle for empty state messages
	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			MarginTop(1)

	// SpinnerStyle for loading spinners
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(FgPrimary)
)
