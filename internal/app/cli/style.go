package cli

import (
	"github.com/charmbracelet/lipgloss"

	"coinscope/internal/app/ui/components"
	"coinscope/internal/config"
)

// Headline - High-emphasis text for section headers
var (
	headlineLarge = lipgloss.NewStyle().Bold(true).Foreground(components.FgPrimary).MarginTop(1)
)

// Body - Main content text
var (
	bodyLarge  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	bodyMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
)

// Label - Small text for labels, captions, and supplementary content
var (
	labelLarge  = lipgloss.NewStyle().Foreground(components.FgMuted).Italic(true).MarginTop(1)
	labelMedium = lipgloss.NewStyle().Foreground(components.FgMuted)
)

// Semantic styles - mapped to the typography scale above
var (
	sectionHeader = headlineLarge.MarginBottom(1)
	footnote      = labelLarge

	commandName = lipgloss.NewStyle().Bold(true).Foreground(components.FgPositive)
	exampleCode = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))
	errorLabel  = lipgloss.NewStyle().Bold(true).Foreground(components.FgError)
	favorite    = lipgloss.NewStyle().Foreground(components.FgFavorite)

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(components.FgPrimary)
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyLarge.Render(appDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}
