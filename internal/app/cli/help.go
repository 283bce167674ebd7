package cli

import "github.com/charmbracelet/lipgloss"

const appDescription = "Terminal coin detail screen with watchlist and price alerts"

// renderHelp renders usage and examples
func renderHelp() string {
	usageSection := sectionHeader.Render("Usage:")
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("coinscope view <coin> [--tab <tab>]")+"  Open the detail screen"),
		bodyMedium.Render("  "+commandName.Render("coinscope show <coin>")+"                Print watchlist and alert state"),
		bodyMedium.Render("  "+commandName.Render("coinscope list")+"                       List the catalog"),
		bodyMedium.Render("  "+commandName.Render("coinscope version")+"                    Show version"),
	)

	examplesSection := sectionHeader.Render("Examples:")
	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+exampleCode.Render("coinscope view bitcoin")+"               Open Bitcoin on the overview"),
		bodyMedium.Render("  "+exampleCode.Render("coinscope view ethereum -t markets")+"   Open Ethereum on its markets"),
		bodyMedium.Render("  "+exampleCode.Render("coinscope show dogecoin")+"              Check Dogecoin without the UI"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		usageSection,
		usage,
		examplesSection,
		examples,
		footnote.Render("Keys: ←/→ tabs • f watchlist • n alerts • esc back • q quit"),
	) + "\n"
}
