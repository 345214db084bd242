package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/huffs-projects/themectl/internal/theme"
	"github.com/huffs-projects/themectl/internal/validate"
)

// Color palette
var (
	successColor = lipgloss.Color("#10B981") // Green
	warningColor = lipgloss.Color("#F59E0B") // Orange
	errorColor   = lipgloss.Color("#EF4444") // Red
	accentColor  = lipgloss.Color("#06B6D4") // Cyan
	mutedColor   = lipgloss.Color("#6B7280") // Gray
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	warnStyle    = lipgloss.NewStyle().Foreground(warningColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

func okMark() string   { return successStyle.Render("✓") }
func failMark() string { return errorStyle.Render("✗") }
func warnMark() string { return warnStyle.Render("!") }

// swatch renders a colored block for terminal preview of a palette entry.
func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
}

// validateTheme wraps validate.Theme so commands share one call site.
func validateTheme(doc *theme.Document) (*theme.Theme, []validate.Warning, error) {
	return validate.Theme(doc)
}

// printWarnings writes accessibility findings to stdout, one per line.
func printWarnings(warnings []validate.Warning) {
	for _, w := range warnings {
		mark := warnMark()
		if w.Level == validate.LevelInfo {
			mark = mutedStyle.Render("i")
		}
		fmt.Printf("  %s %s\n", mark, w.Message)
	}
}
