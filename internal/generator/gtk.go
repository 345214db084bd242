package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/theme"
)

// GTK renders the GTK4 settings.ini, selecting the Adwaita variant that
// matches the theme's dark/light classification.
func GTK(t *theme.Theme) (string, error) {
	var b strings.Builder

	dark := t.IsDark()

	fmt.Fprintf(&b, "# GTK theme configuration: %s\n", t.Name)
	b.WriteString("# Place this file at: ~/.config/gtk-4.0/settings.ini\n\n")

	b.WriteString("[Settings]\n")
	fmt.Fprintf(&b, "gtk-application-prefer-dark-theme=%t\n", dark)
	themeName := "Adwaita"
	if dark {
		themeName += "-dark"
	}
	fmt.Fprintf(&b, "gtk-theme-name=%s\n", themeName)
	b.WriteString("gtk-icon-theme-name=Adwaita\n")
	b.WriteString("gtk-cursor-theme-name=Adwaita\n")
	b.WriteString("gtk-cursor-theme-size=24\n")

	fmt.Fprintf(&b, "\n# Theme: %s", t.Name)
	if t.Description != "" {
		desc := t.Description
		if len(desc) > 60 {
			desc = desc[:60]
		}
		fmt.Fprintf(&b, " - %s", desc)
	}
	b.WriteString("\n")

	return b.String(), nil
}
