package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/color"
	"github.com/huffs-projects/themectl/internal/theme"
)

// Waybar renders the status bar stylesheet. Properties consumed:
// border_radius (default 0) and spacing (default 8).
func Waybar(t *theme.Theme) (string, error) {
	var b strings.Builder

	radius := uintOr(t.Properties.BorderRadius, 0)
	spacing := uintOr(t.Properties.Spacing, 8)

	fmt.Fprintf(&b, "/* Waybar theme: %s */\n\n", t.Name)

	b.WriteString("* {\n")
	b.WriteString("  border: none;\n")
	fmt.Fprintf(&b, "  border-radius: %dpx;\n", radius)
	b.WriteString("  font-family: monospace;\n")
	b.WriteString("  font-size: 12px;\n")
	b.WriteString("  min-height: 0;\n")
	b.WriteString("}\n\n")

	b.WriteString("window#waybar {\n")
	fmt.Fprintf(&b, "  background-color: %s;\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "  border-bottom: 2px solid %s;\n", t.Colors.Accent.Hex())
	b.WriteString("}\n\n")

	b.WriteString("#workspaces button {\n")
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.FG.Darken(0.3).Hex())
	fmt.Fprintf(&b, "  padding: 0 %dpx;\n", spacing)
	b.WriteString("}\n\n")

	b.WriteString("#workspaces button:hover {\n")
	fmt.Fprintf(&b, "  background-color: rgba(%s);\n", rgba(t.Colors.Accent, 0.2))
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.Accent.Hex())
	b.WriteString("}\n\n")

	b.WriteString("#workspaces button.focused {\n")
	fmt.Fprintf(&b, "  background-color: %s;\n", t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.BG.Hex())
	b.WriteString("}\n\n")

	b.WriteString("#workspaces button.urgent {\n")
	fmt.Fprintf(&b, "  background-color: %s;\n", t.Colors.Red.Hex())
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.BG.Hex())
	b.WriteString("}\n\n")

	b.WriteString("#clock {\n")
	fmt.Fprintf(&b, "  background-color: %s;\n", t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "  padding: 0 %dpx;\n", spacing+4)
	b.WriteString("}\n\n")

	b.WriteString("#custom-music {\n")
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "  padding: 0 %dpx;\n", spacing)
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "#custom-music.disconnected { color: %s; }\n", t.Colors.Red.Hex())
	fmt.Fprintf(&b, "#custom-music.stopped { color: %s; }\n", t.Colors.Yellow.Hex())
	fmt.Fprintf(&b, "#custom-music.playing { color: %s; }\n", t.Colors.Green.Hex())
	fmt.Fprintf(&b, "#custom-music.paused { color: %s; }\n\n", t.Colors.Cyan.Hex())

	b.WriteString("#pulseaudio, #network, #battery {\n")
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "  padding: 0 %dpx;\n", spacing)
	fmt.Fprintf(&b, "  border-left: 2px solid rgba(%s);\n", rgba(t.Colors.Accent, 0.2))
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "#pulseaudio { color: %s; }\n", t.Colors.Blue.Hex())
	fmt.Fprintf(&b, "#pulseaudio.muted { color: %s; }\n\n", t.Colors.Red.Hex())

	fmt.Fprintf(&b, "#network { color: %s; }\n", t.Colors.Cyan.Hex())
	fmt.Fprintf(&b, "#network.disconnected { color: %s; }\n\n", t.Colors.Red.Hex())

	fmt.Fprintf(&b, "#battery { color: %s; }\n", t.Colors.Green.Hex())
	fmt.Fprintf(&b, "#battery.warning { color: %s; }\n", t.Colors.Yellow.Hex())
	fmt.Fprintf(&b, "#battery.critical { color: %s; }\n\n", t.Colors.Red.Hex())

	b.WriteString("tooltip {\n")
	fmt.Fprintf(&b, "  background-color: %s;\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "  border: 1px solid %s;\n", t.Colors.Accent.Hex())
	b.WriteString("}\n")

	return b.String(), nil
}

// rgba formats the inside of a CSS rgba() call.
func rgba(c color.Color, alpha float64) string {
	return fmt.Sprintf("%d, %d, %d, %g", c.R, c.G, c.B, alpha)
}
