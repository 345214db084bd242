package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/theme"
)

// Wlogout renders the logout menu stylesheet. Properties consumed:
// border_radius (default 0).
func Wlogout(t *theme.Theme) (string, error) {
	var b strings.Builder

	radius := uintOr(t.Properties.BorderRadius, 0)

	fmt.Fprintf(&b, "/* Wlogout theme: %s */\n\n", t.Name)

	b.WriteString("window {\n")
	fmt.Fprintf(&b, "  background-color: rgba(%s);\n", rgba(t.Colors.BG, 0.9))
	b.WriteString("}\n\n")

	b.WriteString("button {\n")
	fmt.Fprintf(&b, "  background-color: %s;\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "  border: 2px solid %s;\n", grayOr(t).Hex())
	fmt.Fprintf(&b, "  border-radius: %dpx;\n", radius)
	b.WriteString("  margin: 8px;\n")
	b.WriteString("  background-repeat: no-repeat;\n")
	b.WriteString("  background-position: center;\n")
	b.WriteString("  background-size: 25%;\n")
	b.WriteString("}\n\n")

	b.WriteString("button:hover, button:focus {\n")
	fmt.Fprintf(&b, "  background-color: %s;\n", t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "  border-color: %s;\n", t.Colors.Accent.Hex())
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "#shutdown:hover { background-color: %s; border-color: %s; }\n",
		t.Colors.Red.Hex(), t.Colors.Red.Hex())
	fmt.Fprintf(&b, "#reboot:hover { background-color: %s; border-color: %s; }\n",
		t.Colors.Yellow.Hex(), t.Colors.Yellow.Hex())
	fmt.Fprintf(&b, "#logout:hover { background-color: %s; border-color: %s; }\n",
		t.Colors.Blue.Hex(), t.Colors.Blue.Hex())
	fmt.Fprintf(&b, "#lock:hover { background-color: %s; border-color: %s; }\n",
		t.Colors.Green.Hex(), t.Colors.Green.Hex())

	return b.String(), nil
}
