package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/theme"
)

// Wofi renders the launcher stylesheet. Properties consumed: border_radius
// (default 0) and border_width (default 2).
func Wofi(t *theme.Theme) (string, error) {
	var b strings.Builder

	radius := uintOr(t.Properties.BorderRadius, 0)
	width := uintOr(t.Properties.BorderWidth, 2)

	fmt.Fprintf(&b, "/* Wofi theme: %s */\n\n", t.Name)

	b.WriteString("window {\n")
	fmt.Fprintf(&b, "  background-color: %s;\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "  border: %dpx solid %s;\n", width, t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "  border-radius: %dpx;\n", radius)
	b.WriteString("}\n\n")

	b.WriteString("#input {\n")
	fmt.Fprintf(&b, "  background-color: %s;\n", grayOr(t).Hex())
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "  border: none;\n")
	fmt.Fprintf(&b, "  border-radius: %dpx;\n", radius)
	b.WriteString("}\n\n")

	b.WriteString("#input:focus {\n")
	fmt.Fprintf(&b, "  border: %dpx solid %s;\n", width, t.Colors.Accent.Hex())
	b.WriteString("}\n\n")

	b.WriteString("#entry {\n")
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.FG.Hex())
	b.WriteString("  background-color: transparent;\n")
	b.WriteString("}\n\n")

	b.WriteString("#entry:selected {\n")
	fmt.Fprintf(&b, "  background-color: %s;\n", t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "  border-radius: %dpx;\n", radius)
	b.WriteString("}\n\n")

	b.WriteString("#text:selected {\n")
	fmt.Fprintf(&b, "  color: %s;\n", t.Colors.BG.Hex())
	b.WriteString("}\n")

	return b.String(), nil
}
