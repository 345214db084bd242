package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/theme"
)

// Mako renders the notification daemon config. Properties consumed:
// border_radius (default 0) and border_width (default 2).
func Mako(t *theme.Theme) (string, error) {
	var b strings.Builder

	radius := uintOr(t.Properties.BorderRadius, 0)
	width := uintOr(t.Properties.BorderWidth, 2)

	fmt.Fprintf(&b, "# Mako theme: %s\n\n", t.Name)

	fmt.Fprintf(&b, "background-color=%s\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "text-color=%s\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "border-color=%s\n", t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "progress-color=over %s\n", t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "border-size=%d\n", width)
	fmt.Fprintf(&b, "border-radius=%d\n", radius)
	b.WriteString("\n")

	b.WriteString("[urgency=low]\n")
	fmt.Fprintf(&b, "background-color=%s\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "text-color=%s\n", t.Colors.FG.Dim(0.7).Hex())
	fmt.Fprintf(&b, "border-color=%s\n", grayOr(t).Hex())
	b.WriteString("\n")

	b.WriteString("[urgency=high]\n")
	fmt.Fprintf(&b, "background-color=%s\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "text-color=%s\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "border-color=%s\n", t.Colors.Red.Hex())
	b.WriteString("default-timeout=0\n")

	return b.String(), nil
}
