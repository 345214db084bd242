package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/color"
	"github.com/huffs-projects/themectl/internal/theme"
)

// Hyprland renders a color block appended to hyprland.conf. Hyprland takes
// colors as rgb(rrggbb) without the leading hash. Properties consumed:
// border_radius (default 0), border_width (default 2), shadow_blur
// (default 0), animation_duration in seconds (default 0.3).
func Hyprland(t *theme.Theme) (string, error) {
	var b strings.Builder

	radius := uintOr(t.Properties.BorderRadius, 0)
	width := uintOr(t.Properties.BorderWidth, 2)
	blur := uintOr(t.Properties.ShadowBlur, 0)
	// Hyprland animation speed is in deciseconds.
	speed := int(floatOr(t.Properties.AnimationDuration, 0.3) * 10)

	fmt.Fprintf(&b, "# Hyprland theme: %s\n\n", t.Name)

	fmt.Fprintf(&b, "$accent = %s\n", hyprColor(t.Colors.Accent))
	fmt.Fprintf(&b, "$bg = %s\n", hyprColor(t.Colors.BG))
	fmt.Fprintf(&b, "$fg = %s\n", hyprColor(t.Colors.FG))
	fmt.Fprintf(&b, "$inactive = %s\n\n", hyprColor(grayOr(t)))

	b.WriteString("general {\n")
	fmt.Fprintf(&b, "    col.active_border = $accent\n")
	fmt.Fprintf(&b, "    col.inactive_border = $inactive\n")
	fmt.Fprintf(&b, "    border_size = %d\n", width)
	b.WriteString("}\n\n")

	b.WriteString("decoration {\n")
	fmt.Fprintf(&b, "    rounding = %d\n", radius)
	b.WriteString("    shadow {\n")
	fmt.Fprintf(&b, "        enabled = %t\n", blur > 0)
	fmt.Fprintf(&b, "        range = %d\n", blur)
	fmt.Fprintf(&b, "        color = %s\n", hyprColor(blackOr(t)))
	b.WriteString("    }\n")
	b.WriteString("}\n\n")

	b.WriteString("animations {\n")
	b.WriteString("    enabled = true\n")
	fmt.Fprintf(&b, "    animation = windows, 1, %d, default\n", speed)
	fmt.Fprintf(&b, "    animation = workspaces, 1, %d, default\n", speed)
	b.WriteString("}\n\n")

	b.WriteString("group {\n")
	fmt.Fprintf(&b, "    col.border_active = %s\n", hyprColor(t.Colors.Green))
	fmt.Fprintf(&b, "    col.border_inactive = $inactive\n")
	b.WriteString("}\n\n")

	b.WriteString("misc {\n")
	fmt.Fprintf(&b, "    background_color = $bg\n")
	b.WriteString("}\n")

	return b.String(), nil
}

func hyprColor(c color.Color) string {
	return fmt.Sprintf("rgb(%02x%02x%02x)", c.R, c.G, c.B)
}
