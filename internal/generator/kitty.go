package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/theme"
)

// Kitty renders a kitty terminal color configuration. The accent color
// drives the cursor, selection, and active window border.
func Kitty(t *theme.Theme) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Kitty theme: %s\n\n", t.Name)

	b.WriteString("# Background\n")
	fmt.Fprintf(&b, "background %s\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "foreground %s\n\n", t.Colors.FG.Hex())

	b.WriteString("# Color palette\n")
	for i, c := range ansiPalette(t) {
		fmt.Fprintf(&b, "color%d %s\n", i, c.Hex())
	}
	b.WriteString("\n")

	b.WriteString("# Cursor\n")
	fmt.Fprintf(&b, "cursor %s\n", t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "cursor_text_color %s\n\n", t.Colors.BG.Hex())

	b.WriteString("# Selection\n")
	fmt.Fprintf(&b, "selection_background %s\n", t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "selection_foreground %s\n\n", t.Colors.BG.Hex())

	b.WriteString("# Window borders\n")
	fmt.Fprintf(&b, "active_border_color %s\n", t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "inactive_border_color %s\n\n", t.Colors.BG.Hex())

	b.WriteString("# Tab bar\n")
	fmt.Fprintf(&b, "tab_bar_background %s\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "tab_bar_margin_color %s\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "active_tab_background %s\n", t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "active_tab_foreground %s\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "inactive_tab_background %s\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "inactive_tab_foreground %s\n\n", t.Colors.FG.Hex())

	b.WriteString("# Bell and URL\n")
	fmt.Fprintf(&b, "bell_border_color %s\n", t.Colors.Yellow.Hex())
	fmt.Fprintf(&b, "url_color %s\n", t.Colors.Cyan.Hex())

	return b.String(), nil
}
