package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/theme"
)

// Hyprpaper renders the wallpaper daemon config, pointing at a per-theme
// wallpaper under the themectl config tree.
func Hyprpaper(t *theme.Theme) (string, error) {
	var b strings.Builder

	wallpaper := fmt.Sprintf("~/.config/themectl/wallpapers/%s.png", t.Name)

	fmt.Fprintf(&b, "# Hyprpaper theme: %s\n", t.Name)
	fmt.Fprintf(&b, "# Place a wallpaper at %s or edit the paths below.\n\n", wallpaper)

	fmt.Fprintf(&b, "preload = %s\n", wallpaper)
	fmt.Fprintf(&b, "wallpaper = , %s\n\n", wallpaper)

	b.WriteString("splash = false\n")
	fmt.Fprintf(&b, "splash_color = %s\n", t.Colors.Accent.Hex())
	b.WriteString("ipc = on\n")

	return b.String(), nil
}
