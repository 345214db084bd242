package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/theme"
)

// Starship renders a prompt configuration with a named palette so module
// styles can reference theme roles by name.
func Starship(t *theme.Theme) (string, error) {
	var b strings.Builder

	palette := paletteKey(t.Name)

	fmt.Fprintf(&b, "# Starship theme: %s\n\n", t.Name)
	fmt.Fprintf(&b, "palette = \"%s\"\n\n", palette)

	fmt.Fprintf(&b, "[palettes.%s]\n", palette)
	fmt.Fprintf(&b, "bg = \"%s\"\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "fg = \"%s\"\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "accent = \"%s\"\n", t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "red = \"%s\"\n", t.Colors.Red.Hex())
	fmt.Fprintf(&b, "green = \"%s\"\n", t.Colors.Green.Hex())
	fmt.Fprintf(&b, "yellow = \"%s\"\n", t.Colors.Yellow.Hex())
	fmt.Fprintf(&b, "blue = \"%s\"\n", t.Colors.Blue.Hex())
	fmt.Fprintf(&b, "magenta = \"%s\"\n", t.Colors.Magenta.Hex())
	fmt.Fprintf(&b, "cyan = \"%s\"\n", t.Colors.Cyan.Hex())
	fmt.Fprintf(&b, "orange = \"%s\"\n", orangeOr(t).Hex())
	fmt.Fprintf(&b, "gray = \"%s\"\n\n", grayOr(t).Hex())

	b.WriteString("[character]\n")
	b.WriteString("success_symbol = \"[❯](bold accent)\"\n")
	b.WriteString("error_symbol = \"[❯](bold red)\"\n\n")

	b.WriteString("[directory]\n")
	b.WriteString("style = \"bold blue\"\n\n")

	b.WriteString("[git_branch]\n")
	b.WriteString("style = \"bold magenta\"\n\n")

	b.WriteString("[git_status]\n")
	b.WriteString("style = \"bold yellow\"\n\n")

	b.WriteString("[cmd_duration]\n")
	b.WriteString("style = \"bold gray\"\n\n")

	b.WriteString("[status]\n")
	b.WriteString("style = \"bold red\"\n")
	b.WriteString("disabled = false\n")

	return b.String(), nil
}

// paletteKey turns a theme name into a TOML-safe bare key.
func paletteKey(name string) string {
	key := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	if key == "" {
		key = "theme"
	}
	return key
}
