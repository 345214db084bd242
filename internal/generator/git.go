package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/theme"
)

// Git renders a git color configuration meant for inclusion via
// include.path in ~/.gitconfig. Git takes 24-bit colors as #rrggbb.
func Git(t *theme.Theme) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Git color theme: %s\n", t.Name)
	b.WriteString("# Include from ~/.gitconfig:\n")
	b.WriteString("#   [include]\n")
	fmt.Fprintf(&b, "#       path = ~/.config/git/themes/%s.conf\n\n", t.Name)

	b.WriteString("[color]\n")
	b.WriteString("\tui = auto\n\n")

	b.WriteString("[color \"branch\"]\n")
	fmt.Fprintf(&b, "\tcurrent = \"%s\" bold\n", t.Colors.Green.Hex())
	fmt.Fprintf(&b, "\tlocal = \"%s\"\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "\tremote = \"%s\"\n", t.Colors.Cyan.Hex())
	b.WriteString("\n")

	b.WriteString("[color \"diff\"]\n")
	fmt.Fprintf(&b, "\tmeta = \"%s\"\n", t.Colors.Blue.Hex())
	fmt.Fprintf(&b, "\tfrag = \"%s\"\n", t.Colors.Magenta.Hex())
	fmt.Fprintf(&b, "\told = \"%s\"\n", t.Colors.Red.Hex())
	fmt.Fprintf(&b, "\tnew = \"%s\"\n", t.Colors.Green.Hex())
	fmt.Fprintf(&b, "\twhitespace = \"%s\" reverse\n", t.Colors.Red.Hex())
	b.WriteString("\n")

	b.WriteString("[color \"status\"]\n")
	fmt.Fprintf(&b, "\tadded = \"%s\"\n", t.Colors.Green.Hex())
	fmt.Fprintf(&b, "\tchanged = \"%s\"\n", t.Colors.Yellow.Hex())
	fmt.Fprintf(&b, "\tuntracked = \"%s\"\n", t.Colors.Red.Hex())
	b.WriteString("\n")

	b.WriteString("[color \"interactive\"]\n")
	fmt.Fprintf(&b, "\tprompt = \"%s\" bold\n", t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "\theader = \"%s\"\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "\thelp = \"%s\"\n", grayOr(t).Hex())
	fmt.Fprintf(&b, "\terror = \"%s\" bold\n", t.Colors.Red.Hex())

	return b.String(), nil
}
