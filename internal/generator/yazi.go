package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/theme"
)

// Yazi renders the file manager theme TOML.
func Yazi(t *theme.Theme) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Yazi theme: %s\n\n", t.Name)

	b.WriteString("[manager]\n")
	fmt.Fprintf(&b, "cwd = { fg = \"%s\" }\n", t.Colors.Cyan.Hex())
	fmt.Fprintf(&b, "hovered = { fg = \"%s\", bg = \"%s\" }\n", t.Colors.BG.Hex(), t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "preview_hovered = { underline = true }\n")
	fmt.Fprintf(&b, "find_keyword = { fg = \"%s\", italic = true }\n", t.Colors.Yellow.Hex())
	fmt.Fprintf(&b, "find_position = { fg = \"%s\", bg = \"reset\", italic = true }\n", pinkOr(t).Hex())
	fmt.Fprintf(&b, "marker_selected = { fg = \"%s\", bg = \"%s\" }\n", t.Colors.Green.Hex(), t.Colors.Green.Hex())
	fmt.Fprintf(&b, "marker_copied = { fg = \"%s\", bg = \"%s\" }\n", t.Colors.Yellow.Hex(), t.Colors.Yellow.Hex())
	fmt.Fprintf(&b, "marker_cut = { fg = \"%s\", bg = \"%s\" }\n", t.Colors.Red.Hex(), t.Colors.Red.Hex())
	fmt.Fprintf(&b, "border_style = { fg = \"%s\" }\n\n", grayOr(t).Hex())

	b.WriteString("[status]\n")
	fmt.Fprintf(&b, "separator_style = { fg = \"%s\", bg = \"%s\" }\n", grayOr(t).Hex(), grayOr(t).Hex())
	fmt.Fprintf(&b, "mode_normal = { fg = \"%s\", bg = \"%s\", bold = true }\n", t.Colors.BG.Hex(), t.Colors.Blue.Hex())
	fmt.Fprintf(&b, "mode_select = { fg = \"%s\", bg = \"%s\", bold = true }\n", t.Colors.BG.Hex(), t.Colors.Green.Hex())
	fmt.Fprintf(&b, "mode_unset = { fg = \"%s\", bg = \"%s\", bold = true }\n", t.Colors.BG.Hex(), pinkOr(t).Hex())
	fmt.Fprintf(&b, "progress_label = { fg = \"%s\", bold = true }\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "progress_normal = { fg = \"%s\", bg = \"%s\" }\n", t.Colors.Blue.Hex(), blackOr(t).Hex())
	fmt.Fprintf(&b, "progress_error = { fg = \"%s\", bg = \"%s\" }\n\n", t.Colors.Red.Hex(), blackOr(t).Hex())

	b.WriteString("[filetype]\n")
	b.WriteString("rules = [\n")
	fmt.Fprintf(&b, "  { mime = \"image/*\", fg = \"%s\" },\n", t.Colors.Yellow.Hex())
	fmt.Fprintf(&b, "  { mime = \"video/*\", fg = \"%s\" },\n", t.Colors.Magenta.Hex())
	fmt.Fprintf(&b, "  { mime = \"audio/*\", fg = \"%s\" },\n", t.Colors.Cyan.Hex())
	fmt.Fprintf(&b, "  { mime = \"application/zip\", fg = \"%s\" },\n", t.Colors.Red.Hex())
	fmt.Fprintf(&b, "  { name = \"*/\", fg = \"%s\" },\n", t.Colors.Blue.Hex())
	fmt.Fprintf(&b, "  { name = \"*\", fg = \"%s\" },\n", t.Colors.FG.Hex())
	b.WriteString("]\n")

	return b.String(), nil
}
