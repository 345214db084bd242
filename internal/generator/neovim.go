package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/theme"
)

// Neovim renders a Lua colorscheme for ~/.config/nvim/colors/<name>.lua.
func Neovim(t *theme.Theme) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "-- Neovim colorscheme: %s\n", t.Name)
	if t.Description != "" {
		fmt.Fprintf(&b, "-- %s\n", t.Description)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "local colors = {\n")
	fmt.Fprintf(&b, "  bg = \"%s\",\n", t.Colors.BG.Hex())
	fmt.Fprintf(&b, "  fg = \"%s\",\n", t.Colors.FG.Hex())
	fmt.Fprintf(&b, "  accent = \"%s\",\n", t.Colors.Accent.Hex())
	fmt.Fprintf(&b, "  red = \"%s\",\n", t.Colors.Red.Hex())
	fmt.Fprintf(&b, "  green = \"%s\",\n", t.Colors.Green.Hex())
	fmt.Fprintf(&b, "  yellow = \"%s\",\n", t.Colors.Yellow.Hex())
	fmt.Fprintf(&b, "  blue = \"%s\",\n", t.Colors.Blue.Hex())
	fmt.Fprintf(&b, "  magenta = \"%s\",\n", t.Colors.Magenta.Hex())
	fmt.Fprintf(&b, "  cyan = \"%s\",\n", t.Colors.Cyan.Hex())
	fmt.Fprintf(&b, "  gray = \"%s\",\n", grayOr(t).Hex())
	fmt.Fprintf(&b, "  dim = \"%s\",\n", t.Colors.FG.Dim(0.6).Hex())
	b.WriteString("}\n\n")

	b.WriteString("vim.cmd(\"highlight clear\")\n")
	b.WriteString("if vim.fn.exists(\"syntax_on\") then\n")
	b.WriteString("  vim.cmd(\"syntax reset\")\n")
	b.WriteString("end\n")
	fmt.Fprintf(&b, "vim.g.colors_name = \"%s\"\n", t.Name)
	bgOpt := "dark"
	if !t.IsDark() {
		bgOpt = "light"
	}
	fmt.Fprintf(&b, "vim.o.background = \"%s\"\n\n", bgOpt)

	b.WriteString("local hl = function(group, opts)\n")
	b.WriteString("  vim.api.nvim_set_hl(0, group, opts)\n")
	b.WriteString("end\n\n")

	b.WriteString("-- Editor\n")
	b.WriteString("hl(\"Normal\", { fg = colors.fg, bg = colors.bg })\n")
	b.WriteString("hl(\"NormalFloat\", { fg = colors.fg, bg = colors.bg })\n")
	b.WriteString("hl(\"Cursor\", { fg = colors.bg, bg = colors.accent })\n")
	b.WriteString("hl(\"CursorLine\", { bg = colors.gray })\n")
	b.WriteString("hl(\"CursorLineNr\", { fg = colors.accent, bold = true })\n")
	b.WriteString("hl(\"LineNr\", { fg = colors.dim })\n")
	b.WriteString("hl(\"Visual\", { fg = colors.bg, bg = colors.accent })\n")
	b.WriteString("hl(\"Search\", { fg = colors.bg, bg = colors.yellow })\n")
	b.WriteString("hl(\"IncSearch\", { fg = colors.bg, bg = colors.accent })\n")
	b.WriteString("hl(\"StatusLine\", { fg = colors.fg, bg = colors.gray })\n")
	b.WriteString("hl(\"StatusLineNC\", { fg = colors.dim, bg = colors.gray })\n")
	b.WriteString("hl(\"VertSplit\", { fg = colors.gray })\n")
	b.WriteString("hl(\"Pmenu\", { fg = colors.fg, bg = colors.gray })\n")
	b.WriteString("hl(\"PmenuSel\", { fg = colors.bg, bg = colors.accent })\n\n")

	b.WriteString("-- Syntax\n")
	b.WriteString("hl(\"Comment\", { fg = colors.dim, italic = true })\n")
	b.WriteString("hl(\"Constant\", { fg = colors.magenta })\n")
	b.WriteString("hl(\"String\", { fg = colors.green })\n")
	b.WriteString("hl(\"Number\", { fg = colors.magenta })\n")
	b.WriteString("hl(\"Identifier\", { fg = colors.blue })\n")
	b.WriteString("hl(\"Function\", { fg = colors.yellow })\n")
	b.WriteString("hl(\"Statement\", { fg = colors.red })\n")
	b.WriteString("hl(\"Keyword\", { fg = colors.red })\n")
	b.WriteString("hl(\"Operator\", { fg = colors.cyan })\n")
	b.WriteString("hl(\"Type\", { fg = colors.yellow })\n")
	b.WriteString("hl(\"PreProc\", { fg = colors.cyan })\n")
	b.WriteString("hl(\"Special\", { fg = colors.accent })\n")
	b.WriteString("hl(\"Todo\", { fg = colors.bg, bg = colors.yellow, bold = true })\n\n")

	b.WriteString("-- Diagnostics\n")
	b.WriteString("hl(\"DiagnosticError\", { fg = colors.red })\n")
	b.WriteString("hl(\"DiagnosticWarn\", { fg = colors.yellow })\n")
	b.WriteString("hl(\"DiagnosticInfo\", { fg = colors.blue })\n")
	b.WriteString("hl(\"DiagnosticHint\", { fg = colors.cyan })\n")
	b.WriteString("hl(\"DiffAdd\", { fg = colors.green })\n")
	b.WriteString("hl(\"DiffChange\", { fg = colors.yellow })\n")
	b.WriteString("hl(\"DiffDelete\", { fg = colors.red })\n")

	return b.String(), nil
}
