package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/theme"
)

// Btop renders a btop theme file (theme[key]="value" lines) for
// ~/.config/btop/themes/<name>.theme.
func Btop(t *theme.Theme) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Btop theme: %s\n\n", t.Name)

	entry := func(key string, value string) {
		fmt.Fprintf(&b, "theme[%s]=\"%s\"\n", key, value)
	}

	entry("main_bg", t.Colors.BG.Hex())
	entry("main_fg", t.Colors.FG.Hex())
	entry("title", t.Colors.FG.Hex())
	entry("hi_fg", t.Colors.Accent.Hex())
	entry("selected_bg", t.Colors.Accent.Hex())
	entry("selected_fg", t.Colors.BG.Hex())
	entry("inactive_fg", grayOr(t).Hex())
	entry("graph_text", t.Colors.FG.Dim(0.8).Hex())
	entry("proc_misc", t.Colors.Cyan.Hex())
	entry("cpu_box", grayOr(t).Hex())
	entry("mem_box", grayOr(t).Hex())
	entry("net_box", grayOr(t).Hex())
	entry("proc_box", grayOr(t).Hex())
	entry("div_line", grayOr(t).Hex())
	entry("temp_start", t.Colors.Green.Hex())
	entry("temp_mid", t.Colors.Yellow.Hex())
	entry("temp_end", t.Colors.Red.Hex())
	entry("cpu_start", t.Colors.Green.Hex())
	entry("cpu_mid", t.Colors.Yellow.Hex())
	entry("cpu_end", t.Colors.Red.Hex())
	entry("free_start", t.Colors.Green.Hex())
	entry("free_mid", t.Colors.Green.Lighten(0.2).Hex())
	entry("free_end", t.Colors.Green.Lighten(0.4).Hex())
	entry("cached_start", t.Colors.Blue.Hex())
	entry("cached_mid", t.Colors.Blue.Lighten(0.2).Hex())
	entry("cached_end", t.Colors.Blue.Lighten(0.4).Hex())
	entry("available_start", t.Colors.Yellow.Hex())
	entry("available_mid", t.Colors.Yellow.Lighten(0.2).Hex())
	entry("available_end", t.Colors.Yellow.Lighten(0.4).Hex())
	entry("used_start", t.Colors.Red.Hex())
	entry("used_mid", t.Colors.Red.Lighten(0.2).Hex())
	entry("used_end", t.Colors.Red.Lighten(0.4).Hex())
	entry("download_start", t.Colors.Cyan.Hex())
	entry("download_mid", t.Colors.Cyan.Lighten(0.2).Hex())
	entry("download_end", t.Colors.Cyan.Lighten(0.4).Hex())
	entry("upload_start", t.Colors.Magenta.Hex())
	entry("upload_mid", t.Colors.Magenta.Lighten(0.2).Hex())
	entry("upload_end", t.Colors.Magenta.Lighten(0.4).Hex())

	return b.String(), nil
}
