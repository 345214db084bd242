package generator

import (
	"fmt"
	"strings"

	"github.com/huffs-projects/themectl/internal/theme"
)

// Nix renders the theme as a Nix attribute set for import into a NixOS or
// Home Manager configuration.
func Nix(t *theme.Theme) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Theme: %s\n", t.Name)
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  name = \"%s\";\n", t.Name)
	if t.Description != "" {
		fmt.Fprintf(&b, "  description = \"%s\";\n", escapeNix(t.Description))
	}
	if v := t.EffectiveVariant(); v != "" {
		fmt.Fprintf(&b, "  variant = \"%s\";\n", v)
	}

	b.WriteString("  colors = {\n")
	for _, nc := range t.Colors.Defined() {
		fmt.Fprintf(&b, "    %s = \"%s\";\n", nc.Name, nc.Color.Hex())
	}
	b.WriteString("  };\n")

	props := []struct {
		key string
		val string
		set bool
	}{
		{"border_radius", fmt.Sprint(uintOr(t.Properties.BorderRadius, 0)), t.Properties.BorderRadius != nil},
		{"border_width", fmt.Sprint(uintOr(t.Properties.BorderWidth, 0)), t.Properties.BorderWidth != nil},
		{"shadow_blur", fmt.Sprint(uintOr(t.Properties.ShadowBlur, 0)), t.Properties.ShadowBlur != nil},
		{"animation_duration", fmt.Sprint(floatOr(t.Properties.AnimationDuration, 0)), t.Properties.AnimationDuration != nil},
		{"spacing", fmt.Sprint(uintOr(t.Properties.Spacing, 0)), t.Properties.Spacing != nil},
	}
	hasProps := false
	for _, p := range props {
		if p.set {
			hasProps = true
		}
	}
	if hasProps {
		b.WriteString("  properties = {\n")
		for _, p := range props {
			if p.set {
				fmt.Fprintf(&b, "    %s = %s;\n", p.key, p.val)
			}
		}
		b.WriteString("  };\n")
	}
	b.WriteString("}\n")

	return b.String(), nil
}

// HomeManagerModule wraps a standard render of app in a Home Manager module
// that installs the file via xdg.configFile. This is the nix deployment
// path: instead of writing into ~/.config directly, the generated module is
// imported into the user's Home Manager configuration.
func HomeManagerModule(r *Registry, t *theme.Theme, app string) (string, error) {
	if app == "nix" {
		return Nix(t)
	}
	content, err := r.Render(t, app)
	if err != nil {
		return "", err
	}
	target, ok := configFileTargets[app]
	if !ok {
		return "", fmt.Errorf("no Home Manager target known for %q", app)
	}
	target = strings.ReplaceAll(target, "{name}", t.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "# Home Manager module for %s, theme %s\n", app, t.Name)
	b.WriteString("{ config, lib, pkgs, ... }:\n\n")
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  xdg.configFile.\"%s\" = {\n", target)
	b.WriteString("    text = ''\n")
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		fmt.Fprintf(&b, "      %s\n", escapeNixIndent(line))
	}
	b.WriteString("    '';\n")
	b.WriteString("  };\n")
	b.WriteString("}\n")
	return b.String(), nil
}

// configFileTargets maps an app to its path under ~/.config for the
// xdg.configFile attribute. {name} expands to the theme name.
var configFileTargets = map[string]string{
	"kitty":     "kitty/kitty.conf",
	"waybar":    "waybar/style.css",
	"neovim":    "nvim/colors/{name}.lua",
	"starship":  "starship.toml",
	"mako":      "mako/config",
	"hyprland":  "hypr/hyprland.conf",
	"hyprpaper": "hypr/hyprpaper.conf",
	"wofi":      "wofi/style.css",
	"wlogout":   "wlogout/style.css",
	"fastfetch": "fastfetch/config.jsonc",
	"yazi":      "yazi/yazi.toml",
	"gtk":       "gtk-4.0/settings.ini",
	"btop":      "btop/themes/{name}.theme",
	"git":       "git/themes/{name}.conf",
}

func escapeNix(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	return strings.ReplaceAll(s, "\"", "\\\"")
}

// escapeNixIndent escapes the two sequences meaningful inside a Nix
// indented string literal.
func escapeNixIndent(s string) string {
	s = strings.ReplaceAll(s, "''", "'''")
	return strings.ReplaceAll(s, "${", "''${")
}
