package deploy

import (
	"fmt"
	"os"
	"path/filepath"
)

// Apps lists every deployable target in canonical order. The nix format is
// absent: it has no standalone destination and is exported on request or
// emitted per-app as Home Manager modules.
var Apps = []string{
	"kitty", "waybar", "neovim", "starship", "mako",
	"hyprland", "hyprpaper", "wofi", "wlogout", "fastfetch",
	"yazi", "gtk", "btop", "git",
}

// DefaultBaseDir returns the config root, honoring XDG_CONFIG_HOME.
func DefaultBaseDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DestinationPath returns the canonical install location of an app's config
// under baseDir. themeName feeds per-theme file names (neovim colorscheme,
// btop theme, git include).
func DestinationPath(app, themeName, baseDir string) (string, error) {
	switch app {
	case "kitty":
		return filepath.Join(baseDir, "kitty", "kitty.conf"), nil
	case "waybar":
		return filepath.Join(baseDir, "waybar", "style.css"), nil
	case "neovim":
		return filepath.Join(baseDir, "nvim", "colors", themeName+".lua"), nil
	case "starship":
		return filepath.Join(baseDir, "starship.toml"), nil
	case "mako":
		return filepath.Join(baseDir, "mako", "config"), nil
	case "hyprland":
		return filepath.Join(baseDir, "hypr", "hyprland.conf"), nil
	case "hyprpaper":
		return filepath.Join(baseDir, "hypr", "hyprpaper.conf"), nil
	case "wofi":
		return filepath.Join(baseDir, "wofi", "style.css"), nil
	case "wlogout":
		return filepath.Join(baseDir, "wlogout", "style.css"), nil
	case "fastfetch":
		return filepath.Join(baseDir, "fastfetch", "config.jsonc"), nil
	case "yazi":
		return filepath.Join(baseDir, "yazi", "yazi.toml"), nil
	case "gtk":
		return filepath.Join(baseDir, "gtk-4.0", "settings.ini"), nil
	case "btop":
		return filepath.Join(baseDir, "btop", "themes", themeName+".theme"), nil
	case "git":
		return filepath.Join(baseDir, "git", "themes", themeName+".conf"), nil
	}
	return "", fmt.Errorf("no destination known for app %q", app)
}

// NixModulePath returns where the Home Manager module for an app is written
// under the configured nix output directory.
func NixModulePath(nixDir, app string) string {
	return filepath.Join(nixDir, app+".nix")
}

// DefaultNixDir is the fallback Home Manager module directory.
func DefaultNixDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "nixpkgs", "modules", "themectl")
	}
	return filepath.Join(home, ".config", "nixpkgs", "modules", "themectl")
}
