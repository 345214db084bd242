package theme

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir returns the standard theme directory, honoring XDG_CONFIG_HOME.
func DefaultDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".", "themes")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "themectl", "themes")
}

// FindThemeFiles walks dir and returns every .toml file, sorted by path. A
// missing directory yields an empty list, not an error.
func FindThemeFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".toml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan theme directory %s: %w", dir, err)
	}
	return files, nil
}

// FindThemeFile resolves a theme name to its file within dir. Tries the flat
// <name>.toml first, then falls back to a recursive search by file stem.
func FindThemeFile(dir, name string) (string, error) {
	direct := filepath.Join(dir, name+".toml")
	if _, err := os.Stat(direct); err == nil {
		return direct, nil
	}
	files, err := FindThemeFiles(dir)
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if strings.TrimSuffix(filepath.Base(f), ".toml") == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("theme %q not found in %s", name, dir)
}

// Save writes a theme to <dir>/<name>.toml, creating the directory if
// needed.
func Save(t *Theme, dir string) (string, error) {
	content, err := Encode(t)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create theme directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, t.Name+".toml")
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write theme file %s: %w", path, err)
	}
	return path, nil
}
