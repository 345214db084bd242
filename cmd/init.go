package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/huffs-projects/themectl/internal/config"
)

// defaultTheme is the starter theme written by init so new installs have
// something to apply immediately.
const defaultTheme = `name = "gruvbox-dark"
description = "Retro groove color scheme"
variant = "dark"

[colors]
bg = "#282828"
fg = "#ebdbb2"
accent = "#d79921"
red = "#cc241d"
green = "#98971a"
yellow = "#d79921"
blue = "#458588"
magenta = "#b16286"
cyan = "#689d6a"
orange = "#d65d0e"
gray = "#928374"

[properties]
border_radius = 4
border_width = 2
spacing = 8
animation_duration = 0.3
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up the themectl directories and a starter theme",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	dir := resolveThemesDir(cfg)

	if dryRun {
		fmt.Printf("would create %s with a starter theme\n", dir)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create theme directory %s: %w", dir, err)
	}
	fmt.Printf("%s theme directory %s\n", okMark(), dir)

	starter := filepath.Join(dir, "gruvbox-dark.toml")
	if _, err := os.Stat(starter); os.IsNotExist(err) {
		if err := os.WriteFile(starter, []byte(defaultTheme), 0644); err != nil {
			return fmt.Errorf("failed to write starter theme: %w", err)
		}
		fmt.Printf("%s starter theme %s\n", okMark(), starter)
	} else {
		fmt.Printf("%s starter theme already present\n", mutedStyle.Render("-"))
	}

	if cfg.ConfigFile == "" {
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("%s settings file %s\n", okMark(), config.DefaultPath())
	}

	fmt.Println()
	fmt.Println("try: themectl apply gruvbox-dark --dry-run")
	return nil
}
