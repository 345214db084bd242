package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/huffs-projects/themectl/internal/generator"
	"github.com/huffs-projects/themectl/internal/theme"
)

var (
	exportOutput string
	exportAll    bool
)

var exportCmd = &cobra.Command{
	Use:   "export <theme> [format]",
	Short: "Render a theme to stdout or to files without installing it",
	Long: `Renders a theme in one format and prints it, or with --all renders
every format into an output directory. Nothing is installed and no
backups are made; this is the inspection path.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to this file (or directory with --all)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "render every format")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	t, err := loadTheme(resolveThemesDir(cfg), args[0])
	if err != nil {
		return err
	}
	reg := generator.Default()

	if exportAll {
		return exportAllFormats(reg, t)
	}

	if len(args) < 2 {
		return fmt.Errorf("a format is required unless --all is given (one of: %v)", reg.Names())
	}
	content, err := reg.Render(t, args[1])
	if err != nil {
		return err
	}
	if exportOutput == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(exportOutput), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(exportOutput, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	fmt.Printf("%s wrote %s\n", okMark(), exportOutput)
	return nil
}

func exportAllFormats(reg *generator.Registry, t *theme.Theme) error {
	dir := exportOutput
	if dir == "" {
		dir = t.Name + "-export"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	failed := 0
	for _, res := range reg.RenderAll(t) {
		if res.Err != nil {
			failed++
			fmt.Printf("  %s %-10s %v\n", failMark(), res.Name, res.Err)
			continue
		}
		path := filepath.Join(dir, res.Name+exportExt(res.Name))
		if err := os.WriteFile(path, []byte(res.Content), 0644); err != nil {
			failed++
			fmt.Printf("  %s %-10s %v\n", failMark(), res.Name, err)
			continue
		}
		fmt.Printf("  %s %-10s %s\n", okMark(), res.Name, path)
	}
	if failed > 0 {
		return fmt.Errorf("%d format(s) failed", failed)
	}
	return nil
}

// exportExt picks a file extension per format for --all output.
func exportExt(format string) string {
	switch format {
	case "waybar", "wofi", "wlogout":
		return ".css"
	case "neovim":
		return ".lua"
	case "starship", "yazi":
		return ".toml"
	case "fastfetch":
		return ".jsonc"
	case "nix":
		return ".nix"
	case "gtk":
		return ".ini"
	case "btop":
		return ".theme"
	default:
		return ".conf"
	}
}
