package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huffs-projects/themectl/internal/deploy"
	"github.com/huffs-projects/themectl/internal/theme"
	"github.com/huffs-projects/themectl/internal/validate"
)

var listApps bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listApps, "apps", false, "list target applications instead of themes")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listApps {
		for _, app := range deploy.Apps {
			fmt.Println(app)
		}
		return nil
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	dir := resolveThemesDir(cfg)

	files, err := theme.FindThemeFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Printf("no themes found in %s (run 'themectl init' to get started)\n", dir)
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Themes in %s:", dir)))
	for _, f := range files {
		stem := strings.TrimSuffix(filepath.Base(f), ".toml")
		doc, err := theme.LoadDocument(f)
		if err != nil {
			fmt.Printf("  %s %-24s %v\n", failMark(), stem, err)
			continue
		}
		t, err := validate.Structural(doc)
		if err != nil {
			fmt.Printf("  %s %-24s invalid theme\n", failMark(), stem)
			continue
		}
		desc := t.Description
		if v := t.EffectiveVariant(); v != "" {
			desc = strings.TrimSpace(fmt.Sprintf("[%s] %s", v, desc))
		}
		fmt.Printf("  %s %-24s %s\n", okMark(), stem, mutedStyle.Render(desc))
	}
	return nil
}
