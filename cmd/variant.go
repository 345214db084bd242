package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huffs-projects/themectl/internal/theme"
)

var variantCmd = &cobra.Command{
	Use:   "variant <theme> <dark|light>",
	Short: "Derive a dark or light counterpart and save it as a new theme",
	Args:  cobra.ExactArgs(2),
	RunE:  runVariant,
}

func init() {
	rootCmd.AddCommand(variantCmd)
}

func runVariant(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	dir := resolveThemesDir(cfg)

	t, err := loadTheme(dir, args[0])
	if err != nil {
		return err
	}
	derived, err := theme.GenerateVariant(t, args[1])
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Printf("would save %s to %s\n", derived.Name, dir)
		return nil
	}
	path, err := theme.Save(derived, dir)
	if err != nil {
		return err
	}
	fmt.Printf("%s saved %s\n", okMark(), path)
	return nil
}
