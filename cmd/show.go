package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <theme>",
	Short: "Show a theme's palette and properties",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	t, err := loadTheme(resolveThemesDir(cfg), args[0])
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(t.Name))
	if t.Description != "" {
		fmt.Println(mutedStyle.Render(t.Description))
	}
	if v := t.EffectiveVariant(); v != "" {
		fmt.Printf("variant: %s\n", v)
	}
	fmt.Println()

	for _, nc := range t.Colors.Defined() {
		fmt.Printf("  %-8s %s %s\n", nc.Name, nc.Color.Hex(), swatch(nc.Color.Hex()))
	}

	props := t.Properties
	if props.BorderRadius != nil || props.BorderWidth != nil || props.ShadowBlur != nil ||
		props.AnimationDuration != nil || props.Spacing != nil {
		fmt.Println()
		fmt.Println(titleStyle.Render("Properties"))
		if props.BorderRadius != nil {
			fmt.Printf("  border_radius      %d\n", *props.BorderRadius)
		}
		if props.BorderWidth != nil {
			fmt.Printf("  border_width       %d\n", *props.BorderWidth)
		}
		if props.ShadowBlur != nil {
			fmt.Printf("  shadow_blur        %d\n", *props.ShadowBlur)
		}
		if props.AnimationDuration != nil {
			fmt.Printf("  animation_duration %g\n", *props.AnimationDuration)
		}
		if props.Spacing != nil {
			fmt.Printf("  spacing            %d\n", *props.Spacing)
		}
	}
	return nil
}
