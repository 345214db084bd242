package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/huffs-projects/themectl/internal/generator"
	"github.com/huffs-projects/themectl/internal/theme"
)

var (
	previewVariant string
	previewFormat  string
)

var previewCmd = &cobra.Command{
	Use:   "preview <theme>",
	Short: "Preview a theme's palette in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewVariant, "variant", "", "preview a derived dark or light variant")
	previewCmd.Flags().StringVar(&previewFormat, "format", "", "also print the rendered output for one format")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	t, err := loadTheme(resolveThemesDir(cfg), args[0])
	if err != nil {
		return err
	}
	if previewVariant != "" {
		t, err = theme.GenerateVariant(t, previewVariant)
		if err != nil {
			return err
		}
	}

	bg := lipgloss.Color(t.Colors.BG.Hex())
	fg := lipgloss.Color(t.Colors.FG.Hex())
	accent := lipgloss.Color(t.Colors.Accent.Hex())

	header := lipgloss.NewStyle().Bold(true).Foreground(accent).Background(bg).Padding(0, 2)
	body := lipgloss.NewStyle().Foreground(fg).Background(bg).Padding(0, 2)

	fmt.Println(header.Render(" " + t.Name + " "))
	fmt.Println(body.Render("The quick brown fox jumps over the lazy dog"))
	fmt.Println()

	var names, blocks []string
	for _, nc := range t.Colors.Defined() {
		names = append(names, fmt.Sprintf("%-10s", nc.Name))
		blocks = append(blocks, swatch(nc.Color.Hex())+"    ")
	}
	// Two rows of swatches keep the preview inside a normal terminal width.
	half := (len(blocks) + 1) / 2
	for _, row := range [][2][]string{{names[:half], blocks[:half]}, {names[half:], blocks[half:]}} {
		fmt.Println(strings.Join(row[1], ""))
		fmt.Println(mutedStyle.Render(strings.Join(row[0], "")))
	}

	if previewFormat != "" {
		content, err := generator.Default().Render(t, previewFormat)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(titleStyle.Render(previewFormat + " output"))
		fmt.Print(content)
	}
	return nil
}
