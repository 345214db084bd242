package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huffs-projects/themectl/internal/theme"
	"github.com/huffs-projects/themectl/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file-or-theme>",
	Short: "Validate a theme and report accessibility findings",
	Long: `Checks a theme file for structural problems (missing fields, invalid
colors) and reports advisory accessibility findings such as low bg/fg
contrast or near-identical palette colors. Structural problems make the
command exit non-zero; accessibility findings do not.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	// Accept either a direct path or a theme name in the themes directory.
	path := args[0]
	doc, err := theme.LoadDocument(path)
	if err != nil {
		resolved, ferr := theme.FindThemeFile(resolveThemesDir(cfg), args[0])
		if ferr != nil {
			return err
		}
		path = resolved
		doc, err = theme.LoadDocument(path)
		if err != nil {
			return err
		}
	}

	t, warnings, err := validate.Theme(doc)
	if err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			fmt.Printf("%s %s is invalid:\n", failMark(), path)
			for _, p := range verr.Problems {
				fmt.Printf("  %s %v\n", failMark(), p)
			}
			return fmt.Errorf("%d problem(s) found", len(verr.Problems))
		}
		return err
	}

	fmt.Printf("%s %s is valid (theme %q)\n", okMark(), path, t.Name)
	if len(warnings) > 0 {
		printWarnings(warnings)
	} else {
		fmt.Println(mutedStyle.Render("  no accessibility findings"))
	}
	return nil
}
