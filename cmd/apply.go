package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huffs-projects/themectl/internal/config"
	"github.com/huffs-projects/themectl/internal/deploy"
	"github.com/huffs-projects/themectl/internal/generator"
	"github.com/huffs-projects/themectl/internal/logger"
	"github.com/huffs-projects/themectl/internal/theme"
)

var (
	applyVariant   string
	applyApps      []string
	applyConfigDir string
)

var applyCmd = &cobra.Command{
	Use:   "apply <theme>",
	Short: "Generate and install configuration for every target application",
	Long: `Loads and validates a theme, renders configuration for each target
application, and installs the results. Existing files that would change
are backed up first. Use --dry-run to see what would happen.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyVariant, "variant", "", "derive a dark or light variant before applying")
	applyCmd.Flags().StringSliceVar(&applyApps, "apps", nil, "only these applications (default: all)")
	applyCmd.Flags().StringVar(&applyConfigDir, "config-dir", "", "install under this directory instead of ~/.config")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	t, err := loadTheme(resolveThemesDir(cfg), args[0])
	if err != nil {
		return err
	}
	if applyVariant != "" {
		t, err = theme.GenerateVariant(t, applyVariant)
		if err != nil {
			return err
		}
	}

	apps := deploy.Apps
	if len(applyApps) > 0 {
		apps, err = filterApps(applyApps)
		if err != nil {
			return err
		}
	}

	reg := generator.Default()
	items, renderFailures := buildItems(cfg, reg, t, apps)

	logger.Info("applying theme",
		logger.String("theme", t.Name),
		logger.String("method", cfg.DeploymentMethod),
		logger.Int("targets", len(items)),
		logger.Bool("dry_run", dryRun))

	records := deploy.New(dryRun).ApplyAll(items)

	if dryRun {
		fmt.Println(mutedStyle.Render("dry run: no files were written"))
	}
	fmt.Printf("%s %s\n", titleStyle.Render("Theme:"), t.Name)
	failed := renderFailures
	for _, rec := range records {
		switch rec.Action {
		case deploy.ActionFailed:
			failed++
			fmt.Printf("  %s %-10s %v\n", failMark(), rec.App, rec.Err)
		case deploy.ActionUnchanged:
			fmt.Printf("  %s %-10s unchanged\n", mutedStyle.Render("-"), rec.App)
		default:
			line := fmt.Sprintf("  %s %-10s %s %s", okMark(), rec.App, rec.Action, rec.Path)
			if rec.BackupPath != "" {
				line += mutedStyle.Render(fmt.Sprintf(" (backup: %s)", rec.BackupPath))
			}
			fmt.Println(line)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(apps))
	}
	return nil
}

// buildItems renders every requested app into a deployment item. Render
// failures are reported immediately and counted; they never stop the batch.
func buildItems(cfg *config.Config, reg *generator.Registry, t *theme.Theme, apps []string) ([]deploy.Item, int) {
	nixMethod := cfg.DeploymentMethod == config.MethodNix
	nixDir := cfg.NixOutputPath(deploy.DefaultNixDir())
	baseDir := applyConfigDir
	if baseDir == "" {
		baseDir = deploy.DefaultBaseDir()
	}

	var items []deploy.Item
	failures := 0
	for _, app := range apps {
		var content string
		var err error
		if nixMethod {
			content, err = generator.HomeManagerModule(reg, t, app)
		} else {
			content, err = reg.Render(t, app)
		}
		if err != nil {
			failures++
			fmt.Printf("  %s %-10s %v\n", failMark(), app, err)
			continue
		}

		var path string
		if nixMethod {
			path = deploy.NixModulePath(nixDir, app)
		} else if override, ok := cfg.AppPath(app); ok {
			path = override
		} else {
			path, err = deploy.DestinationPath(app, t.Name, baseDir)
			if err != nil {
				failures++
				fmt.Printf("  %s %-10s %v\n", failMark(), app, err)
				continue
			}
		}
		items = append(items, deploy.Item{App: app, Path: path, Content: content})
	}
	return items, failures
}

// filterApps validates a user-supplied app list against the known targets,
// preserving canonical order.
func filterApps(requested []string) ([]string, error) {
	want := make(map[string]bool, len(requested))
	for _, app := range requested {
		want[app] = true
	}
	var out []string
	for _, app := range deploy.Apps {
		if want[app] {
			out = append(out, app)
			delete(want, app)
		}
	}
	for app := range want {
		return nil, fmt.Errorf("unknown application %q (see 'themectl list --apps')", app)
	}
	return out, nil
}
