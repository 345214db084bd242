package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/huffs-projects/themectl/internal/config"
	"github.com/huffs-projects/themectl/internal/logger"
	"github.com/huffs-projects/themectl/internal/theme"
)

var (
	cfgFile   string
	themesDir string
	dryRun    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "themectl",
	Short: "Declarative theme manager for desktop applications",
	Long: `themectl reads a theme definition (a small TOML file of colors and
style properties) and generates matching configuration for terminal
emulators, bars, launchers, editors and other desktop applications,
then installs the results in place with automatic backups.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		// Cobra already printed the error, just exit with code 1
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default: ~/.config/themectl/config.toml)")
	rootCmd.PersistentFlags().StringVar(&themesDir, "themes-dir", "", "theme directory (default: ~/.config/themectl/themes)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing anything")
}

// loadSettings loads the settings file and initializes logging from it. Every
// subcommand that touches configuration goes through here.
func loadSettings() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveThemesDir picks the theme directory: flag, then settings, then the
// standard location.
func resolveThemesDir(cfg *config.Config) string {
	if themesDir != "" {
		return themesDir
	}
	if cfg != nil && cfg.ThemesDir != "" {
		return cfg.ThemesDir
	}
	return theme.DefaultDir()
}

// loadTheme resolves a theme name in dir and runs it through validation,
// printing any accessibility warnings along the way.
func loadTheme(dir, name string) (*theme.Theme, error) {
	path, err := theme.FindThemeFile(dir, name)
	if err != nil {
		return nil, err
	}
	doc, err := theme.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	t, warnings, err := validateTheme(doc)
	if err != nil {
		return nil, err
	}
	printWarnings(warnings)
	return t, nil
}
