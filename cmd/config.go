package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/huffs-projects/themectl/internal/config"
	"github.com/huffs-projects/themectl/internal/deploy"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change themectl settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		source := cfg.ConfigFile
		if source == "" {
			source = "(defaults, no settings file)"
		}
		fmt.Printf("settings file:     %s\n", source)
		fmt.Printf("deployment method: %s\n", cfg.DeploymentMethod)
		fmt.Printf("themes directory:  %s\n", resolveThemesDir(cfg))
		if cfg.DeploymentMethod == config.MethodNix {
			fmt.Printf("nix output path:   %s\n", cfg.NixOutputPath(deploy.DefaultNixDir()))
		}
		if len(cfg.AppPaths) > 0 {
			fmt.Println("path overrides:")
			apps := make([]string, 0, len(cfg.AppPaths))
			for app := range cfg.AppPaths {
				apps = append(apps, app)
			}
			sort.Strings(apps)
			for _, app := range apps {
				fmt.Printf("  %-10s %s\n", app, cfg.AppPaths[app])
			}
		}
		return nil
	},
}

var configGetMethodCmd = &cobra.Command{
	Use:   "get-deployment",
	Short: "Print the deployment method",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		fmt.Println(cfg.DeploymentMethod)
		return nil
	},
}

var configSetMethodCmd = &cobra.Command{
	Use:   "set-deployment <standard|nix>",
	Short: "Set the deployment method",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		if err := cfg.SetDeploymentMethod(args[0]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("%s deployment method set to %s\n", okMark(), args[0])
		return nil
	},
}

var configSetPathCmd = &cobra.Command{
	Use:   "set-path <app> <path>",
	Short: "Override the destination path for one application",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := args[0]
		if _, err := deploy.DestinationPath(app, "x", "."); err != nil {
			return err
		}
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		cfg.SetAppPath(app, args[1])
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("%s %s now deploys to %s\n", okMark(), app, args[1])
		return nil
	},
}

var configGetPathCmd = &cobra.Command{
	Use:   "get-path <app>",
	Short: "Show the effective destination path for one application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		if p, ok := cfg.AppPath(args[0]); ok {
			fmt.Println(p)
			return nil
		}
		p, err := deploy.DestinationPath(args[0], "<theme>", deploy.DefaultBaseDir())
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	},
}

var configSetNixPathCmd = &cobra.Command{
	Use:   "set-nix-path <dir>",
	Short: "Set where Home Manager modules are written",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		cfg.Nix.OutputPath = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("%s nix output path set to %s\n", okMark(), args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetMethodCmd)
	configCmd.AddCommand(configSetMethodCmd)
	configCmd.AddCommand(configSetPathCmd)
	configCmd.AddCommand(configGetPathCmd)
	configCmd.AddCommand(configSetNixPathCmd)
	rootCmd.AddCommand(configCmd)
}
