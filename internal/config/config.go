// Package config loads and persists the process-wide themectl settings:
// deployment method, theme directory, and per-app path overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/huffs-projects/themectl/internal/logger"
)

// Deployment methods. Standard writes config files directly into ~/.config
// locations; nix generates Home Manager modules instead.
const (
	MethodStandard = "standard"
	MethodNix      = "nix"
)

// Config represents the application configuration.
type Config struct {
	DeploymentMethod string            `mapstructure:"deployment_method" toml:"deployment_method"`
	ThemesDir        string            `mapstructure:"themes_dir" toml:"themes_dir,omitempty"`
	AppPaths         map[string]string `mapstructure:"app_paths" toml:"app_paths,omitempty"`
	Nix              NixConfig         `mapstructure:"nix" toml:"nix,omitempty"`
	Logging          logger.Config     `mapstructure:"logging" toml:"logging,omitempty"`

	// ConfigFile records which file was loaded, for status output.
	ConfigFile string `mapstructure:"-" toml:"-"`
}

// NixConfig represents nix deployment settings.
type NixConfig struct {
	OutputPath string `mapstructure:"output_path" toml:"output_path,omitempty"`
}

var defaultConfig = Config{
	DeploymentMethod: MethodStandard,
	Logging: logger.Config{
		Level:  "info",
		Output: "stdout",
	},
}

// Load reads configuration from file, or from standard locations when no
// path is given. A missing config file yields the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(DefaultDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment_method", defaultConfig.DeploymentMethod)
	v.SetDefault("logging.level", defaultConfig.Logging.Level)
	v.SetDefault("logging.output", defaultConfig.Logging.Output)
}

// validate validates the configuration.
func validate(cfg *Config) error {
	switch cfg.DeploymentMethod {
	case MethodStandard, MethodNix:
	default:
		return fmt.Errorf("deployment_method must be %q or %q, got: %q",
			MethodStandard, MethodNix, cfg.DeploymentMethod)
	}
	return nil
}

// DefaultDir returns the themectl config directory, honoring
// XDG_CONFIG_HOME.
func DefaultDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "themectl")
}

// DefaultPath returns the standard settings file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.toml")
}

// Save persists the configuration to its file (or the standard location
// when it was loaded from defaults).
func (c *Config) Save() error {
	path := c.ConfigFile
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	content, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", path, err)
	}
	c.ConfigFile = path
	return nil
}

// SetDeploymentMethod updates the deployment method after validating it.
func (c *Config) SetDeploymentMethod(method string) error {
	switch method {
	case MethodStandard, MethodNix:
		c.DeploymentMethod = method
		return nil
	}
	return fmt.Errorf("invalid deployment method %q: must be %q or %q",
		method, MethodStandard, MethodNix)
}

// AppPath returns the configured path override for an app, if any.
func (c *Config) AppPath(app string) (string, bool) {
	p, ok := c.AppPaths[app]
	return p, ok
}

// SetAppPath records a per-app destination override.
func (c *Config) SetAppPath(app, path string) {
	if c.AppPaths == nil {
		c.AppPaths = make(map[string]string)
	}
	c.AppPaths[app] = path
}

// NixOutputPath returns the configured Home Manager module directory, or
// the default when unset.
func (c *Config) NixOutputPath(fallback string) string {
	if c.Nix.OutputPath != "" {
		return c.Nix.OutputPath
	}
	return fallback
}
