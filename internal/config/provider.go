package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/propdesk-org/propdesk-cli/internal/domain/config"
)

// ProjectFile is the workspace marker and defaults file at the project
// root.
const ProjectFile = "propdesk.toml"

// Provider builds the RuntimeConfig injected into the use cases. The
// data mode and scenario are explicit configuration here, never ambient
// global state.
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	project, err := loadProjectConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".propdesk"),
		Mode:           config.DataMode(v.GetString("mode")),
		Scenario:       v.GetString("scenario"),
		RemoteURL:      v.GetString("remote_url"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		Project:        project,
	}

	// Project file supplies defaults; flags and env win.
	if cfg.Mode == "" {
		cfg.Mode = config.DataMode(project.Dashboard.Mode)
	}
	if cfg.Mode == "" {
		cfg.Mode = config.ModeDevelopment
	}
	if cfg.Scenario == "" {
		cfg.Scenario = project.Dashboard.Scenario
	}
	if cfg.RemoteURL == "" {
		cfg.RemoteURL = project.Remote.URL
	}

	if !cfg.Mode.Valid() {
		return nil, fmt.Errorf("invalid data mode %q (valid: production, development, demo)", cfg.Mode)
	}

	return cfg, nil
}

// loadProjectConfig parses propdesk.toml, falling back to defaults when
// the file is absent. A .env next to it is loaded into the environment
// first.
func loadProjectConfig(projectRoot string) (*config.ProjectConfig, error) {
	envFile := filepath.Join(projectRoot, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	path := filepath.Join(projectRoot, ProjectFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.DefaultProjectConfig(), nil
	}

	var project config.ProjectConfig
	if _, err := toml.DecodeFile(path, &project); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFile, err)
	}
	return &project, nil
}

// FindProjectRoot walks up from current directory to find propdesk.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		marker := filepath.Join(dir, ProjectFile)
		if _, err := os.Stat(marker); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding propdesk.toml
			return "", fmt.Errorf("not in a propdesk project (%s not found)", ProjectFile)
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".propdesk"))

	// Set up environment variables
	v.SetEnvPrefix("PROPDESK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "30s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})

	return v
}
