package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/propdesk-org/propdesk-cli/internal/config"
)

const projectFileTemplate = `[dashboard]
# Data mode backing the proposal list: production, development, or demo
mode = "development"
# Scenario used in demo mode
scenario = "investor"

[remote]
# Live backing service used in production mode
# url = "https://api.example.com"
`

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a propdesk project in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			path := filepath.Join(cwd, config.ProjectFile)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", config.ProjectFile)
			}

			if err := os.WriteFile(path, []byte(projectFileTemplate), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", config.ProjectFile, err)
			}

			if err := os.MkdirAll(filepath.Join(cwd, ".propdesk"), 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %w", err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✅ Initialized propdesk project in %s\n", cwd)
			return nil
		},
	}
}
