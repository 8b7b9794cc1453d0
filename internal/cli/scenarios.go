package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewScenariosCmd creates the scenarios command
func NewScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List available demo scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			for _, name := range app.Scenarios.Scenarios() {
				if name == app.Config.ScenarioOrDefault() {
					fmt.Fprintf(cmd.OutOrStdout(), "* %s\n", name)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		},
	}
}
