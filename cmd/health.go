package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qontinui/ui-bridge-mcp/internal/output"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the qontinui-runner is running and accessible",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		if err := client.Health(cmd.Context()); err != nil {
			return fmt.Errorf("runner not accessible: %w", err)
		}
		return output.Print(fmt.Sprintf("Runner at %s is healthy.", client.BaseURL()))
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
