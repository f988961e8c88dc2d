package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qontinui/ui-bridge-mcp/internal/output"
)

var connectCmd = &cobra.Command{
	Use:   "connect <app-url>",
	Short: "Connect the runner's SDK bridge to an external app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().SDKConnect(cmd.Context(), args[0]); err != nil {
			return err
		}
		return output.Print(fmt.Sprintf("Connected to app at %s", args[0]))
	},
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect the runner's SDK bridge from the current app",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().SDKDisconnect(cmd.Context()); err != nil {
			return err
		}
		return output.Print("Disconnected from app")
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show SDK bridge connection status",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := newClient().Status(cmd.Context())
		if err != nil {
			return err
		}
		if output.OutputFormat != output.FormatText {
			return output.Print(status)
		}
		if status.Connected {
			return output.Print(fmt.Sprintf("Connected to %s", status.AppURL))
		}
		return output.Print("Not connected")
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(disconnectCmd)
	rootCmd.AddCommand(statusCmd)
}
