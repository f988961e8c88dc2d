package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qontinui/ui-bridge-mcp/internal/output"
)

var clickCmd = &cobra.Command{
	Use:   "click <element-id>",
	Short: "Click an element",
	Args:  cobra.ExactArgs(1),
	RunE:  runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().String("surface", "control", "Surface to act on: control, sdk")
}

func runClick(cmd *cobra.Command, args []string) error {
	surfaceName, _ := cmd.Flags().GetString("surface")

	client := newClient()
	surf, err := surfaceFor(client, surfaceName)
	if err != nil {
		return err
	}

	if err := surf.action(cmd.Context(), args[0], "click", nil); err != nil {
		return err
	}
	return output.Print(fmt.Sprintf("Clicked element: %s", args[0]))
}
