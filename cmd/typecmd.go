package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qontinui/ui-bridge-mcp/internal/output"
)

var typeCmd = &cobra.Command{
	Use:   "type <element-id> <text>",
	Short: "Type text into an element",
	Args:  cobra.ExactArgs(2),
	RunE:  runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().String("surface", "control", "Surface to act on: control, sdk")
}

func runType(cmd *cobra.Command, args []string) error {
	surfaceName, _ := cmd.Flags().GetString("surface")

	client := newClient()
	surf, err := surfaceFor(client, surfaceName)
	if err != nil {
		return err
	}

	if err := surf.action(cmd.Context(), args[0], "type", map[string]any{"text": args[1]}); err != nil {
		return err
	}
	return output.Print(fmt.Sprintf("Typed '%s' into element: %s", args[1], args[0]))
}
