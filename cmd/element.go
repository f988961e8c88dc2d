package cmd

import (
	"github.com/spf13/cobra"

	"github.com/qontinui/ui-bridge-mcp/internal/model"
	"github.com/qontinui/ui-bridge-mcp/internal/output"
)

var elementCmd = &cobra.Command{
	Use:   "element <element-id>",
	Short: "Print detailed state of a single element",
	Long: `Fetch one element by its ID and print its full state.

Content-bearing fields (textContent, innerHTML, value) are wrapped in
<<CONTENT>> / <</CONTENT>> boundary markers so downstream model consumers can
tell page content from structural metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: runElement,
}

func init() {
	rootCmd.AddCommand(elementCmd)
	elementCmd.Flags().String("surface", "control", "Surface to inspect: control, sdk")
	elementCmd.Flags().Int("max-content-length", 0, "Max chars per text field (0 = unlimited)")
}

func runElement(cmd *cobra.Command, args []string) error {
	surfaceName, _ := cmd.Flags().GetString("surface")
	maxContentLength, _ := cmd.Flags().GetInt("max-content-length")

	client := newClient()
	surf, err := surfaceFor(client, surfaceName)
	if err != nil {
		return err
	}

	el, err := surf.getElement(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	model.TruncateElement(el, maxContentLength)
	model.Sanitize(el)
	return output.Print(el)
}
