package cmd

import (
	"github.com/spf13/cobra"

	"github.com/qontinui/ui-bridge-mcp/internal/model"
	"github.com/qontinui/ui-bridge-mcp/internal/output"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print a snapshot of a surface's UI elements",
	Long: `Fetch all registered elements of a surface and print them grouped by type.

With --agent, output uses the compact single-line format with short refs
(@e1, @e2). Refs are only meaningful within one invocation; use the MCP
server for ref-based follow-up actions.`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().String("surface", "control", "Surface to inspect: control, sdk")
	snapshotCmd.Flags().Bool("agent", false, "Compact agent-mode output with refs")
	snapshotCmd.Flags().Bool("interactive-only", false, "Exclude content elements")
	snapshotCmd.Flags().Int("max-elements", 0, "Max elements to print (0 = unlimited)")
	snapshotCmd.Flags().Int("max-content-length", 0, "Max chars per text field (0 = unlimited)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	surfaceName, _ := cmd.Flags().GetString("surface")
	agentMode, _ := cmd.Flags().GetBool("agent")
	interactiveOnly, _ := cmd.Flags().GetBool("interactive-only")
	maxElements, _ := cmd.Flags().GetInt("max-elements")
	maxContentLength, _ := cmd.Flags().GetInt("max-content-length")

	client := newClient()
	surf, err := surfaceFor(client, surfaceName)
	if err != nil {
		return err
	}

	snap, err := surf.snapshot(cmd.Context())
	if err != nil {
		return err
	}
	elements := snap.Elements
	if interactiveOnly {
		elements = model.FilterInteractive(elements)
	}
	for i := range elements {
		model.TruncateElement(&elements[i], maxContentLength)
	}

	overflow := 0
	if maxElements > 0 && len(elements) > maxElements {
		overflow = len(elements) - maxElements
		elements = elements[:maxElements]
	}

	// Structured formats print the raw element list; text prints the
	// grouped listing.
	if output.OutputFormat != output.FormatText {
		return output.Print(model.Snapshot{Elements: elements})
	}

	sess := newSession()
	return output.Print(model.FormatSnapshot(surf.title, elements, model.SnapshotOptions{
		AgentMode:       agentMode,
		InteractiveOnly: interactiveOnly,
		Overflow:        overflow,
		Refs:            sess.Refs,
	}))
}
