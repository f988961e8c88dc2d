package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/qontinui/ui-bridge-mcp/internal/model"
	"github.com/qontinui/ui-bridge-mcp/internal/output"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Diff the current UI state against the last snapshot",
	Long: `Fetch a fresh snapshot and compare it against the most recent one saved by
a previous invocation of this command. The new snapshot becomes the
baseline for the next diff.

Snapshots are stored under /tmp and cleaned up after an hour.`,
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().String("surface", "control", "Surface to diff: control, sdk")
}

func runDiff(cmd *cobra.Command, args []string) error {
	surfaceName, _ := cmd.Flags().GetString("surface")

	client := newClient()
	surf, err := surfaceFor(client, surfaceName)
	if err != nil {
		return err
	}

	snap, err := surf.snapshot(cmd.Context())
	if err != nil {
		return err
	}

	prev, err := model.LoadLatestSnapshot(surfaceName)
	if err != nil {
		return err
	}
	if err := model.SaveSnapshot(surfaceName, time.Now().Unix(), snap.Elements); err != nil {
		return err
	}
	model.CleanSnapshots(surfaceName, time.Hour)

	if prev == nil {
		return output.Print("No previous snapshot to diff against. Run 'diff' again after the UI changes.")
	}

	diff := model.DiffElements(prev, snap.Elements)
	if output.OutputFormat != output.FormatText {
		return output.Print(diff)
	}
	return output.Print(model.FormatDiff(diff, newSession().Refs))
}
