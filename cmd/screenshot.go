package cmd

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qontinui/ui-bridge-mcp/internal/annotate"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a screenshot of a surface",
	Long: `Capture a screenshot through the runner. With --annotate, element bounding
boxes and @eN ref labels are drawn on the image so a vision model can map
refs to screen positions.`,
	RunE: runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	screenshotCmd.Flags().String("surface", "control", "Surface to capture: control, sdk")
	screenshotCmd.Flags().Bool("annotate", false, "Draw element boxes and ref labels")
	screenshotCmd.Flags().Int("monitor", -1, "Monitor index to capture (-1 = runner default)")
	screenshotCmd.Flags().String("output", "", "Output file path (default: stdout as base64)")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	surfaceName, _ := cmd.Flags().GetString("surface")
	annotateFlag, _ := cmd.Flags().GetBool("annotate")
	monitor, _ := cmd.Flags().GetInt("monitor")
	outputPath, _ := cmd.Flags().GetString("output")

	client := newClient()
	surf, err := surfaceFor(client, surfaceName)
	if err != nil {
		return err
	}

	shot, err := surf.screenshot(cmd.Context(), monitor)
	if err != nil {
		return err
	}
	data := shot.Image

	if annotateFlag {
		snap, err := surf.snapshot(cmd.Context())
		if err != nil {
			return err
		}
		sess := newSession()
		data = annotate.New().Annotate(data, snap.Elements, shot.Width, shot.Height, sess.Refs)
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, data, 0644)
	}

	// Default: write to stdout as base64 for easy agent consumption
	encoder := base64.NewEncoder(base64.StdEncoding, os.Stdout)
	if _, err := encoder.Write(data); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	fmt.Println() // newline after base64
	return nil
}
