package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qontinui/ui-bridge-mcp/internal/output"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Trigger element discovery on a surface",
	Long: `Ask the runner to re-scan a surface for elements. Discovery can take a
while on large pages, so this call uses a longer timeout than other
operations.`,
	RunE: runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().String("surface", "control", "Surface to scan: control, sdk")
	discoverCmd.Flags().Bool("interactive-only", false, "Only register interactive elements")
	discoverCmd.Flags().Bool("include-content", true, "Also register content elements (sdk only)")
	discoverCmd.Flags().StringSlice("content-roles", nil, "Restrict content roles (sdk only)")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	surfaceName, _ := cmd.Flags().GetString("surface")
	interactiveOnly, _ := cmd.Flags().GetBool("interactive-only")
	includeContent, _ := cmd.Flags().GetBool("include-content")
	contentRoles, _ := cmd.Flags().GetStringSlice("content-roles")

	client := newClient()
	switch surfaceName {
	case "control":
		if err := client.ControlDiscover(cmd.Context(), interactiveOnly); err != nil {
			return err
		}
		return output.Print("Discovery complete.")
	case "sdk":
		result, err := client.SDKDiscover(cmd.Context(), interactiveOnly, includeContent, contentRoles)
		if err != nil {
			return err
		}
		return output.Print(fmt.Sprintf("Discovery complete: %d elements registered.", result.Total))
	default:
		return fmt.Errorf("unknown surface: %s (use control or sdk)", surfaceName)
	}
}
