package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qontinui/ui-bridge-mcp/internal/output"
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Navigate the connected SDK app's page",
}

var pageRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Reload the current page",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().SDKPageRefresh(cmd.Context()); err != nil {
			return err
		}
		return output.Print("Page refreshed successfully")
	},
}

var pageNavigateCmd = &cobra.Command{
	Use:   "navigate <url>",
	Short: "Navigate to a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().SDKPageNavigate(cmd.Context(), args[0]); err != nil {
			return err
		}
		return output.Print(fmt.Sprintf("Navigated to: %s", args[0]))
	},
}

var pageBackCmd = &cobra.Command{
	Use:   "back",
	Short: "Go back in browser history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().SDKPageBack(cmd.Context()); err != nil {
			return err
		}
		return output.Print("Navigated back")
	},
}

var pageForwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Go forward in browser history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().SDKPageForward(cmd.Context()); err != nil {
			return err
		}
		return output.Print("Navigated forward")
	},
}

func init() {
	rootCmd.AddCommand(pageCmd)
	pageCmd.AddCommand(pageRefreshCmd)
	pageCmd.AddCommand(pageNavigateCmd)
	pageCmd.AddCommand(pageBackCmd)
	pageCmd.AddCommand(pageForwardCmd)
}
