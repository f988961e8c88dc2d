package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qontinui/ui-bridge-mcp/internal/model"
	"github.com/qontinui/ui-bridge-mcp/internal/output"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List elements from the connected SDK app",
	Long: `List elements discovered in the external app connected through the SDK
surface. Supports filtering to content-bearing elements only, or to
specific content categories (heading, paragraph, list, table, ...).`,
	RunE: runElements,
}

func init() {
	rootCmd.AddCommand(elementsCmd)
	elementsCmd.Flags().Bool("content-only", false, "Only content-bearing elements")
	elementsCmd.Flags().StringSlice("content-types", nil, "Filter by content categories")
	elementsCmd.Flags().Bool("agent", false, "Compact agent-oriented listing with @eN refs")
}

func runElements(cmd *cobra.Command, args []string) error {
	contentOnly, _ := cmd.Flags().GetBool("content-only")
	contentTypes, _ := cmd.Flags().GetStringSlice("content-types")
	agent, _ := cmd.Flags().GetBool("agent")

	client := newClient()
	snap, err := client.SDKElements(cmd.Context(), contentOnly, contentTypes)
	if err != nil {
		return err
	}

	elements := snap.Elements
	if contentOnly {
		elements = model.FilterContent(elements)
	}
	if len(contentTypes) > 0 {
		elements = model.FilterContentTypes(elements, contentTypes)
	}

	if !agent && output.OutputFormat != output.FormatText {
		return output.Print(elements)
	}

	sess := newSession()
	var b strings.Builder
	fmt.Fprintf(&b, "Elements (%d):\n", len(elements))
	for _, el := range elements {
		if agent {
			b.WriteString(model.FormatCompact(el, sess.Refs.Assign(el.ID)))
		} else {
			b.WriteString(model.FormatSummary(el))
		}
		b.WriteByte('\n')
	}
	return output.Print(strings.TrimRight(b.String(), "\n"))
}
