package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qontinui/ui-bridge-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the UI Bridge tools",
	Long: `Start a Model Context Protocol (MCP) server exposing snapshot, action,
diff, and annotated-screenshot tools for both the control and SDK surfaces.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  ui-bridge-mcp serve
  ui-bridge-mcp serve --transport streamable-http --listen-port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("listen-port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Bool("log-json", false, "Emit structured JSON logs on stderr")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	listenPort, _ := cmd.Flags().GetInt("listen-port")

	if logJSON, _ := cmd.Flags().GetBool("log-json"); logJSON {
		cfg.LogJSON = true
		setupLogging()
	}

	serverCfg := server.Config{
		Transport:        transport,
		Port:             listenPort,
		Host:             cfg.Host,
		RunnerPort:       cfg.Port,
		Timeout:          cfg.Timeout,
		DiscoveryTimeout: cfg.DiscoveryTimeout,
	}

	srv := server.New(serverCfg)
	if err := srv.Serve(serverCfg); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
