package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/qontinui/ui-bridge-mcp/internal/bridge"
	"github.com/qontinui/ui-bridge-mcp/internal/config"
	"github.com/qontinui/ui-bridge-mcp/internal/output"
	"github.com/qontinui/ui-bridge-mcp/internal/session"
	"github.com/qontinui/ui-bridge-mcp/internal/version"
)

// cfg is the loaded configuration, shared by all subcommands.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "ui-bridge-mcp",
	Short: "Inspect and act on UI Bridge surfaces from the command line or over MCP",
	Long: `ui-bridge-mcp connects AI agents to the qontinui runner's UI Bridge API.

It exposes snapshots, element actions, diffs, and annotated screenshots for
two surfaces: the runner's own UI (control) and a connected SDK app (sdk).
Run 'ui-bridge-mcp serve' to start the MCP server, or use the subcommands
directly for one-off inspection.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "text", "Output format: text, yaml, json")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().String("host", "", "Runner host (overrides config and auto-detection)")
	rootCmd.PersistentFlags().Int("port", 0, "Runner port (overrides config, default 9876)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path, _ := rootCmd.PersistentFlags().GetString("config")
		if path == "" {
			path = config.DefaultPath()
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		if host, _ := rootCmd.PersistentFlags().GetString("host"); host != "" {
			cfg.Host = host
		}
		if port, _ := rootCmd.PersistentFlags().GetInt("port"); port != 0 {
			cfg.Port = port
		}

		setupLogging()

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "text":
			output.OutputFormat = output.FormatText
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use text, yaml, or json)", format)
		}
		return nil
	}
}

// setupLogging configures slog on stderr; stdout is reserved for command
// output and the MCP stdio transport.
func setupLogging() {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// newClient builds a bridge client for the configured runner.
func newClient() *bridge.Client {
	return bridge.NewWithOptions(cfg.Host, cfg.Port, bridge.Options{
		Timeout:          cfg.Timeout,
		DiscoveryTimeout: cfg.DiscoveryTimeout,
	})
}

// newSession returns fresh per-invocation session state. CLI invocations are
// short-lived, so refs and diff baselines never outlive one command.
func newSession() *session.Session {
	return session.New()
}
