// Package server exposes the UI Bridge as MCP tools. Each tool call runs to
// completion against the runner; per-surface session state (refs, diff
// history) lives on the Server and is internally synchronized.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/qontinui/ui-bridge-mcp/internal/annotate"
	"github.com/qontinui/ui-bridge-mcp/internal/bridge"
	"github.com/qontinui/ui-bridge-mcp/internal/model"
	"github.com/qontinui/ui-bridge-mcp/internal/session"
	"github.com/qontinui/ui-bridge-mcp/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport        string
	Port             int
	Host             string
	RunnerPort       int
	Timeout          time.Duration
	DiscoveryTimeout time.Duration
}

// surface binds one logical UI target (control webview or SDK app) to its
// session state and runner endpoints. ui_* and sdk_* tools share handler
// logic through this indirection.
type surface struct {
	name  string // tool prefix: "ui" or "sdk"
	title string // heading used in snapshot output
	sess  *session.Session

	snapshot   func(ctx context.Context) (*model.Snapshot, error)
	getElement func(ctx context.Context, id string) (*model.Element, error)
	action     func(ctx context.Context, id, action string, params map[string]any) error
	screenshot func(ctx context.Context, monitor int) (*bridge.Screenshot, error)
}

// Server wires the bridge client, sessions, and annotator into MCP tools.
type Server struct {
	bridge    *bridge.Client
	sessions  *session.Sessions
	annotator annotate.Renderer
	mcp       *mcpserver.MCPServer

	control *surface
	sdk     *surface
}

// New creates a Server talking to the runner at cfg.Host:cfg.RunnerPort.
func New(cfg Config) *Server {
	client := bridge.NewWithOptions(cfg.Host, cfg.RunnerPort, bridge.Options{
		Timeout:          cfg.Timeout,
		DiscoveryTimeout: cfg.DiscoveryTimeout,
	})
	return newServer(client)
}

func newServer(client *bridge.Client) *Server {
	sessions := session.NewSessions()
	s := &Server{
		bridge:    client,
		sessions:  sessions,
		annotator: annotate.New(),
	}

	s.control = &surface{
		name:       "ui",
		title:      "UI Snapshot",
		sess:       sessions.Control,
		snapshot:   client.ControlSnapshot,
		getElement: client.ControlElement,
		action:     client.ControlAction,
		screenshot: client.ControlScreenshot,
	}
	s.sdk = &surface{
		name:  "sdk",
		title: "SDK Snapshot",
		sess:  sessions.SDK,
		snapshot: func(ctx context.Context) (*model.Snapshot, error) {
			return client.SDKSnapshot(ctx, true)
		},
		getElement: client.SDKElement,
		action:     client.SDKAction,
		screenshot: client.SDKScreenshot,
	}

	s.mcp = mcpserver.NewMCPServer("ui-bridge-mcp", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("ui_health",
			mcp.WithDescription("Check if the qontinui-runner is running and accessible"),
		),
		s.handleHealth,
	)

	s.registerSurfaceTools(s.control)
	s.registerSurfaceTools(s.sdk)
	s.registerSDKTools()
}

// registerSurfaceTools registers the tools that exist for both surfaces:
// snapshot, element lookup, actions, diff, and annotated screenshot.
func (s *Server) registerSurfaceTools(surf *surface) {
	prefix := surf.name

	snapshotOpts := []mcp.ToolOption{
		mcp.WithDescription("Get a complete snapshot of the surface's UI: all registered elements with type, label, bounds, visibility, and state. Use agent_mode=true for compact output with short refs (@e1, @e2) usable in subsequent actions."),
		mcp.WithBoolean("agent_mode", mcp.Description("Compact output with short refs (@e1, @e2)")),
		mcp.WithBoolean("interactive_only", mcp.Description("Only return interactive elements, excluding static content")),
		mcp.WithNumber("max_elements", mcp.Description("Max elements to return; remainder summarized as a count")),
		mcp.WithNumber("max_content_length", mcp.Description("Max chars per text field; longer values truncated")),
	}
	if prefix == "sdk" {
		snapshotOpts = append(snapshotOpts,
			mcp.WithBoolean("include_content", mcp.Description("Include content (non-interactive) elements; defaults to true")))
	}
	s.mcp.AddTool(
		mcp.NewTool(prefix+"_snapshot", snapshotOpts...),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleSnapshot(ctx, surf, request)
		},
	)

	s.mcp.AddTool(
		mcp.NewTool(prefix+"_get_element",
			mcp.WithDescription("Get detailed information about a specific UI element: bounds, visibility, enabled state, text content. Accepts refs like @e1 from agent_mode snapshots."),
			mcp.WithString("element_id", mcp.Description("The element ID or agent ref (@e1)"), mcp.Required()),
			mcp.WithNumber("max_content_length", mcp.Description("Max chars per text field; longer values truncated")),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleGetElement(ctx, surf, request)
		},
	)

	s.mcp.AddTool(
		mcp.NewTool(prefix+"_diff",
			mcp.WithDescription("Show what changed since the last "+prefix+"_snapshot: appeared, disappeared, and modified elements. Requires at least one prior snapshot."),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleDiff(ctx, surf, request)
		},
	)

	s.mcp.AddTool(
		mcp.NewTool(prefix+"_annotated_screenshot",
			mcp.WithDescription("Capture a screenshot of the surface with element boxes and ref labels (@e1, @e2) overlaid, matching agent-mode refs."),
			mcp.WithNumber("monitor", mcp.Description("Monitor index (0-based); defaults to primary")),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleAnnotatedScreenshot(ctx, surf, request)
		},
	)

	s.mcp.AddTool(
		mcp.NewTool(prefix+"_drag",
			mcp.WithDescription("Drag an element to a target element"),
			mcp.WithString("element_id", mcp.Description("The source element ID or agent ref (@e1)"), mcp.Required()),
			mcp.WithString("target_element_id", mcp.Description("The target element ID or agent ref"), mcp.Required()),
			mcp.WithNumber("steps", mcp.Description("Number of intermediate mousemove steps (default: 10)")),
			mcp.WithNumber("hold_delay", mcp.Description("Delay in ms before first move (default: 100)")),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleDrag(ctx, surf, request)
		},
	)

	for _, spec := range actionSpecs {
		spec := spec
		opts := []mcp.ToolOption{
			mcp.WithDescription(spec.description),
			mcp.WithString("element_id", mcp.Description("The element ID or agent ref (@e1)"), mcp.Required()),
		}
		opts = append(opts, spec.extraParams...)
		s.mcp.AddTool(
			mcp.NewTool(prefix+"_"+spec.tool, opts...),
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return s.handleAction(ctx, surf, spec, request)
			},
		)
	}
}

// registerSDKTools registers tools that only make sense for the external
// surface: connection management, element listing, and discovery.
func (s *Server) registerSDKTools() {
	s.mcp.AddTool(
		mcp.NewTool("sdk_connect",
			mcp.WithDescription("Connect to an SDK-integrated web app by URL"),
			mcp.WithString("url", mcp.Description("The app URL (e.g. 'http://localhost:3001')"), mcp.Required()),
		),
		s.handleSDKConnect,
	)
	s.mcp.AddTool(
		mcp.NewTool("sdk_disconnect",
			mcp.WithDescription("Disconnect from the SDK app"),
		),
		s.handleSDKDisconnect,
	)
	s.mcp.AddTool(
		mcp.NewTool("sdk_status",
			mcp.WithDescription("Check SDK app connection status"),
		),
		s.handleSDKStatus,
	)
	s.mcp.AddTool(
		mcp.NewTool("sdk_elements",
			mcp.WithDescription("List registered UI elements of the SDK app, optionally filtered by content type. Use agent_mode=true for compact refs."),
			mcp.WithBoolean("content_only", mcp.Description("Only return content (non-interactive) elements")),
			mcp.WithArray("content_types", mcp.Description("Filter to elements matching these content types or roles")),
			mcp.WithBoolean("agent_mode", mcp.Description("Compact output with short refs (@e1, @e2)")),
			mcp.WithNumber("max_elements", mcp.Description("Max elements to return; remainder summarized as a count")),
			mcp.WithNumber("max_content_length", mcp.Description("Max chars per text field; longer values truncated")),
		),
		s.handleSDKElements,
	)
	s.mcp.AddTool(
		mcp.NewTool("sdk_screenshot",
			mcp.WithDescription("Capture a raw screenshot of the SDK app, without element annotations"),
			mcp.WithNumber("monitor", mcp.Description("Monitor index (0-based); defaults to primary")),
		),
		s.handleSDKScreenshot,
	)
	s.mcp.AddTool(
		mcp.NewTool("sdk_page_refresh",
			mcp.WithDescription("Refresh the current page in the connected SDK app. The UI Bridge connection re-establishes automatically after the reload."),
		),
		s.handleSDKPageRefresh,
	)
	s.mcp.AddTool(
		mcp.NewTool("sdk_page_navigate",
			mcp.WithDescription("Navigate the connected SDK app to a specific URL, e.g. a different route within the app"),
			mcp.WithString("url", mcp.Description("The URL to navigate to (e.g. 'http://localhost:3001/dashboard')"), mcp.Required()),
		),
		s.handleSDKPageNavigate,
	)
	s.mcp.AddTool(
		mcp.NewTool("sdk_page_go_back",
			mcp.WithDescription("Go back in browser history in the connected SDK app"),
		),
		s.handleSDKPageBack,
	)
	s.mcp.AddTool(
		mcp.NewTool("sdk_page_go_forward",
			mcp.WithDescription("Go forward in browser history in the connected SDK app"),
		),
		s.handleSDKPageForward,
	)
	s.mcp.AddTool(
		mcp.NewTool("sdk_discover",
			mcp.WithDescription("Trigger element discovery in the SDK app: forces a fresh scan of the page"),
			mcp.WithBoolean("interactive_only", mcp.Description("Only discover interactive elements")),
			mcp.WithBoolean("include_content", mcp.Description("Include content elements (default true)")),
			mcp.WithArray("content_roles", mcp.Description("Restrict content elements to these roles")),
		),
		s.handleSDKDiscover,
	)
	s.mcp.AddTool(
		mcp.NewTool("ui_discover",
			mcp.WithDescription("Trigger element discovery in the runner's UI. Call this if elements aren't showing up in ui_snapshot."),
			mcp.WithBoolean("interactive_only", mcp.Description("Only discover interactive elements")),
		),
		s.handleControlDiscover,
	)
}
