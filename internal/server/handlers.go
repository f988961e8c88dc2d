package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/qontinui/ui-bridge-mcp/internal/model"
)

func (s *Server) handleHealth(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.bridge.Health(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Runner not accessible: %v", err)), nil
	}
	return mcp.NewToolResultText("Runner is healthy and accessible."), nil
}

// handleSnapshot implements ui_snapshot and sdk_snapshot: fetch, filter,
// record for diffing, truncate, cap, and render.
func (s *Server) handleSnapshot(ctx context.Context, surf *surface, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	agentMode := boolParam(args, "agent_mode", false)
	interactiveOnly := boolParam(args, "interactive_only", false)
	maxElements := intParam(args, "max_elements", 0)
	maxContentLength := intParam(args, "max_content_length", 0)

	snap, err := surf.snapshot(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	elements := snap.Elements

	// interactive_only overrides include_content (SDK surface only).
	if interactiveOnly || !boolParam(args, "include_content", true) {
		elements = model.FilterInteractive(elements)
	}

	// Record before any truncation so the diff baseline holds verbatim state.
	surf.sess.Diff.UpdateAndDiff(elements)

	if maxContentLength > 0 {
		for i := range elements {
			model.TruncateElement(&elements[i], maxContentLength)
		}
	}

	overflow := 0
	if maxElements > 0 && len(elements) > maxElements {
		overflow = len(elements) - maxElements
		elements = elements[:maxElements]
	}

	text := model.FormatSnapshot(surf.title, elements, model.SnapshotOptions{
		AgentMode:       agentMode,
		InteractiveOnly: interactiveOnly,
		Overflow:        overflow,
		Refs:            surf.sess.Refs,
	})
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleGetElement(ctx context.Context, surf *surface, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	maxContentLength := intParam(args, "max_content_length", 0)

	elementID, err := surf.sess.Refs.Resolve(stringParam(args, "element_id", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}

	el, err := surf.getElement(ctx, elementID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}

	// Truncate before adding boundary markers so markers are never cut.
	model.TruncateElement(el, maxContentLength)
	model.Sanitize(el)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(el); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText(strings.TrimSuffix(buf.String(), "\n")), nil
}

func (s *Server) handleAction(ctx context.Context, surf *surface, spec actionSpec, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	elementID, err := surf.sess.Refs.Resolve(stringParam(args, "element_id", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}

	var params map[string]any
	if spec.params != nil {
		params = spec.params(args)
	}
	if err := surf.action(ctx, elementID, spec.action, params); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText(spec.confirm(elementID, args)), nil
}

// handleDrag resolves both the source and target refs before dispatching.
func (s *Server) handleDrag(ctx context.Context, surf *surface, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	elementID, err := surf.sess.Refs.Resolve(stringParam(args, "element_id", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	targetID, err := surf.sess.Refs.Resolve(stringParam(args, "target_element_id", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}

	params := map[string]any{"target": map[string]any{"elementId": targetID}}
	if _, ok := args["steps"]; ok {
		params["steps"] = floatParam(args, "steps", 0)
	}
	if _, ok := args["hold_delay"]; ok {
		params["holdDelay"] = floatParam(args, "hold_delay", 0)
	}
	if err := surf.action(ctx, elementID, "drag", params); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Dragged %s to %s", elementID, targetID)), nil
}

// handleDiff takes a fresh snapshot and reports changes since the previous
// one for the same surface.
func (s *Server) handleDiff(ctx context.Context, surf *surface, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := surf.snapshot(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	diff := surf.sess.Diff.UpdateAndDiff(snap.Elements)
	if diff == nil {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No previous snapshot to diff against. Call %s_snapshot first.", surf.name)), nil
	}
	return mcp.NewToolResultText(model.FormatDiff(diff, surf.sess.Refs)), nil
}

func (s *Server) handleAnnotatedScreenshot(ctx context.Context, surf *surface, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	monitor := intParam(args, "monitor", -1)

	snap, err := surf.snapshot(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting snapshot: %v", err)), nil
	}
	shot, err := surf.screenshot(ctx, monitor)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting screenshot: %v", err)), nil
	}

	annotated := s.annotator.Annotate(shot.Image, snap.Elements, shot.Width, shot.Height, surf.sess.Refs)
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(annotated),
				MIMEType: "image/png",
			},
		},
	}, nil
}

func (s *Server) handleControlDiscover(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	interactiveOnly := boolParam(request.GetArguments(), "interactive_only", false)
	if err := s.bridge.ControlDiscover(ctx, interactiveOnly); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText("Element discovery completed. Use ui_snapshot to see results."), nil
}

func (s *Server) handleSDKConnect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url := stringParam(request.GetArguments(), "url", "")
	if err := s.bridge.SDKConnect(ctx, url); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText("Connected to SDK app at " + url), nil
}

func (s *Server) handleSDKDisconnect(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.bridge.SDKDisconnect(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText("Disconnected from SDK app"), nil
}

func (s *Server) handleSDKStatus(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.bridge.Status(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("SDK not connected: %v", err)), nil
	}
	if status.Connected {
		return mcp.NewToolResultText("SDK connected to " + status.AppURL), nil
	}
	return mcp.NewToolResultText("SDK not connected"), nil
}

// handleSDKScreenshot returns the raw capture; ui_annotated_screenshot and
// sdk_annotated_screenshot are the boxed variants.
func (s *Server) handleSDKScreenshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	monitor := intParam(request.GetArguments(), "monitor", -1)
	shot, err := s.bridge.SDKScreenshot(ctx, monitor)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(shot.Image),
				MIMEType: "image/png",
			},
		},
	}, nil
}

func (s *Server) handleSDKPageRefresh(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.bridge.SDKPageRefresh(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText("Page refreshed successfully"), nil
}

func (s *Server) handleSDKPageNavigate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url := stringParam(request.GetArguments(), "url", "")
	if url == "" {
		return mcp.NewToolResultError("Error: url is required"), nil
	}
	if err := s.bridge.SDKPageNavigate(ctx, url); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText("Navigated to: " + url), nil
}

func (s *Server) handleSDKPageBack(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.bridge.SDKPageBack(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText("Navigated back"), nil
}

func (s *Server) handleSDKPageForward(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.bridge.SDKPageForward(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText("Navigated forward"), nil
}

func (s *Server) handleSDKElements(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	contentOnly := boolParam(args, "content_only", false)
	contentTypes := stringSliceParam(args, "content_types")
	agentMode := boolParam(args, "agent_mode", false)
	maxElements := intParam(args, "max_elements", 0)
	maxContentLength := intParam(args, "max_content_length", 0)

	snap, err := s.bridge.SDKElements(ctx, contentOnly, contentTypes)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	elements := snap.Elements

	// Client-side filtering as fallback until the runner supports the
	// contentOnly/contentTypes parameters natively.
	if contentOnly {
		elements = model.FilterContent(elements)
	}
	if len(contentTypes) > 0 {
		elements = model.FilterContentTypes(elements, contentTypes)
	}

	if maxContentLength > 0 {
		for i := range elements {
			model.TruncateElement(&elements[i], maxContentLength)
		}
	}

	overflow := 0
	if maxElements > 0 && len(elements) > maxElements {
		overflow = len(elements) - maxElements
		elements = elements[:maxElements]
	}
	total := len(elements) + overflow

	filterDesc := ""
	if contentOnly {
		filterDesc = " (content only)"
	} else if len(contentTypes) > 0 {
		filterDesc = fmt.Sprintf(" (filtered: %s)", strings.Join(contentTypes, ", "))
	}

	var lines []string
	if agentMode {
		refs := s.sdk.sess.Refs
		refs.Reset()
		lines = append(lines, fmt.Sprintf("SDK Elements (%d)%s [agent mode]:", total, filterDesc), "")
		for _, el := range elements {
			lines = append(lines, model.FormatCompact(el, refs.Assign(el.ID)))
		}
	} else {
		lines = append(lines, fmt.Sprintf("SDK Elements (%d)%s:", total, filterDesc), "")
		for _, el := range elements {
			lines = append(lines, model.FormatSummary(el))
		}
	}
	if overflow > 0 {
		lines = append(lines, "", fmt.Sprintf("+%d more elements not shown", overflow))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) handleSDKDiscover(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	interactiveOnly := boolParam(args, "interactive_only", false)
	includeContent := boolParam(args, "include_content", true)
	contentRoles := stringSliceParam(args, "content_roles")

	result, err := s.bridge.SDKDiscover(ctx, interactiveOnly, includeContent, contentRoles)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}

	var descParts []string
	if interactiveOnly {
		descParts = append(descParts, "interactive only")
	} else if !includeContent {
		descParts = append(descParts, "excluding content")
	}
	if len(contentRoles) > 0 {
		descParts = append(descParts, "roles: "+strings.Join(contentRoles, ", "))
	}
	desc := ""
	if len(descParts) > 0 {
		desc = fmt.Sprintf(" (%s)", strings.Join(descParts, ", "))
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"Element discovery completed%s. Found %d elements. Use sdk_snapshot or sdk_elements to see results.",
		desc, result.Total)), nil
}
