package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// actionSpec describes one element-action tool registered for both surfaces.
// The runner receives the action name plus any params built from the tool
// arguments; the agent receives the confirm message.
type actionSpec struct {
	tool        string
	action      string
	description string
	extraParams []mcp.ToolOption

	// params builds the action payload. Nil means no payload.
	params func(args map[string]interface{}) map[string]any
	// confirm renders the success message for a resolved element ID.
	confirm func(id string, args map[string]interface{}) string
}

var actionSpecs = []actionSpec{
	{
		tool:        "click",
		action:      "click",
		description: "Click an element. Use a snapshot first to find the element_id.",
		confirm: func(id string, _ map[string]interface{}) string {
			return "Clicked element: " + id
		},
	},
	{
		tool:        "type",
		action:      "type",
		description: "Type text into an input element",
		extraParams: []mcp.ToolOption{
			mcp.WithString("text", mcp.Description("The text to type"), mcp.Required()),
		},
		params: func(args map[string]interface{}) map[string]any {
			return map[string]any{"text": stringParam(args, "text", "")}
		},
		confirm: func(id string, args map[string]interface{}) string {
			return fmt.Sprintf("Typed '%s' into element: %s", stringParam(args, "text", ""), id)
		},
	},
	{
		tool:        "focus",
		action:      "focus",
		description: "Focus an element",
		confirm: func(id string, _ map[string]interface{}) string {
			return "Focused element: " + id
		},
	},
	{
		tool:        "blur",
		action:      "blur",
		description: "Remove focus from an element",
		confirm: func(id string, _ map[string]interface{}) string {
			return "Blurred element: " + id
		},
	},
	{
		tool:        "hover",
		action:      "hover",
		description: "Hover over an element",
		confirm: func(id string, _ map[string]interface{}) string {
			return "Hovered element: " + id
		},
	},
	{
		tool:        "double_click",
		action:      "doubleClick",
		description: "Double-click an element",
		confirm: func(id string, _ map[string]interface{}) string {
			return "Double-clicked element: " + id
		},
	},
	{
		tool:        "right_click",
		action:      "rightClick",
		description: "Right-click an element",
		confirm: func(id string, _ map[string]interface{}) string {
			return "Right-clicked element: " + id
		},
	},
	{
		tool:        "clear",
		action:      "clear",
		description: "Clear the value of an input element",
		confirm: func(id string, _ map[string]interface{}) string {
			return "Cleared element: " + id
		},
	},
	{
		tool:        "select",
		action:      "select",
		description: "Select an option in a dropdown/select element",
		extraParams: []mcp.ToolOption{
			mcp.WithString("value", mcp.Description("The value to select"), mcp.Required()),
			mcp.WithBoolean("by_label", mcp.Description("Select by label text instead of value")),
		},
		params: func(args map[string]interface{}) map[string]any {
			p := map[string]any{"value": stringParam(args, "value", "")}
			if boolParam(args, "by_label", false) {
				p["byLabel"] = true
			}
			return p
		},
		confirm: func(id string, args map[string]interface{}) string {
			return fmt.Sprintf("Selected '%s' in element: %s", stringParam(args, "value", ""), id)
		},
	},
	{
		tool:        "scroll",
		action:      "scroll",
		description: "Scroll within an element",
		extraParams: []mcp.ToolOption{
			mcp.WithString("direction", mcp.Description("Scroll direction: up, down, left, right")),
			mcp.WithNumber("amount", mcp.Description("Scroll amount in pixels")),
		},
		params: func(args map[string]interface{}) map[string]any {
			p := map[string]any{}
			if dir := stringParam(args, "direction", ""); dir != "" {
				p["direction"] = dir
			}
			if _, ok := args["amount"]; ok {
				p["amount"] = floatParam(args, "amount", 0)
			}
			return p
		},
		confirm: func(id string, _ map[string]interface{}) string {
			return "Scrolled element: " + id
		},
	},
	{
		tool:        "check",
		action:      "check",
		description: "Check a checkbox element",
		confirm: func(id string, _ map[string]interface{}) string {
			return "Checked element: " + id
		},
	},
	{
		tool:        "uncheck",
		action:      "uncheck",
		description: "Uncheck a checkbox element",
		confirm: func(id string, _ map[string]interface{}) string {
			return "Unchecked element: " + id
		},
	},
	{
		tool:        "toggle",
		action:      "toggle",
		description: "Toggle a checkbox element",
		confirm: func(id string, _ map[string]interface{}) string {
			return "Toggled element: " + id
		},
	},
	{
		tool:        "set_value",
		action:      "setValue",
		description: "Set the value of an input element directly",
		extraParams: []mcp.ToolOption{
			mcp.WithString("value", mcp.Description("The value to set"), mcp.Required()),
		},
		params: func(args map[string]interface{}) map[string]any {
			return map[string]any{"value": stringParam(args, "value", "")}
		},
		confirm: func(id string, args map[string]interface{}) string {
			return fmt.Sprintf("Set value '%s' on element: %s", stringParam(args, "value", ""), id)
		},
	},
	{
		tool:        "submit",
		action:      "submit",
		description: "Submit the form containing the element",
		confirm: func(id string, _ map[string]interface{}) string {
			return "Submitted form for element: " + id
		},
	},
	{
		tool:        "reset",
		action:      "reset",
		description: "Reset the form containing the element",
		confirm: func(id string, _ map[string]interface{}) string {
			return "Reset form for element: " + id
		},
	},
}
