package bridge

import (
	"context"
	"fmt"
	"net/url"

	"github.com/qontinui/ui-bridge-mcp/internal/model"
)

// Control mode addresses the runner's own Tauri webview UI.

// ControlSnapshot fetches all registered elements of the runner's webview.
func (c *Client) ControlSnapshot(ctx context.Context) (*model.Snapshot, error) {
	var snap model.Snapshot
	resp, err := c.get(ctx, "/ui-bridge/control/snapshot")
	if err := c.call(resp, err, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ControlDiscover triggers a fresh element registration pass.
func (c *Client) ControlDiscover(ctx context.Context, interactiveOnly bool) error {
	ctx, cancel := context.WithTimeout(ctx, c.discoveryTimeout)
	defer cancel()
	resp, err := c.post(ctx, "/ui-bridge/control/discover", map[string]any{
		"interactive_only": interactiveOnly,
	})
	return c.call(resp, err, nil)
}

// ControlElement fetches full details for one element.
func (c *Client) ControlElement(ctx context.Context, elementID string) (*model.Element, error) {
	var el model.Element
	resp, err := c.get(ctx, "/ui-bridge/control/element/"+url.PathEscape(elementID))
	if err := c.call(resp, err, &el); err != nil {
		return nil, err
	}
	return &el, nil
}

// ControlAction performs a named action (click, type, focus, ...) on an
// element. params may be nil for parameterless actions.
func (c *Client) ControlAction(ctx context.Context, elementID, action string, params map[string]any) error {
	payload := map[string]any{"action": action}
	if len(params) > 0 {
		payload["params"] = params
	}
	endpoint := fmt.Sprintf("/ui-bridge/control/element/%s/action", url.PathEscape(elementID))
	resp, err := c.post(ctx, endpoint, payload)
	return c.call(resp, err, nil)
}

// ControlScreenshot captures the monitor showing the runner's UI.
// monitor < 0 selects the primary monitor.
func (c *Client) ControlScreenshot(ctx context.Context, monitor int) (*Screenshot, error) {
	payload := map[string]any{}
	if monitor >= 0 {
		payload["monitor"] = monitor
	}
	var w screenshotWire
	resp, err := c.post(ctx, "/ui-bridge/control/screenshot", payload)
	if err := c.call(resp, err, &w); err != nil {
		return nil, err
	}
	return decodeScreenshot(w)
}
