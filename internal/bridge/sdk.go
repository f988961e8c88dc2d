package bridge

import (
	"context"
	"fmt"
	"net/url"

	"github.com/qontinui/ui-bridge-mcp/internal/model"
)

// SDK mode addresses an external SDK-integrated app the runner is connected to.

// SDKStatus describes the runner's connection to the external app.
type SDKStatus struct {
	Connected bool   `json:"connected"`
	AppURL    string `json:"app_url,omitempty"`
}

// SDKConnect points the runner at an SDK-integrated app.
func (c *Client) SDKConnect(ctx context.Context, appURL string) error {
	resp, err := c.post(ctx, "/sdk/connect", map[string]any{"url": appURL})
	return c.call(resp, err, nil)
}

// SDKDisconnect drops the current SDK app connection.
func (c *Client) SDKDisconnect(ctx context.Context) error {
	resp, err := c.post(ctx, "/sdk/disconnect", nil)
	return c.call(resp, err, nil)
}

// Status reports whether an SDK app is connected and at which URL.
func (c *Client) Status(ctx context.Context) (*SDKStatus, error) {
	var status SDKStatus
	resp, err := c.get(ctx, "/sdk/status")
	if err := c.call(resp, err, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SDKSnapshot fetches the SDK app's element snapshot.
func (c *Client) SDKSnapshot(ctx context.Context, includeContent bool) (*model.Snapshot, error) {
	var snap model.Snapshot
	resp, err := c.post(ctx, "/sdk/snapshot", map[string]any{
		"include_content": includeContent,
	})
	if err := c.call(resp, err, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// SDKElements lists registered elements, optionally filtered server-side.
func (c *Client) SDKElements(ctx context.Context, contentOnly bool, contentTypes []string) (*model.Snapshot, error) {
	payload := map[string]any{}
	if contentOnly {
		payload["contentOnly"] = true
	}
	if len(contentTypes) > 0 {
		payload["contentTypes"] = contentTypes
	}
	var snap model.Snapshot
	resp, err := c.post(ctx, "/sdk/elements", payload)
	if err := c.call(resp, err, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// DiscoverResult reports how many elements a discovery pass found.
type DiscoverResult struct {
	Total int `json:"total"`
}

// SDKDiscover forces a fresh scan of the SDK app's page.
func (c *Client) SDKDiscover(ctx context.Context, interactiveOnly, includeContent bool, contentRoles []string) (*DiscoverResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.discoveryTimeout)
	defer cancel()
	payload := map[string]any{
		"interactive_only": interactiveOnly,
		"include_content":  includeContent,
	}
	if len(contentRoles) > 0 {
		payload["content_roles"] = contentRoles
	}
	var result DiscoverResult
	resp, err := c.post(ctx, "/sdk/discover", payload)
	if err := c.call(resp, err, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SDKElement fetches full details for one element of the SDK app.
func (c *Client) SDKElement(ctx context.Context, elementID string) (*model.Element, error) {
	var el model.Element
	resp, err := c.get(ctx, "/sdk/element/"+url.PathEscape(elementID))
	if err := c.call(resp, err, &el); err != nil {
		return nil, err
	}
	return &el, nil
}

// SDKAction performs a named action on an element of the SDK app.
func (c *Client) SDKAction(ctx context.Context, elementID, action string, params map[string]any) error {
	payload := map[string]any{"action": action}
	if len(params) > 0 {
		payload["params"] = params
	}
	endpoint := fmt.Sprintf("/sdk/element/%s/action", url.PathEscape(elementID))
	resp, err := c.post(ctx, endpoint, payload)
	return c.call(resp, err, nil)
}

// SDKPageRefresh reloads the SDK app's current page. The bridge connection
// re-establishes itself after the reload.
func (c *Client) SDKPageRefresh(ctx context.Context) error {
	resp, err := c.post(ctx, "/sdk/page/refresh", nil)
	return c.call(resp, err, nil)
}

// SDKPageNavigate changes the SDK app's page location.
func (c *Client) SDKPageNavigate(ctx context.Context, pageURL string) error {
	resp, err := c.post(ctx, "/sdk/page/navigate", map[string]any{"url": pageURL})
	return c.call(resp, err, nil)
}

// SDKPageBack goes back in the SDK app's browser history.
func (c *Client) SDKPageBack(ctx context.Context) error {
	resp, err := c.post(ctx, "/sdk/page/back", nil)
	return c.call(resp, err, nil)
}

// SDKPageForward goes forward in the SDK app's browser history.
func (c *Client) SDKPageForward(ctx context.Context) error {
	resp, err := c.post(ctx, "/sdk/page/forward", nil)
	return c.call(resp, err, nil)
}

// SDKScreenshot captures the monitor showing the SDK app.
// monitor < 0 selects the primary monitor.
func (c *Client) SDKScreenshot(ctx context.Context, monitor int) (*Screenshot, error) {
	payload := map[string]any{}
	if monitor >= 0 {
		payload["monitor"] = monitor
	}
	var w screenshotWire
	resp, err := c.post(ctx, "/sdk/screenshot", payload)
	if err := c.call(resp, err, &w); err != nil {
		return nil, err
	}
	return decodeScreenshot(w)
}
