package cmd

import (
	"context"
	"fmt"

	"github.com/qontinui/ui-bridge-mcp/internal/bridge"
	"github.com/qontinui/ui-bridge-mcp/internal/model"
)

// surfaceFuncs binds the --surface flag value to the right bridge endpoints.
type surfaceFuncs struct {
	title      string
	snapshot   func(ctx context.Context) (*model.Snapshot, error)
	getElement func(ctx context.Context, id string) (*model.Element, error)
	action     func(ctx context.Context, id, action string, params map[string]any) error
	screenshot func(ctx context.Context, monitor int) (*bridge.Screenshot, error)
}

// surfaceFor resolves a --surface flag value ("control" or "sdk").
func surfaceFor(client *bridge.Client, name string) (*surfaceFuncs, error) {
	switch name {
	case "control":
		return &surfaceFuncs{
			title:      "UI Snapshot",
			snapshot:   client.ControlSnapshot,
			getElement: client.ControlElement,
			action:     client.ControlAction,
			screenshot: client.ControlScreenshot,
		}, nil
	case "sdk":
		return &surfaceFuncs{
			title: "SDK Snapshot",
			snapshot: func(ctx context.Context) (*model.Snapshot, error) {
				return client.SDKSnapshot(ctx, true)
			},
			getElement: client.SDKElement,
			action:     client.SDKAction,
			screenshot: client.SDKScreenshot,
		}, nil
	default:
		return nil, fmt.Errorf("unknown surface: %s (use control or sdk)", name)
	}
}
