// Package session holds the per-surface mutable state of an agent session:
// the ref alias table and the snapshot history used for diffing. State is
// owned by whoever serves the session (MCP server or a CLI invocation), not
// by package globals, so concurrent sessions and tests stay independent.
package session

import "github.com/qontinui/ui-bridge-mcp/internal/model"

// Session is the agent-mode state for one logical surface.
type Session struct {
	Refs *model.RefManager
	Diff *model.DiffTracker
}

// New returns a Session with fresh ref and diff state.
func New() *Session {
	return &Session{
		Refs: model.NewRefManager(),
		Diff: model.NewDiffTracker(),
	}
}

// Sessions groups the two surfaces the bridge can inspect. Each surface owns
// its own ref numbering and snapshot history; a ref issued on one surface
// never resolves against the other.
type Sessions struct {
	Control *Session
	SDK     *Session
}

// NewSessions returns independent sessions for both surfaces.
func NewSessions() *Sessions {
	return &Sessions{
		Control: New(),
		SDK:     New(),
	}
}
