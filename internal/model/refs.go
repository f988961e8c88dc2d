package model

import (
	"fmt"
	"regexp"
	"sync"
)

// refPattern matches the compact ref syntax: @e followed by digits.
var refPattern = regexp.MustCompile(`^@e\d+$`)

// RefManager assigns compact refs (@e1, @e2, ...) to element IDs so agents
// can address elements without repeating long IDs. Refs are scoped to one
// surface and valid until the next Reset.
//
// MCP tool calls may be dispatched concurrently, so all state is guarded by
// a mutex.
type RefManager struct {
	mu      sync.Mutex
	counter int
	refToID map[string]string
	idToRef map[string]string
}

// NewRefManager returns an empty RefManager.
func NewRefManager() *RefManager {
	return &RefManager{
		refToID: make(map[string]string),
		idToRef: make(map[string]string),
	}
}

// Reset clears all mappings and restarts numbering. Call at the start of
// each full snapshot rendering so stale refs cannot resolve against a
// snapshot they were not issued for.
func (m *RefManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter = 0
	m.refToID = make(map[string]string)
	m.idToRef = make(map[string]string)
}

// Assign returns the ref for an element ID, allocating the next sequential
// ref on first sight. Re-assigning a known ID returns the existing ref.
func (m *RefManager) Assign(elementID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ref, ok := m.idToRef[elementID]; ok {
		return ref
	}
	m.counter++
	ref := fmt.Sprintf("@e%d", m.counter)
	m.refToID[ref] = elementID
	m.idToRef[elementID] = ref
	return ref
}

// Lookup returns the ref previously assigned to an ID without allocating.
func (m *RefManager) Lookup(elementID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ref, ok := m.idToRef[elementID]
	return ref, ok
}

// Resolve maps a ref back to its element ID. Input that doesn't use the ref
// syntax is passed through unchanged, so callers can always address elements
// by their real ID. A well-formed but unknown ref is an error: falling back
// to the literal string would silently target a nonexistent element.
func (m *RefManager) Resolve(refOrID string) (string, error) {
	if !refPattern.MatchString(refOrID) {
		return refOrID, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.refToID[refOrID]
	if !ok {
		return "", fmt.Errorf("unknown ref %s: take a new snapshot to refresh refs", refOrID)
	}
	return id, nil
}
