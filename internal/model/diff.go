package model

import "sync"

// Change records one tracked property's previous and new value.
type Change struct {
	From any `yaml:"from" json:"from"`
	To   any `yaml:"to"   json:"to"`
}

// ModifiedElement lists the changed properties of one surviving element.
type ModifiedElement struct {
	ID      string            `yaml:"id"      json:"id"`
	Changes map[string]Change `yaml:"changes" json:"changes"`
}

// Diff is the delta between two consecutive snapshots of one surface.
type Diff struct {
	Appeared    []string          `yaml:"appeared"    json:"appeared"`
	Disappeared []string          `yaml:"disappeared" json:"disappeared"`
	Modified    []ModifiedElement `yaml:"modified"    json:"modified"`
}

// Empty reports whether the diff contains no changes.
func (d *Diff) Empty() bool {
	return len(d.Appeared) == 0 && len(d.Disappeared) == 0 && len(d.Modified) == 0
}

// DiffTracker holds the latest snapshot of one surface for comparison with
// the next. One instance per surface; two surfaces inspected in the same
// process need two trackers or their histories interleave.
type DiffTracker struct {
	mu    sync.Mutex
	last  map[string]Element
	order []string
}

// NewDiffTracker returns a tracker with no history.
func NewDiffTracker() *DiffTracker {
	return &DiffTracker{}
}

// UpdateAndDiff stores the snapshot and returns a diff against the previous
// one, or nil on the very first call. Duplicate IDs within one snapshot are
// resolved first-wins.
func (t *DiffTracker) UpdateAndDiff(elements []Element) *Diff {
	newMap, newOrder := indexElements(elements)

	t.mu.Lock()
	defer t.mu.Unlock()

	var diff *Diff
	if t.last != nil {
		diff = computeDiff(t.last, t.order, newMap, newOrder)
	}
	t.last = newMap
	t.order = newOrder
	return diff
}

// DiffElements compares two element lists directly, without tracker state.
// Used when the previous snapshot comes from disk rather than memory.
func DiffElements(prev, curr []Element) *Diff {
	prevMap, prevOrder := indexElements(prev)
	currMap, currOrder := indexElements(curr)
	return computeDiff(prevMap, prevOrder, currMap, currOrder)
}

func indexElements(elements []Element) (map[string]Element, []string) {
	m := make(map[string]Element, len(elements))
	var order []string
	for _, el := range elements {
		if el.ID == "" {
			continue
		}
		if _, seen := m[el.ID]; seen {
			continue
		}
		m[el.ID] = el
		order = append(order, el.ID)
	}
	return m, order
}

func computeDiff(old map[string]Element, oldOrder []string, new map[string]Element, newOrder []string) *Diff {
	diff := &Diff{
		Appeared:    []string{},
		Disappeared: []string{},
		Modified:    []ModifiedElement{},
	}
	for _, id := range newOrder {
		if _, existed := old[id]; !existed {
			diff.Appeared = append(diff.Appeared, id)
		}
	}
	for _, id := range oldOrder {
		if _, exists := new[id]; !exists {
			diff.Disappeared = append(diff.Disappeared, id)
		}
	}
	for _, id := range newOrder {
		prev, existed := old[id]
		if !existed {
			continue
		}
		changes := trackedChanges(prev.State, new[id].State)
		if len(changes) > 0 {
			diff.Modified = append(diff.Modified, ModifiedElement{ID: id, Changes: changes})
		}
	}
	return diff
}

// trackedChanges compares the fixed set of tracked state properties. Other
// fields (rect, innerHTML, label) are deliberately not diffed.
func trackedChanges(prev, curr ElementState) map[string]Change {
	changes := make(map[string]Change)
	if prev.Visible != curr.Visible {
		changes["visible"] = Change{From: prev.Visible, To: curr.Visible}
	}
	if prev.Enabled != curr.Enabled {
		changes["enabled"] = Change{From: prev.Enabled, To: curr.Enabled}
	}
	if prev.Focused != curr.Focused {
		changes["focused"] = Change{From: prev.Focused, To: curr.Focused}
	}
	if prev.Checked != curr.Checked {
		changes["checked"] = Change{From: prev.Checked, To: curr.Checked}
	}
	if prev.Value != curr.Value {
		changes["value"] = Change{From: prev.Value, To: curr.Value}
	}
	if prev.TextContent != curr.TextContent {
		changes["textContent"] = Change{From: prev.TextContent, To: curr.TextContent}
	}
	if len(changes) == 0 {
		return nil
	}
	return changes
}
