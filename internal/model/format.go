package model

import (
	"fmt"
	"sort"
	"strings"
)

// FormatCompact renders a single-line agent-mode entry: ref, ID, type, label,
// bounds, content role, and state flags.
func FormatCompact(el Element, ref string) string {
	parts := []string{ref, el.ID, fmt.Sprintf("(%s)", el.Type)}
	if el.Label != "" {
		parts = append(parts, fmt.Sprintf("%q", el.Label))
	}
	if r := el.State.Rect; r != nil && !r.Empty() {
		parts = append(parts, fmt.Sprintf("[%.0f,%.0f %.0fx%.0f]", r.X, r.Y, r.Width, r.Height))
	}
	if el.Category == CategoryContent && el.ContentMetadata != nil && el.ContentMetadata.ContentRole != "" {
		parts = append(parts, "content:"+el.ContentMetadata.ContentRole)
	}
	var flags []string
	if !el.State.Visible {
		flags = append(flags, "hidden")
	}
	if !el.State.Enabled {
		flags = append(flags, "disabled")
	}
	if el.State.Value != "" {
		flags = append(flags, "has-value")
	}
	if el.State.Checked {
		flags = append(flags, "checked")
	}
	if el.State.Focused {
		flags = append(flags, "focused")
	}
	if len(flags) > 0 {
		parts = append(parts, strings.Join(flags, " "))
	}
	return strings.Join(parts, " ")
}

// FormatSummary renders the full (non-agent) listing line for an element.
func FormatSummary(el Element) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- %s (%s): %s", el.ID, el.Type, el.Label)
	if r := el.State.Rect; r != nil && !r.Empty() {
		fmt.Fprintf(&b, " @ (%.0f, %.0f, %.0fx%.0f)", r.X, r.Y, r.Width, r.Height)
	}
	var status []string
	if !el.State.Visible {
		status = append(status, "hidden")
	}
	if !el.State.Enabled {
		status = append(status, "disabled")
	}
	if len(status) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(status, ", "))
	}
	if el.Category == CategoryContent && el.ContentMetadata != nil && el.ContentMetadata.ContentRole != "" {
		fmt.Fprintf(&b, " [content:%s]", el.ContentMetadata.ContentRole)
	}
	return b.String()
}

// GroupByType buckets elements by type and returns the sorted type names.
func GroupByType(elements []Element) (map[string][]Element, []string) {
	byType := make(map[string][]Element)
	for _, el := range elements {
		t := el.Type
		if t == "" {
			t = "unknown"
		}
		byType[t] = append(byType[t], el)
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)
	return byType, types
}

// SnapshotOptions control snapshot formatting.
type SnapshotOptions struct {
	AgentMode       bool
	InteractiveOnly bool
	Overflow        int
	// Refs is required in agent mode; it is reset before assignment so refs
	// match element order in the rendered listing.
	Refs *RefManager
}

// FormatSnapshot renders a grouped-by-type element listing. In agent mode
// each element gets a compact line with a freshly assigned ref.
func FormatSnapshot(title string, elements []Element, opts SnapshotOptions) string {
	total := len(elements) + opts.Overflow
	var lines []string
	if opts.AgentMode {
		mode := "agent mode"
		if opts.InteractiveOnly {
			mode += ", interactive only"
		}
		lines = append(lines, fmt.Sprintf("%s (%d elements, %s)", title, total, mode), "")
		opts.Refs.Reset()
	} else {
		lines = append(lines, fmt.Sprintf("%s (%d elements):", title, total), "")
	}

	byType, types := GroupByType(elements)
	for _, t := range types {
		group := byType[t]
		lines = append(lines, fmt.Sprintf("## %s (%d)", t, len(group)))
		for _, el := range group {
			if opts.AgentMode {
				lines = append(lines, FormatCompact(el, opts.Refs.Assign(el.ID)))
			} else {
				lines = append(lines, FormatSummary(el))
			}
		}
		lines = append(lines, "")
	}

	if opts.Overflow > 0 {
		lines = append(lines, fmt.Sprintf("+%d more elements not shown", opts.Overflow))
	}
	return strings.Join(lines, "\n")
}

// FormatDiff renders a diff with refs alongside IDs where the surface's
// RefManager has issued them.
func FormatDiff(d *Diff, refs *RefManager) string {
	if d.Empty() {
		return "No changes detected."
	}

	withRef := func(id string) string {
		if ref, ok := refs.Lookup(id); ok {
			return fmt.Sprintf("%s (%s)", ref, id)
		}
		return id
	}

	lines := []string{"UI Diff:"}
	if len(d.Appeared) > 0 {
		labels := make([]string, len(d.Appeared))
		for i, id := range d.Appeared {
			labels[i] = withRef(id)
		}
		lines = append(lines, fmt.Sprintf("Appeared (%d): %s", len(d.Appeared), strings.Join(labels, ", ")))
	}
	if len(d.Disappeared) > 0 {
		labels := make([]string, len(d.Disappeared))
		for i, id := range d.Disappeared {
			labels[i] = withRef(id)
		}
		lines = append(lines, fmt.Sprintf("Disappeared (%d): %s", len(d.Disappeared), strings.Join(labels, ", ")))
	}
	if len(d.Modified) > 0 {
		lines = append(lines, fmt.Sprintf("Modified (%d):", len(d.Modified)))
		for _, m := range d.Modified {
			props := make([]string, 0, len(m.Changes))
			for prop := range m.Changes {
				props = append(props, prop)
			}
			sort.Strings(props)
			parts := make([]string, len(props))
			for i, prop := range props {
				c := m.Changes[prop]
				parts[i] = fmt.Sprintf("%s %s -> %s", prop, formatValue(c.From), formatValue(c.To))
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", withRef(m.ID), strings.Join(parts, ", ")))
		}
	}
	return strings.Join(lines, "\n")
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
