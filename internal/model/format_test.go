package model

import (
	"strings"
	"testing"
)

func labeledEl(id, typ, label string) Element {
	return Element{
		ID:    id,
		Type:  typ,
		Label: label,
		State: ElementState{Visible: true, Enabled: true},
	}
}

func TestFormatCompact(t *testing.T) {
	el := labeledEl("submit-button", "button", "Submit")
	el.State.Rect = &Rect{X: 10, Y: 20, Width: 80, Height: 30}

	got := FormatCompact(el, "@e1")
	for _, want := range []string{"@e1", "submit-button", "(button)", `"Submit"`, "[10,20 80x30]"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatCompact = %q, missing %q", got, want)
		}
	}
}

func TestFormatCompact_Flags(t *testing.T) {
	el := labeledEl("opt-in", "checkbox", "")
	el.State.Enabled = false
	el.State.Checked = true
	el.State.Value = "yes"

	got := FormatCompact(el, "@e1")
	for _, want := range []string{"disabled", "checked", "has-value"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatCompact = %q, missing flag %q", got, want)
		}
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("FormatCompact = %q, visible element flagged hidden", got)
	}
}

func TestFormatSummary_ContentRole(t *testing.T) {
	el := labeledEl("intro", "text", "Welcome")
	el.Category = CategoryContent
	el.ContentMetadata = &ContentMetadata{ContentRole: "heading"}

	got := FormatSummary(el)
	if !strings.Contains(got, "[content:heading]") {
		t.Errorf("FormatSummary = %q, missing content role", got)
	}
	if !strings.HasPrefix(got, "- intro (text): Welcome") {
		t.Errorf("FormatSummary = %q", got)
	}
}

func TestGroupByType(t *testing.T) {
	elements := []Element{
		labeledEl("b1", "button", ""),
		labeledEl("i1", "input", ""),
		labeledEl("b2", "button", ""),
		{ID: "x1", State: ElementState{Visible: true, Enabled: true}},
	}
	byType, types := GroupByType(elements)
	wantTypes := []string{"button", "input", "unknown"}
	if len(types) != len(wantTypes) {
		t.Fatalf("types = %v, want %v", types, wantTypes)
	}
	for i, want := range wantTypes {
		if types[i] != want {
			t.Errorf("types[%d] = %q, want %q", i, types[i], want)
		}
	}
	if len(byType["button"]) != 2 {
		t.Errorf("button group = %v, want 2 entries", byType["button"])
	}
}

func TestFormatSnapshot_AgentMode(t *testing.T) {
	refs := NewRefManager()
	refs.Assign("stale-id") // simulates refs left over from a prior snapshot

	elements := []Element{
		labeledEl("submit-button", "button", "Submit"),
		labeledEl("email-input", "input", "Email"),
	}
	got := FormatSnapshot("UI Snapshot", elements, SnapshotOptions{AgentMode: true, Refs: refs})

	if !strings.Contains(got, "UI Snapshot (2 elements, agent mode)") {
		t.Errorf("missing header: %q", got)
	}
	if !strings.Contains(got, "## button (1)") || !strings.Contains(got, "## input (1)") {
		t.Errorf("missing type groups: %q", got)
	}
	// Reset happened, so numbering restarts at @e1.
	if !strings.Contains(got, "@e1 submit-button") {
		t.Errorf("missing @e1 line: %q", got)
	}
	if _, err := refs.Resolve("@e1"); err != nil {
		t.Errorf("snapshot refs not resolvable: %v", err)
	}
}

func TestFormatSnapshot_Overflow(t *testing.T) {
	elements := []Element{labeledEl("a", "button", "")}
	got := FormatSnapshot("UI Snapshot", elements, SnapshotOptions{Overflow: 4})
	if !strings.Contains(got, "UI Snapshot (5 elements):") {
		t.Errorf("header should count overflow: %q", got)
	}
	if !strings.Contains(got, "+4 more elements not shown") {
		t.Errorf("missing overflow note: %q", got)
	}
}

func TestFormatDiff_Empty(t *testing.T) {
	got := FormatDiff(&Diff{}, NewRefManager())
	if got != "No changes detected." {
		t.Errorf("FormatDiff = %q", got)
	}
}

func TestFormatDiff_Full(t *testing.T) {
	refs := NewRefManager()
	refs.Assign("email-input")

	d := &Diff{
		Appeared:    []string{"toast-1"},
		Disappeared: []string{"spinner"},
		Modified: []ModifiedElement{{
			ID: "email-input",
			Changes: map[string]Change{
				"value":   {From: "", To: "hello"},
				"focused": {From: false, To: true},
			},
		}},
	}
	got := FormatDiff(d, refs)

	for _, want := range []string{
		"UI Diff:",
		"Appeared (1): toast-1",
		"Disappeared (1): spinner",
		"Modified (1):",
		"@e1 (email-input)",
		`value "" -> "hello"`,
		"focused false -> true",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatDiff = %q, missing %q", got, want)
		}
	}
}
