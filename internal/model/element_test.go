package model

import (
	"encoding/json"
	"testing"
)

func TestElementStateUnmarshal_Defaults(t *testing.T) {
	var state ElementState
	if err := json.Unmarshal([]byte(`{"value":"x"}`), &state); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !state.Visible {
		t.Error("Visible = false, want default true when omitted")
	}
	if !state.Enabled {
		t.Error("Enabled = false, want default true when omitted")
	}
	if state.Value != "x" {
		t.Errorf("Value = %q, want x", state.Value)
	}
}

func TestElementStateUnmarshal_ExplicitFalse(t *testing.T) {
	var state ElementState
	if err := json.Unmarshal([]byte(`{"visible":false,"enabled":false,"focused":true}`), &state); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if state.Visible {
		t.Error("Visible = true, want explicit false preserved")
	}
	if state.Enabled {
		t.Error("Enabled = true, want explicit false preserved")
	}
	if !state.Focused {
		t.Error("Focused = false, want true")
	}
}

func TestElementUnmarshal_Full(t *testing.T) {
	payload := `{
		"id": "submit-button",
		"type": "button",
		"label": "Submit",
		"category": "interactive",
		"state": {"rect": {"x": 10, "y": 20, "width": 80, "height": 30}}
	}`
	var el Element
	if err := json.Unmarshal([]byte(payload), &el); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if el.ID != "submit-button" || el.Type != "button" || el.Label != "Submit" {
		t.Errorf("element = %+v", el)
	}
	if el.Category != CategoryInteractive {
		t.Errorf("Category = %q, want interactive", el.Category)
	}
	if el.State.Rect == nil || el.State.Rect.Width != 80 {
		t.Errorf("Rect = %+v, want width 80", el.State.Rect)
	}
	if !el.State.Visible || !el.State.Enabled {
		t.Error("state defaults not applied through Element unmarshal")
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{X: 5, Y: 5}).Empty() {
		t.Error("zero-size rect should be empty")
	}
	if (Rect{Width: 1, Height: 1}).Empty() {
		t.Error("sized rect should not be empty")
	}
}

func TestFilterInteractive(t *testing.T) {
	elements := []Element{
		{ID: "btn", Category: CategoryInteractive},
		{ID: "heading", Category: CategoryContent},
		{ID: "legacy"}, // no category reported
	}
	got := FilterInteractive(elements)
	if len(got) != 2 || got[0].ID != "btn" || got[1].ID != "legacy" {
		t.Errorf("FilterInteractive = %v", got)
	}
}

func TestFilterContentTypes(t *testing.T) {
	elements := []Element{
		{ID: "h1", Type: "text", ContentMetadata: &ContentMetadata{ContentRole: "heading"}},
		{ID: "p1", Type: "text", ContentMetadata: &ContentMetadata{ContentRole: "paragraph"}},
		{ID: "t1", Type: "table"},
	}
	got := FilterContentTypes(elements, []string{"heading", "table"})
	if len(got) != 2 || got[0].ID != "h1" || got[1].ID != "t1" {
		t.Errorf("FilterContentTypes = %v", got)
	}
	if got := FilterContentTypes(elements, nil); len(got) != 3 {
		t.Errorf("empty filter should pass all elements, got %v", got)
	}
}
