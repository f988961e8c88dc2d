package session

import (
	"testing"

	"github.com/qontinui/ui-bridge-mcp/internal/model"
)

func TestSessionsAreIndependent(t *testing.T) {
	s := NewSessions()

	ref := s.Control.Refs.Assign("control-button")
	if ref != "@e1" {
		t.Fatalf("control ref = %q, want @e1", ref)
	}

	// Same numbering on the other surface, different element.
	if got := s.SDK.Refs.Assign("sdk-button"); got != "@e1" {
		t.Errorf("sdk ref = %q, want @e1", got)
	}

	// A control ref never resolves through the SDK surface.
	id, err := s.Control.Refs.Resolve("@e1")
	if err != nil || id != "control-button" {
		t.Errorf("control Resolve = %q, %v", id, err)
	}
	if id, _ := s.SDK.Refs.Resolve("@e1"); id == "control-button" {
		t.Error("sdk surface resolved a control element")
	}
}

func TestSessionDiffIsolation(t *testing.T) {
	s := NewSessions()
	el := []model.Element{{ID: "a", State: model.ElementState{Visible: true, Enabled: true}}}

	s.Control.Diff.UpdateAndDiff(el)
	// First SDK diff still has no baseline.
	if diff := s.SDK.Diff.UpdateAndDiff(el); diff != nil {
		t.Errorf("sdk first diff = %+v, want nil", diff)
	}
}
