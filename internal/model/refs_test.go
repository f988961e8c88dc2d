package model

import (
	"testing"
)

func TestAssign_Sequential(t *testing.T) {
	m := NewRefManager()
	if got := m.Assign("submit-button"); got != "@e1" {
		t.Errorf("first Assign = %q, want %q", got, "@e1")
	}
	if got := m.Assign("email-input"); got != "@e2" {
		t.Errorf("second Assign = %q, want %q", got, "@e2")
	}
	if got := m.Assign("nav-home"); got != "@e3" {
		t.Errorf("third Assign = %q, want %q", got, "@e3")
	}
}

func TestAssign_Idempotent(t *testing.T) {
	m := NewRefManager()
	first := m.Assign("submit-button")
	m.Assign("email-input")
	again := m.Assign("submit-button")
	if again != first {
		t.Errorf("re-Assign = %q, want %q", again, first)
	}
	if got := m.Assign("nav-home"); got != "@e3" {
		t.Errorf("counter advanced on re-Assign: next ref = %q, want %q", got, "@e3")
	}
}

func TestResolve_RoundTrip(t *testing.T) {
	m := NewRefManager()
	ref := m.Assign("submit-button")
	id, err := m.Resolve(ref)
	if err != nil {
		t.Fatalf("Resolve(%q) error: %v", ref, err)
	}
	if id != "submit-button" {
		t.Errorf("Resolve(%q) = %q, want %q", ref, id, "submit-button")
	}
}

func TestResolve_PassThrough(t *testing.T) {
	m := NewRefManager()
	tests := []string{"submit-button", "e1", "@x1", "@e", "@e1x", ""}
	for _, input := range tests {
		got, err := m.Resolve(input)
		if err != nil {
			t.Errorf("Resolve(%q) error: %v", input, err)
			continue
		}
		if got != input {
			t.Errorf("Resolve(%q) = %q, want pass-through", input, got)
		}
	}
}

func TestResolve_UnknownRef(t *testing.T) {
	m := NewRefManager()
	m.Assign("submit-button")
	_, err := m.Resolve("@e99")
	if err == nil {
		t.Fatal("Resolve(@e99) expected error, got nil")
	}
	want := "unknown ref @e99: take a new snapshot to refresh refs"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestReset(t *testing.T) {
	m := NewRefManager()
	m.Assign("submit-button")
	m.Assign("email-input")
	m.Reset()

	if _, err := m.Resolve("@e1"); err == nil {
		t.Error("Resolve(@e1) after Reset expected error, got nil")
	}
	if got := m.Assign("nav-home"); got != "@e1" {
		t.Errorf("first Assign after Reset = %q, want %q", got, "@e1")
	}
}

func TestLookup(t *testing.T) {
	m := NewRefManager()
	ref := m.Assign("submit-button")

	got, ok := m.Lookup("submit-button")
	if !ok || got != ref {
		t.Errorf("Lookup(submit-button) = %q, %v, want %q, true", got, ok, ref)
	}
	if _, ok := m.Lookup("never-seen"); ok {
		t.Error("Lookup(never-seen) = true, want false")
	}
}
