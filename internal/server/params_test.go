package server

import (
	"reflect"
	"testing"
)

func TestStringParam(t *testing.T) {
	args := map[string]interface{}{"s": "x", "n": 3.0}
	if got := stringParam(args, "s", "d"); got != "x" {
		t.Errorf("stringParam = %q", got)
	}
	if got := stringParam(args, "n", "d"); got != "d" {
		t.Errorf("wrong type should fall back to default, got %q", got)
	}
	if got := stringParam(args, "missing", "d"); got != "d" {
		t.Errorf("missing key should use default, got %q", got)
	}
}

func TestBoolParam(t *testing.T) {
	args := map[string]interface{}{"b": true, "s": "true"}
	if !boolParam(args, "b", false) {
		t.Error("boolParam(b) = false")
	}
	if boolParam(args, "s", false) {
		t.Error("string value should not count as bool")
	}
	if !boolParam(args, "missing", true) {
		t.Error("missing key should use default")
	}
}

func TestIntParam(t *testing.T) {
	// JSON numbers decode as float64.
	args := map[string]interface{}{"f": 42.0, "i": 7, "s": "42"}
	if got := intParam(args, "f", 0); got != 42 {
		t.Errorf("intParam(f) = %d", got)
	}
	if got := intParam(args, "i", 0); got != 7 {
		t.Errorf("intParam(i) = %d", got)
	}
	if got := intParam(args, "s", 9); got != 9 {
		t.Errorf("intParam(s) = %d, want default", got)
	}
}

func TestStringSliceParam(t *testing.T) {
	args := map[string]interface{}{
		"roles": []interface{}{"heading", "table", 3.0},
		"bad":   "heading",
	}
	if got := stringSliceParam(args, "roles"); !reflect.DeepEqual(got, []string{"heading", "table"}) {
		t.Errorf("stringSliceParam = %v", got)
	}
	if got := stringSliceParam(args, "bad"); got != nil {
		t.Errorf("non-array should return nil, got %v", got)
	}
	if got := stringSliceParam(args, "missing"); got != nil {
		t.Errorf("missing key should return nil, got %v", got)
	}
}
