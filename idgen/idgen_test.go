package idgen

import (
	"strings"
	"testing"
)

func TestNanoID(t *testing.T) {
	gen := NanoID(8)
	a, b := gen(), gen()
	if len(a) != 8 || len(b) != 8 {
		t.Fatalf("lengths = %d, %d, want 8", len(a), len(b))
	}
	if a == b {
		t.Error("two generated IDs should differ")
	}
	for _, r := range a {
		if !strings.ContainsRune("0123456789abcdefghijklmnopqrstuvwxyz", r) {
			t.Errorf("unexpected character %q in %q", r, a)
		}
	}
}

func TestUUIDv7Sortable(t *testing.T) {
	gen := UUIDv7()
	a, b := gen(), gen()
	if len(a) != 36 {
		t.Fatalf("len = %d, want 36", len(a))
	}
	if a >= b {
		t.Errorf("v7 IDs should sort by creation order: %q >= %q", a, b)
	}
}

func TestPrefixed(t *testing.T) {
	gen := Prefixed("rpt_", NanoID(4))
	id := gen()
	if !strings.HasPrefix(id, "rpt_") {
		t.Errorf("id = %q, want rpt_ prefix", id)
	}
	if len(id) != 8 {
		t.Errorf("len = %d, want 8", len(id))
	}
}
