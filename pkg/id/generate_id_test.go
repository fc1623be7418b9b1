package id

import (
	"encoding/hex"
	"testing"
)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	// length
	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	// lowercase hex only (no separators/prefixes)
	if !IsID32(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	// decodes to exactly 16 bytes
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestIsID32(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{NewID32(), true},
		{"", false},
		{"ABCDEF00000000000000000000000000", false}, // uppercase
		{"a1b2c3", false},                            // too short
		{"a1b2c3d4-e5f6-0000-0000-000000000000", false}, // uuid form
	}
	for _, tc := range tests {
		if got := IsID32(tc.in); got != tc.want {
			t.Fatalf("IsID32(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
