package types

import "testing"

func TestFileVersion(t *testing.T) {
	v := NewFileVersion(1, 2)
	if v.Major() != 1 || v.Minor() != 2 {
		t.Fatalf("unexpected version: %+v", v)
	}

	same := NewFileVersion(1, 2)
	if !v.Equal(same) {
		t.Fatalf("equal versions compared unequal")
	}

	other := NewFileVersion(1, 3)
	if v.Equal(other) {
		t.Fatalf("differing versions compared equal")
	}
}
