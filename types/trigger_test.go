package types

import (
	"errors"
	"strings"
	"testing"
)

func TestNewTrigger(t *testing.T) {
	tr, err := NewTrigger(0, "Rare")
	if err != nil {
		t.Fatalf("NewTrigger: %v", err)
	}
	if tr.Sample() != 0 || tr.Code() != "Rare" {
		t.Fatalf("unexpected trigger: %+v", tr)
	}
}

func TestNewTriggerCodeTooLong(t *testing.T) {
	_, err := NewTrigger(3, strings.Repeat("x", 9))
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestTriggerCodeExactlyEightBytes(t *testing.T) {
	tr, err := NewTrigger(5, strings.Repeat("x", 8))
	if err != nil {
		t.Fatalf("8-byte code should be accepted: %v", err)
	}
	if tr.Code() != strings.Repeat("x", 8) {
		t.Fatalf("unexpected code: %q", tr.Code())
	}
}

func TestTriggerEqual(t *testing.T) {
	a, _ := NewTrigger(0, "Rare")
	b, _ := NewTrigger(0, "Rare")
	c, _ := NewTrigger(3, "Frequent")

	if !a.Equal(b) {
		t.Fatalf("identical triggers should be equal")
	}
	if a.Equal(c) {
		t.Fatalf("differing triggers should not be equal")
	}
}
