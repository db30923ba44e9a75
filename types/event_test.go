package types

import (
	"testing"
	"time"
)

func TestEventImpedanceCloneDoesNotAlias(t *testing.T) {
	stamp := time.Now()
	e := EventImpedance{Stamp: stamp, Values: []float64{128000, 41000, 73000, 99000}}

	clone := e.Clone()
	if !clone.Equal(e) {
		t.Fatalf("clone should equal original")
	}

	clone.Values[0] = -1
	if e.Values[0] == -1 {
		t.Fatalf("mutating the clone's Values leaked into the original")
	}
}

func TestEventImpedanceEqual(t *testing.T) {
	stamp := time.Now()
	a := EventImpedance{Stamp: stamp, Values: []float64{1, 2, 3}}
	b := EventImpedance{Stamp: stamp, Values: []float64{1, 2, 3}}
	c := EventImpedance{Stamp: stamp, Values: []float64{1, 2, 4}}

	if !a.Equal(b) {
		t.Fatalf("equal impedance events compared unequal")
	}
	if a.Equal(c) {
		t.Fatalf("differing impedance events compared equal")
	}
}

func TestEventVideoEqual(t *testing.T) {
	stamp := time.Now()
	a := EventVideo{Stamp: stamp, Duration: 10, TriggerCode: 1, ConditionLabel: "A", Description: "d", VideoFile: "f.mp4"}
	b := a
	if !a.Equal(b) {
		t.Fatalf("identical video events compared unequal")
	}
	b.VideoFile = "other.mp4"
	if a.Equal(b) {
		t.Fatalf("differing video events compared equal")
	}
}

func TestEventEpochEqual(t *testing.T) {
	stamp := time.Now()
	a := EventEpoch{Stamp: stamp, Duration: 2, Offset: 0, TriggerCode: 3, ConditionLabel: "A"}
	b := a
	if !a.Equal(b) {
		t.Fatalf("identical epoch events compared unequal")
	}
	b.TriggerCode = 4
	if a.Equal(b) {
		t.Fatalf("differing epoch events compared equal")
	}
}
