package types

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustElectrode(t *testing.T, label, reference string) Electrode {
	t.Helper()
	e, err := NewElectrode(label, reference)
	if err != nil {
		t.Fatalf("NewElectrode(%q, %q): %v", label, reference, err)
	}
	return e
}

func TestElectrodeDefaults(t *testing.T) {
	x, err := NewElectrodeScaled("fp1", "ref", "uV", 1, 1.0/256.0)
	if err != nil {
		t.Fatalf("NewElectrodeScaled: %v", err)
	}
	if x.Label() != "fp1" || x.Reference() != "ref" || x.Unit() != "uV" {
		t.Fatalf("unexpected fields: %+v", x)
	}
	if x.Iscale() != 1 || x.Rscale() != 1.0/256.0 {
		t.Fatalf("unexpected scale: iscale=%v rscale=%v", x.Iscale(), x.Rscale())
	}

	y := mustElectrode(t, "fp1", "ref")
	if !cmp.Equal(x, y, cmp.AllowUnexported(Electrode{}), cmpopts.EquateApprox(0, 1e-15)) {
		t.Fatalf("NewElectrode default scale diverges from explicit defaults: %s",
			cmp.Diff(x, y, cmp.AllowUnexported(Electrode{}), cmpopts.EquateApprox(0, 1e-15)))
	}
}

func TestElectrodeMutationAndEquality(t *testing.T) {
	x := mustElectrode(t, "fp1", "ref")

	y := x
	if !y.Equal(x) {
		t.Fatalf("copy of x should equal x")
	}

	if err := y.SetLabel("fp2"); err != nil {
		t.Fatalf("SetLabel: %v", err)
	}
	if y.Equal(x) {
		t.Fatalf("mutated label copy should not equal x")
	}

	y = x
	if err := y.SetReference("other"); err != nil {
		t.Fatalf("SetReference: %v", err)
	}
	if y.Equal(x) {
		t.Fatalf("mutated reference copy should not equal x")
	}

	y = x
	if err := y.SetUnit("nV"); err != nil {
		t.Fatalf("SetUnit: %v", err)
	}
	if y.Equal(x) {
		t.Fatalf("mutated unit copy should not equal x")
	}

	y = x
	if err := y.SetIscale(3); err != nil {
		t.Fatalf("SetIscale: %v", err)
	}
	if y.Equal(x) {
		t.Fatalf("mutated iscale copy should not equal x")
	}

	y = x
	if err := y.SetRscale(3); err != nil {
		t.Fatalf("SetRscale: %v", err)
	}
	if y.Equal(x) {
		t.Fatalf("mutated rscale copy should not equal x")
	}
}

func TestElectrodeValidation(t *testing.T) {
	x := mustElectrode(t, "fp1", "ref")

	labelCases := []string{"", "way_too_long", "a space", ";begin", "[begin"}
	for _, label := range labelCases {
		y := x
		if err := y.SetLabel(label); !errors.Is(err, ErrInvalidField) {
			t.Errorf("SetLabel(%q): expected ErrInvalidField, got %v", label, err)
		}
		if !y.Equal(x) {
			t.Errorf("SetLabel(%q): receiver mutated on failure", label)
		}
	}

	unitCases := []string{"", "way_too_long", "a space", "V"}
	for _, unit := range unitCases {
		y := x
		if err := y.SetUnit(unit); !errors.Is(err, ErrInvalidField) {
			t.Errorf("SetUnit(%q): expected ErrInvalidField, got %v", unit, err)
		}
	}

	refCases := []string{"way_too_long", "a space"}
	for _, ref := range refCases {
		y := x
		if err := y.SetReference(ref); !errors.Is(err, ErrInvalidField) {
			t.Errorf("SetReference(%q): expected ErrInvalidField, got %v", ref, err)
		}
	}

	for _, status := range []string{"way_too_long", "a space"} {
		y := x
		if err := y.SetStatus(status); !errors.Is(err, ErrInvalidField) {
			t.Errorf("SetStatus(%q): expected ErrInvalidField, got %v", status, err)
		}
	}

	for _, typ := range []string{"way_too_long", "a space"} {
		y := x
		if err := y.SetType(typ); !errors.Is(err, ErrInvalidField) {
			t.Errorf("SetType(%q): expected ErrInvalidField, got %v", typ, err)
		}
	}

	for _, scale := range []float64{
		math.Inf(1),
		math.Inf(-1),
	} {
		y := x
		if err := y.SetIscale(scale); !errors.Is(err, ErrInvalidField) {
			t.Errorf("SetIscale(%v): expected ErrInvalidField, got %v", scale, err)
		}
		y = x
		if err := y.SetRscale(scale); !errors.Is(err, ErrInvalidField) {
			t.Errorf("SetRscale(%v): expected ErrInvalidField, got %v", scale, err)
		}
	}

	if err := x.SetIscale(0); !errors.Is(err, ErrInvalidField) {
		t.Errorf("SetIscale(0): expected ErrInvalidField, got %v", err)
	}
}

func TestElectrodesFromPairsAndTriples(t *testing.T) {
	want := mustElectrode(t, "fp1", "ref")

	pair, err := NewElectrode("fp1", "ref")
	if err != nil {
		t.Fatalf("NewElectrode: %v", err)
	}
	if !pair.Equal(want) {
		t.Fatalf("pair-constructed electrode diverges: %+v vs %+v", pair, want)
	}

	triple, err := NewElectrodeScaled("fp1", "ref", "uV", 1, 1.0/256.0)
	if err != nil {
		t.Fatalf("NewElectrodeScaled: %v", err)
	}
	if !triple.Equal(want) {
		t.Fatalf("triple-constructed electrode diverges: %+v vs %+v", triple, want)
	}

	es := Electrodes{want, want}
	clone := es.Clone()
	clone[0].SetLabel("fp2")
	if es[0].Equal(clone[0]) {
		t.Fatalf("Clone aliased the original slice")
	}
	if !es.Equal(Electrodes{want, want}) {
		t.Fatalf("original slice mutated through clone")
	}
}
