package types

// Electrode describes one signal channel: its label, reference, unit of
// measurement and the per-channel quantisation scale applied to input
// samples: stored = round(input / (iscale*rscale)).
//
// All fields are unexported; mutation goes through validating setters that
// leave the receiver unchanged on failure (strong exception safety, per
// spec §7). Equality is field-wise (Equal); copying is a plain struct
// assignment since every field is a value type.
type Electrode struct {
	label     string
	reference string
	unit      string
	status    string
	typ       string
	iscale    float64
	rscale    float64
}

// NewElectrode constructs an Electrode with the historical default scale:
// unit "uV", iscale 1, rscale 1/256 (3.9nV LSB at 32-bit signed integral
// resolution), matching the original library's single-argument
// constructor form.
func NewElectrode(label, reference string) (Electrode, error) {
	return NewElectrodeScaled(label, reference, "uV", 1, 1.0/256.0)
}

// NewElectrodeScaled constructs a fully specified Electrode.
func NewElectrodeScaled(label, reference, unit string, iscale, rscale float64) (Electrode, error) {
	e := Electrode{}
	if err := e.SetLabel(label); err != nil {
		return Electrode{}, err
	}
	if err := e.SetReference(reference); err != nil {
		return Electrode{}, err
	}
	if err := e.SetUnit(unit); err != nil {
		return Electrode{}, err
	}
	if err := e.SetIscale(iscale); err != nil {
		return Electrode{}, err
	}
	if err := e.SetRscale(rscale); err != nil {
		return Electrode{}, err
	}
	return e, nil
}

func (e Electrode) Label() string     { return e.label }
func (e Electrode) Reference() string { return e.reference }
func (e Electrode) Unit() string      { return e.unit }
func (e Electrode) Status() string    { return e.status }
func (e Electrode) Type() string      { return e.typ }
func (e Electrode) Iscale() float64   { return e.iscale }
func (e Electrode) Rscale() float64   { return e.rscale }

// SetLabel validates and assigns label. On failure e is unchanged.
func (e *Electrode) SetLabel(label string) error {
	if err := validateLabel(label); err != nil {
		return err
	}
	e.label = label
	return nil
}

// SetReference validates and assigns reference. On failure e is unchanged.
func (e *Electrode) SetReference(reference string) error {
	if err := validateReference(reference); err != nil {
		return err
	}
	e.reference = reference
	return nil
}

// SetUnit validates and assigns unit. On failure e is unchanged.
func (e *Electrode) SetUnit(unit string) error {
	if err := validateUnit(unit); err != nil {
		return err
	}
	e.unit = unit
	return nil
}

// SetStatus validates and assigns status. On failure e is unchanged.
func (e *Electrode) SetStatus(status string) error {
	if err := validateStatus(status); err != nil {
		return err
	}
	e.status = status
	return nil
}

// SetType validates and assigns type. On failure e is unchanged.
func (e *Electrode) SetType(typ string) error {
	if err := validateType(typ); err != nil {
		return err
	}
	e.typ = typ
	return nil
}

// SetIscale validates (finite, non-zero) and assigns iscale.
func (e *Electrode) SetIscale(iscale float64) error {
	if err := validateScale("iscale", iscale); err != nil {
		return err
	}
	e.iscale = iscale
	return nil
}

// SetRscale validates (finite, non-zero) and assigns rscale.
func (e *Electrode) SetRscale(rscale float64) error {
	if err := validateScale("rscale", rscale); err != nil {
		return err
	}
	e.rscale = rscale
	return nil
}

// Equal reports field-wise equality.
func (e Electrode) Equal(other Electrode) bool {
	return e.label == other.label &&
		e.reference == other.reference &&
		e.unit == other.unit &&
		e.status == other.status &&
		e.typ == other.typ &&
		e.iscale == other.iscale &&
		e.rscale == other.rscale
}

// Electrodes is an ordered, fixed-length-for-the-life-of-the-recording
// sequence of Electrode.
type Electrodes []Electrode

// Clone returns a deep copy (each Electrode is a value type, so a slice
// copy already deep-copies the elements; Clone exists to make that
// explicit and avoid aliasing the backing array).
func (es Electrodes) Clone() Electrodes {
	if es == nil {
		return nil
	}
	out := make(Electrodes, len(es))
	copy(out, es)
	return out
}

// Equal reports whether two electrode sequences have the same length and
// pairwise-equal elements, in order.
func (es Electrodes) Equal(other Electrodes) bool {
	if len(es) != len(other) {
		return false
	}
	for i := range es {
		if !es[i].Equal(other[i]) {
			return false
		}
	}
	return true
}
