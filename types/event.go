package types

import "time"

// EventImpedance records one impedance check. Values are stored here in
// the caller's original unit (ohms); the EVT wire format persists them in
// kOhm (spec §3, §8 scenario 4) — that scaling is the writer/reader's job,
// not this value object's.
type EventImpedance struct {
	Stamp  time.Time
	Values []float64
}

// Equal reports field-wise equality.
func (e EventImpedance) Equal(other EventImpedance) bool {
	if !e.Stamp.Equal(other.Stamp) || len(e.Values) != len(other.Values) {
		return false
	}
	for i := range e.Values {
		if e.Values[i] != other.Values[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy (Values is a slice and would otherwise alias).
func (e EventImpedance) Clone() EventImpedance {
	out := e
	out.Values = append([]float64(nil), e.Values...)
	return out
}

// EventVideo records a video marker.
type EventVideo struct {
	Stamp          time.Time
	Duration       float64
	TriggerCode    int32
	ConditionLabel string
	Description    string
	VideoFile      string
}

// Equal reports field-wise equality.
func (e EventVideo) Equal(other EventVideo) bool {
	return e.Stamp.Equal(other.Stamp) &&
		e.Duration == other.Duration &&
		e.TriggerCode == other.TriggerCode &&
		e.ConditionLabel == other.ConditionLabel &&
		e.Description == other.Description &&
		e.VideoFile == other.VideoFile
}

// EventEpoch records an epoch marker.
type EventEpoch struct {
	Stamp          time.Time
	Duration       float64
	Offset         float64
	TriggerCode    int32
	ConditionLabel string
}

// Equal reports field-wise equality.
func (e EventEpoch) Equal(other EventEpoch) bool {
	return e.Stamp.Equal(other.Stamp) &&
		e.Duration == other.Duration &&
		e.Offset == other.Offset &&
		e.TriggerCode == other.TriggerCode &&
		e.ConditionLabel == other.ConditionLabel
}
