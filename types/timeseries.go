package types

import (
	"math"
	"time"
)

// TimeSeries holds the recording-wide parameters that are frozen once the
// first sample is appended: start time, sampling frequency, electrode
// table and epoch length (spec §3 "Time series parameters").
type TimeSeries struct {
	startTime         time.Time
	samplingFrequency float64
	electrodes        Electrodes
	epochLength       uint32
}

// NewTimeSeries constructs a TimeSeries, validating samplingFrequency and
// epochLength. electrodes is cloned so later mutation of the caller's
// slice does not alias this value.
func NewTimeSeries(startTime time.Time, samplingFrequency float64, electrodes Electrodes, epochLength uint32) (TimeSeries, error) {
	ts := TimeSeries{startTime: startTime.UTC()}
	if err := ts.SetSamplingFrequency(samplingFrequency); err != nil {
		return TimeSeries{}, err
	}
	if err := ts.SetEpochLength(epochLength); err != nil {
		return TimeSeries{}, err
	}
	ts.electrodes = electrodes.Clone()
	return ts, nil
}

func (ts TimeSeries) StartTime() time.Time       { return ts.startTime }
func (ts TimeSeries) SamplingFrequency() float64 { return ts.samplingFrequency }
func (ts TimeSeries) Electrodes() Electrodes     { return ts.electrodes.Clone() }
func (ts TimeSeries) EpochLength() uint32        { return ts.epochLength }

// SetStartTime assigns the recording start instant (converted to UTC).
func (ts *TimeSeries) SetStartTime(t time.Time) {
	ts.startTime = t.UTC()
}

// SetSamplingFrequency validates (positive, finite) and assigns the
// sampling frequency in Hz.
func (ts *TimeSeries) SetSamplingFrequency(hz float64) error {
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return invalidf("sampling_frequency: must be a positive finite number, got %v", hz)
	}
	ts.samplingFrequency = hz
	return nil
}

// SetElectrodes replaces the electrode table.
func (ts *TimeSeries) SetElectrodes(electrodes Electrodes) {
	ts.electrodes = electrodes.Clone()
}

// SetEpochLength validates (positive) and assigns the epoch length in
// samples.
func (ts *TimeSeries) SetEpochLength(n uint32) error {
	if n == 0 {
		return invalidf("epoch_length: must be positive")
	}
	ts.epochLength = n
	return nil
}

// Equal reports field-wise equality. Timestamps compare with time.Time.Equal
// (instant equality, not representation equality).
func (ts TimeSeries) Equal(other TimeSeries) bool {
	return ts.startTime.Equal(other.startTime) &&
		ts.samplingFrequency == other.samplingFrequency &&
		ts.electrodes.Equal(other.electrodes) &&
		ts.epochLength == other.epochLength
}
