package header

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// parametersSize is the fixed byte length of an encoded parm chunk body.
const parametersSize = 8 + 8 + 4 + 4

// Parameters is the decoded parm chunk: the recording-wide settings that
// are frozen once the first sample is written, minus the electrode table
// itself (stored separately in the elec chunk; ElectrodeCount here is
// redundant with that chunk's length but keeps parm self-describing, the
// way the teacher's OpusHead is self-describing about channel count).
type Parameters struct {
	SamplingFrequency float64
	StartTime         time.Time
	EpochLength       uint32
	ElectrodeCount    uint32
}

// EncodeParameters serializes the parm chunk body.
func EncodeParameters(p Parameters) []byte {
	buf := make([]byte, parametersSize)
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(p.SamplingFrequency))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(p.StartTime.UnixNano()))
	binary.LittleEndian.PutUint32(buf[16:20], p.EpochLength)
	binary.LittleEndian.PutUint32(buf[20:24], p.ElectrodeCount)
	return buf
}

// DecodeParameters parses the parm chunk body, rejecting a non-finite or
// non-positive sampling frequency and a zero epoch length.
func DecodeParameters(body []byte) (Parameters, error) {
	if len(body) != parametersSize {
		return Parameters{}, fmt.Errorf("%w: parm: want %d bytes, got %d", ErrCorruptHeader, parametersSize, len(body))
	}
	freq := math.Float64frombits(binary.LittleEndian.Uint64(body[0:8]))
	if freq <= 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return Parameters{}, fmt.Errorf("%w: parm.sampling_frequency: must be a positive finite number, got %v", ErrCorruptHeader, freq)
	}
	ns := int64(binary.LittleEndian.Uint64(body[8:16]))
	epochLength := binary.LittleEndian.Uint32(body[16:20])
	if epochLength == 0 {
		return Parameters{}, fmt.Errorf("%w: parm.epoch_length: must be positive", ErrCorruptHeader)
	}
	electrodeCount := binary.LittleEndian.Uint32(body[20:24])
	return Parameters{
		SamplingFrequency: freq,
		StartTime:         time.Unix(0, ns).UTC(),
		EpochLength:       epochLength,
		ElectrodeCount:    electrodeCount,
	}, nil
}
