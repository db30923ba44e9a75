package ctk

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/slatinski/ctk/codec"
	"github.com/slatinski/ctk/container/riff"
	"github.com/slatinski/ctk/evt"
	"github.com/slatinski/ctk/header"
	"github.com/slatinski/ctk/types"
)

type writerState int

const (
	stateConfiguring writerState = iota
	stateRecording
	stateFinalised
)

// Writer accumulates samples into epoch-aligned compressed blocks and
// writes a CNT container on Close, moving through Configuring →
// Recording → Finalised as described in the package doc.
//
// param fields (SetStartTime, SetSamplingFrequency, SetElectrodes,
// SetEpochLength) lock once the writer leaves Configuring; Info remains
// mutable until Close.
type Writer struct {
	path    string
	variant riff.Variant
	state   writerState

	startTime         time.Time
	samplingFrequency float64
	electrodes        types.Electrodes
	epochLength       uint32
	info              types.Information

	buffer      [][]int32 // column-major: buffer[sample][channel]
	sampleCount uint64
	epochIndex  []header.IndexEntry
	triggers    []types.Trigger

	cw  *riff.Writer
	evt *evt.Writer
}

// NewWriter returns a Writer targeting path. No file is created until the
// first append or Close. epochLength defaults to 1 (the smallest legal
// value); SetEpochLength before the first append to change it.
func NewWriter(path string, variant riff.Variant) *Writer {
	return &Writer{path: path, variant: variant, epochLength: 1}
}

func (w *Writer) lockedForParams() error {
	if w.state == stateFinalised {
		return ErrWriterClosed
	}
	if w.state != stateConfiguring {
		return ErrWriterLocked
	}
	return nil
}

// SetStartTime sets the recording start instant. Fails with
// ErrWriterLocked once the first sample has been appended.
func (w *Writer) SetStartTime(t time.Time) error {
	if err := w.lockedForParams(); err != nil {
		return err
	}
	w.startTime = t.UTC()
	return nil
}

// SetSamplingFrequency sets the sampling rate in Hz. Fails with
// ErrWriterLocked once the first sample has been appended.
func (w *Writer) SetSamplingFrequency(hz float64) error {
	if err := w.lockedForParams(); err != nil {
		return err
	}
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return fmt.Errorf("%w: sampling_frequency: must be a positive finite number, got %v", ErrInvalidField, hz)
	}
	w.samplingFrequency = hz
	return nil
}

// SetElectrodes replaces the whole electrode table at once. Fails with
// ErrWriterLocked once the first sample has been appended.
func (w *Writer) SetElectrodes(electrodes types.Electrodes) error {
	if err := w.lockedForParams(); err != nil {
		return err
	}
	w.electrodes = electrodes.Clone()
	return nil
}

// AddElectrode appends one electrode to the table, the one-at-a-time
// builder form. Fails with ErrWriterLocked once the first sample has been
// appended.
func (w *Writer) AddElectrode(e types.Electrode) error {
	if err := w.lockedForParams(); err != nil {
		return err
	}
	w.electrodes = append(w.electrodes, e)
	return nil
}

// SetEpochLength sets the number of samples buffered per compressed
// chunk. Fails with ErrWriterLocked once the first sample has been
// appended.
func (w *Writer) SetEpochLength(n uint32) error {
	if err := w.lockedForParams(); err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: epoch_length: must be positive", ErrInvalidField)
	}
	w.epochLength = n
	return nil
}

// Information returns a copy of the mutable metadata block.
func (w *Writer) Information() types.Information { return w.info }

// SetInformation replaces the metadata block. Mutable until Close.
func (w *Writer) SetInformation(info types.Information) error {
	if w.state == stateFinalised {
		return ErrWriterClosed
	}
	w.info = info
	return nil
}

// AppendColumnMajor appends samples laid out sample-outer:
// xs[sample][channel]. The channel count of every row must equal the
// electrode count.
func (w *Writer) AppendColumnMajor(xs [][]float64) error {
	if w.state == stateFinalised {
		return ErrWriterClosed
	}
	for i, row := range xs {
		if len(row) != len(w.electrodes) {
			return fmt.Errorf("%w: row %d has %d channels, want %d", ErrShapeMismatch, i, len(row), len(w.electrodes))
		}
	}
	return w.appendQuantized(xs)
}

// AppendRowMajor appends samples laid out channel-outer:
// xs[channel][sample]. len(xs) must equal the electrode count.
func (w *Writer) AppendRowMajor(xs [][]float64) error {
	if w.state == stateFinalised {
		return ErrWriterClosed
	}
	if len(xs) != len(w.electrodes) {
		return fmt.Errorf("%w: want %d channels, got %d", ErrShapeMismatch, len(w.electrodes), len(xs))
	}
	samples := 0
	if len(xs) > 0 {
		samples = len(xs[0])
	}
	for c, row := range xs {
		if len(row) != samples {
			return fmt.Errorf("%w: channel %d has %d samples, want %d", ErrShapeMismatch, c, len(row), samples)
		}
	}
	colMajor := make([][]float64, samples)
	for s := 0; s < samples; s++ {
		row := make([]float64, len(xs))
		for c := range xs {
			row[c] = xs[c][s]
		}
		colMajor[s] = row
	}
	return w.appendQuantized(colMajor)
}

// appendQuantized quantises xs per electrode and transitions Configuring
// -> Recording on the first call, flushing full epochs as the buffer
// fills.
func (w *Writer) appendQuantized(xs [][]float64) error {
	if w.state == stateConfiguring {
		if err := w.beginRecording(); err != nil {
			return err
		}
	}
	for _, row := range xs {
		quantized := make([]int32, len(row))
		for c, v := range row {
			quantized[c] = quantize(v, w.electrodes[c].Iscale(), w.electrodes[c].Rscale())
		}
		w.buffer = append(w.buffer, quantized)
		w.sampleCount++
		if uint32(len(w.buffer)) == w.epochLength {
			if err := w.flushEpoch(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Writer) beginRecording() error {
	cw, err := riff.NewWriter(w.path, w.variant, formCNT)
	if err != nil {
		return err
	}
	w.cw = cw
	w.state = stateRecording
	return nil
}

// quantize applies stored = clamp_i32(round(x / (iscale*rscale))),
// round-half-to-even, the same clamp-and-round shape as the teacher's
// float-to-int16 PCM conversion generalized to a per-electrode int32
// target.
func quantize(x, iscale, rscale float64) int32 {
	v := math.RoundToEven(x / (iscale * rscale))
	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}

// dequantize reverses quantize's scaling, without quantize's own
// round/clamp step: output = stored * iscale * rscale, a continuous
// physical-unit value (e.g. microvolts), not a re-quantised integer.
func dequantize(stored int32, iscale, rscale float64) float64 {
	return float64(stored) * iscale * rscale
}

func (w *Writer) flushEpoch() error {
	if len(w.buffer) == 0 {
		return nil
	}
	comp, err := codec.NewCompressor(len(w.electrodes))
	if err != nil {
		return err
	}
	block, err := comp.ColumnMajor(w.buffer)
	if err != nil {
		return err
	}
	offset, err := w.cw.AppendChunk(tagEpoch, block)
	if err != nil {
		return err
	}
	w.epochIndex = append(w.epochIndex, header.IndexEntry{Offset: offset, Length: uint64(len(block)), Samples: uint32(len(w.buffer))})
	w.buffer = w.buffer[:0]
	return nil
}

// AppendTrigger records one trigger marker at the given sample index.
func (w *Writer) AppendTrigger(sample uint64, code string) error {
	if w.state == stateFinalised {
		return ErrWriterClosed
	}
	t, err := types.NewTrigger(sample, code)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTrigger, err)
	}
	w.triggers = append(w.triggers, t)
	return nil
}

// AppendTriggers records multiple trigger markers, in order.
func (w *Writer) AppendTriggers(triggers []types.Trigger) error {
	for _, t := range triggers {
		if err := w.AppendTrigger(t.Sample(), t.Code()); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) ensureEVT() *evt.Writer {
	if w.evt == nil {
		w.evt = evt.NewWriter(evtPath(w.path), w.variant)
	}
	return w.evt
}

// Impedance forwards one impedance event to the EVT sidecar, creating it
// lazily on first use.
func (w *Writer) Impedance(e types.EventImpedance) error {
	if w.state == stateFinalised {
		return ErrWriterClosed
	}
	return w.ensureEVT().Impedance(e)
}

// Video forwards one video event to the EVT sidecar.
func (w *Writer) Video(e types.EventVideo) error {
	if w.state == stateFinalised {
		return ErrWriterClosed
	}
	return w.ensureEVT().Video(e)
}

// Marker forwards one epoch-marker event to the EVT sidecar.
func (w *Writer) Marker(e types.EventEpoch) error {
	if w.state == stateFinalised {
		return ErrWriterClosed
	}
	return w.ensureEVT().Marker(e)
}

// Close flushes any residual partial epoch, serializes the header chunks,
// finalizes the container and the EVT sidecar if one was opened. A second
// call is a no-op.
func (w *Writer) Close() error {
	if w.state == stateFinalised {
		return nil
	}
	if w.state == stateConfiguring {
		if err := w.beginRecording(); err != nil {
			return err
		}
	}
	if err := w.flushEpoch(); err != nil {
		w.cw.Abort()
		w.state = stateFinalised
		return err
	}

	// Triggers are stored sorted by sample index; duplicate indices keep
	// their append order (stable sort).
	sort.SliceStable(w.triggers, func(i, j int) bool {
		return w.triggers[i].Sample() < w.triggers[j].Sample()
	})

	chunks := []struct {
		tag  string
		body []byte
	}{
		{tagVersion, header.EncodeVersion(types.NewFileVersion(1, 0))},
		{tagParameters, header.EncodeParameters(header.Parameters{
			SamplingFrequency: w.samplingFrequency,
			StartTime:         w.startTime,
			EpochLength:       w.epochLength,
			ElectrodeCount:    uint32(len(w.electrodes)),
		})},
		{tagElectrodes, header.EncodeElectrodes(w.electrodes)},
		{tagInformation, header.EncodeInformation(w.info)},
		{tagTriggers, header.EncodeTriggers(w.triggers)},
		{tagEpochIndex, header.EncodeEpochIndex(w.epochIndex)},
	}
	for _, c := range chunks {
		if _, err := w.cw.AppendChunk(c.tag, c.body); err != nil {
			w.cw.Abort()
			w.state = stateFinalised
			return err
		}
	}

	if err := w.cw.Finalize(); err != nil {
		w.state = stateFinalised
		return err
	}
	w.state = stateFinalised

	if w.evt != nil {
		return w.evt.Close()
	}
	return nil
}
