package evt

import (
	"github.com/slatinski/ctk/container/riff"
	"github.com/slatinski/ctk/types"
)

// Writer accumulates impedance/video/marker events in memory and
// serializes them into an EVT sidecar on Close (the per-chunk record
// count is not known until every event has been appended).
type Writer struct {
	path    string
	variant riff.Variant

	impedances []types.EventImpedance
	videos     []types.EventVideo
	markers    []types.EventEpoch

	closed bool
}

// NewWriter returns a Writer targeting path. No file is created until
// Close.
func NewWriter(path string, variant riff.Variant) *Writer {
	return &Writer{path: path, variant: variant}
}

// Impedance appends one impedance event.
func (w *Writer) Impedance(e types.EventImpedance) error {
	if w.closed {
		return ErrWriterClosed
	}
	w.impedances = append(w.impedances, e.Clone())
	return nil
}

// Impedances appends multiple impedance events, in order.
func (w *Writer) Impedances(events []types.EventImpedance) error {
	for _, e := range events {
		if err := w.Impedance(e); err != nil {
			return err
		}
	}
	return nil
}

// Video appends one video marker.
func (w *Writer) Video(e types.EventVideo) error {
	if w.closed {
		return ErrWriterClosed
	}
	w.videos = append(w.videos, e)
	return nil
}

// Videos appends multiple video markers, in order.
func (w *Writer) Videos(events []types.EventVideo) error {
	for _, e := range events {
		if err := w.Video(e); err != nil {
			return err
		}
	}
	return nil
}

// Marker appends one epoch marker.
func (w *Writer) Marker(e types.EventEpoch) error {
	if w.closed {
		return ErrWriterClosed
	}
	w.markers = append(w.markers, e)
	return nil
}

// Markers appends multiple epoch markers, in order.
func (w *Writer) Markers(events []types.EventEpoch) error {
	for _, e := range events {
		if err := w.Marker(e); err != nil {
			return err
		}
	}
	return nil
}

// Close serializes every non-empty record array to its chunk and
// finalizes the sidecar container. Idempotent: a second call is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	cw, err := riff.NewWriter(w.path, w.variant, formEVT)
	if err != nil {
		return err
	}
	if len(w.impedances) > 0 {
		if _, err := cw.AppendChunk(tagImpedance, encodeImpedances(w.impedances)); err != nil {
			cw.Abort()
			return err
		}
	}
	if len(w.videos) > 0 {
		if _, err := cw.AppendChunk(tagVideo, encodeVideos(w.videos)); err != nil {
			cw.Abort()
			return err
		}
	}
	if len(w.markers) > 0 {
		if _, err := cw.AppendChunk(tagMarker, encodeMarkers(w.markers)); err != nil {
			cw.Abort()
			return err
		}
	}
	return cw.Finalize()
}
