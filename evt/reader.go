package evt

import (
	"errors"
	"fmt"

	"github.com/slatinski/ctk/container/riff"
	"github.com/slatinski/ctk/types"
)

const (
	formEVT      = "EVT "
	tagImpedance = "impd"
	tagVideo     = "vids"
	tagMarker    = "mark"
)

// Reader opens an EVT sidecar and decodes all three record arrays eagerly,
// mirroring the CNT reader's eager-header-parse contract.
type Reader struct {
	impedances []types.EventImpedance
	videos     []types.EventVideo
	markers    []types.EventEpoch
}

// Open reads and decodes the sidecar at path.
func Open(path string) (*Reader, error) {
	c, err := riff.Open(path)
	if err != nil {
		return nil, err
	}
	if c.Form() != formEVT {
		return nil, fmt.Errorf("%w: form tag %q, want %q", ErrCorruptEvent, c.Form(), formEVT)
	}

	r := &Reader{}
	if body, err := c.ReadChunk(tagImpedance); err == nil {
		if r.impedances, err = decodeImpedances(body); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, riff.ErrNotFound) {
		return nil, err
	}
	if body, err := c.ReadChunk(tagVideo); err == nil {
		if r.videos, err = decodeVideos(body); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, riff.ErrNotFound) {
		return nil, err
	}
	if body, err := c.ReadChunk(tagMarker); err == nil {
		if r.markers, err = decodeMarkers(body); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, riff.ErrNotFound) {
		return nil, err
	}
	return r, nil
}

// Impedances returns the impedance events in insertion order.
func (r *Reader) Impedances() []types.EventImpedance {
	out := make([]types.EventImpedance, len(r.impedances))
	for i, e := range r.impedances {
		out[i] = e.Clone()
	}
	return out
}

// Videos returns the video markers in insertion order.
func (r *Reader) Videos() []types.EventVideo {
	return append([]types.EventVideo(nil), r.videos...)
}

// Markers returns the epoch markers in insertion order.
func (r *Reader) Markers() []types.EventEpoch {
	return append([]types.EventEpoch(nil), r.markers...)
}
