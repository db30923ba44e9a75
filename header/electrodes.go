package header

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/slatinski/ctk/types"
)

// scalesSize is the byte length of an electrode record's trailing
// iscale/rscale pair.
const scalesSize = 16

// EncodeElectrodes serializes the elec chunk body: a uint32 count
// followed by that many fixed-shape records.
func EncodeElectrodes(es types.Electrodes) []byte {
	var buf bytes.Buffer
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(es)))
	buf.Write(countBuf[:])
	for _, e := range es {
		writeString(&buf, e.Label())
		writeString(&buf, e.Reference())
		writeString(&buf, e.Unit())
		writeString(&buf, e.Status())
		writeString(&buf, e.Type())
		var scales [scalesSize]byte
		binary.LittleEndian.PutUint64(scales[0:8], math.Float64bits(e.Iscale()))
		binary.LittleEndian.PutUint64(scales[8:16], math.Float64bits(e.Rscale()))
		buf.Write(scales[:])
	}
	return buf.Bytes()
}

// DecodeElectrodes parses the elec chunk body. Every record is run
// through types.NewElectrodeScaled/SetStatus/SetType, so a field that
// violates a §3 constraint surfaces here as ErrCorruptHeader wrapping the
// underlying types.ErrInvalidField.
func DecodeElectrodes(body []byte) (types.Electrodes, error) {
	r := bytes.NewReader(body)
	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: elec count: %v", ErrCorruptHeader, err)
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	out := make(types.Electrodes, 0, count)
	for i := uint32(0); i < count; i++ {
		label, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("%w: elec[%d].label: %v", ErrCorruptHeader, i, err)
		}
		reference, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("%w: elec[%d].reference: %v", ErrCorruptHeader, i, err)
		}
		unit, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("%w: elec[%d].unit: %v", ErrCorruptHeader, i, err)
		}
		status, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("%w: elec[%d].status: %v", ErrCorruptHeader, i, err)
		}
		typ, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("%w: elec[%d].type: %v", ErrCorruptHeader, i, err)
		}
		var scales [scalesSize]byte
		if _, err := io.ReadFull(r, scales[:]); err != nil {
			return nil, fmt.Errorf("%w: elec[%d] scales: %v", ErrCorruptHeader, i, err)
		}
		iscale := math.Float64frombits(binary.LittleEndian.Uint64(scales[0:8]))
		rscale := math.Float64frombits(binary.LittleEndian.Uint64(scales[8:16]))

		e, err := types.NewElectrodeScaled(label, reference, unit, iscale, rscale)
		if err != nil {
			return nil, fmt.Errorf("%w: elec[%d]: %w", ErrCorruptHeader, i, err)
		}
		if err := e.SetStatus(status); err != nil {
			return nil, fmt.Errorf("%w: elec[%d].status: %w", ErrCorruptHeader, i, err)
		}
		if err := e.SetType(typ); err != nil {
			return nil, fmt.Errorf("%w: elec[%d].type: %w", ErrCorruptHeader, i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
