package header

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/slatinski/ctk/types"
)

// EncodeTriggers serializes the trig chunk body: a uint32 count followed
// by that many (sample uint64, code length-prefixed string) records, in
// the order given (the caller is responsible for sorting by sample).
func EncodeTriggers(triggers []types.Trigger) []byte {
	var buf bytes.Buffer
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(triggers)))
	buf.Write(countBuf[:])
	for _, t := range triggers {
		var sampleBuf [8]byte
		binary.LittleEndian.PutUint64(sampleBuf[:], t.Sample())
		buf.Write(sampleBuf[:])
		writeString(&buf, t.Code())
	}
	return buf.Bytes()
}

// DecodeTriggers parses the trig chunk body. Each record is run through
// types.NewTrigger, so an over-length code surfaces here as
// ErrCorruptHeader wrapping types.ErrInvalidField.
func DecodeTriggers(body []byte) ([]types.Trigger, error) {
	r := bytes.NewReader(body)
	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: trig count: %v", ErrCorruptHeader, err)
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	out := make([]types.Trigger, 0, count)
	for i := uint32(0); i < count; i++ {
		var sampleBuf [8]byte
		if _, err := io.ReadFull(r, sampleBuf[:]); err != nil {
			return nil, fmt.Errorf("%w: trig[%d].sample: %v", ErrCorruptHeader, i, err)
		}
		sample := binary.LittleEndian.Uint64(sampleBuf[:])
		code, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("%w: trig[%d].code: %v", ErrCorruptHeader, i, err)
		}
		trig, err := types.NewTrigger(sample, code)
		if err != nil {
			return nil, fmt.Errorf("%w: trig[%d]: %w", ErrCorruptHeader, i, err)
		}
		out = append(out, trig)
	}
	return out, nil
}
