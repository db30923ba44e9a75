package header

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// indexEntrySize is the byte length of one encoded eidx record.
const indexEntrySize = 20

// IndexEntry is one epoch index record: the compressed epoch's absolute
// file offset and byte length, plus its (uncompressed) sample count —
// equal to the time series epoch_length for every epoch except possibly
// the last — so a reader can size a decompression buffer without first
// guessing it from the compressed byte length.
type IndexEntry struct {
	Offset  uint64
	Length  uint64
	Samples uint32
}

// EncodeEpochIndex serializes the eidx chunk body: a uint32 count
// followed by that many (offset uint64, length uint64, samples uint32)
// records.
func EncodeEpochIndex(entries []IndexEntry) []byte {
	var buf bytes.Buffer
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(entries)))
	buf.Write(countBuf[:])
	for _, e := range entries {
		var rec [indexEntrySize]byte
		binary.LittleEndian.PutUint64(rec[0:8], e.Offset)
		binary.LittleEndian.PutUint64(rec[8:16], e.Length)
		binary.LittleEndian.PutUint32(rec[16:20], e.Samples)
		buf.Write(rec[:])
	}
	return buf.Bytes()
}

// DecodeEpochIndex parses the eidx chunk body.
func DecodeEpochIndex(body []byte) ([]IndexEntry, error) {
	r := bytes.NewReader(body)
	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: eidx count: %v", ErrCorruptHeader, err)
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	out := make([]IndexEntry, count)
	for i := range out {
		var rec [indexEntrySize]byte
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return nil, fmt.Errorf("%w: eidx[%d]: %v", ErrCorruptHeader, i, err)
		}
		out[i] = IndexEntry{
			Offset:  binary.LittleEndian.Uint64(rec[0:8]),
			Length:  binary.LittleEndian.Uint64(rec[8:16]),
			Samples: binary.LittleEndian.Uint32(rec[16:20]),
		}
	}
	return out, nil
}
