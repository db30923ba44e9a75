package header

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// writeString appends a uint16 byte-length prefix followed by s's raw
// UTF-8 bytes, matching the teacher's OpusTags vendor/comment string shape.
func writeString(buf *bytes.Buffer, s string) {
	b := []byte(s)
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(b)))
	buf.Write(lenBuf[:])
	buf.Write(b)
}

func readString(r *bytes.Reader) (string, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", fmt.Errorf("%w: string length: %v", ErrCorruptHeader, err)
	}
	n := binary.LittleEndian.Uint16(lenBuf[:])
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("%w: string body: %v", ErrCorruptHeader, err)
	}
	return string(b), nil
}
