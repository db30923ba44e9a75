package header

import (
	"encoding/binary"
	"fmt"

	"github.com/slatinski/ctk/types"
)

// versionSize is the fixed byte length of an encoded vrsn chunk.
const versionSize = 8

// EncodeVersion serializes the vrsn chunk body.
func EncodeVersion(v types.FileVersion) []byte {
	buf := make([]byte, versionSize)
	binary.LittleEndian.PutUint32(buf[0:4], v.Major())
	binary.LittleEndian.PutUint32(buf[4:8], v.Minor())
	return buf
}

// DecodeVersion parses the vrsn chunk body.
func DecodeVersion(body []byte) (types.FileVersion, error) {
	if len(body) != versionSize {
		return types.FileVersion{}, fmt.Errorf("%w: vrsn: want %d bytes, got %d", ErrCorruptHeader, versionSize, len(body))
	}
	major := binary.LittleEndian.Uint32(body[0:4])
	minor := binary.LittleEndian.Uint32(body[4:8])
	return types.NewFileVersion(major, minor), nil
}
