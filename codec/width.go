package codec

import "math/bits"

// method selects how a channel's samples are represented before width
// packing.
type method uint8

const (
	methodRaw  method = 0
	methodDiff method = 1
)

// bitsNeededSigned returns the minimum number of bits, including the sign
// bit, needed to represent v in two's complement. Mirrors the teacher's
// rangecoding package's use of math/bits for bit-precision bookkeeping.
func bitsNeededSigned(v int32) int {
	if v >= 0 {
		return bits.Len32(uint32(v)) + 1
	}
	return bits.Len32(uint32(^v)) + 1
}

// maxBitsNeeded returns the widest bitsNeededSigned across all of vs, or 1
// if vs is empty (an empty channel still needs a width to encode nothing).
func maxBitsNeeded(vs []int32) int {
	max := 1
	for _, v := range vs {
		if n := bitsNeededSigned(v); n > max {
			max = n
		}
	}
	return max
}

// widthBucket rounds a bit count up to the smallest of the four supported
// byte widths and returns both the wire width code (0..3) and the byte
// count it denotes.
func widthBucket(nbits int) (code uint8, bytes int) {
	switch {
	case nbits <= 8:
		return 0, 1
	case nbits <= 16:
		return 1, 2
	case nbits <= 24:
		return 2, 3
	default:
		return 3, 4
	}
}

// byteWidth maps a wire width code back to a byte count. ok is false for
// any code outside 0..3 (a corrupt or foreign block).
func byteWidth(code uint8) (bytes int, ok bool) {
	switch code {
	case 0:
		return 1, true
	case 1:
		return 2, true
	case 2:
		return 3, true
	case 3:
		return 4, true
	default:
		return 0, false
	}
}
