package codec

import "fmt"

// Compressor packs fixed-size epochs of multi-channel int32 samples into
// the wire format described in package doc.go. sensors is fixed for the
// life of the value (set only at construction, matching the original
// library's write-only "sensors" attribute: Go has no attribute magic to
// translate faithfully, so the same one-way guarantee is expressed as
// construction-only state with no getter).
type Compressor struct {
	sensors int
}

// NewCompressor returns a Compressor for the given channel count.
func NewCompressor(sensors int) (*Compressor, error) {
	if sensors <= 0 {
		return nil, fmt.Errorf("%w: sensors must be positive, got %d", ErrShapeMismatch, sensors)
	}
	return &Compressor{sensors: sensors}, nil
}

// ColumnMajor compresses a samples-outer matrix: xs[sample][channel].
func (c *Compressor) ColumnMajor(xs [][]int32) ([]byte, error) {
	channels, err := transposeToChannels(xs, c.sensors)
	if err != nil {
		return nil, err
	}
	return encodeChannels(channels), nil
}

// RowMajor compresses a channels-outer matrix: xs[channel][sample].
func (c *Compressor) RowMajor(xs [][]int32) ([]byte, error) {
	if len(xs) != c.sensors {
		return nil, fmt.Errorf("%w: want %d channels, got %d", ErrShapeMismatch, c.sensors, len(xs))
	}
	return encodeChannels(xs), nil
}

// Decompressor unpacks a compressed epoch block produced by Compressor.
// sensors must match the value used to compress the block.
type Decompressor struct {
	sensors int
}

// NewDecompressor returns a Decompressor for the given channel count.
func NewDecompressor(sensors int) (*Decompressor, error) {
	if sensors <= 0 {
		return nil, fmt.Errorf("%w: sensors must be positive, got %d", ErrShapeMismatch, sensors)
	}
	return &Decompressor{sensors: sensors}, nil
}

// ColumnMajor decompresses block into a samples-outer matrix:
// result[sample][channel]. samples must equal the number of samples each
// channel was encoded with.
func (d *Decompressor) ColumnMajor(block []byte, samples int) ([][]int32, error) {
	channels, err := decodeChannels(block, d.sensors, samples)
	if err != nil {
		return nil, err
	}
	return transposeToSamples(channels, samples), nil
}

// RowMajor decompresses block into a channels-outer matrix:
// result[channel][sample].
func (d *Decompressor) RowMajor(block []byte, samples int) ([][]int32, error) {
	return decodeChannels(block, d.sensors, samples)
}

func transposeToChannels(xs [][]int32, sensors int) ([][]int32, error) {
	if len(xs) == 0 {
		return make([][]int32, sensors), nil
	}
	for i, row := range xs {
		if len(row) != sensors {
			return nil, fmt.Errorf("%w: row %d has %d channels, want %d", ErrShapeMismatch, i, len(row), sensors)
		}
	}
	samples := len(xs)
	channels := make([][]int32, sensors)
	for c := 0; c < sensors; c++ {
		ch := make([]int32, samples)
		for s := 0; s < samples; s++ {
			ch[s] = xs[s][c]
		}
		channels[c] = ch
	}
	return channels, nil
}

func transposeToSamples(channels [][]int32, samples int) [][]int32 {
	out := make([][]int32, samples)
	for s := 0; s < samples; s++ {
		row := make([]int32, len(channels))
		for c, ch := range channels {
			row[c] = ch[s]
		}
		out[s] = row
	}
	return out
}

// encodeChannels packs each channel independently and concatenates the
// results, per the epoch_block := channel_block[0] ... channel_block[n-1]
// layout.
func encodeChannels(channels [][]int32) []byte {
	var out []byte
	for _, samples := range channels {
		out = append(out, encodeChannel(samples)...)
	}
	return out
}

func encodeChannel(samples []int32) []byte {
	diffs := make([]int32, len(samples))
	var prev int32
	for i, v := range samples {
		if i == 0 {
			diffs[i] = v
		} else {
			diffs[i] = v - prev
		}
		prev = v
	}

	rawCode, rawBytes := widthBucket(maxBitsNeeded(samples))
	diffCode, diffBytes := widthBucket(maxBitsNeeded(diffs))

	rawTotal := 1 + len(samples)*rawBytes
	diffTotal := 1 + len(samples)*diffBytes

	var m method
	var width int
	var code uint8
	var values []int32
	switch {
	case len(samples) == 1:
		// A single sample has no predecessor to diff against; diffs[0] is
		// just samples[0] again, so encode it raw rather than pay for a
		// method that buys nothing.
		m, width, code, values = methodRaw, rawBytes, rawCode, samples
	case diffTotal <= rawTotal:
		m, width, code, values = methodDiff, diffBytes, diffCode, diffs
	default:
		m, width, code, values = methodRaw, rawBytes, rawCode, samples
	}

	out := make([]byte, 1+len(values)*width)
	out[0] = byte(m)<<7 | code
	packValues(out[1:], values, width)
	return out
}

func packValues(dst []byte, values []int32, width int) {
	for i, v := range values {
		off := i * width
		u := uint32(v)
		switch width {
		case 1:
			dst[off] = byte(u)
		case 2:
			dst[off] = byte(u)
			dst[off+1] = byte(u >> 8)
		case 3:
			dst[off] = byte(u)
			dst[off+1] = byte(u >> 8)
			dst[off+2] = byte(u >> 16)
		case 4:
			dst[off] = byte(u)
			dst[off+1] = byte(u >> 8)
			dst[off+2] = byte(u >> 16)
			dst[off+3] = byte(u >> 24)
		}
	}
}

func decodeChannels(block []byte, sensors, samples int) ([][]int32, error) {
	channels := make([][]int32, sensors)
	pos := 0
	for c := 0; c < sensors; c++ {
		ch, n, err := decodeChannel(block[pos:], samples)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", c, err)
		}
		channels[c] = ch
		pos += n
	}
	return channels, nil
}

func decodeChannel(block []byte, samples int) ([]int32, int, error) {
	if len(block) < 1 {
		return nil, 0, ErrCorruptBlock
	}
	header := block[0]
	m := method(header >> 7)
	width, ok := byteWidth(header & 0x7f)
	if !ok {
		return nil, 0, fmt.Errorf("%w: invalid width code %d", ErrCorruptBlock, header&0x7f)
	}
	need := 1 + samples*width
	if len(block) < need {
		return nil, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrCorruptBlock, need, len(block))
	}

	values := make([]int32, samples)
	unpackValues(values, block[1:need], width)

	if m == methodDiff {
		var prev int32
		for i, d := range values {
			if i == 0 {
				prev = d
			} else {
				prev = prev + d
			}
			values[i] = prev
		}
	}
	return values, need, nil
}

func unpackValues(dst []int32, src []byte, width int) {
	for i := range dst {
		off := i * width
		var u uint32
		switch width {
		case 1:
			u = uint32(src[off])
			if u&0x80 != 0 {
				u |= 0xffffff00
			}
		case 2:
			u = uint32(src[off]) | uint32(src[off+1])<<8
			if u&0x8000 != 0 {
				u |= 0xffff0000
			}
		case 3:
			u = uint32(src[off]) | uint32(src[off+1])<<8 | uint32(src[off+2])<<16
			if u&0x800000 != 0 {
				u |= 0xff000000
			}
		case 4:
			u = uint32(src[off]) | uint32(src[off+1])<<8 | uint32(src[off+2])<<16 | uint32(src[off+3])<<24
		}
		dst[i] = int32(u)
	}
}

