package codec

import (
	"errors"
	"testing"
)

// Mirrors original_source/test/python/test_objects.py::test_compression_reflib.
func TestCompressionReflibColumnMajorRoundTrip(t *testing.T) {
	comp, err := NewCompressor(4)
	if err != nil {
		t.Fatalf("NewCompressor: %v", err)
	}
	decomp, err := NewDecompressor(4)
	if err != nil {
		t.Fatalf("NewDecompressor: %v", err)
	}

	xs := [][]int32{{11, 21, 31, 41}, {12, 22, 32, 42}}
	ys, err := comp.ColumnMajor(xs)
	if err != nil {
		t.Fatalf("ColumnMajor: %v", err)
	}

	cxs, err := decomp.ColumnMajor(ys, 2)
	if err != nil {
		t.Fatalf("decompress ColumnMajor: %v", err)
	}
	want := [][]int32{{11, 21, 31, 41}, {12, 22, 32, 42}}
	assertMatrixEqual(t, cxs, want)

	rxs, err := decomp.RowMajor(ys, 2)
	if err != nil {
		t.Fatalf("decompress RowMajor: %v", err)
	}
	wantRows := [][]int32{{11, 12}, {21, 22}, {31, 32}, {41, 42}}
	assertMatrixEqual(t, rxs, wantRows)
}

func TestCompressionReflibRowMajorRoundTrip(t *testing.T) {
	comp, err := NewCompressor(4)
	if err != nil {
		t.Fatalf("NewCompressor: %v", err)
	}
	decomp, err := NewDecompressor(4)
	if err != nil {
		t.Fatalf("NewDecompressor: %v", err)
	}

	xs := [][]int32{{13, 14}, {23, 24}, {33, 34}, {43, 44}}
	ys, err := comp.RowMajor(xs)
	if err != nil {
		t.Fatalf("RowMajor: %v", err)
	}

	cxs, err := decomp.ColumnMajor(ys, 2)
	if err != nil {
		t.Fatalf("decompress ColumnMajor: %v", err)
	}
	want := [][]int32{{13, 23, 33, 43}, {14, 24, 34, 44}}
	assertMatrixEqual(t, cxs, want)

	rxs, err := decomp.RowMajor(ys, 2)
	if err != nil {
		t.Fatalf("decompress RowMajor: %v", err)
	}
	assertMatrixEqual(t, rxs, xs)
}

func assertMatrixEqual(t *testing.T, got, want [][]int32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("row count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("row %d length = %d, want %d", i, len(got[i]), len(want[i]))
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("[%d][%d] = %d, want %d", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestCompressorShapeMismatch(t *testing.T) {
	comp, err := NewCompressor(4)
	if err != nil {
		t.Fatalf("NewCompressor: %v", err)
	}
	_, err = comp.ColumnMajor([][]int32{{1, 2, 3}})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
	_, err = comp.RowMajor([][]int32{{1, 2}, {3, 4}})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestNewCompressorInvalidSensors(t *testing.T) {
	if _, err := NewCompressor(0); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("sensors=0: expected ErrShapeMismatch, got %v", err)
	}
	if _, err := NewDecompressor(-1); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("sensors=-1: expected ErrShapeMismatch, got %v", err)
	}
}

func TestWidthSelectionPicksNarrowestBucket(t *testing.T) {
	ramp := make([]int32, 130)
	for i := range ramp {
		ramp[i] = int32(i) // 0..129: raw needs 9 bits (>127), diff needs 2 (delta=1, after d[0]=0)
	}

	cases := []struct {
		name    string
		samples []int32
		width   int
	}{
		{"fits int8 raw", []int32{-128, 0, 127, 1}, 1},
		{"fits int16 raw", []int32{-32768, 32767}, 2},
		{"needs int24", []int32{8388607, -8388608}, 3},
		{"needs int32", []int32{2147483647, -2147483648}, 4},
		{"unit-step ramp crossing a width boundary favors diff", ramp, 1},
	}
	comp, _ := NewCompressor(1)
	decomp, _ := NewDecompressor(1)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			block := encodeChannel(tc.samples)
			header := block[0]
			gotWidth, ok := byteWidth(header & 0x7f)
			if !ok {
				t.Fatalf("invalid width code in header byte %08b", header)
			}
			if gotWidth != tc.width {
				t.Errorf("chosen width = %d bytes, want %d (header=%08b)", gotWidth, tc.width, header)
			}

			block2, err := comp.RowMajor([][]int32{tc.samples})
			if err != nil {
				t.Fatalf("RowMajor: %v", err)
			}
			got, err := decomp.RowMajor(block2, len(tc.samples))
			if err != nil {
				t.Fatalf("RowMajor decode: %v", err)
			}
			assertMatrixEqual(t, got, [][]int32{tc.samples})
		})
	}
}

func TestDecodeChannelTruncatedBlock(t *testing.T) {
	decomp, _ := NewDecompressor(1)
	_, err := decomp.RowMajor([]byte{0x03}, 4) // width=32bit, header only, no sample bytes
	if !errors.Is(err, ErrCorruptBlock) {
		t.Fatalf("expected ErrCorruptBlock, got %v", err)
	}
}

func TestDecodeChannelInvalidWidthCode(t *testing.T) {
	decomp, _ := NewDecompressor(1)
	// width codes are restricted to 0..3 (bits 0..6 of header unused above 3);
	// construct a header with an out-of-range low 7 bits to exercise the
	// not-ok path of byteWidth directly via a hand-crafted block.
	bad := []byte{0x7f, 0, 0, 0, 0}
	_, err := decomp.RowMajor(bad, 1)
	if !errors.Is(err, ErrCorruptBlock) {
		t.Fatalf("expected ErrCorruptBlock, got %v", err)
	}
}

func TestEncodeChannelsConcatenatesPerChannelBlocks(t *testing.T) {
	full := encodeChannels([][]int32{{1, 2, 3}, {1, 2, 3}})
	single := encodeChannel([]int32{1, 2, 3})
	if len(full) != 2*len(single) {
		t.Fatalf("concatenated length = %d, want %d", len(full), 2*len(single))
	}
}

func TestSingleSampleEpochUsesRawMethod(t *testing.T) {
	// A single sample has no predecessor to diff against, so it always
	// encodes with the raw method regardless of the general tie-break rule.
	block := encodeChannel([]int32{42})
	if method(block[0]>>7) != methodRaw {
		t.Fatalf("single-sample encode should use raw method, got method bit %d", block[0]>>7)
	}
}
