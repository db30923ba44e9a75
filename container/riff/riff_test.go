package riff

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSample(t *testing.T, path string, variant Variant) {
	t.Helper()
	w, err := NewWriter(path, variant, "CNT ")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if _, err := w.AppendChunk("vrsn", []byte{1, 0, 0, 0, 0, 0, 0, 0}); err != nil {
		t.Fatalf("AppendChunk vrsn: %v", err)
	}
	if _, err := w.AppendChunk("epch", []byte{1, 2, 3}); err != nil { // odd length, exercises padding
		t.Fatalf("AppendChunk epch 0: %v", err)
	}
	if _, err := w.AppendChunk("epch", []byte{4, 5, 6, 7}); err != nil {
		t.Fatalf("AppendChunk epch 1: %v", err)
	}
	if err := w.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
}

func TestWriteReadRoundTripRIFF32(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.cnt")
	writeSample(t, path, RIFF)

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if r.Variant() != RIFF {
		t.Fatalf("Variant() = %v, want RIFF", r.Variant())
	}
	if r.Form() != "CNT " {
		t.Fatalf("Form() = %q, want %q", r.Form(), "CNT ")
	}
	vrsn, err := r.ReadChunk("vrsn")
	if err != nil {
		t.Fatalf("ReadChunk(vrsn): %v", err)
	}
	if !bytes.Equal(vrsn, []byte{1, 0, 0, 0, 0, 0, 0, 0}) {
		t.Fatalf("vrsn body = %v", vrsn)
	}

	if r.ChunkCount("epch") != 2 {
		t.Fatalf("ChunkCount(epch) = %d, want 2", r.ChunkCount("epch"))
	}
	epochs, err := r.ReadChunks("epch")
	if err != nil {
		t.Fatalf("ReadChunks(epch): %v", err)
	}
	if !bytes.Equal(epochs[0], []byte{1, 2, 3}) || !bytes.Equal(epochs[1], []byte{4, 5, 6, 7}) {
		t.Fatalf("epoch chunks = %v", epochs)
	}
}

func TestWriteReadRoundTripRIFF64(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b.cnt")
	writeSample(t, path, RIFF64)

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if r.Variant() != RIFF64 {
		t.Fatalf("Variant() = %v, want RIFF64", r.Variant())
	}
	epochs, err := r.ReadChunks("epch")
	if err != nil {
		t.Fatalf("ReadChunks(epch): %v", err)
	}
	if len(epochs) != 2 {
		t.Fatalf("len(epochs) = %d, want 2", len(epochs))
	}
}

func TestAppendChunkReturnsOffsetUsableWithReadAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.cnt")
	w, err := NewWriter(path, RIFF, "CNT ")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	off, err := w.AppendChunk("epch", []byte{9, 9, 9, 9})
	if err != nil {
		t.Fatalf("AppendChunk: %v", err)
	}
	if err := w.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	body, err := r.ReadAt(off, 4)
	if err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if !bytes.Equal(body, []byte{9, 9, 9, 9}) {
		t.Fatalf("ReadAt = %v", body)
	}
}

func TestOpenNotAContainer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cnt")
	writeRawFile(t, path, []byte("NOPE0000formdata"))
	if _, err := Open(path); !errors.Is(err, ErrNotAContainer) {
		t.Fatalf("expected ErrNotAContainer, got %v", err)
	}
}

func TestOpenTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trunc.cnt")
	writeRawFile(t, path, []byte("RIFF\xff\x00\x00\x00CNT "))
	if _, err := Open(path); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestReadChunkNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.cnt")
	writeSample(t, path, RIFF)
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := r.ReadChunk("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAppendChunkAfterFinalizeFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "e.cnt")
	w, err := NewWriter(path, RIFF, "CNT ")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if _, err := w.AppendChunk("vrsn", []byte{0}); !errors.Is(err, ErrWriterClosed) {
		t.Fatalf("expected ErrWriterClosed, got %v", err)
	}
}

func TestAbortRemovesTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.cnt")
	w, err := NewWriter(path, RIFF, "CNT ")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Abort(); err != nil {
		t.Fatalf("Abort: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatalf("expected no finalized file to exist at %s", path)
	}
}

func writeRawFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
