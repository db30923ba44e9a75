package riff

import (
	"fmt"
	"io"
	"os"
)

// Writer creates a RIFF/RIFF64 container at a temp path, appending chunks
// sequentially and patching the outer length on Finalize. Mirrors the
// teacher's ogg.Writer: write-forward with a closed guard, no in-memory
// buffering of the whole file.
type Writer struct {
	variant Variant
	f       *os.File
	tmpPath string
	path    string
	closed  bool
}

// NewWriter creates path+".tmp" and writes the outer tag, a placeholder
// length (patched by Finalize) and the form tag.
func NewWriter(path string, variant Variant, form string) (*Writer, error) {
	formTag, err := encodeTag(form)
	if err != nil {
		return nil, err
	}

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrIO, tmpPath, err)
	}

	w := &Writer{variant: variant, f: f, tmpPath: tmpPath, path: path}

	header := make([]byte, tagSize+variant.lenSize()+tagSize)
	copy(header[:tagSize], variant.outerTag())
	copy(header[tagSize+variant.lenSize():], formTag[:])
	if _, err := f.Write(header); err != nil {
		w.abort()
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return w, nil
}

// AppendChunk writes tag+length+body, padding with one zero byte if body
// has an odd length, and returns the body's absolute file offset so a
// caller can record it (e.g. in an epoch index) without a second seek.
func (w *Writer) AppendChunk(tag string, body []byte) (uint64, error) {
	if w.closed {
		return 0, ErrWriterClosed
	}
	tagBytes, err := encodeTag(tag)
	if err != nil {
		return 0, err
	}

	lenBuf := make([]byte, w.variant.lenSize())
	putLen(lenBuf, w.variant, uint64(len(body)))

	if _, err := w.f.Write(tagBytes[:]); err != nil {
		return 0, w.ioerr(err)
	}
	if _, err := w.f.Write(lenBuf); err != nil {
		return 0, w.ioerr(err)
	}
	offset, err := w.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, w.ioerr(err)
	}
	if len(body) > 0 {
		if _, err := w.f.Write(body); err != nil {
			return 0, w.ioerr(err)
		}
	}
	if len(body)%2 == 1 {
		if _, err := w.f.Write([]byte{0}); err != nil {
			return 0, w.ioerr(err)
		}
	}
	return uint64(offset), nil
}

// Finalize patches the outer length, fsyncs, and atomically renames the
// temp path to the target path. A failed Finalize leaves the temp file
// removed and no file visible at the target path.
func (w *Writer) Finalize() error {
	if w.closed {
		return nil
	}

	end, err := w.f.Seek(0, io.SeekCurrent)
	if err != nil {
		w.abort()
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	outerLen := uint64(end) - uint64(tagSize+w.variant.lenSize())
	lenBuf := make([]byte, w.variant.lenSize())
	putLen(lenBuf, w.variant, outerLen)
	if _, err := w.f.WriteAt(lenBuf, int64(tagSize)); err != nil {
		w.abort()
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := w.f.Sync(); err != nil {
		w.abort()
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := w.f.Close(); err != nil {
		os.Remove(w.tmpPath)
		w.closed = true
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := os.Rename(w.tmpPath, w.path); err != nil {
		os.Remove(w.tmpPath)
		w.closed = true
		return fmt.Errorf("%w: rename %s to %s: %v", ErrIO, w.tmpPath, w.path, err)
	}
	w.closed = true
	return nil
}

// Abort discards the in-progress file and removes the temp path. Safe to
// call after any error returned by AppendChunk; a no-op once Finalize has
// run or the writer has already aborted itself. NewWriter cleans up after
// its own failures and returns no Writer to abort.
func (w *Writer) Abort() error {
	w.abort()
	return nil
}

func (w *Writer) abort() {
	if w.closed {
		return
	}
	w.f.Close()
	os.Remove(w.tmpPath)
	w.closed = true
}

func (w *Writer) ioerr(err error) error {
	w.abort()
	return fmt.Errorf("%w: %v", ErrIO, err)
}
