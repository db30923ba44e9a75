package riff

import (
	"fmt"
	"os"
)

type chunkLoc struct {
	offset uint64 // absolute file offset of the body
	length uint64
}

// Reader opens a RIFF/RIFF64 container for random access. Every top-level
// chunk is indexed by tag at Open; no chunk body is copied until
// ReadChunk/ReadAt is called, and the underlying buffer is reused for
// every returned slice (callers that need to retain data across file
// reuse should copy it).
type Reader struct {
	data    []byte
	variant Variant
	form    string
	index   map[string][]chunkLoc
}

// Open reads path fully into memory and builds the chunk index.
func Open(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return parse(data)
}

func parse(data []byte) (*Reader, error) {
	if len(data) < tagSize {
		return nil, ErrTruncated
	}

	var variant Variant
	switch string(data[:tagSize]) {
	case outerTagRIFF:
		variant = RIFF
	case outerTagRIFF64:
		variant = RIFF64
	default:
		return nil, ErrNotAContainer
	}

	headerLen := tagSize + variant.lenSize() + tagSize
	if len(data) < headerLen {
		return nil, ErrTruncated
	}
	outerLen := getLen(data[tagSize:tagSize+variant.lenSize()], variant)
	form := string(data[tagSize+variant.lenSize() : headerLen])

	body := data[headerLen:]
	if outerLen < uint64(tagSize) {
		return nil, ErrTruncated
	}
	wantBodyLen := outerLen - uint64(tagSize)
	if uint64(len(body)) < wantBodyLen {
		return nil, ErrTruncated
	}

	r := &Reader{data: data, variant: variant, form: form, index: make(map[string][]chunkLoc)}

	chunkHeaderLen := tagSize + variant.lenSize()
	pos := 0
	for pos+chunkHeaderLen <= len(body) {
		tag := string(body[pos : pos+tagSize])
		length := getLen(body[pos+tagSize:pos+chunkHeaderLen], variant)
		bodyStart := pos + chunkHeaderLen
		bodyEnd := bodyStart + int(length)
		if bodyEnd > len(body) || bodyEnd < bodyStart {
			return nil, ErrTruncated
		}
		absOffset := uint64(headerLen + bodyStart)
		r.index[tag] = append(r.index[tag], chunkLoc{offset: absOffset, length: length})

		pos = bodyEnd
		if length%2 == 1 {
			pos++
		}
	}
	return r, nil
}

// Form returns the outer form tag ("CNT " or "EVT ").
func (r *Reader) Form() string { return r.form }

// Variant returns the length-field width this container was written with.
func (r *Reader) Variant() Variant { return r.variant }

// ChunkCount returns how many chunks are indexed under tag (0 if absent).
func (r *Reader) ChunkCount(tag string) int { return len(r.index[tag]) }

// ReadChunk returns the body of the first chunk with the given tag, or
// ErrNotFound if none was indexed.
func (r *Reader) ReadChunk(tag string) ([]byte, error) {
	locs, ok := r.index[tag]
	if !ok || len(locs) == 0 {
		return nil, ErrNotFound
	}
	return r.bytesAt(locs[0])
}

// ReadChunks returns the bodies of every chunk with the given tag, in
// append order. Returns a nil slice (no error) if the tag is absent.
func (r *Reader) ReadChunks(tag string) ([][]byte, error) {
	locs := r.index[tag]
	if len(locs) == 0 {
		return nil, nil
	}
	out := make([][]byte, len(locs))
	for i, loc := range locs {
		b, err := r.bytesAt(loc)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// ReadAt returns length bytes starting at an absolute file offset, as
// returned by Writer.AppendChunk. Used for random access into epoch
// payloads without a tag lookup.
func (r *Reader) ReadAt(offset, length uint64) ([]byte, error) {
	return r.bytesAt(chunkLoc{offset: offset, length: length})
}

func (r *Reader) bytesAt(loc chunkLoc) ([]byte, error) {
	end := loc.offset + loc.length
	if end > uint64(len(r.data)) || end < loc.offset {
		return nil, ErrTruncated
	}
	return r.data[loc.offset:end], nil
}
