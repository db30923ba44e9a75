package riff

import "errors"

var (
	// ErrNotAContainer is returned when a file's outer tag is neither
	// "RIFF" nor "RF64".
	ErrNotAContainer = errors.New("riff: not a RIFF/RIFF64 container")
	// ErrTruncated is returned when the outer length or a chunk length
	// promises more bytes than the file actually holds.
	ErrTruncated = errors.New("riff: truncated file")
	// ErrNotFound is returned by ReadChunk when no chunk with the
	// requested tag was indexed.
	ErrNotFound = errors.New("riff: chunk not found")
	// ErrWriterClosed is returned by AppendChunk after Finalize or Abort.
	ErrWriterClosed = errors.New("riff: writer already closed")
	// ErrIO wraps an underlying os/io failure.
	ErrIO = errors.New("riff: io error")
)
