package evt

import "errors"

var (
	// ErrCorruptEvent is returned when an EVT chunk body is malformed or
	// the file's form tag is not "EVT ".
	ErrCorruptEvent = errors.New("evt: corrupt event record")
	// ErrWriterClosed is returned by an append method after Close.
	ErrWriterClosed = errors.New("evt: writer is closed")
)
