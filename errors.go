package ctk

import (
	"errors"

	"github.com/slatinski/ctk/codec"
	"github.com/slatinski/ctk/container/riff"
	"github.com/slatinski/ctk/header"
	"github.com/slatinski/ctk/types"
)

// Error kinds that originate in this package. Kinds that are equally at
// home in a subpackage (shape mismatches, corrupt chunks, container
// framing) are re-exported as the same sentinel value rather than
// rewrapped, so errors.Is works across the package boundary exactly as it
// does inside the subpackage's own tests.
var (
	// ErrOutOfRange is returned by Range/Epoch when the requested window
	// falls outside [0, sample_count).
	ErrOutOfRange = errors.New("ctk: sample range out of bounds")
	// ErrInvalidTrigger is returned by AppendTrigger/AppendTriggers when a
	// trigger code exceeds 8 bytes.
	ErrInvalidTrigger = errors.New("ctk: invalid trigger")
	// ErrWriterLocked is returned by a param setter called after the first
	// sample has been appended.
	ErrWriterLocked = errors.New("ctk: writer parameters are locked after first append")
	// ErrWriterClosed is returned by any append call made after Close.
	ErrWriterClosed = errors.New("ctk: writer is closed")

	// ErrShapeMismatch: a sample matrix's channel count does not match
	// the electrode table.
	ErrShapeMismatch = codec.ErrShapeMismatch
	// ErrInvalidField: a value-object setter rejected its argument.
	ErrInvalidField = types.ErrInvalidField
	// ErrNotAContainer, ErrTruncated, ErrIO: container framing failures.
	ErrNotAContainer = riff.ErrNotAContainer
	ErrTruncated     = riff.ErrTruncated
	ErrIO            = riff.ErrIO
	// ErrCorruptHeader: a header chunk failed to parse or validate.
	ErrCorruptHeader = header.ErrCorruptHeader
	// ErrCorruptBlock: an epoch payload failed to decompress.
	ErrCorruptBlock = codec.ErrCorruptBlock
)
