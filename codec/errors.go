package codec

import "errors"

var (
	// ErrShapeMismatch is returned when a sample matrix's dimensions don't
	// match the configured sensor count.
	ErrShapeMismatch = errors.New("codec: sample matrix shape mismatch")
	// ErrCorruptBlock is returned when a compressed block cannot be
	// decoded: a width code outside {0,1,2,3}, or fewer bytes than the
	// header byte promises.
	ErrCorruptBlock = errors.New("codec: corrupt compressed block")
)
