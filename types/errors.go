package types

import "errors"

// ErrInvalidField is returned by a value object's setter or constructor
// when the supplied value fails a §3 constraint (length, whitespace,
// finiteness). The receiver is left unchanged.
var ErrInvalidField = errors.New("ctk: invalid field")
