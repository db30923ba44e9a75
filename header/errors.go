package header

import "errors"

// ErrCorruptHeader is returned when a chunk body is too short for its
// fixed layout or names a field that fails the validation rules in
// package types. Errors are wrapped with fmt.Errorf("%w: field ...", ...)
// to name the offending field.
var ErrCorruptHeader = errors.New("header: corrupt header chunk")
