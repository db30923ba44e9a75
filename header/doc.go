// Package header serializes and parses every non-sample chunk of a CNT
// recording: the file version, time-series parameters, electrode table,
// free-form recording information, trigger table and epoch index.
//
// Every record is little-endian; every string is a uint16 byte-length
// prefix followed by raw UTF-8 bytes. Array chunks (electrodes, triggers,
// epoch index) are a uint32 count followed by that many fixed or
// variable-length records, in order.
//
// Decode functions validate every field against the constraints in
// package types (label/reference/unit shape, finite non-zero scales,
// trigger code length) and report the first violation as ErrCorruptHeader
// wrapping the field name, so a malformed file fails at the specific
// record rather than silently truncating.
//
// This package has no knowledge of the container file itself (package
// container/riff): it only turns chunk bodies into values and back.
package header
