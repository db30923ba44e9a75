// Package ctk reads and writes CNT reflib EEG recordings and their EVT
// sidecar event streams.
//
// A CNT file is a RIFF or RIFF64 container (container/riff) holding a
// header (header package: version, parameters, electrode table,
// information, triggers, epoch index) followed by one compressed epoch
// payload per chunk (codec package). Writer accumulates samples into
// epoch-aligned blocks and finalises the container on Close; Reader opens
// a file eagerly, parsing every chunk except the sample payloads, and
// decompresses epochs lazily through a single-entry cache.
//
// The value objects described by the format (Electrode, TimeSeries,
// Information, Trigger, the three event kinds, FileVersion, Orientation)
// live in the types subpackage and are re-exported here as aliases so
// callers only need to import this package.
package ctk
