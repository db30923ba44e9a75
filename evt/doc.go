// Package evt implements the EVT sidecar: a parallel container, using the
// same chunked framing as package container/riff with form tag "EVT ",
// holding three record-array chunks — impedance checks, video markers and
// epoch markers (spec §4.6).
//
// Each chunk is a count-prefixed array of fixed-or-variable-length
// records; Reader decodes all three eagerly at Open, and Writer batches
// appended records in memory, serializing them only on Close (the record
// count for each array chunk is not known until every event has been
// appended).
//
// Impedance values are persisted in kOhm (input values, in ohms, are
// divided by 1000) and converted back to ohms on read, per spec §3/§8.
package evt
