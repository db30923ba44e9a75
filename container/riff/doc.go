// Package riff implements the chunked container framing shared by the CNT
// recording file and its EVT sidecar: a RIFF-style file, 32-bit lengths by
// default or 64-bit lengths when a recording is expected to exceed 4GiB.
//
// # Container Structure
//
// A container has the following structure:
//
//	Bytes 0-3:     outer tag, "RIFF" (32-bit lengths) or "RF64" (64-bit lengths)
//	Bytes 4-7(/11): outer length, little-endian, patched on Finalize
//	Next 4 bytes:  form tag identifying the container's contents ("CNT "/"EVT ")
//	Remaining:     a sequence of chunks, each:
//	                 4-byte tag
//	                 4- or 8-byte length (matching the outer tag's width)
//	                 body, padded with one zero byte if its length is odd
//
// The outer length counts every byte from the form tag to the end of file,
// i.e. file size minus the size of the outer tag and length fields
// themselves — the classic RIFF convention.
//
// Unlike real-world RF64, the 64-bit variant here does not need a leading
// ds64 pseudo-chunk: every length field in this format (outer and
// per-chunk) is already the full width selected by the outer tag, so the
// true length is patched directly into the 8-byte outer field on Finalize.
//
// # Random access
//
// Reader indexes every chunk by tag at Open, recording each occurrence's
// absolute body offset and length without copying. Repeated tags (one per
// recorded epoch) are kept in append order. Writer.AppendChunk returns the
// absolute body offset of what it just wrote, letting a caller (the epoch
// index) record random-access offsets without a second pass over the file.
package riff
