// Package codec implements the reflib sample-block compression scheme: a
// fixed-size epoch of multi-channel int32 samples is packed one channel at
// a time, each channel independently choosing between a raw or
// first-differenced representation and the narrowest of four byte widths
// (1, 2, 3 or 4 bytes per sample) that can losslessly hold it.
//
// The format carries no internal length prefix; callers that need to seek
// past a block without decoding it get the byte length from the epoch
// index (package header), filled from the offsets and lengths the container
// layer (package container/riff) hands back on append, the same split the
// container package's own chunk framing uses between self-contained bytes
// and externally tracked offsets.
package codec
