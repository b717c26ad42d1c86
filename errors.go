package yay0

import "errors"

// Sentinel errors returned by this package. They form the stable error
// taxonomy: callers can compare with errors.Is.
var (
	// ErrTruncated is returned when a read from the flag, token, or raw
	// stream (or the container header itself) runs off the end of its slice.
	ErrTruncated = errors.New("yay0: truncated input")
	// ErrFormat is returned when the magic bytes don't match, or the header
	// offsets are self-inconsistent (min(compOffset, rawOffset) < 16).
	ErrFormat = errors.New("yay0: not a valid Yay0 container")
	// ErrOutputSmall is returned when the caller-supplied output buffer is
	// shorter than the declared decompressed size. Detected before any byte
	// is written.
	ErrOutputSmall = errors.New("yay0: output buffer too small")
	// ErrBackRef is returned when a decoded back-reference distance exceeds
	// the number of bytes emitted so far.
	ErrBackRef = errors.New("yay0: back-reference out of range")
)
