/*
Package yay0 implements the Yay0 compressed data format, a Lempel-Ziv-style
back-reference scheme used on Nintendo 64 titles to pack read-only asset
data.

A Yay0 container is a 16-byte big-endian header (magic "Yay0", decompressed
size, and two absolute offsets) followed by three interleaved streams: a
bit-packed flag stream marking each symbol as a literal or a back-reference,
a stream of 16-bit back-reference tokens, and a stream of raw literal and
length-extension bytes.

# Decompress

GetDecompressedSize reports the declared output size so callers can size
their buffer:

	size, err := yay0.GetDecompressedSize(compressed)
	out := make([]byte, size)
	err = yay0.Decompress(compressed, out)

DecompressHeaderless drives the same decode loop over streams whose header
has already been parsed by the caller:

	err := yay0.DecompressHeaderless(flag, comp, raw, out)

# Compress

Compress always allocates a fresh, freshly-sized buffer:

	compressed, err := yay0.Compress(data)

IsYay0 reports whether a buffer begins with the Yay0 magic, without
otherwise validating it.
*/
package yay0
