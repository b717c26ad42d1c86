package yay0

import "encoding/binary"

var magic = [4]byte{'Y', 'a', 'y', '0'}

// IsYay0 reports whether input begins with the Yay0 magic bytes. It does not
// validate the rest of the container.
func IsYay0(input []byte) bool {
	return len(input) >= 4 &&
		input[0] == magic[0] && input[1] == magic[1] &&
		input[2] == magic[2] && input[3] == magic[3]
}

// GetDecompressedSize reports the declared decompressed size of a Yay0
// container without decoding it.
func GetDecompressedSize(input []byte) (uint32, error) {
	if len(input) < 8 {
		return 0, ErrTruncated
	}
	if !IsYay0(input) {
		return 0, ErrFormat
	}
	return binary.BigEndian.Uint32(input[4:8]), nil
}

// parsedHeader holds the three sub-slice views a container's header points
// to, plus the declared decompressed size.
type parsedHeader struct {
	decompressedSize uint32
	flag             []byte
	comp             []byte
	raw              []byte
}

// parseHeader verifies the magic, reads the three big-endian u32 fields, and
// slices the flag/comp/raw regions out of input.
func parseHeader(input []byte) (parsedHeader, error) {
	var h parsedHeader

	if len(input) < headerSize {
		return h, ErrTruncated
	}
	if !IsYay0(input) {
		return h, ErrFormat
	}
	h.decompressedSize = binary.BigEndian.Uint32(input[4:8])

	return resolveRegions(input, h.decompressedSize)
}

// resolveRegions reads the comp/raw offsets out of an already magic- and
// length-checked header and slices the flag/comp/raw regions out of input.
// Split out from parseHeader so callers that must check the output buffer
// size against decompressedSize before validating offsets (as Decompress
// does, matching the reference decoder's check order) can do so in between.
func resolveRegions(input []byte, decompressedSize uint32) (parsedHeader, error) {
	h := parsedHeader{decompressedSize: decompressedSize}

	n := uint32(len(input))
	compOffset := binary.BigEndian.Uint32(input[8:12])
	rawOffset := binary.BigEndian.Uint32(input[12:16])

	if compOffset > n || rawOffset > n {
		return h, ErrTruncated
	}

	minOffset := compOffset
	if rawOffset < minOffset {
		minOffset = rawOffset
	}
	if minOffset < headerSize {
		return h, ErrFormat
	}

	h.flag = input[headerSize:minOffset]
	h.comp = input[compOffset:]
	h.raw = input[rawOffset:]

	return h, nil
}

// emitHeader writes the 16-byte container header into the front of dst,
// computing comp/raw offsets from the region sizes that follow it. The
// literal region starts at rawOffset, right after the token region, and runs
// to the end of the container, so its length is not a parameter.
func emitHeader(dst []byte, decompressedSize uint32, flagLenBytes, tokenBytes int) {
	copy(dst[0:4], magic[:])
	binary.BigEndian.PutUint32(dst[4:8], decompressedSize)

	compOffset := uint32(headerSize + flagLenBytes)
	rawOffset := compOffset + uint32(tokenBytes)

	binary.BigEndian.PutUint32(dst[8:12], compOffset)
	binary.BigEndian.PutUint32(dst[12:16], rawOffset)
}
