package yay0

import "encoding/binary"

// Compress encodes input into a freshly allocated, conformant Yay0
// container. It always allocates; any prior buffer a caller might have is
// not consulted (see DESIGN.md for why this resolves spec.md's open
// question about *output_size as an in/out parameter).
func Compress(input []byte) ([]byte, error) {
	n := len(input)

	search := newMatchSearch(input)
	flags := newFlagWriter()
	var tokens []uint16
	var literals []byte

	pos := 0
	for pos < n {
		matchPos, matchLen := search.find(pos)

		if matchLen <= 2 {
			flags.putBit(1)
			literals = append(literals, input[pos])
			pos++
			continue
		}

		// Lazy match: look one position ahead before committing. If the
		// next position has a substantially better match, emit a literal
		// now and let the better match win next.
		nextMatchPos, nextMatchLen := search.find(pos + 1)
		if nextMatchLen > matchLen+1 {
			flags.putBit(1)
			literals = append(literals, input[pos])
			pos++
			matchPos, matchLen = nextMatchPos, nextMatchLen
		}

		flags.putBit(0)
		relDist := pos - matchPos - 1

		if matchLen > shortMatchLength {
			tokens = append(tokens, uint16(relDist))
			literals = append(literals, byte(matchLen-(shortMatchLength+1)))
		} else {
			tokens = append(tokens, uint16(relDist)|uint16(matchLen-2)<<12)
		}

		pos += matchLen
	}

	flagWords := flags.serialize()
	flagLenBytes := len(flagWords) * 4
	tokenBytes := len(tokens) * 2

	out := make([]byte, headerSize+flagLenBytes+tokenBytes+len(literals))
	emitHeader(out, uint32(n), flagLenBytes, tokenBytes)

	off := headerSize
	for _, w := range flagWords {
		binary.BigEndian.PutUint32(out[off:], w)
		off += 4
	}
	for _, t := range tokens {
		binary.BigEndian.PutUint16(out[off:], t)
		off += 2
	}
	copy(out[off:], literals)

	return out, nil
}
