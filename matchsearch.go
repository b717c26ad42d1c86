package yay0

// matchSearch finds back-reference candidates for a single Compress call. It
// is scoped to that call (not a package-level variable), so two concurrent
// compressions never share search state.
type matchSearch struct {
	data []byte
}

func newMatchSearch(data []byte) *matchSearch {
	return &matchSearch{data: data}
}

// find looks for the best back-reference for the suffix starting at pos,
// searching at most windowSize bytes back. It returns (0, 0) when no match
// of useful length exists.
//
// The search is a Boyer-Moore-style bad-character scan that grows the
// confirmed match length monotonically: each hit extends the match as far as
// bytes agree, then restarts the scan with the new, longer pattern from just
// past the hit. This is an approximation, not a global longest-match search;
// a different heuristic would still round-trip correctly but would pick
// different match lengths and so change the compressed size.
//
// The returned length is one less than the length matchSearch tracked
// internally for non-maximal matches — preserved verbatim for format
// compatibility with the original encoder.
func (m *matchSearch) find(pos int) (matchPos int, matchLen int) {
	n := len(m.data)

	matchLen = minMatchLength
	searchStart := max(0, pos-windowSize)

	maxMatchLen := min(maxMatchLength, n-pos)
	if maxMatchLen < matchLen {
		return 0, 0
	}

	bestPos := 0

	for pos > searchStart {
		haystackLen := matchLen + pos - searchStart
		mismatchOffset := badCharSearch(m.data[pos:pos+matchLen], m.data[searchStart:searchStart+haystackLen])

		if mismatchOffset >= pos-searchStart {
			// no more candidates in range
			break
		}

		for maxMatchLen > matchLen && m.data[matchLen+searchStart+mismatchOffset] == m.data[matchLen+pos] {
			matchLen++
		}

		if matchLen == maxMatchLen {
			return searchStart + mismatchOffset, matchLen
		}

		bestPos = searchStart + mismatchOffset
		matchLen++
		searchStart += mismatchOffset + 1

		if pos <= searchStart {
			break
		}
	}

	if matchLen > minMatchLength {
		return bestPos, matchLen - 1
	}
	return 0, 0
}

// badCharSearch locates the first occurrence of pattern within data using a
// Boyer-Moore bad-character skip table, returning the index within data
// where pattern starts, or len(data) if it isn't found. Requires
// len(pattern) <= len(data).
func badCharSearch(pattern, data []byte) int {
	patternLen := len(pattern)
	dataLen := len(data)
	if patternLen > dataLen {
		return dataLen
	}

	var skip [256]int
	for i := range skip {
		skip[i] = patternLen
	}
	for i := 0; i < patternLen; i++ {
		skip[pattern[i]] = patternLen - i - 1
	}

	i := patternLen - 1
	for {
		if pattern[patternLen-1] == data[i] {
			i--
			j := patternLen - 2
			if j < 0 {
				return i + 1
			}
			for pattern[j] == data[i] {
				i--
				j--
				if j < 0 {
					return i + 1
				}
			}
			shift := patternLen - j
			if skip[data[i]] > shift {
				shift = skip[data[i]]
			}
			i += shift
		} else {
			i += skip[data[i]]
		}
		if i >= dataLen {
			break
		}
	}

	return dataLen
}
