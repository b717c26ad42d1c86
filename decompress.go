package yay0

import "encoding/binary"

// Decompress decodes a complete Yay0 container into output. output must be
// at least as large as the container's declared decompressed size, or
// ErrOutputSmall is returned before any byte is written. Matching the
// reference decoder, the output-size check happens before the comp/raw
// offsets are even read, so a too-small buffer is reported even if the rest
// of the header is malformed.
func Decompress(input []byte, output []byte) error {
	if len(input) < headerSize {
		return ErrTruncated
	}
	if !IsYay0(input) {
		return ErrFormat
	}

	decompressedSize := binary.BigEndian.Uint32(input[4:8])
	if uint64(len(output)) < uint64(decompressedSize) {
		return ErrOutputSmall
	}

	h, err := resolveRegions(input, decompressedSize)
	if err != nil {
		return err
	}

	return DecompressHeaderless(h.flag, h.comp, h.raw, output[:h.decompressedSize])
}

// DecompressHeaderless replays the flag/token/raw streams of an already
// parsed container into output, filling it completely. It is the decoder's
// entire symbol-dispatch loop; Decompress is a thin header-parsing wrapper
// around it.
func DecompressHeaderless(flag, comp, raw []byte, output []byte) error {
	flags := newBitFlagReader(flag)
	tokens := newByteCursor(comp)
	literals := newByteCursor(raw)

	emitted := 0
	for emitted < len(output) {
		bit, err := flags.readBit()
		if err != nil {
			return ErrTruncated
		}

		if bit == 1 {
			b, err := literals.readByte()
			if err != nil {
				return ErrTruncated
			}
			output[emitted] = b
			emitted++
			continue
		}

		w, err := tokens.readByte()
		if err != nil {
			return ErrTruncated
		}
		b2, err := tokens.readByte()
		if err != nil {
			return ErrTruncated
		}

		distance := ((int(w)&0x0F)<<8 | int(b2)) + 1
		length := (int(w) >> 4) & 0x0F

		if length == 0 {
			ext, err := literals.readByte()
			if err != nil {
				return ErrTruncated
			}
			length = int(ext) + 0x12
		} else {
			length += 2
		}

		if distance > emitted {
			return ErrBackRef
		}

		// Copy byte-by-byte: a source byte may be one this very copy wrote
		// moments ago, which is what makes distance-1 copies a run-length
		// fill rather than undefined behavior.
		src := emitted - distance
		for i := 0; i < length && emitted < len(output); i++ {
			output[emitted] = output[src]
			emitted++
			src++
		}
	}

	return nil
}
