package yay0

import (
	"errors"
	"testing"
)

func TestIsYay0(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want bool
	}{
		{"valid magic", []byte("Yay0rest"), true},
		{"wrong magic", []byte("Yaz0rest"), false},
		{"too short", []byte("Yay"), false},
		{"empty", nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsYay0(c.in); got != c.want {
				t.Fatalf("IsYay0(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestGetDecompressedSize(t *testing.T) {
	input := make([]byte, 16)
	copy(input, "Yay0")
	input[4], input[5], input[6], input[7] = 0x00, 0x00, 0x01, 0x00 // 256

	size, err := GetDecompressedSize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 256 {
		t.Fatalf("size = %d, want 256", size)
	}
}

func TestGetDecompressedSize_Truncated(t *testing.T) {
	if _, err := GetDecompressedSize([]byte("Yay0")); !errors.Is(err, ErrTruncated) {
		t.Fatalf("want ErrTruncated, got %v", err)
	}
}

func TestGetDecompressedSize_FormatMismatch(t *testing.T) {
	if _, err := GetDecompressedSize([]byte("Yaz0abcd")); !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat, got %v", err)
	}
}

func TestParseHeader_RoundTripsWithEmit(t *testing.T) {
	flagWords := []uint32{0x80000000}
	tokens := []uint16{0x1234}
	literals := []byte{1, 2, 3}

	out := make([]byte, headerSize+4+2+len(literals))
	emitHeader(out, 5, 4, 2)
	off := headerSize
	out[off], out[off+1], out[off+2], out[off+3] = byte(flagWords[0]>>24), byte(flagWords[0]>>16), byte(flagWords[0]>>8), byte(flagWords[0])
	off += 4
	out[off], out[off+1] = byte(tokens[0]>>8), byte(tokens[0])
	off += 2
	copy(out[off:], literals)

	h, err := parseHeader(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.decompressedSize != 5 {
		t.Fatalf("decompressedSize = %d, want 5", h.decompressedSize)
	}
	if len(h.flag) != 4 {
		t.Fatalf("flag region len = %d, want 4", len(h.flag))
	}
	if len(h.comp) != 2+len(literals) {
		t.Fatalf("comp region len = %d, want %d", len(h.comp), 2+len(literals))
	}
	if len(h.raw) != len(literals) {
		t.Fatalf("raw region len = %d, want %d", len(h.raw), len(literals))
	}
}

func TestParseHeader_FormatMismatch(t *testing.T) {
	input := make([]byte, 16)
	copy(input, "Nope")
	if _, err := parseHeader(input); !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat, got %v", err)
	}
}

func TestParseHeader_TruncatedShortBuffer(t *testing.T) {
	if _, err := parseHeader([]byte("Yay0")); !errors.Is(err, ErrTruncated) {
		t.Fatalf("want ErrTruncated, got %v", err)
	}
}

func TestParseHeader_OffsetBeyondFileSize(t *testing.T) {
	input := make([]byte, 16)
	copy(input, "Yay0")
	input[11] = 0xFF // comp_offset absurdly large
	if _, err := parseHeader(input); !errors.Is(err, ErrTruncated) {
		t.Fatalf("want ErrTruncated, got %v", err)
	}
}

func TestParseHeader_OffsetBelowHeaderSize(t *testing.T) {
	input := make([]byte, 20)
	copy(input, "Yay0")
	// comp_offset = 0, raw_offset = 0: min(0,0) = 0 < 16
	if _, err := parseHeader(input); !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat, got %v", err)
	}
}
