// Command yay0 encodes and decodes Yay0 containers.
//
// Usage:
//
//	yay0 encode <in> <out>
//	yay0 decode <in> <out>
package main

import (
	"fmt"
	"os"

	"github.com/celerizer/go-yay0"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <encode|decode> <inputfile> <outputfile>\n", os.Args[0])
		os.Exit(1)
	}

	mode, inPath, outPath := os.Args[1], os.Args[2], os.Args[3]

	var err error
	switch mode {
	case "decode":
		err = decode(inPath, outPath)
	case "encode":
		err = encode(inPath, outPath)
	default:
		err = fmt.Errorf("invalid mode %q, use encode or decode", mode)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func decode(inPath, outPath string) error {
	input, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", inPath, err)
	}

	if !yay0.IsYay0(input) {
		return fmt.Errorf("%s is not a Yay0 file", inPath)
	}

	size, err := yay0.GetDecompressedSize(input)
	if err != nil {
		return fmt.Errorf("failed to get decompressed size: %w", err)
	}

	output := make([]byte, size)
	if err := yay0.Decompress(input, output); err != nil {
		return fmt.Errorf("decompression failed: %w", err)
	}

	if err := os.WriteFile(outPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("Decompressed %s -> %s (%d bytes)\n", inPath, outPath, len(output))
	return nil
}

func encode(inPath, outPath string) error {
	input, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", inPath, err)
	}

	output, err := yay0.Compress(input)
	if err != nil {
		return fmt.Errorf("compression failed: %w", err)
	}

	if err := os.WriteFile(outPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("Compressed %s -> %s (%d bytes)\n", inPath, outPath, len(output))
	return nil
}
