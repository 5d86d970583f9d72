package main

import (
	"bytes"
	"fmt"

	"github.com/animalize/brotli"
	"github.com/animalize/brotli/util"
)

func main() {
	input := []byte(util.RandomString(1 << 16))

	// Streaming compression: feed the data in chunks, then finish the
	// stream. The returned pieces concatenate into the compressed stream.
	compressor, err := brotli.NewCompressor(brotli.WithMode(brotli.ModeText))
	if err != nil {
		panic(err)
	}
	defer compressor.Close()

	var compressed []byte
	const chunkSize = 4096
	for rest := input; len(rest) > 0; {
		chunk := rest
		if len(chunk) > chunkSize {
			chunk = chunk[:chunkSize]
		}
		rest = rest[len(chunk):]

		out, err := compressor.Process(chunk)
		if err != nil {
			panic(err)
		}
		compressed = append(compressed, out...)
	}
	out, err := compressor.Finish()
	if err != nil {
		panic(err)
	}
	compressed = append(compressed, out...)

	// One-shot decompression of the whole stream.
	decoded, err := brotli.Decompress(compressed)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(input, decoded) {
		panic("round trip mismatch")
	}

	fmt.Printf("brotli %s: %d bytes -> %d bytes\n",
		brotli.Version(), len(input), len(compressed))
}
