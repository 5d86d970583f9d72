// Package brotli provides streaming brotli compression and decompression
// backed by the system brotli library.
//
// Compressor and Decompressor carry a compressed stream across multiple
// calls; Compress and Decompress handle a whole buffer in one call. Output
// of unknown final size is accumulated in fixed-size blocks and flattened
// with a single copy, so no size estimate is needed up front.
package brotli

import (
	"go.uber.org/zap"

	"github.com/animalize/brotli/internal/blockbuffer"
	"github.com/animalize/brotli/internal/codec"
	"github.com/animalize/brotli/util"
)

// Compress compresses data in one call, equivalent to feeding it to a fresh
// Compressor and finishing the stream.
func Compress(data []byte, opts ...CompressorOpt) ([]byte, error) {
	c, err := NewCompressor(opts...)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return c.finishPump(data)
}

// Decompress decompresses a complete compressed buffer in one call. The
// input must hold exactly one compressed stream: a truncated stream or
// trailing data after the stream is an error, and no partial output is
// returned.
func Decompress(data []byte) ([]byte, error) {
	dec, err := codec.NewDecoder()
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	out, err := decompressStream(dec, data, new(blockbuffer.Buffer), true)
	if err != nil {
		util.Logger().Error("brotli decompression failed",
			zap.Int("inputBytes", len(data)), zap.Error(err))
		return nil, err
	}
	return out, nil
}

// Version reports the version of the linked brotli library.
func Version() string {
	return codec.Version()
}
