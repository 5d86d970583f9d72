package brotli

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/animalize/brotli/internal/blockbuffer"
	"github.com/animalize/brotli/internal/codec"
	"github.com/animalize/brotli/util"
)

// Decompressor decompresses a stream of data fed to it chunk by chunk. The
// output returned by Process calls must be concatenated in call order to
// form the decompressed data.
//
// A Decompressor is bound to a single underlying decoder instance and must
// not be shared between goroutines.
type Decompressor struct {
	dec      *codec.Decoder
	unusable bool
}

// NewDecompressor creates a decompression stream.
func NewDecompressor() (*Decompressor, error) {
	dec, err := codec.NewDecoder()
	if err != nil {
		return nil, err
	}
	return &Decompressor{dec: dec}, nil
}

// Process decompresses data, returning the decompressed output produced so
// far. Some or all of the input may be kept in internal buffers, so the
// returned slice may be empty until enough input has accumulated.
//
// A chunk may end before the compressed stream does; feed the following
// chunks with further Process calls. Once the stream has ended (IsFinished
// reports true) feeding more input is an error.
func (d *Decompressor) Process(data []byte) ([]byte, error) {
	if d.unusable {
		return nil, errors.New("decompress stream is unusable, a new Decompressor is required")
	}
	if d.dec.IsFinished() {
		return nil, errors.New("decompress stream is already finished, a new Decompressor is required")
	}

	out, err := decompressStream(d.dec, data, new(blockbuffer.Buffer), false)
	if err != nil {
		d.unusable = true
		util.Logger().Error("brotli decompression failed",
			zap.Int("inputBytes", len(data)), zap.Error(err))
		return nil, err
	}
	return out, nil
}

// IsFinished reports whether the decoder reached the end of the compressed
// stream and produced all of the output.
func (d *Decompressor) IsFinished() bool {
	return !d.unusable && d.dec.IsFinished()
}

// Close releases the underlying decoder state. The Decompressor cannot be
// used afterwards. Calling Close more than once is a no-op.
func (d *Decompressor) Close() {
	d.unusable = true
	d.dec.Close()
}
