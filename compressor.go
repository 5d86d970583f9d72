package brotli

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/animalize/brotli/internal/blockbuffer"
	"github.com/animalize/brotli/internal/codec"
	"github.com/animalize/brotli/util"
)

// Compressor compresses a stream of data fed to it chunk by chunk. The
// output returned by Process, Flush and Finish must be concatenated in call
// order to form the compressed stream.
//
// A Compressor is bound to a single underlying encoder instance and must not
// be shared between goroutines. After Finish, or after any failed call, the
// stream is terminal and a new Compressor is required.
type Compressor struct {
	enc      *codec.Encoder
	finished bool
}

// NewCompressor creates a compression stream. Option values are validated
// before the encoder instance is created; an out-of-range value fails here
// and never reaches the codec.
func NewCompressor(opts ...CompressorOpt) (*Compressor, error) {
	cfg := defaultCompressorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	enc, err := codec.NewEncoder(int(cfg.mode), cfg.quality, cfg.lgwin, cfg.lgblock)
	if err != nil {
		return nil, err
	}
	return &Compressor{enc: enc}, nil
}

// Process compresses data, returning any compressed output produced so far.
// Some or all of the input may be kept in internal buffers, so the returned
// slice may be empty until enough input has accumulated. A zero-length input
// is valid.
func (c *Compressor) Process(data []byte) ([]byte, error) {
	return c.pump(codec.OperationProcess, data)
}

// Flush forces all pending input into complete output blocks, so everything
// fed so far can be fully decoded from the concatenated output.
func (c *Compressor) Flush() ([]byte, error) {
	return c.pump(codec.OperationFlush, nil)
}

// Finish completes the stream, returning the remaining compressed data
// including the final stream marks. The Compressor cannot be used again
// afterwards.
func (c *Compressor) Finish() ([]byte, error) {
	return c.finishPump(nil)
}

// Close releases the underlying encoder state. The Compressor cannot be
// used afterwards. Calling Close more than once is a no-op.
func (c *Compressor) Close() {
	c.finished = true
	c.enc.Close()
}

func (c *Compressor) finishPump(data []byte) ([]byte, error) {
	out, err := c.pump(codec.OperationFinish, data)
	if err != nil {
		return nil, err
	}
	c.finished = true
	if !c.enc.IsFinished() {
		return nil, errors.New("brotli encoder failed while finishing the stream")
	}
	return out, nil
}

func (c *Compressor) pump(op codec.EncoderOperation, data []byte) ([]byte, error) {
	if c.finished {
		return nil, errors.New("compress stream is already finished, a new Compressor is required")
	}

	out, err := compressStream(c.enc, op, data, new(blockbuffer.Buffer))
	if err != nil {
		c.finished = true
		util.Logger().Error("brotli compression failed",
			zap.Int("inputBytes", len(data)), zap.Error(err))
		return nil, err
	}
	return out, nil
}
