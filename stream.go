package brotli

import (
	"github.com/pkg/errors"

	"github.com/animalize/brotli/internal/codec"
)

// compressCodec is the one-step encode interface the compress pump drives.
type compressCodec interface {
	CompressStream(op codec.EncoderOperation, in, out []byte) (nIn, nOut int, ok bool)
	HasMoreOutput() bool
}

// decompressCodec is the one-step decode interface the decompress pump drives.
type decompressCodec interface {
	DecompressStream(in, out []byte) (nIn, nOut int, result codec.Result)
	LastError() string
}

// outputBuffer collects pump output. Implemented by blockbuffer.Buffer.
type outputBuffer interface {
	InitAndGrow() []byte
	Grow() []byte
	Finish(availOut int) []byte
	Cleanup()
}

// compressStream pumps one compress operation to completion: it feeds the
// encoder the remaining input and the remaining output space until the input
// is consumed and the encoder holds no more output. The buffer is grown only
// when the output space is fully used, so the accumulated blocks stay
// gap-free. On any failure the buffer is discarded and no output is
// returned.
func compressStream(enc compressCodec, op codec.EncoderOperation, input []byte, buf outputBuffer) ([]byte, error) {
	out := buf.InitAndGrow()
	in := input
	for {
		nIn, nOut, ok := enc.CompressStream(op, in, out)
		if !ok {
			buf.Cleanup()
			return nil, errors.New("brotli encoder failed while compressing the stream")
		}
		in = in[nIn:]
		out = out[nOut:]

		if len(out) == 0 {
			out = buf.Grow()
		}

		if len(in) > 0 || enc.HasMoreOutput() {
			continue
		}
		break
	}
	return buf.Finish(len(out)), nil
}

// decompressStream pumps the decoder until it stops asking for output space.
// With wholeInput set (the one-shot path) the call only succeeds if the
// stream terminated cleanly and every input byte was consumed; trailing data
// is an error, not a silent truncation. Without it (the streaming path) any
// terminal non-error result ends the call and unconsumed input is left to
// the session. On any failure the buffer is discarded and no output is
// returned.
func decompressStream(dec decompressCodec, input []byte, buf outputBuffer, wholeInput bool) ([]byte, error) {
	out := buf.InitAndGrow()
	in := input
	result := codec.ResultNeedsMoreOutput
	for result == codec.ResultNeedsMoreOutput {
		var nIn, nOut int
		nIn, nOut, result = dec.DecompressStream(in, out)
		in = in[nIn:]
		out = out[nOut:]

		if len(out) == 0 {
			out = buf.Grow()
		}
	}

	if result == codec.ResultError {
		buf.Cleanup()
		return nil, errors.Errorf("brotli decoder failed: %s", dec.LastError())
	}
	if wholeInput {
		if result != codec.ResultSuccess {
			buf.Cleanup()
			return nil, errors.New("brotli decoder: compressed stream is truncated")
		}
		if len(in) > 0 {
			buf.Cleanup()
			return nil, errors.New("brotli decoder: trailing data after the compressed stream")
		}
	}
	return buf.Finish(len(out)), nil
}
