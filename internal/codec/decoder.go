package codec

/*
#cgo LDFLAGS: -lbrotlidec -lbrotlicommon

#include <brotli/decode.h>

// Same shim shape as the encoder side: the advanced cursors are recomputed
// from the avail_* deltas on the Go side.
static BrotliDecoderResult DecoderDecompressStream_wrapper(
    BrotliDecoderState *state,
    size_t *avail_in, const uint8_t *next_in,
    size_t *avail_out, uint8_t *next_out) {
  return BrotliDecoderDecompressStream(state, avail_in, &next_in,
                                       avail_out, &next_out, NULL);
}
*/
import "C"

import (
	"runtime"

	"github.com/pkg/errors"
)

// Result is the outcome of one DecompressStream step.
type Result int

const (
	// ResultError means the input is corrupt or invalid. The decoder is
	// unusable afterwards.
	ResultError Result = C.BROTLI_DECODER_RESULT_ERROR
	// ResultSuccess means the stream is fully decoded and all output has
	// been written.
	ResultSuccess Result = C.BROTLI_DECODER_RESULT_SUCCESS
	// ResultNeedsMoreInput means all given input was consumed and more is
	// required to make progress.
	ResultNeedsMoreInput Result = C.BROTLI_DECODER_RESULT_NEEDS_MORE_INPUT
	// ResultNeedsMoreOutput means more output space is required to make
	// progress.
	ResultNeedsMoreOutput Result = C.BROTLI_DECODER_RESULT_NEEDS_MORE_OUTPUT
)

// Decoder owns one BrotliDecoderState across the whole lifetime of a
// decompression stream.
type Decoder struct {
	state *C.BrotliDecoderState
}

// NewDecoder creates a decoder instance.
func NewDecoder() (*Decoder, error) {
	state := C.BrotliDecoderCreateInstance(nil, nil, nil)
	if state == nil {
		return nil, errors.New("unable to create brotli decoder instance")
	}
	d := &Decoder{state: state}
	runtime.SetFinalizer(d, (*Decoder).Close)
	return d, nil
}

// DecompressStream performs one step of the streaming decompression,
// reporting how many bytes were consumed from in and written to out.
func (d *Decoder) DecompressStream(in, out []byte) (nIn, nOut int, result Result) {
	availIn := C.size_t(len(in))
	availOut := C.size_t(len(out))
	res := C.DecoderDecompressStream_wrapper(d.state,
		&availIn, cursor(in), &availOut, cursor(out))
	runtime.KeepAlive(in)
	runtime.KeepAlive(out)
	return len(in) - int(availIn), len(out) - int(availOut), Result(res)
}

// IsFinished reports whether the decoder reached the end of the stream and
// produced all of the output.
func (d *Decoder) IsFinished() bool {
	return C.BrotliDecoderIsFinished(d.state) != 0
}

// LastError describes the decoder error after a ResultError step.
func (d *Decoder) LastError() string {
	code := C.BrotliDecoderGetErrorCode(d.state)
	return C.GoString(C.BrotliDecoderErrorString(code))
}

// Close destroys the decoder state. Further method calls are invalid.
// Calling Close more than once is a no-op.
func (d *Decoder) Close() {
	if d.state != nil {
		C.BrotliDecoderDestroyInstance(d.state)
		d.state = nil
		runtime.SetFinalizer(d, nil)
	}
}
