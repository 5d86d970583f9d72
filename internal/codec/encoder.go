package codec

/*
#cgo LDFLAGS: -lbrotlienc -lbrotlicommon

#include <brotli/encode.h>

// Single-level-pointer shim: BrotliEncoderCompressStream advances the in/out
// cursors through uint8_t** arguments, but the Go side recomputes the
// consumed counts from the avail_* deltas, so the advanced cursors can be
// dropped here. Avoids allocating pointer cells on every call, see
// https://github.com/golang/go/issues/24450 .
static BROTLI_BOOL EncoderCompressStream_wrapper(
    BrotliEncoderState *state, BrotliEncoderOperation op,
    size_t *avail_in, const uint8_t *next_in,
    size_t *avail_out, uint8_t *next_out) {
  return BrotliEncoderCompressStream(state, op, avail_in, &next_in,
                                     avail_out, &next_out, NULL);
}
*/
import "C"

import (
	"runtime"

	"github.com/pkg/errors"
)

// EncoderOperation selects what a CompressStream step should do with the
// input accumulated so far.
type EncoderOperation int

const (
	// OperationProcess compresses input data, possibly keeping some of it
	// in internal buffers until more has been accumulated.
	OperationProcess EncoderOperation = C.BROTLI_OPERATION_PROCESS
	// OperationFlush forces all pending input into complete output blocks
	// that a decoder can fully consume.
	OperationFlush EncoderOperation = C.BROTLI_OPERATION_FLUSH
	// OperationFinish emits all pending output plus the final stream marks.
	// The encoder cannot be used again afterwards.
	OperationFinish EncoderOperation = C.BROTLI_OPERATION_FINISH
)

// Encoder owns one BrotliEncoderState across the whole lifetime of a
// compression stream.
type Encoder struct {
	state *C.BrotliEncoderState
}

// NewEncoder creates an encoder instance and applies the given parameters.
// The caller validates the parameter ranges beforehand; values here are
// handed to the library as-is.
func NewEncoder(mode, quality, lgwin, lgblock int) (*Encoder, error) {
	state := C.BrotliEncoderCreateInstance(nil, nil, nil)
	if state == nil {
		return nil, errors.New("unable to create brotli encoder instance")
	}
	e := &Encoder{state: state}
	runtime.SetFinalizer(e, (*Encoder).Close)

	C.BrotliEncoderSetParameter(e.state, C.BROTLI_PARAM_MODE, C.uint32_t(mode))
	C.BrotliEncoderSetParameter(e.state, C.BROTLI_PARAM_QUALITY, C.uint32_t(quality))
	C.BrotliEncoderSetParameter(e.state, C.BROTLI_PARAM_LGWIN, C.uint32_t(lgwin))
	C.BrotliEncoderSetParameter(e.state, C.BROTLI_PARAM_LGBLOCK, C.uint32_t(lgblock))
	return e, nil
}

// CompressStream performs one step of the streaming compression. It reports
// how many bytes were consumed from in and written to out; ok is false if
// the library reports an error. The step may consume input without producing
// output (buffered internally) and may hold produced output back until a
// step finds output space, see HasMoreOutput.
func (e *Encoder) CompressStream(op EncoderOperation, in, out []byte) (nIn, nOut int, ok bool) {
	availIn := C.size_t(len(in))
	availOut := C.size_t(len(out))
	result := C.EncoderCompressStream_wrapper(e.state, C.BrotliEncoderOperation(op),
		&availIn, cursor(in), &availOut, cursor(out))
	runtime.KeepAlive(in)
	runtime.KeepAlive(out)
	return len(in) - int(availIn), len(out) - int(availOut), result != 0
}

// HasMoreOutput reports whether the encoder holds produced output that has
// not been written out yet.
func (e *Encoder) HasMoreOutput() bool {
	return C.BrotliEncoderHasMoreOutput(e.state) != 0
}

// IsFinished reports whether the encoder consumed all input and produced all
// output, after a finish operation.
func (e *Encoder) IsFinished() bool {
	return C.BrotliEncoderIsFinished(e.state) != 0
}

// Close destroys the encoder state. Further method calls are invalid.
// Calling Close more than once is a no-op.
func (e *Encoder) Close() {
	if e.state != nil {
		C.BrotliEncoderDestroyInstance(e.state)
		e.state = nil
		runtime.SetFinalizer(e, nil)
	}
}

func encoderVersion() uint32 {
	return uint32(C.BrotliEncoderVersion())
}
