package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamStepRoundTrip(t *testing.T) {
	enc, err := NewEncoder(0, 11, 22, 0)
	require.NoError(t, err)
	defer enc.Close()

	input := bytes.Repeat([]byte("incremental codec "), 64)

	var compressed []byte
	in := input
	for !enc.IsFinished() {
		out := make([]byte, 1024)
		nIn, nOut, ok := enc.CompressStream(OperationFinish, in, out)
		require.True(t, ok)
		in = in[nIn:]
		compressed = append(compressed, out[:nOut]...)
	}
	require.Equal(t, 0, len(in))
	require.False(t, enc.HasMoreOutput())
	require.NotEmpty(t, compressed)

	dec, err := NewDecoder()
	require.NoError(t, err)
	defer dec.Close()

	var decoded []byte
	in = compressed
	result := ResultNeedsMoreOutput
	for result != ResultSuccess {
		out := make([]byte, 1024)
		var nIn, nOut int
		nIn, nOut, result = dec.DecompressStream(in, out)
		require.NotEqual(t, ResultError, result)
		in = in[nIn:]
		decoded = append(decoded, out[:nOut]...)
	}
	require.True(t, dec.IsFinished())
	require.True(t, bytes.Equal(input, decoded))
}

func TestEncoderConsumesWithoutOutput(t *testing.T) {
	enc, err := NewEncoder(0, 11, 22, 0)
	require.NoError(t, err)
	defer enc.Close()

	// A small process step is buffered internally and legitimately
	// produces no output yet.
	out := make([]byte, 1024)
	nIn, nOut, ok := enc.CompressStream(OperationProcess, []byte("tiny"), out)
	require.True(t, ok)
	require.Equal(t, 4, nIn)
	require.Equal(t, 0, nOut)
	require.False(t, enc.IsFinished())
}

func TestDecoderReportsError(t *testing.T) {
	enc, err := NewEncoder(0, 11, 22, 0)
	require.NoError(t, err)
	defer enc.Close()

	input := bytes.Repeat([]byte("corrupt me "), 32)
	compressed := make([]byte, 4096)
	_, nOut, ok := enc.CompressStream(OperationFinish, input, compressed)
	require.True(t, ok)
	require.True(t, enc.IsFinished())
	compressed = compressed[:nOut]

	// Not every flipped bit breaks the stream, but at least one must make
	// the decoder report a hard error rather than ask for more data.
	sawError := false
	for i := range compressed {
		corrupted := append([]byte(nil), compressed...)
		corrupted[i] ^= 0xff

		dec, err := NewDecoder()
		require.NoError(t, err)
		out := make([]byte, 2*len(input))
		_, _, result := dec.DecompressStream(corrupted, out)
		if result == ResultError {
			require.NotEmpty(t, dec.LastError())
			sawError = true
			dec.Close()
			break
		}
		dec.Close()
	}
	require.True(t, sawError)
}

func TestCloseIsIdempotent(t *testing.T) {
	enc, err := NewEncoder(0, 5, 22, 0)
	require.NoError(t, err)
	enc.Close()
	enc.Close()

	dec, err := NewDecoder()
	require.NoError(t, err)
	dec.Close()
	dec.Close()
}
