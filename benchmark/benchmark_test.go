// Package benchmark compares brotli against the gzip and zstd codecs used
// elsewhere in the ecosystem, on the same text payload.
package benchmark

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/animalize/brotli"
	"github.com/animalize/brotli/util"
)

var payload = []byte(util.RandomString(1 << 20))

func BenchmarkCompressBrotli(b *testing.B) {
	b.SetBytes(int64(len(payload)))
	for i := 0; i < b.N; i++ {
		if _, err := brotli.Compress(payload, brotli.WithQuality(5)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompressGzip(b *testing.B) {
	b.SetBytes(int64(len(payload)))
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	for i := 0; i < b.N; i++ {
		buf.Reset()
		zw.Reset(&buf)
		if _, err := zw.Write(payload); err != nil {
			b.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompressZstd(b *testing.B) {
	b.SetBytes(int64(len(payload)))
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		b.Fatal(err)
	}
	defer encoder.Close()
	for i := 0; i < b.N; i++ {
		encoder.EncodeAll(payload, nil)
	}
}

func BenchmarkDecompressBrotli(b *testing.B) {
	compressed, err := brotli.Compress(payload, brotli.WithQuality(5))
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(payload)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := brotli.Decompress(compressed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompressGzip(b *testing.B) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		b.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		b.Fatal(err)
	}
	compressed := buf.Bytes()

	b.SetBytes(int64(len(payload)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		zr, err := gzip.NewReader(bytes.NewReader(compressed))
		if err != nil {
			b.Fatal(err)
		}
		if _, err := io.Copy(io.Discard, zr); err != nil {
			b.Fatal(err)
		}
		zr.Close()
	}
}

func BenchmarkDecompressZstd(b *testing.B) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		b.Fatal(err)
	}
	compressed := encoder.EncodeAll(payload, nil)
	encoder.Close()

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		b.Fatal(err)
	}
	defer decoder.Close()

	b.SetBytes(int64(len(payload)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decoder.DecodeAll(compressed, nil); err != nil {
			b.Fatal(err)
		}
	}
}
