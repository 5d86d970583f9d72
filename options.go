package brotli

import "github.com/pkg/errors"

// Mode selects how the encoder models its input.
type Mode int

const (
	// ModeGeneric is the default mode, with no assumptions about the input.
	ModeGeneric Mode = iota
	// ModeText tunes the encoder for UTF-8 formatted text input.
	ModeText
	// ModeFont tunes the encoder for WOFF 2.0 font input.
	ModeFont
)

const (
	// DefaultQuality favors compression density over speed.
	DefaultQuality = 11
	// DefaultLGWin is the default base-2 logarithm of the sliding window size.
	DefaultLGWin = 22
	// DefaultLGBlock lets the encoder pick the input block size from the
	// quality level.
	DefaultLGBlock = 0
)

type compressorConfig struct {
	mode    Mode
	quality int
	lgwin   int
	lgblock int
}

func defaultCompressorConfig() compressorConfig {
	return compressorConfig{
		mode:    ModeGeneric,
		quality: DefaultQuality,
		lgwin:   DefaultLGWin,
		lgblock: DefaultLGBlock,
	}
}

func (c *compressorConfig) validate() error {
	switch c.mode {
	case ModeGeneric, ModeText, ModeFont:
	default:
		return errors.New("Invalid mode")
	}
	if c.quality < 0 || c.quality > 11 {
		return errors.New("Invalid quality. Range is 0 to 11.")
	}
	if c.lgwin < 10 || c.lgwin > 24 {
		return errors.New("Invalid lgwin. Range is 10 to 24.")
	}
	if c.lgblock != 0 && (c.lgblock < 16 || c.lgblock > 24) {
		return errors.New("Invalid lgblock. Can be 0 or in range 16 to 24.")
	}
	return nil
}

// CompressorOpt is the option for the Compressor.
type CompressorOpt func(cfg *compressorConfig)

// WithMode sets the compression mode. Defaults to ModeGeneric.
func WithMode(mode Mode) CompressorOpt {
	return func(cfg *compressorConfig) {
		cfg.mode = mode
	}
}

// WithQuality sets the compression-speed vs compression-density tradeoff.
// The higher the quality, the slower the compression. Range is 0 to 11,
// defaults to 11.
func WithQuality(quality int) CompressorOpt {
	return func(cfg *compressorConfig) {
		cfg.quality = quality
	}
}

// WithLGWin sets the base-2 logarithm of the sliding window size. Range is
// 10 to 24, defaults to 22.
func WithLGWin(lgwin int) CompressorOpt {
	return func(cfg *compressorConfig) {
		cfg.lgwin = lgwin
	}
}

// WithLGBlock sets the base-2 logarithm of the maximum input block size.
// Range is 16 to 24; 0 picks the value from the quality level. Defaults
// to 0.
func WithLGBlock(lgblock int) CompressorOpt {
	return func(cfg *compressorConfig) {
		cfg.lgblock = lgblock
	}
}
