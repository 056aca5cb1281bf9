package stream

import (
	"fmt"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// Compressor applies symmetric compression to frame payloads.
type Compressor interface {
	//1.- Name returns the codec identifier clients request with ?codec=.
	Name() string
	//2.- Compress encodes the provided payload into a compressed representation.
	Compress(data []byte) ([]byte, error)
	//3.- Decompress restores the original payload from its compressed form.
	Decompress(data []byte) ([]byte, error)
}

// Codec names accepted by the server.
const (
	CodecText   = "text"
	CodecSnappy = "snappy"
	CodecZstd   = "zstd"
)

// NewCompressor returns the codec registered under name; empty means text.
func NewCompressor(name string) (Compressor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", CodecText:
		return textCompressor{}, nil
	case CodecSnappy:
		return snappyCompressor{}, nil
	case CodecZstd:
		return newZstdCompressor()
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

// textCompressor passes frames through unchanged; they are sent as text messages.
type textCompressor struct{}

func (textCompressor) Name() string                           { return CodecText }
func (textCompressor) Compress(data []byte) ([]byte, error)   { return data, nil }
func (textCompressor) Decompress(data []byte) ([]byte, error) { return data, nil }

type snappyCompressor struct{}

func (snappyCompressor) Name() string { return CodecSnappy }

func (snappyCompressor) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (snappyCompressor) Decompress(data []byte) ([]byte, error) {
	//1.- Guard against empty payloads to simplify caller logic.
	if len(data) == 0 {
		return nil, fmt.Errorf("snappy decompress: empty payload")
	}
	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("snappy decode: %w", err)
	}
	return out, nil
}

// zstdCompressor keeps one encoder/decoder pair; EncodeAll and DecodeAll are safe for concurrent use.
type zstdCompressor struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

func newZstdCompressor() (*zstdCompressor, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	return &zstdCompressor{enc: enc, dec: dec}, nil
}

func (*zstdCompressor) Name() string { return CodecZstd }

func (z *zstdCompressor) Compress(data []byte) ([]byte, error) {
	return z.enc.EncodeAll(data, nil), nil
}

func (z *zstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("zstd decompress: empty payload")
	}
	out, err := z.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return out, nil
}
