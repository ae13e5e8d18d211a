package compress

import "bytes"

// PlainCodec handles uncompressed files. Compress copies so that callers may
// recycle the input buffer; Decompress returns data unchanged.
type PlainCodec struct{}

var _ Codec = PlainCodec{}

// NewPlainCodec returns the codec for files without a compression suffix.
func NewPlainCodec() PlainCodec {
	return PlainCodec{}
}

// Compress returns a copy of data.
func (PlainCodec) Compress(data []byte) ([]byte, error) {
	return bytes.Clone(data), nil
}

// Decompress returns data itself.
func (PlainCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
