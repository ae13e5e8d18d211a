package compress

import (
	"fmt"
	"strings"

	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/format"
)

// Compressor compresses a whole rendered MAGICC file.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// The returned slice is owned by the caller; data is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a file previously produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original file contents.
	//
	// An error is returned if data is corrupted or was produced by another algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewPlainCodec(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for a compression type, or
// ErrUnsupportedCompression.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

var suffixes = []format.CompressionType{
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// SplitName splits a filename into the name of the MAGICC file it holds and the
// compression applied to it.
//
// Only one suffix is recognized ("RCP26.SCEN.zst" yields "RCP26.SCEN" and Zstd).
// Names without a known suffix are returned unchanged with CompressionNone.
func SplitName(name string) (string, format.CompressionType) {
	for _, c := range suffixes {
		ext := c.Extension()
		if strings.HasSuffix(name, ext) && len(name) > len(ext) {
			return strings.TrimSuffix(name, ext), c
		}
	}

	return name, format.CompressionNone
}
