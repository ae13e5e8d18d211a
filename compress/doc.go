// Package compress provides whole-file codecs for archived MAGICC input files.
//
// MAGICC itself only reads plain text, but run directories and scenario
// libraries are often stored compressed. A compressed file keeps the name of
// the file it holds and appends one suffix:
//
//	HISTRCP_CO2_CONC.IN.zst  -> Zstandard
//	RCP26.SCEN.s2            -> S2
//	HISTSSP_CO2I_EMIS.IN.lz4 -> LZ4 frame
//
// SplitName recovers the inner name (used for format dispatch) and the codec.
//
// # Architecture
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// GetCodec returns the built-in implementation for a
// format.CompressionType. The Zstd codec uses github.com/valyala/gozstd when
// cgo is available and github.com/klauspost/compress/zstd otherwise; both
// produce standard Zstandard frames.
//
// All codecs are stateless values and safe for concurrent use.
package compress
