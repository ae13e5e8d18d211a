package compress

// DefaultZstdLevel is the zstd level used by NewZstdCompressor. Rendered input
// files are small, so the default level already sits close to the best ratio.
const DefaultZstdLevel = 3

// Levels accepted by NewZstdCompressorLevel.
const (
	MinZstdLevel = 1
	MaxZstdLevel = 19
)

// ZstdCompressor compresses files into standard Zstandard frames.
type ZstdCompressor struct {
	level int
}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor returns a Zstd codec at DefaultZstdLevel.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{level: DefaultZstdLevel}
}

// NewZstdCompressorLevel returns a Zstd codec at level, clamped to
// [MinZstdLevel, MaxZstdLevel].
// Every level decodes with every ZstdCompressor.
func NewZstdCompressorLevel(level int) ZstdCompressor {
	return ZstdCompressor{level: min(max(level, MinZstdLevel), MaxZstdLevel)}
}

// Level returns the compression level.
func (c ZstdCompressor) Level() int { return c.level }
