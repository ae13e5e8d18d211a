//go:build !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("create zstd decoder: %v", err))
		}

		return decoder
	},
}

// zstdEncoderPools holds one *sync.Pool of encoders per level.
var zstdEncoderPools sync.Map

func zstdEncoderPool(level int) *sync.Pool {
	if p, ok := zstdEncoderPools.Load(level); ok {
		return p.(*sync.Pool)
	}

	p, _ := zstdEncoderPools.LoadOrStore(level, &sync.Pool{
		New: func() any {
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
				zstd.WithEncoderCRC(true),
			)
			if err != nil {
				panic(fmt.Sprintf("create zstd encoder at level %d: %v", level, err))
			}

			return encoder
		},
	})

	return p.(*sync.Pool)
}

// Compress returns data as a single zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	pool := zstdEncoderPool(c.level)
	encoder := pool.Get().(*zstd.Encoder)
	defer pool.Put(encoder)

	return encoder.EncodeAll(data, make([]byte, 0, len(data)/4)), nil
}

// Decompress decodes every frame in data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}

	return out, nil
}
