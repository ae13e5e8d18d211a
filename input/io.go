package input

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arloliu/magicc/compress"
	"github.com/arloliu/magicc/format"
	"github.com/arloliu/magicc/internal/pool"
	"github.com/arloliu/magicc/table"
)

// Read reads the MAGICC input file at path.
func Read(path string, opts ...Option) (*Metadata, *table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	return Decode(filepath.Base(path), data, opts...)
}

// Decode parses the contents of a MAGICC input file. name selects the reader
// and the compression codec.
func Decode(name string, data []byte, opts ...Option) (*Metadata, *table.Table, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, nil, err
	}

	v, compression, err := resolve(name)
	if err != nil {
		return nil, nil, err
	}

	if compression != format.CompressionNone {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return nil, nil, err
		}
		if data, err = codec.Decompress(data); err != nil {
			return nil, nil, fmt.Errorf("decompress %s: %w", name, err)
		}
	}

	base, _ := compress.SplitName(filepath.Base(name))
	cfg.logger.Debug("decoding", "file", base, "kind", v.kind, "compression", compression)

	meta, tbl, err := v.decode(newSource(base, v.kind, data), cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", name, err)
	}

	return meta, tbl, nil
}

// Write renders t and meta into dir/filename. The table is not modified.
func Write(t *table.Table, meta *Metadata, filename, dir string, opts ...Option) error {
	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}

	data, err := encode(t, meta, filename, cfg)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, cfg.fileMode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Encode renders t and meta in the layout selected by name.
func Encode(t *table.Table, meta *Metadata, name string, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return encode(t, meta, name, cfg)
}

func encode(t *table.Table, meta *Metadata, name string, cfg *Config) ([]byte, error) {
	v, compression, err := resolve(name)
	if err != nil {
		return nil, err
	}
	if cfg.compression != 0 {
		compression = cfg.compression
	}

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	if err := v.encode(buf, t, meta, v.kind, cfg); err != nil {
		return nil, fmt.Errorf("write %s: %w", name, err)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	if compression == format.CompressionZstd && cfg.zstdLevel != 0 {
		codec = compress.NewZstdCompressorLevel(cfg.zstdLevel)
	}
	cfg.logger.Debug("encoded", "file", name, "kind", v.kind, "bytes", buf.Len(), "compression", compression)

	// every codec returns a fresh slice, so buf can go back to the pool
	return codec.Compress(buf.Bytes())
}
