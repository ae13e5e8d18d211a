package input

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/arloliu/magicc/compress"
	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/format"
	"github.com/arloliu/magicc/internal/options"
)

const (
	defaultFileMode = 0o644

	defaultScenName        = "NAME"
	defaultScenDescription = "DESCRIPTION"
	defaultScenNotes       = "NOTES"
)

// Config holds the settings shared by readers and writers.
type Config struct {
	logger      *log.Logger
	compression format.CompressionType // zero means "from the filename suffix"
	zstdLevel   int                    // zero means compress.DefaultZstdLevel
	fileMode    os.FileMode

	scenName        string
	scenDescription string
	scenNotes       string
}

// Option configures a read or write call.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		logger:          log.New(io.Discard),
		fileMode:        defaultFileMode,
		scenName:        defaultScenName,
		scenDescription: defaultScenDescription,
		scenNotes:       defaultScenNotes,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithLogger sets the logger used for debug events. Nil keeps the discard logger.
func WithLogger(logger *log.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if logger != nil {
			cfg.logger = logger
		}
	})
}

// WithCompression forces the codec used on write, ignoring the filename suffix.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.compression = compression
			return nil
		default:
			return unsupportedCompression(compression)
		}
	})
}

// WithZstdLevel sets the level of zstd-compressed writes. Levels outside
// [compress.MinZstdLevel, compress.MaxZstdLevel] are rejected.
func WithZstdLevel(level int) Option {
	return options.New(func(cfg *Config) error {
		if level < compress.MinZstdLevel || level > compress.MaxZstdLevel {
			return fmt.Errorf("%w: zstd level %d", errs.ErrUnsupportedCompression, level)
		}
		cfg.zstdLevel = level

		return nil
	})
}

// WithScenPlaceholders overrides the name, description and notes lines of written SCEN files.
func WithScenPlaceholders(name, description, notes string) Option {
	return options.NoError(func(cfg *Config) {
		cfg.scenName = name
		cfg.scenDescription = description
		cfg.scenNotes = notes
	})
}

// WithFileMode sets the permission bits of written files.
func WithFileMode(mode os.FileMode) Option {
	return options.NoError(func(cfg *Config) {
		cfg.fileMode = mode
	})
}
