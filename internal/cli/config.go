package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/arloliu/magicc/compress"
	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/format"
	"github.com/arloliu/magicc/input"
)

// Config is the content of the --config TOML file.
type Config struct {
	Log   LogConfig   `toml:"log"`
	Write WriteConfig `toml:"write"`
}

// LogConfig sets the default log level. --verbose always wins.
type LogConfig struct {
	Level string `toml:"level"`
}

// WriteConfig sets defaults for files written by convert.
type WriteConfig struct {
	// Directory receives outputs given without a directory.
	Directory string `toml:"directory"`
	// Compression is one of none, zstd, s2 or lz4.
	Compression string `toml:"compression"`
	// ZstdLevel overrides the zstd level; zero keeps the codec default.
	ZstdLevel int `toml:"zstd_level"`
}

// DefaultConfig returns the configuration used without --config.
func DefaultConfig() Config {
	return Config{
		Log:   LogConfig{Level: "info"},
		Write: WriteConfig{Compression: "none"},
	}
}

// LoadConfig reads a TOML configuration file on top of DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)

		return Config{}, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if _, err := cfg.compression(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if _, err := zstdLevelOption(cfg.Write.ZstdLevel); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) logLevel(verbose bool) (log.Level, error) {
	if verbose {
		return log.DebugLevel, nil
	}
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}

	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}

	return level, nil
}

func (c Config) compression() (format.CompressionType, error) {
	return parseCompression(c.Write.Compression)
}

func parseCompression(name string) (format.CompressionType, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return format.CompressionNone, nil
	case "zstd", "zst":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return format.CompressionNone, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, name)
	}
}

// zstdLevelOption validates level and returns the matching write option, or
// nil for zero.
func zstdLevelOption(level int) (input.Option, error) {
	if level == 0 {
		return nil, nil
	}
	if level < compress.MinZstdLevel || level > compress.MaxZstdLevel {
		return nil, fmt.Errorf("%w: zstd level %d, want %d..%d",
			errs.ErrUnsupportedCompression, level, compress.MinZstdLevel, compress.MaxZstdLevel)
	}

	return input.WithZstdLevel(level), nil
}
