package input

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/arloliu/magicc/compress"
	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/format"
	"github.com/arloliu/magicc/internal/pool"
	"github.com/arloliu/magicc/table"
)

type (
	decodeFunc func(src *source, cfg *Config) (*Metadata, *table.Table, error)
	encodeFunc func(buf *pool.ByteBuffer, t *table.Table, meta *Metadata, kind format.Kind, cfg *Config) error
)

// variant binds a filename pattern to its reader and writer.
type variant struct {
	kind    format.Kind
	pattern *regexp.Regexp
	decode  decodeFunc
	encode  encodeFunc
}

// variants are tried in order; the first match wins.
var variants = []variant{
	{
		kind:    format.KindScen,
		pattern: regexp.MustCompile(`^.*\.SCEN$`),
		decode:  decodeScen,
		encode:  encodeScen,
	},
	{
		kind:    format.KindScen7,
		pattern: regexp.MustCompile(`^.*\.SCEN7$`),
		decode:  decodeEmissions,
		encode:  encodeGasTodoUnits,
	},
	{
		kind:    format.KindHistEmisIn,
		pattern: regexp.MustCompile(`^(?i:HIST.*_EMIS)\.IN$`),
		decode:  decodeEmissions,
		encode:  encodeGasTodoUnits,
	},
	{
		kind:    format.KindConcIn,
		pattern: regexp.MustCompile(`^(?i:.*_.*CONC.*)\.IN$`),
		decode:  decodeColcode,
		encode:  encodeColcode,
	},
}

// Resolve returns the file kind and compression selected by filename.
// Directories in filename are ignored.
func Resolve(filename string) (format.Kind, format.CompressionType, error) {
	v, compression, err := resolve(filename)
	if err != nil {
		return format.KindUnknown, format.CompressionNone, err
	}

	return v.kind, compression, nil
}

func resolve(filename string) (variant, format.CompressionType, error) {
	name, compression := compress.SplitName(filepath.Base(filename))
	for _, v := range variants {
		if v.pattern.MatchString(name) {
			return v, compression, nil
		}
	}

	return variant{}, format.CompressionNone, fmt.Errorf("%w: %s", errs.ErrFormatUnresolved, filename)
}

func unsupportedCompression(c format.CompressionType) error {
	return fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, c)
}
