package input

import (
	"fmt"
	"strings"

	"github.com/arloliu/magicc/encoding"
	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/format"
	"github.com/arloliu/magicc/internal/pool"
	"github.com/arloliu/magicc/table"
)

// encodeColcode writes a single-variable table with a COLCODE column header.
// Columns keep the table's order.
func encodeColcode(buf *pool.ByteBuffer, t *table.Table, meta *Metadata, kind format.Kind, cfg *Config) error {
	if variables := t.UniqueVariables(); len(variables) > 1 {
		return fmt.Errorf("%w: COLCODE layout holds one variable, got [%s]",
			errs.ErrVariablesNotUniform, strings.Join(variables, " "))
	}

	header := encoding.Generic.AppendHeader(nil, "COLCODE", t.Regions())

	return writeConfigured(buf, t, meta, kind, [][]byte{header}, cfg)
}
