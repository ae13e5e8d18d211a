package input

import (
	"github.com/arloliu/magicc/encoding"
	"github.com/arloliu/magicc/format"
	"github.com/arloliu/magicc/internal/pool"
	"github.com/arloliu/magicc/table"
)

// encodeGasTodoUnits writes HIST*_EMIS.IN and SCEN7 files with the four
// GAS/TODO/UNITS/YEARS column header lines.
func encodeGasTodoUnits(buf *pool.ByteBuffer, t *table.Table, meta *Metadata, kind format.Kind, cfg *Config) error {
	labels := [len(emissionsHeaderTokens)][]string{t.Variables(), t.Todos(), t.Units(), t.Regions()}

	headers := make([][]byte, len(emissionsHeaderTokens))
	for i, token := range emissionsHeaderTokens {
		headers[i] = encoding.Generic.AppendHeader(nil, token, labels[i])
	}

	return writeConfigured(buf, t, meta, kind, headers, cfg)
}
