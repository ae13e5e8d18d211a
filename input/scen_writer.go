package input

import (
	"fmt"
	"strconv"

	"github.com/arloliu/magicc/definitions"
	"github.com/arloliu/magicc/encoding"
	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/format"
	"github.com/arloliu/magicc/internal/pool"
	"github.com/arloliu/magicc/table"
)

const (
	scenOtherNotes      = "OTHER NOTES"
	scenOtherNotesLines = 4
)

// encodeScen writes a MAGICC6 SCEN file. There is no configuration block;
// regions are written in catalog order with legacy variable names and the
// fixed 11.4f value layout.
func encodeScen(buf *pool.ByteBuffer, t *table.Table, _ *Metadata, _ format.Kind, cfg *Config) error {
	if t.Empty() {
		return fmt.Errorf("%w: %d rows, %d columns", errs.ErrEmptyTable, t.Len(), t.NumColumns())
	}

	regions, err := definitions.RegionOrder(t.UniqueRegions(), format.FamilyStandard)
	if err != nil {
		return err
	}

	code, err := definitions.SpecialScenCode(regions, t.UniqueVariables())
	if err != nil {
		return err
	}

	blocks := make([]*table.Table, len(regions))
	for i, region := range regions {
		blocks[i] = t.ByRegion(region)
		if blocks[i].NumColumns() != blocks[0].NumColumns() {
			return fmt.Errorf("%w: region %s has %d columns, %s has %d", errs.ErrColumnCountMismatch,
				region, blocks[i].NumColumns(), regions[0], blocks[0].NumColumns())
		}
	}
	cfg.logger.Debug("writing SCEN file", "code", code, "regions", regions, "rows", t.Len())

	buf.WriteLine(strconv.Itoa(t.Len()))
	buf.WriteLine(strconv.Itoa(code))
	buf.WriteLine(cfg.scenName)
	buf.WriteLine(cfg.scenDescription)
	buf.WriteLine(cfg.scenNotes)
	buf.WriteLine("")

	for i, region := range regions {
		block := blocks[i]
		buf.WriteLine(region)
		buf.B = encoding.Legacy.AppendHeader(buf.B, scenVariables, definitions.ToLegacyAll(block.Variables()))
		_ = buf.WriteByte('\n')
		buf.B = encoding.Legacy.AppendHeader(buf.B, scenUnits, block.Units())
		_ = buf.WriteByte('\n')
		if err := writeRows(buf, block, encoding.Legacy); err != nil {
			return fmt.Errorf("region %s: %w", region, err)
		}
		buf.WriteLine("")
	}

	for range scenOtherNotesLines {
		buf.WriteLine(scenOtherNotes)
	}

	return nil
}
