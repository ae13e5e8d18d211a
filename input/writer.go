package input

import (
	"fmt"
	"strings"

	"github.com/arloliu/magicc/definitions"
	"github.com/arloliu/magicc/encoding"
	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/format"
	"github.com/arloliu/magicc/internal/pool"
	"github.com/arloliu/magicc/section"
	"github.com/arloliu/magicc/table"
)

// deriveFileSpec builds THISFILE_SPECIFICATIONS from the table alone.
// FirstDataRow is left zero; it depends on the rendered layout.
func deriveFileSpec(t *table.Table, family format.Family) (section.FileSpec, error) {
	if t.Empty() {
		return section.FileSpec{}, fmt.Errorf("%w: %d rows, %d columns", errs.ErrEmptyTable, t.Len(), t.NumColumns())
	}
	if !t.IsContiguous() {
		return section.FileSpec{}, fmt.Errorf("%w: %d rows between %d and %d",
			errs.ErrYearIndexNonContiguous, t.Len(), t.FirstYear(), t.LastYear())
	}

	units := t.UniqueUnits()
	if len(units) != 1 {
		return section.FileSpec{}, fmt.Errorf("%w: [%s]", errs.ErrUnitsNotUniform, strings.Join(units, " "))
	}

	datType, regionMode, err := definitions.DatTypeRegionMode(t.UniqueRegions(), family)
	if err != nil {
		return section.FileSpec{}, err
	}

	return section.FileSpec{
		DataColumns: t.NumColumns(),
		FirstYear:   t.FirstYear(),
		LastYear:    t.LastYear(),
		AnnualSteps: 1,
		Units:       units[0],
		DatType:     datType,
		RegionMode:  regionMode,
	}, nil
}

// writeConfigured renders a file with a configuration block: header, block,
// blank line, column header lines, then the data rows in the generic layout.
//
// The layout is computed before anything is written so that FIRSTDATAROW can
// be patched into the block.
func writeConfigured(buf *pool.ByteBuffer, t *table.Table, meta *Metadata, kind format.Kind,
	columnHeaders [][]byte, cfg *Config,
) error {
	spec, err := deriveFileSpec(t, kind.Family())
	if err != nil {
		return err
	}

	header := ""
	if meta != nil {
		header = meta.Header
	}
	if header != "" && !strings.HasSuffix(header, "\n") {
		header += "\n"
	}

	spec = spec.WithFirstDataRow(section.CountLines(header), len(columnHeaders))
	cfg.logger.Debug("computed first data row", "kind", kind, "firstdatarow", spec.FirstDataRow,
		"dattype", spec.DatType, "regionmode", spec.RegionMode)

	_, _ = buf.WriteString(header)
	buf.B = spec.ConfigBlock().AppendTo(buf.B)
	for range section.BlankLinesAfterBlock {
		_ = buf.WriteByte('\n')
	}
	for _, line := range columnHeaders {
		buf.B = append(buf.B, line...)
		_ = buf.WriteByte('\n')
	}

	if got := buf.LineCount() + 1; got != spec.FirstDataRow {
		return fmt.Errorf("%w: first data row is line %d, block says %d",
			errs.ErrLayoutMismatch, got, spec.FirstDataRow)
	}

	return writeRows(buf, t, encoding.Generic)
}

// writeRows appends the data rows. A value wider than its field would run into
// its neighbour and read back as different numbers, so it is rejected.
func writeRows(buf *pool.ByteBuffer, t *table.Table, layout encoding.Layout) error {
	for _, year := range t.Years() {
		row, _ := t.Row(year)
		for i, v := range row {
			if !layout.Fits(v) {
				return fmt.Errorf("%w: %s in %d renders as %q, wider than %d characters",
					errs.ErrValueOverflow, t.Key(i), year, layout.AppendValue(nil, v), layout.ValueWidth)
			}
		}
		buf.B = layout.AppendRow(buf.B, year, row)
		_ = buf.WriteByte('\n')
	}

	return nil
}
