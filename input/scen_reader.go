package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/magicc/definitions"
	"github.com/arloliu/magicc/encoding"
	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/table"
)

const (
	scenFirstRegion = "WORLD"
	scenVariables   = "YEARS"
	scenUnits       = "Yrs"
)

type blockState uint8

const (
	// blockParsed means a region block was read.
	blockParsed blockState = iota + 1
	// blockTerminal means no region block starts here; the notes do.
	blockTerminal
)

// blockResult is the outcome of reading one SCEN region block.
type blockResult struct {
	state blockState
	tbl   *table.Table
	next  int // index of the line after the block
}

// decodeScen reads a MAGICC6 SCEN file: a year count, a free-text preamble,
// one block per region, and trailing notes.
func decodeScen(src *source, cfg *Config) (*Metadata, *table.Table, error) {
	lines := cleanLines(src.lines)
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("%w: empty file", errs.ErrMissingWorldRegion)
	}

	rows, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || rows < 0 {
		return nil, nil, fmt.Errorf("%w: invalid year count %q", errs.ErrInvalidDataRow, lines[0])
	}

	first := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), scenFirstRegion) {
			first = i
			break
		}
	}
	if first < 0 {
		return nil, nil, fmt.Errorf("%w: %s", errs.ErrMissingWorldRegion, src.name)
	}

	var tbl *table.Table
	pos := first
	for {
		res, err := readScenBlock(lines, pos, rows)
		if err != nil {
			return nil, nil, err
		}
		if res.state == blockTerminal {
			break
		}

		if tbl == nil {
			tbl = res.tbl
		} else if err := tbl.Join(res.tbl); err != nil {
			return nil, nil, fmt.Errorf("region %s: %w", strings.TrimSpace(lines[pos]), err)
		}
		pos = res.next
	}
	if tbl == nil {
		return nil, nil, fmt.Errorf("%w: no region block in %s", errs.ErrMissingWorldRegion, src.name)
	}

	notes := lines[pos:]
	cfg.logger.Debug("read SCEN region blocks", "file", src.name,
		"regions", len(tbl.UniqueRegions()), "columns", tbl.NumColumns(), "notes", len(notes))

	text := make([]string, 0, first+len(notes))
	for _, line := range append(lines[:first:first], notes...) {
		text = append(text, strings.TrimSpace(line))
	}
	header := strings.Join(text, "\n")

	return newMetadata(header, nil), tbl, nil
}

// readScenBlock reads the region block starting at lines[pos]. A missing
// YEARS line or the end of input ends the block sequence; any other problem
// is an error.
func readScenBlock(lines []string, pos, rows int) (blockResult, error) {
	if pos+1 >= len(lines) || !encoding.HasLeadingToken(lines[pos+1], scenVariables) {
		return blockResult{state: blockTerminal, next: pos}, nil
	}

	region := strings.TrimSpace(lines[pos])
	variables, err := encoding.HeaderLabels(lines[pos+1], scenVariables)
	if err != nil {
		return blockResult{}, err
	}
	variables = definitions.ToCanonicalAll(variables)

	if pos+2 >= len(lines) {
		return blockResult{}, fmt.Errorf("%w: region %s: expected %q, got end of file",
			errs.ErrUnexpectedHeaderToken, region, scenUnits)
	}
	units, err := encoding.HeaderLabels(lines[pos+2], scenUnits)
	if err != nil {
		return blockResult{}, fmt.Errorf("region %s: %w", region, err)
	}

	n := len(variables)
	keys, err := columnKeys(variables, repeat(TodoSet, n), units, repeat(region, n))
	if err != nil {
		return blockResult{}, fmt.Errorf("region %s: %w", region, err)
	}

	start := pos + 3
	if start+rows > len(lines) {
		return blockResult{}, fmt.Errorf("%w: region %s has %d of %d rows",
			errs.ErrInvalidDataRow, region, len(lines)-start, rows)
	}

	tbl, err := readRows(lines[start:start+rows], keys, encoding.Legacy)
	if err != nil {
		return blockResult{}, fmt.Errorf("region %s: %w", region, err)
	}

	return blockResult{state: blockParsed, tbl: tbl, next: start + rows}, nil
}
