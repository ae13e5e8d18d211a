package input

import (
	"fmt"
	"strings"

	"github.com/arloliu/magicc/encoding"
	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/format"
	"github.com/arloliu/magicc/section"
	"github.com/arloliu/magicc/table"
)

// TodoSet is the TODO label of columns read from layouts that do not carry one.
const TodoSet = "SET"

// source is a decompressed file ready for parsing.
type source struct {
	name string // base filename without compression suffix
	kind format.Kind
	text string

	lines []string // lines with their terminators
}

func newSource(name string, kind format.Kind, data []byte) *source {
	text := string(data)
	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return &source{name: name, kind: kind, text: text, lines: lines}
}

// configured locates and parses the configuration block and returns the
// metadata and the trimmed non-blank lines that follow it.
func (s *source) configured() (*Metadata, []string, error) {
	start, end, err := section.LocateConfigBlock(s.lines)
	if err != nil {
		return nil, nil, err
	}

	block, err := section.ParseConfigBlock(s.lines[start : end+1])
	if err != nil {
		return nil, nil, err
	}

	header := strings.Join(s.lines[:start], "")

	return newMetadata(header, block), cleanLines(s.lines[end+1:]), nil
}

// cleanLines drops blank lines and trailing whitespace. Leading blanks are
// kept: fixed-width rows are only sliced when they have their full width.
func cleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimRight(line, " \t\r\n"); strings.TrimSpace(trimmed) != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

// readRows parses rows holding len(keys) values each into a table.
func readRows(rows []string, keys []table.ColumnKey, layout encoding.Layout) (*table.Table, error) {
	years := make([]int, len(rows))
	columns := make([][]float64, len(keys))
	for i := range columns {
		columns[i] = make([]float64, len(rows))
	}

	for r, line := range rows {
		year, values, err := layout.ParseRow(line, len(keys))
		if err != nil {
			return nil, fmt.Errorf("data row %d: %w", r+1, err)
		}
		years[r] = year
		for c, v := range values {
			columns[c][r] = v
		}
	}

	tbl, err := table.New(years)
	if err != nil {
		return nil, err
	}
	for i, key := range keys {
		if err := tbl.AddColumn(key, columns[i]); err != nil {
			return nil, err
		}
	}

	return tbl, nil
}

// columnKeys zips per-column label lists. All lists must have the same length.
func columnKeys(variables, todos, units, regions []string) ([]table.ColumnKey, error) {
	n := len(regions)
	if len(variables) != n || len(todos) != n || len(units) != n {
		return nil, fmt.Errorf("%w: %d variables, %d todos, %d units, %d regions",
			errs.ErrColumnCountMismatch, len(variables), len(todos), len(units), n)
	}

	keys := make([]table.ColumnKey, n)
	for i := range keys {
		keys[i] = table.ColumnKey{Variable: variables[i], Todo: todos[i], Units: units[i], Region: regions[i]}
	}

	return keys, nil
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}

	return out
}
