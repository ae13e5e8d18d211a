package input

import (
	"fmt"
	"regexp"

	"github.com/arloliu/magicc/encoding"
	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/table"
)

var concVariablePattern = regexp.MustCompile(`.*_(\w*_CONC)\.IN$`)

// decodeColcode reads a single-variable file whose column header starts with COLCODE.
func decodeColcode(src *source, cfg *Config) (*Metadata, *table.Table, error) {
	meta, body, err := src.configured()
	if err != nil {
		return nil, nil, err
	}

	variable, err := variableFromFilename(src.name, concVariablePattern)
	if err != nil {
		return nil, nil, err
	}

	tbl, err := readColcodeBody(body, variable, meta.FileSpec().Units)
	if err != nil {
		return nil, nil, err
	}
	cfg.logger.Debug("read COLCODE table", "file", src.name, "variable", variable, "columns", tbl.NumColumns())

	return meta, tbl, nil
}

func readColcodeBody(body []string, variable, units string) (*table.Table, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: expected %q, got end of file", errs.ErrUnexpectedHeaderToken, "COLCODE")
	}

	regions, err := encoding.HeaderLabels(body[0], "COLCODE")
	if err != nil {
		return nil, err
	}

	n := len(regions)
	keys, err := columnKeys(repeat(variable, n), repeat(TodoSet, n), repeat(units, n), regions)
	if err != nil {
		return nil, err
	}

	return readRows(body[1:], keys, encoding.Generic)
}

func variableFromFilename(name string, pattern *regexp.Regexp) (string, error) {
	m := pattern.FindStringSubmatch(name)
	if m == nil {
		return "", fmt.Errorf("%w: %s", errs.ErrVariableNameUnresolvable, name)
	}

	return m[1], nil
}
