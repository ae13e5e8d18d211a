package input

import (
	"regexp"
	"strings"

	"github.com/arloliu/magicc/encoding"
	"github.com/arloliu/magicc/table"
)

var emisVariablePattern = regexp.MustCompile(`.*_(\w*_EMIS)\.IN$`)

// emissionsHeaderTokens are the leading tokens of the four column header
// lines of a GAS/TODO/UNITS layout. The YEARS line carries the regions.
var emissionsHeaderTokens = [4]string{"GAS", "TODO", "UNITS", "YEARS"}

// decodeEmissions reads HIST*_EMIS.IN and SCEN7 files. Old emissions files
// use the single-variable COLCODE layout instead of GAS/TODO/UNITS/YEARS.
func decodeEmissions(src *source, cfg *Config) (*Metadata, *table.Table, error) {
	meta, body, err := src.configured()
	if err != nil {
		return nil, nil, err
	}

	if sniffLegacyEmissions(src.text) {
		// heuristic: the token may also appear in free text
		cfg.logger.Debug("COLCODE found in file, assuming legacy emissions layout", "file", src.name)

		variable, err := variableFromFilename(src.name, emisVariablePattern)
		if err != nil {
			return nil, nil, err
		}

		tbl, err := readColcodeBody(body, variable, meta.FileSpec().Units)
		if err != nil {
			return nil, nil, err
		}

		return meta, tbl, nil
	}

	tbl, err := readGasTodoUnitsBody(body)
	if err != nil {
		return nil, nil, err
	}
	cfg.logger.Debug("read GAS/TODO/UNITS table", "file", src.name, "kind", src.kind, "columns", tbl.NumColumns())

	return meta, tbl, nil
}

// sniffLegacyEmissions reports whether the whole file mentions COLCODE.
func sniffLegacyEmissions(text string) bool {
	return strings.Contains(text, "COLCODE")
}

func readGasTodoUnitsBody(body []string) (*table.Table, error) {
	var labels [len(emissionsHeaderTokens)][]string
	for i, token := range emissionsHeaderTokens {
		line := ""
		if i < len(body) {
			line = body[i]
		}

		var err error
		if labels[i], err = encoding.HeaderLabels(line, token); err != nil {
			return nil, err
		}
	}

	keys, err := columnKeys(labels[0], labels[1], labels[2], labels[3])
	if err != nil {
		return nil, err
	}

	return readRows(body[len(emissionsHeaderTokens):], keys, encoding.Generic)
}
