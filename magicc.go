// Package magicc reads and writes the text input files of the MAGICC reduced
// complexity climate model.
//
// Four file families are supported, chosen by filename:
//
//   - *_CONC.IN: concentration series, one variable, COLCODE column header
//   - HIST*_EMIS.IN: historical emissions, GAS/TODO/UNITS/YEARS column header
//   - *.SCEN7: MAGICC7 scenarios, same layout as HIST*_EMIS.IN
//   - *.SCEN: MAGICC6 multi-block scenarios, one block per region
//
// Each family may additionally be stored compressed with a .zst, .s2 or .lz4
// suffix.
//
// # Basic Usage
//
// Reading a file and querying it:
//
//	in := magicc.NewInput("HISTRCP_CO2I_EMIS.IN")
//	if err := in.Read("run"); err != nil {
//	    log.Fatal(err)
//	}
//	v, err := in.Value("CO2I", "WORLD", 2000)
//
// Writing it back under another family:
//
//	err := in.Write("RCP26.SCEN7", "out")
//
// # Package Structure
//
// This package is a thin stateful wrapper around the input package, which holds
// the readers and writers. Use input directly for in-memory decoding (input.Decode,
// input.Encode) or for finer control over logging and compression.
package magicc

import (
	"fmt"
	"path/filepath"

	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/input"
	"github.com/arloliu/magicc/table"
)

// Input is a single MAGICC input file: its metadata and its data table.
//
// An Input is created unloaded; Read fills it. Accessors return errs.ErrNotLoaded
// until then. Input is not safe for concurrent use.
type Input struct {
	filename string
	opts     []input.Option

	meta *input.Metadata
	data *table.Table
}

// NewInput creates an unloaded Input bound to filename.
//
// Parameters:
//   - filename: Base name of the file, used by Read and as the default for Write
//   - opts: Options forwarded to every read and write (see input.Option)
//
// Example:
//
//	in := magicc.NewInput("HISTRCP_CO2_CONC.IN", input.WithLogger(logger))
func NewInput(filename string, opts ...input.Option) *Input {
	return &Input{filename: filename, opts: opts}
}

// FromTable creates a loaded Input from an existing table.
//
// The table is cloned, so later changes to t are not visible through the Input.
// meta may be nil.
func FromTable(filename string, meta *input.Metadata, t *table.Table, opts ...input.Option) *Input {
	return &Input{
		filename: filename,
		opts:     opts,
		meta:     meta.Clone(),
		data:     t.Clone(),
	}
}

// Filename returns the name the Input is bound to.
func (in *Input) Filename() string { return in.filename }

// IsLoaded reports whether the Input holds data.
func (in *Input) IsLoaded() bool { return in.data != nil }

// Read loads dir/filename, replacing any previously loaded content.
func (in *Input) Read(dir string) error {
	meta, data, err := Read(in.filename, dir, in.opts...)
	if err != nil {
		return err
	}
	in.meta, in.data = meta, data

	return nil
}

// Write renders the loaded content into dir/filename. The filename selects the
// layout, so writing a HIST*_EMIS.IN file under a .SCEN7 name converts it.
func (in *Input) Write(filename, dir string) error {
	if !in.IsLoaded() {
		return errs.ErrNotLoaded
	}

	return Write(in.data, in.meta, filename, dir, in.opts...)
}

// Metadata returns the header and configuration block of the loaded file.
func (in *Input) Metadata() (*input.Metadata, error) {
	if !in.IsLoaded() {
		return nil, errs.ErrNotLoaded
	}

	return in.meta, nil
}

// Table returns the loaded data table. The caller must not modify it.
func (in *Input) Table() (*table.Table, error) {
	if !in.IsLoaded() {
		return nil, errs.ErrNotLoaded
	}

	return in.data, nil
}

// Variable returns the columns of the given variable, across all regions.
func (in *Input) Variable(name string) (*table.Table, error) {
	if !in.IsLoaded() {
		return nil, errs.ErrNotLoaded
	}

	return in.data.ByVariable(name), nil
}

// Region returns the columns of the given region, across all variables.
func (in *Input) Region(name string) (*table.Table, error) {
	if !in.IsLoaded() {
		return nil, errs.ErrNotLoaded
	}

	return in.data.ByRegion(name), nil
}

// YearRange returns the rows whose year lies in [from, to].
func (in *Input) YearRange(from, to int) (*table.Table, error) {
	if !in.IsLoaded() {
		return nil, errs.ErrNotLoaded
	}

	return in.data.ByYearRange(from, to), nil
}

// Value returns the value of variable in region for year.
//
// The lookup ignores TODO and units. It fails with errs.ErrColumnNotFound when
// no column or year matches, and with errs.ErrAmbiguousColumn when the pair
// names several columns.
func (in *Input) Value(variable, region string, year int) (float64, error) {
	if !in.IsLoaded() {
		return 0, errs.ErrNotLoaded
	}

	matches := in.data.Select(func(k table.ColumnKey) bool {
		return k.Variable == variable && k.Region == region
	})
	switch matches.NumColumns() {
	case 0:
		return 0, fmt.Errorf("%w: %s in %s", errs.ErrColumnNotFound, variable, region)
	case 1:
	default:
		return 0, fmt.Errorf("%w: %s in %s matches %d columns", errs.ErrAmbiguousColumn, variable, region, matches.NumColumns())
	}

	v, ok := matches.Value(matches.Key(0), year)
	if !ok {
		return 0, fmt.Errorf("%w: %s in %s has no year %d", errs.ErrColumnNotFound, variable, region, year)
	}

	return v, nil
}

// Read reads dir/filename. It is a shorthand for input.Read.
func Read(filename, dir string, opts ...input.Option) (*input.Metadata, *table.Table, error) {
	return input.Read(filepath.Join(dir, filename), opts...)
}

// Write writes t and meta into dir/filename. It is a shorthand for input.Write.
func Write(t *table.Table, meta *input.Metadata, filename, dir string, opts ...input.Option) error {
	return input.Write(t, meta, filename, dir, opts...)
}
