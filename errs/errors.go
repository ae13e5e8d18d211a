// Package errs defines the sentinel errors returned by the magicc codec.
//
// Every read or write call fails with exactly one of these values wrapped in
// context (file name, offending value). Callers match them with errors.Is.
package errs

import "errors"

// Dispatch errors.
var (
	// ErrFormatUnresolved is returned when no file family pattern matches a filename.
	ErrFormatUnresolved = errors.New("no reader/writer matches filename")
	// ErrUnsupportedCompression is returned for an unknown compression codec.
	ErrUnsupportedCompression = errors.New("unsupported compression")
)

// Reader errors.
var (
	// ErrMalformedConfigBlock is returned when the &...\/ configuration block markers are missing.
	ErrMalformedConfigBlock = errors.New("malformed configuration block")
	// ErrVariableNameUnresolvable is returned when the variable cannot be derived from the filename.
	ErrVariableNameUnresolvable = errors.New("cannot determine variable from filename")
	// ErrColumnCountMismatch is returned when column header lists or data rows disagree in length.
	ErrColumnCountMismatch = errors.New("column count mismatch")
	// ErrUnexpectedHeaderToken is returned when a column header line does not start with the expected token.
	ErrUnexpectedHeaderToken = errors.New("unexpected column header token")
	// ErrInvalidDataRow is returned when a data row cannot be parsed.
	ErrInvalidDataRow = errors.New("invalid data row")
	// ErrMissingWorldRegion is returned when a SCEN file never reaches its WORLD block.
	ErrMissingWorldRegion = errors.New("reached end of file without finding WORLD region")
	// ErrYearIndexMismatch is returned when a region block's years differ from the first block.
	ErrYearIndexMismatch = errors.New("year index mismatch")
)

// Writer errors.
var (
	// ErrUnitsNotUniform is returned when a writer needs a single unit but the table has several.
	ErrUnitsNotUniform = errors.New("units are not uniform")
	// ErrVariablesNotUniform is returned when a single-variable layout is asked to write several variables.
	ErrVariablesNotUniform = errors.New("variables are not uniform")
	// ErrRegionSetUnresolved is returned when a region set matches zero or several catalog rows.
	ErrRegionSetUnresolved = errors.New("region set not resolvable")
	// ErrUnknownSpecialCode is returned when a SCEN special code cannot be derived.
	ErrUnknownSpecialCode = errors.New("could not determine scen special code")
	// ErrYearIndexNonContiguous is returned when the year index is not a contiguous annual range.
	ErrYearIndexNonContiguous = errors.New("year index is not contiguous")
	// ErrLayoutMismatch is returned when a rendered file disagrees with its own FIRSTDATAROW.
	ErrLayoutMismatch = errors.New("rendered layout disagrees with first data row")
	// ErrValueOverflow is returned when a value does not fit its fixed-width field.
	ErrValueOverflow = errors.New("value overflows its field")
	// ErrEmptyTable is returned when a writer is given a table without rows or columns.
	ErrEmptyTable = errors.New("table is empty")
)

// Table errors.
var (
	// ErrDuplicateColumn is returned when a column key is added twice.
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrNotLoaded is returned when an Input is queried before it has been read.
	ErrNotLoaded = errors.New("file has not been read from disk yet")
	// ErrColumnNotFound is returned when no column matches a variable/region lookup.
	ErrColumnNotFound = errors.New("column not found")
	// ErrAmbiguousColumn is returned when a variable/region lookup matches several columns.
	ErrAmbiguousColumn = errors.New("ambiguous column")
	// ErrInvalidYearIndex is returned when years are not strictly ascending.
	ErrInvalidYearIndex = errors.New("invalid year index")
)
