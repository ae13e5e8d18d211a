// Package section parses and renders the metadata sections of a MAGICC input file.
//
// A MAGICC7 input file is laid out as:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Free-text header (any number of lines)                   │
//	│  - "Tag: value" lines (compiled by, contact, date, ...)  │
//	├──────────────────────────────────────────────────────────┤
//	│ Configuration block (Fortran namelist)                   │
//	│  &THISFILE_SPECIFICATIONS                                │
//	│      THISFILE_DATACOLUMNS = 2                            │
//	│      ...                                                 │
//	│      THISFILE_FIRSTDATAROW = 21                          │
//	│  /                                                       │
//	├──────────────────────────────────────────────────────────┤
//	│ Blank line                                               │
//	├──────────────────────────────────────────────────────────┤
//	│ Column header lines (COLCODE, or GAS/TODO/UNITS/YEARS)   │
//	├──────────────────────────────────────────────────────────┤
//	│ Fixed-width data rows                                    │
//	└──────────────────────────────────────────────────────────┘
//
// # Configuration block
//
// The block spans from the last line starting with '&' to the last line
// starting with '/'. Keys are flattened by removing the section prefix
// (THISFILE_) and lower-casing the rest, so THISFILE_FIRSTYEAR becomes
// "firstyear". Rendering reverses this.
//
// THISFILE_FIRSTDATAROW is the 1-based line number of the first data row.
// Writers compute it in two passes: render the header, count the block and
// column header lines, patch the field, then emit:
//
//	firstdatarow = headerLines + blockLines + 1 (blank) + columnHeaderLines + 1
//
// Only the namelist subset MAGICC uses is supported: integers, reals
// (including D exponents), quoted strings, logicals, comma separated lists
// and '!' comments.
package section
