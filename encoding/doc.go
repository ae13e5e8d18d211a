// Package encoding implements the fixed-width number layout of MAGICC data blocks.
//
// MAGICC parses data rows by column width, not by delimiter, so the writer
// must reproduce the widths exactly:
//
//	Column | Generic (CONC.IN, EMIS.IN, SCEN7) | Legacy multi-block (SCEN)
//	-------|----------------------------------|--------------------------
//	Year   | %12d                             | %12d
//	Value  | %18.5e                           | %11.4f
//
// Readers are more lenient: rows are split on whitespace, and a row whose
// values have grown to fill their whole field (so no blank separates them) is
// sliced by width from the right-hand end instead.
package encoding
