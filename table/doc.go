// Package table provides the canonical in-memory form of a MAGICC data block.
//
// A Table has one row per year and one column per unique
// (VARIABLE, TODO, UNITS, REGION) tuple. Every column shares the table's year
// index. Columns keep the order they were added in, which is the order
// readers found them in the file; writers reorder copies, never the table.
//
// Columns are indexed by the xxHash64 of their key tuple, so lookups by key
// stay O(1) on wide SCEN tables.
package table
