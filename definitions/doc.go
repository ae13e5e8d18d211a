// Package definitions holds the fixed catalogs shared by every MAGICC reader and writer.
//
// Three catalogs live here:
//   - the variable vocabulary, which translates between the legacy SCEN
//     variable names (FossilCO2, HFC43-10, ...) and canonical MAGICC7 names;
//   - the region set catalog, which maps a set of region names to the
//     THISFILE_DATTYPE / THISFILE_REGIONMODE flags and the canonical region order;
//   - the SCEN special code table.
//
// All catalogs are initialized at package load and never mutated. Accessors
// return copies, so they are safe for concurrent use without locking.
package definitions
