// Package input reads and writes MAGICC input files.
//
// The file family is chosen from the filename alone:
//
//	Pattern            | Kind           | Reader                      | Writer
//	-------------------|----------------|-----------------------------|-------------------------
//	*.SCEN             | KindScen       | multi-block region reader   | multi-block region writer
//	*.SCEN7            | KindScen7      | emissions reader            | GAS/TODO/UNITS writer
//	HIST*_EMIS.IN      | KindHistEmisIn | emissions reader            | GAS/TODO/UNITS writer
//	*_*CONC*.IN        | KindConcIn     | COLCODE reader              | COLCODE writer
//
// The extension match is case-sensitive and the stem match is not. A
// trailing .zst, .s2 or .lz4 suffix is stripped before matching and selects
// the compression codec.
//
// Read and Write work on files; Decode and Encode work on in-memory bytes:
//
//	meta, tbl, err := input.Read("HISTRCP_CO2_CONC.IN")
//	if err != nil {
//	    return err
//	}
//	err = input.Write(tbl, meta, "RCP26_CO2_CONC.IN.zst", outDir)
//
// Every failure wraps one of the sentinel errors in package errs.
package input
