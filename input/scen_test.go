package input

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/magicc/definitions"
	"github.com/arloliu/magicc/encoding"
	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/table"
)

var r5BunkerRegions = []string{"WORLD", "R5OECD", "R5REF", "R5ASIA", "R5MAF", "R5LAM", "BUNKERS"}

func TestScen_RoundTrip(t *testing.T) {
	years := []int{2000, 2005, 2010, 2020}
	tbl := scenTable(t, years, r5BunkerRegions)

	out, err := Encode(tbl, nil, "TEST.SCEN")
	require.NoError(t, err)

	lines := strings.Split(string(out), "\n")
	require.Equal(t, []string{"4", "41", "NAME", "DESCRIPTION", "NOTES", "", "WORLD"}, lines[:7])
	require.True(t, encoding.HasLeadingToken(lines[7], "YEARS"))
	require.Contains(t, lines[7], "FossilCO2")
	require.Contains(t, lines[7], "HFC43-10")
	require.True(t, encoding.HasLeadingToken(lines[8], "Yrs"))
	require.Equal(t, encoding.FormatYear(2000)+encoding.FormatFixed(0)+encoding.FormatFixed(1), lines[9][:34])

	meta, got, err := Decode("TEST.SCEN", out)
	require.NoError(t, err)
	require.True(t, tbl.Equal(got))
	require.Nil(t, meta.Config)
	require.Equal(t, "4\n41\nNAME\nDESCRIPTION\nNOTES\n"+strings.Repeat("OTHER NOTES\n", 3)+"OTHER NOTES", meta.Header)
}

func TestScen_CanonicalRegionOrder(t *testing.T) {
	reversed := slices.Clone(r5Regions)
	slices.Reverse(reversed)
	tbl := scenTable(t, []int{2000, 2100}, reversed)
	fingerprint := tbl.Fingerprint()

	out, err := Encode(tbl, nil, "TEST.SCEN", WithScenPlaceholders("RCP3PD", "test scenario", "no notes"))
	require.NoError(t, err)
	require.Equal(t, fingerprint, tbl.Fingerprint(), "writer must not modify the table")

	meta, got, err := Decode("TEST.SCEN", out)
	require.NoError(t, err)
	require.Equal(t, r5Regions, got.UniqueRegions())
	require.True(t, strings.HasPrefix(meta.Header, "2\n31\nRCP3PD\ntest scenario\nno notes\n"))

	for _, key := range tbl.Keys() {
		for _, year := range tbl.Years() {
			want, _ := tbl.Value(key, year)
			have, ok := got.Value(key, year)
			require.True(t, ok, key.String())
			require.InDelta(t, want, have, 1e-9)
		}
	}
}

func TestScen_ReadLegacyFile(t *testing.T) {
	src := "2\n" +
		"11\n" +
		"Final RCP3PD with constant emissions\n" +
		"Date: 26/11/2009 11:29:06\n" +
		"\n" +
		"WORLD\n" +
		"       YEARS  FossilCO2      SOx   HFC43-10\n" +
		"         Yrs        GtC      MtS         kt\n" +
		"        2000     6.7350  55.7500     0.6470\n" +
		encoding.FormatYear(2100) + "-12345.6789" + encoding.FormatFixed(1) + encoding.FormatFixed(0) + "\n" +
		"\n" +
		"Some trailing notes\n" +
		"more notes\n"

	meta, tbl, err := Decode("RCP3PD.SCEN", []byte(src))
	require.NoError(t, err)

	require.Equal(t, []string{"CO2I", "SOX", "HFC4310"}, tbl.Variables())
	require.Equal(t, []string{"GtC", "MtS", "kt"}, tbl.Units())
	require.Equal(t, []int{2000, 2100}, tbl.Years())

	v, ok := tbl.Value(table.ColumnKey{Variable: "CO2I", Todo: "SET", Units: "GtC", Region: "WORLD"}, 2100)
	require.True(t, ok)
	require.InDelta(t, -12345.6789, v, 1e-9)

	require.Equal(t, "26/11/2009 11:29:06", meta.Tags["date"])
	require.True(t, strings.HasSuffix(meta.Header, "Some trailing notes\nmore notes"))
	require.Contains(t, meta.Header, "Final RCP3PD with constant emissions")
}

// worldScenTable holds every SCEN species for WORLD with value 1, except for overrides.
func worldScenTable(t *testing.T, years []int, overrides map[string]float64) *table.Table {
	t.Helper()

	tbl := newTable(t, years)
	for _, species := range definitions.ScenEmissions() {
		v, ok := overrides[species]
		if !ok {
			v = 1
		}
		values := make([]float64, len(years))
		for i := range values {
			values[i] = v
		}
		addColumn(t, tbl, species, TodoSet, "kt", "WORLD", values...)
	}

	return tbl
}

func TestScen_FullFieldRoundTrip(t *testing.T) {
	tbl := worldScenTable(t, []int{2000, 2010}, map[string]float64{"CO2I": -12345.6789, "CO2B": -99999.9999})

	out, err := Encode(tbl, nil, "TEST.SCEN")
	require.NoError(t, err)
	require.Contains(t, string(out), encoding.FormatYear(2000)+"-12345.6789-99999.9999"+encoding.FormatFixed(1))

	_, got, err := Decode("TEST.SCEN", out)
	require.NoError(t, err)
	require.Equal(t, []int{2000, 2010}, got.Years())
	require.True(t, tbl.Equal(got))
}

func TestScen_OverflowingValue(t *testing.T) {
	tbl := worldScenTable(t, []int{2000, 2010}, map[string]float64{"CO2I": 1234567})

	_, err := Encode(tbl, nil, "TEST.SCEN")
	require.ErrorIs(t, err, errs.ErrValueOverflow)
	require.ErrorContains(t, err, "CO2I")
	require.ErrorContains(t, err, "2000")

	// the generic layout has room for any float
	huge := newTable(t, []int{2000})
	addColumn(t, huge, "CO2_CONC", TodoSet, "ppm", "WORLD", -1.5e300)
	_, err = Encode(huge, nil, "TEST_CO2_CONC.IN")
	require.NoError(t, err)
}

func TestScen_ReadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"no world", "1\n11\nnotes\n", errs.ErrMissingWorldRegion},
		{"empty", "\n\n", errs.ErrMissingWorldRegion},
		{"bad year count", "two\nWORLD\nYEARS CO2I\nYrs GtC\n2000 1\n", errs.ErrInvalidDataRow},
		{"units token missing", "1\nWORLD\nYEARS CO2I\nUnits GtC\n2000 1\n", errs.ErrUnexpectedHeaderToken},
		{"units line missing", "1\nWORLD\nYEARS CO2I\n", errs.ErrUnexpectedHeaderToken},
		{"truncated block", "3\nWORLD\nYEARS CO2I\nYrs GtC\n2000 1\n2001 1\n", errs.ErrInvalidDataRow},
		{"units count", "1\nWORLD\nYEARS CO2I SOx\nYrs GtC\n2000 1 2\n", errs.ErrColumnCountMismatch},
		{
			"region years differ",
			"1\nWORLD\nYEARS CO2I\nYrs GtC\n2000 1\nR5ASIA\nYEARS CO2I\nYrs GtC\n2001 1\n",
			errs.ErrYearIndexMismatch,
		},
		{"world without block", "1\nWORLD is mentioned here\nnotes\n", errs.ErrMissingWorldRegion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode("TEST.SCEN", []byte(tt.src))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestScen_WriteErrors(t *testing.T) {
	t.Run("missing species", func(t *testing.T) {
		tbl := scenTable(t, []int{2000}, []string{"WORLD"})
		_, err := Encode(tbl.Select(func(k table.ColumnKey) bool { return k.Variable != "SF6" }), nil, "TEST.SCEN")
		require.ErrorIs(t, err, errs.ErrUnknownSpecialCode)
	})

	t.Run("extra species", func(t *testing.T) {
		tbl := scenTable(t, []int{2000}, []string{"WORLD"})
		addColumn(t, tbl, "HFC365MFC", "SET", "kt", "WORLD", 1)
		_, err := Encode(tbl, nil, "TEST.SCEN")
		require.ErrorIs(t, err, errs.ErrUnknownSpecialCode)
	})

	t.Run("r6 regions", func(t *testing.T) {
		tbl := scenTable(t, []int{2000}, []string{"WORLD", "R6OECD90", "R6REF", "R6LAM", "R6MAF", "R6ASIA"})
		_, err := Encode(tbl, nil, "TEST.SCEN")
		require.ErrorIs(t, err, errs.ErrUnknownSpecialCode)
	})

	t.Run("unknown regions", func(t *testing.T) {
		tbl := scenTable(t, []int{2000}, []string{"WORLD", "MARS"})
		_, err := Encode(tbl, nil, "TEST.SCEN")
		require.ErrorIs(t, err, errs.ErrRegionSetUnresolved)
	})

	t.Run("ragged regions", func(t *testing.T) {
		tbl := scenTable(t, []int{2000}, []string{"WORLD", "OECD90", "REF", "ASIA", "ALM"})
		addColumn(t, tbl, "CO2I", "SET", "MtC", "ALM", 1)
		_, err := Encode(tbl, nil, "TEST.SCEN")
		require.ErrorIs(t, err, errs.ErrColumnCountMismatch)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Encode(newTable(t, nil), nil, "TEST.SCEN")
		require.ErrorIs(t, err, errs.ErrEmptyTable)
	})
}

func TestScen_SpeciesOrderFollowsTable(t *testing.T) {
	species := definitions.ScenEmissions()
	slices.Reverse(species)

	tbl := newTable(t, []int{2000})
	for _, s := range species {
		addColumn(t, tbl, s, "SET", "kt", "WORLD", 1)
	}

	out, err := Encode(tbl, nil, "TEST.SCEN")
	require.NoError(t, err)

	_, got, err := Decode("TEST.SCEN", out)
	require.NoError(t, err)
	require.Equal(t, species, got.Variables())
}
