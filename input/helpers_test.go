package input

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/magicc/definitions"
	"github.com/arloliu/magicc/table"
)

var scenUnitsBySpecies = map[string]string{
	"CO2I": "GtC", "CO2B": "GtC", "CH4": "MtCH4", "N2O": "MtN2O-N", "SOX": "MtS",
	"CO": "MtCO", "NMVOC": "Mt", "NOX": "MtN", "BC": "Mt", "OC": "Mt", "NH3": "MtN",
}

func newTable(t *testing.T, years []int) *table.Table {
	t.Helper()

	tbl, err := table.New(years)
	require.NoError(t, err)

	return tbl
}

func addColumn(t *testing.T, tbl *table.Table, variable, todo, units, region string, values ...float64) {
	t.Helper()
	require.NoError(t, tbl.AddColumn(table.ColumnKey{Variable: variable, Todo: todo, Units: units, Region: region}, values))
}

// concTable is the two-region, three-year concentration fixture.
func concTable(t *testing.T) *table.Table {
	t.Helper()

	tbl := newTable(t, []int{2000, 2001, 2002})
	addColumn(t, tbl, "CO2_CONC", "SET", "ppm", "NH", 1, 2, 3)
	addColumn(t, tbl, "CO2_CONC", "SET", "ppm", "SH", 4, 5, 6)

	return tbl
}

// scenTable holds every SCEN species for regions, columns grouped by region.
func scenTable(t *testing.T, years []int, regions []string) *table.Table {
	t.Helper()

	tbl := newTable(t, years)
	for r, region := range regions {
		for s, species := range definitions.ScenEmissions() {
			units, ok := scenUnitsBySpecies[species]
			if !ok {
				units = "kt"
			}

			values := make([]float64, len(years))
			for i := range values {
				values[i] = float64(r*100+s) + float64(i)*0.25
			}
			addColumn(t, tbl, species, TodoSet, units, region, values...)
		}
	}

	return tbl
}
