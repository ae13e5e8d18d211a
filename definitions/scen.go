package definitions

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/magicc/errs"
)

// scenEmissions is the species set of a SCEN file with emissions code 1.
var scenEmissions = []string{
	"CO2I", "CO2B", "CH4", "N2O", "SOX", "CO", "NMVOC", "NOX", "BC", "OC", "NH3",
	"CF4", "C2F6", "C6F14", "HFC23", "HFC32", "HFC4310", "HFC125", "HFC134A",
	"HFC143A", "HFC227EA", "HFC245FA", "SF6",
}

const scenEmissionsCode = 1

var scenRegionCodes = []struct {
	code    int
	regions []string
}{
	{code: 1, regions: regionsWorld},
	{code: 2, regions: regionsSRES},
	{code: 3, regions: regionsR5},
	{code: 4, regions: regionsR5Bunker},
}

// ScenEmissions returns the canonical species a SCEN file must carry, in SCEN column order.
func ScenEmissions() []string {
	return slices.Clone(scenEmissions)
}

// SpecialScenCode derives the 2-digit code written on the second line of a SCEN file.
//
// The code is 10 * region code + emissions code. emissions must equal the
// fixed 23 species exactly and regions one of the four SCEN region sets.
func SpecialScenCode(regions, emissions []string) (int, error) {
	if !sameSet(emissions, scenEmissions) {
		return 0, fmt.Errorf("%w: emissions [%s] do not match the SCEN species set",
			errs.ErrUnknownSpecialCode, strings.Join(emissions, " "))
	}

	for _, rc := range scenRegionCodes {
		if sameSet(regions, rc.regions) {
			return rc.code*10 + scenEmissionsCode, nil
		}
	}

	return 0, fmt.Errorf("%w: regions [%s] do not match a SCEN region set",
		errs.ErrUnknownSpecialCode, strings.Join(regions, " "))
}
