package definitions

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/format"
)

// RegionSet is one row of the region set catalog.
type RegionSet struct {
	Family     format.Family
	DatType    string
	RegionMode string
	Regions    []string // canonical column order
}

var (
	regionsWorld    = []string{"WORLD"}
	regionsGlobal   = []string{"GLOBAL"}
	regionsHemi     = []string{"NH", "SH"}
	regionsFourBox  = []string{"GLOBAL", "NHOCEAN", "NHLAND", "SHOCEAN", "SHLAND"}
	regionsSRES     = []string{"WORLD", "OECD90", "REF", "ASIA", "ALM"}
	regionsR5       = []string{"WORLD", "R5OECD", "R5REF", "R5ASIA", "R5MAF", "R5LAM"}
	regionsR5Bunker = []string{"WORLD", "R5OECD", "R5REF", "R5ASIA", "R5MAF", "R5LAM", "BUNKERS"}
	regionsR6       = []string{"WORLD", "R6OECD90", "R6REF", "R6LAM", "R6MAF", "R6ASIA"}
	regionsR6Bunker = []string{"WORLD", "R6OECD90", "R6REF", "R6LAM", "R6MAF", "R6ASIA", "BUNKERS"}
)

var regionSets = []RegionSet{
	{Family: format.FamilyStandard, DatType: "1", RegionMode: "NONE", Regions: regionsWorld},
	{Family: format.FamilyStandard, DatType: "1", RegionMode: "NONE", Regions: regionsGlobal},
	{Family: format.FamilyStandard, DatType: "1", RegionMode: "HEMISPHERES", Regions: regionsHemi},
	{Family: format.FamilyStandard, DatType: "1", RegionMode: "FOURBOX", Regions: regionsFourBox},
	{Family: format.FamilyStandard, DatType: "2", RegionMode: "IPCCREGIONS", Regions: regionsSRES},
	{Family: format.FamilyStandard, DatType: "2", RegionMode: "RCPREGIONS", Regions: regionsR5},
	{Family: format.FamilyStandard, DatType: "2", RegionMode: "RCPPLUSBUNKERS", Regions: regionsR5Bunker},
	{Family: format.FamilyStandard, DatType: "2", RegionMode: "R6REGIONS", Regions: regionsR6},
	{Family: format.FamilyScen7, DatType: "SCEN7", RegionMode: "NONE", Regions: regionsWorld},
	{Family: format.FamilyScen7, DatType: "SCEN7", RegionMode: "RCPPLUSBUNKERS", Regions: regionsR5Bunker},
	{Family: format.FamilyScen7, DatType: "SCEN7", RegionMode: "R6PLUSBUNKERS", Regions: regionsR6Bunker},
}

// RegionSets returns a copy of the catalog rows.
func RegionSets() []RegionSet {
	out := make([]RegionSet, len(regionSets))
	for i, rs := range regionSets {
		out[i] = rs.clone()
	}

	return out
}

// ResolveRegionSet returns the single catalog row of family whose region set
// equals regions. Order and duplicates in regions are ignored.
func ResolveRegionSet(regions []string, family format.Family) (RegionSet, error) {
	var (
		found RegionSet
		hits  int
	)
	for _, rs := range regionSets {
		if rs.Family != family || !sameSet(rs.Regions, regions) {
			continue
		}
		found = rs
		hits++
	}

	switch hits {
	case 0:
		return RegionSet{}, fmt.Errorf("%w: no %s catalog entry for regions [%s]",
			errs.ErrRegionSetUnresolved, family, strings.Join(regions, " "))
	case 1:
		return found.clone(), nil
	default:
		return RegionSet{}, fmt.Errorf("%w: %d %s catalog entries for regions [%s]",
			errs.ErrRegionSetUnresolved, hits, family, strings.Join(regions, " "))
	}
}

// RegionOrder returns the canonical column order for regions.
func RegionOrder(regions []string, family format.Family) ([]string, error) {
	rs, err := ResolveRegionSet(regions, family)
	if err != nil {
		return nil, err
	}

	return rs.Regions, nil
}

// DatTypeRegionMode returns the THISFILE_DATTYPE and THISFILE_REGIONMODE flags for regions.
func DatTypeRegionMode(regions []string, family format.Family) (string, string, error) {
	rs, err := ResolveRegionSet(regions, family)
	if err != nil {
		return "", "", err
	}

	return rs.DatType, rs.RegionMode, nil
}

func (rs RegionSet) clone() RegionSet {
	rs.Regions = slices.Clone(rs.Regions)
	return rs
}

// sameSet reports whether a and b hold the same distinct strings.
func sameSet(a, b []string) bool {
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		seen[s] = struct{}{}
	}

	other := make(map[string]struct{}, len(b))
	for _, s := range b {
		if _, ok := seen[s]; !ok {
			return false
		}
		other[s] = struct{}{}
	}

	return len(seen) == len(other)
}
