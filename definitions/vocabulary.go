package definitions

import (
	"cmp"
	"slices"
	"strings"
)

// VariableAlias pairs a legacy SCEN variable name with its canonical name.
type VariableAlias struct {
	Legacy    string
	Canonical string
}

var variableAliases = []VariableAlias{
	{Legacy: "FossilCO2", Canonical: "CO2I"},
	{Legacy: "OtherCO2", Canonical: "CO2B"},
	{Legacy: "SOx", Canonical: "SOX"},
	{Legacy: "NOx", Canonical: "NOX"},
	{Legacy: "HFC43-10", Canonical: "HFC4310"},
	{Legacy: "HFC134a", Canonical: "HFC134A"},
	{Legacy: "HFC143a", Canonical: "HFC143A"},
	{Legacy: "HFC227ea", Canonical: "HFC227EA"},
	{Legacy: "HFC245fa", Canonical: "HFC245FA"},
}

var (
	legacyToCanonical = newAliasReplacer(func(a VariableAlias) (string, string) { return a.Legacy, a.Canonical })
	canonicalToLegacy = newAliasReplacer(func(a VariableAlias) (string, string) { return a.Canonical, a.Legacy })
)

// newAliasReplacer builds a single-pass replacer. strings.Replacer tries its
// pairs in argument order at each position, so sorting the pairs by source
// length makes the longest alias win.
func newAliasReplacer(pair func(VariableAlias) (string, string)) *strings.Replacer {
	aliases := slices.Clone(variableAliases)
	slices.SortStableFunc(aliases, func(a, b VariableAlias) int {
		from, _ := pair(a)
		other, _ := pair(b)

		return cmp.Compare(len(other), len(from))
	})

	oldnew := make([]string, 0, 2*len(aliases))
	for _, a := range aliases {
		from, to := pair(a)
		oldnew = append(oldnew, from, to)
	}

	return strings.NewReplacer(oldnew...)
}

// VariableAliases returns a copy of the alias catalog.
func VariableAliases() []VariableAlias {
	return slices.Clone(variableAliases)
}

// ToCanonical converts legacy variable names inside name to canonical names.
func ToCanonical(name string) string {
	return legacyToCanonical.Replace(name)
}

// ToLegacy converts canonical variable names inside name to legacy names.
func ToLegacy(name string) string {
	return canonicalToLegacy.Replace(name)
}

// ToCanonicalAll converts every name and returns a new slice.
func ToCanonicalAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = ToCanonical(n)
	}

	return out
}

// ToLegacyAll converts every name and returns a new slice.
func ToLegacyAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = ToLegacy(n)
	}

	return out
}
