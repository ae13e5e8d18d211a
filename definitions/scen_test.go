package definitions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/magicc/errs"
)

func TestSpecialScenCode(t *testing.T) {
	emissions := ScenEmissions()
	require.Len(t, emissions, 23)

	tests := []struct {
		name    string
		regions []string
		code    int
	}{
		{"world", []string{"WORLD"}, 11},
		{"sres", []string{"WORLD", "OECD90", "REF", "ASIA", "ALM"}, 21},
		{"r5", []string{"WORLD", "R5OECD", "R5REF", "R5ASIA", "R5MAF", "R5LAM"}, 31},
		{"r5 bunkers", []string{"WORLD", "R5OECD", "R5REF", "R5ASIA", "R5MAF", "R5LAM", "BUNKERS"}, 41},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := SpecialScenCode(tt.regions, emissions)
			require.NoError(t, err)
			require.Equal(t, tt.code, code)
		})
	}
}

func TestSpecialScenCode_Unknown(t *testing.T) {
	world := []string{"WORLD"}

	t.Run("extra species", func(t *testing.T) {
		_, err := SpecialScenCode(world, append(ScenEmissions(), "HFC365MFC"))
		require.ErrorIs(t, err, errs.ErrUnknownSpecialCode)
	})

	t.Run("missing species", func(t *testing.T) {
		_, err := SpecialScenCode(world, ScenEmissions()[1:])
		require.ErrorIs(t, err, errs.ErrUnknownSpecialCode)
	})

	t.Run("unknown regions", func(t *testing.T) {
		_, err := SpecialScenCode([]string{"WORLD", "NHLAND"}, ScenEmissions())
		require.ErrorIs(t, err, errs.ErrUnknownSpecialCode)
	})

	t.Run("r6 is not a scen region set", func(t *testing.T) {
		_, err := SpecialScenCode([]string{"WORLD", "R6OECD90", "R6REF", "R6LAM", "R6MAF", "R6ASIA"}, ScenEmissions())
		require.ErrorIs(t, err, errs.ErrUnknownSpecialCode)
	})
}
