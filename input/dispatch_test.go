package input

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/format"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		kind        format.Kind
		compression format.CompressionType
	}{
		{"RCP26.SCEN", format.KindScen, format.CompressionNone},
		{"/data/run/RCP26.SCEN", format.KindScen, format.CompressionNone},
		{"TESTSCEN7.SCEN7", format.KindScen7, format.CompressionNone},
		{"HISTRCP_CO2I_EMIS.IN", format.KindHistEmisIn, format.CompressionNone},
		{"histrcp_co2i_emis.IN", format.KindHistEmisIn, format.CompressionNone},
		{"HISTRCP_CO2_CONC.IN", format.KindConcIn, format.CompressionNone},
		{"RCP85_CH4_CONC.IN", format.KindConcIn, format.CompressionNone},
		{"HISTRCP_CO2_CONC.IN.zst", format.KindConcIn, format.CompressionZstd},
		{"RCP26.SCEN.s2", format.KindScen, format.CompressionS2},
		{"HISTSSP_CO2I_EMIS.IN.lz4", format.KindHistEmisIn, format.CompressionLZ4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, compression, err := Resolve(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.kind, kind)
			require.Equal(t, tt.compression, compression)
		})
	}
}

func TestResolve_Unresolved(t *testing.T) {
	for _, name := range []string{
		"RCP26.scen",
		"HISTRCP_CO2I_EMIS.in",
		"MAGCFG_USER.CFG",
		"RCP26.SCEN.gz",
		"",
	} {
		t.Run(name, func(t *testing.T) {
			kind, _, err := Resolve(name)
			require.ErrorIs(t, err, errs.ErrFormatUnresolved)
			require.Equal(t, format.KindUnknown, kind)
		})
	}
}

func TestResolve_OrderedBindings(t *testing.T) {
	// matches both the emissions and the concentration pattern
	kind, _, err := Resolve("HISTRCP_CONC_EMIS.IN")
	require.NoError(t, err)
	require.Equal(t, format.KindHistEmisIn, kind)
}
