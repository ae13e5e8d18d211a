package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatYear(t *testing.T) {
	require.Equal(t, "        1765", FormatYear(1765))
	require.Equal(t, "          -5", FormatYear(-5))
	require.Len(t, FormatYear(2100), YearWidth)
}

func TestFormatScientific(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"one", 1.0, "       1.00000e+00"},
		{"large", 278.05, "       2.78050e+02"},
		{"negative small", -0.00012, "      -1.20000e-04"},
		{"zero", 0, "       0.00000e+00"},
		{"three digit exponent", 1e120, "      1.00000e+120"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatScientific(tt.in)
			require.Equal(t, tt.want, got)
			require.Len(t, got, ScientificWidth)
		})
	}
}

func TestFormatFixed(t *testing.T) {
	require.Equal(t, "     1.0000", FormatFixed(1))
	require.Equal(t, "    12.3457", FormatFixed(12.34567))
	require.Equal(t, "    -0.5000", FormatFixed(-0.5))
	require.Equal(t, "12345678.0000", FormatFixed(12345678), "overflowing values keep every digit")
}

func TestLayout_Fits(t *testing.T) {
	require.True(t, Legacy.Fits(1))
	require.True(t, Legacy.Fits(-12345.6789), "a value may fill its whole field")
	require.False(t, Legacy.Fits(1234567))
	require.False(t, Legacy.Fits(12345678))

	require.True(t, Generic.Fits(-1e300))
	require.True(t, Generic.Fits(-1.5e-300))
}

func TestLayout_AppendRow(t *testing.T) {
	row := Generic.AppendRow(nil, 2000, []float64{1, 2})
	require.Equal(t, "        2000       1.00000e+00       2.00000e+00", string(row))
	require.Len(t, row, Generic.RowWidth(2))

	row = Legacy.AppendRow(nil, 2000, []float64{1.5})
	require.Equal(t, "        2000     1.5000", string(row))
	require.Len(t, row, Legacy.RowWidth(1))
}

func TestLayout_AppendHeader(t *testing.T) {
	t.Run("right justified", func(t *testing.T) {
		line := Generic.AppendHeader(nil, "COLCODE", []string{"WORLD", "R5ASIA"})
		require.Equal(t, "     COLCODE             WORLD            R5ASIA", string(line))
	})

	t.Run("label filling its field keeps a separator", func(t *testing.T) {
		line := Legacy.AppendHeader(nil, "YEARS", []string{"HFC245fa_EM", "SF6"})
		require.Equal(t, "       YEARS HFC245fa_EM        SF6", string(line))
	})
}
