package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/magicc/errs"
)

func TestHeaderLabels(t *testing.T) {
	labels, err := HeaderLabels("     COLCODE   WORLD   R5ASIA", "COLCODE")
	require.NoError(t, err)
	require.Equal(t, []string{"WORLD", "R5ASIA"}, labels)

	_, err = HeaderLabels("GAS CO2", "COLCODE")
	require.ErrorIs(t, err, errs.ErrUnexpectedHeaderToken)

	_, err = HeaderLabels("   ", "YEARS")
	require.ErrorIs(t, err, errs.ErrUnexpectedHeaderToken)
}

func TestHasLeadingToken(t *testing.T) {
	require.True(t, HasLeadingToken("  YEARS  CO2I", "YEARS"))
	require.False(t, HasLeadingToken("YEARSX", "YEARS"))
	require.False(t, HasLeadingToken("", "YEARS"))
}

func TestLayout_ParseRow(t *testing.T) {
	t.Run("whitespace separated", func(t *testing.T) {
		year, values, err := Generic.ParseRow("        1765       2.78050e+02       1.00000e+00", 2)
		require.NoError(t, err)
		require.Equal(t, 1765, year)
		require.Equal(t, []float64{278.05, 1}, values)
	})

	t.Run("float year", func(t *testing.T) {
		year, _, err := Generic.ParseRow("1765.0 1.0", 1)
		require.NoError(t, err)
		require.Equal(t, 1765, year)
	})

	t.Run("fortran exponent", func(t *testing.T) {
		_, values, err := Generic.ParseRow("2000 1.5D+02 -2.0d-01", 2)
		require.NoError(t, err)
		require.Equal(t, []float64{150, -0.2}, values)
	})

	t.Run("values filling their field", func(t *testing.T) {
		line := FormatYear(2000) + "-12345.6789" + "-12345.6789"
		year, values, err := Legacy.ParseRow(line, 2)
		require.NoError(t, err)
		require.Equal(t, 2000, year)
		require.Equal(t, []float64{-12345.6789, -12345.6789}, values)
	})

	t.Run("overflowing value is not sliced", func(t *testing.T) {
		// 12 characters in an 11 character field shift every later field by one
		line := FormatYear(2000) + "1234567.0000" + FormatFixed(1)
		_, _, err := Legacy.ParseRow(line, 2)
		require.ErrorIs(t, err, errs.ErrColumnCountMismatch)
	})

	t.Run("row without year padding is not sliced", func(t *testing.T) {
		line := "2000" + "-12345.6789" + "-12345.6789"
		_, _, err := Legacy.ParseRow(line, 2)
		require.ErrorIs(t, err, errs.ErrColumnCountMismatch)
	})

	t.Run("too few values", func(t *testing.T) {
		_, _, err := Generic.ParseRow("2000 1.0", 3)
		require.ErrorIs(t, err, errs.ErrColumnCountMismatch)
	})

	t.Run("garbage value", func(t *testing.T) {
		_, _, err := Generic.ParseRow("2000 abc", 1)
		require.ErrorIs(t, err, errs.ErrInvalidDataRow)
	})

	t.Run("fractional year", func(t *testing.T) {
		_, _, err := Generic.ParseRow("2000.5 1.0", 1)
		require.ErrorIs(t, err, errs.ErrInvalidDataRow)
	})
}
