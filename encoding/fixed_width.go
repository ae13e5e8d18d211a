package encoding

import (
	"strconv"
	"strings"
)

const (
	YearWidth = 12 // width of the year column in every layout

	ScientificWidth     = 18 // value width of the generic layout
	ScientificPrecision = 5  // decimals of the generic layout

	FixedWidth     = 11 // value width of the legacy SCEN layout
	FixedPrecision = 4  // decimals of the legacy SCEN layout
)

// Layout describes one fixed-width data block layout.
type Layout struct {
	Name       string
	ValueWidth int
	Precision  int
	Verb       byte // 'e' or 'f'
}

var (
	// Generic is the layout of files carrying a configuration block.
	Generic = Layout{Name: "generic", ValueWidth: ScientificWidth, Precision: ScientificPrecision, Verb: 'e'}
	// Legacy is the layout of MAGICC6 SCEN region blocks.
	Legacy = Layout{Name: "legacy", ValueWidth: FixedWidth, Precision: FixedPrecision, Verb: 'f'}
)

// FormatYear renders year right-justified in YearWidth characters.
func FormatYear(year int) string {
	return string(AppendYear(nil, year))
}

// FormatScientific renders v in the generic value field.
func FormatScientific(v float64) string {
	return string(Generic.AppendValue(nil, v))
}

// FormatFixed renders v in the legacy value field.
func FormatFixed(v float64) string {
	return string(Legacy.AppendValue(nil, v))
}

// AppendYear appends year right-justified in YearWidth characters.
func AppendYear(dst []byte, year int) []byte {
	return appendPadded(dst, strconv.AppendInt(nil, int64(year), 10), YearWidth)
}

// AppendValue appends v right-justified in the layout's value field.
//
// Exponents always carry at least two digits ("1.00000e+00").
func (l Layout) AppendValue(dst []byte, v float64) []byte {
	return appendPadded(dst, strconv.AppendFloat(nil, v, l.Verb, l.Precision, 64), l.ValueWidth)
}

// Fits reports whether v renders within the layout's value field.
func (l Layout) Fits(v float64) bool {
	var scratch [32]byte
	return len(strconv.AppendFloat(scratch[:0], v, l.Verb, l.Precision, 64)) <= l.ValueWidth
}

// AppendRow appends one data row (year plus values) without a trailing newline.
func (l Layout) AppendRow(dst []byte, year int, values []float64) []byte {
	dst = AppendYear(dst, year)
	for _, v := range values {
		dst = l.AppendValue(dst, v)
	}

	return dst
}

// AppendHeader appends a column header line: first right-justified in the year
// column, then each label right-justified in a value field.
//
// Labels wider than their field are still separated by one blank so the line
// stays tokenizable.
func (l Layout) AppendHeader(dst []byte, first string, labels []string) []byte {
	dst = appendPadded(dst, []byte(first), YearWidth)
	for _, label := range labels {
		if len(label) >= l.ValueWidth {
			dst = append(dst, ' ')
			dst = append(dst, label...)

			continue
		}
		dst = appendPadded(dst, []byte(label), l.ValueWidth)
	}

	return dst
}

// RowWidth returns the rendered width of a row with n values.
func (l Layout) RowWidth(n int) int {
	return YearWidth + n*l.ValueWidth
}

func appendPadded(dst, field []byte, width int) []byte {
	if pad := width - len(field); pad > 0 {
		dst = append(dst, strings.Repeat(" ", pad)...)
	}

	return append(dst, field...)
}
