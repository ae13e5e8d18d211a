package encoding

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/magicc/errs"
)

// HeaderLabels checks that line starts with the expected token and returns the
// remaining whitespace-separated labels.
func HeaderLabels(line, expected string) ([]string, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: expected %q, got empty line", errs.ErrUnexpectedHeaderToken, expected)
	}
	if tokens[0] != expected {
		return nil, fmt.Errorf("%w: expected %q, got %q", errs.ErrUnexpectedHeaderToken, expected, tokens[0])
	}

	return tokens[1:], nil
}

// HasLeadingToken reports whether the first whitespace-separated token of line is token.
func HasLeadingToken(line, token string) bool {
	tokens := strings.Fields(line)
	return len(tokens) > 0 && tokens[0] == token
}

// ParseRow parses a data row holding a year and exactly columns values.
//
// Rows are split on whitespace. When the token count is wrong and the line has
// exactly the rendered width of the layout, it is sliced field by field, which
// recovers rows whose values fill their whole field. Anything else is an error.
func (l Layout) ParseRow(line string, columns int) (int, []float64, error) {
	tokens := strings.Fields(line)
	if len(tokens) != columns+1 {
		sliced, ok := l.sliceRow(line, columns)
		if !ok {
			return 0, nil, fmt.Errorf("%w: expected %d values, got %d in %q",
				errs.ErrColumnCountMismatch, columns, len(tokens)-1, line)
		}
		tokens = sliced
	}

	year, err := ParseYear(tokens[0])
	if err != nil {
		return 0, nil, err
	}

	values := make([]float64, columns)
	for i, tok := range tokens[1:] {
		v, err := ParseValue(tok)
		if err != nil {
			return 0, nil, err
		}
		values[i] = v
	}

	return year, values, nil
}

func (l Layout) sliceRow(line string, columns int) ([]string, bool) {
	line = strings.TrimRight(line, " \t\r\n")
	if columns == 0 || len(line) != l.RowWidth(columns) {
		return nil, false
	}

	yearField := strings.TrimSpace(line[:YearWidth])
	if yearField == "" || strings.ContainsAny(yearField, " \t") {
		return nil, false
	}

	tokens := make([]string, 0, columns+1)
	tokens = append(tokens, yearField)
	start := YearWidth
	for i := range columns {
		field := strings.TrimSpace(line[start+i*l.ValueWidth : start+(i+1)*l.ValueWidth])
		if field == "" || strings.ContainsAny(field, " \t") {
			return nil, false
		}
		tokens = append(tokens, field)
	}

	return tokens, true
}

// ParseYear parses a year cell. Integral floats such as "1765.0" are accepted.
func ParseYear(s string) (int, error) {
	if year, err := strconv.Atoi(s); err == nil {
		return year, nil
	}

	f, err := ParseValue(s)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: invalid year %q", errs.ErrInvalidDataRow, s)
	}

	return int(f), nil
}

// ParseValue parses a value cell. Fortran double-precision exponents ("1.0D+02") are accepted.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v, nil
	}

	if strings.ContainsAny(s, "dD") {
		if v, err = strconv.ParseFloat(strings.NewReplacer("D", "E", "d", "e").Replace(s), 64); err == nil {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: invalid value %q", errs.ErrInvalidDataRow, s)
}
