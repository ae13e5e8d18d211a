package section

import (
	"strconv"
	"strings"
)

// ValueKind identifies the namelist type of a Value.
type ValueKind uint8

const (
	KindString ValueKind = iota + 1
	KindInt
	KindFloat
	KindLogical
	KindList
)

// Value is one namelist value.
type Value struct {
	kind ValueKind
	str  string
	num  int64
	flt  float64
	bit  bool
	list []Value
}

func StringValue(s string) Value { return Value{kind: KindString, str: s} }
func IntValue(i int) Value { return Value{kind: KindInt, num: int64(i)} }
func FloatValue(f float64) Value { return Value{kind: KindFloat, flt: f} }
func LogicalValue(b bool) Value { return Value{kind: KindLogical, bit: b} }
func ListValue(items ...Value) Value { return Value{kind: KindList, list: items} }

// Kind returns the value's namelist type.
func (v Value) Kind() ValueKind { return v.kind }

// Int returns the value as an int. Floats with no fractional part convert.
func (v Value) Int() (int, bool) {
	switch v.kind {
	case KindInt:
		return int(v.num), true
	case KindFloat:
		if v.flt == float64(int64(v.flt)) {
			return int(v.flt), true
		}
	case KindString:
		if i, err := strconv.Atoi(strings.TrimSpace(v.str)); err == nil {
			return i, true
		}
	}

	return 0, false
}

// Float returns the value as a float64.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.num), true
	case KindFloat:
		return v.flt, true
	}

	return 0, false
}

// Bool returns the value of a logical.
func (v Value) Bool() (bool, bool) {
	return v.bit, v.kind == KindLogical
}

// List returns the items of a list value, or the value itself as a single item.
func (v Value) List() []Value {
	if v.kind == KindList {
		return v.list
	}

	return []Value{v}
}

// String returns the plain text of the value: strings unquoted, numbers in
// their shortest form.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}

		return strings.Join(parts, ", ")
	default:
		return string(v.appendLiteral(nil))
	}
}

// Equal reports whether v and other hold the same value.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind != KindList {
		return v.str == other.str && v.num == other.num && v.flt == other.flt && v.bit == other.bit
	}
	if len(v.list) != len(other.list) {
		return false
	}
	for i := range v.list {
		if !v.list[i].Equal(other.list[i]) {
			return false
		}
	}

	return true
}

// appendLiteral appends the namelist source form of v.
func (v Value) appendLiteral(dst []byte) []byte {
	switch v.kind {
	case KindString:
		dst = append(dst, '\'')
		dst = append(dst, strings.ReplaceAll(v.str, "'", "''")...)

		return append(dst, '\'')
	case KindInt:
		return strconv.AppendInt(dst, v.num, 10)
	case KindFloat:
		s := strconv.FormatFloat(v.flt, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}

		return append(dst, s...)
	case KindLogical:
		if v.bit {
			return append(dst, ".true."...)
		}

		return append(dst, ".false."...)
	case KindList:
		for i, item := range v.list {
			if i > 0 {
				dst = append(dst, ", "...)
			}
			dst = item.appendLiteral(dst)
		}

		return dst
	}

	return dst
}
