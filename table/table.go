package table

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/magicc/errs"
	"github.com/arloliu/magicc/internal/hash"
)

// ColumnKey identifies a column.
type ColumnKey struct {
	Variable string
	Todo     string
	Units    string
	Region   string
}

// ID returns the hash of the key tuple.
func (k ColumnKey) ID() uint64 {
	return hash.ColumnID(k.Variable, k.Todo, k.Units, k.Region)
}

func (k ColumnKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.Variable, k.Todo, k.Units, k.Region)
}

// Table is a year-indexed set of float columns.
type Table struct {
	years  []int
	keys   []ColumnKey
	values [][]float64
	index  map[uint64][]int // key id -> column positions
}

// New creates an empty table over years, which must be strictly ascending.
func New(years []int) (*Table, error) {
	for i := 1; i < len(years); i++ {
		if years[i] <= years[i-1] {
			return nil, fmt.Errorf("%w: year %d follows %d", errs.ErrInvalidYearIndex, years[i], years[i-1])
		}
	}

	return &Table{
		years: slices.Clone(years),
		index: make(map[uint64][]int),
	}, nil
}

// AddColumn appends a column. values must hold one value per year.
func (t *Table) AddColumn(key ColumnKey, values []float64) error {
	if len(values) != len(t.years) {
		return fmt.Errorf("%w: column %s has %d values for %d years",
			errs.ErrColumnCountMismatch, key, len(values), len(t.years))
	}
	if t.position(key) >= 0 {
		return fmt.Errorf("%w: %s", errs.ErrDuplicateColumn, key)
	}

	id := key.ID()
	t.index[id] = append(t.index[id], len(t.keys))
	t.keys = append(t.keys, key)
	t.values = append(t.values, slices.Clone(values))

	return nil
}

func (t *Table) position(key ColumnKey) int {
	for _, pos := range t.index[key.ID()] {
		if t.keys[pos] == key {
			return pos
		}
	}

	return -1
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.years) }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.keys) }

// Empty reports whether the table has no rows or no columns.
func (t *Table) Empty() bool { return len(t.years) == 0 || len(t.keys) == 0 }

// Years returns a copy of the year index.
func (t *Table) Years() []int { return slices.Clone(t.years) }

// FirstYear returns the first year, or 0 for a table without rows.
func (t *Table) FirstYear() int {
	if len(t.years) == 0 {
		return 0
	}

	return t.years[0]
}

// LastYear returns the last year, or 0 for a table without rows.
func (t *Table) LastYear() int {
	if len(t.years) == 0 {
		return 0
	}

	return t.years[len(t.years)-1]
}

// IsContiguous reports whether the years form an annual range without gaps.
func (t *Table) IsContiguous() bool {
	if len(t.years) == 0 {
		return false
	}

	return t.LastYear()-t.FirstYear()+1 == len(t.years)
}

// Keys returns a copy of the column keys in column order.
func (t *Table) Keys() []ColumnKey { return slices.Clone(t.keys) }

// Key returns the key of column i.
func (t *Table) Key(i int) ColumnKey { return t.keys[i] }

// Column returns a copy of the values of column i.
func (t *Table) Column(i int) []float64 { return slices.Clone(t.values[i]) }

// Lookup returns a copy of the values stored under key.
func (t *Table) Lookup(key ColumnKey) ([]float64, bool) {
	pos := t.position(key)
	if pos < 0 {
		return nil, false
	}

	return slices.Clone(t.values[pos]), true
}

// Row returns the values of every column for year, in column order.
func (t *Table) Row(year int) ([]float64, bool) {
	r, ok := slices.BinarySearch(t.years, year)
	if !ok {
		return nil, false
	}

	row := make([]float64, len(t.values))
	for i, col := range t.values {
		row[i] = col[r]
	}

	return row, true
}

// Value returns the cell at (key, year).
func (t *Table) Value(key ColumnKey, year int) (float64, bool) {
	pos := t.position(key)
	if pos < 0 {
		return 0, false
	}
	r, ok := slices.BinarySearch(t.years, year)
	if !ok {
		return 0, false
	}

	return t.values[pos][r], true
}

// Join appends the columns of other. Both tables must share the same years.
func (t *Table) Join(other *Table) error {
	if !slices.Equal(t.years, other.years) {
		return fmt.Errorf("%w: %d years from %d to %d, joined table has %d years from %d to %d",
			errs.ErrYearIndexMismatch, t.Len(), t.FirstYear(), t.LastYear(),
			other.Len(), other.FirstYear(), other.LastYear())
	}
	for _, key := range other.keys {
		if t.position(key) >= 0 {
			return fmt.Errorf("%w: %s", errs.ErrDuplicateColumn, key)
		}
	}

	for i, key := range other.keys {
		// cannot fail, keys and lengths were checked above
		_ = t.AddColumn(key, other.values[i])
	}

	return nil
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	return t.Select(func(ColumnKey) bool { return true })
}

// Select returns a new table holding the columns whose key matches keep.
func (t *Table) Select(keep func(ColumnKey) bool) *Table {
	out := &Table{
		years: slices.Clone(t.years),
		index: make(map[uint64][]int),
	}
	for i, key := range t.keys {
		if keep(key) {
			_ = out.AddColumn(key, t.values[i])
		}
	}

	return out
}

// ByVariable returns the columns of variable.
func (t *Table) ByVariable(variable string) *Table {
	return t.Select(func(k ColumnKey) bool { return k.Variable == variable })
}

// ByRegion returns the columns of region.
func (t *Table) ByRegion(region string) *Table {
	return t.Select(func(k ColumnKey) bool { return k.Region == region })
}

// ByYearRange returns the rows with from <= year <= to.
func (t *Table) ByYearRange(from, to int) *Table {
	lo, _ := slices.BinarySearch(t.years, from)
	hi, found := slices.BinarySearch(t.years, to)
	if found {
		hi++
	}
	if hi < lo {
		hi = lo
	}

	out := &Table{
		years: slices.Clone(t.years[lo:hi]),
		index: make(map[uint64][]int),
	}
	for i, key := range t.keys {
		_ = out.AddColumn(key, t.values[i][lo:hi])
	}

	return out
}

// Variables returns the variable label of every column.
func (t *Table) Variables() []string { return t.labels(func(k ColumnKey) string { return k.Variable }) }

// Todos returns the TODO label of every column.
func (t *Table) Todos() []string { return t.labels(func(k ColumnKey) string { return k.Todo }) }

// Units returns the unit label of every column.
func (t *Table) Units() []string { return t.labels(func(k ColumnKey) string { return k.Units }) }

// Regions returns the region label of every column.
func (t *Table) Regions() []string { return t.labels(func(k ColumnKey) string { return k.Region }) }

func (t *Table) labels(get func(ColumnKey) string) []string {
	out := make([]string, len(t.keys))
	for i, k := range t.keys {
		out[i] = get(k)
	}

	return out
}

// UniqueVariables returns the distinct variables in first-seen order.
func (t *Table) UniqueVariables() []string { return unique(t.Variables()) }

// UniqueUnits returns the distinct units in first-seen order.
func (t *Table) UniqueUnits() []string { return unique(t.Units()) }

// UniqueRegions returns the distinct regions in first-seen order.
func (t *Table) UniqueRegions() []string { return unique(t.Regions()) }

func unique(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := labels[:0]
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	return out
}

// Equal reports whether both tables hold the same years, keys in the same
// order, and values. NaN cells compare equal to each other.
func (t *Table) Equal(other *Table) bool {
	if other == nil || !slices.Equal(t.years, other.years) || !slices.Equal(t.keys, other.keys) {
		return false
	}
	for i := range t.values {
		if !slices.EqualFunc(t.values[i], other.values[i], sameFloat) {
			return false
		}
	}

	return true
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// Fingerprint returns a content hash over years, keys and values.
// Equal tables have equal fingerprints.
func (t *Table) Fingerprint() uint64 {
	d := hash.NewDigest()
	d.WriteUint64(uint64(len(t.years)))
	for _, y := range t.years {
		d.WriteUint64(uint64(int64(y)))
	}
	for i, k := range t.keys {
		d.WriteUint64(k.ID())
		for _, v := range t.values[i] {
			switch {
			case math.IsNaN(v):
				v = math.NaN()
			case v == 0:
				v = 0 // fold -0
			}
			d.WriteUint64(math.Float64bits(v))
		}
	}

	return d.Sum64()
}
