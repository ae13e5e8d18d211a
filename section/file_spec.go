package section

import "strconv"

// FileSpec is the typed view of THISFILE_SPECIFICATIONS.
type FileSpec struct {
	DataColumns  int    // number of value columns, year excluded
	FirstYear    int    // first year of the data block
	LastYear     int    // last year of the data block
	AnnualSteps  int    // rows per year, always 1 when written
	Units        string // single unit shared by every column
	DatType      string // numeric code, or SCEN7
	RegionMode   string // e.g. NONE, FOURBOX, RCPPLUSBUNKERS
	FirstDataRow int    // 1-based line number of the first data row
}

// FileSpecFromBlock reads the recognized keys of b. Missing or mistyped keys stay zero.
func FileSpecFromBlock(b *ConfigBlock) FileSpec {
	var s FileSpec
	if b == nil {
		return s
	}

	s.DataColumns = intEntry(b, KeyDataColumns)
	s.FirstYear = intEntry(b, KeyFirstYear)
	s.LastYear = intEntry(b, KeyLastYear)
	s.AnnualSteps = intEntry(b, KeyAnnualSteps)
	s.FirstDataRow = intEntry(b, KeyFirstDataRow)
	s.Units = textEntry(b, KeyUnits)
	s.DatType = textEntry(b, KeyDatType)
	s.RegionMode = textEntry(b, KeyRegionMode)

	return s
}

// ConfigBlock renders s as a THISFILE_SPECIFICATIONS block with the entries
// in the order MAGICC writes them. A numeric DatType is written unquoted.
func (s FileSpec) ConfigBlock() *ConfigBlock {
	b := NewConfigBlock(SpecificationsGroup)
	b.Set(KeyDataColumns, IntValue(s.DataColumns))
	b.Set(KeyFirstYear, IntValue(s.FirstYear))
	b.Set(KeyLastYear, IntValue(s.LastYear))
	b.Set(KeyAnnualSteps, IntValue(s.AnnualSteps))
	b.Set(KeyUnits, StringValue(s.Units))
	if code, err := strconv.Atoi(s.DatType); err == nil {
		b.Set(KeyDatType, IntValue(code))
	} else {
		b.Set(KeyDatType, StringValue(s.DatType))
	}
	b.Set(KeyRegionMode, StringValue(s.RegionMode))
	b.Set(KeyFirstDataRow, IntValue(s.FirstDataRow))

	return b
}

// WithFirstDataRow returns a copy of s with FirstDataRow computed for a file
// with headerLines of free text and columnHeaderLines of column labels.
func (s FileSpec) WithFirstDataRow(headerLines, columnHeaderLines int) FileSpec {
	blockLines := s.ConfigBlock().LineCount()
	s.FirstDataRow = headerLines + blockLines + BlankLinesAfterBlock + columnHeaderLines + 1

	return s
}

func intEntry(b *ConfigBlock, key string) int {
	v, ok := b.Get(key)
	if !ok {
		return 0
	}
	i, _ := v.Int()

	return i
}

func textEntry(b *ConfigBlock, key string) string {
	v, ok := b.Get(key)
	if !ok {
		return ""
	}

	return v.String()
}
