package section

const (
	SpecificationsGroup = "THISFILE_SPECIFICATIONS" // namelist group of every MAGICC7 input file
	GroupStartMarker    = "&"
	GroupEndMarker      = "/"

	// BlankLinesAfterBlock is the number of blank lines written between the block and the column headers.
	BlankLinesAfterBlock = 1
)

// Flattened THISFILE_SPECIFICATIONS keys, in the order writers emit them.
const (
	KeyDataColumns  = "datacolumns"
	KeyFirstYear    = "firstyear"
	KeyLastYear     = "lastyear"
	KeyAnnualSteps  = "annualsteps"
	KeyUnits        = "units"
	KeyDatType      = "dattype"
	KeyRegionMode   = "regionmode"
	KeyFirstDataRow = "firstdatarow"
)

// Recognized free-text header tags, lower case, without the trailing colon.
const (
	TagCompiledBy  = "compiled by"
	TagContact     = "contact"
	TagData        = "data"
	TagDate        = "date"
	TagDescription = "description"
	TagGas         = "gas"
	TagSource      = "source"
	TagUnit        = "unit"
)
