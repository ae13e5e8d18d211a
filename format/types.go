package format

type (
	Kind            uint8
	Family          uint8
	CompressionType uint8
)

const (
	KindUnknown    Kind = 0x0 // KindUnknown is the zero value; no file family matched.
	KindScen       Kind = 0x1 // KindScen represents MAGICC6 multi-block *.SCEN files.
	KindScen7      Kind = 0x2 // KindScen7 represents MAGICC7 *.SCEN7 files.
	KindHistEmisIn Kind = 0x3 // KindHistEmisIn represents HIST*_EMIS.IN files.
	KindConcIn     Kind = 0x4 // KindConcIn represents *_CONC.IN files.

	FamilyStandard Family = 0x1 // FamilyStandard covers every file except SCEN7.
	FamilyScen7    Family = 0x2 // FamilyScen7 carries its own DATTYPE/REGIONMODE codes.

	CompressionNone CompressionType = 0x1 // CompressionNone represents plain text files.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compressed files (.zst).
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compressed files (.s2).
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compressed files (.lz4).
)

func (k Kind) String() string {
	switch k {
	case KindScen:
		return "SCEN"
	case KindScen7:
		return "SCEN7"
	case KindHistEmisIn:
		return "HIST_EMIS_IN"
	case KindConcIn:
		return "CONC_IN"
	default:
		return "Unknown"
	}
}

// Family returns the region catalog family used when writing files of this kind.
func (k Kind) Family() Family {
	if k == KindScen7 {
		return FamilyScen7
	}

	return FamilyStandard
}

func (f Family) String() string {
	switch f {
	case FamilyStandard:
		return "Standard"
	case FamilyScen7:
		return "SCEN7"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the filename suffix for the compression type, including the dot.
// CompressionNone and unknown types return an empty string.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}
