package input

import (
	"maps"

	"github.com/arloliu/magicc/section"
)

// Metadata is everything in a file that is not the data block.
type Metadata struct {
	// Header is the free text before the configuration block, or the SCEN
	// preamble and trailing notes joined by newlines.
	Header string
	// Tags holds the recognized "Tag: value" header lines, keyed by lower-case tag.
	Tags map[string]string
	// Config is the parsed THISFILE_SPECIFICATIONS block. It is nil for SCEN files.
	Config *section.ConfigBlock
}

// FileSpec returns the typed view of Config.
func (m *Metadata) FileSpec() section.FileSpec {
	if m == nil {
		return section.FileSpec{}
	}

	return section.FileSpecFromBlock(m.Config)
}

// Clone returns a deep copy of m.
func (m *Metadata) Clone() *Metadata {
	if m == nil {
		return nil
	}

	out := &Metadata{Header: m.Header, Tags: maps.Clone(m.Tags)}
	if m.Config != nil {
		out.Config = section.NewConfigBlock(m.Config.Group())
		for _, e := range m.Config.Entries() {
			out.Config.Set(e.Key, e.Value)
		}
	}

	return out
}

func newMetadata(header string, config *section.ConfigBlock) *Metadata {
	return &Metadata{
		Header: header,
		Tags:   section.ExtractHeaderTags(header),
		Config: config,
	}
}
