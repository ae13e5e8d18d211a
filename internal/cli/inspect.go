package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/magicc/input"
	"github.com/arloliu/magicc/table"
)

func (a *app) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the metadata, columns and fingerprint of an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			path := args[0]

			kind, compression, err := input.Resolve(path)
			if err != nil {
				return err
			}

			meta, tbl, err := input.Read(path, input.WithLogger(logger))
			if err != nil {
				return err
			}
			logger.Debug("inspected", "file", path, "columns", tbl.NumColumns())

			return writeReport(cmd.OutOrStdout(), path, kind.String(), compression.String(), meta, tbl)
		},
	}
}

func writeReport(w io.Writer, path, kind, compression string, meta *input.Metadata, tbl *table.Table) error {
	var b strings.Builder

	fmt.Fprintf(&b, "file:        %s\n", path)
	fmt.Fprintf(&b, "kind:        %s\n", kind)
	fmt.Fprintf(&b, "compression: %s\n", compression)

	if len(meta.Tags) > 0 {
		b.WriteString("tags:\n")
		for _, tag := range slices.Sorted(maps.Keys(meta.Tags)) {
			fmt.Fprintf(&b, "  %s: %s\n", tag, meta.Tags[tag])
		}
	}

	if meta.Config != nil {
		b.WriteString("config:\n")
		for _, e := range meta.Config.Entries() {
			fmt.Fprintf(&b, "  %s = %s\n", e.Key, e.Value)
		}
	}

	if tbl.Len() > 0 {
		contiguity := "contiguous"
		if !tbl.IsContiguous() {
			contiguity = "irregular"
		}
		fmt.Fprintf(&b, "years:       %d-%d (%d rows, %s)\n", tbl.FirstYear(), tbl.LastYear(), tbl.Len(), contiguity)
	}

	fmt.Fprintf(&b, "columns:     %d\n", tbl.NumColumns())
	for _, key := range tbl.Keys() {
		fmt.Fprintf(&b, "  %s\n", key)
	}
	fmt.Fprintf(&b, "fingerprint: %016x\n", tbl.Fingerprint())

	_, err := io.WriteString(w, b.String())

	return err
}
