package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arloliu/magicc/compress"
	"github.com/arloliu/magicc/format"
	"github.com/arloliu/magicc/input"
)

func (a *app) convertCommand() *cobra.Command {
	var (
		compression string
		zstdLevel   int
	)

	cmd := &cobra.Command{
		Use:   "convert <src> <dst>",
		Short: "Read an input file and write it under another name",
		Long: `Read an input file and write it under another name.

The destination name selects the file family and the compression, so
HISTRCP_CO2I_EMIS.IN -> RCP.SCEN7 changes the layout and X_CO2_CONC.IN ->
X_CO2_CONC.IN.zst archives the file. A destination without a compression
suffix gets the one set by --compression or the configuration file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			ct, err := a.config.compression()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("compression") {
				if ct, err = parseCompression(compression); err != nil {
					return err
				}
			}

			level := a.config.Write.ZstdLevel
			if cmd.Flags().Changed("zstd-level") {
				level = zstdLevel
			}
			levelOpt, err := zstdLevelOption(level)
			if err != nil {
				return err
			}

			dir, name := a.destination(args[1], ct)
			opts := []input.Option{input.WithLogger(logger), levelOpt}

			meta, tbl, err := input.Read(args[0], opts...)
			if err != nil {
				return err
			}
			if err := input.Write(tbl, meta, name, dir, opts...); err != nil {
				return err
			}
			logger.Info("converted", "src", args[0], "dst", filepath.Join(dir, name), "columns", tbl.NumColumns())

			return nil
		},
	}

	cmd.Flags().StringVar(&compression, "compression", "", "compression for destinations without a suffix (none, zstd, s2, lz4)")
	cmd.Flags().IntVar(&zstdLevel, "zstd-level", 0, "zstd compression level (1-19, 0 keeps the default)")

	return cmd
}

// destination splits dst into directory and filename. A bare filename goes to
// the configured write directory, and a name without a compression suffix
// gets the extension of ct.
func (a *app) destination(dst string, ct format.CompressionType) (string, string) {
	dir, name := filepath.Split(dst)
	if dir == "" {
		dir = a.config.Write.Directory
	}
	if dir == "" {
		dir = "."
	}

	if _, suffix := compress.SplitName(name); suffix == format.CompressionNone {
		name += ct.Extension()
	}

	return filepath.Clean(dir), name
}
