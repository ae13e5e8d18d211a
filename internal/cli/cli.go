// Package cli implements the magicc command-line interface.
//
// # Commands
//
//   - inspect: print the metadata, columns and fingerprint of an input file
//   - convert: read one input file and write it under another name, which may
//     select another file family or compression
//   - regions: print the region set catalog
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context and also handed to the codec, so --verbose
// shows dispatch and layout decisions.
//
// # Configuration
//
// --config points to an optional TOML file:
//
//	[log]
//	level = "debug"
//
//	[write]
//	directory = "out"
//	compression = "zstd"
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the magicc CLI with ctx.
func Execute(ctx context.Context) error {
	return newRootCommand(os.Stderr).ExecuteContext(ctx)
}

// app holds the state shared by all commands of one invocation.
type app struct {
	logOut     io.Writer
	verbose    bool
	configPath string
	config     Config
}

func newRootCommand(logOut io.Writer) *cobra.Command {
	a := &app{logOut: logOut, config: DefaultConfig()}

	root := &cobra.Command{
		Use:           "magicc",
		Short:         "Read, inspect and convert MAGICC input files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.configPath != "" {
				cfg, err := LoadConfig(a.configPath)
				if err != nil {
					return err
				}
				a.config = cfg
			}

			level, err := a.config.logLevel(a.verbose)
			if err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(a.logOut, level)))

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("magicc %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a TOML configuration file")

	root.AddCommand(a.inspectCommand())
	root.AddCommand(a.convertCommand())
	root.AddCommand(a.regionsCommand())

	return root
}
