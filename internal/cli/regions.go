package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/magicc/definitions"
)

func (a *app) regionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Print the region set catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FAMILY\tDATTYPE\tREGIONMODE\tREGIONS")
			for _, rs := range definitions.RegionSets() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rs.Family, rs.DatType, rs.RegionMode, strings.Join(rs.Regions, " "))
			}

			return tw.Flush()
		},
	}
}
