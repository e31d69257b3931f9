package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valveflow/config"
	"github.com/katalvlaran/valveflow/valve"
)

func newInspectCmd(a *app) *cobra.Command {
	var matrix bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List valves with their rate and distance from the start valve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph(cmd)
			if err != nil {
				return err
			}
			var (
				dist    = g.HopDistances(g.Start())
				records = g.Records()
			)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VALVE\tRATE\tHOPS\tNEIGHBORS")
			for i := 0; i < g.Len(); i++ {
				hops := "-"
				if dist[i] >= 0 {
					hops = strconv.Itoa(dist[i])
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%v\n", g.Label(i), g.Rate(i), hops, records[i].Neighbors)
			}
			fmt.Fprintf(tw, "\n%d valves, %d useful, total rate %d\n", g.Len(), g.Useful().Len(), g.TotalRate())

			if matrix {
				writeMatrix(tw, g, g.Useful().With(g.Start()))
			}

			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&matrix, "matrix", false, "also print hop distances between the start and useful valves")

	return cmd
}

// writeMatrix prints the pairwise hop table of s, "-" for unreachable pairs.
func writeMatrix(w io.Writer, g *valve.Graph, s valve.NodeSet) {
	labels := g.Labels(s)
	fmt.Fprintf(w, "\n\t%s\n", strings.Join(labels, "\t"))
	for r, row := range g.HopMatrix(s) {
		cells := make([]string, len(row))
		for c, d := range row {
			cells[c] = "-"
			if d >= 0 {
				cells[c] = strconv.Itoa(d)
			}
		}
		fmt.Fprintf(w, "%s\t%s\n", labels[r], strings.Join(cells, "\t"))
	}
}

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the valve graph in Trivial Graph Format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph(cmd)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return valve.WriteTGF(cmd.OutOrStdout(), g)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("cli: create %s: %w", out, err)
			}
			if err = valve.WriteTGF(f, g); err != nil {
				f.Close()
				return err
			}
			a.log.Info().Str("file", out).Int("valves", g.Len()).Msg("graph exported")

			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "destination file (- or empty for stdout)")

	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.Write(cmd.OutOrStdout(), a.cfg)
		},
	}
}
