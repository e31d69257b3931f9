package valve

import (
	"bufio"
	"fmt"
	"io"
)

// WriteTGF dumps g in Trivial Graph Format for inspection in graph editors.
//
// Layout:
//
//	<label> <label>,<rate>    one line per valve, index order
//	#                         separator
//	<label> <neighbor>        one line per listed tunnel, index order
//
// Undirected tunnels appear once per endpoint, mirroring the input records.
func WriteTGF(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	var (
		i, j int
		err  error
	)
	for i = range g.labels {
		if _, err = fmt.Fprintf(bw, "%s %s,%d\n", g.labels[i], g.labels[i], g.rates[i]); err != nil {
			return err
		}
	}
	if _, err = fmt.Fprintln(bw, "#"); err != nil {
		return err
	}
	for i = range g.labels {
		for _, j = range g.neighbors[i] {
			if _, err = fmt.Fprintf(bw, "%s %s\n", g.labels[i], g.labels[j]); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
