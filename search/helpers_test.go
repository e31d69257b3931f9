package search_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/search"
	"github.com/katalvlaran/valveflow/valve"
)

// exampleRecords is the ten-valve reference network; the single-agent optimum
// over 30 steps is 1651 and the delayed pair reaches 1707.
func exampleRecords() []valve.Record {
	return []valve.Record{
		{Label: "AA", Rate: 0, Neighbors: []string{"DD", "II", "BB"}},
		{Label: "BB", Rate: 13, Neighbors: []string{"CC", "AA"}},
		{Label: "CC", Rate: 2, Neighbors: []string{"DD", "BB"}},
		{Label: "DD", Rate: 20, Neighbors: []string{"CC", "AA", "EE"}},
		{Label: "EE", Rate: 3, Neighbors: []string{"FF", "DD"}},
		{Label: "FF", Rate: 0, Neighbors: []string{"EE", "GG"}},
		{Label: "GG", Rate: 0, Neighbors: []string{"FF", "HH"}},
		{Label: "HH", Rate: 22, Neighbors: []string{"GG"}},
		{Label: "II", Rate: 0, Neighbors: []string{"AA", "JJ"}},
		{Label: "JJ", Rate: 21, Neighbors: []string{"II"}},
	}
}

// sixValves: S(0) links A(20) and B(3); B continues to C(10), D(0), E(5).
func sixValves() []valve.Record {
	return []valve.Record{
		{Label: "S", Rate: 0, Neighbors: []string{"A", "B"}},
		{Label: "A", Rate: 20, Neighbors: []string{"S"}},
		{Label: "B", Rate: 3, Neighbors: []string{"S", "C"}},
		{Label: "C", Rate: 10, Neighbors: []string{"B", "D"}},
		{Label: "D", Rate: 0, Neighbors: []string{"C", "E"}},
		{Label: "E", Rate: 5, Neighbors: []string{"D"}},
	}
}

// lattice builds a ring of n valves N00..N(n-1) with chords i↔(5i+2) mod n.
// Every third valve is worthless; the others carry (37i mod 23).
func lattice(n int) []valve.Record {
	nbrs := make([]map[int]struct{}, n)
	for i := range nbrs {
		nbrs[i] = make(map[int]struct{})
	}
	link := func(a, b int) {
		if a != b {
			nbrs[a][b] = struct{}{}
			nbrs[b][a] = struct{}{}
		}
	}
	for i := 0; i < n; i++ {
		link(i, (i+1)%n)
	}
	for i := 0; i < n; i++ {
		link(i, (i*5+2)%n)
	}

	out := make([]valve.Record, n)
	for i := 0; i < n; i++ {
		var rate int64
		if i%3 != 0 {
			rate = int64((i * 37) % 23)
		}
		adj := make([]int, 0, len(nbrs[i]))
		for j := range nbrs[i] {
			adj = append(adj, j)
		}
		sort.Ints(adj)
		labels := make([]string, len(adj))
		for k, j := range adj {
			labels[k] = fmt.Sprintf("N%02d", j)
		}
		out[i] = valve.Record{Label: fmt.Sprintf("N%02d", i), Rate: rate, Neighbors: labels}
	}
	return out
}

func mustBuild(t testing.TB, records []valve.Record, start string) *valve.Graph {
	t.Helper()
	g, err := valve.Build(records, start, valve.WithRequireSymmetric())
	require.NoError(t, err)
	return g
}

func labelsOf(g *valve.Graph, acts []search.Activation) []string {
	out := make([]string, len(acts))
	for i, a := range acts {
		out[i] = fmt.Sprintf("%s@%d", g.Label(a.Node), a.Step)
	}
	return out
}
