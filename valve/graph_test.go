package valve_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/valve"
)

// sixValves is the small S/A/B/C/D/E fixture shared with the search tests.
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

// TestBuild_IndexOrder verifies that indices follow label order, not record order.
func TestBuild_IndexOrder(t *testing.T) {
	g, err := valve.Build(sixValves(), "S")
	require.NoError(t, err)

	require.Equal(t, 6, g.Len())
	for i, want := range []string{"A", "B", "C", "D", "E", "S"} {
		assert.Equal(t, want, g.Label(i), "label at index %d", i)
		idx, ok := g.Index(want)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
	assert.Equal(t, 5, g.Start())
	assert.Equal(t, int64(38), g.TotalRate())
	assert.Equal(t, []string{"A", "B", "C", "E"}, g.Labels(g.Useful()))
}

// TestBuild_RoundTrip checks that Records reproduces every input relationship.
func TestBuild_RoundTrip(t *testing.T) {
	in := sixValves()
	g, err := valve.Build(in, "S", valve.WithRequireSymmetric())
	require.NoError(t, err)

	want := make(map[string]valve.Record, len(in))
	for _, r := range in {
		nbrs := append([]string(nil), r.Neighbors...)
		sort.Strings(nbrs)
		want[r.Label] = valve.Record{Label: r.Label, Rate: r.Rate, Neighbors: nbrs}
	}

	out := g.Records()
	require.Len(t, out, len(in))
	for i, r := range out {
		assert.Equal(t, want[r.Label], r)
		assert.Equal(t, r.Rate, g.Rate(i))
		require.Len(t, g.Neighbors(i), len(r.Neighbors))
		for k, j := range g.Neighbors(i) {
			assert.Equal(t, r.Neighbors[k], g.Label(j))
			// symmetry survives the build
			back := false
			for _, x := range g.Neighbors(j) {
				back = back || x == i
			}
			assert.True(t, back, "%s→%s has no reverse entry", g.Label(i), g.Label(j))
		}
	}
}

// TestBuild_Errors verifies that malformed input never yields a graph.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name    string
		records []valve.Record
		start   string
		opts    []valve.Option
		err     error
	}{
		{"NoRecords", nil, "AA", nil, valve.ErrNoRecords},
		{"EmptyLabel", []valve.Record{{Label: ""}}, "AA", nil, valve.ErrEmptyLabel},
		{"EmptyNeighbor", []valve.Record{{Label: "AA", Neighbors: []string{""}}}, "AA", nil, valve.ErrEmptyLabel},
		{"Duplicate", []valve.Record{{Label: "AA"}, {Label: "AA"}}, "AA", nil, valve.ErrDuplicateLabel},
		{"NegativeRate", []valve.Record{{Label: "AA", Rate: -1}}, "AA", nil, valve.ErrNegativeRate},
		{"UnknownNeighbor", []valve.Record{{Label: "AA", Neighbors: []string{"ZZ"}}}, "AA", nil, valve.ErrUnknownNeighbor},
		{"DuplicateNeighbor", []valve.Record{
			{Label: "AA", Neighbors: []string{"BB", "BB"}},
			{Label: "BB", Neighbors: []string{"AA"}},
		}, "AA", nil, valve.ErrDuplicateNeighbor},
		{"SelfLoop", []valve.Record{{Label: "AA", Neighbors: []string{"AA"}}}, "AA", nil, valve.ErrSelfLoop},
		{"StartNotFound", []valve.Record{{Label: "AA"}}, "BB", nil, valve.ErrStartNotFound},
		{"Asymmetric", []valve.Record{
			{Label: "AA", Neighbors: []string{"BB"}},
			{Label: "BB"},
		}, "AA", []valve.Option{valve.WithRequireSymmetric()}, valve.ErrAsymmetricEdge},
		{"Unreachable", []valve.Record{
			{Label: "AA"},
			{Label: "BB", Rate: 4},
		}, "AA", []valve.Option{valve.WithRequireReachable()}, valve.ErrUnreachable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := valve.Build(tc.records, tc.start, tc.opts...)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

// TestBuild_RecordError checks that record failures name the record.
func TestBuild_RecordError(t *testing.T) {
	_, err := valve.Build([]valve.Record{{Label: "AA", Neighbors: []string{"QQ"}}}, "AA")
	var re *valve.RecordError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "AA", re.Label)
	assert.ErrorIs(t, err, valve.ErrUnknownNeighbor)
	assert.Contains(t, err.Error(), `"QQ"`)
}

// TestBuild_TooManyNodes checks the NodeSet capacity limit.
func TestBuild_TooManyNodes(t *testing.T) {
	records := make([]valve.Record, valve.MaxNodes+1)
	for i := range records {
		records[i] = valve.Record{Label: string(rune('a'+i/26)) + string(rune('a'+i%26))}
	}
	_, err := valve.Build(records, "aa")
	assert.ErrorIs(t, err, valve.ErrTooManyNodes)
}

// TestWithZeroedRates verifies the view is independent from its source.
func TestWithZeroedRates(t *testing.T) {
	g, err := valve.Build(sixValves(), "S")
	require.NoError(t, err)
	a, _ := g.Index("A")
	c, _ := g.Index("C")

	var zero valve.NodeSet
	view := g.WithZeroedRates(zero.With(a).With(c))

	assert.Equal(t, int64(0), view.Rate(a))
	assert.Equal(t, int64(0), view.Rate(c))
	assert.Equal(t, int64(20), g.Rate(a), "source graph must keep its rates")
	assert.Equal(t, int64(10), g.Rate(c))
	assert.Equal(t, g.Neighbors(c), view.Neighbors(c))
	assert.Equal(t, g.Start(), view.Start())
	assert.Equal(t, int64(8), view.TotalRate())

	// a second view from the first one stacks, the first is untouched
	b, _ := g.Index("B")
	second := view.WithZeroedRates(zero.With(b))
	assert.Equal(t, int64(5), second.TotalRate())
	assert.Equal(t, int64(8), view.TotalRate())
}

// TestHopDistances covers reachable and unreachable valves.
func TestHopDistances(t *testing.T) {
	records := append(sixValves(), valve.Record{Label: "Z", Rate: 1})
	g, err := valve.Build(records, "S")
	require.NoError(t, err)

	dist := g.HopDistances(g.Start())
	want := map[string]int{"S": 0, "A": 1, "B": 1, "C": 2, "D": 3, "E": 4, "Z": -1}
	for label, d := range want {
		i, _ := g.Index(label)
		assert.Equal(t, d, dist[i], "distance to %s", label)
	}
}

// TestHopMatrix pins pairwise distances between the useful valves.
func TestHopMatrix(t *testing.T) {
	records := append(sixValves(), valve.Record{Label: "Z", Rate: 1})
	g, err := valve.Build(records, "S")
	require.NoError(t, err)

	useful := g.Useful()
	require.Equal(t, []string{"A", "B", "C", "E", "Z"}, g.Labels(useful))
	assert.Equal(t, [][]int{
		{0, 2, 3, 5, -1},
		{2, 0, 1, 3, -1},
		{3, 1, 0, 2, -1},
		{5, 3, 2, 0, -1},
		{-1, -1, -1, -1, 0},
	}, g.HopMatrix(useful))
	assert.Empty(t, g.HopMatrix(valve.NodeSet{}))
}
