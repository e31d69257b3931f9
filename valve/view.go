// File: view.go
// Role: Non-mutating graph views (same topology, altered rates).
// Concurrency:
//   - The source is only read; the view owns its rate table.

package valve

// WithZeroedRates returns a Graph identical to g except that every valve in
// zeroed has rate 0. The source graph is not mutated.
//
// The view shares labels, index and adjacency with g (all immutable) and owns a
// fresh copy of the rate table, so concurrent views never observe each other.
//
// Complexity: O(V).
func (g *Graph) WithZeroedRates(zeroed NodeSet) *Graph {
	rates := make([]int64, len(g.rates))
	copy(rates, g.rates)
	for _, i := range zeroed.Members() {
		if i < len(rates) {
			rates[i] = 0
		}
	}

	return &Graph{
		labels:    g.labels,
		index:     g.index,
		rates:     rates,
		neighbors: g.neighbors,
		start:     g.start,
	}
}
