// File: graph.go
// Role: Graph construction, validation and read-only accessors.
// Determinism:
//   - Dense indices follow lexicographic label order.
//   - Neighbor lists are sorted ascending by index.
// Concurrency:
//   - A built Graph is never mutated; any number of goroutines may read it.

package valve

import (
	"fmt"
	"sort"
)

// Graph is an immutable valve graph with dense integer node indices.
//
// labels, index and neighbors are never written after Build, so views created
// by WithZeroedRates share them. rates is owned per Graph value.
type Graph struct {
	labels    []string       // index → label
	index     map[string]int // label → index
	rates     []int64        // index → rate
	neighbors [][]int        // index → sorted neighbor indices
	start     int
}

// Build validates records and assembles a Graph rooted at the start label.
//
// Validation order:
//  1. at least one record, at most MaxNodes;
//  2. labels non-empty and unique, rates non-negative;
//  3. neighbor labels resolve, are not repeated and never name the record itself;
//  4. start resolves;
//  5. optional checks requested through opts.
//
// Build returns either a complete Graph or an error, never both.
//
// Complexity: O(V·log V + E·log E).
func Build(records []Record, start string, opts ...Option) (*Graph, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Size bounds.
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if len(records) > MaxNodes {
		return nil, fmt.Errorf("%w: %d records, at most %d supported", ErrTooManyNodes, len(records), MaxNodes)
	}

	// 2) Labels and rates; sort labels to fix the index assignment.
	byLabel := make(map[string]*Record, len(records))
	labels := make([]string, 0, len(records))
	var (
		i int
		r *Record
	)
	for i = range records {
		r = &records[i]
		if r.Label == "" {
			return nil, &RecordError{Err: ErrEmptyLabel}
		}
		if _, dup := byLabel[r.Label]; dup {
			return nil, &RecordError{Label: r.Label, Err: ErrDuplicateLabel}
		}
		if r.Rate < 0 {
			return nil, &RecordError{Label: r.Label, Err: fmt.Errorf("%w: %d", ErrNegativeRate, r.Rate)}
		}
		byLabel[r.Label] = r
		labels = append(labels, r.Label)
	}
	sort.Strings(labels)

	g := &Graph{
		labels:    labels,
		index:     make(map[string]int, len(labels)),
		rates:     make([]int64, len(labels)),
		neighbors: make([][]int, len(labels)),
	}
	var label string
	for i, label = range labels {
		g.index[label] = i
	}

	// 3) Resolve neighbors.
	var (
		nbr  string
		j    int
		ok   bool
		seen map[int]struct{}
	)
	for i, label = range labels {
		r = byLabel[label]
		g.rates[i] = r.Rate
		adj := make([]int, 0, len(r.Neighbors))
		seen = make(map[int]struct{}, len(r.Neighbors))
		for _, nbr = range r.Neighbors {
			if nbr == "" {
				return nil, &RecordError{Label: label, Err: fmt.Errorf("%w: neighbor", ErrEmptyLabel)}
			}
			if nbr == label {
				return nil, &RecordError{Label: label, Err: ErrSelfLoop}
			}
			if j, ok = g.index[nbr]; !ok {
				return nil, &RecordError{Label: label, Err: fmt.Errorf("%w: %q", ErrUnknownNeighbor, nbr)}
			}
			if _, ok = seen[j]; ok {
				return nil, &RecordError{Label: label, Err: fmt.Errorf("%w: %q", ErrDuplicateNeighbor, nbr)}
			}
			seen[j] = struct{}{}
			adj = append(adj, j)
		}
		sort.Ints(adj)
		g.neighbors[i] = adj
	}

	// 4) Start valve.
	if g.start, ok = g.index[start]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	// 5) Optional checks.
	if o.requireSymmetric {
		if err := g.checkSymmetric(); err != nil {
			return nil, err
		}
	}
	if o.requireReachable {
		if err := g.checkReachable(); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *Graph) checkSymmetric() error {
	var u, v int
	for u = range g.neighbors {
		for _, v = range g.neighbors[u] {
			if !g.hasNeighbor(v, u) {
				return &RecordError{
					Label: g.labels[u],
					Err:   fmt.Errorf("%w: %q does not list %q", ErrAsymmetricEdge, g.labels[v], g.labels[u]),
				}
			}
		}
	}

	return nil
}

func (g *Graph) checkReachable() error {
	dist := g.HopDistances(g.start)
	for i, d := range dist {
		if d < 0 && g.rates[i] > 0 {
			return &RecordError{Label: g.labels[i], Err: ErrUnreachable}
		}
	}

	return nil
}

// hasNeighbor uses binary search over the sorted adjacency of u.
func (g *Graph) hasNeighbor(u, v int) bool {
	adj := g.neighbors[u]
	k := sort.SearchInts(adj, v)

	return k < len(adj) && adj[k] == v
}

// Len returns the number of valves.
func (g *Graph) Len() int { return len(g.labels) }

// Start returns the index of the start valve.
func (g *Graph) Start() int { return g.start }

// Label returns the label of valve i.
func (g *Graph) Label(i int) string { return g.labels[i] }

// Index resolves a label to its dense index.
func (g *Graph) Index(label string) (int, bool) {
	i, ok := g.index[label]
	return i, ok
}

// Rate returns the activation rate of valve i.
func (g *Graph) Rate(i int) int64 { return g.rates[i] }

// Neighbors returns the sorted neighbor indices of valve i.
// The slice is shared with the Graph and must not be modified.
func (g *Graph) Neighbors(i int) []int { return g.neighbors[i] }

// TotalRate returns the sum of all rates: the largest per-step flow any
// combination of activations can reach.
func (g *Graph) TotalRate() int64 {
	var sum int64
	for _, r := range g.rates {
		sum += r
	}
	return sum
}

// Useful returns the set of valves whose rate is non-zero.
func (g *Graph) Useful() NodeSet {
	var s NodeSet
	for i, r := range g.rates {
		if r > 0 {
			s = s.With(i)
		}
	}
	return s
}

// Labels maps a NodeSet back to labels in index order.
func (g *Graph) Labels(s NodeSet) []string {
	members := s.Members()
	out := make([]string, len(members))
	for k, i := range members {
		out[k] = g.labels[i]
	}
	return out
}

// Records reconstructs the records the Graph was built from, in index order,
// with neighbor labels in index order.
func (g *Graph) Records() []Record {
	out := make([]Record, len(g.labels))
	for i, label := range g.labels {
		nbrs := make([]string, len(g.neighbors[i]))
		for k, j := range g.neighbors[i] {
			nbrs[k] = g.labels[j]
		}
		out[i] = Record{Label: label, Rate: g.rates[i], Neighbors: nbrs}
	}
	return out
}
