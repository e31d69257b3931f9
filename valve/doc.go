// Package valve provides the immutable graph model consumed by the valveflow
// search engine: labeled valves with an activation rate and symmetric tunnels.
//
// What
//
//   - Build turns a list of parsed Records plus a designated start label into a
//     *Graph whose nodes carry dense integer indices.
//   - Indices are assigned by sorting labels lexicographically, so the same input
//     always yields the same indices regardless of record order.
//   - Neighbor index lists are sorted ascending; every iteration the search
//     performs over a Graph is therefore reproducible.
//   - NodeSet is a fixed-size bitset keyed by dense index. It is a plain value:
//     copying a NodeSet copies the set.
//
// Why
//
//   - Dense indices let the search keep per-node state in slices instead of maps.
//   - A value bitset lets every path state answer "is this valve open?" in O(1)
//     without carrying a growing action history.
//
// Views
//
//	WithZeroedRates returns an independent Graph whose rates are forced to zero
//	for a given NodeSet. Topology is shared read-only; the rate table is owned by
//	the view, so zeroing never leaks into the source graph or into sibling views.
//
// Errors
//
//   - ErrNoRecords         if no records were supplied.
//   - ErrTooManyNodes      if more than MaxNodes records were supplied.
//   - ErrEmptyLabel        if a record or neighbor label is empty.
//   - ErrDuplicateLabel    if two records share a label.
//   - ErrNegativeRate      if a record has a negative rate.
//   - ErrUnknownNeighbor   if a neighbor label does not resolve.
//   - ErrDuplicateNeighbor if a record lists the same neighbor twice.
//   - ErrSelfLoop          if a record lists itself as a neighbor.
//   - ErrStartNotFound     if the start label does not resolve.
//   - ErrAsymmetricEdge    with WithRequireSymmetric, if an edge is listed by one end only.
//   - ErrUnreachable       with WithRequireReachable, if a useful valve cannot be reached.
//
// Record-level failures are reported as *RecordError, which names the offending
// record and unwraps to the sentinel above.
//
// Complexity (V = valves, E = listed tunnel entries)
//
//   - Build:           O(V·log V + E·log E)
//   - Neighbors, Rate: O(1)
//   - WithZeroedRates: O(V)
//   - HopDistances:    O(V + E)
package valve
