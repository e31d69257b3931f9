// Package search computes the largest cumulative flow obtainable by opening
// valves of a valve.Graph within a fixed number of time steps, for one agent
// (Solve) or for two cooperating agents that never open the same valve (SolvePair).
//
// What
//
//   - PathState summarizes one agent's trajectory: elapsed steps, the per-step
//     flow of every valve opened so far, the flow accrued so far and the set of
//     opened valves.
//   - Frontier keeps, per valve, the best PathState that reached it at the
//     current step plus "alternatives": states that arrived without having opened
//     the valve and lost the ranking, but may still profit from opening it.
//   - Advance moves a Frontier forward exactly one step in two phases that both
//     read only the previous frontier:
//     Phase A (activate) opens the valve under each entry when worthwhile, and
//     gives every alternative one chance to open it and take over;
//     Phase B (move) extends every best state to every neighbor.
//   - Solve runs Advance for the whole horizon and reads the best flow found
//     anywhere in the graph.
//   - SolvePair advances the first agent step by step and, after each step, runs
//     a complete inner search for the second agent on a view of the graph in
//     which the first agent's valves are worth nothing.
//
// Ranking
//
//	States are ranked by projected flow: accrued flow plus the current per-step
//	flow times the remaining steps. Comparisons are strictly greater-than; on ties
//	the earlier-installed state stays. Valves are visited in index order and
//	neighbors in ascending index order, so results and winning paths are
//	reproducible.
//
// Approximation
//
//	Keeping one best state per valve (plus single-shot alternatives) collapses
//	the real state space (valve × set of opened valves). The result is a strong
//	heuristic, not a proven optimum.
//
// Complexity (V = valves, E = tunnel entries, H = horizon)
//
//   - Advance:   O(V + E + A), A = alternatives queued by the previous step
//   - Solve:     O(H·(V + E + A))
//   - SolvePair: O(H²·V·(V + E + A)); only suitable for small graphs
//
// Errors
//
//   - ErrNilGraph          if the graph pointer is nil.
//   - ErrNegativeHorizon   if the horizon is below zero.
//   - ErrOptionViolation   if an Option carries an invalid value.
//
// Once inputs are validated the searches cannot fail. Opening an already-open
// valve inside the engine is a logic error and panics.
package search
