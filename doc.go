// Package valveflow computes how much flow a valve network can release
// within a fixed number of time steps, by one agent or by two cooperating
// agents that never open the same valve.
//
// What
//
//	A network of valves joined by tunnels. Every step an agent either moves
//	through one tunnel or opens the valve it stands on; an open valve releases
//	its rate on every later step. The search keeps, per valve, the best path
//	state seen so far plus single-shot alternatives and ranks states by
//	projected flow (released so far plus current rate times remaining steps).
//
// Layout
//
//	valve/          graph model: records, dense indices, node sets, views,
//	                hop distances, TGF export
//	search/         path states, per-valve frontier, step relaxation,
//	                Solve (one agent) and SolvePair (two agents)
//	parse/          reader for "Valve AA has flow rate=0; tunnels lead to ..." text
//	config/         defaults, YAML file, VALVEFLOW_* environment, flags
//	logging/        zerolog setup
//	metrics/        Prometheus collectors fed by search hooks
//	cli/            cobra command tree
//	cmd/valveflow/  entry point
//
// Quick start:
//
//	g, _ := parse.Graph(os.Stdin, "AA")
//	res, _ := search.Solve(g, 30)
//	fmt.Println(res.Flow, res.Path.Describe(g))
//
// The search is a heuristic relaxation, not an exhaustive enumeration of
// opening orders: it is fast and deterministic, and on the classic puzzle
// input it matches the known optimum.
//
//	go install github.com/katalvlaran/valveflow/cmd/valveflow@latest
package valveflow
