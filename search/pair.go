// File: pair.go
// Role: the dual-agent coordinator.
// Determinism:
//   - Candidates of one outer step are reduced in valve order whatever the
//     worker count, so the result and the winning pair never depend on
//     scheduling.
// Concurrency:
//   - Each candidate owns its zeroed graph view and its inner frontier; the
//     outer frontier is only read while candidates run.

package search

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valveflow/valve"
)

// candidate is one first-agent state and the best second agent found for it.
type candidate struct {
	node   int
	first  PathState
	second PathState
}

// SolvePair runs the dual-agent search: two agents start on the start valve,
// both idle for the configured delay (DefaultPairDelay unless WithDelay is
// given), then act independently until horizon without opening the same valve.
//
// The first agent's frontier advances one step at a time. After each step,
// every first-agent state is paired with a complete second-agent search of
// the same length on g.WithZeroedRates(first.Opened); the pair with the
// strictly highest combined projected flow wins.
//
// Errors: ErrNilGraph, ErrNegativeHorizon, ErrOptionViolation.
//
// Complexity: O(H²·V·(V + E + A)).
func SolvePair(g *valve.Graph, horizon int, opts ...Option) (PairResult, error) {
	if g == nil {
		return PairResult{}, ErrNilGraph
	}
	if horizon < 0 {
		return PairResult{}, fmt.Errorf("%w: %d", ErrNegativeHorizon, horizon)
	}
	base := DefaultOptions()
	base.Delay = DefaultPairDelay
	o, err := buildOptions(base, opts)
	if err != nil {
		return PairResult{}, err
	}

	var (
		delay = min(o.Delay, horizon)
		start = seed(g.Start(), delay)
		outer = engine{g: g, horizon: horizon, maxAlt: o.MaxAlternatives}
		f     = NewFrontier(g, start)
		best  = PairResult{First: start, Second: start}
		cands []candidate
		c     candidate
		sum   int64
	)
	for f.step < horizon {
		f = outer.advance(f)
		o.OnStep(f.stats(horizon))

		if cands, err = evaluate(g, f, horizon, delay, o); err != nil {
			return PairResult{}, err
		}
		for _, c = range cands {
			o.OnCandidate(Candidate{
				Step:   f.step,
				Node:   c.node,
				First:  c.first.Projected(horizon),
				Second: c.second.Projected(horizon),
			})
			sum = c.first.Projected(horizon) + c.second.Projected(horizon)
			if sum > best.Flow {
				best = PairResult{Flow: sum, First: c.first, Second: c.second}
			}
		}
	}

	if best.First.Opened.Intersects(best.Second.Opened) {
		panic(fmt.Sprintf("search: both agents opened %v", g.Labels(best.First.Opened)))
	}

	return best, nil
}

// evaluate pairs every occupied valve of f with its best second agent.
// The returned slice is in valve order.
func evaluate(g *valve.Graph, f *Frontier, horizon, delay int, o Options) ([]candidate, error) {
	out := make([]candidate, 0, len(f.entries))
	for v, ent := range f.entries {
		if ent != nil {
			out = append(out, candidate{node: v, first: ent.Best})
		}
	}

	if o.Workers <= 1 {
		for k := range out {
			out[k].second = bestSecond(g, out[k].first, f.step, horizon, delay, o.MaxAlternatives)
		}
		return out, nil
	}

	var eg errgroup.Group
	eg.SetLimit(o.Workers)
	for k := range out {
		k := k
		eg.Go(func() error {
			out[k].second = bestSecond(g, out[k].first, f.step, horizon, delay, o.MaxAlternatives)
			return nil
		})
	}

	return out, eg.Wait()
}

// bestSecond runs the complete inner search for the second agent up to step
// on a view of g where the first agent's valves are worth nothing.
func bestSecond(g *valve.Graph, first PathState, step, horizon, delay, maxAlt int) PathState {
	inner := engine{g: g.WithZeroedRates(first.Opened), horizon: horizon, maxAlt: maxAlt}
	f := inner.run(seed(g.Start(), delay), step, func(StepStats) {})
	best, _ := f.Best(horizon)

	return best
}
