package search

import (
	"fmt"

	"github.com/katalvlaran/valveflow/valve"
)

// Solve runs the single-agent search on g for horizon steps from the start
// valve and returns the largest cumulative flow reached on any valve.
//
// With WithDelay(d) the agent idles d steps first; a delay at or beyond the
// horizon leaves no time to act and yields 0.
//
// Errors: ErrNilGraph, ErrNegativeHorizon, ErrOptionViolation. Solve cannot
// fail otherwise.
//
// Complexity: O(H·(V + E + A)).
func Solve(g *valve.Graph, horizon int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if horizon < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeHorizon, horizon)
	}
	o, err := buildOptions(DefaultOptions(), opts)
	if err != nil {
		return Result{}, err
	}

	e := engine{g: g, horizon: horizon, maxAlt: o.MaxAlternatives}
	f := e.run(seed(g.Start(), min(o.Delay, horizon)), horizon, o.OnStep)

	// Every state now sits at the horizon, where projected equals accrued flow.
	best, _ := f.Best(horizon)

	return Result{Flow: best.Total, Path: best}, nil
}

// seed returns the start state after delay idle steps.
func seed(start, delay int) PathState {
	s := NewPathState(start)
	for i := 0; i < delay; i++ {
		s = s.Wait()
	}
	return s
}

// run advances a fresh frontier seeded with s until step `until`,
// reporting every step to onStep.
func (e *engine) run(s PathState, until int, onStep func(StepStats)) *Frontier {
	f := NewFrontier(e.g, s)
	for f.step < until {
		f = e.advance(f)
		onStep(f.stats(e.horizon))
	}
	return f
}
