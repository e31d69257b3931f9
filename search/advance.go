// File: advance.go
// Role: the step relaxation engine.
// Determinism:
//   - Valves in index order, neighbors in ascending index order, strict
//     greater-than comparisons; ties keep the earlier-installed state.
// Phases:
//   - A and B read only the previous frontier and write only the next one, so
//     neither phase observes the other's output within a step.

package search

import (
	"fmt"

	"github.com/katalvlaran/valveflow/valve"
)

// engine holds the fixed policy of one search: the graph, the horizon the
// ranking projects to, and the alternative bound.
type engine struct {
	g       *valve.Graph
	horizon int
	maxAlt  int
}

// Advance returns the frontier one step after prev on g, ranking states by
// their projected flow at horizon. prev is not modified.
//
// Only WithMaxAlternatives is meaningful here; other options are ignored.
func Advance(g *valve.Graph, prev *Frontier, horizon int, opts ...Option) (*Frontier, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if horizon < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeHorizon, horizon)
	}
	o, err := buildOptions(DefaultOptions(), opts)
	if err != nil {
		return nil, err
	}
	e := engine{g: g, horizon: horizon, maxAlt: o.MaxAlternatives}

	return e.advance(prev), nil
}

// advance performs Phase A then Phase B.
func (e *engine) advance(prev *Frontier) *Frontier {
	next := &Frontier{
		step:    prev.step + 1,
		entries: make([]*Entry, len(prev.entries)),
	}
	e.activate(prev, next)
	e.move(prev, next)

	return next
}

// activate is Phase A: every occupied valve gets a new best that either opens
// the valve or waits on it; each alternative may open it instead if that
// projects strictly higher. Alternatives are consumed here.
func (e *engine) activate(prev, next *Frontier) {
	var (
		v    int
		ent  *Entry
		rate int64
		best PathState
		cand PathState
		alt  PathState
	)
	for v, ent = range prev.entries {
		if ent == nil {
			continue
		}
		if ent.Best.Elapsed != prev.step {
			panic(fmt.Sprintf("search: valve %d holds a state at step %d in a frontier at step %d", v, ent.Best.Elapsed, prev.step))
		}
		rate = e.g.Rate(v)
		if !ent.Best.Has(v) && rate > 0 {
			best = ent.Best.mustActivate(v, rate)
		} else {
			best = ent.Best.Wait()
		}

		// A zero-rate valve cannot make an alternative project higher.
		if rate > 0 {
			for _, alt = range ent.Alternatives {
				cand = alt.mustActivate(v, rate)
				if cand.Projected(e.horizon) > best.Projected(e.horizon) {
					best = cand
				}
			}
		}
		next.entries[v] = &Entry{Best: best}
	}
}

// move is Phase B: every previous best walks to every neighbor. A walker
// replaces the neighbor's best only if it projects strictly higher; otherwise
// it is queued as an alternative, unless it has already opened that neighbor.
func (e *engine) move(prev, next *Frontier) {
	var (
		v, n   int
		ent    *Entry
		dst    *Entry
		walker PathState
	)
	for v, ent = range prev.entries {
		if ent == nil {
			continue
		}
		for _, n = range e.g.Neighbors(v) {
			walker = ent.Best.Move(n)
			dst = next.entries[n]
			switch {
			case dst == nil:
				next.entries[n] = &Entry{Best: walker}
			case walker.Projected(e.horizon) > dst.Best.Projected(e.horizon):
				dst.Best = walker
			case walker.Has(n):
				// opening is impossible; carrying it forward only costs comparisons
			case e.maxAlt > 0 && len(dst.Alternatives) >= e.maxAlt:
				// bound reached; first come, first kept
			default:
				dst.Alternatives = append(dst.Alternatives, walker)
			}
		}
	}
}
