// File: state.go
// Role: PathState, the immutable summary of one agent's trajectory.
// Invariants:
//   - Total equals the sum, over every elapsed step, of the Rate in effect
//     during that step.
//   - A valve's rate counts from the step after it was opened; the opening
//     step itself only yields the previous Rate.

package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/valveflow/valve"
)

// Activation records that Node was opened during Step (1-based). Its rate
// contributes from step Step+1 onwards.
type Activation struct {
	Node int
	Step int
}

// trail is a persistent, newest-first list of activations. Extending a state
// allocates one link and shares the rest with its parent.
type trail struct {
	act  Activation
	prev *trail
}

// PathState is one agent's position in time. All methods return new values;
// a PathState is never mutated after construction.
type PathState struct {
	// Elapsed is the number of steps taken so far.
	Elapsed int

	// Rate is the per-step flow of every valve opened so far.
	Rate int64

	// Total is the flow accrued over the elapsed steps.
	Total int64

	// At is the valve the agent currently stands on.
	At int

	// Opened is the set of valves opened so far.
	Opened valve.NodeSet

	trail *trail
}

// NewPathState returns the trivial state: standing on start, nothing opened.
func NewPathState(start int) PathState {
	return PathState{At: start}
}

// Move spends one step walking to valve to.
func (s PathState) Move(to int) PathState {
	s.Elapsed++
	s.Total += s.Rate
	s.At = to

	return s
}

// Wait spends one step without moving or opening anything.
func (s PathState) Wait() PathState {
	s.Elapsed++
	s.Total += s.Rate

	return s
}

// Activate spends one step opening node, whose rate is rate. The step yields
// the pre-activation Rate. Opening an open valve returns ErrAlreadyActivated.
func (s PathState) Activate(node int, rate int64) (PathState, error) {
	if s.Opened.Has(node) {
		return PathState{}, fmt.Errorf("%w: valve %d at step %d", ErrAlreadyActivated, node, s.Elapsed)
	}
	s.Elapsed++
	s.Total += s.Rate
	s.Rate += rate
	s.At = node
	s.Opened = s.Opened.With(node)
	s.trail = &trail{act: Activation{Node: node, Step: s.Elapsed}, prev: s.trail}

	return s, nil
}

// mustActivate is Activate for callers that have already checked Opened.
func (s PathState) mustActivate(node int, rate int64) PathState {
	next, err := s.Activate(node, rate)
	if err != nil {
		panic(err)
	}

	return next
}

// Has reports whether node has been opened on this path.
func (s PathState) Has(node int) bool { return s.Opened.Has(node) }

// Projected returns the flow this path reaches at horizon if nothing else is
// ever opened. It never decreases as the path is extended.
func (s PathState) Projected(horizon int) int64 {
	return s.Total + int64(horizon-s.Elapsed)*s.Rate
}

// Activations returns the opened valves in the order they were opened.
func (s PathState) Activations() []Activation {
	n := 0
	for t := s.trail; t != nil; t = t.prev {
		n++
	}
	out := make([]Activation, n)
	for t := s.trail; t != nil; t = t.prev {
		n--
		out[n] = t.act
	}

	return out
}

// Describe renders the activations with valve labels, e.g. "DD@2 BB@5".
func (s PathState) Describe(g *valve.Graph) string {
	acts := s.Activations()
	if len(acts) == 0 {
		return "-"
	}
	var sb strings.Builder
	for i, a := range acts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s@%d", g.Label(a.Node), a.Step)
	}

	return sb.String()
}
