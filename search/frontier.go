package search

import "github.com/katalvlaran/valveflow/valve"

// Entry is the per-valve state of a Frontier.
type Entry struct {
	// Best is the favoured state standing on the valve.
	Best PathState

	// Alternatives arrived without having opened the valve and lost the
	// ranking. They are consumed by the next Advance.
	Alternatives []PathState
}

// Frontier maps every valve to its Entry at one step. Slots for valves not
// reached yet are nil. A Frontier is replaced, never updated, by Advance.
type Frontier struct {
	step    int
	entries []*Entry
}

// NewFrontier returns a frontier holding seed on its current valve.
func NewFrontier(g *valve.Graph, seed PathState) *Frontier {
	f := &Frontier{
		step:    seed.Elapsed,
		entries: make([]*Entry, g.Len()),
	}
	f.entries[seed.At] = &Entry{Best: seed}

	return f
}

// Step returns the number of elapsed steps shared by every state in f.
func (f *Frontier) Step() int { return f.step }

// Entry returns a copy of the entry of valve i, if any.
func (f *Frontier) Entry(i int) (Entry, bool) {
	if e := f.entries[i]; e != nil {
		return *e, true
	}
	return Entry{}, false
}

// Each calls fn for every occupied valve in index order.
func (f *Frontier) Each(fn func(node int, e Entry)) {
	for i, e := range f.entries {
		if e != nil {
			fn(i, *e)
		}
	}
}

// Len returns the number of occupied valves.
func (f *Frontier) Len() int {
	n := 0
	for _, e := range f.entries {
		if e != nil {
			n++
		}
	}
	return n
}

// Alternatives returns the number of queued alternatives over all valves.
func (f *Frontier) Alternatives() int {
	n := 0
	for _, e := range f.entries {
		if e != nil {
			n += len(e.Alternatives)
		}
	}
	return n
}

// Best returns the best state by projected flow at horizon. Ties keep the
// lowest valve index. ok is false only for an empty frontier.
func (f *Frontier) Best(horizon int) (best PathState, ok bool) {
	for _, e := range f.entries {
		if e == nil {
			continue
		}
		if !ok || e.Best.Projected(horizon) > best.Projected(horizon) {
			best, ok = e.Best, true
		}
	}

	return best, ok
}

func (f *Frontier) stats(horizon int) StepStats {
	best, _ := f.Best(horizon)
	return StepStats{
		Step:         f.step,
		Entries:      f.Len(),
		Alternatives: f.Alternatives(),
		Projected:    best.Projected(horizon),
	}
}
