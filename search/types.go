package search

import (
	"errors"
	"fmt"
	"runtime"
)

// DefaultPairDelay is the number of idle steps both agents spend before the
// dual-agent search starts acting (the time spent teaching the second agent).
const DefaultPairDelay = 4

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNegativeHorizon is returned for a horizon below zero.
	ErrNegativeHorizon = errors.New("search: horizon must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrAlreadyActivated is returned by PathState.Activate for an open valve.
	ErrAlreadyActivated = errors.New("search: valve already activated")
)

// StepStats describes the frontier right after one Advance of the outer search.
type StepStats struct {
	// Step is the number of elapsed steps after the advance.
	Step int

	// Entries is the number of valves holding a state.
	Entries int

	// Alternatives is the number of alternative states queued for the next step.
	Alternatives int

	// Projected is the best projected flow over all entries.
	Projected int64
}

// Candidate reports one evaluated first-agent state in SolvePair.
type Candidate struct {
	// Step is the elapsed step count of both agents.
	Step int

	// Node is the valve the first agent's state sits on.
	Node int

	// First and Second are the projected flows of both agents.
	First, Second int64
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables and observation hooks of a search.
type Options struct {
	// Delay is the number of idle steps each agent spends at the start valve
	// before its first decision.
	Delay int

	// MaxAlternatives bounds the alternatives kept per valve and step.
	// Zero keeps all of them.
	MaxAlternatives int

	// Workers bounds the number of dual-agent candidates evaluated concurrently.
	Workers int

	// OnStep is called after every Advance of the outer search.
	OnStep func(StepStats)

	// OnCandidate is called, in valve order, for every dual-agent candidate.
	OnCandidate func(Candidate)

	err error
}

// DefaultOptions returns Options with no delay, unbounded alternatives,
// a single worker and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Delay:           0,
		MaxAlternatives: 0,
		Workers:         1,
		OnStep:          func(StepStats) {},
		OnCandidate:     func(Candidate) {},
	}
}

// WithDelay sets the number of idle steps before each agent acts.
func WithDelay(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Delay cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithMaxAlternatives bounds the alternatives queued per valve; 0 means unbounded.
// Once a valve holds n alternatives, later arrivals are dropped.
func WithMaxAlternatives(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxAlternatives cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAlternatives = n
	}
}

// WithWorkers sets how many dual-agent candidates are evaluated concurrently.
//
//	n > 0:  at most n at a time
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithOnStep registers a callback run after every outer Advance.
func WithOnStep(fn func(StepStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnCandidate registers a callback run for every dual-agent candidate.
func WithOnCandidate(fn func(Candidate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}

func buildOptions(base Options, opts []Option) (Options, error) {
	for _, opt := range opts {
		opt(&base)
	}

	return base, base.err
}

// Result is the outcome of Solve.
type Result struct {
	// Flow is the cumulative flow at the horizon.
	Flow int64

	// Path is the winning state; Path.Activations() lists what was opened and when.
	Path PathState
}

// PairResult is the outcome of SolvePair.
type PairResult struct {
	// Flow is the combined projected flow of both agents at the horizon.
	Flow int64

	// First and Second are the winning states of both agents. Their opened
	// sets never intersect.
	First, Second PathState
}
