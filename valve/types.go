package valve

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrNoRecords indicates Build was called with an empty record list.
	ErrNoRecords = errors.New("valve: no records")

	// ErrTooManyNodes indicates more records than a NodeSet can address.
	ErrTooManyNodes = errors.New("valve: too many valves")

	// ErrEmptyLabel indicates a record or neighbor with a zero-length label.
	ErrEmptyLabel = errors.New("valve: label is empty")

	// ErrDuplicateLabel indicates two records with the same label.
	ErrDuplicateLabel = errors.New("valve: duplicate label")

	// ErrNegativeRate indicates a record with a rate below zero.
	ErrNegativeRate = errors.New("valve: negative rate")

	// ErrUnknownNeighbor indicates a neighbor label that names no record.
	ErrUnknownNeighbor = errors.New("valve: unknown neighbor")

	// ErrDuplicateNeighbor indicates a record that lists a neighbor more than once.
	ErrDuplicateNeighbor = errors.New("valve: duplicate neighbor")

	// ErrSelfLoop indicates a record that lists itself as a neighbor.
	ErrSelfLoop = errors.New("valve: self-loop not allowed")

	// ErrStartNotFound indicates the start label names no record.
	ErrStartNotFound = errors.New("valve: start valve not found")

	// ErrAsymmetricEdge indicates a tunnel listed by only one of its endpoints.
	ErrAsymmetricEdge = errors.New("valve: asymmetric tunnel")

	// ErrUnreachable indicates a valve with a non-zero rate that cannot be reached from start.
	ErrUnreachable = errors.New("valve: useful valve unreachable from start")
)

// Record is one parsed valve: its label, its activation rate and the labels
// of the valves reachable from it in one step.
type Record struct {
	Label     string
	Rate      int64
	Neighbors []string
}

// RecordError reports which record made Build fail and why.
type RecordError struct {
	// Label is the offending record's label (may be empty for ErrEmptyLabel).
	Label string

	// Err wraps one of the package sentinels.
	Err error
}

// Error implements error.
func (e *RecordError) Error() string {
	return fmt.Sprintf("record %q: %v", e.Label, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *RecordError) Unwrap() error { return e.Err }

// Option configures optional validation performed by Build.
type Option func(*buildOptions)

type buildOptions struct {
	requireSymmetric bool
	requireReachable bool
}

// WithRequireSymmetric makes Build reject a tunnel A→B unless B also lists A.
func WithRequireSymmetric() Option {
	return func(o *buildOptions) { o.requireSymmetric = true }
}

// WithRequireReachable makes Build reject graphs in which some valve with a
// non-zero rate cannot be reached from the start valve.
func WithRequireReachable() Option {
	return func(o *buildOptions) { o.requireReachable = true }
}
