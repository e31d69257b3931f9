// Package parse reads valve networks written one valve per line:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Blank lines are skipped. Records are returned in input order; label
// resolution and every structural check are left to valve.Build.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/valveflow/valve"
)

// ErrSyntax indicates a line that does not describe a valve.
var ErrSyntax = errors.New("parse: syntax error")

// LineError reports the 1-based line on which parsing failed.
type LineError struct {
	Line int
	Text string
	Err  error
}

// Error implements error.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying error for errors.Is.
func (e *LineError) Unwrap() error { return e.Err }

var lineRx = regexp.MustCompile(`^Valve (\S+) has flow rate=(-?\d+); tunnels? leads? to valves? (.*)$`)

// Records parses every valve line of r.
func Records(r io.Reader) ([]valve.Record, error) {
	var (
		out  []valve.Record
		sc   = bufio.NewScanner(r)
		line int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		rec, err := parseLine(text)
		if err != nil {
			return nil, &LineError{Line: line, Text: text, Err: err}
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}

	return out, nil
}

func parseLine(text string) (valve.Record, error) {
	m := lineRx.FindStringSubmatch(text)
	if m == nil {
		return valve.Record{}, ErrSyntax
	}
	rate, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return valve.Record{}, fmt.Errorf("%w: rate %q: %v", ErrSyntax, m[2], err)
	}
	var nbrs []string
	for _, n := range strings.Split(m[3], ",") {
		if n = strings.TrimSpace(n); n == "" {
			return valve.Record{}, fmt.Errorf("%w: empty neighbor", ErrSyntax)
		}
		nbrs = append(nbrs, n)
	}

	return valve.Record{Label: m[1], Rate: rate, Neighbors: nbrs}, nil
}

// Graph parses r and builds the graph rooted at start.
func Graph(r io.Reader, start string, opts ...valve.Option) (*valve.Graph, error) {
	records, err := Records(r)
	if err != nil {
		return nil, err
	}

	return valve.Build(records, start, opts...)
}
