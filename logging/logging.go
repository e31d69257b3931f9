// Package logging builds the zerolog logger used by the valveflow command.
// Library packages never log; they expose hooks the command wires to this logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

// ErrFormat indicates an unknown output format.
var ErrFormat = errors.New("logging: unknown format")

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// TimeFormat is the console timestamp layout.
const TimeFormat = "15:04:05.000"

// Options selects level, format and destination.
type Options struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string

	// Format is FormatConsole or FormatJSON.
	Format string

	// Out is the destination; nil means a colorable stderr.
	Out io.Writer

	// NoColor disables ANSI colors on the console writer.
	NoColor bool
}

// New returns a logger configured by o.
func New(o Options) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if o.Level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(o.Level); err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: level %q: %w", o.Level, err)
		}
	}

	out := o.Out
	switch o.Format {
	case "", FormatConsole:
		if out == nil {
			out = colorable.NewColorable(os.Stderr)
		}
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: TimeFormat, NoColor: o.NoColor}
	case FormatJSON:
		if out == nil {
			out = os.Stderr
		}
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrFormat, o.Format)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
