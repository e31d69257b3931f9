package cli

import (
	"github.com/KimMachineGun/automemlimit/memlimit"
	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"
)

// memRatio is the share of the container memory limit handed to the Go runtime.
const memRatio = 0.8

// tune aligns GOMAXPROCS and the soft memory limit with the container quota,
// if any. It returns the function restoring the previous GOMAXPROCS.
func tune(log zerolog.Logger) func() {
	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug().Msgf(format, args...)
	}))
	if err != nil {
		log.Debug().Err(err).Msg("GOMAXPROCS left unchanged")
		undo = func() {}
	}

	if limit, err := memlimit.SetGoMemLimit(memRatio); err != nil {
		log.Debug().Err(err).Msg("memory limit left unchanged")
	} else {
		log.Debug().Int64("bytes", limit).Msg("memory limit set")
	}

	return undo
}
