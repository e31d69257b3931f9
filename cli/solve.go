package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valveflow/config"
	"github.com/katalvlaran/valveflow/metrics"
	"github.com/katalvlaran/valveflow/search"
)

func newSolveCmd(a *app) *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the best flow for one agent or a cooperating pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd, explain)
		},
	}

	d := config.Default()
	f := cmd.Flags()
	f.Int(config.KeyHorizon, d.Horizon, "number of time steps")
	f.String(config.KeyMode, d.Mode, "search mode: solo or pair")
	f.Int(config.KeyDelay, d.Delay, "idle steps before both agents act (pair mode)")
	f.Int(config.KeyWorkers, d.Workers, "pair candidates evaluated concurrently (0 = GOMAXPROCS)")
	f.Int(config.KeyMaxAlternatives, d.MaxAlternatives, "alternatives kept per valve and step (0 = unbounded)")
	f.String(config.KeyMetricsOut, d.MetricsOut, "write Prometheus metrics to this textfile")
	f.BoolVar(&explain, "explain", false, "print the opening schedule of every agent")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, explain bool) error {
	g, err := a.graph(cmd)
	if err != nil {
		return err
	}

	defer tune(a.log)()

	rec := metrics.New()
	opts := []search.Option{
		search.WithMaxAlternatives(a.cfg.MaxAlternatives),
		search.WithWorkers(a.cfg.Workers),
		search.WithOnStep(func(st search.StepStats) {
			rec.Step(st)
			a.log.Debug().
				Int("step", st.Step).
				Int("entries", st.Entries).
				Int("alternatives", st.Alternatives).
				Int64("projected", st.Projected).
				Msg("advanced")
		}),
		search.WithOnCandidate(func(c search.Candidate) {
			rec.Candidate(c)
			a.log.Trace().
				Int("step", c.Step).
				Str("valve", g.Label(c.Node)).
				Int64("first", c.First).
				Int64("second", c.Second).
				Msg("candidate")
		}),
	}

	var (
		began = time.Now()
		flow  int64
		lines []string
	)
	switch a.cfg.Mode {
	case config.ModePair:
		opts = append(opts, search.WithDelay(a.cfg.Delay))
		res, err := search.SolvePair(g, a.cfg.Horizon, opts...)
		if err != nil {
			return err
		}
		flow = res.Flow
		lines = []string{
			"first:  " + res.First.Describe(g),
			"second: " + res.Second.Describe(g),
		}
	default:
		res, err := search.Solve(g, a.cfg.Horizon, opts...)
		if err != nil {
			return err
		}
		flow = res.Flow
		lines = []string{"path: " + res.Path.Describe(g)}
	}
	elapsed := time.Since(began)
	rec.Observe(a.cfg.Mode, elapsed, flow)

	a.log.Info().
		Str("mode", a.cfg.Mode).
		Int("horizon", a.cfg.Horizon).
		Int64("flow", flow).
		Dur("elapsed", elapsed).
		Msg("solved")

	if a.cfg.MetricsOut != "" {
		if err = rec.WriteTextfile(a.cfg.MetricsOut); err != nil {
			return fmt.Errorf("cli: write metrics: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if _, err = fmt.Fprintln(out, flow); err != nil {
		return err
	}
	if explain {
		for _, l := range lines {
			if _, err = fmt.Fprintln(out, l); err != nil {
				return err
			}
		}
	}

	return nil
}
