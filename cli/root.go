// Package cli is the valveflow command tree: solve, inspect, export, config
// and version. Settings come from flags, VALVEFLOW_* variables and an optional
// YAML file, resolved by package config.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/valveflow/config"
	"github.com/katalvlaran/valveflow/logging"
	"github.com/katalvlaran/valveflow/parse"
	"github.com/katalvlaran/valveflow/valve"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// app carries the state resolved before any subcommand runs.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     zerolog.Logger
}

// NewRoot assembles a fresh command tree. Each call is independent, which
// keeps tests free of shared flag state.
func NewRoot() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "valveflow",
		Short:         "Maximize released flow by opening valves within a time budget",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML configuration file")
	pf.StringP(config.KeyInput, "i", "", "valve description file (- or empty for stdin)")
	pf.String(config.KeyStart, config.Default().Start, "start valve label")
	pf.Bool(config.KeyRequireSymmetric, false, "reject tunnels listed by one end only")
	pf.String(config.KeyLogLevel, config.Default().LogLevel, "log level: trace, debug, info, warn, error")
	pf.String(config.KeyLogFormat, config.Default().LogFormat, "log format: console or json")

	root.AddCommand(
		newSolveCmd(a),
		newInspectCmd(a),
		newExportCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return root
}

// load binds the running command's flags, resolves the configuration and
// builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
		if err := a.v.BindPFlags(fs); err != nil {
			return fmt.Errorf("cli: bind flags: %w", err)
		}
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Out:    cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}
	if a.cfgFile != "" {
		a.log.Debug().Str("file", a.cfgFile).Msg("configuration loaded")
	}

	return nil
}

// graph reads and builds the configured valve network.
func (a *app) graph(cmd *cobra.Command) (*valve.Graph, error) {
	var in io.Reader = cmd.InOrStdin()
	if a.cfg.Input != "" && a.cfg.Input != "-" {
		f, err := os.Open(a.cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("cli: open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var opts []valve.Option
	if a.cfg.RequireSymmetric {
		opts = append(opts, valve.WithRequireSymmetric())
	}
	g, err := parse.Graph(in, a.cfg.Start, opts...)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Int("valves", g.Len()).Int("useful", g.Useful().Len()).Str("start", a.cfg.Start).Msg("graph built")

	return g, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show valveflow version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "valveflow", Version)
			return err
		},
	}
}
