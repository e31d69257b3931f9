// Package config layers valveflow settings: built-in defaults, an optional
// YAML file, VALVEFLOW_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valveflow/logging"
)

// ErrInvalidConfig indicates a setting outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override, e.g. VALVEFLOW_HORIZON.
const EnvPrefix = "VALVEFLOW"

// Search modes.
const (
	ModeSolo = "solo"
	ModePair = "pair"
)

// Keys shared by viper, flags and the YAML file.
const (
	KeyInput            = "input"
	KeyStart            = "start"
	KeyHorizon          = "horizon"
	KeyMode             = "mode"
	KeyDelay            = "delay"
	KeyWorkers          = "workers"
	KeyMaxAlternatives  = "max-alternatives"
	KeyRequireSymmetric = "require-symmetric"
	KeyLogLevel         = "log-level"
	KeyLogFormat        = "log-format"
	KeyMetricsOut       = "metrics-out"
)

// Config is the effective configuration of one valveflow run.
type Config struct {
	Input            string `mapstructure:"input" yaml:"input"`
	Start            string `mapstructure:"start" yaml:"start"`
	Horizon          int    `mapstructure:"horizon" yaml:"horizon"`
	Mode             string `mapstructure:"mode" yaml:"mode"`
	Delay            int    `mapstructure:"delay" yaml:"delay"`
	Workers          int    `mapstructure:"workers" yaml:"workers"`
	MaxAlternatives  int    `mapstructure:"max-alternatives" yaml:"max-alternatives"`
	RequireSymmetric bool   `mapstructure:"require-symmetric" yaml:"require-symmetric"`
	LogLevel         string `mapstructure:"log-level" yaml:"log-level"`
	LogFormat        string `mapstructure:"log-format" yaml:"log-format"`
	MetricsOut       string `mapstructure:"metrics-out" yaml:"metrics-out"`
}

// Default returns the built-in settings: a 30-step single-agent search from
// AA, with a 4-step delay applied when the pair mode is chosen.
func Default() Config {
	return Config{
		Start:     "AA",
		Horizon:   30,
		Mode:      ModeSolo,
		Delay:     4,
		Workers:   1,
		LogLevel:  "info",
		LogFormat: logging.FormatConsole,
	}
}

// SetDefaults registers Default() on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyInput, d.Input)
	v.SetDefault(KeyStart, d.Start)
	v.SetDefault(KeyHorizon, d.Horizon)
	v.SetDefault(KeyMode, d.Mode)
	v.SetDefault(KeyDelay, d.Delay)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyMaxAlternatives, d.MaxAlternatives)
	v.SetDefault(KeyRequireSymmetric, d.RequireSymmetric)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyMetricsOut, d.MetricsOut)
}

// Load reads file (if non-empty) into v, enables environment overrides and
// returns the validated result. Flags must already be bound to v.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return c, c.Validate()
}

// Validate checks every setting's domain.
func (c Config) Validate() error {
	switch {
	case c.Start == "":
		return fmt.Errorf("%w: start must not be empty", ErrInvalidConfig)
	case c.Horizon < 0:
		return fmt.Errorf("%w: horizon %d is negative", ErrInvalidConfig, c.Horizon)
	case c.Mode != ModeSolo && c.Mode != ModePair:
		return fmt.Errorf("%w: mode %q (want %s or %s)", ErrInvalidConfig, c.Mode, ModeSolo, ModePair)
	case c.Delay < 0:
		return fmt.Errorf("%w: delay %d is negative", ErrInvalidConfig, c.Delay)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	case c.MaxAlternatives < 0:
		return fmt.Errorf("%w: max-alternatives %d is negative", ErrInvalidConfig, c.MaxAlternatives)
	}

	return nil
}

// Write renders c as YAML.
func Write(w io.Writer, c Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}
