package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/drawsim/drawsim/sim"
	"github.com/drawsim/drawsim/sim/trace"
)

// Config holds the settings of one `drawsim run` invocation. Values come from
// flags, DRAWSIM_* environment variables and an optional --config file, in
// that order of precedence.
type Config struct {
	Log           string   `mapstructure:"log"`
	Repetitions   int      `mapstructure:"repetitions"` // 0 = ask, or 1 when not interactive
	Pools         []string `mapstructure:"pool"`        // "smallest:biggest:count"
	PoolsFile     string   `mapstructure:"pools"`
	TraceLevel    string   `mapstructure:"trace-level"`
	Stats         bool     `mapstructure:"stats"`
	SecureRNG     bool     `mapstructure:"secure-rng"`
	MinDraws      int      `mapstructure:"min-draws"`
	MaxExtraDraws int      `mapstructure:"max-extra-draws"`
	Prints        int      `mapstructure:"prints"`
}

// Interactive reports whether pool definitions must be read from the console.
func (c Config) Interactive() bool {
	return len(c.Pools) == 0 && c.PoolsFile == ""
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if _, err := logrus.ParseLevel(c.Log); err != nil {
		errs = append(errs, fmt.Sprintf("log must be a logrus level, got %q", c.Log))
	}
	if c.Repetitions < 0 {
		errs = append(errs, fmt.Sprintf("repetitions must be >= 0, got %d", c.Repetitions))
	}
	if !trace.IsValidTraceLevel(c.TraceLevel) {
		errs = append(errs, fmt.Sprintf("trace-level must be one of [none, snapshots], got %q", c.TraceLevel))
	}
	if c.MinDraws < 0 {
		errs = append(errs, fmt.Sprintf("min-draws must be >= 0, got %d", c.MinDraws))
	}
	if c.MaxExtraDraws < 0 {
		errs = append(errs, fmt.Sprintf("max-extra-draws must be >= 0, got %d", c.MaxExtraDraws))
	}
	if c.Prints < 1 {
		errs = append(errs, fmt.Sprintf("prints must be >= 1, got %d", c.Prints))
	}
	if len(c.Pools) > 0 && c.PoolsFile != "" {
		errs = append(errs, "pool and pools are mutually exclusive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// registerRunFlags declares every `run` flag on fs. Flag names double as
// viper keys.
func registerRunFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a YAML file with run settings")
	fs.String("log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	fs.Int("repetitions", 0, "Number of repetitions (asked for when pools are entered interactively)")
	fs.StringSlice("pool", nil, "Pool as smallest:biggest:count (repeatable)")
	fs.String("pools", "", "Path to a YAML pool definition file")
	fs.String("trace-level", string(trace.TraceLevelSnapshots), "Progress tracing: none or snapshots")
	fs.Bool("stats", false, "Print draw-count statistics for every pool")
	fs.Bool("secure-rng", false, "Draw from crypto/rand instead of a PRNG (slow)")
	fs.Int("min-draws", sim.MinDraws, "Minimum max-count a run stops at")
	fs.Int("max-extra-draws", sim.MaxExtraDraws, "Upper bound of the random amount added to min-draws")
	fs.Int("prints", sim.NumberOfPrints, "Progress snapshots per pool run")
}

// loadConfig resolves the run configuration from parsed flags, the
// environment and the optional config file, then validates it.
func loadConfig(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	// Environment variable overrides with DRAWSIM_ prefix
	v.SetEnvPrefix("DRAWSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
