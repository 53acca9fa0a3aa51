package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func parseRunFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("run", pflag.ContinueOnError)
	registerRunFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func validConfig() Config {
	return Config{
		Log:           "warn",
		TraceLevel:    "snapshots",
		MinDraws:      500000,
		MaxExtraDraws: 50000000,
		Prints:        10,
	}
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(parseRunFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log)
	assert.Equal(t, 0, cfg.Repetitions)
	assert.Equal(t, "snapshots", cfg.TraceLevel)
	assert.Equal(t, 500000, cfg.MinDraws)
	assert.Equal(t, 50000000, cfg.MaxExtraDraws)
	assert.Equal(t, 10, cfg.Prints)
	assert.False(t, cfg.Stats)
	assert.False(t, cfg.SecureRNG)
	assert.True(t, cfg.Interactive())
}

func TestLoadConfig_Flags(t *testing.T) {
	cfg, err := loadConfig(parseRunFlags(t,
		"--pool", "1:49:6", "--pool", "1:10:1",
		"--repetitions", "3", "--stats", "--min-draws", "100", "--log", "debug"))
	require.NoError(t, err)

	assert.Equal(t, []string{"1:49:6", "1:10:1"}, cfg.Pools)
	assert.Equal(t, 3, cfg.Repetitions)
	assert.True(t, cfg.Stats)
	assert.Equal(t, 100, cfg.MinDraws)
	assert.Equal(t, "debug", cfg.Log)
	assert.False(t, cfg.Interactive())
}

func TestLoadConfig_EnvOverridesDefault(t *testing.T) {
	t.Setenv("DRAWSIM_REPETITIONS", "4")
	t.Setenv("DRAWSIM_MAX_EXTRA_DRAWS", "0")

	cfg, err := loadConfig(parseRunFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Repetitions)
	assert.Equal(t, 0, cfg.MaxExtraDraws)
}

func TestLoadConfig_FlagBeatsEnv(t *testing.T) {
	t.Setenv("DRAWSIM_REPETITIONS", "4")

	cfg, err := loadConfig(parseRunFlags(t, "--repetitions", "2"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Repetitions)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drawsim.yaml")
	err := os.WriteFile(path, []byte(`
repetitions: 5
trace-level: none
prints: 4
`), 0644)
	require.NoError(t, err)

	cfg, err := loadConfig(parseRunFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Repetitions)
	assert.Equal(t, "none", cfg.TraceLevel)
	assert.Equal(t, 4, cfg.Prints)
}

func TestLoadConfig_InvalidPath(t *testing.T) {
	_, err := loadConfig(parseRunFlags(t, "--config", "/nonexistent/drawsim.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	_, err := loadConfig(parseRunFlags(t, "--log", "loud", "--prints", "0"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log must be a logrus level")
	assert.Contains(t, err.Error(), "prints must be >= 1")
}

func TestValidate_PoolSourcesExclusive(t *testing.T) {
	cfg := validConfig()
	cfg.Pools = []string{"1:49:6"}
	cfg.PoolsFile = "pools.yaml"
	assert.Error(t, cfg.Validate())
}

func TestValidate_TraceLevel(t *testing.T) {
	for _, level := range []string{"", "none", "snapshots"} {
		cfg := validConfig()
		cfg.TraceLevel = level
		assert.NoError(t, cfg.Validate(), "trace level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.TraceLevel = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestPropertyNegativeRepetitionsRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Repetitions = rapid.IntRange(-1000, -1).Draw(t, "repetitions")
		if cfg.Validate() == nil {
			t.Fatalf("repetitions %d accepted", cfg.Repetitions)
		}
	})
}

func TestPropertyNonNegativeBudgetAccepted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.MinDraws = rapid.IntRange(0, 1<<30).Draw(t, "minDraws")
		cfg.MaxExtraDraws = rapid.IntRange(0, 1<<30).Draw(t, "maxExtraDraws")
		cfg.Prints = rapid.IntRange(1, 100).Draw(t, "prints")
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid budget rejected: %v", err)
		}
	})
}
