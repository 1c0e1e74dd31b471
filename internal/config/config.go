// Package config loads greedytsp settings from greedytsp.yaml and the
// environment, and builds the process-wide zap logger.
package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the root configuration.
type Config struct {
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	Solve    SolveConfig    `yaml:"solve" mapstructure:"solve"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Generate GenerateConfig `yaml:"generate" mapstructure:"generate"`
	Bench    BenchConfig    `yaml:"bench" mapstructure:"bench"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// SolveConfig configures the insertion engine.
type SolveConfig struct {
	Start           int           `yaml:"start" mapstructure:"start"`
	CheckInvariants bool          `yaml:"check_invariants" mapstructure:"check_invariants"`
	TimeLimit       time.Duration `yaml:"time_limit" mapstructure:"time_limit"`
}

// OutputConfig selects how solved tours are rendered.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

// GenerateConfig configures synthetic instance generation.
type GenerateConfig struct {
	Kind     string `yaml:"kind" mapstructure:"kind"`
	N        int    `yaml:"n" mapstructure:"n"`
	Clusters int    `yaml:"clusters" mapstructure:"clusters"`
	Seed     int64  `yaml:"seed" mapstructure:"seed"`
}

// BenchConfig configures repeated solves over generated instances.
type BenchConfig struct {
	Trials      int   `yaml:"trials" mapstructure:"trials"`
	N           int   `yaml:"n" mapstructure:"n"`
	Concurrency int   `yaml:"concurrency" mapstructure:"concurrency"`
	Seed        int64 `yaml:"seed" mapstructure:"seed"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("greedytsp")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GREEDYTSP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("solve.start", 0)
	v.SetDefault("solve.check_invariants", false)
	v.SetDefault("solve.time_limit", "0s")
	v.SetDefault("output.format", "text")
	v.SetDefault("generate.kind", "uniform")
	v.SetDefault("generate.n", 40)
	v.SetDefault("generate.clusters", 4)
	v.SetDefault("generate.seed", 1)
	v.SetDefault("bench.trials", 20)
	v.SetDefault("bench.n", 100)
	v.SetDefault("bench.concurrency", 4)
	v.SetDefault("bench.seed", 1)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate rejects settings no command can run with.
func (c *Config) Validate() error {
	switch {
	case c.Solve.Start < 0:
		return eris.Errorf("config: solve.start must be >= 0, got %d", c.Solve.Start)
	case c.Solve.TimeLimit < 0:
		return eris.Errorf("config: solve.time_limit must be >= 0, got %s", c.Solve.TimeLimit)
	case c.Bench.Trials < 1:
		return eris.Errorf("config: bench.trials must be >= 1, got %d", c.Bench.Trials)
	case c.Bench.Concurrency < 1:
		return eris.Errorf("config: bench.concurrency must be >= 1, got %d", c.Bench.Concurrency)
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
