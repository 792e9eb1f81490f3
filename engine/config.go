package engine

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/collapse/internal/obslog"
	"github.com/katalvlaran/collapse/rng"
)

// Config holds the resolved engine options (spec §6, table). It is
// built by applying a sequence of Option functions over defaultConfig
// and is immutable once New returns.
type Config struct {
	maxRetries    int
	backtrackStep int
	random        rng.Source
	logLevel      obslog.Level
	logger        *slog.Logger
	fileSink      *obslog.FileSink
}

// Option customizes a Config, mirroring the corpus's functional-option
// idiom (builder.BuilderOption, bfs.Option). Option constructors
// validate and panic on structurally meaningless input (nil RNG,
// negative retry budget) at construction time; the engine itself never
// panics once running.
type Option func(*Config)

func defaultConfig() *Config {
	return &Config{
		maxRetries:    100,
		backtrackStep: 1,
		random:        rng.NewSystem(),
		logLevel:      obslog.LevelNone,
	}
}

// WithMaxRetries sets the maximum number of rollbacks before the engine
// surfaces Unsatisfiable. Panics if retries is negative.
func WithMaxRetries(retries int) Option {
	if retries < 0 {
		panic(fmt.Sprintf("engine: WithMaxRetries: retries must be >= 0, got %d", retries))
	}
	return func(c *Config) { c.maxRetries = retries }
}

// WithBacktrackStep sets the number of frames popped per rollback.
// Panics if step is less than 1.
func WithBacktrackStep(step int) Option {
	if step < 1 {
		panic(fmt.Sprintf("engine: WithBacktrackStep: step must be >= 1, got %d", step))
	}
	return func(c *Config) { c.backtrackStep = step }
}

// WithRandom installs a custom PRNG source. Panics if source is nil.
func WithRandom(source rng.Source) Option {
	if source == nil {
		panic("engine: WithRandom: source must not be nil")
	}
	return func(c *Config) { c.random = source }
}

// WithLogLevel sets event log verbosity.
func WithLogLevel(level obslog.Level) Option {
	return func(c *Config) { c.logLevel = level }
}

// WithLogger installs a pre-built *slog.Logger, overriding WithLogLevel.
// Panics if logger is nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("engine: WithLogger: logger must not be nil")
	}
	return func(c *Config) { c.logger = logger }
}

// WithFileSink adds a rotating file sink alongside the level-based
// console logger built from WithLogLevel. Has no effect if WithLogger
// was also supplied. Panics if sink is nil.
func WithFileSink(sink *obslog.FileSink) Option {
	if sink == nil {
		panic("engine: WithFileSink: sink must not be nil")
	}
	return func(c *Config) { c.fileSink = sink }
}

func newConfig(opts ...Option) *Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = obslog.New(cfg.logLevel, cfg.fileSink)
	}
	return cfg
}
