package engine

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/collapse/internal/obslog"
)

// YAMLConfig mirrors the on-disk shape of an engine tuning document,
// grounded on the corpus's practice of loading long-lived-service
// knobs from a YAML file at startup rather than wiring every flag
// through code. Zero values are left to Config's own defaults.
type YAMLConfig struct {
	MaxRetries    *int   `yaml:"max_retries"`
	BacktrackStep *int   `yaml:"backtrack_step"`
	LogLevel      string `yaml:"log_level"`
	LogFile       struct {
		Path       string `yaml:"path"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log_file"`
}

// ParseLogLevel maps a YAML log_level string onto an obslog.Level.
// Unrecognized values (including the empty string) map to LevelNone.
func ParseLogLevel(s string) obslog.Level {
	switch s {
	case "info":
		return obslog.LevelInfo
	case "debug":
		return obslog.LevelDebug
	default:
		return obslog.LevelNone
	}
}

// Options renders the document as a slice of Option, ready to pass to
// New alongside any caller-supplied overrides (which should be listed
// after these to take precedence, matching Option's last-write-wins
// application order).
func (c YAMLConfig) Options() []Option {
	var opts []Option
	if c.MaxRetries != nil {
		opts = append(opts, WithMaxRetries(*c.MaxRetries))
	}
	if c.BacktrackStep != nil {
		opts = append(opts, WithBacktrackStep(*c.BacktrackStep))
	}
	opts = append(opts, WithLogLevel(ParseLogLevel(c.LogLevel)))
	if c.LogFile.Path != "" {
		opts = append(opts, WithFileSink(&obslog.FileSink{
			Path:       c.LogFile.Path,
			MaxSizeMB:  c.LogFile.MaxSizeMB,
			MaxBackups: c.LogFile.MaxBackups,
			MaxAgeDays: c.LogFile.MaxAgeDays,
		}))
	}
	return opts
}

// LoadConfig decodes a YAML tuning document from r.
func LoadConfig(r io.Reader) (YAMLConfig, error) {
	var cfg YAMLConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return YAMLConfig{}, fmt.Errorf("engine: decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile opens path and delegates to LoadConfig.
func LoadConfigFile(path string) (YAMLConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return YAMLConfig{}, fmt.Errorf("engine: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadConfig(f)
}
