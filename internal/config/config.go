// Package config loads the CLI and server settings from a YAML file, with
// built-in defaults and a small set of environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "2s" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Duration() time.Duration { return time.Duration(d) }

type Config struct {
	// Listen is the HTTP service address.
	Listen string `yaml:"listen"`

	// HistoryPath is the SQLite file recording evaluated programs.
	HistoryPath string `yaml:"history_path"`

	// EvalTimeout bounds a single evaluation; zero means unbounded.
	EvalTimeout Duration `yaml:"eval_timeout"`

	// Trace enables token-level trace logging.
	Trace bool `yaml:"trace"`
}

func Default() Config {
	return Config{
		Listen:      ":8687",
		HistoryPath: "forthwith.db",
		EvalTimeout: Duration(5 * time.Second),
	}
}

// Load reads path over the defaults. An empty path yields the defaults; the
// FORTHWITH_HISTORY environment variable overrides the history path either
// way.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if env := os.Getenv("FORTHWITH_HISTORY"); env != "" {
		cfg.HistoryPath = env
	}
	return cfg, nil
}
