package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"qdense/quantum"
)

// Config holds the tunables of the qdense command.
type Config struct {
	// MaxQubits caps the register size the command will build. Operators
	// cost O(4^n) memory, so this sits well below quantum.MaxQubits.
	MaxQubits int         `yaml:"max_qubits"`
	Tolerance float64     `yaml:"tolerance"`
	Bench     BenchConfig `yaml:"bench"`
	TUI       TUIConfig   `yaml:"tui"`
}

type BenchConfig struct {
	Qubits   int `yaml:"qubits"`
	Repeats  int `yaml:"repeats"`
	Parallel int `yaml:"parallel"`
}

type TUIConfig struct {
	Qubits int `yaml:"qubits"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxQubits: 12,
		Tolerance: 1e-9,
		Bench: BenchConfig{
			Qubits:   10,
			Repeats:  10,
			Parallel: 1,
		},
		TUI: TUIConfig{
			Qubits: 3,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the command cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.MaxQubits <= 0 || c.MaxQubits > quantum.MaxQubits {
		errs = append(errs, fmt.Errorf("max_qubits must be in [1, %d], got %d", quantum.MaxQubits, c.MaxQubits))
	}
	if c.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("tolerance must be positive, got %g", c.Tolerance))
	}
	if c.Bench.Qubits <= 0 || c.Bench.Qubits > c.MaxQubits {
		errs = append(errs, fmt.Errorf("bench.qubits must be in [1, max_qubits], got %d", c.Bench.Qubits))
	}
	if c.Bench.Repeats <= 0 {
		errs = append(errs, fmt.Errorf("bench.repeats must be positive, got %d", c.Bench.Repeats))
	}
	if c.Bench.Parallel <= 0 {
		errs = append(errs, fmt.Errorf("bench.parallel must be positive, got %d", c.Bench.Parallel))
	}
	if c.TUI.Qubits <= 0 || c.TUI.Qubits > c.MaxQubits {
		errs = append(errs, fmt.Errorf("tui.qubits must be in [1, max_qubits], got %d", c.TUI.Qubits))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// checkQubits enforces the configured register cap.
func (c *Config) checkQubits(n int) error {
	if n > c.MaxQubits {
		return fmt.Errorf("%d qubits exceeds max_qubits (%d)", n, c.MaxQubits)
	}
	return nil
}
