// Package config loads run configuration for the treewidth engine: bound
// hints, a per-width node budget, and a wall-clock deadline. It plays the
// role Jdrasil's JdrasilProperties static overlay plays there, but as an
// ordinary value type loaded from YAML via gopkg.in/yaml.v3, since a
// package-level mutable global would make concurrent CLI invocations (or
// tests) interfere with each other.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by Validate.
var (
	ErrNegativeBound   = errors.New("config: bound must be non-negative")
	ErrBoundsCrossed   = errors.New("config: upper bound must exceed lower bound")
	ErrNegativeBudget  = errors.New("config: node budget must be non-negative")
	ErrNegativeTimeout = errors.New("config: timeout must be non-negative")
)

// Config holds the tunables an embedder or the CLI may supply to Solve.
type Config struct {
	// LowerBound seeds the trial-width search (see cleanandglue.WithLowerBound).
	// Zero means "let the engine choose the default of 1".
	LowerBound int `yaml:"lower_bound"`

	// UpperBound aborts the search once k would reach it (see
	// cleanandglue.WithUpperBound). Zero means "no ceiling".
	UpperBound int `yaml:"upper_bound"`

	// NodeBudget caps glue-stack transitive merges per frontier pop; zero
	// falls back to the engine's own default (see cleanandglue.maxGlueStepsPerPop).
	NodeBudget int `yaml:"node_budget"`

	// Timeout bounds total wall-clock search time; zero means no deadline.
	Timeout time.Duration `yaml:"timeout"`

	// UseHeuristics enables computing lowerbound.MinorMinWidth and
	// upperbound.MinFillIn before the exact search, to narrow its range.
	UseHeuristics bool `yaml:"use_heuristics"`
}

// Default returns the engine's out-of-the-box configuration: no bound
// hints, heuristics enabled, no deadline.
func Default() *Config {
	return &Config{UseHeuristics: true}
}

// Load reads and unmarshals a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects an internally inconsistent Config.
func (c *Config) Validate() error {
	if c.LowerBound < 0 {
		return fmt.Errorf("%w: lower_bound=%d", ErrNegativeBound, c.LowerBound)
	}
	if c.UpperBound < 0 {
		return fmt.Errorf("%w: upper_bound=%d", ErrNegativeBound, c.UpperBound)
	}
	if c.UpperBound > 0 && c.UpperBound <= c.LowerBound {
		return fmt.Errorf("%w: lower_bound=%d upper_bound=%d", ErrBoundsCrossed, c.LowerBound, c.UpperBound)
	}
	if c.NodeBudget < 0 {
		return fmt.Errorf("%w: node_budget=%d", ErrNegativeBudget, c.NodeBudget)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout=%s", ErrNegativeTimeout, c.Timeout)
	}
	return nil
}
