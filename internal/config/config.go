// Package config provides YAML-based configuration loading for the
// puzzle driver: logging, run history storage and personal inputs.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Config contains all driver configuration.
type Config struct {
	LogLevel   string               `yaml:"log_level"`
	DBPath     string               `yaml:"db_path"`
	RecordRuns bool                 `yaml:"record_runs"`
	InputsDir  string               `yaml:"inputs_dir"`
	Days       map[string]DayConfig `yaml:"days"`
}

// DayConfig overrides the input of one day and the answers expected for it.
type DayConfig struct {
	Input string  `yaml:"input"` // Path to a personal input file
	Part1 *uint64 `yaml:"part1"` // Expected part 1 answer for that input
	Part2 *uint64 `yaml:"part2"` // Expected part 2 answer for that input
}

// Day returns the configuration for a day, or the zero value if none.
func (c Config) Day(id string) DayConfig {
	return c.Days[id]
}

// Level parses LogLevel for the logger. An empty level means info.
func (c Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
