package config

import (
	_ "embed"
)

//go:embed defaults/aoc.yaml
var defaultYAML []byte

// Default returns the hardcoded driver configuration.
func Default() Config {
	return Config{
		LogLevel:   "info",
		DBPath:     "~/.aoc/runs.db",
		RecordRuns: true,
		InputsDir:  "inputs",
		Days:       map[string]DayConfig{},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
