// aoc runs the Advent of Code 2024 puzzle solvers from the terminal.
//
// Usage:
//
//	aoc list [--status]                 - List registered days
//	aoc run <day|all|last> [input]      - Run a day and compare with expected answers
//	aoc menu                            - Pick days interactively
//	aoc history [day] [--limit N]       - Show recorded runs
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.aoc/config.yaml)
//	--db <path>         - Run history database (default from config)
//	--log-level <lvl>   - debug, info, warn or error
//	--no-record         - Do not record runs
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/aoc2024/internal/config"
	"github.com/vovakirdan/aoc2024/internal/runner"
	"github.com/vovakirdan/aoc2024/internal/storage"

	// Import days to register them
	_ "github.com/vovakirdan/aoc2024/internal/days/day01"
	_ "github.com/vovakirdan/aoc2024/internal/days/day02"
	_ "github.com/vovakirdan/aoc2024/internal/days/day03"
	_ "github.com/vovakirdan/aoc2024/internal/days/day04"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagNoRecord bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2024 solvers",
	Long: `aoc runs the daily puzzle solvers against their embedded example
inputs or your own puzzle inputs and checks the answers.

Available commands:
  list     - Show all registered days
  run      - Run one day, the latest day or all of them
  menu     - Interactive day picker
  history  - Show recorded runs

Examples:
  aoc list --status
  aoc run day03
  aoc run day01 ./inputs/day01.txt
  aoc run all --no-record
  aoc history day02 --limit 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoRecord, "no-record", false, "Do not record runs in the history database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
}

// env is what every command needs: configuration, a logger and, when
// recording is enabled, the run history store.
type env struct {
	cfg    config.Config
	logger *log.Logger
	store  *storage.Store
	styled bool
}

// setup loads configuration and builds the logger. When withStore is set
// it also opens the history database; failing to open it is only a warning.
func setup(withStore bool) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: level == log.DebugLevel,
		Prefix:          "aoc",
		Level:           level,
	})

	e := &env{
		cfg:    cfg,
		logger: logger,
		styled: term.IsTerminal(int(os.Stdout.Fd())),
	}

	if withStore {
		store, err := storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open run history", "path", cfg.DBPath, "error", err)
		} else {
			e.store = store
		}
	}
	return e, nil
}

// recording reports whether runs should be written to the history.
func (e *env) recording() bool {
	return e.cfg.RecordRuns && !flagNoRecord
}

// newRunner returns a runner that records into the store when recording is on.
func (e *env) newRunner() *runner.Runner {
	if e.store == nil || !e.recording() {
		return runner.New(e.logger, nil)
	}
	return runner.New(e.logger, e.store)
}

func (e *env) close() {
	if e.store != nil {
		e.store.Close()
	}
}
