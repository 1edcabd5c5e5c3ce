package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/aoc2024/internal/storage"
)

// execute runs the root command with args. Flags persist between runs,
// so callers pass every flag they rely on.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func testEnv(t *testing.T) (cfgPath, dbPath string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfgPath = filepath.Join(dir, "aoc.yaml")
	content := "log_level: error\nrecord_runs: true\ninputs_dir: " + filepath.Join(dir, "inputs") + "\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfgPath, filepath.Join(dir, "runs.db")
}

func countRuns(t *testing.T, dbPath, dayID string) int {
	t.Helper()
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(dayID, 100)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	return len(runs)
}

func TestCommandErrorsAreReturned(t *testing.T) {
	cfg, db := testEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown run day", []string{"run", "day99"}, "unknown day"},
		{"unknown history day", []string{"history", "day99", "--clear=false"}, "unknown day"},
		{"path with all", []string{"run", "all", "input.txt"}, "single day"},
		{"missing input file", []string{"run", "day01", filepath.Join(t.TempDir(), "missing.txt"), "--config", cfg, "--db", db}, "cannot read input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Execute(%v) error = %v, want %q", tt.args, err, tt.want)
			}
		})
	}
}

func TestRunRecordsAndHistoryClears(t *testing.T) {
	cfg, db := testEnv(t)
	common := []string{"--config", cfg, "--db", db, "--no-record=false"}

	if err := execute(t, append([]string{"run", "day01"}, common...)...); err != nil {
		t.Fatalf("run day01 failed: %v", err)
	}
	if n := countRuns(t, db, "day01"); n != 2 {
		t.Fatalf("Expected 2 recorded parts, got %d", n)
	}

	if err := execute(t, append([]string{"history", "day01", "--clear", "--interactive=false"}, common...)...); err != nil {
		t.Fatalf("history --clear failed: %v", err)
	}
	if n := countRuns(t, db, "day01"); n != 0 {
		t.Errorf("Expected history to be cleared, got %d runs", n)
	}
}
