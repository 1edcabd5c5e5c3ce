package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aoc2024/internal/platform/tui"
	"github.com/vovakirdan/aoc2024/internal/registry"
)

const defaultHistoryLimit = 20

var (
	flagHistoryLimit       int
	flagHistoryInteractive bool
	flagHistoryClear       bool
)

var historyCmd = &cobra.Command{
	Use:   "history [day]",
	Short: "Show recorded runs",
	Long: `Display the most recent recorded runs, newest first.

Without a day, runs of every day are listed. With --clear the runs of the
day (or the whole history) are deleted instead.

Examples:
  aoc history
  aoc history day02 --limit 5
  aoc history --interactive
  aoc history day01 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", defaultHistoryLimit, "Maximum number of runs to show")
	historyCmd.Flags().BoolVarP(&flagHistoryInteractive, "interactive", "i", false, "Browse runs in a table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete recorded runs")
}

func runHistory(_ *cobra.Command, args []string) error {
	dayID := ""
	if len(args) == 1 {
		dayID = args[0]
		if !registry.Exists(dayID) {
			return fmt.Errorf("unknown day %q (run 'aoc list' to see available days)", dayID)
		}
	}

	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.close()

	if e.store == nil {
		return fmt.Errorf("run history is not available at %s", e.cfg.DBPath)
	}

	if flagHistoryClear {
		if err := e.store.ClearRuns(dayID); err != nil {
			return err
		}
		if dayID == "" {
			fmt.Println("Cleared run history.")
		} else {
			fmt.Printf("Cleared run history of %s.\n", dayID)
		}
		return nil
	}

	if flagHistoryInteractive {
		_, err := tui.RunHistory(e.store, registry.List(), flagHistoryLimit)
		return err
	}

	runs, err := e.store.RecentRuns(dayID, flagHistoryLimit)
	if err != nil {
		return err
	}

	title := "all days"
	if dayID != "" {
		title = dayID
	}
	fmt.Printf("Run history - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'aoc run <day>' to record the first run!")
		return nil
	}

	rows := tui.HistoryRows(runs)
	fmt.Printf("  %-6s  %-4s  %-15s  %-20s  %-10s  %s\n", "Day", "Part", "Status", "Answer", "Time", "Date")
	fmt.Printf("  %-6s  %-4s  %-15s  %-20s  %-10s  %s\n", "---", "----", "------", "------", "----", "----")
	for _, row := range rows {
		fmt.Printf("  %-6s  %-4s  %-15s  %-20s  %-10s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5])
	}

	if dayID == "" {
		return nil
	}
	if stats, err := e.store.DayStats(dayID); err == nil {
		fmt.Println()
		fmt.Printf("%d runs, %d passed, %d failed, avg %v\n",
			stats.Runs, stats.Passes, stats.Failures, stats.AvgDuration)
	}
	return nil
}
