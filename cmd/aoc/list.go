package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/aoc2024/internal/registry"
	"github.com/vovakirdan/aoc2024/internal/runner"
)

var flagListStatus bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered days",
	Long: `Shows a list of all days registered in the solver set.

With --status every day is run against its default input and the number
of parts that produced the expected answer is shown. Status runs are not
recorded.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListStatus, "status", false, "Run every day and show how many parts pass")
}

func runList(_ *cobra.Command, _ []string) error {
	days := registry.All()

	if len(days) == 0 {
		fmt.Println("No days registered.")
		return nil
	}

	var (
		r   *runner.Runner
		e   *env
		err error
	)
	if flagListStatus {
		if e, err = setup(false); err != nil {
			return err
		}
		r = runner.New(log.New(io.Discard), nil)
	}

	fmt.Println("Available days:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, d := range days {
		maxIDLen = max(maxIDLen, len(d.ID))
		maxTitleLen = max(maxTitleLen, len(d.Title))
	}

	if flagListStatus {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Status")
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")
	} else {
		fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
		fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	}

	for _, d := range days {
		if !flagListStatus {
			fmt.Printf("  %-*s  %s\n", maxIDLen, d.ID, d.Title)
			continue
		}

		status := "input error"
		if in, err := runner.ResolveInput(d, e.cfg, ""); err == nil {
			status = fmt.Sprintf("%d/2 passed", r.RunDay(d, in).Passed())
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, d.ID, maxTitleLen, d.Title, status)
	}

	fmt.Println()
	fmt.Println("Run 'aoc run <id>' to run a day.")
	return nil
}
