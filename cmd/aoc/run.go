package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aoc2024/internal/platform/tui"
	"github.com/vovakirdan/aoc2024/internal/registry"
	"github.com/vovakirdan/aoc2024/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run <day|all|last> [input-path]",
	Short: "Run a day and check its answers",
	Long: `Run both parts of a day and compare them with the expected answers.

The day is a registered ID such as day03, "last" for the most recent day
or "all" for every day. Without an input path the input is taken from
the day's config entry, then <inputs_dir>/<day>.txt, then the embedded
puzzle example.

Examples:
  aoc run day01
  aoc run last
  aoc run all
  aoc run day04 ./inputs/day04-personal.txt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRun,
}

func runRun(_ *cobra.Command, args []string) error {
	days, err := selectDays(args[0])
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 2 {
		if len(days) != 1 {
			return errors.New("an input path can only be given for a single day")
		}
		path = args[1]
	}

	e, err := setup(!flagNoRecord)
	if err != nil {
		return err
	}
	defer e.close()

	r := e.newRunner()
	for _, day := range days {
		in, err := runner.ResolveInput(day, e.cfg, path)
		if err != nil {
			return err
		}
		fmt.Println(tui.FormatDay(r.RunDay(day, in), e.styled))
	}
	return nil
}

// selectDays resolves a run target to registered days.
func selectDays(target string) ([]registry.Day, error) {
	switch target {
	case "all":
		days := registry.All()
		if len(days) == 0 {
			return nil, errors.New("no days registered")
		}
		return days, nil
	case "last":
		day, err := registry.Last()
		if err != nil {
			return nil, err
		}
		return []registry.Day{day}, nil
	default:
		day, err := registry.Get(target)
		if err != nil {
			return nil, fmt.Errorf("%w (run 'aoc list' to see available days)", err)
		}
		return []registry.Day{day}, nil
	}
}
