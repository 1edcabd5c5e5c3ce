package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/aoc2024/internal/platform/tui"
	"github.com/vovakirdan/aoc2024/internal/registry"
	"github.com/vovakirdan/aoc2024/internal/runner"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick days to run from an interactive menu",
	Long: `Start the solver set in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to run a day.
After the results are shown, press Enter to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Run day
  A            - Run all days
  Tab          - Run history
  Q            - Quit`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("menu needs an interactive terminal; use 'aoc run' instead")
	}

	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.close()

	r := e.newRunner()
	infos := registry.List()
	stdin := bufio.NewReader(os.Stdin)

	for {
		res, err := tui.RunMenu(infos)
		if err != nil {
			return err
		}

		var days []registry.Day
		switch {
		case res.Quit:
			return nil
		case res.OpenHistory:
			var source tui.RunSource
			if e.store != nil {
				source = e.store
			}
			goBack, err := tui.RunHistory(source, infos, defaultHistoryLimit)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		case res.RunAll:
			days = registry.All()
		default:
			day, err := registry.Get(res.DayID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			days = []registry.Day{day}
		}

		for _, day := range days {
			in, err := runner.ResolveInput(day, e.cfg, "")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Println(tui.FormatDay(r.RunDay(day, in), e.styled))
		}

		fmt.Print("Press Enter to return to the menu...")
		if _, err := stdin.ReadString('\n'); err != nil {
			return nil
		}
	}
}
