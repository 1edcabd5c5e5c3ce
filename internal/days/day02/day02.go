// Package day02 solves "Red-Nosed Reports": counting reports whose levels
// change monotonically by small steps, optionally tolerating one bad level.
package day02

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/aoc2024/internal/core"
	"github.com/vovakirdan/aoc2024/internal/registry"
)

//go:embed input.txt
var defaultInput string

// Allowed absolute difference between two adjacent levels.
const (
	minDelta = 1
	maxDelta = 3
)

// ErrMalformedReport indicates a line containing something other than integers.
var ErrMalformedReport = errors.New("day02: report must be space-separated integers")

// Report is one line of the puzzle: an ordered sequence of levels.
type Report []int

// ParseReports reads one report per non-blank line.
func ParseReports(input string) ([]Report, error) {
	var reports []Report
	for i, line := range strings.Split(input, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		r := make(Report, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d %q: %w: %w", i+1, line, ErrMalformedReport, err)
			}
			r = append(r, v)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// IsSafe reports whether all levels strictly increase or strictly decrease,
// with every step between minDelta and maxDelta inclusive.
// Reports with fewer than two levels have no steps and are safe.
func IsSafe(r Report) bool {
	if len(r) < 2 {
		return true
	}

	increasing := r[1] > r[0]
	for i := 1; i < len(r); i++ {
		delta := r[i] - r[i-1]
		if (delta > 0) != increasing {
			return false
		}
		if abs := core.Abs(delta); abs < minDelta || abs > maxDelta {
			return false
		}
	}
	return true
}

// CanFix reports whether removing exactly one level makes the report safe.
func CanFix(r Report) bool {
	candidate := make(Report, 0, len(r))
	for skip := range r {
		candidate = candidate[:0]
		candidate = append(candidate, r[:skip]...)
		candidate = append(candidate, r[skip+1:]...)
		if IsSafe(candidate) {
			return true
		}
	}
	return false
}

// SolvePart1 counts safe reports.
func SolvePart1(input string) (core.Answer, error) {
	reports, err := ParseReports(input)
	if err != nil {
		return core.None(), err
	}

	var n uint64
	for _, r := range reports {
		if IsSafe(r) {
			n++
		}
	}
	return core.Some(n), nil
}

// SolvePart2 counts reports that are safe or can be fixed by one removal.
func SolvePart2(input string) (core.Answer, error) {
	reports, err := ParseReports(input)
	if err != nil {
		return core.None(), err
	}

	var n uint64
	for _, r := range reports {
		if IsSafe(r) || CanFix(r) {
			n++
		}
	}
	return core.Some(n), nil
}

func init() {
	registry.Register(registry.Day{
		ID:    "day02",
		Title: "Red-Nosed Reports",
		Part1: registry.Part{Solve: SolvePart1, Expected: core.Some(2)},
		Part2: registry.Part{Solve: SolvePart2, Expected: core.Some(4)},
		Input: defaultInput,
	})
}
