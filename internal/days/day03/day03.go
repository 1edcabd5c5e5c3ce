// Package day03 solves "Mull It Over": extracting multiplication
// instructions from corrupted memory, with do()/don't() switches.
package day03

import (
	_ "embed"

	"github.com/vovakirdan/aoc2024/internal/core"
	"github.com/vovakirdan/aoc2024/internal/registry"
)

//go:embed input.txt
var defaultInput string

// SolvePart1 sums every mul(a,b) in the input.
func SolvePart1(input string) (core.Answer, error) {
	return core.Some(Sum(ScanMuls(input))), nil
}

// SolvePart2 sums the mul(a,b) instructions that are enabled.
func SolvePart2(input string) (core.Answer, error) {
	return core.Some(Eval(ScanAll(input))), nil
}

func init() {
	registry.Register(registry.Day{
		ID:    "day03",
		Title: "Mull It Over",
		Part1: registry.Part{Solve: SolvePart1, Expected: core.Some(161)},
		Part2: registry.Part{Solve: SolvePart2, Expected: core.Some(48)},
		Input: defaultInput,
	})
}
