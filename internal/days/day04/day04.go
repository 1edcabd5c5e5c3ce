// Package day04 solves "Ceres Search": a word search counting straight-line
// occurrences of a word and X-shaped crossings of another.
package day04

import (
	_ "embed"

	"github.com/vovakirdan/aoc2024/internal/core"
	"github.com/vovakirdan/aoc2024/internal/grid"
	"github.com/vovakirdan/aoc2024/internal/registry"
)

//go:embed input.txt
var defaultInput string

const (
	straightWord = "XMAS"
	crossWord    = "MAS"
)

// CountStraight counts occurrences of word along any of the eight directions,
// starting from every cell holding its first character.
func CountStraight(g *grid.Grid, word string) int {
	if word == "" {
		return 0
	}

	count := 0
	probes := make([]grid.Probe, 0, len(core.Directions))
	for pos, c := range g.All() {
		if c != word[0] {
			continue
		}
		probes = probes[:0]
		for _, d := range core.Directions {
			probes = append(probes, grid.Probe{Word: word, Start: pos, Dir: d})
		}
		count += grid.CountMatches(g, probes)
	}
	return count
}

// CountCross counts cells where a 3-letter word crosses itself diagonally:
// both diagonals through the cell read word, forward or backward.
func CountCross(g *grid.Grid, word string) int {
	if len(word) != 3 {
		return 0
	}

	count := 0
	for pos, c := range g.All() {
		if c != word[1] {
			continue
		}
		// Exactly two of the four diagonal reads, not "at least two".
		if grid.CountMatches(g, crossProbes(word, pos)) == 2 {
			count++
		}
	}
	return count
}

// crossProbes builds one probe per diagonal, each starting one step before
// center so the word's middle character lands on center.
func crossProbes(word string, center core.Position) []grid.Probe {
	probes := make([]grid.Probe, 0, len(core.Diagonals))
	for _, d := range core.Diagonals {
		probes = append(probes, grid.Probe{
			Word:  word,
			Start: center.Step(d.Reverse()),
			Dir:   d,
		})
	}
	return probes
}

// SolvePart1 counts XMAS in every direction.
func SolvePart1(input string) (core.Answer, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return core.None(), err
	}
	return core.Some(uint64(CountStraight(g, straightWord))), nil
}

// SolvePart2 counts MAS crosses.
func SolvePart2(input string) (core.Answer, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return core.None(), err
	}
	return core.Some(uint64(CountCross(g, crossWord))), nil
}

func init() {
	registry.Register(registry.Day{
		ID:    "day04",
		Title: "Ceres Search",
		Part1: registry.Part{Solve: SolvePart1, Expected: core.Some(18)},
		Part2: registry.Part{Solve: SolvePart2, Expected: core.Some(9)},
		Input: defaultInput,
	})
}
