// Package day01 solves "Historian Hysteria": reconciling two lists of
// location IDs by rank distance and by similarity.
package day01

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/vovakirdan/aoc2024/internal/core"
	"github.com/vovakirdan/aoc2024/internal/registry"
)

//go:embed input.txt
var defaultInput string

// ErrMalformedLine indicates a line that is not exactly two non-negative integers.
var ErrMalformedLine = errors.New("day01: line must hold exactly two non-negative integers")

// ParseLists reads the two columns of the input as two lists.
// Blank lines are skipped.
func ParseLists(input string) (left, right []int, err error) {
	for i, line := range strings.Split(input, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d %q: %w", i+1, line, ErrMalformedLine)
		}

		l, errL := parseID(fields[0])
		r, errR := parseID(fields[1])
		if err := errors.Join(errL, errR); err != nil {
			return nil, nil, fmt.Errorf("line %d %q: %w: %w", i+1, line, ErrMalformedLine, err)
		}
		left = append(left, l)
		right = append(right, r)
	}
	return left, right, nil
}

// parseID parses one location ID. IDs are unsigned.
func parseID(field string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative location ID %d", n)
	}
	return n, nil
}

// TotalDistance sorts both lists and sums the absolute differences of
// values with the same rank. The inputs are not modified.
func TotalDistance(left, right []int) uint64 {
	l := slices.Sorted(slices.Values(left))
	r := slices.Sorted(slices.Values(right))

	var total uint64
	for i := 0; i < len(l) && i < len(r); i++ {
		total += uint64(core.Abs(l[i] - r[i]))
	}
	return total
}

// Similarity sums each left value multiplied by how many times it appears
// in the right list.
func Similarity(left, right []int) uint64 {
	counts := make(map[int]int, len(right))
	for _, v := range right {
		counts[v]++
	}

	var score uint64
	for _, v := range left {
		score += uint64(v) * uint64(counts[v])
	}
	return score
}

// SolvePart1 returns the total distance between the two lists.
func SolvePart1(input string) (core.Answer, error) {
	left, right, err := ParseLists(input)
	if err != nil {
		return core.None(), err
	}
	return core.Some(TotalDistance(left, right)), nil
}

// SolvePart2 returns the similarity score of the two lists.
func SolvePart2(input string) (core.Answer, error) {
	left, right, err := ParseLists(input)
	if err != nil {
		return core.None(), err
	}
	return core.Some(Similarity(left, right)), nil
}

func init() {
	registry.Register(registry.Day{
		ID:    "day01",
		Title: "Historian Hysteria",
		Part1: registry.Part{Solve: SolvePart1, Expected: core.Some(11)},
		Part2: registry.Part{Solve: SolvePart2, Expected: core.Some(31)},
		Input: defaultInput,
	})
}
