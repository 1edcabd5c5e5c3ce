// Package registry provides a global registry of puzzle days.
// Days register themselves in init() functions, allowing the driver
// to discover and run them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/aoc2024/internal/core"
)

// Solver computes the answer of one puzzle part from the whole input text.
// It returns core.None() when the part is not implemented yet and an error
// when the input does not match the day's grammar.
type Solver func(input string) (core.Answer, error)

// Part couples a solver with the answer expected for the day's default input.
type Part struct {
	Solve    Solver
	Expected core.Answer
}

// Day is a registered puzzle: two parts plus its embedded default input.
type Day struct {
	// ID is the unique identifier used by the CLI and run history (e.g., "day03").
	ID string

	// Title is the human-readable puzzle name (e.g., "Mull It Over").
	Title string

	Part1 Part
	Part2 Part

	// Input is the default puzzle input embedded in the binary.
	Input string
}

// Parts returns both parts in order.
func (d Day) Parts() [2]Part {
	return [2]Part{d.Part1, d.Part2}
}

// DayInfo contains metadata about a registered day.
type DayInfo struct {
	ID    string
	Title string
}

var (
	days = make(map[string]Day)
	mu   sync.RWMutex
)

// Register adds a day to the registry.
// Typically called from a day's init() function.
// Panics if the ID is empty or already registered.
func Register(d Day) {
	mu.Lock()
	defer mu.Unlock()

	if d.ID == "" {
		panic("registry: day without ID")
	}
	if _, exists := days[d.ID]; exists {
		panic(fmt.Sprintf("registry: day %q already registered", d.ID))
	}

	days[d.ID] = d
}

// List returns information about all registered days, sorted by ID.
func List() []DayInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DayInfo, 0, len(days))
	for id, d := range days {
		result = append(result, DayInfo{
			ID:    id,
			Title: d.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// All returns every registered day, sorted by ID.
func All() []Day {
	infos := List()

	mu.RLock()
	defer mu.RUnlock()

	result := make([]Day, 0, len(infos))
	for _, info := range infos {
		result = append(result, days[info.ID])
	}
	return result
}

// Get returns the day registered under id.
// Returns an error if the ID is not registered.
func Get(id string) (Day, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := days[id]
	if !ok {
		return Day{}, fmt.Errorf("registry: unknown day %q", id)
	}
	return d, nil
}

// Last returns the day with the greatest ID, the one usually being worked on.
func Last() (Day, error) {
	infos := List()
	if len(infos) == 0 {
		return Day{}, fmt.Errorf("registry: no days registered")
	}
	return Get(infos[len(infos)-1].ID)
}

// Exists checks if a day with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := days[id]
	return ok
}
