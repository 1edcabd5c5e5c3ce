package grid

import (
	"iter"

	"github.com/vovakirdan/aoc2024/internal/core"
)

// Lookup is a bounds-checked character source. *Grid implements it.
type Lookup interface {
	At(p core.Position) (byte, bool)
}

// Probe is one candidate occurrence of Word: it starts at Start and
// advances one step in Dir after each character.
type Probe struct {
	Word  string
	Start core.Position
	Dir   core.Direction
}

// Cells yields the position each character of the word is expected at,
// together with that character. Positions are computed on demand.
func (p Probe) Cells() iter.Seq2[core.Position, byte] {
	return func(yield func(core.Position, byte) bool) {
		pos := p.Start
		for i := 0; i < len(p.Word); i++ {
			if !yield(pos, p.Word[i]) {
				return
			}
			pos = pos.Step(p.Dir)
		}
	}
}

// Match reports whether every cell of the probe is present in l and holds
// the expected character. It stops at the first absent or mismatched cell.
// An empty word always matches.
func Match(l Lookup, p Probe) bool {
	for pos, want := range p.Cells() {
		got, ok := l.At(pos)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// CountMatches returns how many of the probes match.
func CountMatches(l Lookup, probes []Probe) int {
	n := 0
	for _, p := range probes {
		if Match(l, p) {
			n++
		}
	}
	return n
}
