package day03

import (
	"strconv"
	"strings"
)

// Instruction is one recognized token. The set of kinds is closed:
// Mul, Do and Dont are the only implementations.
type Instruction interface {
	instruction()
}

// Mul multiplies its two operands.
type Mul struct {
	A, B uint32
}

// Do enables subsequent Mul instructions.
type Do struct{}

// Dont disables subsequent Mul instructions.
type Dont struct{}

func (Mul) instruction()  {}
func (Do) instruction()   {}
func (Dont) instruction() {}

// matcher tries to recognize a literal at the start of s.
// On success it returns the instruction and the number of bytes consumed.
type matcher func(s string) (Instruction, int, bool)

// Matchers in priority order. "don't()" shares a prefix with "do()" and
// must be tried first.
var (
	mulOnly     = []matcher{matchMul}
	allMatchers = []matcher{matchMul, matchDont, matchDo}
)

// ScanMuls returns every mul(a,b) token in text, left to right.
// do() and don't() are treated as noise.
func ScanMuls(text string) []Instruction {
	return scan(text, mulOnly)
}

// ScanAll returns every mul(a,b), do() and don't() token in text, left to right.
func ScanAll(text string) []Instruction {
	return scan(text, allMatchers)
}

// scan walks text with a cursor. At each position the matchers are tried in
// order; a hit emits an instruction and jumps past it, a miss skips one byte.
func scan(text string, matchers []matcher) []Instruction {
	var out []Instruction
	pos := 0
	for pos < len(text) {
		advance := 1
		for _, m := range matchers {
			if ins, n, ok := m(text[pos:]); ok {
				out = append(out, ins)
				advance = n
				break
			}
		}
		pos += advance
	}
	return out
}

func matchDo(s string) (Instruction, int, bool) {
	return matchLiteral(s, "do()", Do{})
}

func matchDont(s string) (Instruction, int, bool) {
	return matchLiteral(s, "don't()", Dont{})
}

func matchLiteral(s, lit string, ins Instruction) (Instruction, int, bool) {
	if !strings.HasPrefix(s, lit) {
		return nil, 0, false
	}
	return ins, len(lit), true
}

// matchMul recognizes mul(<uint>,<uint>) with no sign or whitespace.
func matchMul(s string) (Instruction, int, bool) {
	const prefix = "mul("
	if !strings.HasPrefix(s, prefix) {
		return nil, 0, false
	}
	n := len(prefix)

	a, used, ok := parseUint32(s[n:])
	if !ok {
		return nil, 0, false
	}
	n += used

	if n >= len(s) || s[n] != ',' {
		return nil, 0, false
	}
	n++

	b, used, ok := parseUint32(s[n:])
	if !ok {
		return nil, 0, false
	}
	n += used

	if n >= len(s) || s[n] != ')' {
		return nil, 0, false
	}
	n++

	return Mul{A: a, B: b}, n, true
}

// parseUint32 reads the leading run of ASCII digits of s.
// It fails on an empty run or a value that does not fit in 32 bits.
func parseUint32(s string) (uint32, int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, 0, false
	}

	v, err := strconv.ParseUint(s[:end], 10, 32)
	if err != nil {
		return 0, 0, false
	}
	return uint32(v), end, true
}
