package day03

import "fmt"

// Eval sums the products of Mul instructions seen while enabled.
// Execution starts enabled; Do enables and Dont disables.
func Eval(instrs []Instruction) uint64 {
	enabled := true
	var sum uint64
	for _, ins := range instrs {
		switch ins := ins.(type) {
		case Mul:
			if enabled {
				sum += ins.product()
			}
		case Do:
			enabled = true
		case Dont:
			enabled = false
		default:
			panic(fmt.Sprintf("day03: unhandled instruction %T", ins))
		}
	}
	return sum
}

// Sum adds the products of every Mul instruction, ignoring Do and Dont.
func Sum(instrs []Instruction) uint64 {
	var sum uint64
	for _, ins := range instrs {
		if m, ok := ins.(Mul); ok {
			sum += m.product()
		}
	}
	return sum
}

func (m Mul) product() uint64 {
	return uint64(m.A) * uint64(m.B)
}
