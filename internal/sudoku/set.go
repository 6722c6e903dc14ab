package sudoku

import "math/bits"

// valueSet is a bitmask over the values [1, side]; bit v-1 stands for
// value v.
type valueSet uint64

func fullSet(side int) valueSet {
	if side >= 64 {
		return ^valueSet(0)
	}
	return valueSet(1)<<side - 1
}

func (s valueSet) has(v int) bool {
	return s&(valueSet(1)<<(v-1)) != 0
}

func (s valueSet) remove(v int) valueSet {
	return s &^ (valueSet(1) << (v - 1))
}

func (s valueSet) add(v int) valueSet {
	return s | valueSet(1)<<(v-1)
}

func (s valueSet) count() int {
	return bits.OnesCount64(uint64(s))
}

// pick returns the i-th smallest value in s, 0-based. i must be below
// s.count().
func (s valueSet) pick(i int) int {
	for v := 1; ; v++ {
		if !s.has(v) {
			continue
		}
		if i == 0 {
			return v
		}
		i--
	}
}
