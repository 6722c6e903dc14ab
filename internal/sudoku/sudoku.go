// Package sudoku holds the pure puzzle logic: generating a solved grid,
// masking it into a playable puzzle and checking a candidate for
// completion. It has no knowledge of the terminal.
package sudoku

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Grid side length is Level*Level; values are tracked in a 64-bit mask,
// which caps the level at 8 (a 64x64 grid).
const (
	MinLevel = 1
	MaxLevel = 8
)

var ErrInvalidLevel = errors.New("level must be between 1 and 8")

// Grid is a side x side matrix indexed [y][x]. A zero cell is empty.
type Grid [][]int

func NewGrid(level int) Grid {
	side := level * level
	g := make(Grid, side)
	for y := range g {
		g[y] = make([]int, side)
	}
	return g
}

func (g Grid) Side() int { return len(g) }

func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for y, row := range g {
		c[y] = make([]int, len(row))
		copy(c[y], row)
	}
	return c
}

// Pos addresses a cell; X runs along a row, Y down a column.
type Pos struct {
	X, Y int
}

// PosSet is the editable-position set produced by Mask. Membership is
// the sole authority on whether a cell may be edited.
type PosSet map[Pos]struct{}

func (s PosSet) Has(p Pos) bool {
	_, ok := s[p]
	return ok
}

func (s PosSet) Add(p Pos) {
	s[p] = struct{}{}
}

// boxIndex maps a cell to one of the level*level non-overlapping boxes.
func boxIndex(x, y, level int) int {
	return x/level + y/level*level
}
