package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validFour() Grid {
	return Grid{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
}

func TestIsComplete(t *testing.T) {
	assert.True(t, IsComplete(validFour(), 2))
	assert.True(t, IsComplete(Grid{{1}}, 1))
}

func TestIsCompleteEmptyCell(t *testing.T) {
	g := validFour()
	g[2][3] = 0
	assert.False(t, IsComplete(g, 2))
}

func TestIsCompleteOutOfRangeValue(t *testing.T) {
	g := validFour()
	g[0][0] = 5
	assert.False(t, IsComplete(g, 2))
}

// A cyclic latin square: every row and column is a permutation, but the
// top-left box contains 2 twice. Only the box rule can reject it.
func TestIsCompleteBoxDuplicate(t *testing.T) {
	g := Grid{
		{1, 2, 3, 4},
		{2, 3, 4, 1},
		{3, 4, 1, 2},
		{4, 1, 2, 3},
	}
	assert.False(t, IsComplete(g, 2))
}

func TestIsCompleteRowDuplicate(t *testing.T) {
	g := validFour()
	g[0][1] = 1
	assert.False(t, IsComplete(g, 2))
}

func TestIsCompleteWrongSide(t *testing.T) {
	assert.False(t, IsComplete(validFour(), 3))
}
