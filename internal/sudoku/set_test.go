package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullSet(t *testing.T) {
	assert.Equal(t, 1, fullSet(1).count())
	assert.Equal(t, 9, fullSet(9).count())
	assert.Equal(t, 64, fullSet(64).count())
	for v := 1; v <= 9; v++ {
		assert.True(t, fullSet(9).has(v))
	}
	assert.False(t, fullSet(9).has(10))
}

func TestRemoveAdd(t *testing.T) {
	s := fullSet(4).remove(3)
	assert.Equal(t, 3, s.count())
	assert.False(t, s.has(3))
	assert.True(t, s.add(3).has(3))
}

func TestPick(t *testing.T) {
	s := fullSet(9).remove(1).remove(5)
	want := []int{2, 3, 4, 6, 7, 8, 9}
	for i, v := range want {
		assert.Equal(t, v, s.pick(i))
	}
}
