package sudoku

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	for _, level := range []int{1, 2, 3} {
		t.Run(fmt.Sprintf("level %d", level), func(t *testing.T) {
			r := rand.New(rand.NewPCG(1, uint64(level)))
			for trial := range 100 {
				g, err := Generate(level, r)
				require.NoError(t, err)
				require.True(t, IsComplete(g, level),
					"trial %d produced an invalid grid:\n%v", trial, g)
			}
		})
	}
}

func TestGenerateTrivialLevel(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	g, err := Generate(1, r)
	require.NoError(t, err)
	assert.Equal(t, Grid{{1}}, g)
}

func TestGenerateInvalidLevel(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, level := range []int{-1, 0, 9, 100} {
		_, err := Generate(level, r)
		assert.ErrorIs(t, err, ErrInvalidLevel, "level %d", level)
	}
}
