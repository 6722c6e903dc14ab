package ui

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuanyeovo/sudoku-tui/internal/game"
)

func TestDrawEveryState(t *testing.T) {
	f := newFakeSurface()
	m := newTestMachine(t)

	script := []game.Key{
		{Kind: game.KeyHelp},    // title -> help
		{Kind: game.KeyUnknown}, // help -> title
		{Kind: game.KeyConfirm}, // title -> setup
		{Kind: game.KeyConfirm}, // setup -> playing
		{Kind: game.KeyQuit},    // quit prompt
		{Kind: game.KeyConfirm}, // -> aborted
	}
	require.NoError(t, draw(f, m))
	for _, k := range script {
		m.HandleKey(k)
		require.NoError(t, draw(f, m), "state %v", m.State())
	}
	assert.Equal(t, game.StateAborted, m.State())
	assert.Greater(t, f.frameCount(), 0)
}

func TestDrawPlayingGridFrame(t *testing.T) {
	f := newFakeSurface()
	m, err := game.New(2, 1, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	m.HandleKey(game.Key{Kind: game.KeyConfirm})
	m.HandleKey(game.Key{Kind: game.KeyConfirm})
	require.Equal(t, game.StatePlaying, m.State())

	require.NoError(t, draw(f, m))

	// level 2: 9-wide, 7-tall frame at (35, 5) on an 80x24 surface
	const begX, begY = 35, 5
	assert.Equal(t, '╔', f.glyph(begX, begY))
	assert.Equal(t, '╦', f.glyph(begX+4, begY))
	assert.Equal(t, '╗', f.glyph(begX+8, begY))
	assert.Equal(t, '╠', f.glyph(begX, begY+3))
	assert.Equal(t, '╚', f.glyph(begX, begY+6))
	assert.Equal(t, '╩', f.glyph(begX+4, begY+6))
	assert.Equal(t, '╝', f.glyph(begX+8, begY+6))

	// cursor starts at the top-left cell
	attr := f.attr(begX+1, begY+1)
	assert.Contains(t, []Attr{AttrCellCursor, AttrCellFixedCursor}, attr)

	// version line
	assert.Equal(t, 'V', f.glyph(1, 22))
}

// A level-1 game removes floor(0.1*1) = 0 cells, so entering Playing
// wins immediately; the win summary must render with zero steps.
func TestDrawInstantWin(t *testing.T) {
	f := newFakeSurface()
	m, err := game.New(1, 1, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	m.HandleKey(game.Key{Kind: game.KeyConfirm})
	m.HandleKey(game.Key{Kind: game.KeyConfirm})
	require.Equal(t, game.StateWon, m.State())
	assert.Equal(t, 0, m.Summary().Steps)

	require.NoError(t, draw(f, m))
	assert.Equal(t, 'Y', f.glyph(centerX(80, "You won the game!"), 5))
}

func TestCellRune(t *testing.T) {
	assert.Equal(t, ' ', cellRune(0))
	assert.Equal(t, '1', cellRune(1))
	assert.Equal(t, '9', cellRune(9))
	assert.Equal(t, 'A', cellRune(10))
	assert.Equal(t, 'G', cellRune(16))
}

func TestCenterX(t *testing.T) {
	assert.Equal(t, 38, centerX(80, "abcd"))
	// CJK glyphs are two columns wide
	assert.Equal(t, 38, centerX(80, "数独"))
	assert.Equal(t, 0, centerX(2, "too wide to fit"))
}
