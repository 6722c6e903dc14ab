// Package ui runs the interactive render session: draw the view for
// the current machine state, block on the next key, feed it back. The
// drawing surface is abstracted so the session and the views can be
// exercised against a fake in tests.
package ui

import (
	"github.com/sirupsen/logrus"

	"github.com/xuanyeovo/sudoku-tui/internal/game"
)

var Log = logrus.New()

// Attr is an abstract display attribute. The set mirrors the six color
// pairs of the game's screens; the four Cell variants additionally
// carry an underline in the terminal adapter.
type Attr int

const (
	AttrNormal Attr = iota
	AttrInverse
	AttrGreen
	AttrYellow
	AttrRed
	AttrCell
	AttrCellCursor
	AttrCellFixed
	AttrCellFixedCursor
)

// Surface is the drawing and input boundary. NextKey blocks until the
// next key arrives; Interrupt wakes a blocked NextKey with a KeyNone.
// Close releases the underlying terminal and is safe to call more than
// once.
type Surface interface {
	Size() (width, height int)
	Clear()
	SetGlyph(x, y int, ch rune, attr Attr)
	SetText(x, y int, text string, attr Attr)
	Show()
	NextKey() game.Key
	Interrupt()
	Close()
}
