package ui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/xuanyeovo/sudoku-tui/internal/game"
)

// TerminalSurface implements Surface on a real terminal via tcell.
type TerminalSurface struct {
	screen    tcell.Screen
	closeOnce sync.Once
}

func NewTerminalSurface() (*TerminalSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return &TerminalSurface{screen: screen}, nil
}

func (t *TerminalSurface) Size() (int, int) { return t.screen.Size() }
func (t *TerminalSurface) Clear()           { t.screen.Clear() }
func (t *TerminalSurface) Show()            { t.screen.Show() }

func (t *TerminalSurface) SetGlyph(x, y int, ch rune, attr Attr) {
	t.screen.SetContent(x, y, ch, nil, styleFor(attr))
}

func (t *TerminalSurface) SetText(x, y int, text string, attr Attr) {
	style := styleFor(attr)
	for _, ch := range text {
		t.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

// NextKey blocks on the terminal event stream. Resizes and interrupts
// surface as KeyNone so the session redraws (or notices a stop request)
// without the machine seeing a key.
func (t *TerminalSurface) NextKey() game.Key {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventResize:
			t.screen.Sync()
			return game.Key{}
		case *tcell.EventInterrupt:
			return game.Key{}
		case *tcell.EventKey:
			return mapKey(ev)
		case nil:
			// screen finalized under us
			return game.Key{}
		}
	}
}

func (t *TerminalSurface) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (t *TerminalSurface) Close() {
	t.closeOnce.Do(t.screen.Fini)
}

func mapKey(ev *tcell.EventKey) game.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.Key{Kind: game.KeyUp}
	case tcell.KeyDown:
		return game.Key{Kind: game.KeyDown}
	case tcell.KeyLeft:
		return game.Key{Kind: game.KeyLeft}
	case tcell.KeyRight:
		return game.Key{Kind: game.KeyRight}
	case tcell.KeyEnter:
		return game.Key{Kind: game.KeyConfirm}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Key{Kind: game.KeyQuit}
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r >= '0' && r <= '9':
			return game.Digit(int(r - '0'))
		case r == 'q' || r == 'Q':
			return game.Key{Kind: game.KeyQuit}
		case r == 'o' || r == 'O':
			return game.Key{Kind: game.KeyConfirm}
		case r == '?':
			return game.Key{Kind: game.KeyHelp}
		}
	}
	return game.Key{Kind: game.KeyUnknown}
}

func styleFor(attr Attr) tcell.Style {
	base := tcell.StyleDefault
	switch attr {
	case AttrInverse:
		return base.Reverse(true)
	case AttrGreen:
		return base.Foreground(tcell.ColorGreen)
	case AttrYellow:
		return base.Foreground(tcell.ColorYellow)
	case AttrRed:
		return base.Foreground(tcell.ColorRed)
	case AttrCell:
		return base.Underline(true)
	case AttrCellCursor:
		return base.Underline(true).Reverse(true)
	case AttrCellFixed:
		return base.Underline(true).Foreground(tcell.ColorRed)
	case AttrCellFixedCursor:
		return base.Underline(true).Foreground(tcell.ColorRed).Background(tcell.ColorWhite)
	default:
		return base
	}
}
