package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/xuanyeovo/sudoku-tui/internal/game"
	"github.com/xuanyeovo/sudoku-tui/internal/sudoku"
)

const version = "1.0.0"

const gameTitle = "数独 Sudoku"

// draw renders one frame for the current machine state. A surface below
// the minimum size for that state is a host I/O failure, not something
// to paper over.
func draw(s Surface, m *game.Machine) error {
	w, h := s.Size()
	minW, minH := minSize(m)
	if w < minW || h < minH {
		return fmt.Errorf("%w: have %dx%d, need at least %dx%d",
			ErrSurfaceTooSmall, w, h, minW, minH)
	}

	s.Clear()
	switch m.State() {
	case game.StateTitle:
		drawTitle(s, m, w, h)
	case game.StateSetup:
		drawSetup(s, m, w, h)
	case game.StateHelp:
		drawHelp(s)
	case game.StatePlaying:
		drawPlaying(s, m, w, h)
	case game.StateWon:
		drawWon(s, m, w)
	case game.StateAborted:
		drawAborted(s, w)
	}
	drawVersion(s, h)
	s.Show()
	return nil
}

func minSize(m *game.Machine) (int, int) {
	w, h := 24, 12
	if m.State() == game.StatePlaying {
		side, level := m.Side(), m.Level()
		w = max(w, 2*side+1+2)
		h = max(h, 5+side+level+1+4)
	}
	return w, h
}

var titleEntries = []struct {
	label string
	k     float64
}{
	{"New game", 0.4},
	{"Help", 0.6},
	{"Quit", 0.8},
}

func drawTitle(s Surface, m *game.Machine, w, h int) {
	drawCentered(s, w, fracY(h, 0.1), gameTitle, AttrNormal)
	for i, e := range titleEntries {
		attr := AttrNormal
		if i == m.MenuIndex() {
			attr = AttrInverse
		}
		drawBoxedLabel(s, w, h, e.label, e.k, attr)
	}
}

var setupChoices = []string{"Start (o)", "Back (q)"}

// starAttrs color the difficulty stars green to red, two per shade.
var starAttrs = []Attr{AttrGreen, AttrGreen, AttrYellow, AttrYellow, AttrRed, AttrRed}

func drawSetup(s Surface, m *game.Machine, w, h int) {
	drawCentered(s, w, fracY(h, 0.1), gameTitle, AttrNormal)

	// Difficulty selector: label, one star per point, the number.
	const inner = 11
	y := fracY(h, 0.4)
	x := (w - inner) / 2
	s.SetGlyph(x-1, y-1, '┌', AttrInverse)
	s.SetText(x, y-1, strings.Repeat("-", inner), AttrInverse)
	s.SetGlyph(x+inner, y-1, '┐', AttrInverse)
	s.SetGlyph(x-1, y, '|', AttrInverse)
	s.SetGlyph(x+inner, y, '|', AttrInverse)
	s.SetGlyph(x-1, y+1, '└', AttrInverse)
	s.SetText(x, y+1, strings.Repeat("-", inner), AttrInverse)
	s.SetGlyph(x+inner, y+1, '┘', AttrInverse)
	s.SetText(x, y, strings.Repeat(" ", inner), AttrInverse)
	s.SetText(x, y, "Diff", AttrInverse)
	s.SetGlyph(x+inner-1, y, rune('0'+m.Hardness()), AttrInverse)
	for c := range m.Hardness() {
		s.SetGlyph(x+4+c, y, '*', starAttrs[c])
	}

	y = fracY(h, 0.8)
	xs := w / len(setupChoices)
	for i, label := range setupChoices {
		attr := AttrNormal
		if i == m.SetupChoice() {
			attr = AttrInverse
		}
		s.SetText(i*xs+xs/2-runewidth.StringWidth(label)/2, y, label, attr)
	}
}

var helpLines = []string{
	"A terminal Sudoku.",
	"",
	"Fill the empty cells so that every row, column and",
	"box contains each number exactly once. Fill them",
	"all and you win.",
	"",
	"Arrows move the cursor, digits fill a cell, 0",
	"clears it, q quits.",
	"",
	"Press any key to continue...",
}

func drawHelp(s Surface) {
	for i, line := range helpLines {
		s.SetText(2, 2+i, line, AttrNormal)
	}
}

func drawPlaying(s Surface, m *game.Machine, w, h int) {
	var (
		side    = m.Side()
		level   = m.Level()
		overlay = m.Overlay()
		cursor  = m.Cursor()

		gridW = 2*side + 1
		gridH = side + level + 1
		begY  = 5
		begX  = (w - gridW) / 2

		seg = strings.Repeat("═", 2*level-1)
		top = "╔" + strings.Join(repeat(seg, level), "╦") + "╗"
		mid = "╠" + strings.Join(repeat(seg, level), "╬") + "╣"
		bot = "╚" + strings.Join(repeat(seg, level), "╩") + "╝"
	)

	s.SetText(begX, begY, top, AttrNormal)
	offY := 0
	for y := range gridH - 2 {
		if (y+1)%(level+1) == 0 {
			s.SetText(begX, begY+1+y, mid, AttrNormal)
			offY--
			continue
		}
		offX := 0
		for x := range gridW {
			switch {
			case x%(2*level) == 0:
				s.SetGlyph(begX+x, begY+1+y, '║', AttrNormal)
				offX--
			case x%2 == 0:
				s.SetGlyph(begX+x, begY+1+y, ' ', AttrNormal)
				offX--
			default:
				p := sudoku.Pos{X: x + offX, Y: y + offY}
				s.SetGlyph(begX+x, begY+1+y, cellRune(overlay[p.Y][p.X]), cellAttr(m, p, cursor))
			}
		}
	}
	s.SetText(begX, begY+gridH-1, bot, AttrNormal)

	if m.QuitPrompt() {
		drawCentered(s, w, h-4, "Quit to title? Current progress will be lost", AttrNormal)
		drawCentered(s, w, h-3, "Press Enter to confirm, any other key to cancel", AttrNormal)
	}
}

func cellAttr(m *game.Machine, p, cursor sudoku.Pos) Attr {
	switch {
	case p == cursor && m.Editable(p):
		return AttrCellCursor
	case p == cursor:
		return AttrCellFixedCursor
	case m.Editable(p):
		return AttrCell
	default:
		return AttrCellFixed
	}
}

// cellRune shows values past 9 as letters; they can only come from the
// generator, digit input never writes them.
func cellRune(v int) rune {
	switch {
	case v == 0:
		return ' '
	case v <= 9:
		return rune('0' + v)
	default:
		return rune('A' + v - 10)
	}
}

func drawWon(s Surface, m *game.Machine, w int) {
	sum := m.Summary()
	lines := []string{
		"You won the game!",
		fmt.Sprintf("Time: %.1fs", sum.Elapsed.Seconds()),
		fmt.Sprintf("Steps: %d", sum.Steps),
		fmt.Sprintf("Difficulty: %d", sum.Hardness),
		"Press any key to continue...",
	}
	for i, line := range lines {
		drawCentered(s, w, 5+i, line, AttrNormal)
	}
}

func drawAborted(s Surface, w int) {
	lines := []string{
		"Game aborted",
		"Progress has been discarded.",
		"Press any key to continue...",
	}
	for i, line := range lines {
		drawCentered(s, w, 5+i, line, AttrNormal)
	}
}

func drawVersion(s Surface, h int) {
	s.SetText(1, h-2, "Ver "+version, AttrNormal)
}

// drawCentered measures display width, not byte or rune count, so CJK
// labels center properly.
func drawCentered(s Surface, w, y int, text string, attr Attr) {
	s.SetText(centerX(w, text), y, text, attr)
}

func centerX(w int, text string) int {
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	return x
}

func fracY(h int, k float64) int {
	return int(float64(h) * k)
}

func drawBoxedLabel(s Surface, w, h int, label string, k float64, attr Attr) {
	var (
		l = runewidth.StringWidth(label)
		y = fracY(h, k)
		x = centerX(w, label)
	)
	s.SetGlyph(x-1, y-1, '╔', attr)
	s.SetText(x, y-1, strings.Repeat("═", l), attr)
	s.SetGlyph(x+l, y-1, '╗', attr)
	s.SetGlyph(x-1, y, '║', attr)
	s.SetGlyph(x+l, y, '║', attr)
	s.SetGlyph(x-1, y+1, '╚', attr)
	s.SetText(x, y+1, strings.Repeat("═", l), attr)
	s.SetGlyph(x+l, y+1, '╝', attr)
	s.SetText(x, y, label, attr)
}

func repeat[T any](value T, times int) (res []T) {
	for range times {
		res = append(res, value)
	}
	return
}
