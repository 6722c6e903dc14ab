// Package game is the finite-state machine behind the interactive
// session: title menu, difficulty setup, live play, win and abort. It
// consumes abstract keys and exposes read accessors for the renderer;
// all terminal concerns live elsewhere.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xuanyeovo/sudoku-tui/internal/sudoku"
)

var Log = logrus.New()

type State int

const (
	StateTitle State = iota
	StateSetup
	StateHelp
	StatePlaying
	StateWon
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateSetup:
		return "setup"
	case StateHelp:
		return "help"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateAborted:
		return "aborted"
	default:
		return "invalid"
	}
}

// Difficulty maps linearly onto the removed-cell fraction: n/10 of the
// grid is punched out.
const (
	MinHardness = 1
	MaxHardness = 6
)

// Title menu entries, top to bottom.
const (
	titleNewGame = iota
	titleHelp
	titleQuit
	titleEntries
)

// Setup screen choices.
const (
	setupStart = iota
	setupBack
	setupChoices
)

// Summary is what the win screen shows.
type Summary struct {
	Elapsed  time.Duration
	Steps    int
	Hardness int
}

// session lives from entering Playing until the player is back at the
// title. The overlay is the only mutable grid; editable membership is
// fixed at mask time.
type session struct {
	overlay   sudoku.Grid
	editable  sudoku.PosSet
	cursor    sudoku.Pos
	startedAt time.Time
	steps     int
}

type Machine struct {
	level int
	rng   *rand.Rand
	now   func() time.Time

	state       State
	done        bool
	menu        int
	hardness    int
	setupChoice int
	quitPrompt  bool
	sess        *session
	summary     Summary
}

// New validates the dimension up front; an out-of-range level is a
// configuration error and never retried. hardness is clamped into its
// range.
func New(level, hardness int, r *rand.Rand) (*Machine, error) {
	if level < sudoku.MinLevel || level > sudoku.MaxLevel {
		return nil, sudoku.ErrInvalidLevel
	}
	return &Machine{
		level:    level,
		rng:      r,
		now:      time.Now,
		state:    StateTitle,
		hardness: clamp(hardness, MinHardness, MaxHardness),
	}, nil
}

func (m *Machine) State() State   { return m.state }
func (m *Machine) Done() bool     { return m.done }
func (m *Machine) Level() int     { return m.level }
func (m *Machine) Side() int      { return m.level * m.level }
func (m *Machine) MenuIndex() int { return m.menu }
func (m *Machine) Hardness() int  { return m.hardness }
func (m *Machine) SetupChoice() int {
	return m.setupChoice
}
func (m *Machine) QuitPrompt() bool { return m.quitPrompt }
func (m *Machine) Summary() Summary { return m.summary }

func (m *Machine) Overlay() sudoku.Grid {
	if m.sess == nil {
		return nil
	}
	return m.sess.overlay
}

func (m *Machine) Cursor() sudoku.Pos {
	if m.sess == nil {
		return sudoku.Pos{}
	}
	return m.sess.cursor
}

func (m *Machine) Editable(p sudoku.Pos) bool {
	return m.sess != nil && m.sess.editable.Has(p)
}

func (m *Machine) Steps() int {
	if m.sess == nil {
		return 0
	}
	return m.sess.steps
}

// HandleKey advances the machine by one input. It never blocks and
// never panics on unexpected keys; unknown input is dropped on the
// floor except where "any key" is the contract.
func (m *Machine) HandleKey(k Key) {
	if m.done || k.Kind == KeyNone {
		return
	}
	switch m.state {
	case StateTitle:
		m.handleTitle(k)
	case StateSetup:
		m.handleSetup(k)
	case StateHelp:
		m.state = StateTitle
	case StatePlaying:
		m.handlePlaying(k)
	case StateWon, StateAborted:
		m.sess = nil
		m.state = StateTitle
	}
}

func (m *Machine) handleTitle(k Key) {
	switch k.Kind {
	case KeyDown:
		if m.menu < titleEntries-1 {
			m.menu++
		}
	case KeyUp:
		if m.menu > 0 {
			m.menu--
		}
	case KeyConfirm:
		switch m.menu {
		case titleNewGame:
			m.setupChoice = setupStart
			m.state = StateSetup
		case titleHelp:
			m.state = StateHelp
		case titleQuit:
			m.quit()
		}
	case KeyQuit:
		m.quit()
	case KeyHelp:
		m.state = StateHelp
	}
}

func (m *Machine) handleSetup(k Key) {
	switch k.Kind {
	case KeyUp:
		if m.hardness < MaxHardness {
			m.hardness++
		}
	case KeyDown:
		if m.hardness > MinHardness {
			m.hardness--
		}
	case KeyLeft:
		m.setupChoice = (m.setupChoice + setupChoices - 1) % setupChoices
	case KeyRight:
		m.setupChoice = (m.setupChoice + 1) % setupChoices
	case KeyConfirm:
		if m.setupChoice == setupStart {
			m.startGame(float64(m.hardness) / 10)
		} else {
			m.state = StateTitle
		}
	case KeyQuit:
		m.state = StateTitle
	}
}

// startGame builds a fresh session: generate the ground truth, mask it,
// then run the first completion check (a zero removal fraction wins on
// the spot).
func (m *Machine) startGame(fraction float64) {
	solution, err := sudoku.Generate(m.level, m.rng)
	if err != nil {
		// Unreachable: the level was validated in New.
		Log.WithError(err).Error("grid generation failed")
		m.state = StateTitle
		return
	}
	overlay, editable := sudoku.Mask(solution, fraction, m.rng)
	m.sess = &session{
		overlay:   overlay,
		editable:  editable,
		startedAt: m.now(),
	}
	m.quitPrompt = false
	m.state = StatePlaying
	Log.WithFields(logrus.Fields{
		"level":    m.level,
		"hardness": m.hardness,
		"masked":   len(editable),
	}).Info("game started")
	m.checkWin()
}

func (m *Machine) handlePlaying(k Key) {
	if m.quitPrompt {
		if k.Kind == KeyConfirm {
			m.recordSummary()
			m.quitPrompt = false
			m.state = StateAborted
			Log.Info("game aborted")
		} else {
			m.quitPrompt = false
		}
		return
	}

	side := m.Side()
	switch k.Kind {
	case KeyQuit:
		m.quitPrompt = true
	case KeyUp:
		if m.sess.cursor.Y > 0 {
			m.sess.cursor.Y--
		}
	case KeyDown:
		if m.sess.cursor.Y < side-1 {
			m.sess.cursor.Y++
		}
	case KeyLeft:
		if m.sess.cursor.X > 0 {
			m.sess.cursor.X--
		}
	case KeyRight:
		if m.sess.cursor.X < side-1 {
			m.sess.cursor.X++
		}
	case KeyDigit:
		p := m.sess.cursor
		if !m.sess.editable.Has(p) {
			return
		}
		m.sess.overlay[p.Y][p.X] = k.Digit
		m.sess.steps++
		m.checkWin()
	}
}

func (m *Machine) checkWin() {
	if !sudoku.IsComplete(m.sess.overlay, m.level) {
		return
	}
	m.recordSummary()
	m.state = StateWon
	Log.WithFields(logrus.Fields{
		"steps":   m.summary.Steps,
		"elapsed": m.summary.Elapsed,
	}).Info("game won")
}

func (m *Machine) recordSummary() {
	m.summary = Summary{
		Elapsed:  m.now().Sub(m.sess.startedAt),
		Steps:    m.sess.steps,
		Hardness: m.hardness,
	}
}

func (m *Machine) quit() {
	m.done = true
	Log.Info("leaving title screen")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
