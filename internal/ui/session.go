package ui

import (
	"errors"
	"sync"

	"github.com/xuanyeovo/sudoku-tui/internal/game"
)

var (
	ErrSessionActive   = errors.New("a render session is already active")
	ErrSurfaceTooSmall = errors.New("drawing surface is too small")
)

// Only one render session may hold the terminal at a time. Start hands
// out the exclusivity token; Close returns it.
var (
	activeMu sync.Mutex
	active   bool
)

// Session is one exclusive run of the draw/input loop, from Start to
// Close. Run may be called from a different goroutine than Stop; the
// two share nothing but the stop flag and the run lock.
type Session struct {
	surface Surface
	machine *game.Machine

	mu        sync.Mutex
	rendering bool

	// held for as long as Run is inside the loop; Stop waits on it
	running sync.Mutex

	closeOnce sync.Once
}

// Start claims the process-wide render slot. It fails fast with
// ErrSessionActive while another session is live; the live session is
// not affected.
func Start(surface Surface, machine *game.Machine) (*Session, error) {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active {
		return nil, ErrSessionActive
	}
	active = true
	return &Session{
		surface:   surface,
		machine:   machine,
		rendering: true,
	}, nil
}

// Run drives the machine until it reports done, a stop request arrives,
// or drawing fails. A stop request does not interrupt the blocking read;
// it makes the key (or wakeup) that ends the read unwind the loop
// instead of being processed.
func (s *Session) Run() error {
	s.running.Lock()
	defer s.running.Unlock()

	for {
		if s.stopped() {
			Log.Debug("render loop unwinding on stop request")
			return nil
		}
		if err := draw(s.surface, s.machine); err != nil {
			return err
		}
		k := s.surface.NextKey()
		if s.stopped() {
			Log.Debug("render loop unwinding on stop request")
			return nil
		}
		s.machine.HandleKey(k)
		if s.machine.Done() {
			return nil
		}
	}
}

func (s *Session) stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.rendering
}

// Stop requests a cooperative unwind and blocks until Run has actually
// left the loop. Safe to call when Run never started or has already
// returned.
func (s *Session) Stop() {
	s.mu.Lock()
	s.rendering = false
	s.mu.Unlock()

	s.surface.Interrupt()

	// taking the run lock means Run has left the loop
	s.running.Lock()
	s.running.Unlock() //nolint:staticcheck
}

// Close stops the loop if needed and releases the exclusivity token.
// Idempotent.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.Stop()
		activeMu.Lock()
		active = false
		activeMu.Unlock()
	})
}
