package game

// KeyKind is the abstract input vocabulary of the state machine. The
// terminal adapter maps raw key events onto it; the machine never sees
// scan codes.
type KeyKind int

const (
	// KeyNone is a wakeup with no input attached (resize, interrupt).
	// The machine ignores it entirely.
	KeyNone KeyKind = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyDigit
	KeyConfirm
	KeyQuit
	KeyHelp
	KeyUnknown
)

type Key struct {
	Kind  KeyKind
	Digit int // set for KeyDigit only, in [0, 9]
}

func Digit(n int) Key {
	return Key{Kind: KeyDigit, Digit: n}
}
