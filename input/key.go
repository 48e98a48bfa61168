package input

// SpecialKey identifies non-printable keys the parser cares about.
// Everything else arrives as a rune.
type SpecialKey uint8

const (
	SpecialNone SpecialKey = iota // Rune carries the key
	SpecialEscape
	SpecialEnter
	SpecialBackspace
)

// Key is one decoded keystroke. The terminal layer translates its own
// event type into this before handing it to the Machine, keeping the
// parser free of terminal dependencies.
type Key struct {
	Rune    rune
	Special SpecialKey
}

// RuneKey wraps a printable character.
func RuneKey(r rune) Key { return Key{Rune: r} }

// Esc, Enter and Backspace are the special keys in the fixed vocabulary.
var (
	Esc       = Key{Special: SpecialEscape}
	Enter     = Key{Special: SpecialEnter}
	Backspace = Key{Special: SpecialBackspace}
)
