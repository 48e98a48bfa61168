package input

// ParserMode selects which subsystem owns raw keys.
type ParserMode uint8

const (
	ModeNavigate ParserMode = iota // movement, operators, counts
	ModeTyping                     // text entry against a target phrase
)

// State tracks the navigation-mode buffer machine.
type State uint8

const (
	StateIdle        State = iota // awaiting initial key
	StateCount                    // accumulating numeric prefix
	StateOperatorWait             // after d/c/y, awaiting motion or doubled key
	StateReplaceWait              // after r, awaiting replacement character
)
