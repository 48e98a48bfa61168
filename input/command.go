package input

// CommandType discriminates parsed commands.
type CommandType uint8

const (
	CommandNone CommandType = iota

	// Navigation
	CommandMove // motion without operator

	// Range actions
	CommandDeleteChar     // x
	CommandOperatorMotion // d/c/y + motion, or doubled operator
	CommandReplaceStart   // r armed, awaiting character
	CommandReplaceExecute // r + char

	// Text entry
	CommandTypeKey       // character matched against the target phrase
	CommandTypeBackspace // rewind one position
	CommandTypeComplete  // target phrase fully typed
	CommandExitTyping    // Escape in text entry

	// Notifications and control
	CommandClearBuffer // buffer reset, no world effect
	CommandConfirm     // Enter
	CommandCancel      // Escape with no pending buffer
)

// MotionOp identifies the motion algorithm.
type MotionOp uint8

const (
	MotionNone MotionOp = iota
	MotionLeft
	MotionRight
	MotionUp
	MotionDown
	MotionWordForward  // w
	MotionWordBackward // b
	MotionWordEnd      // e
	MotionLineStart    // 0
	MotionLineEnd      // $
	MotionFirstNonBlank
	MotionLine // doubled operator shorthand
)

// OperatorOp identifies the operator prefix.
type OperatorOp uint8

const (
	OperatorNone OperatorOp = iota
	OperatorDelete
	OperatorChange
	OperatorYank
)

// Command is a fully parsed keystroke sequence. Produced by the Machine,
// consumed exactly once by the active mode handler.
type Command struct {
	Type     CommandType
	Motion   MotionOp
	Operator OperatorOp
	Count    int // effective repeat count, minimum 1
	Char     rune
	Correct  bool   // TypeKey: matched the target phrase index
	Buffer   string // keystroke sequence that produced this command
}
