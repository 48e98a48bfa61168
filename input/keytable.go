package input

// KeyTable maps the fixed command vocabulary to parser behavior.
// h j k l move; w b e word motions; 0 ^ $ line motions; d c y operators;
// x delete-one; r replace-one.
type KeyTable struct {
	Motions   map[rune]MotionOp
	Operators map[rune]OperatorOp
}

// DefaultKeyTable returns the fixed vocabulary. Remapping is out of scope.
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Motions: map[rune]MotionOp{
			'h': MotionLeft,
			'j': MotionDown,
			'k': MotionUp,
			'l': MotionRight,
			'w': MotionWordForward,
			'b': MotionWordBackward,
			'e': MotionWordEnd,
			'0': MotionLineStart,
			'^': MotionFirstNonBlank,
			'$': MotionLineEnd,
		},
		Operators: map[rune]OperatorOp{
			'd': OperatorDelete,
			'c': OperatorChange,
			'y': OperatorYank,
		},
	}
}
