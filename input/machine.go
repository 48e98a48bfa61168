package input

// Machine is the keystroke parser. It accumulates a numeric prefix, an
// optional operator and a pending-replace flag, and emits fully formed
// Commands into a FIFO queue. Unparseable sequences degrade to buffer
// resets; no input sequence panics.
type Machine struct {
	mode     ParserMode
	state    State
	keyTable *KeyTable

	// Navigation buffer state
	prefix   []rune // numeric prefix digits
	operator OperatorOp

	// Typing mode state
	target []rune
	index  int

	// Raw sequence for HUD display
	cmdBuffer []rune

	queue []Command
}

// NewMachine creates a parser in navigation mode with an empty buffer.
func NewMachine() *Machine {
	return &Machine{
		keyTable:  DefaultKeyTable(),
		cmdBuffer: make([]rune, 0, 16),
	}
}

// Mode returns the active parser mode.
func (m *Machine) Mode() ParserMode { return m.mode }

// Pending returns the raw buffered sequence for HUD display.
func (m *Machine) Pending() string { return string(m.cmdBuffer) }

// Drain removes and returns all queued commands, FIFO.
func (m *Machine) Drain() []Command {
	q := m.queue
	m.queue = nil
	return q
}

// StartTyping switches to text-entry mode with the given target phrase.
// Any pending navigation buffer is discarded.
func (m *Machine) StartTyping(phrase string) {
	m.reset()
	m.mode = ModeTyping
	m.target = []rune(phrase)
	m.index = 0
}

// StopTyping returns to navigation mode.
func (m *Machine) StopTyping() {
	m.mode = ModeNavigate
	m.target = nil
	m.index = 0
	m.reset()
}

// TypingProgress returns how many characters of the target phrase have
// been matched.
func (m *Machine) TypingProgress() int { return m.index }

// HandleKey consumes one keystroke, queueing zero or more commands.
func (m *Machine) HandleKey(k Key) {
	if m.mode == ModeTyping {
		m.handleTypingKey(k)
		return
	}
	m.handleNavigateKey(k)
}

// === Navigation mode ===

func (m *Machine) handleNavigateKey(k Key) {
	// Armed replace consumes exactly one more key. Only a character key
	// completes it; anything else clears the buffer without emitting.
	if m.state == StateReplaceWait {
		if k.Special == SpecialNone {
			m.emit(Command{Type: CommandReplaceExecute, Char: k.Rune, Count: m.effectiveCount()})
		} else {
			m.reset()
		}
		return
	}

	switch k.Special {
	case SpecialEscape:
		if m.state != StateIdle {
			m.resetNotify()
			return
		}
		m.emit(Command{Type: CommandCancel})
		return
	case SpecialEnter:
		if m.state != StateIdle {
			m.resetNotify()
			return
		}
		m.emit(Command{Type: CommandConfirm})
		return
	case SpecialBackspace:
		if m.state != StateIdle {
			m.resetNotify()
		}
		return
	}

	m.handleRune(k.Rune)
}

func (m *Machine) handleRune(key rune) {
	m.cmdBuffer = append(m.cmdBuffer, key)

	// Numeric prefix: 1-9 starts or extends, 0 extends an existing prefix.
	// A lone 0 falls through to the line-start motion.
	if key >= '1' && key <= '9' || (key == '0' && len(m.prefix) > 0) {
		m.accumulate(key)
		if m.state == StateIdle {
			m.state = StateCount
		}
		return
	}

	if op, ok := m.keyTable.Operators[key]; ok {
		if m.operator == OperatorNone {
			m.operator = op
			m.state = StateOperatorWait
			return
		}
		if m.operator == op {
			// Doubled operator key: whole-line shorthand
			m.emit(Command{
				Type:     CommandOperatorMotion,
				Operator: op,
				Motion:   MotionLine,
				Count:    m.effectiveCount(),
			})
			return
		}
		m.resetNotify()
		return
	}

	if motion, ok := m.keyTable.Motions[key]; ok {
		if m.operator != OperatorNone {
			m.emit(Command{
				Type:     CommandOperatorMotion,
				Operator: m.operator,
				Motion:   motion,
				Count:    m.effectiveCount(),
			})
			return
		}
		m.emit(Command{Type: CommandMove, Motion: motion, Count: m.effectiveCount()})
		return
	}

	switch key {
	case 'x':
		if m.operator != OperatorNone {
			m.resetNotify()
			return
		}
		m.emit(Command{Type: CommandDeleteChar, Count: m.effectiveCount()})
	case 'r':
		if m.operator != OperatorNone {
			m.resetNotify()
			return
		}
		count := m.effectiveCount()
		m.emit(Command{Type: CommandReplaceStart, Count: count})
		m.state = StateReplaceWait
		m.cmdBuffer = append(m.cmdBuffer, 'r')
	default:
		m.resetNotify()
	}
}

// === Typing mode ===

func (m *Machine) handleTypingKey(k Key) {
	switch k.Special {
	case SpecialEscape:
		m.emit(Command{Type: CommandExitTyping})
		return
	case SpecialBackspace:
		if m.index > 0 {
			m.index--
		}
		m.emit(Command{Type: CommandTypeBackspace})
		return
	case SpecialEnter:
		return
	}

	if m.index < len(m.target) && m.target[m.index] == k.Rune {
		m.index++
		m.emit(Command{Type: CommandTypeKey, Char: k.Rune, Correct: true})
		if m.index == len(m.target) {
			m.emit(Command{Type: CommandTypeComplete})
		}
		return
	}
	// Mismatch: no index advance
	m.emit(Command{Type: CommandTypeKey, Char: k.Rune, Correct: false})
}

// === Helpers ===

// emit queues the command and clears the navigation buffer. Every
// emission resets numeric prefix and pending operator.
func (m *Machine) emit(cmd Command) {
	if cmd.Count == 0 {
		cmd.Count = 1
	}
	cmd.Buffer = string(m.cmdBuffer)
	m.queue = append(m.queue, cmd)
	m.reset()
}

// reset clears buffer state without emitting.
func (m *Machine) reset() {
	m.state = StateIdle
	m.prefix = m.prefix[:0]
	m.operator = OperatorNone
	m.cmdBuffer = m.cmdBuffer[:0]
}

// resetNotify clears buffer state and emits the reset notification.
func (m *Machine) resetNotify() {
	m.emit(Command{Type: CommandClearBuffer})
}

func (m *Machine) effectiveCount() int {
	n := 0
	for _, d := range m.prefix {
		n = n*10 + int(d-'0')
		if n > 9999 {
			return 9999
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

func (m *Machine) accumulate(key rune) {
	if len(m.prefix) < 4 {
		m.prefix = append(m.prefix, key)
	}
}
