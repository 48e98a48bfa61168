package core

// Mode identifies the active top-level game state.
// Exactly one mode is active at a time.
type Mode uint8

const (
	ModeMenu Mode = iota
	ModeLoading
	ModePlaying
	ModePaused
	ModeGameOver
	ModeLevelComplete
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeLoading:
		return "loading"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game-over"
	case ModeLevelComplete:
		return "level-complete"
	}
	return "unknown"
}
