package constants

import "time"

// HUD timing
const (
	DefaultMessageDuration = 2 * time.Second
	ErrorFlashDuration     = 350 * time.Millisecond
)
