package constants

import "time"

// Enemy movement intervals. Behaviors step at most once per interval.
const (
	PatrolStepInterval = 450 * time.Millisecond
	ChaserStepInterval = 700 * time.Millisecond
)
