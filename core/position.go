package core

// Position is an integer grid coordinate pair.
// Callers validate against the owning grid before use.
type Position struct {
	X, Y int
}
