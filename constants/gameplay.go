package constants

// Scoring
const (
	PurgeScore     = 25  // per corrupted tile restored to pathway
	WordBonus      = 100 // completing a retype phrase
	EnemyKillScore = 50  // enemy reduced to zero health by a range action
)

// Combat
const (
	RangeHitDamage    = 40 // damage to an enemy caught in a range action
	ContactDamage     = 15 // integrity lost on enemy contact
	EnemyHealth       = 80
	PlayerIntegrity   = 100
	ContactCooldownMs = 800 // per-enemy grace period between contact hits
)

// Action cost weights. Tunable; the only hard requirement is
// monotonicity in span size and count.
const (
	CostPerTile    = 2  // character-wise range actions, per tile
	CostPerRow     = 10 // line-wise range actions, per row
	CostDeleteChar = 1  // x, per repeat
	CostReplace    = 1  // r<char>
	CostYankDiv    = 2  // yank prices at per-tile cost divided by this
)

// Resource meter
const (
	ResourceMax      = 100.0
	ResourceRegenSec = 12.0 // points regained per second of game time
)
