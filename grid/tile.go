package grid

// TileKind is the semantic category of a grid cell. It governs what
// range actions may do to the tile.
type TileKind uint8

const (
	KindPathway TileKind = iota
	KindDataNode
	KindCorrupted
	KindBarrier
	KindExitNode
	KindDecoration
)

func (k TileKind) String() string {
	switch k {
	case KindPathway:
		return "pathway"
	case KindDataNode:
		return "data-node"
	case KindCorrupted:
		return "corrupted"
	case KindBarrier:
		return "barrier"
	case KindExitNode:
		return "exit-node"
	case KindDecoration:
		return "decoration"
	}
	return "unknown"
}

// Tile is one grid cell. Tiles are value types; the owning Grid is the
// only mutation path.
type Tile struct {
	Glyph        rune
	Kind         TileKind
	RequiredWord string // retype phrase for data-node runs, set on the word start
	WordStart    bool
}

// Blank reports whether the tile counts as whitespace for word motions.
func (t Tile) Blank() bool {
	return t.Glyph == 0 || t.Glyph == ' '
}
