package sim

// Tile identifies the visual variant of a wall cell, derived from its
// 4-neighborhood. The renderer uses it to pick the sprite; the engine owns
// the mapping so the grid and its presentation metadata stay consistent.
type Tile int

const (
	// TileJoiner is used when a wall cell has blocked neighbors on both
	// axes, and as the fallback for an isolated cell.
	TileJoiner Tile = iota
	TileVertMiddle
	TileTopCap
	TileBottomCap
	TileHorizMiddle
	TileLeftCap
	TileRightCap
)

// String returns the tile variant name.
func (t Tile) String() string {
	switch t {
	case TileJoiner:
		return "joiner"
	case TileVertMiddle:
		return "vert_middle"
	case TileTopCap:
		return "top_cap"
	case TileBottomCap:
		return "bottom_cap"
	case TileHorizMiddle:
		return "horiz_middle"
	case TileLeftCap:
		return "left_cap"
	case TileRightCap:
		return "right_cap"
	default:
		return "unknown"
	}
}

// TileFor resolves a wall cell's neighborhood pattern to its tile variant.
// Total over all 16 neighbor combinations: any cell with neighbors on both
// axes is a joiner, vertical-only runs get vertical variants, horizontal-only
// runs get horizontal variants, and an isolated cell falls back to joiner.
func TileFor(n Neighbors) Tile {
	vertical := n.Up || n.Down
	horizontal := n.Left || n.Right

	switch {
	case vertical && horizontal:
		return TileJoiner
	case vertical:
		switch {
		case n.Up && n.Down:
			return TileVertMiddle
		case n.Down:
			return TileTopCap
		default:
			return TileBottomCap
		}
	case horizontal:
		switch {
		case n.Left && n.Right:
			return TileHorizMiddle
		case n.Right:
			return TileLeftCap
		default:
			return TileRightCap
		}
	default:
		return TileJoiner
	}
}
