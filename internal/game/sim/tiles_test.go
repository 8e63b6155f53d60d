package sim

import "testing"

func TestTileForAllNeighborhoods(t *testing.T) {
	tests := []struct {
		name     string
		n        Neighbors
		expected Tile
	}{
		{"isolated", Neighbors{}, TileJoiner},
		{"up only", Neighbors{Up: true}, TileBottomCap},
		{"down only", Neighbors{Down: true}, TileTopCap},
		{"up and down", Neighbors{Up: true, Down: true}, TileVertMiddle},
		{"left only", Neighbors{Left: true}, TileRightCap},
		{"right only", Neighbors{Right: true}, TileLeftCap},
		{"left and right", Neighbors{Left: true, Right: true}, TileHorizMiddle},
		{"up and left", Neighbors{Up: true, Left: true}, TileJoiner},
		{"up and right", Neighbors{Up: true, Right: true}, TileJoiner},
		{"down and left", Neighbors{Down: true, Left: true}, TileJoiner},
		{"down and right", Neighbors{Down: true, Right: true}, TileJoiner},
		{"tee up", Neighbors{Up: true, Left: true, Right: true}, TileJoiner},
		{"tee down", Neighbors{Down: true, Left: true, Right: true}, TileJoiner},
		{"tee left", Neighbors{Up: true, Down: true, Left: true}, TileJoiner},
		{"tee right", Neighbors{Up: true, Down: true, Right: true}, TileJoiner},
		{"cross", Neighbors{Up: true, Down: true, Left: true, Right: true}, TileJoiner},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TileFor(tc.n); got != tc.expected {
				t.Errorf("TileFor(%+v) = %v, expected %v", tc.n, got, tc.expected)
			}
		})
	}
}

func TestTileStringIsSpriteSuffix(t *testing.T) {
	// Tile names double as sprite atlas key suffixes
	names := map[Tile]string{
		TileJoiner:      "joiner",
		TileVertMiddle:  "vert_middle",
		TileTopCap:      "top_cap",
		TileBottomCap:   "bottom_cap",
		TileHorizMiddle: "horiz_middle",
		TileLeftCap:     "left_cap",
		TileRightCap:    "right_cap",
	}
	for tile, name := range names {
		if tile.String() != name {
			t.Errorf("Tile(%d).String() = %q, expected %q", tile, tile.String(), name)
		}
	}
}
