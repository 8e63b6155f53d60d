package sim

import "math/rand"

// GenerateMaze builds the wall grid for one level.
//
// A fixed intersecting pair goes in first: a 3-cell horizontal segment at
// the anchor and a 5-cell vertical segment centered on its middle cell,
// forming a plus of 7 cells. This guarantees at least one non-trivial
// structure regardless of randomness. Additional free-standing segments are
// then placed by rejection sampling until the target count is reached or
// the attempt budget runs out. Falling short of the target is silent,
// accepted degradation — that level simply has fewer walls.
//
// Connectivity is deliberately not verified: the grid stays sparse by
// construction, so open space is abundant.
func GenerateMaze(rng *rand.Rand, p Params) *Grid {
	g := NewGrid(p.Rows, p.Cols)

	placeFixedPair(g, p)

	placed := 0
	for attempt := 0; attempt < p.WallBudget && placed < p.WallTarget; attempt++ {
		if cells, ok := attemptSegment(rng, g, p); ok {
			for _, c := range cells {
				g.SetWall(c[0], c[1])
			}
			placed++
		}
	}

	return g
}

// placeFixedPair writes the plus-shaped intersecting pair at the anchor.
func placeFixedPair(g *Grid, p Params) {
	row, col := p.AnchorRow, p.AnchorCol

	for i := 0; i < 3; i++ {
		g.SetWall(row, col+i)
	}
	mid := col + 1
	for i := -2; i <= 2; i++ {
		g.SetWall(row+i, mid)
	}
}

// attemptSegment rolls one candidate wall segment and validates it.
// Returns the segment's cells and true only when the whole segment can be
// committed: every cell fits inside the border inset and neither the cells
// nor any of their 4-neighbors touch an existing wall. Acceptance is atomic
// per segment — a single bad cell rejects the entire candidate.
func attemptSegment(rng *rand.Rand, g *Grid, p Params) ([][2]int, bool) {
	length := p.WallMinLen + rng.Intn(p.WallMaxLen-p.WallMinLen+1)
	horizontal := rng.Intn(2) == 0

	// Start coordinate is confined so the whole segment fits inside the
	// 1-cell border inset.
	var cells [][2]int
	if horizontal {
		maxRow := g.Rows - 2
		maxCol := g.Cols - 1 - length
		if maxRow < 1 || maxCol < 1 {
			return nil, false
		}
		row := 1 + rng.Intn(maxRow)
		col := 1 + rng.Intn(maxCol)
		for i := 0; i < length; i++ {
			cells = append(cells, [2]int{row, col + i})
		}
	} else {
		maxRow := g.Rows - 1 - length
		maxCol := g.Cols - 2
		if maxRow < 1 || maxCol < 1 {
			return nil, false
		}
		row := 1 + rng.Intn(maxRow)
		col := 1 + rng.Intn(maxCol)
		for i := 0; i < length; i++ {
			cells = append(cells, [2]int{row + i, col})
		}
	}

	for _, c := range cells {
		if touchesWall(g, c[0], c[1]) {
			return nil, false
		}
	}
	return cells, true
}

// touchesWall reports whether the cell or any of its 4-neighbors is blocked.
// This adjacency exclusion keeps placed segments topologically separate.
func touchesWall(g *Grid, row, col int) bool {
	if g.Blocked(row, col) {
		return true
	}
	n := g.Neighbors4(row, col)
	return n.Up || n.Down || n.Left || n.Right
}
