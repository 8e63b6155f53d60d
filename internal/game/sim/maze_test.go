package sim

import (
	"math/rand"
	"testing"
)

func TestGenerateMazeDeterminism(t *testing.T) {
	p := DefaultParams()

	g1 := GenerateMaze(rand.New(rand.NewSource(12345)), p)
	g2 := GenerateMaze(rand.New(rand.NewSource(12345)), p)

	cells1 := g1.WallCells()
	cells2 := g2.WallCells()

	if len(cells1) != len(cells2) {
		t.Fatalf("Wall count mismatch: %d vs %d", len(cells1), len(cells2))
	}
	for i := range cells1 {
		if cells1[i] != cells2[i] {
			t.Errorf("Wall cell %d mismatch: %v vs %v", i, cells1[i], cells2[i])
		}
	}
}

func TestGenerateMazeFixedPair(t *testing.T) {
	p := DefaultParams()

	// The anchor plus must be present regardless of the seed
	for seed := int64(0); seed < 10; seed++ {
		g := GenerateMaze(rand.New(rand.NewSource(seed)), p)

		for i := 0; i < 3; i++ {
			if !g.Blocked(p.AnchorRow, p.AnchorCol+i) {
				t.Errorf("seed %d: horizontal anchor cell (%d, %d) not blocked",
					seed, p.AnchorRow, p.AnchorCol+i)
			}
		}
		mid := p.AnchorCol + 1
		for i := -2; i <= 2; i++ {
			if !g.Blocked(p.AnchorRow+i, mid) {
				t.Errorf("seed %d: vertical anchor cell (%d, %d) not blocked",
					seed, p.AnchorRow+i, mid)
			}
		}
	}
}

func TestGenerateMazeBorderClear(t *testing.T) {
	p := DefaultParams()

	for seed := int64(0); seed < 20; seed++ {
		g := GenerateMaze(rand.New(rand.NewSource(seed)), p)

		for col := 0; col < g.Cols; col++ {
			if g.Blocked(0, col) || g.Blocked(g.Rows-1, col) {
				t.Fatalf("seed %d: wall on border row at col %d", seed, col)
			}
		}
		for row := 0; row < g.Rows; row++ {
			if g.Blocked(row, 0) || g.Blocked(row, g.Cols-1) {
				t.Fatalf("seed %d: wall on border col at row %d", seed, row)
			}
		}
	}
}

// TestGenerateMazeSegmentsIsolated verifies the adjacency exclusion: every
// connected group of wall cells is either the anchor plus or a straight
// segment within the configured length range, and no two groups touch.
func TestGenerateMazeSegmentsIsolated(t *testing.T) {
	p := DefaultParams()

	for seed := int64(0); seed < 20; seed++ {
		g := GenerateMaze(rand.New(rand.NewSource(seed)), p)

		components := wallComponents(g)
		if len(components) > 1+p.WallTarget {
			t.Fatalf("seed %d: %d wall components, expected at most %d",
				seed, len(components), 1+p.WallTarget)
		}

		for _, comp := range components {
			if containsCell(comp, p.AnchorRow, p.AnchorCol) {
				if len(comp) != 7 {
					t.Errorf("seed %d: anchor plus has %d cells, expected 7", seed, len(comp))
				}
				continue
			}
			if !isStraight(comp) {
				t.Errorf("seed %d: free segment %v is not straight", seed, comp)
			}
			if len(comp) < p.WallMinLen || len(comp) > p.WallMaxLen {
				t.Errorf("seed %d: free segment of length %d outside [%d, %d]",
					seed, len(comp), p.WallMinLen, p.WallMaxLen)
			}
		}
	}
}

// wallComponents groups blocked cells into 4-connected components.
func wallComponents(g *Grid) [][][2]int {
	seen := make(map[[2]int]bool)
	var components [][][2]int

	for _, start := range g.WallCells() {
		if seen[start] {
			continue
		}
		var comp [][2]int
		stack := [][2]int{start}
		seen[start] = true
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, c)
			for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				next := [2]int{c[0] + d[0], c[1] + d[1]}
				if !seen[next] && g.Blocked(next[0], next[1]) {
					seen[next] = true
					stack = append(stack, next)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}

func containsCell(comp [][2]int, row, col int) bool {
	for _, c := range comp {
		if c[0] == row && c[1] == col {
			return true
		}
	}
	return false
}

// isStraight reports whether all cells share a row or share a column.
func isStraight(comp [][2]int) bool {
	sameRow, sameCol := true, true
	for _, c := range comp {
		if c[0] != comp[0][0] {
			sameRow = false
		}
		if c[1] != comp[0][1] {
			sameCol = false
		}
	}
	return sameRow || sameCol
}

func TestGridBlockedOutOfBounds(t *testing.T) {
	g := NewGrid(15, 20)
	g.SetWall(5, 5)

	// Out-of-bounds cells always read as open
	if g.Blocked(-1, 0) || g.Blocked(0, -1) || g.Blocked(15, 0) || g.Blocked(0, 20) {
		t.Error("Out-of-bounds cell reported as blocked")
	}
	if !g.Blocked(5, 5) {
		t.Error("Set wall not reported as blocked")
	}
}
