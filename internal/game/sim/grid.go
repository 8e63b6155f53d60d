// Package sim implements the mazehunt simulation engine: the occupancy
// grid, maze generation, collision resolution and NPC behavior. It is pure
// logic with no platform dependencies, driven one fixed tick at a time.
package sim

// Grid is the wall occupancy map for one level: rows × cols cells, true
// means blocked. Dimensions are fixed at construction. The grid is written
// only during generation and read-only for the rest of the level.
type Grid struct {
	Rows, Cols int
	cells      []bool // row-major: index = row*Cols + col
}

// NewGrid creates an all-open grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// InBounds returns true if (row, col) is within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Blocked reports whether the cell at (row, col) is a wall.
// Out-of-bounds coordinates are always open, so edge checks at the map
// border are implicit in every query.
func (g *Grid) Blocked(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row*g.Cols+col]
}

// SetWall marks the cell at (row, col) as blocked.
// Out-of-bounds coordinates are silently ignored.
func (g *Grid) SetWall(row, col int) {
	if g.InBounds(row, col) {
		g.cells[row*g.Cols+col] = true
	}
}

// Neighbors describes the blocked state of a cell's 4-neighborhood.
type Neighbors struct {
	Up, Down, Left, Right bool
}

// Neighbors4 returns the blocked flags of the four orthogonal neighbors
// of (row, col). Neighbors outside the grid read as open.
func (g *Grid) Neighbors4(row, col int) Neighbors {
	return Neighbors{
		Up:    g.Blocked(row-1, col),
		Down:  g.Blocked(row+1, col),
		Left:  g.Blocked(row, col-1),
		Right: g.Blocked(row, col+1),
	}
}

// WallCount returns the number of blocked cells.
func (g *Grid) WallCount() int {
	n := 0
	for _, b := range g.cells {
		if b {
			n++
		}
	}
	return n
}

// WallCells returns the coordinates of every blocked cell, row-major order.
func (g *Grid) WallCells() [][2]int {
	cells := make([][2]int, 0, g.WallCount())
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.Blocked(row, col) {
				cells = append(cells, [2]int{row, col})
			}
		}
	}
	return cells
}
