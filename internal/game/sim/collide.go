package sim

import "github.com/vkulagin/mazehunt/internal/core"

// Blocker is an agent that can obstruct a move. Quarry NPCs and dead NPCs
// are never blockers; catching a quarry is a gameplay event, not an
// obstruction.
type Blocker interface {
	Hitbox() core.Box
	Solid() bool
}

// Solid reports whether the NPC obstructs other agents.
func (n *NPC) Solid() bool {
	return n.Alive && n.Kind == KindPursuer
}

// Solid always holds for the player.
func (p *Player) Solid() bool {
	return true
}

// ResolveMove resolves an attempted move into the allowed position.
//
// The X and Y components are tested independently: each axis move is
// accepted only if the hitbox at the candidate position overlaps neither a
// wall cell nor a solid blocker, letting the agent slide along a wall when
// one axis is obstructed. The others slice must not contain the moving
// agent itself. The caller owns the subsequent map-bounds clamp.
func ResolveMove(a *Agent, wantX, wantY float64, g *Grid, p Params, others []Blocker) (float64, float64) {
	x, y := a.Pos.X, a.Pos.Y

	if wantX != x && positionFree(a, wantX, y, g, p, others) {
		x = wantX
	}
	if wantY != y && positionFree(a, x, wantY, g, p, others) {
		y = wantY
	}
	return x, y
}

// positionFree tests a candidate position against the grid and blockers.
func positionFree(a *Agent, x, y float64, g *Grid, p Params, others []Blocker) bool {
	hb := a.HitboxAt(x, y)

	if hitboxTouchesWall(hb, g, p) {
		return false
	}
	for _, o := range others {
		if !o.Solid() {
			continue
		}
		if hb.Overlaps(o.Hitbox()) {
			return false
		}
	}
	return true
}

// hitboxTouchesWall reports whether the hitbox overlaps any blocked cell.
// Only the cells the box spans are inspected.
func hitboxTouchesWall(hb core.Box, g *Grid, p Params) bool {
	minCol := int(hb.X / p.TileSize)
	maxCol := int((hb.Right() - 1e-9) / p.TileSize)
	minRow := int(hb.Y / p.TileSize)
	maxRow := int((hb.Bottom() - 1e-9) / p.TileSize)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !g.Blocked(row, col) {
				continue
			}
			cell := core.NewBox(float64(col)*p.TileSize, float64(row)*p.TileSize, p.TileSize, p.TileSize)
			if hb.Overlaps(cell) {
				return true
			}
		}
	}
	return false
}
