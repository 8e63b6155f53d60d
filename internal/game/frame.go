package game

import (
	"sort"

	"github.com/vkulagin/mazehunt/internal/core"
	"github.com/vkulagin/mazehunt/internal/game/sim"
)

// WallTile is one occupied grid cell with its resolved visual variant.
type WallTile struct {
	Row, Col int
	Tile     sim.Tile
}

// AgentView is the renderer-facing snapshot of one agent.
type AgentView struct {
	Pos    core.Vec
	Sprite string // Atlas sprite name
}

// Frame is everything the renderer needs for one tick: resolved positions,
// tiles, the camera offset and the session HUD values. Draw entries are
// pre-sorted by y (stable, lowest y first) so painting order follows map
// depth.
type Frame struct {
	Tiles  []WallTile
	Agents []AgentView

	CamX, CamY   float64 // Viewport offset in map pixels
	ViewW, ViewH float64 // Viewport dimensions in map pixels

	Score     int
	HighScore int
	Level     int
	Phase     core.Phase
	Paused    bool
}

// Frame builds the render frame for the current tick. The viewport is a
// fixed-size window centered on the player and clamped to map bounds; when
// the whole map fits, the offset stays zero.
func (g *Game) Frame(viewW, viewH float64) Frame {
	f := Frame{
		ViewW:     viewW,
		ViewH:     viewH,
		Score:     g.score,
		HighScore: g.highScore,
		Level:     g.level,
		Phase:     g.phase,
		Paused:    g.paused,
	}

	center := g.player.Center()
	f.CamX = core.ClampF(center.X-viewW/2, 0, maxF(0, g.params.MapW()-viewW))
	f.CamY = core.ClampF(center.Y-viewH/2, 0, maxF(0, g.params.MapH()-viewH))

	for _, c := range g.grid.WallCells() {
		f.Tiles = append(f.Tiles, WallTile{
			Row:  c[0],
			Col:  c[1],
			Tile: sim.TileFor(g.grid.Neighbors4(c[0], c[1])),
		})
	}

	for _, n := range g.npcs {
		if !n.Alive {
			continue
		}
		f.Agents = append(f.Agents, AgentView{
			Pos:    n.Pos,
			Sprite: spriteForKind(n.Kind),
		})
	}
	f.Agents = append(f.Agents, AgentView{
		Pos:    g.player.Pos,
		Sprite: "player",
	})

	sort.SliceStable(f.Agents, func(i, j int) bool {
		return f.Agents[i].Pos.Y < f.Agents[j].Pos.Y
	})

	return f
}

// spriteForKind maps an NPC kind to its atlas sprite name.
func spriteForKind(k sim.Kind) string {
	if k == sim.KindPursuer {
		return "pursuer"
	}
	return "quarry"
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
