package game

import (
	"fmt"
	"hash/fnv"

	"github.com/vkulagin/mazehunt/internal/core"
)

// NPCSnapshot captures one NPC's observable state.
type NPCSnapshot struct {
	Kind  string
	Alive bool
	X, Y  float64
}

// Snapshot captures the complete observable game state for determinism
// testing and replay verification.
type Snapshot struct {
	Tick      uint64
	Phase     core.Phase
	Score     int
	HighScore int
	Level     int
	PlayerX   float64
	PlayerY   float64
	WallCount int
	NPCs      []NPCSnapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
		Level:     g.level,
		PlayerX:   g.player.Pos.X,
		PlayerY:   g.player.Pos.Y,
		WallCount: g.grid.WallCount(),
	}
	for _, n := range g.npcs {
		s.NPCs = append(s.NPCs, NPCSnapshot{
			Kind:  n.Kind.String(),
			Alive: n.Alive,
			X:     n.Pos.X,
			Y:     n.Pos.Y,
		})
	}
	return s
}

// Hash returns a stable digest of the snapshot, for cheap equality checks
// in determinism tests.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%d|%d|%d|%.4f|%.4f|%d",
		s.Tick, s.Phase, s.Score, s.HighScore, s.Level, s.PlayerX, s.PlayerY, s.WallCount)
	for _, n := range s.NPCs {
		fmt.Fprintf(h, "|%s|%t|%.4f|%.4f", n.Kind, n.Alive, n.X, n.Y)
	}
	return h.Sum64()
}
