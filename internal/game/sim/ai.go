package sim

import (
	"math"
	"math/rand"

	"github.com/vkulagin/mazehunt/internal/core"
)

// Behavior drives NPC steering. Each live NPC evaluates a small state
// machine every tick: line-of-sight to the player selects between Wander
// and the kind's target-directed behavior (flee for quarry, chase for
// pursuer).
type Behavior struct {
	rng    *rand.Rand
	p      Params
	tickMS float64
}

// NewBehavior creates a behavior engine with an injected RNG source.
func NewBehavior(rng *rand.Rand, p Params, tickMS float64) *Behavior {
	return &Behavior{rng: rng, p: p, tickMS: tickMS}
}

// SpeedScale returns the per-level speed multiplier. This exponential ramp
// is the only difficulty progression mechanism.
func (b *Behavior) SpeedScale(level int) float64 {
	return math.Pow(b.p.DifficultyBase, float64(level-1))
}

// fixedBlocker is a positional snapshot of an agent taken before the move
// phase, so every NPC this tick resolves against the same world state.
type fixedBlocker struct {
	box   core.Box
	solid bool
}

func (f fixedBlocker) Hitbox() core.Box { return f.box }
func (f fixedBlocker) Solid() bool      { return f.solid }

// Step advances every live NPC by one tick.
//
// The tick is two-phase: steering intents for all NPCs are computed first
// against a positional snapshot of the world, then the moves are resolved
// and applied. No NPC observes another's mid-tick position.
func (b *Behavior) Step(tick uint64, npcs []*NPC, player *Player, g *Grid, level int) {
	// Phase 1: intents against the snapshot.
	wants := make([]core.Vec, len(npcs))
	for i, n := range npcs {
		if !n.Alive {
			wants[i] = n.Pos
			continue
		}
		vel := b.steer(tick, n, player, g, level)
		wants[i] = n.Pos.Add(vel)
	}

	// Positional snapshot for collision resolution. NPCs resolve against
	// walls and solid NPCs only; the player never blocks NPC movement, so
	// a chasing pursuer can close the final gap onto the player.
	snap := make([]fixedBlocker, 0, len(npcs))
	for _, n := range npcs {
		snap = append(snap, fixedBlocker{box: n.Hitbox(), solid: n.Solid()})
	}

	// Phase 2: resolve and apply.
	for i, n := range npcs {
		if !n.Alive {
			continue
		}
		others := make([]Blocker, 0, len(snap)-1)
		for j, fb := range snap {
			if j == i {
				continue
			}
			others = append(others, fb)
		}

		prev := n.Pos
		x, y := ResolveMove(&n.Agent, wants[i].X, wants[i].Y, g, b.p, others)
		n.Pos = core.V(x, y)
		n.ClampTo(b.p.MapW(), b.p.MapH())

		// Stuck detection: barely moving for too many consecutive ticks
		// triggers wander re-pick and flee jitter.
		if n.Pos.Sub(prev).Manhattan() < b.p.StuckDelta {
			n.stuckTicks++
		} else {
			n.stuckTicks = 0
		}
	}
}

// steer computes the NPC's desired velocity for this tick.
func (b *Behavior) steer(tick uint64, n *NPC, player *Player, g *Grid, level int) core.Vec {
	scale := b.SpeedScale(level)
	los := HasLineOfSight(n.Center(), player.Center(), g, b.p)

	switch n.Kind {
	case KindQuarry:
		if los {
			return b.flee(n, player, scale)
		}
	case KindPursuer:
		if los && n.Center().Sub(player.Center()).Len() <= b.p.ChaseRadius {
			return b.chase(n, player, scale)
		}
	}
	return b.wander(tick, n, g, scale)
}

// flee steers directly away from the player, with edge-safety clamping and
// corner-escape jitter.
func (b *Behavior) flee(n *NPC, player *Player, scale float64) core.Vec {
	speed := b.p.FleeSpeed * scale
	vel := n.Center().Sub(player.Center()).Normalized().Scale(speed)

	// Zero out any outward component inside the edge padding, so a fleeing
	// quarry presses along the boundary instead of into it.
	atEdge := false
	if n.Pos.X <= b.p.EdgePadding && vel.X < 0 {
		vel.X = 0
		atEdge = true
	}
	if n.Pos.X >= b.p.MapW()-n.W-b.p.EdgePadding && vel.X > 0 {
		vel.X = 0
		atEdge = true
	}
	if n.Pos.Y <= b.p.EdgePadding && vel.Y < 0 {
		vel.Y = 0
		atEdge = true
	}
	if n.Pos.Y >= b.p.MapH()-n.H-b.p.EdgePadding && vel.Y > 0 {
		vel.Y = 0
		atEdge = true
	}

	if atEdge || n.stuckTicks > b.p.StuckLimit {
		vel.X += (b.rng.Float64()*2 - 1) * speed
		vel.Y += (b.rng.Float64()*2 - 1) * speed
	}
	return vel
}

// chase steers directly toward the player.
func (b *Behavior) chase(n *NPC, player *Player, scale float64) core.Vec {
	speed := b.p.ChaseSpeed * scale
	return player.Center().Sub(n.Center()).Normalized().Scale(speed)
}

// wander steers toward the stored wander target, re-picking it when it is
// reached, expired, or the NPC has been stuck too long.
func (b *Behavior) wander(tick uint64, n *NPC, g *Grid, scale float64) core.Vec {
	toTarget := n.wanderTarget.Sub(n.Pos)
	needNew := toTarget.Len() < b.p.WanderReach ||
		tick >= n.wanderDeadline ||
		n.stuckTicks > b.p.StuckLimit

	if needNew {
		if target, ok := b.pickWanderTarget(n, g); ok {
			n.wanderTarget = target
		}
		n.wanderDeadline = tick + b.cooldownTicks()
		n.stuckTicks = 0
		toTarget = n.wanderTarget.Sub(n.Pos)
	}

	return toTarget.Normalized().Scale(b.p.WanderSpeed * scale)
}

// pickWanderTarget rejection-samples an open grid cell and returns the
// sprite position whose center lands on that cell's center. Attempts are
// bounded; on exhaustion the current target is kept.
func (b *Behavior) pickWanderTarget(n *NPC, g *Grid) (core.Vec, bool) {
	const maxAttempts = 50

	for i := 0; i < maxAttempts; i++ {
		row := b.rng.Intn(g.Rows)
		col := b.rng.Intn(g.Cols)
		if g.Blocked(row, col) {
			continue
		}
		center := core.V(
			(float64(col)+0.5)*b.p.TileSize,
			(float64(row)+0.5)*b.p.TileSize,
		)
		return center.Sub(core.V(n.W/2, n.H/2)), true
	}
	return core.Vec{}, false
}

// cooldownTicks rolls the randomized wander re-pick cooldown, converted
// from milliseconds to simulation ticks.
func (b *Behavior) cooldownTicks() uint64 {
	ms := b.p.WanderCooldownMinMS +
		b.rng.Float64()*(b.p.WanderCooldownMaxMS-b.p.WanderCooldownMinMS)
	ticks := ms / b.tickMS
	if ticks < 1 {
		ticks = 1
	}
	return uint64(ticks)
}

// HasLineOfSight reports whether the straight path between two points is
// clear of walls. The path is sampled at fixed pixel intervals from start
// to end; the check succeeds only if every sample lands on an open cell.
func HasLineOfSight(from, to core.Vec, g *Grid, p Params) bool {
	delta := to.Sub(from)
	dist := delta.Len()
	if dist == 0 {
		return true
	}

	dir := delta.Normalized()
	for d := 0.0; d < dist; d += p.LOSStep {
		pt := from.Add(dir.Scale(d))
		if g.Blocked(int(pt.Y/p.TileSize), int(pt.X/p.TileSize)) {
			return false
		}
	}
	return !g.Blocked(int(to.Y/p.TileSize), int(to.X/p.TileSize))
}
