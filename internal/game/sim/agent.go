package sim

import "github.com/vkulagin/mazehunt/internal/core"

// Kind tags an NPC's behavior variant.
type Kind int

const (
	// KindPursuer threatens the player; contact ends the run.
	KindPursuer Kind = iota
	// KindQuarry is caught by the player for points; it never blocks movement.
	KindQuarry
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPursuer:
		return "pursuer"
	case KindQuarry:
		return "quarry"
	default:
		return "unknown"
	}
}

// Agent is the shared state of the player and NPCs: a continuous pixel
// position with a fixed sprite box and a smaller centered hitbox.
type Agent struct {
	Pos  core.Vec // Top-left corner of the sprite box, pixels
	W, H float64  // Sprite box dimensions

	hitboxInset float64
}

// NewAgent creates an agent at the given position.
func NewAgent(pos core.Vec, size, hitboxInset float64) Agent {
	return Agent{Pos: pos, W: size, H: size, hitboxInset: hitboxInset}
}

// SpriteBox returns the agent's full sprite bounds.
func (a *Agent) SpriteBox() core.Box {
	return core.NewBox(a.Pos.X, a.Pos.Y, a.W, a.H)
}

// Hitbox returns the collision box: the sprite box shrunk by the fixed
// inset on every side, keeping the same center.
func (a *Agent) Hitbox() core.Box {
	return a.SpriteBox().Inset(a.hitboxInset)
}

// HitboxAt returns the hitbox the agent would have at position (x, y).
func (a *Agent) HitboxAt(x, y float64) core.Box {
	return core.NewBox(x, y, a.W, a.H).Inset(a.hitboxInset)
}

// Center returns the sprite center.
func (a *Agent) Center() core.Vec {
	return a.SpriteBox().Center()
}

// ClampTo restricts the agent position to [0, mapW-W] x [0, mapH-H].
// Called after every resolved move so positions never leave the map.
func (a *Agent) ClampTo(mapW, mapH float64) {
	a.Pos.X = core.ClampF(a.Pos.X, 0, mapW-a.W)
	a.Pos.Y = core.ClampF(a.Pos.Y, 0, mapH-a.H)
}

// Player is the player-controlled agent. The animation frame index is
// carried for the renderer; the current sprite set uses a single frame.
type Player struct {
	Agent
	Frame int
}

// NPC is a non-player agent with behavioral state.
type NPC struct {
	Agent
	Kind  Kind
	Alive bool // Irreversibly false once a quarry is caught

	// Wander state
	wanderTarget   core.Vec
	wanderDeadline uint64 // Tick at which the wander target expires

	// Stuck detection
	stuckTicks int
}

// NewNPC creates a live NPC of the given kind.
func NewNPC(kind Kind, pos core.Vec, size, hitboxInset float64) *NPC {
	return &NPC{
		Agent: NewAgent(pos, size, hitboxInset),
		Kind:  kind,
		Alive: true,
	}
}
