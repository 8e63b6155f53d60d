// Package game implements the mazehunt arcade game on top of the sim
// engine: session state, the player tick, catch resolution and rendering.
package game

import (
	"math/rand"

	"github.com/vkulagin/mazehunt/internal/assets"
	"github.com/vkulagin/mazehunt/internal/core"
	"github.com/vkulagin/mazehunt/internal/game/sim"
	"github.com/vkulagin/mazehunt/internal/registry"
)

// levelClearDelayTicks is how long the level-complete overlay stays up
// before the next level starts (~1.5s at 60 ticks/s).
const levelClearDelayTicks = 90

// Package-level configuration applied before game creation, following the
// platform convention of configuring games through setters.
var (
	packageAtlas  *assets.Atlas
	packageParams = sim.DefaultParams()
)

// SetAtlas sets the sprite atlas used by new game instances.
// Loading and validating the atlas is the caller's responsibility; a game
// must never be created without one.
func SetAtlas(a *assets.Atlas) {
	packageAtlas = a
}

// SetParams sets the simulation tuning used by new game instances.
func SetParams(p sim.Params) {
	packageParams = p
}

// Game is the mazehunt game session. It owns all mutable session state —
// score, level, phase, agents — and advances it one fixed tick at a time.
type Game struct {
	atlas  *assets.Atlas
	params sim.Params
	cfg    core.RuntimeConfig

	rng      *rand.Rand
	behavior *sim.Behavior
	tick     uint64

	phase     core.Phase
	score     int
	level     int
	highScore int
	paused    bool

	grid   *sim.Grid
	player sim.Player
	npcs   []*sim.NPC

	levelClearTicks int
}

// New creates a new game using the package-level atlas and params.
func New() *Game {
	return &Game{
		atlas:  packageAtlas,
		params: packageParams,
		level:  1,
	}
}

func init() {
	registry.Register("mazehunt", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mazehunt"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Mazehunt"
}

// SetHighScore seeds the persisted high score for HUD display.
// Called by the platform after reading the score store at session start.
func (g *Game) SetHighScore(hs int) {
	g.highScore = hs
}

// Reset initializes or restarts the session: score and level return to
// their initial values and a fresh level is generated.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.behavior = sim.NewBehavior(g.rng, g.params, cfg.TickMillis())
	g.tick = 0
	g.score = 0
	g.level = 1
	g.paused = false
	g.phase = core.PhaseNotStarted

	g.setupLevel()
}

// setupLevel regenerates the maze and agent population for the current
// level. Runs once per level, before the tick loop touches the new state.
func (g *Game) setupLevel() {
	g.levelClearTicks = 0
	g.grid = sim.GenerateMaze(g.rng, g.params)

	g.player = sim.Player{Agent: sim.NewAgent(
		g.spawnPlayerPos(),
		g.params.SpriteSize,
		g.params.HitboxInset,
	)}

	g.npcs = g.npcs[:0]
	g.spawnNPC(sim.KindPursuer)
	for i := 0; i < g.params.QuarryCount; i++ {
		g.spawnNPC(sim.KindQuarry)
	}
}

// spawnPlayerPos returns the first open cell in row-major order, so the
// player start is deterministic for a given maze.
func (g *Game) spawnPlayerPos() core.Vec {
	for row := 0; row < g.grid.Rows; row++ {
		for col := 0; col < g.grid.Cols; col++ {
			if !g.grid.Blocked(row, col) {
				return g.cellSpawnPos(row, col)
			}
		}
	}
	return core.Vec{} // Unreachable: a maze is always sparse
}

// spawnNPC places a new NPC of the given kind at a validated open tile that
// overlaps no wall and no existing agent. Attempts are bounded; on
// exhaustion the NPC falls back to the first free cell found by scan.
func (g *Game) spawnNPC(kind sim.Kind) {
	const maxAttempts = 100

	for i := 0; i < maxAttempts; i++ {
		row := g.rng.Intn(g.grid.Rows)
		col := g.rng.Intn(g.grid.Cols)
		if g.trySpawnAt(kind, row, col) {
			return
		}
	}
	for row := 0; row < g.grid.Rows; row++ {
		for col := 0; col < g.grid.Cols; col++ {
			if g.trySpawnAt(kind, row, col) {
				return
			}
		}
	}
}

// trySpawnAt validates the cell and commits the NPC when it is free.
func (g *Game) trySpawnAt(kind sim.Kind, row, col int) bool {
	if g.grid.Blocked(row, col) {
		return false
	}
	pos := g.cellSpawnPos(row, col)
	n := sim.NewNPC(kind, pos, g.params.SpriteSize, g.params.HitboxInset)

	box := n.SpriteBox()
	if box.Overlaps(g.player.SpriteBox()) {
		return false
	}
	for _, other := range g.npcs {
		if box.Overlaps(other.SpriteBox()) {
			return false
		}
	}

	g.npcs = append(g.npcs, n)
	return true
}

// cellSpawnPos converts a grid cell to the sprite position centered on it.
func (g *Game) cellSpawnPos(row, col int) core.Vec {
	return core.V(
		(float64(col)+0.5)*g.params.TileSize-g.params.SpriteSize/2,
		(float64(row)+0.5)*g.params.TileSize-g.params.SpriteSize/2,
	)
}

// Step advances the game by one fixed tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.phase == core.PhaseGameOver {
		hs := g.highScore
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.cfg.ScreenW,
			ScreenH:  g.cfg.ScreenH,
			TickRate: g.cfg.TickRate,
		})
		g.highScore = hs
		// Restart drops straight back into play; no second confirm.
		g.phase = core.PhasePlaying
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case core.PhaseNotStarted:
		if input.Has(core.ActionConfirm) {
			g.phase = core.PhasePlaying
		}
		return core.StepResult{State: g.State()}

	case core.PhaseGameOver:
		// Frozen: no score or level changes until restart.
		return core.StepResult{State: g.State()}

	case core.PhaseLevelComplete:
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelayTicks {
			g.level++
			g.phase = core.PhasePlaying
			g.setupLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.stepPlayer(input)
	g.behavior.Step(g.tick, g.npcs, &g.player, g.grid, g.level)
	g.resolveContacts()

	return core.StepResult{State: g.State()}
}

// stepPlayer resolves the player's movement intent for this tick.
// Pointer steering takes precedence over directional keys when the pointer
// is engaged and its target sits beyond the dead-zone radius.
func (g *Game) stepPlayer(input core.InputFrame) {
	want := g.player.Pos

	ptr := input.Pointer
	toTarget := core.V(ptr.X, ptr.Y).Sub(g.player.Center())
	if ptr.Engaged && toTarget.Len() > g.params.PointerDeadZone {
		step := g.params.PlayerStep
		if toTarget.Len() < step {
			step = toTarget.Len()
		}
		want = want.Add(toTarget.Normalized().Scale(step))
	} else {
		if input.Has(core.ActionUp) {
			want.Y -= g.params.PlayerStep
		}
		if input.Has(core.ActionDown) {
			want.Y += g.params.PlayerStep
		}
		if input.Has(core.ActionLeft) {
			want.X -= g.params.PlayerStep
		}
		if input.Has(core.ActionRight) {
			want.X += g.params.PlayerStep
		}
	}

	blockers := make([]sim.Blocker, 0, len(g.npcs))
	for _, n := range g.npcs {
		blockers = append(blockers, n)
	}

	x, y := sim.ResolveMove(&g.player.Agent, want.X, want.Y, g.grid, g.params, blockers)
	g.player.Pos = core.V(x, y)
	g.player.ClampTo(g.params.MapW(), g.params.MapH())
}

// resolveContacts applies catch outcomes for this tick. Contacts are
// collected against the post-move state first and applied afterwards, so a
// flag flip never invalidates the iteration it happens in.
func (g *Game) resolveContacts() {
	playerHB := g.player.Hitbox()

	var caught []*sim.NPC
	pursuerContact := false
	for _, n := range g.npcs {
		if !n.Alive || !playerHB.Overlaps(n.Hitbox()) {
			continue
		}
		switch n.Kind {
		case sim.KindPursuer:
			pursuerContact = true
		case sim.KindQuarry:
			caught = append(caught, n)
		}
	}

	if pursuerContact {
		g.phase = core.PhaseGameOver
		return
	}

	for _, n := range caught {
		n.Alive = false
		g.score++
		if g.score > g.highScore {
			g.highScore = g.score
		}
	}

	if len(caught) > 0 && g.allQuarryDead() {
		g.phase = core.PhaseLevelComplete
		g.levelClearTicks = 0
	}
}

// allQuarryDead reports whether every quarry NPC has been caught.
func (g *Game) allQuarryDead() bool {
	for _, n := range g.npcs {
		if n.Kind == sim.KindQuarry && n.Alive {
			return false
		}
	}
	return true
}

// State returns the current externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseGameOver,
		Paused:   g.paused,
	}
}

// HighScore returns the session high score (persisted by the platform).
func (g *Game) HighScore() int {
	return g.highScore
}
