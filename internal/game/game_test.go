package game

import (
	"testing"

	"github.com/vkulagin/mazehunt/internal/core"
	"github.com/vkulagin/mazehunt/internal/game/sim"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// startPlaying resets the game and presses confirm past the start screen.
func startPlaying(g *Game, seed int64) {
	g.Reset(testConfig(seed))
	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical
	// snapshots
	g1 := New()
	g2 := New()
	g1.Reset(testConfig(12345))
	g2.Reset(testConfig(12345))

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i == 0 {
			input.Set(core.ActionConfirm)
		}
		if i > 20 && i < 60 {
			input.Set(core.ActionRight)
		}
		if i > 60 && i < 100 {
			input.Set(core.ActionDown)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Snapshot hash mismatch: %016x vs %016x", snap1.Hash(), snap2.Hash())
	}
	if snap1.PlayerX != snap2.PlayerX || snap1.PlayerY != snap2.PlayerY {
		t.Errorf("Player position mismatch: (%v, %v) vs (%v, %v)",
			snap1.PlayerX, snap1.PlayerY, snap2.PlayerX, snap2.PlayerY)
	}
}

func TestStartScreen(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	if g.phase != core.PhaseNotStarted {
		t.Fatalf("Expected PhaseNotStarted after reset, got %v", g.phase)
	}

	// Ticks without confirm stay on the start screen
	input := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	if g.phase != core.PhaseNotStarted {
		t.Errorf("Phase advanced without confirm: %v", g.phase)
	}

	input.Set(core.ActionConfirm)
	g.Step(input)
	if g.phase != core.PhasePlaying {
		t.Errorf("Expected PhasePlaying after confirm, got %v", g.phase)
	}
}

func TestAgentPopulation(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	pursuers, quarry := 0, 0
	for _, n := range g.npcs {
		switch n.Kind {
		case sim.KindPursuer:
			pursuers++
		case sim.KindQuarry:
			quarry++
		}
		if !n.Alive {
			t.Error("Freshly spawned NPC is not alive")
		}
	}

	if pursuers != 1 {
		t.Errorf("Expected 1 pursuer, got %d", pursuers)
	}
	if quarry != g.params.QuarryCount {
		t.Errorf("Expected %d quarry, got %d", g.params.QuarryCount, quarry)
	}
}

func TestSpawnSeparation(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := New()
		g.Reset(testConfig(seed))

		boxes := []core.Box{g.player.SpriteBox()}
		for _, n := range g.npcs {
			boxes = append(boxes, n.SpriteBox())
		}
		for i := 0; i < len(boxes); i++ {
			for j := i + 1; j < len(boxes); j++ {
				if boxes[i].Overlaps(boxes[j]) {
					t.Fatalf("seed %d: spawn boxes %d and %d overlap", seed, i, j)
				}
			}
		}
	}
}

func TestPlayerSpawnDeterministic(t *testing.T) {
	// The first open cell in row-major order is the spawn; the border is
	// always clear, so it is the top-left cell.
	g := New()
	g.Reset(testConfig(42))

	if g.player.Pos.X != 0 || g.player.Pos.Y != 0 {
		t.Errorf("Player spawn = (%v, %v), expected (0, 0)", g.player.Pos.X, g.player.Pos.Y)
	}
}

func TestCatchQuarry(t *testing.T) {
	g := New()
	startPlaying(g, 3)

	var target *sim.NPC
	for _, n := range g.npcs {
		if n.Kind == sim.KindQuarry {
			target = n
			break
		}
	}
	if target == nil {
		t.Fatal("No quarry spawned")
	}

	target.Pos = g.player.Pos
	g.resolveContacts()

	if target.Alive {
		t.Error("Caught quarry still alive")
	}
	if g.score != 1 {
		t.Errorf("Score = %d, expected 1", g.score)
	}
	if g.highScore != 1 {
		t.Errorf("High score = %d, expected 1", g.highScore)
	}
	if g.phase != core.PhasePlaying {
		t.Errorf("Phase = %v with quarry remaining, expected PhasePlaying", g.phase)
	}
}

func TestCatchLastQuarryCompletesLevel(t *testing.T) {
	g := New()
	startPlaying(g, 3)

	for _, n := range g.npcs {
		if n.Kind == sim.KindQuarry {
			n.Pos = g.player.Pos
		}
	}
	g.resolveContacts()

	if g.phase != core.PhaseLevelComplete {
		t.Fatalf("Phase = %v, expected PhaseLevelComplete", g.phase)
	}
	if g.score != g.params.QuarryCount {
		t.Errorf("Score = %d, expected %d", g.score, g.params.QuarryCount)
	}
}

func TestLevelProgression(t *testing.T) {
	g := New()
	startPlaying(g, 3)

	for _, n := range g.npcs {
		if n.Kind == sim.KindQuarry {
			n.Pos = g.player.Pos
		}
	}
	g.resolveContacts()
	if g.phase != core.PhaseLevelComplete {
		t.Fatal("Level did not complete")
	}

	// The overlay holds for the delay, then the next level starts
	input := core.NewInputFrame()
	for i := 0; i < levelClearDelayTicks; i++ {
		if g.phase != core.PhaseLevelComplete {
			t.Fatalf("Phase left PhaseLevelComplete early at tick %d: %v", i, g.phase)
		}
		g.Step(input)
	}

	if g.phase != core.PhasePlaying {
		t.Errorf("Phase = %v after delay, expected PhasePlaying", g.phase)
	}
	if g.level != 2 {
		t.Errorf("Level = %d, expected 2", g.level)
	}
	if g.score != g.params.QuarryCount {
		t.Errorf("Score = %d, expected carry-over %d", g.score, g.params.QuarryCount)
	}

	alive := 0
	for _, n := range g.npcs {
		if n.Alive {
			alive++
		}
	}
	if alive != 1+g.params.QuarryCount {
		t.Errorf("Alive NPCs after level setup = %d, expected %d", alive, 1+g.params.QuarryCount)
	}
}

func TestPursuerContactEndsGame(t *testing.T) {
	g := New()
	startPlaying(g, 3)

	for _, n := range g.npcs {
		if n.Kind == sim.KindPursuer {
			n.Pos = g.player.Pos
		}
	}
	g.resolveContacts()

	if g.phase != core.PhaseGameOver {
		t.Fatalf("Phase = %v, expected PhaseGameOver", g.phase)
	}
}

func TestPursuerContactWinsOverCatch(t *testing.T) {
	// Pursuer and quarry both on the player in the same tick: the run ends
	// and the catch does not count
	g := New()
	startPlaying(g, 3)

	for _, n := range g.npcs {
		n.Pos = g.player.Pos
	}
	g.resolveContacts()

	if g.phase != core.PhaseGameOver {
		t.Fatalf("Phase = %v, expected PhaseGameOver", g.phase)
	}
	if g.score != 0 {
		t.Errorf("Score = %d on lethal tick, expected 0", g.score)
	}
}

func TestChasingPursuerEndsRunThroughMovement(t *testing.T) {
	// The pursuer has to reach game over by actually moving onto the
	// player, not by being teleported into overlap.
	g := New()
	startPlaying(g, 3)

	// Park the pursuer a short clear distance away along the open border
	// row and let the chase close the gap tick by tick.
	for _, n := range g.npcs {
		if n.Kind == sim.KindPursuer {
			n.Pos = g.player.Pos.Add(core.V(48, 0))
		}
	}

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		g.Step(input)
		if g.phase == core.PhaseGameOver {
			return
		}
	}
	t.Fatal("Chasing pursuer never caught the stationary player")
}

func TestGameOverFreezesState(t *testing.T) {
	g := New()
	startPlaying(g, 3)
	g.phase = core.PhaseGameOver

	before := g.Snapshot()

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	for i := 0; i < 30; i++ {
		g.Step(input)
	}

	after := g.Snapshot()
	if before.Score != after.Score || before.Level != after.Level {
		t.Error("Score or level changed while game over")
	}
	if before.PlayerX != after.PlayerX || before.PlayerY != after.PlayerY {
		t.Error("Player moved while game over")
	}
}

func TestRestartPreservesHighScore(t *testing.T) {
	g := New()
	startPlaying(g, 3)
	g.score = 5
	g.highScore = 7
	g.phase = core.PhaseGameOver

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.phase != core.PhasePlaying {
		t.Errorf("Phase = %v after restart, expected PhasePlaying", g.phase)
	}
	if g.score != 0 {
		t.Errorf("Score = %d after restart, expected 0", g.score)
	}
	if g.level != 1 {
		t.Errorf("Level = %d after restart, expected 1", g.level)
	}
	if g.highScore != 7 {
		t.Errorf("High score = %d after restart, expected 7", g.highScore)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := New()
	startPlaying(g, 3)
	g.score = 2

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.score != 2 || g.phase != core.PhasePlaying {
		t.Error("Restart should be a no-op during play")
	}
}

func TestPauseToggle(t *testing.T) {
	g := New()
	startPlaying(g, 3)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Fatal("Expected paused after pause action")
	}

	// Movement input is ignored while paused
	pos := g.player.Pos
	input.Clear()
	input.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	if g.player.Pos != pos {
		t.Error("Player moved while paused")
	}

	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	if g.paused {
		t.Error("Expected unpaused after second pause action")
	}
}

func TestPointerSteering(t *testing.T) {
	g := New()
	startPlaying(g, 3)

	start := g.player.Pos
	target := g.player.Center().Add(core.V(100, 0))

	input := core.NewInputFrame()
	input.SetPointer(target.X, target.Y, true)
	g.Step(input)

	if g.player.Pos.X <= start.X {
		t.Errorf("Player did not move toward pointer: %v -> %v", start.X, g.player.Pos.X)
	}
	if g.player.Pos.X-start.X > g.params.PlayerStep {
		t.Errorf("Player moved more than one step: %v", g.player.Pos.X-start.X)
	}
}

func TestPointerDeadZone(t *testing.T) {
	g := New()
	startPlaying(g, 3)

	start := g.player.Pos
	center := g.player.Center()

	input := core.NewInputFrame()
	input.SetPointer(center.X+g.params.PointerDeadZone/2, center.Y, true)
	g.Step(input)

	if g.player.Pos != start {
		t.Errorf("Player moved on in-dead-zone pointer: %v -> %v", start, g.player.Pos)
	}
}

func TestPointerOverridesKeys(t *testing.T) {
	g := New()
	startPlaying(g, 3)

	start := g.player.Pos

	// Pointer to the right, key to the left: pointer wins
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	target := g.player.Center().Add(core.V(100, 0))
	input.SetPointer(target.X, target.Y, true)
	g.Step(input)

	if g.player.Pos.X <= start.X {
		t.Errorf("Key input overrode engaged pointer: %v -> %v", start.X, g.player.Pos.X)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	g := New()
	startPlaying(g, 9)

	input := core.NewInputFrame()
	dirs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionLeft, core.ActionDown}
	for i := 0; i < 2000; i++ {
		input.Clear()
		input.Set(dirs[(i/100)%len(dirs)])
		g.Step(input)

		p := g.player.Pos
		if p.X < 0 || p.Y < 0 || p.X > g.params.MapW()-g.player.W || p.Y > g.params.MapH()-g.player.H {
			t.Fatalf("tick %d: player out of bounds at (%v, %v)", i, p.X, p.Y)
		}
	}
}

func TestPlayerNeverEntersWall(t *testing.T) {
	g := New()
	startPlaying(g, 13)

	input := core.NewInputFrame()
	dirs := []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUp}
	for i := 0; i < 2000; i++ {
		input.Clear()
		input.Set(dirs[(i/50)%len(dirs)])
		g.Step(input)

		if g.phase != core.PhasePlaying {
			break
		}
		hb := g.player.Hitbox()
		for _, c := range g.grid.WallCells() {
			cell := core.NewBox(float64(c[1])*g.params.TileSize, float64(c[0])*g.params.TileSize,
				g.params.TileSize, g.params.TileSize)
			if hb.Overlaps(cell) {
				t.Fatalf("tick %d: player hitbox inside wall cell (%d, %d)", i, c[0], c[1])
			}
		}
	}
}
