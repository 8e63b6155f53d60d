package sim

// Params carries every tuning constant of the simulation. The config layer
// builds one from YAML; tests build one from DefaultParams and tweak fields.
type Params struct {
	// Map geometry
	Rows, Cols int     // Grid dimensions in cells
	TileSize   float64 // Cell edge length in pixels

	// Agents
	SpriteSize  float64 // Sprite box edge length in pixels
	HitboxInset float64 // Inset from sprite box to the centered hitbox

	// Player movement
	PlayerStep      float64 // Pixels per tick for directional key input
	PointerDeadZone float64 // Pointer steering ignored within this radius

	// NPC movement (base values, scaled by the per-level multiplier)
	WanderSpeed float64
	FleeSpeed   float64
	ChaseSpeed  float64
	ChaseRadius float64 // Pursuer gives up beyond this distance

	// Behavior tuning
	LOSStep             float64 // Ray-march sample spacing in pixels
	WanderReach         float64 // Wander target counts as reached within this
	WanderCooldownMinMS float64 // Re-pick cooldown lower bound
	WanderCooldownMaxMS float64 // Re-pick cooldown upper bound
	StuckDelta          float64 // Manhattan move below this counts as stuck
	StuckLimit          int     // Stuck ticks before escape behavior kicks in
	EdgePadding         float64 // Flee velocity zeroed within this margin

	// Difficulty
	DifficultyBase float64 // Per-level speed multiplier base (1.1)

	// Maze generation
	WallTarget  int // Free-standing segments to place beyond the fixed pair
	WallBudget  int // Placement attempts before giving up
	WallMinLen  int // Segment length lower bound, inclusive
	WallMaxLen  int // Segment length upper bound, inclusive
	AnchorRow   int // Fixed pair anchor (horizontal segment row)
	AnchorCol   int // Fixed pair anchor (horizontal segment left col)
	QuarryCount int // Quarry NPCs per level
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		Rows:     15,
		Cols:     20,
		TileSize: 32,

		SpriteSize:  32,
		HitboxInset: 6,

		PlayerStep:      4,
		PointerDeadZone: 8,

		WanderSpeed: 1.5,
		FleeSpeed:   2.5,
		ChaseSpeed:  2.0,
		ChaseRadius: 200,

		LOSStep:             20,
		WanderReach:         20,
		WanderCooldownMinMS: 1000,
		WanderCooldownMaxMS: 2000,
		StuckDelta:          0.5,
		StuckLimit:          15,
		EdgePadding:         8,

		DifficultyBase: 1.1,

		WallTarget:  6,
		WallBudget:  200,
		WallMinLen:  2,
		WallMaxLen:  5,
		AnchorRow:   7,
		AnchorCol:   8,
		QuarryCount: 5,
	}
}

// MapW returns the map width in pixels.
func (p Params) MapW() float64 {
	return float64(p.Cols) * p.TileSize
}

// MapH returns the map height in pixels.
func (p Params) MapH() float64 {
	return float64(p.Rows) * p.TileSize
}

// HitboxSize returns the hitbox edge length in pixels.
func (p Params) HitboxSize() float64 {
	return p.SpriteSize - 2*p.HitboxInset
}
