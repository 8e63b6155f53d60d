// Package config provides YAML-based game configuration loading for the
// mazehunt simulation.
package config

import (
	"fmt"

	"github.com/vkulagin/mazehunt/internal/game/sim"
)

// GameConfig contains all tuning for the mazehunt game.
type GameConfig struct {
	Map        MapConfig        `yaml:"map"`
	Agents     AgentsConfig     `yaml:"agents"`
	Behavior   BehaviorConfig   `yaml:"behavior"`
	Maze       MazeConfig       `yaml:"maze"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MapConfig defines the level geometry.
type MapConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	TileSize float64 `yaml:"tile_size"`
}

// AgentsConfig defines agent geometry and player movement.
type AgentsConfig struct {
	SpriteSize      float64 `yaml:"sprite_size"`
	HitboxInset     float64 `yaml:"hitbox_inset"`
	PlayerStep      float64 `yaml:"player_step"`
	PointerDeadZone float64 `yaml:"pointer_dead_zone"`
	QuarryCount     int     `yaml:"quarry_count"`
}

// BehaviorConfig defines NPC steering parameters.
type BehaviorConfig struct {
	WanderSpeed         float64 `yaml:"wander_speed"`
	FleeSpeed           float64 `yaml:"flee_speed"`
	ChaseSpeed          float64 `yaml:"chase_speed"`
	ChaseRadius         float64 `yaml:"chase_radius"`
	LOSStep             float64 `yaml:"los_step"`
	WanderReach         float64 `yaml:"wander_reach"`
	WanderCooldownMinMS float64 `yaml:"wander_cooldown_min_ms"`
	WanderCooldownMaxMS float64 `yaml:"wander_cooldown_max_ms"`
	StuckDelta          float64 `yaml:"stuck_delta"`
	StuckLimit          int     `yaml:"stuck_limit"`
	EdgePadding         float64 `yaml:"edge_padding"`
}

// MazeConfig defines wall generation bounds.
type MazeConfig struct {
	WallTarget int `yaml:"wall_target"`
	WallBudget int `yaml:"wall_budget"`
	WallMinLen int `yaml:"wall_min_len"`
	WallMaxLen int `yaml:"wall_max_len"`
	AnchorRow  int `yaml:"anchor_row"`
	AnchorCol  int `yaml:"anchor_col"`
}

// DifficultyConfig defines the per-level speed ramp.
type DifficultyConfig struct {
	Base float64 `yaml:"base"` // NPC speed multiplier is base^(level-1)
}

// Validate checks the configuration for values the engine cannot run with.
func (c GameConfig) Validate() error {
	if c.Map.Rows < 5 || c.Map.Cols < 5 {
		return fmt.Errorf("config: map must be at least 5x5, got %dx%d", c.Map.Rows, c.Map.Cols)
	}
	if c.Map.TileSize <= 0 {
		return fmt.Errorf("config: tile_size must be positive, got %v", c.Map.TileSize)
	}
	if c.Agents.SpriteSize <= 2*c.Agents.HitboxInset {
		return fmt.Errorf("config: hitbox_inset %v leaves no hitbox for sprite_size %v",
			c.Agents.HitboxInset, c.Agents.SpriteSize)
	}
	if c.Agents.QuarryCount < 1 {
		return fmt.Errorf("config: quarry_count must be at least 1, got %d", c.Agents.QuarryCount)
	}
	if c.Maze.WallMinLen < 1 || c.Maze.WallMaxLen < c.Maze.WallMinLen {
		return fmt.Errorf("config: invalid wall length range [%d, %d]",
			c.Maze.WallMinLen, c.Maze.WallMaxLen)
	}
	if c.Difficulty.Base < 1 {
		return fmt.Errorf("config: difficulty base must be >= 1, got %v", c.Difficulty.Base)
	}
	return nil
}

// Params converts the configuration into simulation tuning.
func (c GameConfig) Params() sim.Params {
	return sim.Params{
		Rows:     c.Map.Rows,
		Cols:     c.Map.Cols,
		TileSize: c.Map.TileSize,

		SpriteSize:  c.Agents.SpriteSize,
		HitboxInset: c.Agents.HitboxInset,

		PlayerStep:      c.Agents.PlayerStep,
		PointerDeadZone: c.Agents.PointerDeadZone,

		WanderSpeed: c.Behavior.WanderSpeed,
		FleeSpeed:   c.Behavior.FleeSpeed,
		ChaseSpeed:  c.Behavior.ChaseSpeed,
		ChaseRadius: c.Behavior.ChaseRadius,

		LOSStep:             c.Behavior.LOSStep,
		WanderReach:         c.Behavior.WanderReach,
		WanderCooldownMinMS: c.Behavior.WanderCooldownMinMS,
		WanderCooldownMaxMS: c.Behavior.WanderCooldownMaxMS,
		StuckDelta:          c.Behavior.StuckDelta,
		StuckLimit:          c.Behavior.StuckLimit,
		EdgePadding:         c.Behavior.EdgePadding,

		DifficultyBase: c.Difficulty.Base,

		WallTarget:  c.Maze.WallTarget,
		WallBudget:  c.Maze.WallBudget,
		WallMinLen:  c.Maze.WallMinLen,
		WallMaxLen:  c.Maze.WallMaxLen,
		AnchorRow:   c.Maze.AnchorRow,
		AnchorCol:   c.Maze.AnchorCol,
		QuarryCount: c.Agents.QuarryCount,
	}
}
