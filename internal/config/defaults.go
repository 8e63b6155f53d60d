package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded default configuration, used as
// the last-resort fallback when even the embedded YAML fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Map: MapConfig{
			Rows:     15,
			Cols:     20,
			TileSize: 32,
		},
		Agents: AgentsConfig{
			SpriteSize:      32,
			HitboxInset:     6,
			PlayerStep:      4,
			PointerDeadZone: 8,
			QuarryCount:     5,
		},
		Behavior: BehaviorConfig{
			WanderSpeed:         1.5,
			FleeSpeed:           2.5,
			ChaseSpeed:          2.0,
			ChaseRadius:         200,
			LOSStep:             20,
			WanderReach:         20,
			WanderCooldownMinMS: 1000,
			WanderCooldownMaxMS: 2000,
			StuckDelta:          0.5,
			StuckLimit:          15,
			EdgePadding:         8,
		},
		Maze: MazeConfig{
			WallTarget: 6,
			WallBudget: 200,
			WallMinLen: 2,
			WallMaxLen: 5,
			AnchorRow:  7,
			AnchorCol:  8,
		},
		Difficulty: DifficultyConfig{
			Base: 1.1,
		},
	}
}
