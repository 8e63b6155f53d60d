// Package assets resolves named sprite identifiers to renderable handles.
// The atlas is loaded and validated once during session setup; any missing
// or malformed required sprite aborts startup rather than rendering a
// partially blank scene.
package assets

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vkulagin/mazehunt/internal/core"
)

//go:embed defaults/sprites.yaml
var defaultAtlasYAML []byte

// Required lists every sprite name the game draws. Load fails unless all
// of them resolve.
var Required = []string{
	"player",
	"pursuer",
	"quarry",
	"wall_joiner",
	"wall_vert_middle",
	"wall_top_cap",
	"wall_bottom_cap",
	"wall_horiz_middle",
	"wall_left_cap",
	"wall_right_cap",
}

// Sprite is a decoded sprite handle: a rune plus its display color.
type Sprite struct {
	Rune  rune
	Color core.Color
}

// Atlas maps sprite names to decoded handles. Consumers hold opaque
// handles only and never touch the raw atlas bytes.
type Atlas struct {
	sprites map[string]Sprite
}

// Get returns the sprite for the given name. Lookups are infallible after
// Load: every required name was validated at load time.
func (a *Atlas) Get(name string) Sprite {
	return a.sprites[name]
}

// rawSprite is the YAML shape of one atlas entry.
type rawSprite struct {
	Rune  string `yaml:"rune"`
	Color string `yaml:"color"`
}

// rawAtlas is the YAML shape of the whole atlas file.
type rawAtlas struct {
	Sprites map[string]rawSprite `yaml:"sprites"`
}

// Load reads the sprite atlas. When customPath is empty, the embedded
// default atlas is used. Any missing required sprite, empty rune or
// unknown color name is a setup failure: the returned error names every
// offending sprite so the problem is diagnosable from the message alone.
func Load(customPath string) (*Atlas, error) {
	data := defaultAtlasYAML
	if customPath != "" {
		b, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("assets: cannot read atlas %s: %w", customPath, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes and validates atlas bytes.
func Parse(data []byte) (*Atlas, error) {
	var raw rawAtlas
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("assets: cannot parse atlas: %w", err)
	}

	atlas := &Atlas{sprites: make(map[string]Sprite, len(raw.Sprites))}
	var bad []string

	for name, rs := range raw.Sprites {
		runes := []rune(rs.Rune)
		if len(runes) != 1 {
			bad = append(bad, fmt.Sprintf("%s: rune must be a single character, got %q", name, rs.Rune))
			continue
		}
		color, ok := colorByName(rs.Color)
		if !ok {
			bad = append(bad, fmt.Sprintf("%s: unknown color %q", name, rs.Color))
			continue
		}
		atlas.sprites[name] = Sprite{Rune: runes[0], Color: color}
	}

	for _, name := range Required {
		if _, ok := atlas.sprites[name]; ok {
			continue
		}
		if !mentioned(bad, name) {
			bad = append(bad, fmt.Sprintf("%s: missing", name))
		}
	}

	if len(bad) > 0 {
		sort.Strings(bad)
		return nil, fmt.Errorf("assets: invalid atlas: %s", strings.Join(bad, "; "))
	}
	return atlas, nil
}

// mentioned reports whether a sprite name already appears in the errors.
func mentioned(errs []string, name string) bool {
	for _, e := range errs {
		if strings.HasPrefix(e, name+":") {
			return true
		}
	}
	return false
}

// colorByName maps an atlas color name to its core color.
func colorByName(name string) (core.Color, bool) {
	switch name {
	case "", "default":
		return core.ColorDefault, true
	case "red":
		return core.ColorRed, true
	case "green":
		return core.ColorGreen, true
	case "yellow":
		return core.ColorYellow, true
	case "blue":
		return core.ColorBlue, true
	case "magenta":
		return core.ColorMagenta, true
	case "cyan":
		return core.ColorCyan, true
	case "white":
		return core.ColorWhite, true
	case "bright_red":
		return core.ColorBrightRed, true
	case "bright_green":
		return core.ColorBrightGreen, true
	case "bright_yellow":
		return core.ColorBrightYellow, true
	case "bright_white":
		return core.ColorBrightWhite, true
	case "orange":
		return core.ColorOrange, true
	case "gray":
		return core.ColorGray, true
	default:
		return core.ColorDefault, false
	}
}
