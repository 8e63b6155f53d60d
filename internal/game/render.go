package game

import (
	"fmt"

	"github.com/vkulagin/mazehunt/internal/core"
)

// Terminal cells are roughly twice as tall as wide, so one map tile spans
// two characters horizontally and one vertically.
const (
	hudHeight     = 2
	charsPerTileX = 2
)

// transform describes the map-to-screen mapping for the current screen
// size: character offsets, pixels per character and the camera window.
type transform struct {
	offX, offY int
	pxX, pxY   float64
	frame      Frame
	ok         bool
}

// transformFor computes the render transform for a screen of the given
// character dimensions.
func (g *Game) transformFor(screenW, screenH int) transform {
	availW := screenW
	availH := screenH - hudHeight
	if availW < charsPerTileX || availH < 1 {
		return transform{}
	}

	pxX := g.params.TileSize / charsPerTileX
	pxY := g.params.TileSize

	viewW := minF(g.params.MapW(), float64(availW)*pxX)
	viewH := minF(g.params.MapH(), float64(availH)*pxY)
	f := g.Frame(viewW, viewH)

	return transform{
		offX:  (availW - int(viewW/pxX)) / 2,
		offY:  hudHeight + (availH-int(viewH/pxY))/2,
		pxX:   pxX,
		pxY:   pxY,
		frame: f,
		ok:    true,
	}
}

// ScreenToMap converts a screen cell coordinate into map pixel
// coordinates, inverting the render transform. Returns false when the
// coordinate falls outside the map viewport.
func (g *Game) ScreenToMap(x, y int) (float64, float64, bool) {
	tr := g.transformFor(g.cfg.ScreenW, g.cfg.ScreenH)
	if !tr.ok {
		return 0, 0, false
	}

	mx := tr.frame.CamX + (float64(x-tr.offX)+0.5)*tr.pxX
	my := tr.frame.CamY + (float64(y-tr.offY)+0.5)*tr.pxY
	if mx < tr.frame.CamX || mx >= tr.frame.CamX+tr.frame.ViewW ||
		my < tr.frame.CamY || my >= tr.frame.CamY+tr.frame.ViewH {
		return 0, 0, false
	}
	return mx, my, true
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	tr := g.transformFor(dst.Width(), dst.Height())
	if !tr.ok {
		return
	}
	f := tr.frame

	for _, t := range f.Tiles {
		px := float64(t.Col) * g.params.TileSize
		py := float64(t.Row) * g.params.TileSize
		if px < f.CamX || px >= f.CamX+f.ViewW || py < f.CamY || py >= f.CamY+f.ViewH {
			continue
		}
		x := tr.offX + int((px-f.CamX)/tr.pxX)
		y := tr.offY + int((py-f.CamY)/tr.pxY)
		sprite := g.atlas.Get("wall_" + t.Tile.String())
		dst.SetColored(x, y, sprite.Rune, sprite.Color)
		dst.SetColored(x+1, y, sprite.Rune, sprite.Color)
	}

	// Agents arrive pre-sorted by y, lowest painted first.
	for _, a := range f.Agents {
		cx := a.Pos.X + g.params.SpriteSize/2
		cy := a.Pos.Y + g.params.SpriteSize/2
		if cx < f.CamX || cx >= f.CamX+f.ViewW || cy < f.CamY || cy >= f.CamY+f.ViewH {
			continue
		}
		x := tr.offX + int((cx-f.CamX)/tr.pxX)
		y := tr.offY + int((cy-f.CamY)/tr.pxY)
		sprite := g.atlas.Get(a.Sprite)
		dst.SetColored(x, y, sprite.Rune, sprite.Color)
	}

	switch {
	case g.phase == core.PhaseNotStarted:
		g.renderOverlay(dst, "Mazehunt", "Press Enter to start")
	case g.phase == core.PhaseLevelComplete:
		g.renderOverlay(dst, fmt.Sprintf("Level %d complete!", g.level), fmt.Sprintf("Score: %d", g.score))
	case g.phase == core.PhaseGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Mazehunt — Score: %d  Best: %d  Level: %d", g.score, g.highScore, g.level)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line overlay box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	box := core.NewRect((w-(maxLen+4))/2, (h-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
