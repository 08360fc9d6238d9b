//go:build ebiten

package app

import (
	"image/color"
	"time"

	"dualgrid/internal/core"
	"dualgrid/internal/dualgrid"
	"dualgrid/internal/render"
	"dualgrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

const hudWidth = 220

// Game adapts a dual grid engine to the ebiten.Game interface.
type Game struct {
	eng     *dualgrid.Engine
	view    render.View
	painter *render.TilePainter
	overlay *ui.Overlay
	hud     *ui.HUD
	log     *zap.Logger

	// Held mouse buttons paint at most once per interval.
	paint *core.Repeater

	seed int64
}

// New constructs a Game for the provided engine.
func New(eng *dualgrid.Engine, scale int, seed int64, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	view := render.NewView(eng.Region(), eng.Offsets(), scale)
	return &Game{
		eng:     eng,
		view:    view,
		painter: render.NewTilePainter(eng.Dictionary(), view.Scale, render.DefaultPalette),
		overlay: ui.NewOverlay(eng, view),
		hud:     ui.NewHUD(eng, hudWidth),
		log:     log,
		paint:   core.NewRepeater(30),
		seed:    seed,
	}
}

// Size returns the window size in pixels including the HUD panel.
func (g *Game) Size() (int, int) {
	w, h := g.view.Size()
	return w + g.hud.Width(), h
}

// Reset regenerates the field with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.log.Debug("reset requested", zap.Int64("seed", seed))
	g.eng.Reset(seed)
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	gridW, _ := g.view.Size()
	g.hud.Update(gridW)
	g.overlay.Update()

	mx, my := ebiten.CursorPosition()
	t, over := g.cursorCell(mx, my)
	g.overlay.SetCursor(t, over)
	if !over {
		g.paint.Release()
		return nil
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	switch {
	case left && g.paint.Ready():
		g.eng.ApplyEdit(t, g.eng.Brush())
	case right && g.paint.Ready():
		g.eng.ApplyEdit(t, g.eng.Store().Default())
	case !left && !right:
		g.paint.Release()
	}
	return nil
}

func (g *Game) cursorCell(mx, my int) (core.Coord, bool) {
	w, h := g.view.Size()
	if mx < 0 || my < 0 || mx >= w || my >= h || g.hud.IsOverPanel(mx) {
		return core.Coord{}, false
	}
	return g.view.TerrainAt(mx, my), true
}

// Draw renders the render grid, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Draw(screen, g.view, g.eng.RenderCell)
	g.overlay.Draw(screen)
	gridW, gridH := g.view.Size()
	g.hud.Draw(screen, gridW, gridH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}
