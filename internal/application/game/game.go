// Package game runs the active Scene inside ebiten and handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/younwookim/mew/internal/application/scene"
)

// Game implements ebiten.Game on top of a Scene stack of depth one.
type Game struct {
	current scene.Scene
	logger  zerolog.Logger
	screenW int
	screenH int
	dt      float64
	frames  int
}

// New creates a Game and enters the initial scene immediately.
func New(initialScene scene.Scene, screenW, screenH int, logger zerolog.Logger) *Game {
	g := &Game{
		current: initialScene,
		logger:  logger,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene by one frame and swaps scenes on request.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return eris.Wrapf(err, "scene update failed at frame %d", g.frames)
	}
	g.frames++

	if next != nil {
		g.logger.Debug().Int("frame", g.frames).Msg("scene transition")
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout defers to the current scene when it has a size of its own.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if l, ok := g.current.(scene.Layouter); ok {
		return l.Layout(outsideWidth, outsideHeight)
	}
	return g.screenW, g.screenH
}

// Close exits the current scene. Call it once after ebiten.RunGame returns.
func (g *Game) Close() {
	g.current.OnExit()
}

// SetDT overrides the per-frame delta passed to scenes.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Frames returns how many frames have been updated successfully.
func (g *Game) Frames() int {
	return g.frames
}
