// Package scene defines the screens the game loop can run.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen driven by the game loop, one Update per tick.
// Returning a non-nil Scene from Update switches to it after this tick.
// Returning an error stops the loop.
type Scene interface {
	Update(dt float64) (next Scene, err error)
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced or the window closes.
	// Scenes that record input flush their recording here.
	OnExit()
}

// Layouter is implemented by scenes that pick their own logical screen size.
type Layouter interface {
	Layout(outsideWidth, outsideHeight int) (int, int)
}
