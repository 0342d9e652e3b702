package world

import (
	"github.com/younwookim/mew/internal/application/state"
	"github.com/younwookim/mew/internal/domain/entity"
)

// PlayerView is the render-facing copy of the player
type PlayerView struct {
	X, Y, W, H  float64
	VX, VY      float64
	FacingRight bool
	OnGround    bool
	Running     bool

	HP, MaxHP  int
	Invincible int
	Dead       bool

	AttackPhase    entity.AttackPhase
	AttackProgress float64
	AttackAngle    float64

	RunFrame   int
	LandSquish int
	EarTwitch  int
}

// EnemyView is the render-facing copy of one enemy
type EnemyView struct {
	ID         entity.EntityID
	Type       string
	X, Y, W, H float64
	Alive      bool
	FacingSign float64
	DyingTimer int
	Fade       float64 // 1 at the moment of death, 0 when fully faded
}

// Snapshot is a read-only copy of everything the presentation layer draws.
// It shares no mutable state with the world.
type Snapshot struct {
	State state.GameState
	Tick  int

	Player    PlayerView
	Enemies   []EnemyView
	Particles []entity.Particle
	Camera    entity.Camera

	LevelWidth  float64
	LevelHeight float64
	Goal        entity.Rect
	Platforms   []entity.Rect
	Decorations []entity.Rect
}

// Snapshot captures the current frame for rendering
func (w *World) Snapshot() Snapshot {
	p := w.player
	snap := Snapshot{
		State: w.state,
		Tick:  w.tick,
		Player: PlayerView{
			X: p.X, Y: p.Y, W: p.W, H: p.H,
			VX: p.VX, VY: p.VY,
			FacingRight:    p.FacingRight,
			OnGround:       p.OnGround,
			Running:        w.physics.IsRunning(p),
			HP:             p.HP,
			MaxHP:          p.MaxHP,
			Invincible:     p.Invincible,
			Dead:           p.Dead,
			AttackPhase:    p.AttackPhase,
			AttackProgress: w.combat.Progress(p),
			AttackAngle:    p.AttackAngle,
			RunFrame:       p.RunFrame,
			LandSquish:     p.LandSquish,
			EarTwitch:      p.EarTwitch,
		},
		Enemies:     make([]EnemyView, 0, len(w.enemies)),
		Particles:   append([]entity.Particle(nil), w.effects.Particles()...),
		Camera:      w.camera,
		LevelWidth:  w.level.Width,
		LevelHeight: w.level.Height,
		Goal:        w.level.Goal,
		Platforms:   w.level.Platforms,
		Decorations: w.level.Decorations,
	}

	fade := float64(w.config.Physics.EnemyAI.FadeFrames)
	for _, e := range w.enemies {
		v := EnemyView{
			ID:   e.ID,
			Type: e.Type,
			X:    e.X, Y: e.Y, W: e.W, H: e.H,
			Alive:      e.Alive,
			FacingSign: e.FacingSign(),
			DyingTimer: e.DyingTimer,
		}
		if !e.Alive && fade > 0 {
			v.Fade = float64(e.DyingTimer) / fade
		}
		snap.Enemies = append(snap.Enemies, v)
	}

	return snap
}
