// Package world owns one running simulation: the level, the actors, the
// effects and the game state, advanced one tick at a time by Step.
package world

import (
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/younwookim/mew/internal/application/state"
	"github.com/younwookim/mew/internal/application/system"
	"github.com/younwookim/mew/internal/domain/entity"
	"github.com/younwookim/mew/internal/infrastructure/config"
)

// World is a single deterministic simulation.
// It is not safe for concurrent use; Step runs everything synchronously.
type World struct {
	config *config.GameConfig
	level  *entity.Level
	rng    *rand.Rand
	logger zerolog.Logger

	physics *system.PhysicsSystem
	input   *system.InputSystem
	combat  *system.CombatSystem
	enemyAI *system.EnemySystem
	effects *system.EffectsSystem

	player  *entity.Player
	enemies []*entity.Enemy
	camera  entity.Camera
	state   state.GameState
	tick    int
	events  []system.Event
}

// New creates a world for level and puts it in the playing state.
// All randomness is drawn from rng, so equal seeds and inputs replay identically.
func New(cfg *config.GameConfig, level *entity.Level, rng *rand.Rand, logger zerolog.Logger) *World {
	w := &World{
		config:  cfg,
		level:   level,
		rng:     rng,
		logger:  logger.With().Str("level", level.Name).Logger(),
		physics: system.NewPhysicsSystem(cfg.Physics, level),
		input:   system.NewInputSystem(cfg.Physics),
		combat:  system.NewCombatSystem(cfg.Physics, level),
		effects: system.NewEffectsSystem(&cfg.Physics.Effects, rng),
		events:  make([]system.Event, 0, 8),
	}
	w.enemyAI = system.NewEnemySystem(cfg.Physics, level, w.physics)
	w.wireEvents()
	w.spawn()
	return w
}

// wireEvents connects system callbacks to effects and the per-tick event list
func (w *World) wireEvents() {
	w.physics.OnLand = func(x, y float64) {
		w.effects.Dust(x, y)
		w.emit(system.LandedEvent{X: x, Y: y})
	}
	w.input.OnDoubleJump = func(x, y float64) {
		w.effects.DoubleJump(x, y)
		w.emit(system.DoubleJumpEvent{X: x, Y: y})
	}
	w.combat.OnAttackStart = func(p *entity.Player) {
		w.emit(system.AttackStartedEvent{Angle: p.AttackAngle})
	}
	w.combat.OnEnemyKilled = func(e *entity.Enemy) {
		w.effects.EnemyDeath(e.CenterX(), e.CenterY())
		w.effects.HitSpark(e.CenterX(), e.CenterY())
		w.emit(system.EnemyKilledEvent{EnemyID: e.ID, X: e.CenterX(), Y: e.CenterY()})
	}
	w.combat.OnPlayerDamaged = func(p *entity.Player, amount int) {
		w.effects.PlayerDamaged(p.CenterX(), p.CenterY())
		w.emit(system.PlayerDamagedEvent{Amount: amount, HP: p.HP})
	}
	w.combat.OnPlayerFell = func(*entity.Player) {
		w.emit(system.PlayerFellEvent{})
	}
}

func (w *World) emit(e system.Event) {
	w.events = append(w.events, e)
}

// spawn creates the player and enemies from the level's spawn data
func (w *World) spawn() {
	pc := w.config.Entities.Player
	w.player = entity.NewPlayer(
		w.level.SpawnX, w.level.SpawnY,
		pc.Hitbox.Width, pc.Hitbox.Height,
		pc.MaxHP, w.config.Physics.Jump.MaxJumps,
	)

	w.enemies = make([]*entity.Enemy, 0, len(w.level.Enemies))
	for i, spawn := range w.level.Enemies {
		ec, ok := w.config.Entities.Enemies[spawn.Type]
		if !ok {
			w.logger.Warn().Str("type", spawn.Type).Int("index", i).Msg("unknown enemy type, skipping spawn")
			continue
		}
		w.enemies = append(w.enemies, entity.NewEnemy(
			entity.EntityID(i+1), spawn,
			ec.Hitbox.Width, ec.Hitbox.Height, ec.MoveSpeed,
		))
	}

	w.camera = entity.Camera{}
	w.state = state.StatePlaying
	w.tick = 0
}

// Reset recreates the player, enemies, effects and camera from the level and resumes play
func (w *World) Reset() {
	prev := w.state
	w.effects.Reset()
	w.spawn()
	w.logger.Info().
		Str("from", prev.String()).
		Int("enemies", len(w.enemies)).
		Msg("world reset")
}

// Step advances the simulation by one tick and returns the resulting state.
// A restart edge in a terminal state resets first; terminal states otherwise do nothing.
func (w *World) Step(input entity.Input) state.GameState {
	w.events = w.events[:0]

	if w.state.IsTerminal() && input.RestartPressed {
		w.Reset()
	}
	if w.state != state.StatePlaying {
		return w.state
	}

	w.tick++

	if !w.player.Dead {
		w.updatePlayer(input)
	}
	w.enemyAI.UpdateAll(w.enemies)
	w.enemies = system.CompactEnemies(w.enemies)
	w.effects.Update()
	w.updateCamera()

	prev := w.state
	if w.player.Dead {
		w.state = state.StateDead
	}
	if entity.Overlaps(w.player.AABB(), w.level.Goal) {
		w.state = state.StateWin
	}

	for _, e := range w.events {
		w.logger.Debug().Int("tick", w.tick).Str("event", system.EventName(e)).Msg("event")
	}
	if w.state != prev {
		w.logger.Info().
			Int("tick", w.tick).
			Str("state", w.state.String()).
			Int("hp", w.player.HP).
			Msg("game state changed")
	}

	return w.state
}

// updatePlayer runs the player's tick; the order of these calls is significant
func (w *World) updatePlayer(input entity.Input) {
	p := w.player

	w.input.UpdatePlayer(p, input)
	w.combat.TryStartAttack(p, input)
	w.physics.UpdatePlayer(p)
	w.combat.CheckFall(p)
	w.combat.UpdateAttack(p, w.enemies)
	w.combat.UpdateDamage(p, w.enemies)
	w.physics.Animate(p)
}

func (w *World) updateCamera() {
	disp := w.config.Physics.Display
	cam := w.config.Physics.Camera
	viewW := float64(disp.ScreenWidth)
	viewH := float64(disp.ScreenHeight)

	w.camera.Follow(
		w.player.CenterX()-viewW*cam.AnchorX,
		w.player.CenterY()-viewH*cam.AnchorY,
		cam.Lerp,
		w.level.Width-viewW,
		w.level.Height-viewH+cam.BottomSlack,
	)
}

// State returns the current game state
func (w *World) State() state.GameState { return w.state }

// Tick returns the number of ticks simulated since the last reset
func (w *World) Tick() int { return w.tick }

// Player returns the live player
func (w *World) Player() *entity.Player { return w.player }

// Enemies returns the live enemy list, including enemies still fading out
func (w *World) Enemies() []*entity.Enemy { return w.enemies }

// Level returns the static level
func (w *World) Level() *entity.Level { return w.level }

// Camera returns the current camera position
func (w *World) Camera() entity.Camera { return w.camera }

// Particles returns the live particles
func (w *World) Particles() []entity.Particle { return w.effects.Particles() }

// Events returns the events emitted by the last Step
func (w *World) Events() []system.Event { return w.events }

// AliveEnemies returns how many enemies are still alive
func (w *World) AliveEnemies() int {
	n := 0
	for _, e := range w.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}
