package entity

// Enemy represents a patrolling enemy.
// Enemies are alive, then dying (fading out), then removed by the world.
type Enemy struct {
	Body
	ID   EntityID
	Type string

	OriginX     float64
	PatrolRange float64

	HP         int
	Alive      bool
	DyingTimer int
}

// NewEnemy creates an enemy at its spawn point, walking right at speed
func NewEnemy(id EntityID, spawn EnemySpawn, w, h, speed float64) *Enemy {
	return &Enemy{
		Body: Body{
			X:  spawn.X,
			Y:  spawn.Y,
			W:  w,
			H:  h,
			VX: speed,
		},
		ID:          id,
		Type:        spawn.Type,
		OriginX:     spawn.X,
		PatrolRange: spawn.PatrolRange,
		HP:          1,
		Alive:       true,
	}
}

// FacingSign returns +1 when walking right, -1 otherwise
func (e *Enemy) FacingSign() float64 {
	if e.VX > 0 {
		return 1
	}
	return -1
}

// Kill marks the enemy as dead and starts its fade-out
func (e *Enemy) Kill(fadeFrames int) {
	e.HP = 0
	e.Alive = false
	e.DyingTimer = fadeFrames
}

// Removable returns true once a dead enemy has finished fading
func (e *Enemy) Removable() bool {
	return !e.Alive && e.DyingTimer <= 0
}
