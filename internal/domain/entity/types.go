package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// EnemySpawn is the static spawn record of a single enemy
type EnemySpawn struct {
	Type        string
	X, Y        float64
	PatrolRange float64
}

// Level is the static world: solid platforms, decoration, the goal portal and spawn data.
// It is built once by the stage loader and never mutated during simulation.
type Level struct {
	Name   string
	Width  float64
	Height float64

	Platforms   []Rect
	Decorations []Rect // presentation only, never collides
	Goal        Rect

	SpawnX, SpawnY float64
	Enemies        []EnemySpawn
}

// HasGroundAt reports whether any platform's top band contains the probe point.
// The band extends tolerance units below the platform's bottom edge.
func (l *Level) HasGroundAt(probeX, footY, tolerance float64) bool {
	for _, p := range l.Platforms {
		if probeX >= p.X && probeX <= p.X+p.W &&
			footY >= p.Y && footY <= p.Y+p.H+tolerance {
			return true
		}
	}
	return false
}

// Input is the per-tick input contract.
// Held flags drive movement; the *Pressed edges fire once per key press.
type Input struct {
	Left    bool
	Right   bool
	Jump    bool
	Attack  bool
	Restart bool

	JumpPressed    bool
	AttackPressed  bool
	RestartPressed bool
}
