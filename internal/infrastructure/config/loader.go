package config

import (
	"io/fs"
	"os"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// GameConfig is everything a world needs besides the stage itself
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader reads the JSON config tree (physics.json, entities.json, stages/)
// from any fs.FS, so the embedded copy and a directory on disk behave the same.
type Loader struct {
	fsys     fs.FS
	basePath string
}

func NewLoader(basePath string) *Loader {
	return NewFSLoader(os.DirFS(basePath), basePath)
}

// NewFSLoader reads from fsys; basePath is only reported, never joined
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{fsys: fsys, basePath: basePath}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics reads physics.json and checks every burst color
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.readJSON("physics.json", &cfg); err != nil {
		return nil, err
	}

	bursts := map[string]string{
		"enemyDeath": cfg.Effects.EnemyDeath.Color,
		"hitSpark":   cfg.Effects.HitSpark.Color,
		"damage":     cfg.Effects.Damage.Color,
		"doubleJump": cfg.Effects.DoubleJump.Color,
		"dust":       cfg.Effects.Dust.Color,
	}
	for name, c := range bursts {
		if _, err := ParseColor(c); err != nil {
			return nil, eris.Wrapf(err, "failed to parse physics.json: effects.%s", name)
		}
	}

	return &cfg, nil
}

// LoadEntities reads entities.json and checks enemy colors
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.readJSON("entities.json", &cfg); err != nil {
		return nil, err
	}

	for name, e := range cfg.Enemies {
		if _, err := ParseColor(e.Color); err != nil {
			return nil, eris.Wrapf(err, "failed to parse entities.json: enemies.%s", name)
		}
	}

	return &cfg, nil
}

// LoadStage reads stages/<name>.json
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if err := l.readJSON("stages/"+name+".json", &cfg); err != nil {
		return nil, eris.Wrapf(err, "failed to load stage %s", name)
	}
	return &cfg, nil
}

// LoadAll loads physics and entities; stages are loaded separately by name
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{Physics: physics, Entities: entities}, nil
}

func (l *Loader) readJSON(path string, v any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return eris.Wrapf(err, "failed to read %s", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return eris.Wrapf(err, "failed to parse %s", path)
	}
	return nil
}
