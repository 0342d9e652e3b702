package system

import (
	"github.com/younwookim/mew/internal/domain/entity"
	"github.com/younwookim/mew/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Level entity.
// Values are taken as-is: empty patrol ranges and off-level spawns are accepted.
func LoadStage(cfg *config.StageConfig) *entity.Level {
	level := &entity.Level{
		Name:        cfg.Name,
		Width:       cfg.Size.Width,
		Height:      cfg.Size.Height,
		Platforms:   toRects(cfg.Platforms),
		Decorations: toRects(cfg.Decorations),
		Goal:        toRect(cfg.Goal),
		SpawnX:      cfg.PlayerSpawn.X,
		SpawnY:      cfg.PlayerSpawn.Y,
		Enemies:     make([]entity.EnemySpawn, 0, len(cfg.Enemies)),
	}
	if level.Name == "" {
		level.Name = cfg.ID
	}

	for _, e := range cfg.Enemies {
		level.Enemies = append(level.Enemies, entity.EnemySpawn{
			Type:        e.Type,
			X:           e.X,
			Y:           e.Y,
			PatrolRange: e.Patrol,
		})
	}

	return level
}

func toRects(rs []config.RectConfig) []entity.Rect {
	out := make([]entity.Rect, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRect(r))
	}
	return out
}

func toRect(r config.RectConfig) entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
