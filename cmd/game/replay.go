package main

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/younwookim/mew/internal/application/replay"
	"github.com/younwookim/mew/internal/application/state"
	"github.com/younwookim/mew/internal/application/world"
	"github.com/younwookim/mew/internal/domain/entity"
	"github.com/younwookim/mew/internal/infrastructure/config"
)

// replaySummary is the end state of a headless replay
type replaySummary struct {
	Frames       int
	Ticks        int
	State        state.GameState
	HP           int
	EnemiesAlive int
	PlayerX      float64
	PlayerY      float64
}

// runReplay feeds every recorded frame into a fresh world seeded like the recording
func runReplay(cfg *config.GameConfig, level *entity.Level, data *replay.ReplayData, logger zerolog.Logger) replaySummary {
	if data.Stage != level.Name {
		logger.Warn().
			Str("recorded", data.Stage).
			Str("loaded", level.Name).
			Msg("replay was recorded on a different stage")
	}

	w := world.New(cfg, level, rand.New(rand.NewSource(data.Seed)), logger)
	r := replay.NewReplayer(*data)

	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		w.Step(in)
	}

	p := w.Player()
	return replaySummary{
		Frames:       r.TotalFrames(),
		Ticks:        w.Tick(),
		State:        w.State(),
		HP:           p.HP,
		EnemiesAlive: w.AliveEnemies(),
		PlayerX:      p.X,
		PlayerY:      p.Y,
	}
}

func (s replaySummary) log(logger zerolog.Logger) {
	logger.Info().
		Int("frames", s.Frames).
		Int("ticks", s.Ticks).
		Str("state", s.State.String()).
		Int("hp", s.HP).
		Int("enemies_alive", s.EnemiesAlive).
		Float64("x", s.PlayerX).
		Float64("y", s.PlayerY).
		Msg("replay finished")
}
