package config

import (
	"math"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configDir = "../../../cmd/game/configs"

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 960, cfg.Display.ScreenWidth)
	assert.Equal(t, 540, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 0.55, cfg.Physics.Gravity)
	assert.Equal(t, 18.0, cfg.Physics.MaxFallSpeed)
	assert.Equal(t, 0.82, cfg.Movement.Friction)
	assert.Equal(t, 13.0, cfg.Jump.Force)
	assert.Equal(t, 11.0, cfg.Jump.DoubleForce)
	assert.Equal(t, 2, cfg.Jump.MaxJumps)

	assert.Equal(t, 14, cfg.Combat.WindupFrames)
	assert.Equal(t, 6, cfg.Combat.SlashFrames)
	assert.Equal(t, 16, cfg.Combat.RecoveryFrames)
	assert.Equal(t, 40, cfg.Combat.Cooldown)
	assert.Equal(t, 100.0, cfg.Combat.Reach())
	assert.Equal(t, math.Pi*0.8, cfg.Combat.Arc())

	assert.Equal(t, 50, cfg.Damage.InvincibleFrames)
	assert.Equal(t, 20, cfg.EnemyAI.FadeFrames)
	assert.Equal(t, 12, cfg.Effects.EnemyDeath.Count)
	assert.Equal(t, "#ffee44", cfg.Effects.HitSpark.Color)
	assert.Equal(t, 4, cfg.Effects.Dust.Count)
	assert.Equal(t, 0.1, cfg.Camera.Lerp)
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, "mew", cfg.Player.ID)
	assert.Equal(t, 3, cfg.Player.MaxHP)
	assert.Equal(t, 32.0, cfg.Player.Hitbox.Width)
	assert.Equal(t, 38.0, cfg.Player.Hitbox.Height)

	shade, ok := cfg.Enemies["shade"]
	require.True(t, ok)
	assert.Equal(t, 36.0, shade.Hitbox.Width)
	assert.Equal(t, 1.2, shade.MoveSpeed)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 3200.0, cfg.Size.Width)
	assert.Equal(t, 600.0, cfg.Size.Height)
	assert.Equal(t, 60.0, cfg.PlayerSpawn.X)
	assert.Equal(t, 450.0, cfg.PlayerSpawn.Y)
	assert.Len(t, cfg.Platforms, 22)
	assert.Len(t, cfg.Decorations, 9)
	assert.Len(t, cfg.Enemies, 6)
	assert.Equal(t, RectConfig{X: 2780, Y: 440, W: 50, H: 80}, cfg.Goal)
	assert.Equal(t, EnemySpawnConfig{Type: "shade", X: 430, Y: 490, Patrol: 100}, cfg.Enemies[0])
}

func TestLoader_LoadStage_Missing(t *testing.T) {
	loader := NewLoader(configDir)

	_, err := loader.LoadStage("nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load stage nowhere")
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Entities)
	assert.Equal(t, configDir, loader.BasePath())
}

func TestFSLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr string
	}{
		{
			name:    "missing physics",
			files:   fstest.MapFS{},
			wantErr: "failed to read physics.json",
		},
		{
			name: "malformed physics",
			files: fstest.MapFS{
				"physics.json": {Data: []byte(`{"physics": `)},
			},
			wantErr: "failed to parse physics.json",
		},
		{
			name: "bad burst color",
			files: fstest.MapFS{
				"physics.json": {Data: []byte(`{"effects": {"hitSpark": {"color": "yellow"}}}`)},
			},
			wantErr: "effects.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewFSLoader(tt.files, ".")
			_, err := loader.LoadAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFSLoader_LoadStage(t *testing.T) {
	files := fstest.MapFS{
		"stages/tiny.json": {Data: []byte(`{
			"id": "tiny",
			"size": {"width": 400, "height": 300},
			"platforms": [{"x": 0, "y": 200, "w": 400, "h": 20}],
			"goal": {"x": 350, "y": 150, "w": 20, "h": 50}
		}`)},
	}
	loader := NewFSLoader(files, ".")

	cfg, err := loader.LoadStage("tiny")
	require.NoError(t, err)
	assert.Equal(t, "tiny", cfg.ID)
	assert.Len(t, cfg.Platforms, 1)
	assert.Empty(t, cfg.Enemies)
}

func TestFSLoader_LoadEntities_BadEnemyColor(t *testing.T) {
	files := fstest.MapFS{
		"entities.json": {Data: []byte(`{
			"player": {"id": "mew", "hitbox": {"width": 32, "height": 38}, "maxHP": 3},
			"enemies": {"shade": {"id": "shade", "hitbox": {"width": 36, "height": 36}, "moveSpeed": 1.2, "color": "purple"}}
		}`)},
	}

	_, err := NewFSLoader(files, ".").LoadEntities()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "enemies.shade")
}

func TestFSLoader_LoadStage_Malformed(t *testing.T) {
	files := fstest.MapFS{
		"stages/broken.json": {Data: []byte(`{"id": `)},
	}

	_, err := NewFSLoader(files, ".").LoadStage("broken")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse stages/broken.json")
}
