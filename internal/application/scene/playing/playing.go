// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/younwookim/mew/internal/application/scene"
	"github.com/younwookim/mew/internal/application/state"
	"github.com/younwookim/mew/internal/application/system"
	"github.com/younwookim/mew/internal/application/world"
	"github.com/younwookim/mew/internal/domain/entity"
	"github.com/younwookim/mew/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{14, 12, 32, 255}
	colorStar       = color.RGBA{200, 200, 255, 255}
	colorPillar     = color.RGBA{36, 32, 64, 255}
	colorPlatform   = color.RGBA{70, 64, 110, 255}
	colorPlatformHi = color.RGBA{120, 110, 170, 255}
	colorPortal     = color.RGBA{120, 220, 255, 255}
	colorPlayer     = color.RGBA{235, 235, 245, 255}
	colorEar        = color.RGBA{255, 170, 200, 255}
	colorTail       = color.RGBA{255, 240, 160, 255}
	colorHeart      = color.RGBA{255, 80, 110, 255}
	colorHeartEmpty = color.RGBA{70, 50, 70, 255}
	colorPause      = color.RGBA{0, 0, 0, 128}
	colorDead       = color.RGBA{100, 0, 0, 180}
	colorWin        = color.RGBA{20, 60, 90, 180}
)

const (
	starCount       = 120
	starParallax    = 0.3
	hintTicks       = 300
	winFadeFrames   = 60
	heartSize       = 14
	heartSpacing    = 20
	invincibleBlink = 4
)

type star struct {
	x, y float64
	size float64
}

// Playing is the main gameplay scene
type Playing struct {
	config *config.GameConfig
	world  *world.World
	input  *system.InputSystem
	logger zerolog.Logger

	screenW int
	screenH int

	paused   bool
	winTimer int
	stars    []star

	enemyColors map[string]color.RGBA

	// readInput is the per-frame input source; the keyboard by default
	readInput func() entity.Input

	// Input recording
	seed           int64
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene for level.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, level *entity.Level, seed int64, recordPath string, logger zerolog.Logger) *Playing {
	p := &Playing{
		config:         cfg,
		world:          world.New(cfg, level, rand.New(rand.NewSource(seed)), logger),
		input:          system.NewInputSystem(cfg.Physics),
		logger:         logger.With().Str("scene", "playing").Logger(),
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		stars:          makeStars(level),
		enemyColors:    make(map[string]color.RGBA, len(cfg.Entities.Enemies)),
		seed:           seed,
		recordFilename: recordPath,
	}
	p.readInput = p.input.GetInput

	for name, ec := range cfg.Entities.Enemies {
		p.enemyColors[name] = config.MustColor(ec.Color)
	}

	if recordPath != "" {
		p.recorder = NewRecorder(seed, level.Name)
		p.logger.Info().Str("file", recordPath).Int64("seed", seed).Msg("recording enabled")
	}

	return p
}

// makeStars scatters the background from a fixed seed so it never touches the simulation RNG
func makeStars(level *entity.Level) []star {
	r := rand.New(rand.NewSource(7))
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{
			x:    r.Float64() * level.Width,
			y:    r.Float64() * level.Height * 0.7,
			size: 1 + float64(r.Intn(2)),
		}
	}
	return stars
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !p.world.State().IsTerminal() {
		p.paused = !p.paused
	}
	if p.paused {
		return nil, nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	p.step(p.readInput())

	return nil, nil // nil = stay on this scene
}

// step records and simulates one frame of input
func (p *Playing) step(input entity.Input) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	prev := p.world.State()
	cur := p.world.Step(input)

	if cur == state.StateWin {
		p.winTimer++
	} else {
		p.winTimer = 0
	}

	// Auto-save recording when the run ends
	if cur.IsTerminal() && !prev.IsTerminal() && p.recorder != nil {
		p.saveRecording()
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error().Err(err).Str("file", filename).Msg("failed to save recording")
		return
	}
	p.logger.Info().Str("file", filename).Int("frames", p.recorder.FrameCount()).Msg("recording saved")
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	snap := p.world.Snapshot()
	camX, camY := snap.Camera.X, snap.Camera.Y

	screen.Fill(colorBG)

	p.drawStars(screen, camX, camY)
	p.drawRects(screen, snap.Decorations, camX, camY, colorPillar)
	p.drawPlatforms(screen, snap.Platforms, camX, camY)
	p.drawPortal(screen, snap, camX, camY)
	p.drawEnemies(screen, snap.Enemies, camX, camY)
	p.drawParticles(screen, snap.Particles, camX, camY)
	p.drawPlayer(screen, snap.Player, camX, camY)

	p.drawHUD(screen, snap)

	switch {
	case p.paused:
		p.drawPauseOverlay(screen)
	case snap.State == state.StateDead:
		p.drawDeadOverlay(screen)
	case snap.State == state.StateWin:
		p.drawWinOverlay(screen)
	}
}

func (p *Playing) drawStars(screen *ebiten.Image, camX, camY float64) {
	for _, s := range p.stars {
		x := s.x - camX*starParallax
		y := s.y - camY*starParallax
		if x < -2 || x > float64(p.screenW) {
			continue
		}
		ebitenutil.DrawRect(screen, x, y, s.size, s.size, colorStar)
	}
}

func (p *Playing) drawRects(screen *ebiten.Image, rects []entity.Rect, camX, camY float64, c color.Color) {
	for _, r := range rects {
		ebitenutil.DrawRect(screen, r.X-camX, r.Y-camY, r.W, r.H, c)
	}
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, platforms []entity.Rect, camX, camY float64) {
	for _, r := range platforms {
		ebitenutil.DrawRect(screen, r.X-camX, r.Y-camY, r.W, r.H, colorPlatform)
		ebitenutil.DrawRect(screen, r.X-camX, r.Y-camY, r.W, 3, colorPlatformHi)
	}
}

func (p *Playing) drawPortal(screen *ebiten.Image, snap world.Snapshot, camX, camY float64) {
	g := snap.Goal
	pulse := 0.6 + 0.4*math.Sin(float64(snap.Tick)*0.08)
	ebitenutil.DrawRect(screen, g.X-camX, g.Y-camY, g.W, g.H, fade(colorPortal, pulse))
	ebitenutil.DrawRect(screen, g.X-camX+6, g.Y-camY+6, g.W-12, g.H-12, colorBG)
}

func (p *Playing) drawEnemies(screen *ebiten.Image, enemies []world.EnemyView, camX, camY float64) {
	for _, e := range enemies {
		c, ok := p.enemyColors[e.Type]
		if !ok {
			c = colorHeart
		}
		alpha := 1.0
		if !e.Alive {
			alpha = e.Fade
		}
		x := e.X - camX
		y := e.Y - camY
		ebitenutil.DrawRect(screen, x, y, e.W, e.H, fade(c, alpha))

		// Eye on the facing side
		eyeX := x + e.W*0.65
		if e.FacingSign < 0 {
			eyeX = x + e.W*0.35 - 4
		}
		ebitenutil.DrawRect(screen, eyeX, y+e.H*0.3, 4, 4, fade(colorPlayer, alpha))
	}
}

func (p *Playing) drawParticles(screen *ebiten.Image, particles []entity.Particle, camX, camY float64) {
	for i := range particles {
		pt := &particles[i]
		half := pt.Size / 2
		ebitenutil.DrawRect(screen, pt.X-half-camX, pt.Y-half-camY, pt.Size, pt.Size, fade(pt.Color, pt.Alpha()))
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, pv world.PlayerView, camX, camY float64) {
	// Blink while invincible
	if pv.Invincible > 0 && (pv.Invincible/invincibleBlink)%2 == 1 {
		return
	}

	// Landing squash
	w, h := pv.W, pv.H
	if pv.LandSquish > 0 {
		k := float64(pv.LandSquish) / float64(p.config.Physics.Feedback.LandSquishFrames)
		w += 6 * k
		h -= 6 * k
	}
	x := pv.X + (pv.W-w)/2 - camX
	y := pv.Y + (pv.H - h) - camY

	// Run bob
	if pv.Running && pv.RunFrame%2 == 1 {
		y--
	}

	ebitenutil.DrawRect(screen, x, y, w, h, colorPlayer)

	// Ears
	earLift := 0.0
	if pv.EarTwitch > 0 {
		earLift = 3
	}
	ebitenutil.DrawRect(screen, x+4, y-6-earLift, 6, 6+earLift, colorEar)
	ebitenutil.DrawRect(screen, x+w-10, y-6, 6, 6, colorEar)

	p.drawTail(screen, pv, camX, camY)
}

// drawTail sweeps the tail through the slash arc while attacking
func (p *Playing) drawTail(screen *ebiten.Image, pv world.PlayerView, camX, camY float64) {
	c := p.config.Physics.Combat
	sign := 1.0
	if !pv.FacingRight {
		sign = -1
	}
	ox := pv.X + pv.W/2 - sign*c.TailOffsetX - camX
	oy := pv.Y + pv.H/2 + c.TailOffsetY - camY

	var angle, length float64
	switch pv.AttackPhase {
	case entity.PhaseWindup:
		// Coil behind the body
		angle = pv.AttackAngle + math.Pi - c.Arc()/2*pv.AttackProgress
		length = 18
	case entity.PhaseSlash:
		angle = pv.AttackAngle - c.Arc()/2 + c.Arc()*pv.AttackProgress
		length = c.Range
	case entity.PhaseRecovery:
		angle = pv.AttackAngle + c.Arc()/2*(1-pv.AttackProgress)
		length = 18 + (c.Range-18)*(1-pv.AttackProgress)
	default:
		angle = pv.AttackAngle + math.Pi*0.85
		length = 16
	}

	ebitenutil.DrawLine(screen, ox, oy, ox+math.Cos(angle)*length, oy+math.Sin(angle)*length, colorTail)
}

func (p *Playing) drawHUD(screen *ebiten.Image, snap world.Snapshot) {
	for i := 0; i < snap.Player.MaxHP; i++ {
		c := colorHeartEmpty
		if i < snap.Player.HP {
			c = colorHeart
		}
		ebitenutil.DrawRect(screen, float64(12+i*heartSpacing), 12, heartSize, heartSize, c)
	}

	alive := 0
	for _, e := range snap.Enemies {
		if e.Alive {
			alive++
		}
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Shades: %d", alive), 12, 32)

	if snap.Tick < hintTicks && snap.State == state.StatePlaying {
		ebitenutil.DebugPrintAt(screen, "Arrows/WASD: Move | Up/W/Space: Jump (x2) | J/Z/X: Tail slash | Esc: Pause", 12, p.screenH-24)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorPause)
	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawDeadOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorDead)
	ebitenutil.DebugPrintAt(screen, "MEW FELL SILENT\n\nPress R to restart", p.screenW/2-60, p.screenH/2-20)
}

func (p *Playing) drawWinOverlay(screen *ebiten.Image) {
	k := math.Min(1, float64(p.winTimer)/winFadeFrames)
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), fade(colorWin, k))
	if k < 1 {
		return
	}
	text := fmt.Sprintf("THE SONG IS COMPLETE\n\nTime: %.1fs\n\nPress R to play again",
		float64(p.world.Tick())/float64(p.config.Physics.Display.Framerate))
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-30)
}

// fade scales a color by alpha using pre-multiplied alpha
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// World returns the simulation driven by this scene
func (p *Playing) World() *world.World {
	return p.world
}

// Paused reports whether the scene is paused
func (p *Playing) Paused() bool {
	return p.paused
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info().Str("level", p.world.Level().Name).Int64("seed", p.seed).Msg("scene entered")
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the configured display size (implements scene.Layouter)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
