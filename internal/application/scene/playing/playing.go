// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/protozombie/internal/application/hud"
	"github.com/younwookim/protozombie/internal/application/scene"
	"github.com/younwookim/protozombie/internal/application/state"
	"github.com/younwookim/protozombie/internal/application/system"
	"github.com/younwookim/protozombie/internal/infrastructure/config"
	"github.com/younwookim/protozombie/internal/infrastructure/storage"
)

// Colors for rendering
var (
	colorWall      = color.RGBA{80, 80, 100, 255}
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorFacing    = color.RGBA{220, 255, 220, 255}
	colorTracer    = color.RGBA{255, 230, 150, 255}
	colorAmmoBox   = color.RGBA{255, 215, 0, 255}
	colorHealthkit = color.RGBA{240, 240, 240, 255}
	colorBuyable   = color.RGBA{90, 140, 255, 255}
	colorLight     = color.RGBA{255, 255, 200, 60}
)

const (
	messageTTL  = 2.5
	tracerTime  = 0.05
	tracerRange = 6.0
	facingRange = 1.5
	lightRange  = 5.0
)

// Options configure a Playing scene
type Options struct {
	Seed       int64                 // 0 uses the configured seed, then the clock
	RecordPath string                // empty disables recording
	Sounds     system.SoundPlayer    // nil is silent
	Profile    *storage.ProfileStore // nil skips best score tracking
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	world   *World
	state   state.GameState
	input   *system.InputSystem
	sounds  system.SoundPlayer
	profile *storage.ProfileStore

	hud       *hud.Model
	presenter *hud.Presenter

	screenW int
	screenH int
	zoom    float64

	// Feedback
	hitstopFrames int
	shake         float64
	shakeDecay    float64
	tracer        float64
	newBest       bool

	fixedSeed int64
	cursor    func(captured bool)

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	fixed := opts.Seed
	if fixed == 0 {
		fixed = cfg.Settings.Spawn.Seed
	}

	display := cfg.Settings.Display
	p := &Playing{
		config:         cfg,
		state:          state.StatePlaying,
		input:          system.NewInputSystem(),
		sounds:         opts.Sounds,
		profile:        opts.Profile,
		hud:            hud.NewModel(messageTTL),
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		zoom:           display.PixelsPerUnit,
		shakeDecay:     cfg.Settings.Feedback.ScreenShake.Decay,
		fixedSeed:      fixed,
		cursor:         setCursorCaptured,
		recordFilename: opts.RecordPath,
	}
	p.presenter = hud.NewPresenter(p.hud)

	world, err := NewWorld(cfg, p.nextSeed(), opts.Sounds)
	if err != nil {
		return nil, err
	}
	p.world = world
	p.wireWorld()

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(world.Seed(), cfg.Level.ID, display.Framerate)
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, world.Seed())
	}

	p.presenter.Sync(world.Player)
	return p, nil
}

func setCursorCaptured(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

func (p *Playing) nextSeed() int64 {
	if p.fixedSeed != 0 {
		return p.fixedSeed
	}
	return time.Now().UnixNano()
}

// wireWorld hooks feedback and the stored sensitivity into a fresh world
func (p *Playing) wireWorld() {
	feedback := p.config.Settings.Feedback
	p.world.OnHitstop = func() {
		if feedback.Hitstop.Enabled {
			p.hitstopFrames = feedback.Hitstop.Frames
		}
	}
	p.world.OnScreenShake = func(intensity float64) {
		if feedback.ScreenShake.Enabled {
			p.shake = max(p.shake, intensity*feedback.ScreenShake.Intensity)
		}
	}

	if p.profile != nil {
		if s := p.profile.Profile().MouseSensitivity; s > 0 {
			p.world.Player.Stats.MouseSensitivity = s
		}
	}
}

func (p *Playing) setState(s state.GameState) {
	p.state = s
	p.cursor(s.CapturesCursor())
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.hitstopFrames > 0 {
		p.hitstopFrames--
		return nil, nil
	}

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying(dt)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.setState(p.state.TogglePause())
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return nil, scene.ErrQuit
		}
	case state.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.setState(p.state.TogglePause())
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		p.adjustSensitivity(1.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		p.adjustSensitivity(1 / 1.1)
	}

	p.step(p.input.GetInput(), dt)
}

// step runs one tick of the world with the given input
func (p *Playing) step(in system.InputState, dt float64) {
	if p.recorder != nil {
		p.recorder.RecordFrame(in, p.world.Player.Stats.MouseSensitivity)
	}

	p.handleEvents(p.world.Step(in, dt))
	p.presenter.Sync(p.world.Player)
	p.hud.Update(dt)

	p.shake *= p.shakeDecay
	p.tracer = max(0, p.tracer-dt)
}

func (p *Playing) handleEvents(events []system.Event) {
	for _, ev := range events {
		if text, ok := hud.Describe(ev); ok {
			p.hud.Notify(text)
		}
		if cue := soundCue(ev); cue != "" && p.sounds != nil {
			p.sounds.Play(cue)
		}

		switch e := ev.(type) {
		case system.ShotFired:
			p.tracer = tracerTime
		case system.PlayerDamaged:
			p.world.OnScreenShake(e.Amount / p.world.Player.MaxLife())
		case system.PlayerDied:
			p.gameOver(e.Points)
		}
	}
}

// soundCue maps events to the effect played for them; shots carry their own sound
func soundCue(ev system.Event) string {
	switch ev.(type) {
	case system.EnemyHit:
		return "enemy_hit"
	case system.EnemyKilled:
		return "enemy_death"
	case system.PlayerDamaged:
		return "player_hurt"
	case system.PickupCollected:
		return "pickup"
	case system.WeaponBought:
		return "buy"
	case system.PurchaseRefused:
		return "dry_fire"
	case system.Reloaded:
		return "reload"
	}
	return ""
}

func (p *Playing) gameOver(points uint32) {
	p.setState(state.StateGameOver)
	log.Printf("Game over: %d points, %d kills in %d frames", points, p.world.Kills(), p.world.Frame())

	if p.profile != nil {
		p.newBest = p.profile.RecordGame(points)
		if err := p.profile.Save(); err != nil {
			log.Printf("Failed to save profile: %v", err)
		}
	}
	if p.recorder != nil {
		p.saveRecording()
	}
}

func (p *Playing) adjustSensitivity(factor float64) {
	stats := &p.world.Player.Stats
	stats.MouseSensitivity *= factor
	p.hud.Notify(fmt.Sprintf("Sensitivity %.3f", stats.MouseSensitivity))
	if p.profile != nil {
		p.profile.SetMouseSensitivity(stats.MouseSensitivity)
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
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	if err := p.world.Reset(p.nextSeed()); err != nil {
		log.Printf("Failed to restart level: %v", err)
		return
	}
	p.wireWorld()

	p.hud.ClearMessages()
	p.presenter.Reset()
	p.presenter.Sync(p.world.Player)
	p.shake = 0
	p.tracer = 0
	p.newBest = false
	p.setState(state.StatePlaying)

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.world.Seed(), p.config.Level.ID, p.config.Settings.Display.Framerate)
		log.Printf("Recording restarted (seed: %d)", p.world.Seed())
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.setState(p.state)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.cursor(false)
	p.saveRecording()
	if p.profile != nil {
		if err := p.profile.Save(); err != nil {
			log.Printf("Failed to save profile: %v", err)
		}
	}
}
