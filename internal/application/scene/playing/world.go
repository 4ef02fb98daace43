package playing

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/protozombie/internal/application/system"
	"github.com/younwookim/protozombie/internal/domain/entity"
	"github.com/younwookim/protozombie/internal/infrastructure/config"
	"github.com/younwookim/protozombie/internal/infrastructure/navigation"
)

// World is one play session without any presentation.
// Replays drive it headless; the Playing scene draws it.
type World struct {
	cfg  *config.GameConfig
	seed int64

	Level  *system.Level
	Player *entity.Player

	events  *system.EventQueue
	sounds  system.SoundPlayer
	combat  *system.CombatSystem
	players *system.PlayerSystem
	pursuit *system.PursuitSystem
	spawner *system.SpawnSystem

	frame int
	over  bool
	kills int

	// Feedback hooks, forwarded from combat
	OnHitstop     func()
	OnScreenShake func(intensity float64)
}

// NewWorld builds the level and the player. The seed fixes the spawn
// point sequence. sounds may be nil.
func NewWorld(cfg *config.GameConfig, seed int64, sounds system.SoundPlayer) (*World, error) {
	w := &World{cfg: cfg, sounds: sounds}
	if err := w.Reset(seed); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset rebuilds the session from scratch with a new seed
func (w *World) Reset(seed int64) error {
	settings := w.cfg.Settings

	level, err := system.LoadLevel(w.cfg.Level, settings, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("failed to load level %s: %w", w.cfg.Level.ID, err)
	}

	player, err := entity.NewPlayer(level.Stage.PlayerSpawn, system.PlayerStatsFrom(&settings.Player))
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	if err := system.GiveLoadout(player, &settings.Player); err != nil {
		return fmt.Errorf("failed to equip player: %w", err)
	}

	events := system.NewEventQueue()
	physics := system.NewPhysicsSystem(level.Stage)
	combat := system.NewCombatSystem(level.Stage, settings.Combat.Range, events)
	combat.OnHitstop = func() {
		if w.OnHitstop != nil {
			w.OnHitstop()
		}
	}
	combat.OnScreenShake = func(intensity float64) {
		if w.OnScreenShake != nil {
			w.OnScreenShake(intensity)
		}
	}

	pursuit := system.NewPursuitSystem(navigation.NewGridPathFinder(level.Stage), physics, events)
	spawner, err := system.NewSpawnSystem(level.Pool, pursuit, settings.Spawn.Interval)
	if err != nil {
		return fmt.Errorf("failed to create spawner: %w", err)
	}

	w.seed = seed
	w.Level = level
	w.Player = player
	w.events = events
	w.combat = combat
	w.players = system.NewPlayerSystem(physics, combat, w.sounds, events)
	w.pursuit = pursuit
	w.spawner = spawner
	w.frame = 0
	w.over = false
	w.kills = 0
	return nil
}

// Step advances the session by one tick and returns what happened.
// After the player died Step does nothing.
func (w *World) Step(in system.InputState, dt float64) []system.Event {
	if w.over {
		return nil
	}
	w.frame++

	w.players.Update(w.Player, in, w.Level, dt)
	w.pursuit.UpdateAll(w.Level.Pool, w.Player, dt)
	w.spawner.Update(dt, w.Player.Position)

	events := w.events.Drain()
	for _, ev := range events {
		switch ev.(type) {
		case system.EnemyKilled:
			w.kills++
		case system.PlayerDied:
			w.over = true
		}
	}
	return events
}

// Seed returns the seed of the current session
func (w *World) Seed() int64 { return w.seed }

// Frame returns the number of steps taken
func (w *World) Frame() int { return w.frame }

// Kills returns the number of enemies killed this session
func (w *World) Kills() int { return w.kills }

// IsOver reports whether the player died
func (w *World) IsOver() bool { return w.over }
