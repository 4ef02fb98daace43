package main

import (
	"fmt"

	"github.com/younwookim/protozombie/internal/application/replay"
	"github.com/younwookim/protozombie/internal/application/scene/playing"
	"github.com/younwookim/protozombie/internal/application/system"
	"github.com/younwookim/protozombie/internal/infrastructure/config"
)

// ReplaySummary is the outcome of a headless replay
type ReplaySummary struct {
	SessionID string
	Level     string
	Frames    int
	Points    uint32
	Kills     int
	Life      float64
	Yaw       float64
	Died      bool
}

func (s ReplaySummary) String() string {
	outcome := "survived"
	if s.Died {
		outcome = "died"
	}
	return fmt.Sprintf("session %s on %s: %d frames, %d points, %d kills, life %.0f, %s",
		s.SessionID, s.Level, s.Frames, s.Points, s.Kills, s.Life, outcome)
}

// runReplay loads a recording and plays it back without a window
func runReplay(loader *config.Loader, path string) (ReplaySummary, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return ReplaySummary{}, err
	}

	cfg, err := loader.LoadAll(data.Level)
	if err != nil {
		return ReplaySummary{}, err
	}
	return Replay(cfg, *data)
}

// Replay steps a fresh world with every recorded frame of input
func Replay(cfg *config.GameConfig, data replay.ReplayData) (ReplaySummary, error) {
	world, err := playing.NewWorld(cfg, data.Seed, nil)
	if err != nil {
		return ReplaySummary{}, fmt.Errorf("failed to build world: %w", err)
	}

	framerate := data.Framerate
	if framerate <= 0 {
		framerate = cfg.Settings.Display.Framerate
	}
	dt := 1.0 / float64(framerate)

	replayer := replay.NewReplayer(data)
	for !world.IsOver() {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		if s := replayer.Sensitivity(); s > 0 {
			world.Player.Stats.MouseSensitivity = s
		}
		world.Step(system.InputState(in), dt)
	}

	return ReplaySummary{
		SessionID: data.SessionID,
		Level:     data.Level,
		Frames:    world.Frame(),
		Points:    world.Player.Points(),
		Kills:     world.Kills(),
		Life:      world.Player.Life(),
		Yaw:       world.Player.Yaw,
		Died:      world.IsOver(),
	}, nil
}
