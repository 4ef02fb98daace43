package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/protozombie/internal/application/replay"
	"github.com/younwookim/protozombie/internal/application/scene/playing"
	"github.com/younwookim/protozombie/internal/application/system"
	"github.com/younwookim/protozombie/internal/infrastructure/config"
)

const replayFramerate = 60

func loadDemo(t *testing.T) (*config.Loader, *config.GameConfig) {
	t.Helper()
	loader := config.NewLoader("configs")
	cfg, err := loader.LoadAll("demo")
	require.NoError(t, err)
	return loader, cfg
}

// circling strafes around the spawn while firing in bursts
func circling(frame int) system.InputState {
	return system.InputState{
		Forward: frame%180 < 90,
		Left:    frame%240 > 200,
		Run:     frame%300 < 60,
		Fire:    frame%12 < 6,
		Reload:  frame%150 == 0,
		LookDX:  3,
	}
}

// recordSession plays a live world while recording its input
func recordSession(t *testing.T, cfg *config.GameConfig, seed int64, frames int) (*playing.World, *playing.Recorder) {
	t.Helper()
	world, err := playing.NewWorld(cfg, seed, nil)
	require.NoError(t, err)

	rec := playing.NewRecorder(seed, cfg.Level.ID, replayFramerate)
	dt := 1.0 / replayFramerate
	for i := 0; i < frames && !world.IsOver(); i++ {
		in := circling(i)
		rec.RecordFrame(in, world.Player.Stats.MouseSensitivity)
		world.Step(in, dt)
	}
	rec.Stop()
	return world, rec
}

func TestReplay_MatchesLiveSession(t *testing.T) {
	_, cfg := loadDemo(t)
	live, rec := recordSession(t, cfg, 99, 1800)

	summary, err := Replay(cfg, rec.GetData())
	require.NoError(t, err)

	assert.Equal(t, live.Frame(), summary.Frames)
	assert.Equal(t, live.Player.Points(), summary.Points)
	assert.Equal(t, live.Kills(), summary.Kills)
	assert.Equal(t, live.Player.Life(), summary.Life)
	assert.Equal(t, live.IsOver(), summary.Died)
	assert.Equal(t, rec.SessionID(), summary.SessionID)
}

func TestReplay_KeepsChangedSensitivity(t *testing.T) {
	loader, cfg := loadDemo(t)
	require.NotEqual(t, 0.35, cfg.Settings.Player.MouseSensitivity)

	live, err := playing.NewWorld(cfg, 3, nil)
	require.NoError(t, err)
	live.Player.Stats.MouseSensitivity = 0.35

	rec := playing.NewRecorder(3, cfg.Level.ID, replayFramerate)
	dt := 1.0 / replayFramerate
	for i := 0; i < 900 && !live.IsOver(); i++ {
		if i == 400 {
			live.Player.Stats.MouseSensitivity = 0.05
		}
		in := circling(i)
		in.LookDY = 1
		rec.RecordFrame(in, live.Player.Stats.MouseSensitivity)
		live.Step(in, dt)
	}

	path := filepath.Join(t.TempDir(), "sensitivity.json")
	require.NoError(t, rec.Save(path))

	summary, err := runReplay(loader, path)
	require.NoError(t, err)

	assert.Equal(t, live.Player.Yaw, summary.Yaw)
	assert.Equal(t, live.Frame(), summary.Frames)
	assert.Equal(t, live.Player.Points(), summary.Points)
	assert.Equal(t, live.Kills(), summary.Kills)
	assert.Equal(t, live.Player.Life(), summary.Life)
	assert.Equal(t, live.IsOver(), summary.Died)
}

func TestReplay_RoundTripThroughFile(t *testing.T) {
	loader, cfg := loadDemo(t)
	live, rec := recordSession(t, cfg, 5, 600)

	path := filepath.Join(t.TempDir(), playing.GenerateFilename())
	require.NoError(t, rec.Save(path))

	summary, err := runReplay(loader, path)
	require.NoError(t, err)

	assert.Equal(t, live.Frame(), summary.Frames)
	assert.Equal(t, live.Player.Points(), summary.Points)
	assert.Equal(t, live.Player.Life(), summary.Life)
	assert.Equal(t, "demo", summary.Level)
}

func TestReplay_SameSeedIsStable(t *testing.T) {
	_, cfg := loadDemo(t)
	data := replay.CreateTestReplayData(1200, 2, 8)
	data.Seed = 1

	a, err := Replay(cfg, data)
	require.NoError(t, err)

	b, err := Replay(cfg, data)
	require.NoError(t, err)

	assert.Equal(t, a, b, "same seed and input replay identically")
}

func TestReplay_MissingFile(t *testing.T) {
	loader, _ := loadDemo(t)
	_, err := runReplay(loader, filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestReplaySummary_String(t *testing.T) {
	s := ReplaySummary{SessionID: "abc", Level: "demo", Frames: 10, Points: 60, Kills: 1, Life: 80}
	assert.Equal(t, "session abc on demo: 10 frames, 60 points, 1 kills, life 80, survived", s.String())

	s.Died = true
	assert.Contains(t, s.String(), "died")
}
