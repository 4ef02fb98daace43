package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/younwookim/protozombie/internal/application/scene"
	"github.com/younwookim/protozombie/internal/application/state"
	"github.com/younwookim/protozombie/internal/application/system"
	"github.com/younwookim/protozombie/internal/application/system/mocks"
	"github.com/younwookim/protozombie/internal/infrastructure/config"
	"github.com/younwookim/protozombie/internal/infrastructure/storage"
)

const testDT = 1.0 / 60

// createTestConfig loads the shipped settings and demo level with a fixed seed
func createTestConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../../cmd/game/configs").LoadAll("demo")
	require.NoError(t, err)
	cfg.Settings.Spawn.Seed = 42
	return cfg
}

func createTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	p, err := New(createTestConfig(t), opts)
	require.NoError(t, err)
	p.cursor = func(bool) {}
	return p
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := createTestPlaying(t, Options{})

	require.NotNil(t, p.world)
	assert.Equal(t, int64(42), p.world.Seed(), "configured seed is used")
	assert.Equal(t, p.world.Level.Stage.PlayerSpawn, p.world.Player.Position)

	w, ok := p.world.Player.Equipped()
	require.True(t, ok)
	assert.Equal(t, "Glock-17", w.Name())

	assert.Equal(t, 100.0, p.hud.Life, "HUD primed on creation")
	assert.Equal(t, "17 / 30 9mm", p.hud.AmmoText())
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := createTestPlaying(t, Options{})

	next, err := p.Update(testDT)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
	assert.Equal(t, 1, p.world.Frame())
}

func TestPlaying_OnEnterAppliesCursor(t *testing.T) {
	p := createTestPlaying(t, Options{})
	var captured []bool
	p.cursor = func(c bool) { captured = append(captured, c) }

	p.OnEnter()
	p.setState(p.state.TogglePause())
	p.OnExit()

	assert.Equal(t, []bool{true, false, false}, captured)
}

func TestPlaying_WithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	p := createTestPlaying(t, Options{RecordPath: path})
	require.NotNil(t, p.recorder)

	for i := 0; i < 3; i++ {
		_, err := p.Update(testDT)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, p.recorder.FrameCount())

	p.OnExit()
	assert.FileExists(t, path)
}

func TestPlaying_HitstopFreezesWorld(t *testing.T) {
	p := createTestPlaying(t, Options{})

	p.world.OnHitstop()
	frames := p.config.Settings.Feedback.Hitstop.Frames
	require.Equal(t, frames, p.hitstopFrames)

	for i := 0; i < frames; i++ {
		_, err := p.Update(testDT)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, p.world.Frame(), "no tick during hitstop")

	_, err := p.Update(testDT)
	require.NoError(t, err)
	assert.Equal(t, 1, p.world.Frame())
}

func TestPlaying_ScreenShakeDecays(t *testing.T) {
	p := createTestPlaying(t, Options{})

	p.world.OnScreenShake(1)
	start := p.shake
	assert.Equal(t, p.config.Settings.Feedback.ScreenShake.Intensity, start)

	p.step(system.InputState{}, testDT)
	assert.InDelta(t, start*p.shakeDecay, p.shake, 1e-9)
}

func TestPlaying_EventsReachHUDAndSounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	sounds := mocks.NewMockSoundPlayer(ctrl)
	p := createTestPlaying(t, Options{Sounds: sounds})

	gomock.InOrder(
		sounds.EXPECT().Play("enemy_hit"),
		sounds.EXPECT().Play("enemy_death"),
		sounds.EXPECT().Play("pickup"),
	)
	p.handleEvents([]system.Event{
		system.ShotFired{Weapon: "Glock-17", Sound: "glock17_shot"},
		system.EnemyHit{Damage: 20},
		system.EnemyKilled{Headshot: true, Points: 100},
		system.PickupCollected{Item: "9mm", Amount: 15},
	})

	assert.Equal(t, []string{"Headshot! +100", "+15 9mm"}, p.hud.Messages())
	assert.Equal(t, tracerTime, p.tracer)
}

func TestPlaying_RestartRefreshesHUD(t *testing.T) {
	p := createTestPlaying(t, Options{})
	hudModel := p.hud

	p.world.Player.AddPoints(120)
	p.world.Player.TakeDamage(40)
	p.step(system.InputState{}, testDT)
	p.hud.Notify("Kill +50")
	require.Equal(t, uint32(120), p.hud.Points)

	p.restart()

	assert.Same(t, hudModel, p.hud, "the model is reused")
	assert.Zero(t, p.hud.Points)
	assert.Equal(t, p.world.Player.MaxLife(), p.hud.Life)
	assert.Equal(t, "17 / 30 9mm", p.hud.AmmoText())
	assert.Empty(t, p.hud.Messages())
}

func TestPlaying_GameOverRecordsProfile(t *testing.T) {
	profile := storage.NewProfileStore(nil, storage.Profile{BestScore: 50})
	p := createTestPlaying(t, Options{Profile: profile})

	p.handleEvents([]system.Event{system.PlayerDied{Points: 70}})

	assert.Equal(t, state.StateGameOver, p.state)
	assert.True(t, p.newBest)
	assert.Equal(t, uint32(70), profile.Profile().BestScore)
	assert.Equal(t, 1, profile.Profile().GamesPlayed)

	p.restart()
	assert.Equal(t, state.StatePlaying, p.state)
	assert.False(t, p.newBest)
	assert.Empty(t, p.hud.Messages())
}

func TestPlaying_ProfileSensitivity(t *testing.T) {
	profile := storage.NewProfileStore(nil, storage.Profile{MouseSensitivity: 0.25})
	p := createTestPlaying(t, Options{Profile: profile})

	assert.Equal(t, 0.25, p.world.Player.Stats.MouseSensitivity)

	p.adjustSensitivity(2)
	assert.Equal(t, 0.5, p.world.Player.Stats.MouseSensitivity)
	assert.Equal(t, 0.5, profile.Profile().MouseSensitivity)

	p.restart()
	assert.Equal(t, 0.5, p.world.Player.Stats.MouseSensitivity, "kept across restarts")
}

func TestSoundCue(t *testing.T) {
	tests := []struct {
		event system.Event
		want  string
	}{
		{system.ShotFired{Sound: "mp5_shot"}, ""},
		{system.EnemyHit{}, "enemy_hit"},
		{system.EnemyKilled{}, "enemy_death"},
		{system.PlayerDamaged{}, "player_hurt"},
		{system.PickupCollected{}, "pickup"},
		{system.WeaponBought{}, "buy"},
		{system.PurchaseRefused{}, "dry_fire"},
		{system.Reloaded{}, "reload"},
		{system.WeaponEquipped{}, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, soundCue(tt.event), "%T", tt.event)
	}
}

func TestRecorder_StopAndIsRecording(t *testing.T) {
	r := NewRecorder(12345, "test", 60)
	assert.True(t, r.IsRecording())
	assert.NotEmpty(t, r.SessionID())

	r.RecordFrame(system.InputState{Forward: true, LookDX: 3}, 0.1)
	r.Stop()
	r.RecordFrame(system.InputState{Left: true}, 0.1)

	assert.False(t, r.IsRecording())
	require.Equal(t, 1, r.FrameCount())
	frame := r.GetData().Frames[0]
	assert.True(t, frame.Fw)
	assert.Equal(t, 3.0, frame.DX)
}

func TestRecorder_SensitivityWrittenOnChange(t *testing.T) {
	r := NewRecorder(1, "test", 60)

	r.RecordFrame(system.InputState{}, 0.2)
	r.RecordFrame(system.InputState{}, 0.2)
	r.RecordFrame(system.InputState{}, 0.3)
	r.RecordFrame(system.InputState{}, 0.3)

	var got []float64
	for _, f := range r.GetData().Frames {
		got = append(got, f.Sn)
	}
	assert.Equal(t, []float64{0.2, 0, 0.3, 0}, got)
}

func TestPlaying_RecordsProfileSensitivity(t *testing.T) {
	profile := storage.NewProfileStore(nil, storage.Profile{MouseSensitivity: 0.25})
	p := createTestPlaying(t, Options{Profile: profile, RecordPath: filepath.Join(t.TempDir(), "r.json")})

	p.step(system.InputState{LookDX: 4}, testDT)
	p.adjustSensitivity(2)
	p.step(system.InputState{LookDX: 4}, testDT)

	frames := p.recorder.GetData().Frames
	require.Len(t, frames, 2)
	assert.Equal(t, 0.25, frames[0].Sn, "first frame carries the starting value")
	assert.Equal(t, 0.5, frames[1].Sn)
}
