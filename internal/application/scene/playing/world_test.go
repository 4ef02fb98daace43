package playing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/protozombie/internal/application/system"
	"github.com/younwookim/protozombie/internal/domain/entity"
)

func createTestWorld(t *testing.T, seed int64) *World {
	t.Helper()
	w, err := NewWorld(createTestConfig(t), seed, nil)
	require.NoError(t, err)
	return w
}

// scripted walks forward while turning and firing in bursts
func scripted(frame int) system.InputState {
	return system.InputState{
		Forward: frame%120 < 60,
		Right:   frame%200 > 150,
		Fire:    frame%10 < 5,
		Reload:  frame%90 == 0,
		LookDX:  2,
	}
}

func TestWorld_SpawnsOnInterval(t *testing.T) {
	w := createTestWorld(t, 1)
	require.Equal(t, 5.0, w.cfg.Settings.Spawn.Interval)

	for i := 0; i < 290; i++ {
		w.Step(system.InputState{}, testDT)
	}
	assert.Equal(t, 0, w.Level.Pool.ActiveCount(), "4.8s in")

	for i := 0; i < 20; i++ {
		w.Step(system.InputState{}, testDT)
	}
	assert.Equal(t, 1, w.Level.Pool.ActiveCount(), "5.2s in")
}

func TestWorld_Deterministic(t *testing.T) {
	a := createTestWorld(t, 7)
	b := createTestWorld(t, 7)

	for i := 0; i < 900; i++ {
		a.Step(scripted(i), testDT)
		b.Step(scripted(i), testDT)
	}

	assert.Equal(t, a.Player.Position, b.Player.Position)
	assert.Equal(t, a.Player.Points(), b.Player.Points())
	assert.Equal(t, a.Player.Life(), b.Player.Life())
	assert.Equal(t, a.Level.Pool.ActiveCount(), b.Level.Pool.ActiveCount())
	for i, e := range a.Level.Pool.Members() {
		assert.Equal(t, e.Position, b.Level.Pool.Members()[i].Position)
	}
}

func TestWorld_IdlePlayerIsEventuallyKilled(t *testing.T) {
	w := createTestWorld(t, 3)

	var died *system.PlayerDied
	for i := 0; i < 90*60 && died == nil; i++ {
		for _, ev := range w.Step(system.InputState{}, testDT) {
			if d, ok := ev.(system.PlayerDied); ok {
				died = &d
			}
		}
	}

	require.NotNil(t, died, "enemies reach the player")
	assert.True(t, w.IsOver())
	assert.True(t, w.Player.IsDead())

	frame := w.Frame()
	assert.Nil(t, w.Step(system.InputState{}, testDT), "nothing happens after death")
	assert.Equal(t, frame, w.Frame())
}

func TestWorld_Reset(t *testing.T) {
	w := createTestWorld(t, 5)
	for i := 0; i < 600; i++ {
		w.Step(scripted(i), testDT)
	}
	require.NotZero(t, w.Frame())

	require.NoError(t, w.Reset(9))

	assert.Equal(t, int64(9), w.Seed())
	assert.Zero(t, w.Frame())
	assert.Zero(t, w.Kills())
	assert.False(t, w.IsOver())
	assert.Equal(t, w.Level.Stage.PlayerSpawn, w.Player.Position)
	assert.Equal(t, uint32(0), w.Player.Points())
	assert.Equal(t, 0, w.Level.Pool.ActiveCount())

	reserve, err := w.Player.Inventory.Reserve(entity.AmmoMm9)
	require.NoError(t, err)
	assert.Equal(t, uint16(30), reserve.Quantity(), "loadout given again")
}

func TestWorld_FeedbackHooks(t *testing.T) {
	w := createTestWorld(t, 1)

	hitstops := 0
	w.OnHitstop = func() { hitstops++ }
	w.combat.OnHitstop()
	assert.Equal(t, 1, hitstops)

	w.OnHitstop = nil
	assert.NotPanics(t, func() { w.combat.OnHitstop() })
}
