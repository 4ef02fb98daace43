package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(t *testing.T) *Player {
	t.Helper()
	p, err := NewPlayer(Vec3{X: 2, Z: 2}, DefaultPlayerStats())
	require.NoError(t, err)
	return p
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer(t)

	assert.Equal(t, Vec3{X: 2, Z: 2}, p.Position)
	assert.Equal(t, 100.0, p.Life())
	assert.Equal(t, uint32(0), p.Points())
	assert.Equal(t, 0, p.Inventory.WeaponCount())
	_, ok := p.Equipped()
	assert.False(t, ok)
}

func TestNewPlayer_InvalidStats(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *PlayerStats)
	}{
		{"zero FOV", func(s *PlayerStats) { s.FOV = 0 }},
		{"zero life", func(s *PlayerStats) { s.MaxLife = 0 }},
		{"zero crouch speed", func(s *PlayerStats) { s.CrouchSpeed = 0 }},
		{"negative walk speed", func(s *PlayerStats) { s.WalkSpeed = -1 }},
		{"zero run speed", func(s *PlayerStats) { s.RunSpeed = 0 }},
		{"inverted pitch limits", func(s *PlayerStats) { s.MinPitch, s.MaxPitch = 10, -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := DefaultPlayerStats()
			tt.modify(&stats)
			p, err := NewPlayer(Vec3{}, stats)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, p)
		})
	}
}

func TestPlayer_DamageAndHeal(t *testing.T) {
	p := newTestPlayer(t)

	p.TakeDamage(30)
	assert.Equal(t, 70.0, p.Life())
	assert.Equal(t, 20.0, p.AddLife(20))
	assert.Equal(t, 10.0, p.AddLife(50), "heal caps at max life")

	p.TakeDamage(1000)
	assert.Equal(t, 0.0, p.Life())
	assert.True(t, p.IsDead())
}

func TestPlayer_AddAmmo(t *testing.T) {
	p := newTestPlayer(t)

	assert.Equal(t, uint16(30), p.AddAmmo(AmmoMm9, 40))
	assert.Equal(t, uint16(0), p.AddAmmo(AmmoMm9, 1))
	assert.Equal(t, uint16(0), p.AddAmmo(AmmoKind(77), 5))

	r, err := p.Inventory.Reserve(AmmoMm9)
	require.NoError(t, err)
	assert.True(t, r.IsFull())
}

func TestPlayer_Points(t *testing.T) {
	p := newTestPlayer(t)
	p.AddPoints(PointsPerShot)
	p.AddPoints(PointsPerKill)

	assert.Equal(t, uint32(60), p.Points())
	assert.False(t, p.SpendPoints(61))
	assert.Equal(t, uint32(60), p.Points())
	assert.True(t, p.SpendPoints(60))
	assert.Equal(t, uint32(0), p.Points())
}

func TestPlayer_EquipAndCycle(t *testing.T) {
	p := newTestPlayer(t)
	assert.ErrorIs(t, p.Equip(0), ErrOutOfRange)

	glock := newTestWeapon(t, ModelGlock17)
	mp5 := newTestWeapon(t, ModelMP5)
	p.Inventory.AddWeapon(glock)
	p.Inventory.AddWeapon(mp5)

	require.NoError(t, p.Equip(0))
	w, ok := p.Equipped()
	require.True(t, ok)
	assert.Same(t, glock, w)

	p.InShot = true
	require.NoError(t, p.NextWeapon())
	assert.Equal(t, 1, p.EquippedIndex())
	assert.False(t, p.InShot, "switching weapons releases the trigger latch")

	require.NoError(t, p.NextWeapon())
	assert.Equal(t, 0, p.EquippedIndex())
	require.NoError(t, p.PreviousWeapon())
	assert.Equal(t, 1, p.EquippedIndex())

	assert.ErrorIs(t, p.Equip(2), ErrOutOfRange)
	assert.Equal(t, 1, p.EquippedIndex())
}

func TestPlayer_RotateClampsPitch(t *testing.T) {
	p := newTestPlayer(t)

	p.Rotate(100, 0)
	assert.InDelta(t, -10.0, p.Yaw, 1e-9, "moving the mouse right turns right")

	p.Rotate(0, -5000)
	assert.Equal(t, 89.0, p.Pitch)
	p.Rotate(0, 5000)
	assert.Equal(t, -89.0, p.Pitch)
}

func TestPlayer_Reset(t *testing.T) {
	p := newTestPlayer(t)
	p.Inventory.AddWeapon(newTestWeapon(t, ModelGlock17))
	p.AddPoints(500)
	p.TakeDamage(60)
	p.Flashlight = true

	p.Reset(Vec3{X: 9})

	assert.Equal(t, Vec3{X: 9}, p.Position)
	assert.Equal(t, p.MaxLife(), p.Life())
	assert.Equal(t, uint32(0), p.Points())
	assert.Equal(t, 0, p.Inventory.WeaponCount())
	assert.False(t, p.Flashlight)
}
