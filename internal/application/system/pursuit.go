package system

//go:generate go tool mockgen -destination=./mocks/system_mock.go -package=mocks . PathFinder,Slider,SoundPlayer

import (
	"github.com/younwookim/protozombie/internal/domain/entity"
)

// PathFinder computes a walking route between two positions
type PathFinder interface {
	// FindPath returns waypoints ending at to, or nil when unreachable
	FindPath(from, to entity.Vec3) []entity.Vec3
}

// Slider moves a round body and stops it against walls
type Slider interface {
	Slide(from, delta entity.Vec3, radius float64) entity.Vec3
}

// PursuitSystem drives active enemies toward the player
type PursuitSystem struct {
	paths  PathFinder
	slider Slider
	events *EventQueue
}

// NewPursuitSystem creates a new pursuit system
func NewPursuitSystem(paths PathFinder, slider Slider, events *EventQueue) *PursuitSystem {
	return &PursuitSystem{
		paths:  paths,
		slider: slider,
		events: events,
	}
}

// Recalculate asks for a fresh route to target and restarts the recalc timer
func (s *PursuitSystem) Recalculate(e *entity.Enemy, target entity.Vec3) {
	e.SetPath(s.paths.FindPath(e.Position, target))
	e.SinceLastPathCalc = 0
}

// Update runs one tick of an active enemy: timers, route refresh,
// waypoint walking and contact damage
func (s *PursuitSystem) Update(e *entity.Enemy, player *entity.Player, dt float64) {
	if !e.IsActive() {
		return
	}

	e.SinceLastHit += dt
	e.SinceLastPathCalc += dt
	if e.SinceLastPathCalc >= e.Stats.PathRecalcInterval {
		s.Recalculate(e, player.Position)
	}

	s.walk(e, dt)
	s.bite(e, player)
}

// UpdateAll updates every active member of the pool
func (s *PursuitSystem) UpdateAll(pool *entity.EnemyPool, player *entity.Player, dt float64) {
	pool.Active(func(e *entity.Enemy) {
		s.Update(e, player, dt)
	})
}

// walk steps toward the current waypoint, or advances to the next one when close
func (s *PursuitSystem) walk(e *entity.Enemy, dt float64) {
	wp, ok := e.CurrentWaypoint()
	if !ok {
		return
	}

	dir := wp.Sub(e.Position).Horizontal()
	if dir.Length() < e.Stats.WaypointThreshold {
		e.PathIndex++
		return
	}

	delta := dir.Normalized().Scale(e.Stats.MoveSpeed * dt)
	e.Position = s.slider.Slide(e.Position, delta, e.Stats.Radius)
}

// bite damages the player on contact once per damage interval
func (s *PursuitSystem) bite(e *entity.Enemy, player *entity.Player) {
	if player.IsDead() {
		return
	}
	reach := e.Stats.Radius + player.Stats.Radius
	if entity.HorizontalDistance(e.Position, player.Position) > reach {
		return
	}
	if e.SinceLastHit < e.Stats.DamageInterval {
		return
	}

	e.SinceLastHit = 0
	player.TakeDamage(e.Stats.ContactDamage)
	s.events.Push(PlayerDamaged{Amount: e.Stats.ContactDamage, Life: player.Life()})
	if player.IsDead() {
		s.events.Push(PlayerDied{Points: player.Points()})
	}
}
