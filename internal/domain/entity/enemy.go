package entity

import (
	"context"
	"fmt"
	"image/color"

	"github.com/looplab/fsm"
)

// Enemy states and the events moving between them
const (
	EnemyIdle   = "idle"
	EnemyActive = "active"

	eventActivate   = "activate"
	eventDeactivate = "deactivate"
)

// EnemyStats configures an enemy archetype
type EnemyStats struct {
	MaxLife            float64
	MoveSpeed          float64 // world units per second
	PathRecalcInterval float64 // seconds between path requests
	DamageInterval     float64 // seconds between two contact hits
	ContactDamage      float64
	WaypointThreshold  float64 // distance at which a waypoint counts as reached
	Radius             float64
	Height             float64
}

// DefaultEnemyStats returns the stock zombie archetype
func DefaultEnemyStats() EnemyStats {
	return EnemyStats{
		MaxLife:            100,
		MoveSpeed:          1,
		PathRecalcInterval: 0.5,
		DamageInterval:     0.5,
		ContactDamage:      20,
		WaypointThreshold:  1,
		Radius:             0.5,
		Height:             1.8,
	}
}

// Validate checks the archetype invariants
func (s EnemyStats) Validate() error {
	if s.MaxLife <= 0 {
		return fmt.Errorf("enemy max life must be greater than 0: %w", ErrInvalidConfig)
	}
	if s.MoveSpeed <= 0 {
		return fmt.Errorf("enemy move speed must be greater than 0: %w", ErrInvalidConfig)
	}
	if s.PathRecalcInterval <= 0 || s.DamageInterval < 0 {
		return fmt.Errorf("enemy timers must be positive: %w", ErrInvalidConfig)
	}
	if s.ContactDamage < 0 || s.WaypointThreshold <= 0 {
		return fmt.Errorf("enemy damage and waypoint threshold out of range: %w", ErrInvalidConfig)
	}
	if s.Radius <= 0 || s.Height <= 0 {
		return fmt.Errorf("enemy body must have a size: %w", ErrInvalidConfig)
	}
	return nil
}

// Enemy is a pooled pursuer. It lives for the whole level and toggles
// between idle (parked at the idle anchor) and active (pursuing).
type Enemy struct {
	ID       EntityID
	Position Vec3
	Stats    EnemyStats

	life       Life
	idleAnchor Vec3
	machine    *fsm.FSM

	// Pursuit
	Path      []Vec3
	PathIndex int

	// Timers
	SinceLastHit      float64
	SinceLastPathCalc float64

	// Deaths counts transitions from active to idle caused by damage
	Deaths int
}

// NewEnemy creates an idle enemy parked at the anchor
func NewEnemy(id EntityID, stats EnemyStats, idleAnchor Vec3) (*Enemy, error) {
	if err := stats.Validate(); err != nil {
		return nil, err
	}
	life, err := NewLife(stats.MaxLife)
	if err != nil {
		return nil, err
	}

	e := &Enemy{
		ID:         id,
		Position:   idleAnchor,
		Stats:      stats,
		life:       life,
		idleAnchor: idleAnchor,
	}
	e.machine = fsm.NewFSM(
		EnemyIdle,
		fsm.Events{
			{Name: eventActivate, Src: []string{EnemyIdle}, Dst: EnemyActive},
			{Name: eventDeactivate, Src: []string{EnemyActive}, Dst: EnemyIdle},
		},
		fsm.Callbacks{
			"enter_" + EnemyActive: func(_ context.Context, ev *fsm.Event) {
				spawn := e.idleAnchor
				if len(ev.Args) > 0 {
					if at, ok := ev.Args[0].(Vec3); ok {
						spawn = at
					}
				}
				e.reset(spawn)
			},
			"enter_" + EnemyIdle: func(_ context.Context, _ *fsm.Event) {
				e.reset(e.idleAnchor)
			},
		},
	)

	return e, nil
}

// reset restores full life and clears pursuit state at a position
func (e *Enemy) reset(at Vec3) {
	e.life.Reset()
	e.Position = at
	e.Path = e.Path[:0]
	e.PathIndex = 0
	e.SinceLastHit = 0
	e.SinceLastPathCalc = 0
}

// State returns the current state name
func (e *Enemy) State() string {
	return e.machine.Current()
}

// IsActive reports whether the enemy is pursuing
func (e *Enemy) IsActive() bool {
	return e.machine.Is(EnemyActive)
}

// IdleAnchor returns the parking position
func (e *Enemy) IdleAnchor() Vec3 {
	return e.idleAnchor
}

// Activate teleports an idle enemy to spawn with full life
func (e *Enemy) Activate(spawn Vec3) error {
	if err := e.machine.Event(context.Background(), eventActivate, spawn); err != nil {
		return fmt.Errorf("activate enemy %d: %w", e.ID, err)
	}
	return nil
}

// Deactivate returns an active enemy to the pool. It reports false when
// the enemy was already idle, in which case nothing changes.
func (e *Enemy) Deactivate() bool {
	return e.machine.Event(context.Background(), eventDeactivate) == nil
}

// Life returns the remaining life
func (e *Enemy) Life() float64 {
	return e.life.Current()
}

// MaxLife returns the maximum life
func (e *Enemy) MaxLife() float64 {
	return e.life.Max()
}

// TakeDamage implements Damageable
func (e *Enemy) TakeDamage(amount float64) {
	e.LooseLife(amount)
}

// LooseLife removes life and deactivates the enemy when it reaches zero.
// It returns true when this call killed the enemy.
func (e *Enemy) LooseLife(amount float64) bool {
	if !e.IsActive() {
		return false
	}
	if !e.life.Remove(amount) {
		return false
	}
	if e.Deactivate() {
		e.Deaths++
	}
	return true
}

// SetPath replaces the waypoints and restarts from the first one
func (e *Enemy) SetPath(path []Vec3) {
	e.Path = append(e.Path[:0], path...)
	e.PathIndex = 0
}

// CurrentWaypoint returns the waypoint being walked to
func (e *Enemy) CurrentWaypoint() (Vec3, bool) {
	if e.PathIndex >= len(e.Path) {
		return Vec3{}, false
	}
	return e.Path[e.PathIndex], true
}

// Color returns the body tint: red scaled by remaining life
func (e *Enemy) Color() color.RGBA {
	return color.RGBA{R: uint8(255 * e.life.Ratio()), A: 255}
}
