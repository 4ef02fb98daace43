package system

import (
	"fmt"

	"github.com/younwookim/protozombie/internal/domain/entity"
)

// SpawnSystem wakes one pooled enemy every interval
type SpawnSystem struct {
	pool     *entity.EnemyPool
	pursuit  *PursuitSystem
	interval float64
	since    float64
}

// NewSpawnSystem creates a spawn timer over the pool
func NewSpawnSystem(pool *entity.EnemyPool, pursuit *PursuitSystem, interval float64) (*SpawnSystem, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("spawn interval must be greater than 0: %w", entity.ErrInvalidConfig)
	}
	return &SpawnSystem{
		pool:     pool,
		pursuit:  pursuit,
		interval: interval,
	}, nil
}

// Update advances the timer. When it fires the next idle enemy is
// activated and immediately routed toward target.
func (s *SpawnSystem) Update(dt float64, target entity.Vec3) (*entity.Enemy, bool) {
	s.since += dt
	if s.since < s.interval {
		return nil, false
	}
	s.since -= s.interval

	e, ok := s.pool.SpawnNext()
	if !ok {
		return nil, false
	}
	s.pursuit.Recalculate(e, target)
	return e, true
}

// Reset parks every enemy and restarts the timer
func (s *SpawnSystem) Reset() {
	s.pool.DeactivateAll()
	s.since = 0
}
