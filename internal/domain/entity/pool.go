package entity

import (
	"fmt"
	"math/rand"
)

// EnemyPool is a fixed arena of pre-built enemies. Spawning activates an
// idle member in place instead of allocating one.
type EnemyPool struct {
	members     []*Enemy
	spawnPoints []Vec3
	rng         *rand.Rand
}

// NewEnemyPool builds size idle enemies parked at the stage idle anchor
func NewEnemyPool(size int, stats EnemyStats, spawnPoints []Vec3, idleAnchor Vec3, rng *rand.Rand) (*EnemyPool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("enemy pool size must be greater than 0: %w", ErrInvalidConfig)
	}
	if len(spawnPoints) == 0 {
		return nil, fmt.Errorf("enemy pool needs at least one spawn point: %w", ErrInvalidConfig)
	}
	if rng == nil {
		return nil, fmt.Errorf("enemy pool needs a random source: %w", ErrInvalidConfig)
	}

	members := make([]*Enemy, size)
	for i := range members {
		e, err := NewEnemy(EntityID(i+1), stats, idleAnchor)
		if err != nil {
			return nil, err
		}
		members[i] = e
	}

	return &EnemyPool{
		members:     members,
		spawnPoints: append([]Vec3(nil), spawnPoints...),
		rng:         rng,
	}, nil
}

// Size returns the fixed number of members
func (p *EnemyPool) Size() int {
	return len(p.members)
}

// Members returns every member in stable order
func (p *EnemyPool) Members() []*Enemy {
	return p.members
}

// SpawnPoints returns the configured spawn points
func (p *EnemyPool) SpawnPoints() []Vec3 {
	return p.spawnPoints
}

// Get returns the member with the given id
func (p *EnemyPool) Get(id EntityID) (*Enemy, bool) {
	i := int(id) - 1
	if i < 0 || i >= len(p.members) {
		return nil, false
	}
	return p.members[i], true
}

// ActiveCount returns how many members are pursuing
func (p *EnemyPool) ActiveCount() int {
	n := 0
	for _, e := range p.members {
		if e.IsActive() {
			n++
		}
	}
	return n
}

// Active calls fn for every active member in stable order
func (p *EnemyPool) Active(fn func(e *Enemy)) {
	for _, e := range p.members {
		if e.IsActive() {
			fn(e)
		}
	}
}

// SpawnNext activates the first idle member at a random spawn point.
// When every member is active nothing happens and ok is false.
func (p *EnemyPool) SpawnNext() (*Enemy, bool) {
	for _, e := range p.members {
		if e.IsActive() {
			continue
		}
		spawn := p.spawnPoints[p.rng.Intn(len(p.spawnPoints))]
		if err := e.Activate(spawn); err != nil {
			return nil, false
		}
		return e, true
	}
	return nil, false
}

// DeactivateAll parks every member
func (p *EnemyPool) DeactivateAll() {
	for _, e := range p.members {
		e.Deactivate()
	}
}
