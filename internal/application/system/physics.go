package system

import (
	"math"

	"github.com/younwookim/protozombie/internal/domain/entity"
)

// skin keeps bodies from touching a wall edge exactly
const skin = 1e-6

// PhysicsSystem moves round bodies across the floor plan of a stage
type PhysicsSystem struct {
	stage *entity.Stage
	step  float64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(stage *entity.Stage) *PhysicsSystem {
	return &PhysicsSystem{
		stage: stage,
		step:  stage.TileSize / 8,
	}
}

// Update applies gravity and walks the player's velocity against the walls
func (s *PhysicsSystem) Update(player *entity.Player, dt float64) {
	s.applyGravity(player, dt)

	delta := entity.Vec3{X: player.Velocity.X * dt, Z: player.Velocity.Z * dt}
	radius := player.Stats.Radius

	s.resolveOverlap(player)
	moved := s.Slide(player.Position, delta, radius)
	if moved.X == player.Position.X && delta.X != 0 {
		player.Velocity.X = 0
	}
	if moved.Z == player.Position.Z && delta.Z != 0 {
		player.Velocity.Z = 0
	}
	player.Position.X = moved.X
	player.Position.Z = moved.Z
	s.resolveOverlap(player)
}

// applyGravity pulls the player down to the floor at Y = 0
func (s *PhysicsSystem) applyGravity(player *entity.Player, dt float64) {
	player.Velocity.Y -= player.Stats.Gravity * dt
	player.Position.Y += player.Velocity.Y * dt

	player.OnFloor = false
	if player.Position.Y <= 0 {
		player.Position.Y = 0
		player.Velocity.Y = 0
		player.OnFloor = true
	}
}

// Slide moves a circle of radius by delta on the X/Z plane. Each axis is
// moved on its own in small substeps so a blocked axis still lets the
// other one slide along the wall. Y is carried over unchanged.
func (s *PhysicsSystem) Slide(from, delta entity.Vec3, radius float64) entity.Vec3 {
	pos := from
	pos.X = s.moveAxis(pos, delta.X, radius, true)
	pos.Z = s.moveAxis(pos, delta.Z, radius, false)
	return pos
}

// moveAxis advances one coordinate until a substep would enter a wall
func (s *PhysicsSystem) moveAxis(pos entity.Vec3, d, radius float64, alongX bool) float64 {
	current := pos.Z
	if alongX {
		current = pos.X
	}
	if d == 0 {
		return current
	}

	steps := int(math.Ceil(math.Abs(d) / s.step))
	inc := d / float64(steps)
	for i := 0; i < steps; i++ {
		next := pos
		if alongX {
			next.X += inc
		} else {
			next.Z += inc
		}
		if s.isSolidCircle(next, radius) {
			break
		}
		pos = next
	}

	if alongX {
		return pos.X
	}
	return pos.Z
}

// resolveOverlap pushes the player out of any solid tiles it overlaps.
// Returns false when no push-out was found and the player went back to spawn.
func (s *PhysicsSystem) resolveOverlap(player *entity.Player) bool {
	radius := player.Stats.Radius
	if !s.isSolidCircle(player.Position, radius) {
		return true
	}

	type pushOption struct {
		dx, dz   float64
		distance float64
	}
	dirs := [4][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	maxPushOut := s.stage.TileSize

	var best *pushOption
	for _, d := range dirs {
		for dist := s.step; dist <= maxPushOut; dist += s.step {
			probe := player.Position
			probe.X += d[0] * dist
			probe.Z += d[1] * dist
			if !s.isSolidCircle(probe, radius) {
				if best == nil || dist < best.distance {
					best = &pushOption{dx: d[0] * dist, dz: d[1] * dist, distance: dist}
				}
				break
			}
		}
	}

	if best == nil {
		player.Position = s.stage.PlayerSpawn
		player.Velocity = entity.Vec3{}
		return false
	}

	player.Position.X += best.dx
	player.Position.Z += best.dz
	if best.dx != 0 {
		player.Velocity.X = 0
	}
	if best.dz != 0 {
		player.Velocity.Z = 0
	}
	return true
}

// isSolidCircle checks every tile overlapped by the bounding square of a circle
func (s *PhysicsSystem) isSolidCircle(p entity.Vec3, radius float64) bool {
	ts := s.stage.TileSize
	startTX := int(math.Floor((p.X - radius) / ts))
	endTX := int(math.Floor((p.X + radius - skin) / ts))
	startTZ := int(math.Floor((p.Z - radius) / ts))
	endTZ := int(math.Floor((p.Z + radius - skin) / ts))

	for tz := startTZ; tz <= endTZ; tz++ {
		for tx := startTX; tx <= endTX; tx++ {
			if s.stage.GetTile(tx, tz).Solid {
				return true
			}
		}
	}
	return false
}
