package system

import (
	"math"

	"github.com/younwookim/protozombie/internal/domain/entity"
)

// Hit box proportions of an enemy cylinder
const (
	headShare    = 0.15 // top of the body
	legShare     = 0.45 // bottom of the body
	armLateral   = 0.6  // share of the radius beyond which a torso-height hit is an arm
	marchPerTile = 16
)

// Hit describes where a hitscan ray met an enemy
type Hit struct {
	Enemy    *entity.Enemy
	Point    entity.Vec3
	Distance float64
	Region   entity.BodyRegion
}

// CombatSystem resolves hitscan shots against the active enemies
type CombatSystem struct {
	stage    *entity.Stage
	maxRange float64
	events   *EventQueue

	// Event callbacks
	OnHitstop     func()
	OnScreenShake func(intensity float64)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(stage *entity.Stage, maxRange float64, events *EventQueue) *CombatSystem {
	return &CombatSystem{
		stage:    stage,
		maxRange: maxRange,
		events:   events,
	}
}

// Region classifies a hit from its height on the body (0 at the feet,
// 1 at the top of the head) and its sideways distance from the body axis
func Region(heightRatio, lateral, radius float64) entity.BodyRegion {
	switch {
	case heightRatio >= 1-headShare:
		return entity.RegionHead
	case heightRatio < legShare:
		return entity.RegionLeg
	case lateral > armLateral*radius:
		return entity.RegionArm
	default:
		return entity.RegionTorso
	}
}

// Fire casts a shot from the player's eye along the aim and applies the
// weapon damage to the first enemy hit. Every hit is worth PointsPerShot;
// the killing hit adds PointsPerKill, or PointsPerHeadshotKill for a head hit.
func (s *CombatSystem) Fire(player *entity.Player, weapon *entity.Weapon, pool *entity.EnemyPool) (Hit, bool) {
	hit, ok := s.Raycast(player.Eye(), player.AimDirection(), pool)
	if !ok {
		return Hit{}, false
	}

	damage := weapon.Damage(hit.Region)
	killed := hit.Enemy.LooseLife(damage)
	points := entity.PointsPerShot
	s.events.Push(EnemyHit{EnemyID: hit.Enemy.ID, Region: hit.Region, Damage: damage})

	if killed {
		bonus := entity.PointsPerKill
		headshot := hit.Region == entity.RegionHead
		if headshot {
			bonus = entity.PointsPerHeadshotKill
		}
		points += bonus
		s.events.Push(EnemyKilled{EnemyID: hit.Enemy.ID, Headshot: headshot, Points: bonus})

		if s.OnHitstop != nil {
			s.OnHitstop()
		}
		if s.OnScreenShake != nil {
			s.OnScreenShake(1)
		}
	}

	player.AddPoints(points)
	return hit, true
}

// Raycast returns the nearest active enemy along the ray before any wall
// and within range. dir need not be normalized.
func (s *CombatSystem) Raycast(origin, dir entity.Vec3, pool *entity.EnemyPool) (Hit, bool) {
	dir = dir.Normalized()
	if dir.Length() == 0 {
		return Hit{}, false
	}

	limit := s.wallDistance(origin, dir)

	var best Hit
	found := false
	pool.Active(func(e *entity.Enemy) {
		t, ok := cylinderEntry(origin, dir, e.Position, e.Stats.Radius, e.Stats.Height)
		if !ok || t > limit || (found && t >= best.Distance) {
			return
		}
		point := origin.Add(dir.Scale(t))
		best = Hit{
			Enemy:    e,
			Point:    point,
			Distance: t,
			Region:   Region((point.Y-e.Position.Y)/e.Stats.Height, lateralOffset(origin, dir, e.Position), e.Stats.Radius),
		}
		found = true
	})
	return best, found
}

// wallDistance marches the ray through the floor plan and returns the
// distance to the first solid tile or the floor, capped at the range
func (s *CombatSystem) wallDistance(origin, dir entity.Vec3) float64 {
	limit := s.maxRange
	if dir.Y < 0 && origin.Y > 0 {
		if floor := -origin.Y / dir.Y; floor < limit {
			limit = floor
		}
	}

	step := s.stage.TileSize / marchPerTile
	for t := step; t <= limit; t += step {
		if s.stage.IsSolidAt(origin.Add(dir.Scale(t))) {
			return t
		}
	}
	return limit
}

// cylinderEntry intersects a ray with an upright cylinder standing on base.
// It returns the smallest non-negative distance at which the ray is inside.
func cylinderEntry(origin, dir, base entity.Vec3, radius, height float64) (float64, bool) {
	ox, oz := origin.X-base.X, origin.Z-base.Z
	tMin, tMax := 0.0, math.Inf(1)

	// Side wall
	a := dir.X*dir.X + dir.Z*dir.Z
	c := ox*ox + oz*oz - radius*radius
	if a == 0 {
		if c > 0 {
			return 0, false
		}
	} else {
		b := 2 * (ox*dir.X + oz*dir.Z)
		disc := b*b - 4*a*c
		if disc < 0 {
			return 0, false
		}
		sq := math.Sqrt(disc)
		tMin = math.Max(tMin, (-b-sq)/(2*a))
		tMax = math.Min(tMax, (-b+sq)/(2*a))
	}

	// Caps
	oy := origin.Y - base.Y
	if dir.Y == 0 {
		if oy < 0 || oy > height {
			return 0, false
		}
	} else {
		t0, t1 := -oy/dir.Y, (height-oy)/dir.Y
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
	}

	if tMin > tMax {
		return 0, false
	}
	return tMin, true
}

// lateralOffset is the horizontal distance from the body axis to the ray
func lateralOffset(origin, dir, base entity.Vec3) float64 {
	h := dir.Horizontal()
	if h.Length() == 0 {
		return 0
	}
	h = h.Normalized()
	rel := base.Sub(origin).Horizontal()
	return math.Abs(rel.X*h.Z - rel.Z*h.X)
}
