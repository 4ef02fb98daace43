package entity

import (
	"fmt"
	"strings"
)

// ShotType tells the caller whether holding the trigger repeats the shot
type ShotType int

const (
	SemiAuto ShotType = iota
	FullAuto
)

// String returns the string representation of the shot type
func (s ShotType) String() string {
	switch s {
	case SemiAuto:
		return "semi-auto"
	case FullAuto:
		return "full-auto"
	default:
		return "unknown"
	}
}

// BodyRegion is the part of a target hit by a shot
type BodyRegion int

const (
	RegionTorso BodyRegion = iota
	RegionHead
	RegionArm
	RegionLeg
)

// Multipliers scale weapon damage per body region
type Multipliers struct {
	Head  float64
	Torso float64
	Arm   float64
	Leg   float64
}

// For returns the multiplier of a region
func (m Multipliers) For(region BodyRegion) float64 {
	switch region {
	case RegionHead:
		return m.Head
	case RegionArm:
		return m.Arm
	case RegionLeg:
		return m.Leg
	default:
		return m.Torso
	}
}

// WeaponStats holds the fixed characteristics of a weapon model
type WeaponStats struct {
	Name            string
	Damage          float64
	Multipliers     Multipliers
	FireRate        uint16 // rounds per minute
	ChargerCapacity uint16
	AmmoKind        AmmoKind
	ShotType        ShotType
	Texture         string
	Sound           string
	Price           uint32
}

// Validate checks the weapon invariants
func (s WeaponStats) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("weapon name cannot be blank: %w", ErrInvalidConfig)
	}
	if s.Damage < 0 {
		return fmt.Errorf("weapon %s: damage cannot be negative: %w", s.Name, ErrInvalidConfig)
	}
	m := s.Multipliers
	if m.Head < 0 || m.Torso < 0 || m.Arm < 0 || m.Leg < 0 {
		return fmt.Errorf("weapon %s: multipliers cannot be negative: %w", s.Name, ErrInvalidConfig)
	}
	if s.FireRate == 0 {
		return fmt.Errorf("weapon %s: fire rate must be greater than 0: %w", s.Name, ErrInvalidConfig)
	}
	if s.ChargerCapacity == 0 {
		return fmt.Errorf("weapon %s: charger capacity must be greater than 0: %w", s.Name, ErrInvalidConfig)
	}
	return nil
}

// Weapon is a firearm with its own charger and fire-rate gate
type Weapon struct {
	model   WeaponModel
	stats   WeaponStats
	charger *Reserve

	// Seconds since the last successful shot
	sinceLastShot float64
	// Minimum seconds between two shots
	shotInterval float64
}

// NewWeapon creates a weapon with a full charger and an open fire gate
func NewWeapon(model WeaponModel, stats WeaponStats) (*Weapon, error) {
	if err := stats.Validate(); err != nil {
		return nil, err
	}

	charger, err := NewFullReserve(stats.ChargerCapacity, stats.AmmoKind)
	if err != nil {
		return nil, fmt.Errorf("weapon %s: %w", stats.Name, err)
	}

	interval := 60.0 / float64(stats.FireRate)
	return &Weapon{
		model:         model,
		stats:         stats,
		charger:       charger,
		sinceLastShot: interval,
		shotInterval:  interval,
	}, nil
}

// Model returns the catalog model
func (w *Weapon) Model() WeaponModel { return w.model }

// Stats returns a copy of the weapon characteristics
func (w *Weapon) Stats() WeaponStats { return w.stats }

// Name returns the display name
func (w *Weapon) Name() string { return w.stats.Name }

// ShotType returns the trigger behavior
func (w *Weapon) ShotType() ShotType { return w.stats.ShotType }

// AmmoKind returns the kind of ammo the charger takes
func (w *Weapon) AmmoKind() AmmoKind { return w.charger.Kind() }

// Charger returns the built-in reserve
func (w *Weapon) Charger() *Reserve { return w.charger }

// ShotInterval returns the minimum seconds between shots
func (w *Weapon) ShotInterval() float64 { return w.shotInterval }

// Damage returns the damage dealt to a region
func (w *Weapon) Damage(region BodyRegion) float64 {
	return w.stats.Damage * w.stats.Multipliers.For(region)
}

// Update advances the fire-rate gate. Call once per tick for every owned weapon.
func (w *Weapon) Update(dt float64) {
	w.sinceLastShot += dt
}

// CanShoot reports whether a shot would succeed now
func (w *Weapon) CanShoot() bool {
	return w.sinceLastShot >= w.shotInterval && !w.charger.IsEmpty()
}

// Shot fires one round. It returns 1 when the shot happened and 0 when the
// gate is closed or the charger is empty; a refused shot changes nothing.
func (w *Weapon) Shot() uint16 {
	if !w.CanShoot() {
		return 0
	}
	w.sinceLastShot = 0
	return w.charger.Remove(1)
}

// ShotUnlimited fires like Shot without consuming the round
func (w *Weapon) ShotUnlimited() uint16 {
	if !w.CanShoot() {
		return 0
	}
	w.sinceLastShot = 0
	return 1
}

// Reload fills the charger from an external reserve of the same kind
func (w *Weapon) Reload(reserve *Reserve) (uint16, error) {
	n, err := transfer(reserve, w.charger)
	if err != nil {
		return 0, fmt.Errorf("reload %s: %w", w.stats.Name, err)
	}
	return n, nil
}

// Fetch empties the charger into an external reserve of the same kind
func (w *Weapon) Fetch(reserve *Reserve) (uint16, error) {
	n, err := transfer(w.charger, reserve)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", w.stats.Name, err)
	}
	return n, nil
}

// Clone returns a new weapon of the same model with a full charger
func (w *Weapon) Clone() *Weapon {
	charger := &Reserve{
		quantity: w.stats.ChargerCapacity,
		capacity: w.stats.ChargerCapacity,
		kind:     w.stats.AmmoKind,
	}
	return &Weapon{
		model:         w.model,
		stats:         w.stats,
		charger:       charger,
		sinceLastShot: w.shotInterval,
		shotInterval:  w.shotInterval,
	}
}
