package entity

import "fmt"

// Points awarded by combat
const (
	PointsPerShot         uint32 = 10
	PointsPerKill         uint32 = 50
	PointsPerHeadshotKill uint32 = 100
)

// PlayerStats configures the player character
type PlayerStats struct {
	MaxLife          float64
	FOV              float64
	MouseSensitivity float64
	MinPitch         float64
	MaxPitch         float64

	CrouchSpeed  float64
	WalkSpeed    float64
	RunSpeed     float64
	Gravity      float64
	JumpStrength float64
	Radius       float64
	EyeHeight    float64

	CanCrouch     bool
	CanRun        bool
	CanJump       bool
	CanShot       bool
	CanInteract   bool
	CanFlashlight bool
	InfiniteAmmo  bool
}

// DefaultPlayerStats returns the stock player tuning
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		MaxLife:          100,
		FOV:              70,
		MouseSensitivity: 0.1,
		MinPitch:         -89,
		MaxPitch:         89,
		CrouchSpeed:      1,
		WalkSpeed:        2,
		RunSpeed:         4,
		Gravity:          9.81,
		JumpStrength:     3,
		Radius:           0.5,
		EyeHeight:        1.6,
		CanCrouch:        true,
		CanRun:           true,
		CanJump:          true,
		CanShot:          true,
		CanInteract:      true,
		CanFlashlight:    true,
	}
}

// Validate checks the player invariants
func (s PlayerStats) Validate() error {
	if s.FOV <= 0 {
		return fmt.Errorf("FOV must be greater than 0: %w", ErrInvalidConfig)
	}
	if s.MaxLife <= 0 {
		return fmt.Errorf("max life must be greater than 0: %w", ErrInvalidConfig)
	}
	if s.CrouchSpeed <= 0 {
		return fmt.Errorf("crouch speed must be greater than 0: %w", ErrInvalidConfig)
	}
	if s.WalkSpeed <= 0 {
		return fmt.Errorf("walk speed must be greater than 0: %w", ErrInvalidConfig)
	}
	if s.RunSpeed <= 0 {
		return fmt.Errorf("run speed must be greater than 0: %w", ErrInvalidConfig)
	}
	if s.MinPitch > s.MaxPitch {
		return fmt.Errorf("min pitch %v above max pitch %v: %w", s.MinPitch, s.MaxPitch, ErrInvalidConfig)
	}
	return nil
}

// Player represents the player entity
type Player struct {
	Body
	Stats     PlayerStats
	Inventory *Inventory

	life     Life
	points   uint32
	equipped int

	// InShot latches while the trigger is held on a semi-auto weapon
	InShot     bool
	Flashlight bool
}

// NewPlayer creates a player at position with full life and an empty inventory
func NewPlayer(position Vec3, stats PlayerStats) (*Player, error) {
	if err := stats.Validate(); err != nil {
		return nil, err
	}
	life, err := NewLife(stats.MaxLife)
	if err != nil {
		return nil, err
	}
	return &Player{
		Body:      Body{Position: position},
		Stats:     stats,
		Inventory: NewInventory(),
		life:      life,
	}, nil
}

// Life returns the remaining life
func (p *Player) Life() float64 { return p.life.Current() }

// MaxLife returns the maximum life
func (p *Player) MaxLife() float64 { return p.life.Max() }

// IsDead reports whether life reached zero
func (p *Player) IsDead() bool { return p.life.IsDead() }

// TakeDamage implements Damageable; life clamps at zero
func (p *Player) TakeDamage(amount float64) {
	p.life.Remove(amount)
}

// AddLife heals up to amount and returns what was restored
func (p *Player) AddLife(amount float64) float64 {
	return p.life.Add(amount)
}

// AddAmmo stores rounds in the backpack and returns how many fit
func (p *Player) AddAmmo(kind AmmoKind, quantity uint16) uint16 {
	r, err := p.Inventory.Reserve(kind)
	if err != nil {
		return 0
	}
	return r.Add(quantity)
}

// Points returns the score
func (p *Player) Points() uint32 { return p.points }

// AddPoints increases the score
func (p *Player) AddPoints(n uint32) { p.points += n }

// SpendPoints pays n points if affordable
func (p *Player) SpendPoints(n uint32) bool {
	if n > p.points {
		return false
	}
	p.points -= n
	return true
}

// EquippedIndex returns the inventory index of the weapon in hand
func (p *Player) EquippedIndex() int { return p.equipped }

// Equipped returns the weapon in hand
func (p *Player) Equipped() (*Weapon, bool) {
	w, err := p.Inventory.Weapon(p.equipped)
	if err != nil {
		return nil, false
	}
	return w, true
}

// Equip puts the weapon at index in hand and releases the trigger latch
func (p *Player) Equip(index int) error {
	if !p.Inventory.WeaponExists(index) {
		return fmt.Errorf("equip weapon %d: %w", index, ErrOutOfRange)
	}
	p.equipped = index
	p.InShot = false
	return nil
}

// NextWeapon equips the following weapon, wrapping around
func (p *Player) NextWeapon() error {
	return p.Equip(p.Inventory.NextIndex(p.equipped))
}

// PreviousWeapon equips the preceding weapon, wrapping around
func (p *Player) PreviousWeapon() error {
	return p.Equip(p.Inventory.PreviousIndex(p.equipped))
}

// Rotate turns the view by mouse deltas in pixels, clamping the pitch
func (p *Player) Rotate(dx, dy float64) {
	p.Yaw -= dx * p.Stats.MouseSensitivity
	p.Pitch -= dy * p.Stats.MouseSensitivity
	if p.Pitch < p.Stats.MinPitch {
		p.Pitch = p.Stats.MinPitch
	}
	if p.Pitch > p.Stats.MaxPitch {
		p.Pitch = p.Stats.MaxPitch
	}
}

// Eye returns the world position of the camera
func (p *Player) Eye() Vec3 {
	return p.Position.Add(Vec3{Y: p.Stats.EyeHeight})
}

// Reset restores life, clears score and weapons, and moves to position
func (p *Player) Reset(position Vec3) {
	p.Body = Body{Position: position}
	p.life.Reset()
	p.points = 0
	p.equipped = 0
	p.InShot = false
	p.Flashlight = false
	p.Inventory = NewInventory()
}
