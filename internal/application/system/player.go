package system

import (
	"github.com/younwookim/protozombie/internal/domain/entity"
)

// SoundPlayer plays a named sound effect
type SoundPlayer interface {
	Play(name string)
}

// PlayerSystem turns input into player movement, weapon handling and
// interaction with the level
type PlayerSystem struct {
	physics *PhysicsSystem
	combat  *CombatSystem
	sounds  SoundPlayer
	events  *EventQueue
}

// NewPlayerSystem creates a new player system. sounds may be nil.
func NewPlayerSystem(physics *PhysicsSystem, combat *CombatSystem, sounds SoundPlayer, events *EventQueue) *PlayerSystem {
	return &PlayerSystem{
		physics: physics,
		combat:  combat,
		sounds:  sounds,
		events:  events,
	}
}

// Update runs one tick of the player
func (s *PlayerSystem) Update(player *entity.Player, in InputState, level *Level, dt float64) {
	if player.IsDead() {
		return
	}

	player.Rotate(in.LookDX, in.LookDY)
	s.handleMovement(player, in)
	s.physics.Update(player, dt)

	for _, w := range player.Inventory.Weapons() {
		w.Update(dt)
	}
	s.handleWeaponSwitch(player, in)
	if player.Stats.CanShot {
		s.handleFire(player, in, level.Pool)
		if in.Reload {
			s.reload(player)
		}
	}

	if player.Stats.CanInteract && in.Interact {
		s.interact(player, level.Buyables)
	}
	s.collectPickups(player, level)

	if player.Stats.CanFlashlight && in.Flashlight {
		player.Flashlight = !player.Flashlight
	}
}

// handleMovement sets the horizontal velocity from WASD relative to the yaw
func (s *PlayerSystem) handleMovement(player *entity.Player, in InputState) {
	stats := player.Stats

	player.Crouching = stats.CanCrouch && in.Crouch
	player.Running = stats.CanRun && in.Run && !player.Crouching

	speed := stats.WalkSpeed
	if player.Crouching {
		speed = stats.CrouchSpeed
	} else if player.Running {
		speed = stats.RunSpeed
	}

	var dir entity.Vec3
	if in.Forward {
		dir = dir.Add(player.Forward())
	}
	if in.Back {
		dir = dir.Sub(player.Forward())
	}
	if in.Right {
		dir = dir.Add(player.Right())
	}
	if in.Left {
		dir = dir.Sub(player.Right())
	}
	dir = dir.Normalized().Scale(speed)
	player.Velocity.X = dir.X
	player.Velocity.Z = dir.Z

	if stats.CanJump && in.Jump && player.OnFloor {
		player.Velocity.Y = stats.JumpStrength
		player.OnFloor = false
	}
}

// handleWeaponSwitch equips next, previous or a direct slot
func (s *PlayerSystem) handleWeaponSwitch(player *entity.Player, in InputState) {
	before := player.EquippedIndex()

	var err error
	switch {
	case in.Slot > 0:
		err = player.Equip(in.Slot - 1)
	case in.NextWeapon:
		err = player.NextWeapon()
	case in.PreviousWeapon:
		err = player.PreviousWeapon()
	default:
		return
	}
	if err != nil || player.EquippedIndex() == before {
		return
	}

	if w, ok := player.Equipped(); ok {
		s.events.Push(WeaponEquipped{Index: player.EquippedIndex(), Name: w.Name()})
	}
}

// handleFire shoots while the trigger is held. A semi-auto weapon fires
// once per press; releasing the trigger re-arms it.
func (s *PlayerSystem) handleFire(player *entity.Player, in InputState, pool *entity.EnemyPool) {
	if !in.Fire {
		player.InShot = false
		return
	}

	w, ok := player.Equipped()
	if !ok {
		return
	}
	if w.ShotType() == entity.SemiAuto && player.InShot {
		return
	}

	var fired uint16
	if player.Stats.InfiniteAmmo {
		fired = w.ShotUnlimited()
	} else {
		fired = w.Shot()
	}
	if fired == 0 {
		return
	}

	player.InShot = true
	sound := w.Stats().Sound
	if s.sounds != nil {
		s.sounds.Play(sound)
	}
	s.events.Push(ShotFired{Weapon: w.Name(), Sound: sound})
	s.combat.Fire(player, w, pool)
}

// reload fills the weapon in hand from the backpack
func (s *PlayerSystem) reload(player *entity.Player) {
	w, ok := player.Equipped()
	if !ok {
		return
	}
	reserve, err := player.Inventory.Reserve(w.AmmoKind())
	if err != nil {
		return
	}
	n, err := w.Reload(reserve)
	if err != nil || n == 0 {
		return
	}
	s.events.Push(Reloaded{Weapon: w.Name(), Rounds: n})
}

// interact buys the nearest weapon for sale within reach
func (s *PlayerSystem) interact(player *entity.Player, buyables []*entity.BuyableWeapon) {
	reach := entity.PickupRadius + player.Stats.Radius

	var nearest *entity.BuyableWeapon
	best := reach
	for _, b := range buyables {
		if d := entity.HorizontalDistance(player.Position, b.Position); d <= best {
			nearest, best = b, d
		}
	}
	if nearest == nil {
		return
	}

	w, err := nearest.Buy(player)
	if err != nil {
		s.events.Push(PurchaseRefused{Name: nearest.Name(), Reason: err})
		return
	}
	s.events.Push(WeaponBought{Name: nearest.Name(), Price: nearest.Price})

	idx := player.Inventory.AddWeapon(w)
	if player.Equip(idx) == nil {
		s.events.Push(WeaponEquipped{Index: idx, Name: w.Name()})
	}
}

// collectPickups empties every overlapping ammo box and healthkit
func (s *PlayerSystem) collectPickups(player *entity.Player, level *Level) {
	reach := entity.PickupRadius + player.Stats.Radius

	for _, box := range level.AmmoBoxes {
		if !box.Active || entity.HorizontalDistance(player.Position, box.Position) > reach {
			continue
		}
		if n := box.Collect(player); n > 0 {
			s.events.Push(PickupCollected{Item: box.Kind.String(), Amount: float64(n)})
		}
	}
	for _, kit := range level.Healthkits {
		if !kit.Active || entity.HorizontalDistance(player.Position, kit.Position) > reach {
			continue
		}
		if n := kit.Collect(player); n > 0 {
			s.events.Push(PickupCollected{Item: "health", Amount: n})
		}
	}
}
