package entity

import "fmt"

// ReserveCapacities is the backpack capacity of every ammo kind
var ReserveCapacities = map[AmmoKind]uint16{
	AmmoMm9:          30,
	AmmoAcp45:        30,
	AmmoShotshell:    16,
	AmmoMm556:        300,
	AmmoMm762:        300,
	AmmoRocket:       2,
	AmmoArrow:        15,
	AmmoCrossbowBolt: 15,
	AmmoLaser:        100,
}

// Inventory holds one reserve per ammo kind and the owned weapons in equip order.
// The set of reserves never changes after construction.
type Inventory struct {
	reserves map[AmmoKind]*Reserve
	weapons  []*Weapon
}

// NewInventory creates an inventory without weapons and with all reserves empty
func NewInventory() *Inventory {
	inv := &Inventory{
		reserves: make(map[AmmoKind]*Reserve, len(AmmoKinds)),
		weapons:  make([]*Weapon, 0, 4),
	}
	for _, kind := range AmmoKinds {
		inv.reserves[kind] = &Reserve{capacity: ReserveCapacities[kind], kind: kind}
	}
	return inv
}

// Reserve returns the backpack reserve for an ammo kind
func (inv *Inventory) Reserve(kind AmmoKind) (*Reserve, error) {
	r, ok := inv.reserves[kind]
	if !ok {
		return nil, fmt.Errorf("no reserve for ammo kind %s: %w", kind, ErrNotFound)
	}
	return r, nil
}

// Reserves returns the reserves in ammo kind order
func (inv *Inventory) Reserves() []*Reserve {
	out := make([]*Reserve, 0, len(inv.reserves))
	for _, kind := range AmmoKinds {
		out = append(out, inv.reserves[kind])
	}
	return out
}

// WeaponCount returns the number of owned weapons
func (inv *Inventory) WeaponCount() int {
	return len(inv.weapons)
}

// Weapons returns the owned weapons in equip order
func (inv *Inventory) Weapons() []*Weapon {
	return inv.weapons
}

// Weapon returns the weapon at index
func (inv *Inventory) Weapon(index int) (*Weapon, error) {
	if !inv.WeaponExists(index) {
		return nil, fmt.Errorf("weapon index %d of %d: %w", index, len(inv.weapons), ErrOutOfRange)
	}
	return inv.weapons[index], nil
}

// WeaponByName returns the first weapon with the given name, or nil
func (inv *Inventory) WeaponByName(name string) *Weapon {
	for _, w := range inv.weapons {
		if w.Name() == name {
			return w
		}
	}
	return nil
}

// HasModel reports whether a weapon of the model is owned
func (inv *Inventory) HasModel(model WeaponModel) bool {
	for _, w := range inv.weapons {
		if w.Model() == model {
			return true
		}
	}
	return false
}

// AddWeapon appends a weapon and returns its index
func (inv *Inventory) AddWeapon(w *Weapon) int {
	inv.weapons = append(inv.weapons, w)
	return len(inv.weapons) - 1
}

// RemoveWeaponAt removes and returns the weapon at index
func (inv *Inventory) RemoveWeaponAt(index int) (*Weapon, error) {
	w, err := inv.Weapon(index)
	if err != nil {
		return nil, err
	}
	inv.weapons = append(inv.weapons[:index], inv.weapons[index+1:]...)
	return w, nil
}

// RemoveWeapon removes the weapon if owned and returns it either way
func (inv *Inventory) RemoveWeapon(w *Weapon) *Weapon {
	if i, err := inv.WeaponIndex(w); err == nil {
		inv.weapons = append(inv.weapons[:i], inv.weapons[i+1:]...)
	}
	return w
}

// RemoveAllWeapons drops every weapon
func (inv *Inventory) RemoveAllWeapons() {
	inv.weapons = inv.weapons[:0]
}

// WeaponIndex returns the index of an owned weapon
func (inv *Inventory) WeaponIndex(w *Weapon) (int, error) {
	for i, owned := range inv.weapons {
		if owned == w {
			return i, nil
		}
	}
	return -1, fmt.Errorf("weapon not in inventory: %w", ErrNotFound)
}

// WeaponExists reports whether index addresses an owned weapon
func (inv *Inventory) WeaponExists(index int) bool {
	return index >= 0 && index < len(inv.weapons)
}

// NextIndex returns the index after current, wrapping to 0
func (inv *Inventory) NextIndex(current int) int {
	n := len(inv.weapons)
	if n == 0 {
		return 0
	}
	return ((current+1)%n + n) % n
}

// PreviousIndex returns the index before current, wrapping to the last one
func (inv *Inventory) PreviousIndex(current int) int {
	n := len(inv.weapons)
	if n == 0 {
		return 0
	}
	return ((current-1)%n + n) % n
}
