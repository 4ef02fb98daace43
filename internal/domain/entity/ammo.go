package entity

import "fmt"

// AmmoKind identifies a type of ammunition
type AmmoKind int

const (
	AmmoMm9 AmmoKind = iota
	AmmoAcp45
	AmmoShotshell
	AmmoMm556
	AmmoMm762
	AmmoRocket
	AmmoArrow
	AmmoCrossbowBolt
	AmmoLaser
)

// AmmoKinds lists every ammo kind in declaration order
var AmmoKinds = []AmmoKind{
	AmmoMm9, AmmoAcp45, AmmoShotshell, AmmoMm556, AmmoMm762,
	AmmoRocket, AmmoArrow, AmmoCrossbowBolt, AmmoLaser,
}

var ammoKindNames = map[AmmoKind]string{
	AmmoMm9:          "9mm",
	AmmoAcp45:        ".45ACP",
	AmmoShotshell:    "shotshell",
	AmmoMm556:        "5.56mm",
	AmmoMm762:        "7.62mm",
	AmmoRocket:       "rocket",
	AmmoArrow:        "arrow",
	AmmoCrossbowBolt: "crossbow-bolt",
	AmmoLaser:        "laser",
}

// String returns the display name of the ammo kind
func (k AmmoKind) String() string {
	if name, ok := ammoKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseAmmoKind resolves a display name back to its kind
func ParseAmmoKind(name string) (AmmoKind, error) {
	for kind, n := range ammoKindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("ammo kind %q: %w", name, ErrNotFound)
}

// Reserve is a bounded ammo counter: a weapon's charger or one kind of
// backpack stock. Invariant: 0 <= quantity <= capacity, capacity > 0.
type Reserve struct {
	quantity uint16
	capacity uint16
	kind     AmmoKind
}

// NewReserve creates a reserve holding quantity rounds
func NewReserve(quantity, capacity uint16, kind AmmoKind) (*Reserve, error) {
	if capacity == 0 {
		return nil, fmt.Errorf("reserve capacity must be greater than 0: %w", ErrInvalidConfig)
	}
	if quantity > capacity {
		return nil, fmt.Errorf("reserve quantity %d exceeds capacity %d: %w", quantity, capacity, ErrInvalidConfig)
	}
	return &Reserve{quantity: quantity, capacity: capacity, kind: kind}, nil
}

// NewFullReserve creates a reserve filled to capacity
func NewFullReserve(capacity uint16, kind AmmoKind) (*Reserve, error) {
	return NewReserve(capacity, capacity, kind)
}

// Quantity returns the number of rounds held
func (r *Reserve) Quantity() uint16 { return r.quantity }

// Capacity returns the maximum number of rounds
func (r *Reserve) Capacity() uint16 { return r.capacity }

// Kind returns the ammo kind
func (r *Reserve) Kind() AmmoKind { return r.kind }

// Missing returns how many rounds fit before the reserve is full
func (r *Reserve) Missing() uint16 { return r.capacity - r.quantity }

// IsFull reports whether quantity equals capacity
func (r *Reserve) IsFull() bool { return r.quantity == r.capacity }

// IsEmpty reports whether no rounds are held
func (r *Reserve) IsEmpty() bool { return r.quantity == 0 }

// SetQuantity sets the quantity, clamped to capacity
func (r *Reserve) SetQuantity(v uint16) {
	if v > r.capacity {
		v = r.capacity
	}
	r.quantity = v
}

// SetCapacity changes the capacity. Rounds above the new capacity are
// discarded and their count returned.
func (r *Reserve) SetCapacity(v uint16) (uint16, error) {
	if v == 0 {
		return 0, fmt.Errorf("reserve capacity must be greater than 0: %w", ErrInvalidConfig)
	}

	var discarded uint16
	if v < r.quantity {
		discarded = r.quantity - v
		r.quantity = v
	}
	r.capacity = v

	return discarded, nil
}

// Add stores up to n rounds and returns how many were actually stored
func (r *Reserve) Add(n uint16) uint16 {
	if n > r.Missing() {
		n = r.Missing()
	}
	r.quantity += n
	return n
}

// Remove takes up to n rounds out and returns how many were actually removed.
// The quantity never goes below zero.
func (r *Reserve) Remove(n uint16) uint16 {
	if n > r.quantity {
		n = r.quantity
	}
	r.quantity -= n
	return n
}

// transfer moves as many rounds as possible from src to dst
func transfer(src, dst *Reserve) (uint16, error) {
	if src.kind != dst.kind {
		return 0, fmt.Errorf("cannot move %s into %s: %w", src.kind, dst.kind, ErrTypeMismatch)
	}

	n := src.quantity
	if n > dst.Missing() {
		n = dst.Missing()
	}
	src.quantity -= n
	dst.quantity += n

	return n, nil
}

// Clone returns an independent copy
func (r *Reserve) Clone() *Reserve {
	c := *r
	return &c
}
