package entity

import "fmt"

// PickupRadius is how close the player must be to collect or buy
const PickupRadius = 1.0

// AmmoBox hands rounds of one kind to the player. Rounds that do not fit
// stay in the box.
type AmmoBox struct {
	Position Vec3
	Kind     AmmoKind
	Quantity uint16
	Active   bool
}

// NewAmmoBox creates an active ammo box
func NewAmmoBox(position Vec3, kind AmmoKind, quantity uint16) *AmmoBox {
	return &AmmoBox{Position: position, Kind: kind, Quantity: quantity, Active: quantity > 0}
}

// Collect transfers as many rounds as the player can carry and returns the count
func (b *AmmoBox) Collect(p *Player) uint16 {
	if !b.Active {
		return 0
	}
	n := p.AddAmmo(b.Kind, b.Quantity)
	b.Quantity -= n
	if b.Quantity == 0 {
		b.Active = false
	}
	return n
}

// Healthkit restores life. Life that does not fit stays in the kit.
type Healthkit struct {
	Position Vec3
	Quantity float64
	Active   bool
}

// NewHealthkit creates an active healthkit
func NewHealthkit(position Vec3, quantity float64) *Healthkit {
	return &Healthkit{Position: position, Quantity: quantity, Active: quantity > 0}
}

// Collect heals the player and returns the life restored
func (h *Healthkit) Collect(p *Player) float64 {
	if !h.Active {
		return 0
	}
	n := p.AddLife(h.Quantity)
	h.Quantity -= n
	if h.Quantity <= 0 {
		h.Quantity = 0
		h.Active = false
	}
	return n
}

// BuyableWeapon is a wall weapon the player can buy with points
type BuyableWeapon struct {
	Position Vec3
	Price    uint32
	display  *Weapon
}

// NewBuyableWeapon creates a buyable catalog weapon. A zero price falls back
// to the catalog price.
func NewBuyableWeapon(position Vec3, model WeaponModel, price uint32) (*BuyableWeapon, error) {
	w, err := NewCatalogWeapon(model)
	if err != nil {
		return nil, err
	}
	if price == 0 {
		price = w.Stats().Price
	}
	return &BuyableWeapon{Position: position, Price: price, display: w}, nil
}

// Model returns the model on sale
func (b *BuyableWeapon) Model() WeaponModel { return b.display.Model() }

// Name returns the display name of the weapon on sale
func (b *BuyableWeapon) Name() string { return b.display.Name() }

// Buy charges the player and hands over a fresh copy of the weapon.
// The player keeps its points when it already owns the model or cannot pay.
func (b *BuyableWeapon) Buy(p *Player) (*Weapon, error) {
	if p.Inventory.HasModel(b.Model()) {
		return nil, fmt.Errorf("buy %s: already owned: %w", b.Name(), ErrInvalidPurchase)
	}
	if !p.SpendPoints(b.Price) {
		return nil, fmt.Errorf("buy %s: %d points needed, %d available: %w", b.Name(), b.Price, p.Points(), ErrInvalidPurchase)
	}
	return b.display.Clone(), nil
}
