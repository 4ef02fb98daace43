package system

import "github.com/younwookim/protozombie/internal/domain/entity"

// Event is something that happened during a tick and that presentation
// layers (HUD, audio, feedback) may react to
type Event interface {
	isEvent()
}

// ShotFired is pushed when a weapon actually fires
type ShotFired struct {
	Weapon string
	Sound  string
}

func (ShotFired) isEvent() {}

// EnemyHit is pushed for every hitscan hit on an active enemy
type EnemyHit struct {
	EnemyID entity.EntityID
	Region  entity.BodyRegion
	Damage  float64
}

func (EnemyHit) isEvent() {}

// EnemyKilled is pushed when a hit brought an enemy to zero life
type EnemyKilled struct {
	EnemyID  entity.EntityID
	Headshot bool
	Points   uint32
}

func (EnemyKilled) isEvent() {}

// PlayerDamaged is pushed when an enemy bites the player
type PlayerDamaged struct {
	Amount float64
	Life   float64
}

func (PlayerDamaged) isEvent() {}

// PlayerDied is pushed once when the player's life reaches zero
type PlayerDied struct {
	Points uint32
}

func (PlayerDied) isEvent() {}

// WeaponEquipped is pushed when the weapon in hand changes
type WeaponEquipped struct {
	Index int
	Name  string
}

func (WeaponEquipped) isEvent() {}

// WeaponBought is pushed after a successful purchase
type WeaponBought struct {
	Name  string
	Price uint32
}

func (WeaponBought) isEvent() {}

// PurchaseRefused is pushed when the player cannot buy a weapon
type PurchaseRefused struct {
	Name   string
	Reason error
}

func (PurchaseRefused) isEvent() {}

// Reloaded is pushed when rounds moved from the backpack to the charger
type Reloaded struct {
	Weapon string
	Rounds uint16
}

func (Reloaded) isEvent() {}

// PickupCollected is pushed when a pickup gave something to the player.
// Item is "health" or the ammo kind name.
type PickupCollected struct {
	Item   string
	Amount float64
}

func (PickupCollected) isEvent() {}

// EventQueue collects events during a tick
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 16)}
}

// Push appends an event. A nil queue drops it.
func (q *EventQueue) Push(e Event) {
	if q == nil {
		return
	}
	q.events = append(q.events, e)
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.events)
}

// Drain returns the pending events in push order and empties the queue
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
