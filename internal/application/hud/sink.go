// Package hud binds player state to the heads-up display.
package hud

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . Sink

// Sink receives display values. Nothing in gameplay reads them back.
type Sink interface {
	SetLife(current, max float64)
	SetPoints(points uint32)
	SetAmmo(charger, reserve uint16)
	SetWeapon(name, texture, ammoKind string)
}
