package entity

import "errors"

var (
	// ErrInvalidConfig is returned when a constructor receives values that
	// would break an invariant. It is not recoverable.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrTypeMismatch is returned when ammo moves between reserves of different kinds
	ErrTypeMismatch = errors.New("ammo kind mismatch")

	// ErrOutOfRange is returned for weapon indexes outside the inventory
	ErrOutOfRange = errors.New("index out of range")

	// ErrNotFound is returned when a reserve or weapon lookup has no match
	ErrNotFound = errors.New("not found")

	// ErrInvalidPurchase is returned when a buy is refused
	ErrInvalidPurchase = errors.New("purchase refused")
)
