package entity

import "fmt"

// Damageable is anything that can be hurt by a combatant
type Damageable interface {
	TakeDamage(amount float64)
	Life() float64
}

// Life is a health pool clamped to [0, max]
type Life struct {
	current float64
	max     float64
}

// NewLife creates a full health pool
func NewLife(max float64) (Life, error) {
	if max <= 0 {
		return Life{}, fmt.Errorf("max life must be greater than 0, got %v: %w", max, ErrInvalidConfig)
	}
	return Life{current: max, max: max}, nil
}

// Current returns the remaining life
func (l *Life) Current() float64 { return l.current }

// Max returns the maximum life
func (l *Life) Max() float64 { return l.max }

// Ratio returns current/max in [0, 1]
func (l *Life) Ratio() float64 { return l.current / l.max }

// IsDead reports whether life reached zero
func (l *Life) IsDead() bool { return l.current <= 0 }

// Remove subtracts amount, clamping at zero. It returns true when this
// call brought life to zero.
func (l *Life) Remove(amount float64) bool {
	if amount <= 0 || l.current <= 0 {
		return false
	}
	l.current -= amount
	if l.current <= 0 {
		l.current = 0
		return true
	}
	return false
}

// Add restores up to amount without exceeding max and returns what was restored
func (l *Life) Add(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	room := l.max - l.current
	if amount > room {
		amount = room
	}
	l.current += amount
	return amount
}

// Reset refills to max
func (l *Life) Reset() {
	l.current = l.max
}
