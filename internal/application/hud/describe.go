package hud

import (
	"fmt"

	"github.com/younwookim/protozombie/internal/application/system"
)

// Describe turns a gameplay event into a HUD message.
// Events too frequent to announce (shots, hits, bites) yield false.
func Describe(ev system.Event) (string, bool) {
	switch e := ev.(type) {
	case system.EnemyKilled:
		if e.Headshot {
			return fmt.Sprintf("Headshot! +%d", e.Points), true
		}
		return fmt.Sprintf("Kill +%d", e.Points), true
	case system.WeaponBought:
		return fmt.Sprintf("Bought %s for %d", e.Name, e.Price), true
	case system.PurchaseRefused:
		return fmt.Sprintf("Cannot buy %s: %v", e.Name, e.Reason), true
	case system.PickupCollected:
		return fmt.Sprintf("+%.0f %s", e.Amount, e.Item), true
	case system.WeaponEquipped:
		return e.Name, true
	case system.Reloaded:
		return fmt.Sprintf("%s +%d", e.Weapon, e.Rounds), true
	case system.PlayerDied:
		return fmt.Sprintf("You died with %d points", e.Points), true
	}
	return "", false
}
