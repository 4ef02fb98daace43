package hud

import "github.com/younwookim/protozombie/internal/domain/entity"

type snapshot struct {
	life, maxLife    float64
	points           uint32
	charger, reserve uint16
	weapon, texture  string
	ammoKind         string
}

// Presenter pushes player state into a Sink, only when a value changed
type Presenter struct {
	sink   Sink
	last   snapshot
	primed bool
}

// NewPresenter creates a presenter; the first Sync pushes every value
func NewPresenter(sink Sink) *Presenter {
	return &Presenter{sink: sink}
}

// Reset makes the next Sync push every value again
func (p *Presenter) Reset() {
	p.primed = false
}

// Sync reads the player and forwards what changed since the last call
func (p *Presenter) Sync(player *entity.Player) {
	cur := capture(player)
	force := !p.primed

	if force || cur.life != p.last.life || cur.maxLife != p.last.maxLife {
		p.sink.SetLife(cur.life, cur.maxLife)
	}
	if force || cur.points != p.last.points {
		p.sink.SetPoints(cur.points)
	}
	if force || cur.charger != p.last.charger || cur.reserve != p.last.reserve {
		p.sink.SetAmmo(cur.charger, cur.reserve)
	}
	if force || cur.weapon != p.last.weapon || cur.texture != p.last.texture || cur.ammoKind != p.last.ammoKind {
		p.sink.SetWeapon(cur.weapon, cur.texture, cur.ammoKind)
	}

	p.last = cur
	p.primed = true
}

func capture(player *entity.Player) snapshot {
	s := snapshot{
		life:    player.Life(),
		maxLife: player.MaxLife(),
		points:  player.Points(),
	}

	w, ok := player.Equipped()
	if !ok {
		return s
	}
	s.weapon = w.Name()
	s.texture = w.Stats().Texture
	s.ammoKind = w.AmmoKind().String()
	s.charger = w.Charger().Quantity()
	if r, err := player.Inventory.Reserve(w.AmmoKind()); err == nil {
		s.reserve = r.Quantity()
	}
	return s
}
