package entity

import "fmt"

// WeaponModel identifies an entry of the weapon catalog
type WeaponModel int

const (
	ModelGlock17 WeaponModel = iota
	ModelM1911
	ModelMP5
	ModelMP7
	ModelUSP45
)

var pistolMultipliers = Multipliers{Head: 2.0, Torso: 1.0, Arm: 0.6, Leg: 0.8}

// catalog maps every model to its baked-in stats
var catalog = map[WeaponModel]WeaponStats{
	ModelGlock17: {
		Name: "Glock-17", Damage: 10, Multipliers: pistolMultipliers,
		FireRate: 1200, ChargerCapacity: 17, AmmoKind: AmmoMm9, ShotType: SemiAuto,
		Texture: "weapon_glock_17", Sound: "glock17_shot", Price: 500,
	},
	ModelM1911: {
		Name: "M1911", Damage: 10, Multipliers: pistolMultipliers,
		FireRate: 342, ChargerCapacity: 7, AmmoKind: AmmoAcp45, ShotType: SemiAuto,
		Texture: "weapon_m1911", Sound: "m1911_shot", Price: 500,
	},
	ModelMP5: {
		Name: "MP5", Damage: 25, Multipliers: pistolMultipliers,
		FireRate: 800, ChargerCapacity: 30, AmmoKind: AmmoMm9, ShotType: FullAuto,
		Texture: "weapon_mp5", Sound: "mp5_shot", Price: 1000,
	},
	ModelMP7: {
		Name: "MP7", Damage: 30, Multipliers: pistolMultipliers,
		FireRate: 720, ChargerCapacity: 30, AmmoKind: AmmoMm9, ShotType: FullAuto,
		Texture: "weapon_mp7", Sound: "mp5_shot", Price: 1250,
	},
	ModelUSP45: {
		Name: "USP45", Damage: 10, Multipliers: pistolMultipliers,
		// Chambered in .45 ACP, sharing the M1911's backpack stock
		FireRate: 342, ChargerCapacity: 7, AmmoKind: AmmoAcp45, ShotType: SemiAuto,
		Texture: "weapon_usp45", Sound: "m1911_shot", Price: 750,
	},
}

var modelKeys = map[string]WeaponModel{
	"glock17": ModelGlock17,
	"m1911":   ModelM1911,
	"mp5":     ModelMP5,
	"mp7":     ModelMP7,
	"usp45":   ModelUSP45,
}

// String returns the config key of the model
func (m WeaponModel) String() string {
	for key, model := range modelKeys {
		if model == m {
			return key
		}
	}
	return "unknown"
}

// ParseWeaponModel resolves a config key such as "mp7"
func ParseWeaponModel(key string) (WeaponModel, error) {
	m, ok := modelKeys[key]
	if !ok {
		return 0, fmt.Errorf("weapon model %q: %w", key, ErrNotFound)
	}
	return m, nil
}

// StatsOf returns the catalog stats of a model
func StatsOf(model WeaponModel) (WeaponStats, error) {
	stats, ok := catalog[model]
	if !ok {
		return WeaponStats{}, fmt.Errorf("weapon model %d: %w", model, ErrNotFound)
	}
	return stats, nil
}

// NewCatalogWeapon builds a fresh weapon of the given model
func NewCatalogWeapon(model WeaponModel) (*Weapon, error) {
	stats, err := StatsOf(model)
	if err != nil {
		return nil, err
	}
	return NewWeapon(model, stats)
}
