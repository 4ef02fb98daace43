package system

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/protozombie/internal/domain/entity"
	"github.com/younwookim/protozombie/internal/infrastructure/config"
)

// Level holds everything placed on the current floor plan
type Level struct {
	Stage      *entity.Stage
	Pool       *entity.EnemyPool
	AmmoBoxes  []*entity.AmmoBox
	Healthkits []*entity.Healthkit
	Buyables   []*entity.BuyableWeapon
}

// LoadStage converts a LevelConfig into a Stage entity
func LoadStage(cfg *config.LevelConfig) *entity.Stage {
	width := cfg.Width()
	depth := cfg.Depth()

	tiles := make([][]entity.Tile, depth)
	for z, row := range cfg.Rows {
		tiles[z] = make([]entity.Tile, width)
		for x, char := range row {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}

			tileType := entity.TileEmpty
			if mapping.Type == "wall" {
				tileType = entity.TileWall
			}
			tiles[z][x] = entity.Tile{Type: tileType, Solid: mapping.Solid}
		}
	}

	stage := &entity.Stage{
		Width:    width,
		Depth:    depth,
		TileSize: cfg.TileSize,
		Tiles:    tiles,
	}
	stage.PlayerSpawn = cellCenter(stage, cfg.PlayerSpawn)
	stage.IdleAnchor = cellCenter(stage, cfg.IdleAnchor)
	stage.SpawnPoints = make([]entity.Vec3, len(cfg.SpawnPoints))
	for i, sp := range cfg.SpawnPoints {
		stage.SpawnPoints[i] = cellCenter(stage, sp)
	}
	return stage
}

func cellCenter(stage *entity.Stage, c config.CellConfig) entity.Vec3 {
	return stage.CellCenter(c.X, c.Z)
}

// LoadLevel builds the stage, the enemy pool and the pickups of a level
func LoadLevel(cfg *config.LevelConfig, settings *config.SettingsConfig, rng *rand.Rand) (*Level, error) {
	stage := LoadStage(cfg)

	pool, err := entity.NewEnemyPool(settings.Spawn.PoolSize, EnemyStatsFrom(&settings.Enemy),
		stage.SpawnPoints, stage.IdleAnchor, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to build enemy pool: %w", err)
	}

	level := &Level{Stage: stage, Pool: pool}
	for i, p := range cfg.Pickups {
		pos := cellCenter(stage, config.CellConfig{X: p.X, Z: p.Z})
		switch p.Type {
		case "ammo":
			kind, err := entity.ParseAmmoKind(p.Ammo)
			if err != nil {
				return nil, fmt.Errorf("pickups[%d]: %w", i, err)
			}
			level.AmmoBoxes = append(level.AmmoBoxes, entity.NewAmmoBox(pos, kind, uint16(p.Quantity)))
		case "health":
			level.Healthkits = append(level.Healthkits, entity.NewHealthkit(pos, p.Quantity))
		default:
			return nil, fmt.Errorf("pickups[%d]: unknown type %q: %w", i, p.Type, entity.ErrInvalidConfig)
		}
	}
	for i, b := range cfg.Buyables {
		model, err := entity.ParseWeaponModel(b.Model)
		if err != nil {
			return nil, fmt.Errorf("buyables[%d]: %w", i, err)
		}
		bw, err := entity.NewBuyableWeapon(cellCenter(stage, config.CellConfig{X: b.X, Z: b.Z}), model, b.Price)
		if err != nil {
			return nil, fmt.Errorf("buyables[%d]: %w", i, err)
		}
		level.Buyables = append(level.Buyables, bw)
	}

	return level, nil
}

// PlayerStatsFrom converts the player section of game.json
func PlayerStatsFrom(cfg *config.PlayerConfig) entity.PlayerStats {
	return entity.PlayerStats{
		MaxLife:          cfg.MaxLife,
		FOV:              cfg.FOV,
		MouseSensitivity: cfg.MouseSensitivity,
		MinPitch:         cfg.MinPitch,
		MaxPitch:         cfg.MaxPitch,
		CrouchSpeed:      cfg.CrouchSpeed,
		WalkSpeed:        cfg.WalkSpeed,
		RunSpeed:         cfg.RunSpeed,
		Gravity:          cfg.Gravity,
		JumpStrength:     cfg.JumpStrength,
		Radius:           cfg.Radius,
		EyeHeight:        cfg.EyeHeight,
		CanCrouch:        cfg.CanCrouch,
		CanRun:           cfg.CanRun,
		CanJump:          cfg.CanJump,
		CanShot:          cfg.CanShot,
		CanInteract:      cfg.CanInteract,
		CanFlashlight:    cfg.CanFlashlight,
		InfiniteAmmo:     cfg.InfiniteAmmo,
	}
}

// EnemyStatsFrom converts the enemy section of game.json
func EnemyStatsFrom(cfg *config.EnemyConfig) entity.EnemyStats {
	return entity.EnemyStats{
		MaxLife:            cfg.MaxLife,
		MoveSpeed:          cfg.MoveSpeed,
		PathRecalcInterval: cfg.PathRecalcInterval,
		DamageInterval:     cfg.DamageInterval,
		ContactDamage:      cfg.ContactDamage,
		WaypointThreshold:  cfg.WaypointThreshold,
		Radius:             cfg.Radius,
		Height:             cfg.Height,
	}
}

// GiveLoadout hands the starting weapons and backpack ammo to the player
// and equips the first weapon
func GiveLoadout(p *entity.Player, cfg *config.PlayerConfig) error {
	for _, key := range cfg.StartingWeapons {
		model, err := entity.ParseWeaponModel(key)
		if err != nil {
			return fmt.Errorf("starting weapon: %w", err)
		}
		w, err := entity.NewCatalogWeapon(model)
		if err != nil {
			return fmt.Errorf("starting weapon: %w", err)
		}
		p.Inventory.AddWeapon(w)
	}
	for name, q := range cfg.StartingAmmo {
		kind, err := entity.ParseAmmoKind(name)
		if err != nil {
			return fmt.Errorf("starting ammo: %w", err)
		}
		p.AddAmmo(kind, q)
	}
	if p.Inventory.WeaponCount() > 0 {
		return p.Equip(0)
	}
	return nil
}
