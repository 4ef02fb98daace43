package config

import (
	"fmt"

	"github.com/younwookim/protozombie/internal/domain/entity"
)

// ValidateSettings rejects values the gameplay core cannot run with
func ValidateSettings(cfg *SettingsConfig) error {
	d := cfg.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 || d.Framerate <= 0 {
		return fmt.Errorf("display size and framerate must be positive: %w", entity.ErrInvalidConfig)
	}
	if d.PixelsPerUnit <= 0 {
		return fmt.Errorf("pixelsPerUnit must be positive: %w", entity.ErrInvalidConfig)
	}

	p := cfg.Player
	if p.FOV <= 0 {
		return fmt.Errorf("player fov must be greater than 0: %w", entity.ErrInvalidConfig)
	}
	if p.MaxLife <= 0 {
		return fmt.Errorf("player maxLife must be greater than 0: %w", entity.ErrInvalidConfig)
	}
	if p.CrouchSpeed <= 0 || p.WalkSpeed <= 0 || p.RunSpeed <= 0 {
		return fmt.Errorf("player speeds must be greater than 0: %w", entity.ErrInvalidConfig)
	}
	for _, key := range p.StartingWeapons {
		if _, err := entity.ParseWeaponModel(key); err != nil {
			return fmt.Errorf("startingWeapons: %w", err)
		}
	}
	for name := range p.StartingAmmo {
		if _, err := entity.ParseAmmoKind(name); err != nil {
			return fmt.Errorf("startingAmmo: %w", err)
		}
	}

	e := cfg.Enemy
	if e.MaxLife <= 0 || e.MoveSpeed <= 0 {
		return fmt.Errorf("enemy maxLife and moveSpeed must be greater than 0: %w", entity.ErrInvalidConfig)
	}
	if e.PathRecalcInterval <= 0 {
		return fmt.Errorf("enemy pathRecalcInterval must be greater than 0: %w", entity.ErrInvalidConfig)
	}

	if cfg.Spawn.PoolSize <= 0 {
		return fmt.Errorf("spawn poolSize must be greater than 0: %w", entity.ErrInvalidConfig)
	}
	if cfg.Spawn.Interval <= 0 {
		return fmt.Errorf("spawn interval must be greater than 0: %w", entity.ErrInvalidConfig)
	}
	if cfg.Combat.Range <= 0 {
		return fmt.Errorf("combat range must be greater than 0: %w", entity.ErrInvalidConfig)
	}

	return nil
}

// ValidateLevel checks the floor plan and that every placement is on it
func ValidateLevel(cfg *LevelConfig) error {
	if cfg.TileSize <= 0 {
		return fmt.Errorf("tileSize must be greater than 0: %w", entity.ErrInvalidConfig)
	}
	if cfg.Depth() == 0 || cfg.Width() == 0 {
		return fmt.Errorf("level has no rows: %w", entity.ErrInvalidConfig)
	}
	if len(cfg.SpawnPoints) == 0 {
		return fmt.Errorf("level needs at least one spawn point: %w", entity.ErrInvalidConfig)
	}

	inside := func(what string, c CellConfig) error {
		if c.X < 0 || c.X >= cfg.Width() || c.Z < 0 || c.Z >= cfg.Depth() {
			return fmt.Errorf("%s (%d,%d) outside the %dx%d floor plan: %w",
				what, c.X, c.Z, cfg.Width(), cfg.Depth(), entity.ErrInvalidConfig)
		}
		return nil
	}

	if err := inside("playerSpawn", cfg.PlayerSpawn); err != nil {
		return err
	}
	for i, sp := range cfg.SpawnPoints {
		if err := inside(fmt.Sprintf("spawnPoints[%d]", i), sp); err != nil {
			return err
		}
	}
	for i, p := range cfg.Pickups {
		if err := inside(fmt.Sprintf("pickups[%d]", i), CellConfig{X: p.X, Z: p.Z}); err != nil {
			return err
		}
		switch p.Type {
		case "ammo":
			if _, err := entity.ParseAmmoKind(p.Ammo); err != nil {
				return fmt.Errorf("pickups[%d]: %w", i, err)
			}
		case "health":
		default:
			return fmt.Errorf("pickups[%d]: unknown type %q: %w", i, p.Type, entity.ErrInvalidConfig)
		}
		if p.Quantity <= 0 {
			return fmt.Errorf("pickups[%d]: quantity must be positive: %w", i, entity.ErrInvalidConfig)
		}
	}
	for i, b := range cfg.Buyables {
		if err := inside(fmt.Sprintf("buyables[%d]", i), CellConfig{X: b.X, Z: b.Z}); err != nil {
			return err
		}
		if _, err := entity.ParseWeaponModel(b.Model); err != nil {
			return fmt.Errorf("buyables[%d]: %w", i, err)
		}
	}

	return nil
}
