package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *SettingsConfig
	Level    *LevelConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSettings loads and validates game.json
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg SettingsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}
	if err := ValidateSettings(&cfg); err != nil {
		return nil, fmt.Errorf("game.json: %w", err)
	}

	return &cfg, nil
}

// LoadLevel loads and validates a level JSON file
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	path := "levels/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	if err := ValidateLevel(&cfg); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads the settings and the named level
func (l *Loader) LoadAll(level string) (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	lvl, err := l.LoadLevel(level)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
		Level:    lvl,
	}, nil
}
