// Package storage keeps the player profile between sessions.
package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	profileObject   = "profile"
	profileProperty = "data"
)

// Profile is what survives a restart
type Profile struct {
	BestScore        uint32  `yaml:"bestScore"`
	GamesPlayed      int     `yaml:"gamesPlayed"`
	MouseSensitivity float64 `yaml:"mouseSensitivity"`
}

// ProfileStore reads and writes the profile through gdata.
// A nil manager keeps everything in memory.
type ProfileStore struct {
	manager *gdata.Manager
	profile Profile
}

// Open opens the platform data directory for appName.
// Failure is logged and the store falls back to memory only.
func Open(appName string, defaults Profile) *ProfileStore {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[ProfileStore] Warning: gdata unavailable: %v (profile kept in memory)", err)
		manager = nil
	}
	return NewProfileStore(manager, defaults)
}

// NewProfileStore loads the stored profile, or starts from defaults
func NewProfileStore(manager *gdata.Manager, defaults Profile) *ProfileStore {
	s := &ProfileStore{manager: manager, profile: defaults}
	if err := s.Load(); err != nil {
		log.Printf("[ProfileStore] Warning: %v (using defaults)", err)
		s.profile = defaults
	}
	return s
}

// Load replaces the in-memory profile with the stored one, if any
func (s *ProfileStore) Load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(profileObject, profileProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(profileObject, profileProperty)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	loaded := s.profile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse profile: %w", err)
	}
	s.profile = loaded
	return nil
}

// Save writes the profile; without a manager it is a no-op
func (s *ProfileStore) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(&s.profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := s.manager.SaveObjectProp(profileObject, profileProperty, data); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	log.Printf("[ProfileStore] Profile saved (best %d)", s.profile.BestScore)
	return nil
}

// Profile returns a copy of the current profile
func (s *ProfileStore) Profile() Profile {
	return s.profile
}

// RecordGame counts a finished game and reports whether points is a new best
func (s *ProfileStore) RecordGame(points uint32) bool {
	s.profile.GamesPlayed++
	if points <= s.profile.BestScore {
		return false
	}
	s.profile.BestScore = points
	return true
}

// SetMouseSensitivity stores a positive sensitivity; other values are ignored
func (s *ProfileStore) SetMouseSensitivity(v float64) {
	if v > 0 {
		s.profile.MouseSensitivity = v
	}
}
