package entity

import "math"

// EntityID is a unique identifier for an entity
type EntityID uint32

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
)

// Tile represents a single cell of the level floor plan
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage is the floor plan of the current level on the X/Z plane.
// Cell (tx, tz) covers world X in [tx*TileSize, (tx+1)*TileSize) and
// world Z in [tz*TileSize, (tz+1)*TileSize).
type Stage struct {
	Width    int
	Depth    int
	TileSize float64
	Tiles    [][]Tile

	PlayerSpawn Vec3
	SpawnPoints []Vec3
	IdleAnchor  Vec3
}

// GetTile returns the tile at the given tile coordinates
func (s *Stage) GetTile(tx, tz int) Tile {
	if tx < 0 || tx >= s.Width || tz < 0 || tz >= s.Depth {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[tz][tx]
}

// TileAt returns the tile coordinates containing the world position
func (s *Stage) TileAt(p Vec3) (tx, tz int) {
	return int(math.Floor(p.X / s.TileSize)), int(math.Floor(p.Z / s.TileSize))
}

// CellCenter returns the world position at the center of a tile, on the floor
func (s *Stage) CellCenter(tx, tz int) Vec3 {
	return Vec3{
		X: (float64(tx) + 0.5) * s.TileSize,
		Z: (float64(tz) + 0.5) * s.TileSize,
	}
}

// IsSolidAt checks if the tile under a world position is solid
func (s *Stage) IsSolidAt(p Vec3) bool {
	tx, tz := s.TileAt(p)
	return s.GetTile(tx, tz).Solid
}
