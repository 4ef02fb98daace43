package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/protozombie/internal/domain/entity"
)

// createTestStage builds a stage with 2-unit tiles where '#' is solid
func createTestStage(rows ...string) *entity.Stage {
	s := &entity.Stage{Width: len(rows[0]), Depth: len(rows), TileSize: 2}
	s.Tiles = make([][]entity.Tile, len(rows))
	for z, row := range rows {
		s.Tiles[z] = make([]entity.Tile, len(row))
		for x, c := range row {
			if c == '#' {
				s.Tiles[z][x] = entity.Tile{Type: entity.TileWall, Solid: true}
			}
		}
	}
	s.PlayerSpawn = entity.Vec3{X: 5, Z: 5}
	s.SpawnPoints = []entity.Vec3{{X: 3, Z: 3}}
	s.IdleAnchor = entity.Vec3{X: -10, Z: -10}
	return s
}

// createRoom returns a 5x5 room; the walkable area is X and Z in [2, 8]
func createRoom() *entity.Stage {
	return createTestStage(
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	)
}

func createTestPlayer(t *testing.T, pos entity.Vec3) *entity.Player {
	t.Helper()
	p, err := entity.NewPlayer(pos, entity.DefaultPlayerStats())
	require.NoError(t, err)
	return p
}

func createTestPool(t *testing.T, size int, spawn ...entity.Vec3) *entity.EnemyPool {
	t.Helper()
	pool, err := entity.NewEnemyPool(size, entity.DefaultEnemyStats(), spawn,
		entity.Vec3{X: -10, Z: -10}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return pool
}

func TestPhysicsSystem_Gravity(t *testing.T) {
	sys := NewPhysicsSystem(createRoom())
	player := createTestPlayer(t, entity.Vec3{X: 5, Y: 1, Z: 5})

	sys.Update(player, 0.1)
	assert.Less(t, player.Position.Y, 1.0)
	assert.Greater(t, player.Position.Y, 0.0)
	assert.False(t, player.OnFloor)

	for i := 0; i < 20; i++ {
		sys.Update(player, 0.1)
	}
	assert.Equal(t, 0.0, player.Position.Y)
	assert.Equal(t, 0.0, player.Velocity.Y)
	assert.True(t, player.OnFloor)
}

func TestPhysicsSystem_StopsAtWall(t *testing.T) {
	sys := NewPhysicsSystem(createRoom())
	player := createTestPlayer(t, entity.Vec3{X: 5, Z: 5})
	player.Velocity.X = 10

	sys.Update(player, 1)

	assert.InDelta(t, 7.5, player.Position.X, 1e-9, "radius 0.5 keeps the body off the wall at X=8")
	assert.Equal(t, 5.0, player.Position.Z)
}

func TestPhysicsSystem_SlidesAlongWall(t *testing.T) {
	sys := NewPhysicsSystem(createRoom())
	player := createTestPlayer(t, entity.Vec3{X: 7.5, Z: 5})
	player.Velocity = entity.Vec3{X: 5, Z: 2}

	sys.Update(player, 0.5)

	assert.InDelta(t, 7.5, player.Position.X, 1e-9)
	assert.InDelta(t, 6.0, player.Position.Z, 1e-9)
	assert.Equal(t, 0.0, player.Velocity.X, "blocked axis loses its velocity")
	assert.Equal(t, 2.0, player.Velocity.Z)
}

func TestPhysicsSystem_Slide(t *testing.T) {
	sys := NewPhysicsSystem(createRoom())

	tests := []struct {
		name  string
		from  entity.Vec3
		delta entity.Vec3
		want  entity.Vec3
	}{
		{"free move", entity.Vec3{X: 4, Y: 3, Z: 4}, entity.Vec3{X: 1, Z: 1}, entity.Vec3{X: 5, Y: 3, Z: 5}},
		{"blocked on X", entity.Vec3{X: 7.5, Z: 4}, entity.Vec3{X: 1, Z: 1}, entity.Vec3{X: 7.5, Z: 5}},
		{"blocked on Z", entity.Vec3{X: 4, Z: 2.5}, entity.Vec3{X: 1, Z: -1}, entity.Vec3{X: 5, Z: 2.5}},
		{"no move", entity.Vec3{X: 4, Z: 4}, entity.Vec3{}, entity.Vec3{X: 4, Z: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sys.Slide(tt.from, tt.delta, 0.5)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-9)
		})
	}
}

func TestPhysicsSystem_PushesOutOfWall(t *testing.T) {
	sys := NewPhysicsSystem(createRoom())
	player := createTestPlayer(t, entity.Vec3{X: 2.2, Z: 5})

	sys.Update(player, 1.0/60)

	assert.InDelta(t, 2.7, player.Position.X, 1e-9)
	assert.Equal(t, 5.0, player.Position.Z)
}

func TestPhysicsSystem_ResetsWhenBuried(t *testing.T) {
	stage := createRoom()
	sys := NewPhysicsSystem(stage)
	player := createTestPlayer(t, entity.Vec3{X: 1, Z: 1})
	player.Velocity = entity.Vec3{X: 3, Z: 3}

	sys.Update(player, 1.0/60)

	assert.Equal(t, stage.PlayerSpawn, player.Position)
	assert.Equal(t, entity.Vec3{}, player.Velocity)
}
