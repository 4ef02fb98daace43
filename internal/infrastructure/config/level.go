package config

// LevelConfig is the root config for level JSON files.
// Positions are tile coordinates; the stage loader converts them to cell centers.
type LevelConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	TileSize    float64                      `json:"tileSize"`
	Rows        []string                     `json:"rows"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	PlayerSpawn CellConfig                   `json:"playerSpawn"`
	SpawnPoints []CellConfig                 `json:"spawnPoints"`
	IdleAnchor  CellConfig                   `json:"idleAnchor"`
	Pickups     []PickupConfig               `json:"pickups"`
	Buyables    []BuyableConfig              `json:"buyables"`
}

type CellConfig struct {
	X int `json:"x"`
	Z int `json:"z"`
}

type TileMappingConfig struct {
	Type  string `json:"type"`
	Solid bool   `json:"solid"`
}

// PickupConfig places an ammo box ("ammo") or a healthkit ("health")
type PickupConfig struct {
	Type     string  `json:"type"`
	Ammo     string  `json:"ammo,omitempty"`
	Quantity float64 `json:"quantity"`
	X        int     `json:"x"`
	Z        int     `json:"z"`
}

// BuyableConfig places a weapon for sale. Price 0 uses the catalog price.
type BuyableConfig struct {
	Model string `json:"model"`
	Price uint32 `json:"price"`
	X     int    `json:"x"`
	Z     int    `json:"z"`
}

// Width returns the number of columns of the widest row
func (c *LevelConfig) Width() int {
	w := 0
	for _, row := range c.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Depth returns the number of rows
func (c *LevelConfig) Depth() int {
	return len(c.Rows)
}
