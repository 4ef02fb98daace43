package config

// SettingsConfig is the root config for game.json
type SettingsConfig struct {
	Display  DisplayConfig  `json:"display"`
	Player   PlayerConfig   `json:"player"`
	Enemy    EnemyConfig    `json:"enemy"`
	Spawn    SpawnConfig    `json:"spawn"`
	Combat   CombatConfig   `json:"combat"`
	Feedback FeedbackConfig `json:"feedback"`
	Audio    AudioConfig    `json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
	// PixelsPerUnit is the zoom of the top-down view
	PixelsPerUnit float64 `json:"pixelsPerUnit"`
}

// PlayerConfig mirrors entity.PlayerStats plus the starting loadout
type PlayerConfig struct {
	MaxLife          float64 `json:"maxLife"`
	FOV              float64 `json:"fov"`
	MouseSensitivity float64 `json:"mouseSensitivity"`
	MinPitch         float64 `json:"minPitch"`
	MaxPitch         float64 `json:"maxPitch"`

	CrouchSpeed  float64 `json:"crouchSpeed"`
	WalkSpeed    float64 `json:"walkSpeed"`
	RunSpeed     float64 `json:"runSpeed"`
	Gravity      float64 `json:"gravity"`
	JumpStrength float64 `json:"jumpStrength"`
	Radius       float64 `json:"radius"`
	EyeHeight    float64 `json:"eyeHeight"`

	CanCrouch     bool `json:"canCrouch"`
	CanRun        bool `json:"canRun"`
	CanJump       bool `json:"canJump"`
	CanShot       bool `json:"canShot"`
	CanInteract   bool `json:"canInteract"`
	CanFlashlight bool `json:"canFlashlight"`
	InfiniteAmmo  bool `json:"infiniteAmmo"`

	StartingWeapons []string          `json:"startingWeapons"`
	StartingAmmo    map[string]uint16 `json:"startingAmmo"`
}

type EnemyConfig struct {
	MaxLife            float64 `json:"maxLife"`
	MoveSpeed          float64 `json:"moveSpeed"`
	PathRecalcInterval float64 `json:"pathRecalcInterval"`
	DamageInterval     float64 `json:"damageInterval"`
	ContactDamage      float64 `json:"contactDamage"`
	WaypointThreshold  float64 `json:"waypointThreshold"`
	Radius             float64 `json:"radius"`
	Height             float64 `json:"height"`
}

type SpawnConfig struct {
	PoolSize int     `json:"poolSize"`
	Interval float64 `json:"interval"`
	// Seed fixes the spawn point sequence; 0 seeds from the clock
	Seed int64 `json:"seed"`
}

type CombatConfig struct {
	Range float64 `json:"range"`
}

type FeedbackConfig struct {
	Hitstop     HitstopConfig     `json:"hitstop"`
	ScreenShake ScreenShakeConfig `json:"screenShake"`
}

type HitstopConfig struct {
	Enabled bool `json:"enabled"`
	Frames  int  `json:"frames"`
}

type ScreenShakeConfig struct {
	Enabled   bool    `json:"enabled"`
	Intensity float64 `json:"intensity"`
	Decay     float64 `json:"decay"`
}

type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	SampleRate int     `json:"sampleRate"`
	Volume     float64 `json:"volume"`
}
