// Package config provides YAML/TOML game configuration loading and
// difficulty management for skyraid.
package config

// ShooterConfig contains all tunables of the shooter and its backdrop.
// World units default to a 600x1200 play field; the renderer scales
// them to whatever terminal it gets.
type ShooterConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Bullets    BulletConfig     `yaml:"bullets" toml:"bullets"`
	Enemies    EnemyConfig      `yaml:"enemies" toml:"enemies"`
	PowerUps   PowerUpConfig    `yaml:"powerups" toml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Backdrop   BackdropConfig   `yaml:"backdrop" toml:"backdrop"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
	Controls   ControlsConfig   `yaml:"controls" toml:"controls"`
}

// WorldConfig is the size of the play field in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width          float64 `yaml:"width" toml:"width"`
	Height         float64 `yaml:"height" toml:"height"`
	Speed          float64 `yaml:"speed" toml:"speed"`
	MaxHealth      int     `yaml:"max_health" toml:"max_health"`
	StartOffset    float64 `yaml:"start_offset" toml:"start_offset"` // distance of the top edge from the bottom of the world
	ShotDelayMs    int64   `yaml:"shot_delay_ms" toml:"shot_delay_ms"`
	MinShotDelayMs int64   `yaml:"min_shot_delay_ms" toml:"min_shot_delay_ms"`
	DoubleShotGap  float64 `yaml:"double_shot_gap" toml:"double_shot_gap"` // horizontal distance between twin bullets
}

// BulletConfig defines projectiles for both sides.
type BulletConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	PlayerSpeed  float64 `yaml:"player_speed" toml:"player_speed"`
	EnemySpeed   float64 `yaml:"enemy_speed" toml:"enemy_speed"`
	PlayerDamage int     `yaml:"player_damage" toml:"player_damage"`
	EnemyDamage  int     `yaml:"enemy_damage" toml:"enemy_damage"`
}

// EnemyConfig defines enemy population, motion and tiers.
type EnemyConfig struct {
	Cap           int         `yaml:"cap" toml:"cap"`
	SpawnInterval int         `yaml:"spawn_interval" toml:"spawn_interval"` // ticks between spawn attempts
	RamDamage     int         `yaml:"ram_damage" toml:"ram_damage"`
	SineAmplitude float64     `yaml:"sine_amplitude" toml:"sine_amplitude"`
	SineFrequency float64     `yaml:"sine_frequency" toml:"sine_frequency"`
	DiagonalDrift float64     `yaml:"diagonal_drift" toml:"diagonal_drift"`
	Tiers         []EnemyTier `yaml:"tiers" toml:"tiers"`
	Fire          EnemyFire   `yaml:"fire" toml:"fire"`
}

// EnemyTier is one strength class of enemy.
type EnemyTier struct {
	Name     string  `yaml:"name" toml:"name"`
	Weight   int     `yaml:"weight" toml:"weight"`
	Health   int     `yaml:"health" toml:"health"`
	Score    int     `yaml:"score" toml:"score"`
	Size     float64 `yaml:"size" toml:"size"`
	MinSpeed float64 `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed" toml:"max_speed"`
	SpawnY   float64 `yaml:"spawn_y" toml:"spawn_y"`
}

// EnemyFire controls whether and how often enemies shoot back.
type EnemyFire struct {
	Enabled    bool  `yaml:"enabled" toml:"enabled"`
	CooldownMs int64 `yaml:"cooldown_ms" toml:"cooldown_ms"`
	JitterMs   int64 `yaml:"jitter_ms" toml:"jitter_ms"`
}

// PowerUpConfig defines power-up drops and their effects.
type PowerUpConfig struct {
	Interval        int     `yaml:"interval" toml:"interval"` // ticks between drop attempts
	ChancePercent   int     `yaml:"chance_percent" toml:"chance_percent"`
	Size            float64 `yaml:"size" toml:"size"`
	FallSpeed       float64 `yaml:"fall_speed" toml:"fall_speed"`
	HealAmount      int     `yaml:"heal_amount" toml:"heal_amount"`
	RapidFireStepMs int64   `yaml:"rapid_fire_step_ms" toml:"rapid_fire_step_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`     // added to enemy speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction" toml:"interval_reduction"` // spawn interval reduction at max difficulty
	MinSpawnInterval  int     `yaml:"min_spawn_interval" toml:"min_spawn_interval"`
}

// BackdropConfig drives the background image pipeline.
type BackdropConfig struct {
	Enabled       bool     `yaml:"enabled" toml:"enabled"`
	QueueCapacity int      `yaml:"queue_capacity" toml:"queue_capacity"`
	ScrollSpeed   float64  `yaml:"scroll_speed" toml:"scroll_speed"` // cell rows per tick
	Categories    []string `yaml:"categories" toml:"categories"`
	ListingLimit  int      `yaml:"listing_limit" toml:"listing_limit"`
	BaseURL       string   `yaml:"base_url" toml:"base_url"`
	UserAgent     string   `yaml:"user_agent" toml:"user_agent"`
	Dir           string   `yaml:"dir" toml:"dir"` // offline image directory, replaces the remote source when set
	TimeoutMs     int64    `yaml:"timeout_ms" toml:"timeout_ms"`
	RateLimitMs   int64    `yaml:"rate_limit_backoff_ms" toml:"rate_limit_backoff_ms"`
	TransientMs   int64    `yaml:"transient_backoff_ms" toml:"transient_backoff_ms"`
	MalformedMs   int64    `yaml:"malformed_backoff_ms" toml:"malformed_backoff_ms"`
	Dim           float64  `yaml:"dim" toml:"dim"`   // brightness multiplier keeping sprites readable
	Fill          string   `yaml:"fill" toml:"fill"` // letterbox color, #rrggbb
}

// AudioConfig controls synthesized sound.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
	Volume     float64 `yaml:"volume" toml:"volume"` // beep volume exponent, 0 = unchanged, negative = quieter
	Music      bool    `yaml:"music" toml:"music"`
}

// ControlsConfig tunes key handling. Terminals report presses, not
// releases, so an action stays held for HoldMs after its last press.
type ControlsConfig struct {
	HoldMs int64 `yaml:"hold_ms" toml:"hold_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name from the command line.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
