package config

import (
	_ "embed"
)

//go:embed defaults/skyraid.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the hardcoded configuration, used when the
// embedded YAML cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldConfig{
			Width:  600,
			Height: 1200,
		},
		Player: PlayerConfig{
			Width:          64,
			Height:         64,
			Speed:          5,
			MaxHealth:      100,
			StartOffset:    100,
			ShotDelayMs:    250,
			MinShotDelayMs: 100,
			DoubleShotGap:  24,
		},
		Bullets: BulletConfig{
			Width:        8,
			Height:       16,
			PlayerSpeed:  8,
			EnemySpeed:   6,
			PlayerDamage: 1,
			EnemyDamage:  10,
		},
		Enemies: EnemyConfig{
			Cap:           12,
			SpawnInterval: 60,
			RamDamage:     25,
			SineAmplitude: 2,
			SineFrequency: 0.1,
			DiagonalDrift: 1,
			Tiers: []EnemyTier{
				{Name: "fighter", Weight: 80, Health: 1, Score: 100, Size: 64, MinSpeed: 1, MaxSpeed: 3, SpawnY: -30},
				{Name: "bomber", Weight: 20, Health: 3, Score: 300, Size: 72, MinSpeed: 0.5, MaxSpeed: 2, SpawnY: -40},
			},
			Fire: EnemyFire{
				Enabled:    false,
				CooldownMs: 1500,
				JitterMs:   750,
			},
		},
		PowerUps: PowerUpConfig{
			Interval:        600,
			ChancePercent:   30,
			Size:            24,
			FallSpeed:       2,
			HealAmount:      25,
			RapidFireStepMs: 50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 30,
				MinSpawnInterval:  20,
			},
		},
		Backdrop: BackdropConfig{
			Enabled:       true,
			QueueCapacity: 5,
			ScrollSpeed:   0.1,
			Categories:    []string{"spaceporn", "EarthPorn", "astrophotography"},
			ListingLimit:  50,
			BaseURL:       "https://www.reddit.com",
			UserAgent:     "skyraid/1.0 (terminal shooter backdrop)",
			TimeoutMs:     10000,
			RateLimitMs:   30000,
			TransientMs:   2000,
			MalformedMs:   250,
			Dim:           0.45,
			Fill:          "#000000",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     -1,
			Music:      true,
		},
		Controls: ControlsConfig{
			HoldMs: 120,
		},
	}
}
