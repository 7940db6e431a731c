package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const shooterFile = "skyraid.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.skyraid/configs/skyraid.yaml -> ./configs/skyraid.yaml -> embedded default.
// Files are layered over the embedded default, so they only need the keys they change.
// A custom path ending in .toml is decoded as TOML.
func LoadShooter(customPath string) (ShooterConfig, error) {
	cfg := embeddedShooter()

	if customPath != "" {
		if err := decodeFile(customPath, &cfg); err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath(shooterFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := cfg
			if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
				return candidate, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", shooterFile)); err == nil {
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	return cfg, nil
}

// embeddedShooter parses the embedded default YAML.
func embeddedShooter() ShooterConfig {
	var cfg ShooterConfig
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig()
	}
	return cfg
}

func decodeFile(path string, cfg *ShooterConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyraid", "configs", filename)
}

// Validate rejects configurations the game cannot run with.
func (c ShooterConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world must be positive, got %vx%v", ErrInvalid, c.World.Width, c.World.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Player.Width > c.World.Width || c.Player.Height > c.World.Height*3/4:
		return fmt.Errorf("%w: player does not fit in the world", ErrInvalid)
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: player max_health must be positive", ErrInvalid)
	case c.Player.ShotDelayMs < 0 || c.Player.MinShotDelayMs < 0:
		return fmt.Errorf("%w: shot delays must not be negative", ErrInvalid)
	case c.Enemies.Cap < 0:
		return fmt.Errorf("%w: enemy cap must not be negative", ErrInvalid)
	case c.Enemies.SpawnInterval <= 0:
		return fmt.Errorf("%w: enemy spawn_interval must be positive", ErrInvalid)
	case len(c.Enemies.Tiers) == 0:
		return fmt.Errorf("%w: at least one enemy tier is required", ErrInvalid)
	case c.PowerUps.Interval <= 0:
		return fmt.Errorf("%w: powerup interval must be positive", ErrInvalid)
	case c.Backdrop.QueueCapacity < 1:
		return fmt.Errorf("%w: backdrop queue_capacity must be at least 1", ErrInvalid)
	}

	for i, tier := range c.Enemies.Tiers {
		if tier.Weight <= 0 || tier.Health <= 0 || tier.Size <= 0 {
			return fmt.Errorf("%w: enemy tier %d (%s) needs positive weight, health and size", ErrInvalid, i, tier.Name)
		}
		if tier.Size > c.World.Width {
			return fmt.Errorf("%w: enemy tier %d (%s) is wider than the world", ErrInvalid, i, tier.Name)
		}
		if tier.MaxSpeed < tier.MinSpeed {
			return fmt.Errorf("%w: enemy tier %d (%s) has max_speed < min_speed", ErrInvalid, i, tier.Name)
		}
	}
	return nil
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 150
		cfg.Enemies.Cap = 8
	case DifficultyHard:
		cfg.Player.MaxHealth = 75
		cfg.Enemies.RamDamage = 35
	}
}
