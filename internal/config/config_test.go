package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	embedded := embeddedShooter()
	hardcoded := DefaultShooterConfig()

	if !reflect.DeepEqual(embedded, hardcoded) {
		t.Errorf("embedded defaults differ from DefaultShooterConfig():\n%+v\n%+v", embedded, hardcoded)
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, expected nil", err)
	}
}

func TestLoadShooterCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("enemies:\n  cap: 3\n  fire:\n    enabled: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() error = %v", err)
	}
	if cfg.Enemies.Cap != 3 {
		t.Errorf("Enemies.Cap = %d, expected 3", cfg.Enemies.Cap)
	}
	if !cfg.Enemies.Fire.Enabled {
		t.Error("Enemies.Fire.Enabled = false, expected true")
	}
	// Untouched keys keep their defaults
	if cfg.Player.ShotDelayMs != 250 {
		t.Errorf("Player.ShotDelayMs = %d, expected 250", cfg.Player.ShotDelayMs)
	}
}

func TestLoadShooterCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte(`
[world]
width = 800

[backdrop]
queue_capacity = 2
categories = ["spaceporn"]
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() error = %v", err)
	}
	if cfg.World.Width != 800 {
		t.Errorf("World.Width = %v, expected 800", cfg.World.Width)
	}
	if cfg.World.Height != 1200 {
		t.Errorf("World.Height = %v, expected 1200", cfg.World.Height)
	}
	if cfg.Backdrop.QueueCapacity != 2 {
		t.Errorf("Backdrop.QueueCapacity = %d, expected 2", cfg.Backdrop.QueueCapacity)
	}
	if len(cfg.Backdrop.Categories) != 1 || cfg.Backdrop.Categories[0] != "spaceporn" {
		t.Errorf("Backdrop.Categories = %v, expected [spaceporn]", cfg.Backdrop.Categories)
	}
}

func TestLoadShooterMissingCustom(t *testing.T) {
	_, err := LoadShooter(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadShooter() on a missing file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
	}{
		{"zero world", func(c *ShooterConfig) { c.World.Width = 0 }},
		{"no tiers", func(c *ShooterConfig) { c.Enemies.Tiers = nil }},
		{"negative cap", func(c *ShooterConfig) { c.Enemies.Cap = -1 }},
		{"zero queue", func(c *ShooterConfig) { c.Backdrop.QueueCapacity = 0 }},
		{"inverted speed range", func(c *ShooterConfig) { c.Enemies.Tiers[0].MaxSpeed = 0 }},
		{"zero spawn interval", func(c *ShooterConfig) { c.Enemies.SpawnInterval = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyShooterPreset(t *testing.T) {
	cfg := DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Enemies.RamDamage != 35 {
		t.Errorf("RamDamage = %d, expected 35", cfg.Enemies.RamDamage)
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %v, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset(nightmare) should fail")
	}
}
