package config

import "testing"

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 30, MinSpawnInterval: 40},
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0},
		{500, 0.5},
		{1000, 1},
		{5000, 1},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabledKeepsInitialLevel(t *testing.T) {
	cfg := testDifficulty()
	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	d := NewDifficultyManager(cfg)

	if got := d.Level(100000, 100000); got != 0.3 {
		t.Errorf("Level() = %v, expected 0.3", got)
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	if got := d.Speed(2, 0, 0); got != 2 {
		t.Errorf("Speed() at level 0 = %v, expected 2", got)
	}
	if got := d.Speed(2, 1000, 0); got != 4 {
		t.Errorf("Speed() at level 1 = %v, expected 4", got)
	}
}

func TestDifficultySpawnIntervalFloor(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	if got := d.SpawnInterval(60, 0, 0); got != 60 {
		t.Errorf("SpawnInterval() at level 0 = %d, expected 60", got)
	}
	// 60 - 30 = 30, clamped to the floor of 40
	if got := d.SpawnInterval(60, 1000, 0); got != 40 {
		t.Errorf("SpawnInterval() at level 1 = %d, expected 40", got)
	}
	// Floor never raises the interval above its base
	if got := d.SpawnInterval(10, 1000, 0); got != 10 {
		t.Errorf("SpawnInterval(10) = %d, expected 10", got)
	}
}
