package shooter

import (
	"math/rand"

	"github.com/vovakirdan/skyraid/internal/config"
)

// Spawner injects enemies and power-ups on tick counters.
// It never blocks and never fails; when a gate is closed it does nothing.
type Spawner struct {
	rng      *rand.Rand
	enemies  config.EnemyConfig
	powerups config.PowerUpConfig

	enemyTimer   int
	powerUpTimer int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, enemies config.EnemyConfig, powerups config.PowerUpConfig) *Spawner {
	return &Spawner{
		rng:      rng,
		enemies:  enemies,
		powerups: powerups,
	}
}

// Reset zeroes both counters.
func (s *Spawner) Reset() {
	s.enemyTimer = 0
	s.powerUpTimer = 0
}

// Timers returns the enemy and power-up counters.
func (s *Spawner) Timers() (enemy, powerUp int) {
	return s.enemyTimer, s.powerUpTimer
}

// TrySpawnEnemy advances the enemy counter by one tick. Once it reaches
// interval the counter restarts and, if the population is below the cap,
// one enemy is added. speedScale multiplies the sampled vertical speed.
// Returns true when an enemy was created.
func (s *Spawner) TrySpawnEnemy(w *World, interval int, speedScale float64) bool {
	s.enemyTimer++
	if s.enemyTimer < interval {
		return false
	}
	s.enemyTimer = 0

	if w.LiveEnemies() >= s.enemies.Cap {
		return false
	}

	idx := s.rollTier()
	tier := s.enemies.Tiers[idx]
	x := s.rng.Float64() * (w.Bounds.W - tier.Size)
	pattern := Pattern(s.rng.Intn(int(patternCount)))
	speed := tier.MinSpeed + s.rng.Float64()*(tier.MaxSpeed-tier.MinSpeed)

	w.Enemies = append(w.Enemies, NewEnemy(idx, tier, x, speed*speedScale, pattern))
	return true
}

// TrySpawnPowerUp advances the power-up counter. Once it reaches the
// interval, an independent chance roll decides whether one power-up of a
// random kind drops. Returns true when a power-up was created.
func (s *Spawner) TrySpawnPowerUp(w *World) bool {
	s.powerUpTimer++
	if s.powerUpTimer < s.powerups.Interval {
		return false
	}
	s.powerUpTimer = 0

	if s.rng.Intn(100) >= s.powerups.ChancePercent {
		return false
	}

	kind := PowerUpKind(s.rng.Intn(int(powerUpCount)))
	x := s.rng.Float64() * (w.Bounds.W - s.powerups.Size)
	w.PowerUps = append(w.PowerUps, NewPowerUp(kind, x, s.powerups))
	return true
}

// rollTier selects a tier index based on weights.
func (s *Spawner) rollTier() int {
	total := 0
	for _, t := range s.enemies.Tiers {
		total += t.Weight
	}
	if total <= 0 {
		return 0
	}

	roll := s.rng.Intn(total)
	cumulative := 0
	for i, t := range s.enemies.Tiers {
		cumulative += t.Weight
		if roll < cumulative {
			return i
		}
	}
	return len(s.enemies.Tiers) - 1
}
