package shooter

import (
	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Rules are the numbers the resolver applies.
type Rules struct {
	RamDamage       int
	HealAmount      int
	RapidFireStepMs int64
	MinShotDelayMs  int64
}

// RulesFromConfig extracts the resolver rules.
func RulesFromConfig(cfg config.ShooterConfig) Rules {
	return Rules{
		RamDamage:       cfg.Enemies.RamDamage,
		HealAmount:      cfg.PowerUps.HealAmount,
		RapidFireStepMs: cfg.PowerUps.RapidFireStepMs,
		MinShotDelayMs:  cfg.Player.MinShotDelayMs,
	}
}

// Resolve applies this tick's collisions in a fixed order:
// bullets hitting enemies, enemy bullets hitting the player, ramming,
// then power-up pickups. Entities are only marked Dead; the caller
// compacts the world afterwards.
func Resolve(w *World, c Collisions, r Rules) []core.Event {
	var events []core.Event
	p := &w.Player

	// A bullet hits only the lowest-index enemy it overlaps. Damage is
	// summed per enemy before any enemy is destroyed.
	if len(c.Hits) > 0 {
		damage := make(map[int]int, len(c.Hits))
		consumed := make(map[int]bool, len(c.Hits))
		for _, h := range c.Hits {
			if consumed[h.Bullet] {
				continue
			}
			b := &w.Bullets[h.Bullet]
			damage[h.Enemy] += b.Damage
			consumed[h.Bullet] = true
		}
		for bi := range consumed {
			w.Bullets[bi].Dead = true
		}
		for ei := range w.Enemies {
			dmg, hit := damage[ei]
			if !hit {
				continue
			}
			e := &w.Enemies[ei]
			e.TakeDamage(dmg)
			if e.Health <= 0 && !e.Dead {
				e.Dead = true
				w.Score += e.ScoreValue
				events = append(events, core.Event{Kind: core.EventEnemyDestroyed, Value: e.ScoreValue})
			}
		}
	}

	for _, bi := range c.Incoming {
		b := &w.Bullets[bi]
		if b.Dead {
			continue
		}
		b.Dead = true
		p.TakeDamage(b.Damage)
		events = append(events, core.Event{Kind: core.EventPlayerHit, Value: b.Damage})
	}

	// Enemies destroyed by bullets above are already Dead and cannot ram.
	for _, ei := range c.Rams {
		e := &w.Enemies[ei]
		if e.Dead {
			continue
		}
		e.Dead = true
		p.TakeDamage(r.RamDamage)
		events = append(events, core.Event{Kind: core.EventPlayerHit, Value: r.RamDamage})
	}

	for _, pi := range c.Pickups {
		pu := &w.PowerUps[pi]
		if pu.Dead {
			continue
		}
		pu.Dead = true
		applyPowerUp(p, pu.PowerUp, r)
		events = append(events, core.Event{Kind: core.EventPowerUp, Value: int(pu.PowerUp)})
	}

	return events
}

func applyPowerUp(p *Entity, kind PowerUpKind, r Rules) {
	switch kind {
	case PowerUpHealth:
		p.Heal(r.HealAmount)
	case PowerUpRapidFire:
		p.ShotDelayMs -= r.RapidFireStepMs
		if p.ShotDelayMs < r.MinShotDelayMs {
			p.ShotDelayMs = r.MinShotDelayMs
		}
	case PowerUpDoubleShot:
		p.DoubleShot = true
	}
}
