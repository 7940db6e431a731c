package shooter

import (
	"math/rand"

	"github.com/vovakirdan/skyraid/internal/config"
)

// CanShoot reports whether the player's cooldown has elapsed at nowMs.
// The first shot of a round is always allowed.
func CanShoot(p *Entity, nowMs int64) bool {
	return !p.HasShot || nowMs-p.LastShotMs >= p.ShotDelayMs
}

// PlayerShoot fires one volley from the nose of the ship if the cooldown
// allows it. A double-shot player fires two bullets side by side.
// Returns true when bullets were created.
func PlayerShoot(w *World, nowMs int64, bullets config.BulletConfig, doubleGap float64) bool {
	p := &w.Player
	if !CanShoot(p, nowMs) {
		return false
	}
	p.HasShot = true
	p.LastShotMs = nowMs

	cx := p.CenterX()
	if p.DoubleShot {
		w.Bullets = append(w.Bullets,
			NewBullet(cx-doubleGap/2, p.Y, true, bullets),
			NewBullet(cx+doubleGap/2, p.Y, true, bullets),
		)
		return true
	}
	w.Bullets = append(w.Bullets, NewBullet(cx, p.Y, true, bullets))
	return true
}

// EnemiesFire lets every visible enemy whose cooldown has elapsed drop a
// bullet from its underside. An enemy is armed on its first visible tick
// with a random delay so a wave does not fire in unison.
// Returns the number of bullets created.
func EnemiesFire(w *World, nowMs int64, rng *rand.Rand, fire config.EnemyFire, bullets config.BulletConfig) int {
	fired := 0
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Dead || e.Y < 0 {
			continue
		}
		if e.NextShotMs < 0 {
			e.NextShotMs = nowMs + jitter(rng, fire.JitterMs) + fire.CooldownMs/2
			continue
		}
		if nowMs < e.NextShotMs {
			continue
		}
		w.Bullets = append(w.Bullets, NewBullet(e.CenterX(), e.Y+e.H, false, bullets))
		e.NextShotMs = nowMs + fire.CooldownMs + jitter(rng, fire.JitterMs)
		fired++
	}
	return fired
}

func jitter(rng *rand.Rand, maxMs int64) int64 {
	if maxMs <= 0 {
		return 0
	}
	return rng.Int63n(maxMs + 1)
}
