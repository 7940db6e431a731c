package shooter

import (
	"math"

	"github.com/vovakirdan/skyraid/internal/core"
)

// Motion holds the enemy pattern tunables.
type Motion struct {
	SineAmplitude float64
	SineFrequency float64
	DiagonalDrift float64
}

// SteerPlayer sets the player's velocity from the held directions.
// Opposite directions cancel out.
func SteerPlayer(p *Entity, in core.InputFrame, speed float64) {
	p.VX, p.VY = 0, 0
	if in.Has(core.ActionLeft) {
		p.VX -= speed
	}
	if in.Has(core.ActionRight) {
		p.VX += speed
	}
	if in.Has(core.ActionUp) {
		p.VY -= speed
	}
	if in.Has(core.ActionDown) {
		p.VY += speed
	}
}

// Advance moves an entity forward by the given number of ticks.
// The result depends only on the entity, the bounds and the motion tunables.
// Dead entities are left untouched.
func Advance(e *Entity, ticks int, b Bounds, m Motion) {
	if e.Dead || ticks <= 0 {
		return
	}

	switch e.Kind {
	case KindPlayer:
		n := float64(ticks)
		e.X = core.ClampF(e.X+e.VX*n, 0, b.W-e.W)
		e.Y = core.ClampF(e.Y+e.VY*n, b.H/4, b.H-e.H)

	case KindEnemy:
		for i := 0; i < ticks; i++ {
			e.Y += e.VY
			e.X += patternOffset(e, b, m)
			e.X = core.ClampF(e.X, 0, b.W-e.W)
			e.Age++
		}

	case KindBullet, KindPowerUp:
		e.Y += e.VY * float64(ticks)
	}
}

// patternOffset returns this tick's horizontal displacement of an enemy.
func patternOffset(e *Entity, b Bounds, m Motion) float64 {
	switch e.Pattern {
	case PatternSine:
		return math.Sin(float64(e.Age)*m.SineFrequency) * m.SineAmplitude
	case PatternDiagonal:
		target := (b.W - e.W) / 2
		dx := target - e.X
		if math.Abs(dx) <= m.DiagonalDrift {
			return dx
		}
		return math.Copysign(m.DiagonalDrift, dx)
	default:
		return 0
	}
}

// OffScreen reports whether an entity has fully left the play field.
// Bullets may leave through the top; anything leaves through the bottom.
func OffScreen(e *Entity, b Bounds) bool {
	switch e.Kind {
	case KindPlayer:
		return false
	case KindBullet:
		if e.Y < -e.H {
			return true
		}
	}
	return e.Y > b.H
}

// Prune marks every off-screen entity for removal.
func Prune(w *World) {
	prune(w.Enemies, w.Bounds)
	prune(w.Bullets, w.Bounds)
	prune(w.PowerUps, w.Bounds)
}

func prune(list []Entity, b Bounds) {
	for i := range list {
		if !list[i].Dead && OffScreen(&list[i], b) {
			list[i].Dead = true
		}
	}
}
