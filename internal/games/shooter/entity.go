package shooter

import (
	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Kind tags what an Entity is. Behavior is chosen by switching on it.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBullet
	KindPowerUp
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindPowerUp:
		return "powerup"
	default:
		return "?"
	}
}

// Pattern is an enemy's horizontal motion script.
type Pattern uint8

const (
	PatternStraight Pattern = iota
	PatternSine
	PatternDiagonal
	patternCount
)

// String returns the pattern name.
func (p Pattern) String() string {
	switch p {
	case PatternStraight:
		return "straight"
	case PatternSine:
		return "sine"
	case PatternDiagonal:
		return "diagonal"
	default:
		return "?"
	}
}

// PowerUpKind is the effect a power-up applies when collected.
type PowerUpKind uint8

const (
	PowerUpHealth PowerUpKind = iota
	PowerUpRapidFire
	PowerUpDoubleShot
	powerUpCount
)

// String returns the power-up name.
func (p PowerUpKind) String() string {
	switch p {
	case PowerUpHealth:
		return "health"
	case PowerUpRapidFire:
		return "rapid"
	case PowerUpDoubleShot:
		return "double"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up.
func (p PowerUpKind) Glyph() rune {
	switch p {
	case PowerUpHealth:
		return '♥'
	case PowerUpRapidFire:
		return '»'
	case PowerUpDoubleShot:
		return '‖'
	default:
		return '?'
	}
}

// Entity is the single record used for every object in the world.
// Position is the top-left corner in world units. Fields that do not
// apply to an entity's Kind stay zero.
type Entity struct {
	Kind   Kind
	X, Y   float64
	W, H   float64
	VX, VY float64
	Dead   bool

	Health    int
	MaxHealth int

	// Player
	ShotDelayMs int64
	LastShotMs  int64
	HasShot     bool
	DoubleShot  bool

	// Enemy
	Tier       int
	ScoreValue int
	Pattern    Pattern
	Age        int
	NextShotMs int64 // negative until the enemy has been armed

	// Bullet
	FromPlayer bool
	Damage     int

	// PowerUp
	PowerUp PowerUpKind
}

// Box returns the entity's collision box.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// CenterX returns the horizontal centre.
func (e *Entity) CenterX() float64 {
	return e.X + e.W/2
}

// TakeDamage lowers health. Player health stops at zero; enemy health
// may go negative, which still counts as destroyed.
func (e *Entity) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	e.Health -= n
	if e.Health < 0 && e.Kind == KindPlayer {
		e.Health = 0
	}
}

// Heal raises health, never above MaxHealth.
func (e *Entity) Heal(n int) {
	if n <= 0 {
		return
	}
	e.Health += n
	if e.Health > e.MaxHealth {
		e.Health = e.MaxHealth
	}
}

// NewPlayer places a fresh player at the bottom centre of the world.
func NewPlayer(cfg config.ShooterConfig) Entity {
	return Entity{
		Kind:        KindPlayer,
		X:           cfg.World.Width/2 - cfg.Player.Width/2,
		Y:           cfg.World.Height - cfg.Player.StartOffset,
		W:           cfg.Player.Width,
		H:           cfg.Player.Height,
		Health:      cfg.Player.MaxHealth,
		MaxHealth:   cfg.Player.MaxHealth,
		ShotDelayMs: cfg.Player.ShotDelayMs,
	}
}

// NewEnemy creates an enemy of the given tier at (x, tier spawn height).
func NewEnemy(tierIndex int, tier config.EnemyTier, x, speed float64, pattern Pattern) Entity {
	return Entity{
		Kind:       KindEnemy,
		X:          x,
		Y:          tier.SpawnY,
		W:          tier.Size,
		H:          tier.Size,
		VY:         speed,
		Health:     tier.Health,
		MaxHealth:  tier.Health,
		Tier:       tierIndex,
		ScoreValue: tier.Score,
		Pattern:    pattern,
		NextShotMs: -1,
	}
}

// NewBullet creates a bullet centred on cx with its vertical centre at y.
// Player bullets travel up, enemy bullets down.
func NewBullet(cx, y float64, fromPlayer bool, cfg config.BulletConfig) Entity {
	b := Entity{
		Kind:       KindBullet,
		X:          cx - cfg.Width/2,
		Y:          y - cfg.Height/2,
		W:          cfg.Width,
		H:          cfg.Height,
		FromPlayer: fromPlayer,
	}
	if fromPlayer {
		b.VY = -cfg.PlayerSpeed
		b.Damage = cfg.PlayerDamage
	} else {
		b.VY = cfg.EnemySpeed
		b.Damage = cfg.EnemyDamage
	}
	return b
}

// NewPowerUp creates a power-up entering from just above the top edge.
func NewPowerUp(kind PowerUpKind, x float64, cfg config.PowerUpConfig) Entity {
	return Entity{
		Kind:    KindPowerUp,
		X:       x,
		Y:       -cfg.Size,
		W:       cfg.Size,
		H:       cfg.Size,
		VY:      cfg.FallSpeed,
		PowerUp: kind,
	}
}
