package shooter

// EntitySnapshot is the comparable state of one entity.
type EntitySnapshot struct {
	Kind    Kind
	X, Y    float64
	Health  int
	Tier    int
	Pattern Pattern
	Age     int
	PowerUp PowerUpKind
}

// Snapshot contains the complete round state except the RNG.
// Two snapshots are equal when the rounds are indistinguishable.
type Snapshot struct {
	Tick         int
	State        string
	Score        int
	EnemyTimer   int
	PowerUpTimer int

	PlayerX, PlayerY float64
	Health           int
	MaxHealth        int
	ShotDelayMs      int64
	HasShot          bool
	DoubleShot       bool

	Enemies  []EntitySnapshot
	Bullets  []EntitySnapshot
	PowerUps []EntitySnapshot
}

// Snapshot returns the current round state.
func (g *Game) Snapshot() Snapshot {
	enemyTimer, powerUpTimer := g.spawner.Timers()
	p := g.world.Player

	return Snapshot{
		Tick:         g.tick,
		State:        g.state.String(),
		Score:        g.world.Score,
		EnemyTimer:   enemyTimer,
		PowerUpTimer: powerUpTimer,
		PlayerX:      p.X,
		PlayerY:      p.Y,
		Health:       p.Health,
		MaxHealth:    p.MaxHealth,
		ShotDelayMs:  p.ShotDelayMs,
		HasShot:      p.HasShot,
		DoubleShot:   p.DoubleShot,
		Enemies:      snapshotList(g.world.Enemies),
		Bullets:      snapshotList(g.world.Bullets),
		PowerUps:     snapshotList(g.world.PowerUps),
	}
}

func snapshotList(list []Entity) []EntitySnapshot {
	out := make([]EntitySnapshot, 0, len(list))
	for _, e := range list {
		out = append(out, EntitySnapshot{
			Kind:    e.Kind,
			X:       e.X,
			Y:       e.Y,
			Health:  e.Health,
			Tier:    e.Tier,
			Pattern: e.Pattern,
			Age:     e.Age,
			PowerUp: e.PowerUp,
		})
	}
	return out
}
