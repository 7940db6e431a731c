package shooter

// Pair links a player bullet to an enemy it overlaps, by slice index.
type Pair struct {
	Bullet int
	Enemy  int
}

// Collisions lists every overlap found in one tick, per interaction.
// All lists are in ascending index order.
type Collisions struct {
	Hits     []Pair // player bullet x enemy
	Incoming []int  // enemy bullets touching the player
	Rams     []int  // enemies touching the player
	Pickups  []int  // power-ups touching the player
}

// Empty reports whether nothing collided.
func (c Collisions) Empty() bool {
	return len(c.Hits) == 0 && len(c.Incoming) == 0 && len(c.Rams) == 0 && len(c.Pickups) == 0
}

// DetectCollisions tests every interacting pair of live entities.
// It does not modify the world.
func DetectCollisions(w *World) Collisions {
	var c Collisions
	player := w.Player.Box()

	for bi := range w.Bullets {
		b := &w.Bullets[bi]
		if b.Dead {
			continue
		}
		box := b.Box()
		if !b.FromPlayer {
			if box.Intersects(player) {
				c.Incoming = append(c.Incoming, bi)
			}
			continue
		}
		for ei := range w.Enemies {
			e := &w.Enemies[ei]
			if !e.Dead && box.Intersects(e.Box()) {
				c.Hits = append(c.Hits, Pair{Bullet: bi, Enemy: ei})
			}
		}
	}

	for ei := range w.Enemies {
		e := &w.Enemies[ei]
		if !e.Dead && e.Box().Intersects(player) {
			c.Rams = append(c.Rams, ei)
		}
	}

	for pi := range w.PowerUps {
		p := &w.PowerUps[pi]
		if !p.Dead && p.Box().Intersects(player) {
			c.Pickups = append(c.Pickups, pi)
		}
	}

	return c
}
