package shooter

// Bounds is the size of the play field in world units.
type Bounds struct {
	W, H float64
}

// World holds every entity of a round. Each kind lives in its own
// contiguous slice so systems iterate homogeneous data.
// It is owned by the tick loop and never shared across goroutines.
type World struct {
	Bounds   Bounds
	Player   Entity
	Enemies  []Entity
	Bullets  []Entity
	PowerUps []Entity
	Score    int
}

// LiveEnemies counts enemies not marked for removal.
func (w *World) LiveEnemies() int {
	n := 0
	for i := range w.Enemies {
		if !w.Enemies[i].Dead {
			n++
		}
	}
	return n
}

// Compact drops every entity marked Dead, keeping order.
func (w *World) Compact() {
	w.Enemies = compact(w.Enemies)
	w.Bullets = compact(w.Bullets)
	w.PowerUps = compact(w.PowerUps)
}

func compact(list []Entity) []Entity {
	kept := list[:0]
	for i := range list {
		if !list[i].Dead {
			kept = append(kept, list[i])
		}
	}
	// Clear the tail so removed entities don't linger in the backing array
	for i := len(kept); i < len(list); i++ {
		list[i] = Entity{}
	}
	return kept
}
