package shooter

import (
	"testing"

	"github.com/vovakirdan/skyraid/internal/core"
)

func testRules() Rules {
	return RulesFromConfig(testConfig())
}

// newTestWorld returns a world with the player parked at the bottom,
// away from everything the tests place near the top.
func newTestWorld() *World {
	return &World{
		Bounds: testBounds,
		Player: NewPlayer(testConfig()),
	}
}

// bulletOver returns a player bullet overlapping the given enemy.
func bulletOver(e Entity) Entity {
	return NewBullet(e.CenterX(), e.Y+e.H/2, true, testConfig().Bullets)
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestWeakEnemyOneHit(t *testing.T) {
	w := newTestWorld()
	enemy := NewEnemy(0, weakTier(), 100, 2, PatternStraight)
	enemy.Y = 200
	w.Enemies = []Entity{enemy}
	w.Bullets = []Entity{bulletOver(enemy)}

	events := Resolve(w, DetectCollisions(w), testRules())
	w.Compact()

	if len(w.Enemies) != 0 {
		t.Errorf("enemies = %d, expected 0", len(w.Enemies))
	}
	if len(w.Bullets) != 0 {
		t.Errorf("bullets = %d, expected 0", len(w.Bullets))
	}
	if w.Score != 100 {
		t.Errorf("Score = %d, expected 100", w.Score)
	}
	if countEvents(events, core.EventEnemyDestroyed) != 1 {
		t.Errorf("expected exactly one destroyed event, got %+v", events)
	}
}

func TestStrongEnemyNeedsThreeHits(t *testing.T) {
	w := newTestWorld()
	enemy := NewEnemy(1, strongTier(), 100, 0, PatternStraight)
	enemy.Y = 200
	w.Enemies = []Entity{enemy}

	for hit := 1; hit <= 3; hit++ {
		w.Bullets = append(w.Bullets, bulletOver(w.Enemies[0]))
		Resolve(w, DetectCollisions(w), testRules())
		w.Compact()

		if hit < 3 {
			if len(w.Enemies) != 1 {
				t.Fatalf("hit %d: enemy removed early", hit)
			}
			if w.Enemies[0].Health != 3-hit {
				t.Errorf("hit %d: Health = %d, expected %d", hit, w.Enemies[0].Health, 3-hit)
			}
			if w.Score != 0 {
				t.Errorf("hit %d: Score = %d, expected 0", hit, w.Score)
			}
			continue
		}
		if len(w.Enemies) != 0 {
			t.Fatal("enemy should be removed on the third hit")
		}
		if w.Score != 300 {
			t.Errorf("Score = %d, expected 300", w.Score)
		}
	}
}

func TestSimultaneousHitsCreditOnce(t *testing.T) {
	for n := 1; n <= 5; n++ {
		w := newTestWorld()
		enemy := NewEnemy(1, strongTier(), 100, 0, PatternStraight)
		enemy.Y = 200
		w.Enemies = []Entity{enemy}
		for i := 0; i < n; i++ {
			w.Bullets = append(w.Bullets, bulletOver(enemy))
		}

		events := Resolve(w, DetectCollisions(w), testRules())
		w.Compact()

		if len(w.Bullets) != 0 {
			t.Errorf("n=%d: %d bullets survived, expected all consumed", n, len(w.Bullets))
		}
		if n >= 3 {
			if len(w.Enemies) != 0 || w.Score != 300 || countEvents(events, core.EventEnemyDestroyed) != 1 {
				t.Errorf("n=%d: enemies=%d score=%d events=%+v, expected one kill worth 300",
					n, len(w.Enemies), w.Score, events)
			}
		} else {
			if len(w.Enemies) != 1 || w.Enemies[0].Health != 3-n || w.Score != 0 {
				t.Errorf("n=%d: enemies=%+v score=%d", n, w.Enemies, w.Score)
			}
		}
	}
}

func TestHitOrderDoesNotMatter(t *testing.T) {
	build := func() *World {
		w := newTestWorld()
		a := NewEnemy(1, strongTier(), 50, 0, PatternStraight)
		a.Y = 200
		b := NewEnemy(1, strongTier(), 300, 0, PatternStraight)
		b.Y = 200
		w.Enemies = []Entity{a, b}
		w.Bullets = []Entity{bulletOver(a), bulletOver(b), bulletOver(a)}
		return w
	}

	forward := build()
	c := DetectCollisions(forward)
	Resolve(forward, c, testRules())

	reversed := build()
	rc := DetectCollisions(reversed)
	for i, j := 0, len(rc.Hits)-1; i < j; i, j = i+1, j-1 {
		rc.Hits[i], rc.Hits[j] = rc.Hits[j], rc.Hits[i]
	}
	Resolve(reversed, rc, testRules())

	for i := range forward.Enemies {
		if forward.Enemies[i].Health != reversed.Enemies[i].Health {
			t.Errorf("enemy %d health differs: %d vs %d", i, forward.Enemies[i].Health, reversed.Enemies[i].Health)
		}
	}
	if forward.Enemies[0].Health != 1 || forward.Enemies[1].Health != 2 {
		t.Errorf("health = %d, %d, expected 1, 2", forward.Enemies[0].Health, forward.Enemies[1].Health)
	}
}

func TestBulletHitsOnlyOneEnemy(t *testing.T) {
	w := newTestWorld()
	a := NewEnemy(0, weakTier(), 100, 0, PatternStraight)
	a.Y = 200
	b := NewEnemy(0, weakTier(), 130, 0, PatternStraight)
	b.Y = 200
	w.Enemies = []Entity{a, b}
	w.Bullets = []Entity{NewBullet(134, 230, true, testConfig().Bullets)}

	c := DetectCollisions(w)
	if len(c.Hits) != 2 {
		t.Fatalf("hits = %d, expected the bullet to overlap both enemies", len(c.Hits))
	}
	events := Resolve(w, c, testRules())
	w.Compact()

	if len(w.Enemies) != 1 {
		t.Fatalf("enemies = %d, expected 1 survivor", len(w.Enemies))
	}
	if w.Enemies[0].X != 130 {
		t.Errorf("survivor at x=%v, expected the higher-index enemy at 130", w.Enemies[0].X)
	}
	if w.Score != 100 {
		t.Errorf("Score = %d, expected 100", w.Score)
	}
	if len(w.Bullets) != 0 {
		t.Errorf("bullets = %d, expected 0", len(w.Bullets))
	}
	if countEvents(events, core.EventEnemyDestroyed) != 1 {
		t.Errorf("expected exactly one destroyed event, got %+v", events)
	}
}

func TestEnemyHealthMayGoNegative(t *testing.T) {
	e := NewEnemy(0, weakTier(), 100, 0, PatternStraight)
	e.TakeDamage(3)
	if e.Health != weakTier().Health-3 {
		t.Errorf("Health = %d, expected %d", e.Health, weakTier().Health-3)
	}
	e.TakeDamage(0)
	e.TakeDamage(-2)
	if e.Health != weakTier().Health-3 {
		t.Errorf("non-positive damage changed health to %d", e.Health)
	}
}

func TestRamDamagesPlayerWithoutScore(t *testing.T) {
	w := newTestWorld()
	enemy := NewEnemy(0, weakTier(), w.Player.X, 2, PatternStraight)
	enemy.Y = w.Player.Y - 10
	w.Enemies = []Entity{enemy}

	events := Resolve(w, DetectCollisions(w), testRules())
	w.Compact()

	if len(w.Enemies) != 0 {
		t.Error("rammed enemy should be removed")
	}
	if w.Player.Health != 75 {
		t.Errorf("Health = %d, expected 75", w.Player.Health)
	}
	if w.Score != 0 {
		t.Errorf("Score = %d, expected 0 for a ram", w.Score)
	}
	if countEvents(events, core.EventPlayerHit) != 1 {
		t.Errorf("expected one player hit event, got %+v", events)
	}
}

func TestShotDownEnemyDoesNotRam(t *testing.T) {
	w := newTestWorld()
	enemy := NewEnemy(0, weakTier(), w.Player.X, 2, PatternStraight)
	enemy.Y = w.Player.Y - 10
	w.Enemies = []Entity{enemy}
	w.Bullets = []Entity{NewBullet(enemy.CenterX(), enemy.Y+5, true, testConfig().Bullets)}

	Resolve(w, DetectCollisions(w), testRules())

	if w.Player.Health != w.Player.MaxHealth {
		t.Errorf("Health = %d, expected full health", w.Player.Health)
	}
	if w.Score != 100 {
		t.Errorf("Score = %d, expected 100", w.Score)
	}
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	w := newTestWorld()
	w.Bullets = []Entity{NewBullet(w.Player.CenterX(), w.Player.Y+10, false, testConfig().Bullets)}

	Resolve(w, DetectCollisions(w), testRules())
	w.Compact()

	if w.Player.Health != 90 {
		t.Errorf("Health = %d, expected 90", w.Player.Health)
	}
	if len(w.Bullets) != 0 {
		t.Error("enemy bullet should be consumed")
	}
}

func TestPlayerHealthNeverNegative(t *testing.T) {
	w := newTestWorld()
	w.Player.Health = 5
	for i := 0; i < 4; i++ {
		e := NewEnemy(0, weakTier(), w.Player.X, 0, PatternStraight)
		e.Y = w.Player.Y
		w.Enemies = append(w.Enemies, e)
	}

	Resolve(w, DetectCollisions(w), testRules())

	if w.Player.Health != 0 {
		t.Errorf("Health = %d, expected 0", w.Player.Health)
	}
}

func TestPowerUps(t *testing.T) {
	tests := []struct {
		name  string
		kind  PowerUpKind
		setup func(p *Entity)
		check func(t *testing.T, p *Entity)
	}{
		{
			name:  "health heals",
			kind:  PowerUpHealth,
			setup: func(p *Entity) { p.Health = 50 },
			check: func(t *testing.T, p *Entity) {
				if p.Health != 75 {
					t.Errorf("Health = %d, expected 75", p.Health)
				}
			},
		},
		{
			name:  "health clamps to max",
			kind:  PowerUpHealth,
			setup: func(p *Entity) { p.Health = 90 },
			check: func(t *testing.T, p *Entity) {
				if p.Health != 100 {
					t.Errorf("Health = %d, expected 100", p.Health)
				}
			},
		},
		{
			name:  "rapid fire lowers delay",
			kind:  PowerUpRapidFire,
			setup: func(p *Entity) {},
			check: func(t *testing.T, p *Entity) {
				if p.ShotDelayMs != 200 {
					t.Errorf("ShotDelayMs = %d, expected 200", p.ShotDelayMs)
				}
			},
		},
		{
			name:  "rapid fire respects floor",
			kind:  PowerUpRapidFire,
			setup: func(p *Entity) { p.ShotDelayMs = 120 },
			check: func(t *testing.T, p *Entity) {
				if p.ShotDelayMs != 100 {
					t.Errorf("ShotDelayMs = %d, expected 100", p.ShotDelayMs)
				}
			},
		},
		{
			name:  "double shot",
			kind:  PowerUpDoubleShot,
			setup: func(p *Entity) {},
			check: func(t *testing.T, p *Entity) {
				if !p.DoubleShot {
					t.Error("DoubleShot = false, expected true")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld()
			tc.setup(&w.Player)
			pu := NewPowerUp(tc.kind, w.Player.X+10, testConfig().PowerUps)
			pu.Y = w.Player.Y + 10
			w.PowerUps = []Entity{pu}

			events := Resolve(w, DetectCollisions(w), testRules())
			w.Compact()

			tc.check(t, &w.Player)
			if len(w.PowerUps) != 0 {
				t.Error("power-up should be consumed")
			}
			if countEvents(events, core.EventPowerUp) != 1 {
				t.Errorf("expected one power-up event, got %+v", events)
			}
		})
	}
}

func TestDetectCollisionsIsPure(t *testing.T) {
	w := newTestWorld()
	enemy := NewEnemy(0, weakTier(), 100, 2, PatternStraight)
	enemy.Y = 200
	w.Enemies = []Entity{enemy}
	w.Bullets = []Entity{bulletOver(enemy), NewBullet(500, 500, true, testConfig().Bullets)}

	first := DetectCollisions(w)
	second := DetectCollisions(w)

	if len(first.Hits) != 1 || first.Hits[0] != (Pair{Bullet: 0, Enemy: 0}) {
		t.Errorf("Hits = %+v, expected [{0 0}]", first.Hits)
	}
	if len(second.Hits) != len(first.Hits) {
		t.Error("DetectCollisions should be repeatable")
	}
	if w.Enemies[0].Health != 1 || w.Bullets[0].Dead {
		t.Error("DetectCollisions must not mutate the world")
	}
	if !(Collisions{}).Empty() {
		t.Error("zero Collisions should be empty")
	}
}
