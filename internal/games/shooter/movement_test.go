package shooter

import (
	"math"
	"testing"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

var testBounds = Bounds{W: 600, H: 1200}

var testMotion = Motion{SineAmplitude: 2, SineFrequency: 0.1, DiagonalDrift: 1}

func testConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Difficulty.Enabled = false
	return cfg
}

func weakTier() config.EnemyTier {
	return testConfig().Enemies.Tiers[0]
}

func strongTier() config.EnemyTier {
	return testConfig().Enemies.Tiers[1]
}

func TestEnemyStraightDescent(t *testing.T) {
	e := NewEnemy(0, weakTier(), 300, 2, PatternStraight)

	Advance(&e, 15, testBounds, testMotion)

	if e.Y != 0 {
		t.Errorf("Y after 15 ticks = %v, expected 0", e.Y)
	}
	if e.X != 300 {
		t.Errorf("X = %v, expected 300 (straight pattern)", e.X)
	}
	if e.Age != 15 {
		t.Errorf("Age = %d, expected 15", e.Age)
	}

	player := Entity{Kind: KindPlayer, X: 300, Y: 1000, W: 64, H: 64}
	if e.Box().Intersects(player.Box()) {
		t.Error("enemy at y=0 should not touch a player at y=1000")
	}
}

func TestEnemySinePattern(t *testing.T) {
	e := NewEnemy(0, weakTier(), 300, 1, PatternSine)

	x := 300.0
	for age := 0; age < 40; age++ {
		x += math.Sin(float64(age)*0.1) * 2
		Advance(&e, 1, testBounds, testMotion)
		if math.Abs(e.X-x) > 1e-9 {
			t.Fatalf("tick %d: X = %v, expected %v", age+1, e.X, x)
		}
	}
}

func TestEnemySineClampedToBounds(t *testing.T) {
	m := Motion{SineAmplitude: 50, SineFrequency: 0.1}
	e := NewEnemy(0, weakTier(), 590-64, 1, PatternSine)

	for i := 0; i < 200; i++ {
		Advance(&e, 1, testBounds, m)
		if e.X < 0 || e.X+e.W > testBounds.W {
			t.Fatalf("tick %d: enemy left the field horizontally, X=%v", i, e.X)
		}
	}
}

func TestEnemyDiagonalApproachesCentre(t *testing.T) {
	e := NewEnemy(0, weakTier(), 0, 1, PatternDiagonal)
	target := (testBounds.W - e.W) / 2

	Advance(&e, 10, testBounds, testMotion)
	if e.X != 10 {
		t.Errorf("X after 10 ticks = %v, expected 10", e.X)
	}

	Advance(&e, 1000, testBounds, testMotion)
	if e.X != target {
		t.Errorf("X after settling = %v, expected centre %v", e.X, target)
	}
}

func TestPlayerClamp(t *testing.T) {
	tests := []struct {
		name  string
		input core.InputFrame
		start [2]float64
		want  [2]float64
	}{
		{"left wall", core.InputOf(core.ActionLeft), [2]float64{2, 1000}, [2]float64{0, 1000}},
		{"right wall", core.InputOf(core.ActionRight), [2]float64{534, 1000}, [2]float64{536, 1000}},
		{"top quarter", core.InputOf(core.ActionUp), [2]float64{300, 302}, [2]float64{300, 300}},
		{"bottom", core.InputOf(core.ActionDown), [2]float64{300, 1134}, [2]float64{300, 1136}},
		{"opposite keys cancel", core.InputOf(core.ActionLeft, core.ActionRight), [2]float64{300, 1000}, [2]float64{300, 1000}},
		{"diagonal", core.InputOf(core.ActionUp, core.ActionRight), [2]float64{300, 1000}, [2]float64{305, 995}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Entity{Kind: KindPlayer, X: tc.start[0], Y: tc.start[1], W: 64, H: 64}
			SteerPlayer(&p, tc.input, 5)
			Advance(&p, 1, testBounds, testMotion)
			if p.X != tc.want[0] || p.Y != tc.want[1] {
				t.Errorf("position = (%v, %v), expected (%v, %v)", p.X, p.Y, tc.want[0], tc.want[1])
			}
		})
	}
}

func TestBulletAndPowerUpMoveVertically(t *testing.T) {
	bullets := testConfig().Bullets
	up := NewBullet(100, 500, true, bullets)
	down := NewBullet(100, 500, false, bullets)
	pu := NewPowerUp(PowerUpHealth, 40, testConfig().PowerUps)

	Advance(&up, 3, testBounds, testMotion)
	Advance(&down, 3, testBounds, testMotion)
	Advance(&pu, 3, testBounds, testMotion)

	if up.Y != 500-8-24 {
		t.Errorf("player bullet Y = %v, expected %v", up.Y, 500-8-24)
	}
	if down.Y != 500-8+18 {
		t.Errorf("enemy bullet Y = %v, expected %v", down.Y, 500-8+18)
	}
	if up.X != 96 || down.X != 96 {
		t.Errorf("bullets moved horizontally: %v, %v", up.X, down.X)
	}
	if pu.Y != -24+6 {
		t.Errorf("power-up Y = %v, expected %v", pu.Y, -24+6)
	}
}

func TestAdvanceSkipsDead(t *testing.T) {
	e := NewEnemy(0, weakTier(), 100, 2, PatternStraight)
	e.Dead = true
	Advance(&e, 5, testBounds, testMotion)
	if e.Y != -30 || e.Age != 0 {
		t.Errorf("dead enemy moved: Y=%v Age=%d", e.Y, e.Age)
	}
}

func TestOffScreen(t *testing.T) {
	tests := []struct {
		name     string
		e        Entity
		expected bool
	}{
		{"bullet fully above top", Entity{Kind: KindBullet, Y: -17, H: 16, FromPlayer: true}, true},
		{"bullet partly visible", Entity{Kind: KindBullet, Y: -15, H: 16, FromPlayer: true}, false},
		{"bullet exactly at -height", Entity{Kind: KindBullet, Y: -16, H: 16, FromPlayer: true}, false},
		{"enemy bullet below bottom", Entity{Kind: KindBullet, Y: 1201, H: 16}, true},
		{"enemy spawning above top", Entity{Kind: KindEnemy, Y: -40, H: 72}, false},
		{"enemy top past bottom", Entity{Kind: KindEnemy, Y: 1200.5, H: 64}, true},
		{"enemy at bottom edge", Entity{Kind: KindEnemy, Y: 1200, H: 64}, false},
		{"power-up past bottom", Entity{Kind: KindPowerUp, Y: 1300, H: 24}, true},
		{"player never", Entity{Kind: KindPlayer, Y: 5000, H: 64}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OffScreen(&tc.e, testBounds); got != tc.expected {
				t.Errorf("OffScreen() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPruneIsExhaustive(t *testing.T) {
	w := &World{Bounds: testBounds}
	w.Enemies = []Entity{
		{Kind: KindEnemy, Y: 1300, H: 64},
		{Kind: KindEnemy, Y: 100, H: 64},
	}
	w.Bullets = []Entity{
		{Kind: KindBullet, Y: -50, H: 16, FromPlayer: true},
		{Kind: KindBullet, Y: 1250, H: 16},
		{Kind: KindBullet, Y: 600, H: 16, FromPlayer: true},
	}
	w.PowerUps = []Entity{{Kind: KindPowerUp, Y: 1201, H: 24}}

	Prune(w)
	w.Compact()

	if len(w.Enemies) != 1 || w.Enemies[0].Y != 100 {
		t.Errorf("enemies after prune = %+v", w.Enemies)
	}
	if len(w.Bullets) != 1 || w.Bullets[0].Y != 600 {
		t.Errorf("bullets after prune = %+v", w.Bullets)
	}
	if len(w.PowerUps) != 0 {
		t.Errorf("power-ups after prune = %+v", w.PowerUps)
	}
}
