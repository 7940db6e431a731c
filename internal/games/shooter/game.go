// Package shooter implements skyraid, a vertically scrolling shooter.
// The player flies at the bottom of the field, shoots descending enemies,
// collects power-ups and plays until health runs out.
package shooter

import (
	"math/rand"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/registry"
)

// State is the round state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// Variant selects which ruleset a Game plays.
type Variant int

const (
	VariantClassic Variant = iota // enemies never shoot
	VariantAssault                // enemies shoot back
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig resolves the configuration the CLI asked for, with the
// difficulty preset applied. The platform uses it for backdrop and audio settings.
func LoadConfig() (config.ShooterConfig, error) {
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		return config.DefaultShooterConfig(), err
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Game implements the shooter simulation.
type Game struct {
	variant Variant

	cfg        config.ShooterConfig
	fixedCfg   bool // cfg was injected and must not be reloaded
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rules      Rules
	motion     Motion

	rng     *rand.Rand
	spawner *Spawner

	world World
	state State
	tick  int
}

// New creates a game that loads its configuration on Reset.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(v Variant, cfg config.ShooterConfig) *Game {
	return &Game{variant: v, cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantAssault {
		return "skyraid_assault"
	}
	return "skyraid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantAssault {
		return "Skyraid: Assault"
	}
	return "Skyraid"
}

// Reset loads configuration, seeds the RNG and starts a fresh round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	if !g.fixedCfg {
		cfg, err := LoadConfig()
		if err != nil {
			cfg = config.DefaultShooterConfig()
		}
		g.cfg = cfg
	}
	if g.variant == VariantAssault {
		g.cfg.Enemies.Fire.Enabled = true
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rules = RulesFromConfig(g.cfg)
	g.motion = Motion{
		SineAmplitude: g.cfg.Enemies.SineAmplitude,
		SineFrequency: g.cfg.Enemies.SineFrequency,
		DiagonalDrift: g.cfg.Enemies.DiagonalDrift,
	}
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.spawner = NewSpawner(g.rng, g.cfg.Enemies, g.cfg.PowerUps)
	g.newRound()
}

// newRound clears the world. The RNG keeps its sequence so consecutive
// rounds differ.
func (g *Game) newRound() {
	g.world = World{
		Bounds: Bounds{W: g.cfg.World.Width, H: g.cfg.World.Height},
		Player: NewPlayer(g.cfg),
	}
	g.spawner.Reset()
	g.state = StatePlaying
	g.tick = 0
}

// nowMs returns cooldown time. Without an injected clock it is derived
// from the tick count.
func (g *Game) nowMs() int64 {
	if g.runtime.Clock != nil {
		return g.runtime.Clock.NowMs()
	}
	return int64(g.tick) * 1000 / int64(g.runtime.TickRate)
}

// Step advances the round by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == StateGameOver {
		if in.Has(core.ActionRestart) {
			g.newRound()
			return core.StepResult{State: g.State(), Events: []core.Event{{Kind: core.EventRestart}}}
		}
		return core.StepResult{State: g.State()}
	}

	g.tick++
	w := &g.world
	now := g.nowMs()
	var events []core.Event

	SteerPlayer(&w.Player, in, g.cfg.Player.Speed)
	Advance(&w.Player, 1, w.Bounds, g.motion)
	if in.Has(core.ActionFire) && PlayerShoot(w, now, g.cfg.Bullets, g.cfg.Player.DoubleShotGap) {
		events = append(events, core.Event{Kind: core.EventShot})
	}

	for i := range w.Enemies {
		Advance(&w.Enemies[i], 1, w.Bounds, g.motion)
	}
	for i := range w.Bullets {
		Advance(&w.Bullets[i], 1, w.Bounds, g.motion)
	}
	for i := range w.PowerUps {
		Advance(&w.PowerUps[i], 1, w.Bounds, g.motion)
	}

	if g.cfg.Enemies.Fire.Enabled {
		if n := EnemiesFire(w, now, g.rng, g.cfg.Enemies.Fire, g.cfg.Bullets); n > 0 {
			events = append(events, core.Event{Kind: core.EventEnemyShot, Value: n})
		}
	}

	interval := g.difficulty.SpawnInterval(g.cfg.Enemies.SpawnInterval, w.Score, g.tick)
	speedScale := g.difficulty.Speed(1, w.Score, g.tick)
	g.spawner.TrySpawnEnemy(w, interval, speedScale)
	g.spawner.TrySpawnPowerUp(w)

	Prune(w)
	events = append(events, Resolve(w, DetectCollisions(w), g.rules)...)
	w.Compact()

	if w.Player.Health <= 0 {
		g.state = StateGameOver
		events = append(events, core.Event{Kind: core.EventGameOver, Value: w.Score})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.world.Score,
		Health:    g.world.Player.Health,
		MaxHealth: g.world.Player.MaxHealth,
		GameOver:  g.state == StateGameOver,
	}
}

// World exposes the live world for rendering and tests.
func (g *Game) World() *World {
	return &g.world
}

// Config returns the configuration in effect.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// Register the variants with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          "skyraid",
		Title:       "Skyraid",
		Description: "Classic raid: dodge and destroy the descending fleet",
	}, func() registry.Game {
		return New(VariantClassic)
	})
	registry.Register(registry.GameInfo{
		ID:          "skyraid_assault",
		Title:       "Skyraid: Assault",
		Description: "The fleet shoots back",
	}, func() registry.Game {
		return New(VariantAssault)
	})
}
