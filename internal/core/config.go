package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Clock gates cooldowns in milliseconds. When nil the game derives
	// time from its own tick count, which keeps seeded runs reproducible.
	Clock Clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary the platform reads after every tick.
type GameState struct {
	Score     int
	Health    int
	MaxHealth int
	GameOver  bool
}

// EventKind names something that happened during a tick.
// The platform turns events into sounds and log lines.
type EventKind int

const (
	EventShot EventKind = iota + 1
	EventEnemyShot
	EventEnemyDestroyed
	EventPlayerHit
	EventPowerUp
	EventGameOver
	EventRestart
)

// String returns the event name used for audio cues and logs.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventEnemyShot:
		return "enemy_shot"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventPowerUp:
		return "powerup"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is one occurrence reported by Game.Step.
type Event struct {
	Kind  EventKind
	Value int // score gained, damage taken or power-up kind
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
