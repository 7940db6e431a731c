// Package audio plays synthesised sound effects and the background theme.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Sound identifies a synthesised clip.
type Sound int

const (
	SoundLaser Sound = iota
	SoundEnemyLaser
	SoundExplosion
	SoundHit
	SoundPickup
	SoundGameOver
	SoundTheme
)

var soundNames = map[Sound]string{
	SoundLaser:      "laser",
	SoundEnemyLaser: "enemy_laser",
	SoundExplosion:  "explosion",
	SoundHit:        "hit",
	SoundPickup:     "pickup",
	SoundGameOver:   "game_over",
	SoundTheme:      "theme",
}

func (s Sound) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return fmt.Sprintf("sound(%d)", int(s))
}

// Sink receives sounds from the game loop. Calls must not block.
type Sink interface {
	Play(s Sound)
	StartMusic()
	StopMusic()
	Close()
}

// Nop is a silent Sink used for --mute, SSH sessions and failed init.
type Nop struct{}

func (Nop) Play(Sound) {}
func (Nop) StartMusic() {}
func (Nop) StopMusic() {}
func (Nop) Close() {}

// Player mixes sounds onto the system speaker.
type Player struct {
	mu        sync.Mutex
	rate      beep.SampleRate
	volume    float64
	withMusic bool
	mixer     *beep.Mixer
	music     *beep.Ctrl
	closed    bool
}

// New opens the speaker. It fails when no audio device is available.
func New(cfg config.AudioConfig) (*Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	p := &Player{
		rate:      rate,
		volume:    cfg.Volume,
		withMusic: cfg.Music,
		mixer:     &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Open returns a Player, or Nop when audio is disabled or unavailable.
// The error is returned alongside the fallback so callers can log it.
func Open(cfg config.AudioConfig) (Sink, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}
	p, err := New(cfg)
	if err != nil {
		return Nop{}, err
	}
	return p, nil
}

func (p *Player) add(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: p.volume})
	speaker.Unlock()
}

// Play mixes in a one-shot effect.
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || s == SoundTheme {
		return
	}
	p.add(Streamer(s, p.rate))
}

// StartMusic loops the theme. It does nothing if music is off or
// already playing.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || !p.withMusic {
		return
	}
	if p.music != nil {
		speaker.Lock()
		p.music.Paused = false
		speaker.Unlock()
		return
	}
	p.music = &beep.Ctrl{Streamer: Streamer(SoundTheme, p.rate)}
	p.add(p.music)
}

// StopMusic pauses the theme.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// Close silences everything and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
}

// PlayEvents maps game events to sounds.
func PlayEvents(sink Sink, events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventShot:
			sink.Play(SoundLaser)
		case core.EventEnemyShot:
			sink.Play(SoundEnemyLaser)
		case core.EventEnemyDestroyed:
			sink.Play(SoundExplosion)
		case core.EventPlayerHit:
			sink.Play(SoundHit)
		case core.EventPowerUp:
			sink.Play(SoundPickup)
		case core.EventGameOver:
			sink.StopMusic()
			sink.Play(SoundGameOver)
		case core.EventRestart:
			sink.StartMusic()
		}
	}
}
