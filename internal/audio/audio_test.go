package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

const testRate = beep.SampleRate(8000)

// drain streams s until it ends or limit samples have been read.
func drain(s beep.Streamer, limit int) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for n < limit {
		got, ok := s.Stream(buf)
		for i := 0; i < got; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		n += got
		if !ok {
			break
		}
	}
	return n, peak
}

func TestEffectsAreFiniteAndAudible(t *testing.T) {
	effects := []Sound{SoundLaser, SoundEnemyLaser, SoundExplosion, SoundHit, SoundPickup, SoundGameOver}
	limit := testRate.N(5 * time.Second)

	for _, s := range effects {
		t.Run(s.String(), func(t *testing.T) {
			n, peak := drain(Streamer(s, testRate), limit)
			if n == 0 || n >= limit {
				t.Errorf("length = %d samples, expected a short clip", n)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %v, expected (0, 1]", peak)
			}
		})
	}
}

func TestThemeNeverEnds(t *testing.T) {
	limit := testRate.N(10 * time.Second)
	n, peak := drain(Streamer(SoundTheme, testRate), limit)
	if n < limit {
		t.Errorf("theme stopped after %d samples", n)
	}
	if peak == 0 {
		t.Error("theme is silent")
	}
}

func TestToneLength(t *testing.T) {
	tn := newTone(testRate, WaveSine, 440, 440, 100*time.Millisecond, 0.5)
	n, _ := drain(tn, testRate.N(time.Second))
	if n != testRate.N(100*time.Millisecond) {
		t.Errorf("tone length = %d, expected %d", n, testRate.N(100*time.Millisecond))
	}
}

type recordingSink struct {
	played []Sound
	music  []bool
}

func (r *recordingSink) Play(s Sound) { r.played = append(r.played, s) }
func (r *recordingSink) StartMusic() { r.music = append(r.music, true) }
func (r *recordingSink) StopMusic() { r.music = append(r.music, false) }
func (r *recordingSink) Close() {}

func TestPlayEvents(t *testing.T) {
	sink := &recordingSink{}
	PlayEvents(sink, []core.Event{
		{Kind: core.EventShot},
		{Kind: core.EventEnemyDestroyed, Value: 100},
		{Kind: core.EventPowerUp},
		{Kind: core.EventPlayerHit},
		{Kind: core.EventEnemyShot},
		{Kind: core.EventGameOver},
		{Kind: core.EventRestart},
	})

	want := []Sound{SoundLaser, SoundExplosion, SoundPickup, SoundHit, SoundEnemyLaser, SoundGameOver}
	if len(sink.played) != len(want) {
		t.Fatalf("played %v, expected %v", sink.played, want)
	}
	for i := range want {
		if sink.played[i] != want[i] {
			t.Errorf("sound %d = %s, expected %s", i, sink.played[i], want[i])
		}
	}
	if len(sink.music) != 2 || sink.music[0] || !sink.music[1] {
		t.Errorf("music toggles = %v, expected stop then start", sink.music)
	}
}

func TestOpenDisabledIsSilent(t *testing.T) {
	cfg := config.DefaultShooterConfig().Audio
	cfg.Enabled = false
	sink, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := sink.(Nop); !ok {
		t.Errorf("Open() = %T, expected Nop", sink)
	}
}

func TestSoundString(t *testing.T) {
	if SoundTheme.String() != "theme" || Sound(99).String() != "sound(99)" {
		t.Error("unexpected sound names")
	}
}
