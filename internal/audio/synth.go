package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a mono oscillator with a linear frequency sweep and an
// attack/decay envelope. It ends after its duration.
type tone struct {
	rate     beep.SampleRate
	wave     Wave
	from, to float64 // Hz
	total    int
	attack   int
	pos      int
	phase    float64
	gain     float64
	rng      *rand.Rand
}

func newTone(rate beep.SampleRate, wave Wave, from, to float64, d time.Duration, gain float64) *tone {
	return &tone{
		rate:   rate,
		wave:   wave,
		from:   from,
		to:     to,
		total:  rate.N(d),
		attack: rate.N(5 * time.Millisecond),
		gain:   gain,
		rng:    rand.New(rand.NewSource(1)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2*t.phase - 1
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		}

		env := 1 - progress
		if t.pos < t.attack {
			env *= float64(t.pos) / float64(t.attack)
		}
		v *= env * t.gain

		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// theme is an endless bass arpeggio with a soft kick on each beat.
type theme struct {
	rate  beep.SampleRate
	beat  int
	pos   int
	phase float64
}

var themeNotes = []float64{55, 55, 65.41, 73.42, 55, 55, 82.41, 73.42}

func newTheme(rate beep.SampleRate) *theme {
	return &theme{rate: rate, beat: rate.N(250 * time.Millisecond)}
}

func (t *theme) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := t.rate.N(60 * time.Millisecond)
	for i := range samples {
		step := (t.pos / t.beat) % len(themeNotes)
		inBeat := t.pos % t.beat

		bass := 0.12 * math.Sin(2*math.Pi*t.phase)
		kick := 0.0
		if step%2 == 0 && inBeat < kickLen {
			env := 1 - float64(inBeat)/float64(kickLen)
			kick = 0.25 * env * math.Sin(2*math.Pi*50*(1+env)*float64(inBeat)/float64(t.rate))
		}

		v := bass + kick
		samples[i][0] = v
		samples[i][1] = v

		t.phase += themeNotes[step] / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *theme) Err() error { return nil }

// Streamer builds a fresh streamer for sound s. Effects are finite;
// SoundTheme never ends.
func Streamer(s Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundLaser:
		return newTone(rate, WaveSquare, 1400, 350, 110*time.Millisecond, 0.18)
	case SoundEnemyLaser:
		return newTone(rate, WaveSaw, 500, 200, 140*time.Millisecond, 0.15)
	case SoundExplosion:
		return beep.Mix(
			newTone(rate, WaveNoise, 0, 0, 400*time.Millisecond, 0.35),
			newTone(rate, WaveSine, 120, 40, 400*time.Millisecond, 0.3),
		)
	case SoundHit:
		return newTone(rate, WaveSaw, 110, 70, 180*time.Millisecond, 0.3)
	case SoundPickup:
		return beep.Seq(
			newTone(rate, WaveSine, 880, 880, 80*time.Millisecond, 0.25),
			newTone(rate, WaveSine, 1320, 1320, 120*time.Millisecond, 0.25),
		)
	case SoundGameOver:
		return beep.Seq(
			newTone(rate, WaveSquare, 392, 392, 200*time.Millisecond, 0.15),
			newTone(rate, WaveSquare, 330, 330, 200*time.Millisecond, 0.15),
			newTone(rate, WaveSquare, 262, 180, 500*time.Millisecond, 0.15),
		)
	case SoundTheme:
		return newTheme(rate)
	default:
		return beep.Silence(0)
	}
}
