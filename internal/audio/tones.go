// Package audio synthesizes the game's sound effects and background music
// with gopxl/beep. No sound assets ship with the binary; every effect is
// generated from oscillators at startup cost zero.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveShape selects the oscillator waveform.
type waveShape int

const (
	waveSine waveShape = iota
	waveSquare
	waveSaw
	waveNoise
)

// tone is a finite single-waveform streamer.
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	shape    waveShape
	rate     beep.SampleRate
}

// newTone creates a streamer producing the given waveform for the duration.
func newTone(freq float64, duration time.Duration, shape waveShape, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(duration),
		shape:    shape,
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}

		var val float64
		switch t.shape {
		case waveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (t.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // Keep in [0, 1)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// shaped wraps a streamer in an attack/release envelope.
func shaped(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume wraps a streamer in a volume effect.
// math.Log2(0) is -Inf, so zero volume switches to silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// blip is a single enveloped note.
func blip(freq float64, shape waveShape, duration time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	osc := newTone(freq, duration, shape, rate)
	env := shaped(osc, duration, 5*time.Millisecond, duration/2, rate)
	return withVolume(env, vol)
}

// chord mixes several simultaneous notes.
func chord(freqs []float64, shape waveShape, duration time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		parts[i] = blip(f, shape, duration, vol/float64(len(freqs)), rate)
	}
	return beep.Mix(parts...)
}

// sequence plays notes one after another.
func sequence(freqs []float64, shape waveShape, noteLen time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		parts[i] = blip(f, shape, noteLen, vol, rate)
	}
	return beep.Seq(parts...)
}
