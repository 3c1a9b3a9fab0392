package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/avorobev/breakout-tui/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and plays sounds for gameplay events.
// All methods are no-ops until Init succeeds, so the game runs silently
// when no audio device is available.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewManager creates a sound manager. Call Init before playing.
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and attaches the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close pauses the music and clears the mixer.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	if m.music != nil {
		m.music.Paused = true
	}
	m.mixer.Clear()
	m.initialized = false
}

// Play fires the effect for a gameplay event. Unknown events and music
// control events are dispatched to the music handlers.
func (m *Manager) Play(ev core.Event) {
	switch ev {
	case core.EventMusicPlay:
		m.StartMusic()
		return
	case core.EventMusicPause:
		m.PauseMusic()
		return
	case core.EventMusicResume:
		m.ResumeMusic()
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}

	if s := effectFor(ev); s != nil {
		m.mixer.Add(s)
	}
}

// effectFor builds the streamer for a single gameplay event.
func effectFor(ev core.Event) beep.Streamer {
	switch ev {
	case core.EventPaddleHit:
		return blip(440, waveSquare, 60*time.Millisecond, 0.3, sampleRate)
	case core.EventBrickDestroyed:
		return withVolume(
			shaped(newTone(0, 90*time.Millisecond, waveNoise, sampleRate),
				90*time.Millisecond, 2*time.Millisecond, 70*time.Millisecond, sampleRate),
			0.25,
		)
	case core.EventPowerUpDropped:
		return sequence([]float64{660, 550}, waveSine, 70*time.Millisecond, 0.25, sampleRate)
	case core.EventPowerUpActivated:
		return chord([]float64{523.25, 659.25, 783.99}, waveSquare, 120*time.Millisecond, 0.3, sampleRate)
	case core.EventLifeLost:
		return blip(110, waveSaw, 250*time.Millisecond, 0.35, sampleRate)
	case core.EventLevelUp:
		return sequence([]float64{523.25, 587.33, 659.25, 783.99}, waveSine, 80*time.Millisecond, 0.3, sampleRate)
	case core.EventGameOver:
		return sequence([]float64{392, 329.63, 261.63, 196}, waveSaw, 160*time.Millisecond, 0.35, sampleRate)
	default:
		return nil
	}
}

// musicTrack is an endless background loop: a slow minor arpeggio over a
// soft bass drone.
type musicTrack struct {
	rate beep.SampleRate
	pos  int
}

// arpeggio note cycle (A minor) and note length for the music track.
var musicNotes = []float64{220, 261.63, 329.63, 261.63, 220, 261.63, 329.63, 392}

func (t *musicTrack) Stream(samples [][2]float64) (n int, ok bool) {
	noteSamples := t.rate.N(250 * time.Millisecond)
	for i := range samples {
		notePos := t.pos % noteSamples
		note := (t.pos / noteSamples) % len(musicNotes)
		tm := float64(t.pos) / float64(t.rate)

		// Arpeggio with a short per-note fade to avoid clicks
		fade := 1.0
		edge := t.rate.N(10 * time.Millisecond)
		if notePos < edge {
			fade = float64(notePos) / float64(edge)
		} else if noteSamples-notePos < edge {
			fade = float64(noteSamples-notePos) / float64(edge)
		}
		arp := 0.12 * fade * math.Sin(2*math.Pi*musicNotes[note]*tm)

		bass := 0.08 * math.Sin(2*math.Pi*55*tm)

		sample := arp + bass
		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

func (t *musicTrack) Err() error { return nil }

// StartMusic begins (or resumes) the background music loop.
func (m *Manager) StartMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	if m.music != nil {
		m.music.Paused = false
		return
	}

	m.music = &beep.Ctrl{Streamer: &musicTrack{rate: sampleRate}}
	m.mixer.Add(m.music)
}

// PauseMusic pauses the background music loop.
func (m *Manager) PauseMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music != nil {
		m.music.Paused = true
	}
}

// ResumeMusic unpauses the background music loop.
func (m *Manager) ResumeMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music != nil {
		m.music.Paused = false
	}
}
