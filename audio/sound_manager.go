package audio

import (
	"sync"
	"time"

	"gridsnake/game/types"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)
	noteLength = 40 * time.Millisecond
)

var (
	eatNotes   = []float64{523.25, 659.25, 783.99} // C5 E5 G5
	deathNotes = []float64{392.00, 311.13, 261.63, 196.00}
)

// SoundManager plays short tones for gameplay events. It is a game listener
// and stays silent until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still queued
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) FoodEaten(types.Point) {
	sm.play(Melody(sampleRate, eatNotes, noteLength))
}

func (sm *SoundManager) Died(cause types.CollisionType) {
	if cause == types.QuitSignal {
		return
	}
	sm.play(Melody(sampleRate, deathNotes, 3*noteLength))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Melody plays each note as a sine tone of the given length, one after the
// other, at half volume.
func Melody(sr beep.SampleRate, notes []float64, length time.Duration) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sr.N(length), tone))
	}
	if len(parts) == 0 {
		return nil
	}
	return halve(beep.Seq(parts...))
}

func halve(s beep.Streamer) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			samples[i][0] *= 0.5
			samples[i][1] *= 0.5
		}
		return n, ok
	})
}
