package audio

import (
	"sync"
	"time"
)

// Sequencer plays a list of MIDI notes one after another, with a short
// attack and release around each note to avoid clicks. It is the
// sample source for both real-time audition and WAV export.
type Sequencer struct {
	SampleRate int

	mu          sync.Mutex
	osc         *Oscillator
	notes       []int
	idx         int // Index of the sounding note
	noteSamples int // Samples per note
	notePos     int // Sample position within the current note
	playing     bool
	gain        float64
}

// NewSequencer creates a sequencer at the given sample rate
func NewSequencer(sampleRate int, wave Waveform) *Sequencer {
	return &Sequencer{
		SampleRate: sampleRate,
		osc:        NewOscillator(wave, float64(sampleRate)),
		gain:       0.5,
	}
}

// Play schedules notes for playback, replacing anything still sounding
func (s *Sequencer) Play(notes []int, noteDur time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.noteSamples = int(noteDur.Seconds() * float64(s.SampleRate))
	if s.noteSamples < 1 {
		s.noteSamples = 1
	}
	s.notes = append([]int(nil), notes...)
	s.idx = 0
	s.notePos = 0
	s.playing = len(s.notes) > 0
	if s.playing {
		s.osc.Reset()
		s.osc.SetFrequency(NoteToFreq(s.notes[0]))
	}
}

// Stop silences the sequencer immediately
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
}

// Playing reports whether notes are still sounding
func (s *Sequencer) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// GenerateSamples fills the buffer, emitting silence once the sequence
// has run out
func (s *Sequencer) GenerateSamples(buffer []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range buffer {
		if !s.playing {
			buffer[i] = 0
			continue
		}

		buffer[i] = s.osc.Sample() * s.gain * s.envelope()

		s.notePos++
		if s.notePos >= s.noteSamples {
			s.notePos = 0
			s.idx++
			if s.idx >= len(s.notes) {
				s.playing = false
				continue
			}
			s.osc.Reset()
			s.osc.SetFrequency(NoteToFreq(s.notes[s.idx]))
		}
	}
}

// envelope shapes each note: 5ms linear attack, 20% release tail
func (s *Sequencer) envelope() float64 {
	attack := s.SampleRate / 200
	if attack < 1 {
		attack = 1
	}
	if s.notePos < attack {
		return float64(s.notePos) / float64(attack)
	}

	release := s.noteSamples / 5
	if release < 1 {
		release = 1
	}
	left := s.noteSamples - s.notePos
	if left < release {
		return float64(left) / float64(release)
	}
	return 1.0
}
