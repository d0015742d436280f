// Package audio implements the scale audition engine
package audio

import "math"

// Waveform selects the oscillator shape
type Waveform uint8

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSquare
	WaveSawtooth
)

// Oscillator generates waveforms
type Oscillator struct {
	Wave       Waveform
	Phase      float64
	Frequency  float64
	SampleRate float64
}

// NewOscillator creates a new oscillator
func NewOscillator(wave Waveform, sampleRate float64) *Oscillator {
	return &Oscillator{
		Wave:       wave,
		SampleRate: sampleRate,
	}
}

// SetFrequency sets the oscillator frequency
func (o *Oscillator) SetFrequency(freq float64) {
	o.Frequency = freq
}

// Reset resets the oscillator phase
func (o *Oscillator) Reset() {
	o.Phase = 0
}

// NoteToFreq converts a MIDI note number to frequency (A4 = 69 = 440 Hz)
func NoteToFreq(midi int) float64 {
	return 440.0 * math.Pow(2.0, float64(midi-69)/12.0)
}

// Sample generates the next sample value (-1.0 to 1.0)
func (o *Oscillator) Sample() float64 {
	if o.Frequency <= 0 {
		return 0
	}

	// Advance phase
	o.Phase += o.Frequency / o.SampleRate
	if o.Phase >= 1.0 {
		o.Phase -= 1.0
	}

	switch o.Wave {
	case WaveTriangle:
		return o.triangle()
	case WaveSquare:
		return o.square()
	case WaveSawtooth:
		return o.sawtooth()
	default:
		return o.sine()
	}
}

// Sine wave, the gentlest audition voice
func (o *Oscillator) sine() float64 {
	return math.Sin(2 * math.Pi * o.Phase)
}

// Triangle wave: /\/\/\
func (o *Oscillator) triangle() float64 {
	p := o.Phase
	if p < 0.5 {
		return 4.0*p - 1.0
	}
	return 3.0 - 4.0*p
}

// Square wave: _|-|_|-|
func (o *Oscillator) square() float64 {
	if o.Phase < 0.5 {
		return 1.0
	}
	return -1.0
}

// Sawtooth wave: /|/|/|
func (o *Oscillator) sawtooth() float64 {
	return 2.0*o.Phase - 1.0
}
