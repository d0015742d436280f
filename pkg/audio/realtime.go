package audio

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

// RealtimeOutput streams a Sequencer to the audio device
type RealtimeOutput struct {
	seq       *Sequencer
	otoCtx    *oto.Context
	otoPlayer *oto.Player
	buffer    []float64
	running   atomic.Bool // Read by oto's playback goroutine
}

// NewRealtimeOutput opens the audio device and starts streaming
func NewRealtimeOutput(seq *Sequencer) (*RealtimeOutput, error) {
	op := &oto.NewContextOptions{
		SampleRate:   seq.SampleRate,
		ChannelCount: 1, // Mono
		Format:       oto.FormatSignedInt16LE,
	}

	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	rt := &RealtimeOutput{
		seq:    seq,
		otoCtx: otoCtx,
		buffer: make([]float64, 512),
	}
	rt.running.Store(true)

	rt.otoPlayer = otoCtx.NewPlayer(&audioStream{rt: rt})
	rt.otoPlayer.SetBufferSize(seq.SampleRate / 10) // 100ms buffer
	rt.otoPlayer.Play()

	return rt, nil
}

// Close stops the audio output
func (rt *RealtimeOutput) Close() {
	rt.running.Store(false)
	if rt.otoPlayer != nil {
		rt.otoPlayer.Close()
	}
}

// audioStream implements io.Reader for oto
type audioStream struct {
	rt *RealtimeOutput
}

func (s *audioStream) Read(buf []byte) (int, error) {
	if !s.rt.running.Load() {
		// Fill with silence
		for i := range buf {
			buf[i] = 0
		}
		return len(buf), nil
	}

	// Generate samples
	samples := len(buf) / 2 // 16-bit = 2 bytes per sample
	if samples > len(s.rt.buffer) {
		s.rt.buffer = make([]float64, samples)
	}

	s.rt.seq.GenerateSamples(s.rt.buffer[:samples])

	// Convert to 16-bit PCM
	for i := 0; i < samples; i++ {
		sample := s.rt.buffer[i]
		// Clamp
		if sample > 1.0 {
			sample = 1.0
		}
		if sample < -1.0 {
			sample = -1.0
		}
		s16 := int16(sample * 32767)
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s16))
	}

	return samples * 2, nil
}
