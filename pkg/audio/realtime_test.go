package audio

import (
	"testing"
	"time"
)

func TestStreamEmitsPCMWhilePlaying(t *testing.T) {
	seq := NewSequencer(8000, WaveSine)
	seq.Play([]int{69}, time.Second)

	rt := &RealtimeOutput{seq: seq, buffer: make([]float64, 64)}
	rt.running.Store(true)
	stream := &audioStream{rt: rt}

	buf := make([]byte, 256)
	n, err := stream.Read(buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("expected %d bytes, got %d", len(buf), n)
	}
	nonzero := false
	for _, b := range buf {
		if b != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Error("expected PCM output while playing, got silence")
	}
}

func TestStreamSilentAfterClose(t *testing.T) {
	seq := NewSequencer(8000, WaveSine)
	seq.Play([]int{69}, time.Second)

	rt := &RealtimeOutput{seq: seq, buffer: make([]float64, 64)}
	rt.running.Store(true)
	stream := &audioStream{rt: rt}
	rt.Close()

	buf := make([]byte, 128)
	n, err := stream.Read(buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("expected %d bytes, got %d", len(buf), n)
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("expected silence after Close, byte %d = %d", i, b)
		}
	}
}
