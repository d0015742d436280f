package audio

import (
	"encoding/binary"
	"io"
)

// WAVWriter writes audio to WAV format
type WAVWriter struct {
	writer     io.Writer
	sampleRate int
	channels   int
}

// NewWAVWriter creates a WAV writer
func NewWAVWriter(w io.Writer, sampleRate, channels int) *WAVWriter {
	return &WAVWriter{
		writer:     w,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

// WriteHeader writes the WAV header
func (w *WAVWriter) WriteHeader(dataSize int) error {
	// RIFF header
	w.writer.Write([]byte("RIFF"))
	binary.Write(w.writer, binary.LittleEndian, uint32(dataSize+36))
	w.writer.Write([]byte("WAVE"))

	// fmt chunk
	w.writer.Write([]byte("fmt "))
	binary.Write(w.writer, binary.LittleEndian, uint32(16))           // Chunk size
	binary.Write(w.writer, binary.LittleEndian, uint16(1))            // PCM format
	binary.Write(w.writer, binary.LittleEndian, uint16(w.channels))   // Channels
	binary.Write(w.writer, binary.LittleEndian, uint32(w.sampleRate)) // Sample rate
	byteRate := w.sampleRate * w.channels * 2
	binary.Write(w.writer, binary.LittleEndian, uint32(byteRate)) // Byte rate
	blockAlign := w.channels * 2
	binary.Write(w.writer, binary.LittleEndian, uint16(blockAlign)) // Block align
	binary.Write(w.writer, binary.LittleEndian, uint16(16))         // Bits per sample

	// data chunk header
	w.writer.Write([]byte("data"))
	binary.Write(w.writer, binary.LittleEndian, uint32(dataSize))

	return nil
}

// WriteSamples writes float samples as 16-bit PCM
func (w *WAVWriter) WriteSamples(samples []float64) error {
	for _, s := range samples {
		if s > 1.0 {
			s = 1.0
		}
		if s < -1.0 {
			s = -1.0
		}
		s16 := int16(s * 32767)
		if err := binary.Write(w.writer, binary.LittleEndian, s16); err != nil {
			return err
		}
	}
	return nil
}

// ExportWAV renders whatever the sequencer has scheduled into a mono
// WAV stream, running until the sequence finishes
func ExportWAV(seq *Sequencer, writer io.Writer) error {
	sampleRate := seq.SampleRate

	// Render fully first: the data chunk size must be known up front
	var rendered []float64
	buffer := make([]float64, 4096)
	for seq.Playing() {
		seq.GenerateSamples(buffer)
		rendered = append(rendered, buffer...)
	}

	wavWriter := NewWAVWriter(writer, sampleRate, 1)
	if err := wavWriter.WriteHeader(len(rendered) * 2); err != nil {
		return err
	}
	return wavWriter.WriteSamples(rendered)
}
