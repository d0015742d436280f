package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anthropics/ascalekit/pkg/audio"
	"github.com/anthropics/ascalekit/pkg/scale"
	"github.com/anthropics/ascalekit/pkg/theory"
	"github.com/anthropics/ascalekit/pkg/tui"
)

func main() {
	list := flag.Bool("list", false, "List all known scale types")
	play := flag.Bool("play", false, "Audition the scale on the default audio device")
	wav := flag.String("wav", "", "Render the scale audition to a WAV file")
	flag.Parse()

	if *list {
		listTypes()
		return
	}

	query := strings.Join(flag.Args(), " ")
	if query == "" && !*play && *wav == "" {
		// No query: open the interactive explorer
		p := tea.NewProgram(tui.NewModel(""))
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	s := scale.Get(query)
	if !s.Valid {
		fmt.Fprintf(os.Stderr, "Unknown scale: %q\n", query)
		os.Exit(1)
	}

	printScale(query, s)

	if *wav != "" {
		if err := renderWAV(s, *wav); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing WAV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %s\n", *wav)
	}

	if *play {
		if err := audition(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening audio device: %v\n", err)
			os.Exit(1)
		}
	}
}

func listTypes() {
	for _, t := range scale.Types() {
		line := t.Name
		if len(t.Aliases) > 0 {
			line += "  (" + strings.Join(t.Aliases, ", ") + ")"
		}
		fmt.Printf("%-14s %s\n", t.Set.Chroma(), line)
	}
}

func printScale(query string, s scale.Scale) {
	fmt.Println(s.Name)
	if len(s.Aliases) > 0 {
		fmt.Printf("aliases:  %s\n", strings.Join(s.Aliases, ", "))
	}
	if len(s.Notes) > 0 {
		fmt.Printf("notes:    %s\n", strings.Join(s.Notes, " "))
	} else {
		names := make([]string, len(s.Intervals))
		for i, iv := range s.Intervals {
			names[i] = iv.Name
		}
		fmt.Printf("degrees:  %s\n", strings.Join(names, " "))
	}
	fmt.Printf("steps:    %s\n", strings.Join(scale.Steps(query), " "))
	fmt.Printf("chroma:   %s (%d)\n", s.Set.Chroma(), s.Set.Num())

	if modes := scale.Modes(query); len(modes) > 0 {
		fmt.Println("modes:")
		for _, m := range modes {
			fmt.Printf("  %-4s %s\n", m.Tonic, m.Name)
		}
	}
	if chords := scale.Chords(query); len(chords) > 0 {
		fmt.Printf("chords:   %s\n", strings.Join(chords, ", "))
	}
	if ext := scale.Extended(query); len(ext) > 0 {
		fmt.Printf("extended: %s\n", strings.Join(ext, ", "))
	}
	if red := scale.Reduced(query); len(red) > 0 {
		fmt.Printf("reduced:  %s\n", strings.Join(red, ", "))
	}
}

// auditionNotes lays the scale out around MIDI octave 4, up and back
// down. Unrooted scales audition their shape from middle C.
func auditionNotes(s scale.Scale) []int {
	root := 60
	if n := theory.ParseNote(s.Tonic); n.Valid {
		root = 60 + n.Chroma
		if n.HasOct {
			root = n.Midi
		}
	}
	up := make([]int, 0, len(s.Formula)+1)
	for _, w := range s.Formula {
		up = append(up, root+w)
	}
	up = append(up, root+12)
	notes := append([]int{}, up...)
	for i := len(up) - 2; i >= 0; i-- {
		notes = append(notes, up[i])
	}
	return notes
}

func audition(s scale.Scale) error {
	seq := audio.NewSequencer(44100, audio.WaveSine)
	rt, err := audio.NewRealtimeOutput(seq)
	if err != nil {
		return err
	}
	defer rt.Close()

	seq.Play(auditionNotes(s), 280*time.Millisecond)
	for seq.Playing() {
		time.Sleep(50 * time.Millisecond)
	}
	time.Sleep(200 * time.Millisecond) // Let the device buffer drain
	return nil
}

func renderWAV(s scale.Scale, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	seq := audio.NewSequencer(44100, audio.WaveSine)
	seq.Play(auditionNotes(s), 280*time.Millisecond)
	return audio.ExportWAV(seq, f)
}
