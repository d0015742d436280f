// Package tui implements the terminal scale explorer
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anthropics/ascalekit/pkg/audio"
	"github.com/anthropics/ascalekit/pkg/scale"
	"github.com/anthropics/ascalekit/pkg/theory"
)

// Sharp-side pitch class names for the piano row and transposition
var pitchNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Model is the main TUI model
type Model struct {
	// Query state
	Query   string
	TypeIdx int // Index into scale.Types() for type cycling

	// Resolved scale data
	Scale    scale.Scale
	Modes    []scale.Mode
	Steps    []string
	Chords   []string
	Extended []string
	Reduced  []string

	// Audio
	Seq      *audio.Sequencer
	Realtime *audio.RealtimeOutput
	AudioErr string

	// View state
	Width    int
	Height   int
	ShowHelp bool
}

// NewModel creates a TUI model resolved at an initial query
func NewModel(query string) Model {
	if query == "" {
		query = "C major"
	}
	m := Model{
		Query:  query,
		Width:  100,
		Height: 32,
		Seq:    audio.NewSequencer(44100, audio.WaveSine),
	}
	m.resolve()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		if m.Realtime != nil {
			m.Realtime.Close()
		}
		return m, tea.Quit

	case "f1":
		m.ShowHelp = !m.ShowHelp

	case "backspace":
		if len(m.Query) > 0 {
			m.Query = m.Query[:len(m.Query)-1]
			m.resolve()
		}

	case "enter":
		m.resolve()

	case "up":
		m.cycleType(-1)

	case "down":
		m.cycleType(1)

	case "left":
		m.transpose(-1)

	case "right":
		m.transpose(1)

	case "ctrl+p":
		m.audition()

	case "ctrl+s":
		if m.Seq != nil {
			m.Seq.Stop()
		}

	default:
		if len(msg.String()) == 1 {
			m.Query += msg.String()
			m.resolve()
		}
	}

	return m, nil
}

// resolve recomputes every panel from the current query
func (m *Model) resolve() {
	m.Scale = scale.Get(m.Query)
	m.Modes = scale.Modes(m.Query)
	m.Steps = scale.Steps(m.Query)
	m.Chords = scale.Chords(m.Query)
	m.Extended = scale.Extended(m.Query)
	m.Reduced = scale.Reduced(m.Query)

	if m.Scale.Valid {
		for i, t := range scale.Types() {
			if t.Name == m.Scale.Type {
				m.TypeIdx = i
				break
			}
		}
	}
}

// cycleType replaces the query's type with its dictionary neighbor
func (m *Model) cycleType(dir int) {
	types := scale.Types()
	m.TypeIdx = (m.TypeIdx + dir + len(types)) % len(types)
	tonic, _ := theory.Tokenize(m.Query)
	name := types[m.TypeIdx].Name
	if tonic != "" {
		name = tonic + " " + name
	}
	m.Query = name
	m.resolve()
}

// transpose moves the tonic by semitones, defaulting to C when unrooted
func (m *Model) transpose(by int) {
	tonic, typeName := theory.Tokenize(m.Query)
	if typeName == "" {
		return
	}
	pc := 0
	if n := theory.ParseNote(tonic); n.Valid {
		pc = n.Chroma
	}
	pc = ((pc+by)%12 + 12) % 12
	m.Query = pitchNames[pc] + " " + typeName
	m.resolve()
}

// audition plays the scale up one octave and back down
func (m *Model) audition() {
	if m.Seq == nil {
		return
	}
	if m.Realtime == nil {
		rt, err := audio.NewRealtimeOutput(m.Seq)
		if err != nil {
			m.AudioErr = err.Error()
			return
		}
		m.Realtime = rt
	}
	m.Seq.Play(auditionNotes(m.Scale), 280*time.Millisecond)
}

// auditionNotes maps a scale onto MIDI numbers, octave 4 by default,
// closing on the upper octave and walking back down
func auditionNotes(s scale.Scale) []int {
	if !s.Valid {
		return nil
	}
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

// View implements tea.Model
func (m Model) View() string {
	if m.ShowHelp {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.queryView())
	b.WriteString("\n\n")
	b.WriteString(m.scaleView())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("14")).
		Render("ASCALEKIT")

	status := ""
	if m.Seq != nil && m.Seq.Playing() {
		status = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(" │ PLAYING")
	}
	if m.AudioErr != "" {
		status = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(" │ audio: " + m.AudioErr)
	}
	return title + " │ scale explorer" + status
}

func (m Model) queryView() string {
	prompt := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render("scale> ")
	cursor := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("_")
	return prompt + m.Query + cursor
}

func (m Model) scaleView() string {
	if !m.Scale.Valid {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).
			Render("  unknown scale type")
	}

	label := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	var b strings.Builder
	name := m.Scale.Name
	if len(m.Scale.Aliases) > 0 {
		name += "  (" + strings.Join(m.Scale.Aliases, ", ") + ")"
	}
	b.WriteString("  " + lipgloss.NewStyle().Bold(true).Render(name) + "\n\n")

	if len(m.Scale.Notes) > 0 {
		b.WriteString(label.Render("  notes    ") + value.Render(strings.Join(m.Scale.Notes, " ")) + "\n")
	} else {
		intervals := make([]string, len(m.Scale.Intervals))
		for i, iv := range m.Scale.Intervals {
			intervals[i] = iv.Name
		}
		b.WriteString(label.Render("  degrees  ") + value.Render(strings.Join(intervals, " ")) + "\n")
	}
	b.WriteString(label.Render("  steps    ") + value.Render(strings.Join(m.Steps, " ")) + "\n")
	b.WriteString(label.Render("  chroma   ") + value.Render(fmt.Sprintf("%s (%d)", m.Scale.Set.Chroma(), m.Scale.Set.Num())) + "\n\n")

	b.WriteString(m.pianoView() + "\n\n")

	if len(m.Modes) > 0 {
		b.WriteString(label.Render("  modes    "))
		parts := make([]string, len(m.Modes))
		for i, mode := range m.Modes {
			parts[i] = mode.Tonic + " " + mode.Name
		}
		b.WriteString(value.Render(strings.Join(parts, " · ")) + "\n")
	}
	if len(m.Chords) > 0 {
		b.WriteString(label.Render("  chords   ") + value.Render(strings.Join(m.Chords, ", ")) + "\n")
	}
	if len(m.Extended) > 0 {
		b.WriteString(label.Render("  extended ") + value.Render(joinCapped(m.Extended, 6)) + "\n")
	}
	if len(m.Reduced) > 0 {
		b.WriteString(label.Render("  reduced  ") + value.Render(joinCapped(m.Reduced, 6)) + "\n")
	}
	return b.String()
}

// pianoView renders one octave with the scale's pitch classes lit
func (m Model) pianoView() string {
	on := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")).Bold(true)
	off := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder
	b.WriteString("  ")
	for pc, name := range pitchNames {
		cell := fmt.Sprintf(" %-2s", name)
		if m.Scale.Set.Has(pc) {
			b.WriteString(on.Render(cell))
		} else {
			b.WriteString(off.Render(cell))
		}
	}
	return b.String()
}

func joinCapped(names []string, max int) string {
	if len(names) <= max {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:max], ", ") + fmt.Sprintf(" … +%d more", len(names)-max)
}

func (m Model) footerView() string {
	keys := " [↑↓]Type [←→]Transpose [^P]Play [^S]Stop [F1]Help [Esc]Quit"
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(keys)
}

func (m Model) helpView() string {
	help := `
╔══════════════════════════════════════════════════════════════════╗
║                       ASCALEKIT HELP                             ║
╠══════════════════════════════════════════════════════════════════╣
║ QUERY                                                            ║
║   Type a tonic and scale name, e.g.  C major,  eb minor blues,   ║
║   f# lydian, dorian (no tonic shows the interval shape).         ║
║   Names, aliases, chroma strings and fingerprints all work.      ║
║                                                                  ║
║ NAVIGATION                                                       ║
║   ↑ ↓       Cycle through scale types                            ║
║   ← →       Transpose the tonic by a semitone                    ║
║   Enter     Re-evaluate the query                                ║
║                                                                  ║
║ AUDIO                                                            ║
║   Ctrl+P    Play the scale up and down                           ║
║   Ctrl+S    Stop playback                                        ║
║                                                                  ║
║                              [F1] Close help                     ║
╚══════════════════════════════════════════════════════════════════╝
`
	return lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(help)
}
