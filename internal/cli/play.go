package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/stickercube"
	"github.com/SeamusWaldron/stickercube/internal/render"
	"github.com/SeamusWaldron/stickercube/internal/storage"
)

var (
	playSave string
	playFrom string
)

var playCmd = &cobra.Command{
	Use:   "play [notation...]",
	Short: "Interactive cube with queued move playback",
	Long: `Open an interactive view of the cube. Type moves at the prompt and press
enter; queued moves play back one at a time, faster while more are waiting.

Any notation given on the command line is queued at start.

Usage:
  stickercube play                       # Start from solved
  stickercube play "R U R' U'"           # Watch a scramble play out
  stickercube play --save session        # Save the final state on exit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playSave, "save", "", "Save the final state under this name on exit")
	playCmd.Flags().StringVar(&playFrom, "from", "", "Start from a state file instead of a solved cube")
}

func runPlay(cmd *cobra.Command, args []string) error {
	tracker := stickercube.NewTracker()
	if playFrom != "" {
		c, history, err := startState(playFrom)
		if err != nil {
			return err
		}
		if tracker, err = stickercube.RestoreTracker(stickercube.NewState(c, history)); err != nil {
			return err
		}
	}

	model := newPlayModel(tracker, cfg.Playback.Interval, cfg.Playback.QuickInterval)
	model.styled = isTerminal(os.Stdout)
	if err := model.enqueue(strings.Join(args, " ")); err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	if playSave == "" {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewSnapshotRepository(db).Create(playSave, "", tracker.State())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", playSave, id)
	return nil
}

// playKeyMap defines the key bindings for the play view.
type playKeyMap struct {
	Submit key.Binding
	Undo   key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k playKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Undo, k.Reset, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k playKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultPlayKeyMap() playKeyMap {
	return playKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "queue moves"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

type playTickMsg time.Time

// playModel applies queued moves to a tracker one tick at a time.
type playModel struct {
	tracker       *stickercube.Tracker
	queue         []stickercube.Move
	input         textinput.Model
	keys          playKeyMap
	help          help.Model
	interval      time.Duration
	quickInterval time.Duration
	ticking       bool
	styled        bool
	err           error
	quitting      bool
}

func newPlayModel(tracker *stickercube.Tracker, interval, quickInterval time.Duration) *playModel {
	input := textinput.New()
	input.Placeholder = "R U R' U'"
	input.Prompt = "> "
	input.CharLimit = 256
	input.Focus()

	return &playModel{
		tracker:       tracker,
		input:         input,
		keys:          defaultPlayKeyMap(),
		help:          help.New(),
		interval:      interval,
		quickInterval: quickInterval,
	}
}

// enqueue parses s and appends its moves to the playback queue. In strict
// mode nothing is queued if any token is unknown.
func (m *playModel) enqueue(s string) error {
	var moves []stickercube.Move
	if cfg.Notation.Strict {
		parsed, err := stickercube.ParseMovesStrict(s)
		if err != nil {
			return err
		}
		moves = parsed
	} else {
		moves = stickercube.ParseMoves(s)
	}
	m.queue = append(m.queue, moves...)
	return nil
}

// delay is the wait before the next queued move.
func (m *playModel) delay() time.Duration {
	if len(m.queue) > 1 {
		return m.quickInterval
	}
	return m.interval
}

func (m *playModel) scheduleTick() tea.Cmd {
	if m.ticking || len(m.queue) == 0 {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.delay(), func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

func (m *playModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.scheduleTick())
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			m.err = m.enqueue(m.input.Value())
			if m.err == nil {
				m.input.Reset()
			}
			return m, m.scheduleTick()

		case key.Matches(msg, m.keys.Undo):
			// Undo is only meaningful once playback has caught up.
			if len(m.queue) == 0 {
				m.tracker.Undo()
			}
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			m.tracker.Reset()
			m.queue = nil
			m.err = nil
			return m, nil
		}

	case playTickMsg:
		m.ticking = false
		if len(m.queue) > 0 {
			m.tracker.ApplyMove(m.queue[0])
			m.queue = m.queue[1:]
		}
		return m, m.scheduleTick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("stickercube"))
	b.WriteString("\n\n")

	b.WriteString(render.Net(m.tracker.Cube().Layout(), m.styled))
	b.WriteString("\n")

	moves := m.tracker.Moves()
	status := fmt.Sprintf("Moves: %d  Queued: %d  Phase: %s", len(moves), len(m.queue), m.tracker.Phase().DisplayName())
	b.WriteString(statusStyle.Render(status))
	if m.tracker.IsSolved() {
		b.WriteString("  " + solvedStyle.Render("SOLVED"))
	}
	b.WriteString("\n")

	// Recent moves
	if len(moves) > 0 {
		start := 0
		if len(moves) > 20 {
			start = len(moves) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(stickercube.FormatMoves(moves[start:])))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}
