package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seabattle/internal/games/seabattle"
	"github.com/vovakirdan/seabattle/internal/platform/console"
)

// logLines is how many recent messages the match screen keeps.
const logLines = 8

// EventMsg carries a match event into the Bubble Tea loop.
type EventMsg struct {
	Event seabattle.Event
}

// MatchDoneMsg is sent once the match goroutine has returned.
type MatchDoneMsg struct {
	Err error
}

// Model is the Bubble Tea model for a running match. The match itself runs on
// another goroutine; the model only renders its events and hands typed lines
// to it.
type Model struct {
	ctx       context.Context
	cancel    context.CancelFunc
	lines     *console.Lines
	theme     Theme
	keys      MatchKeyMap
	help      help.Model
	input     textinput.Model
	boards    *seabattle.BoardsEvent
	log       []string
	prompting bool
	quitting  bool
	width     int
}

// NewModel creates a match screen feeding lines. cancel is called when the
// player quits and must stop the match reading from lines.
func NewModel(ctx context.Context, cancel context.CancelFunc, lines *console.Lines, theme Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "x y"
	ti.Prompt = console.Prompt
	ti.CharLimit = 16
	ti.Width = 10
	ti.Focus()

	return Model{
		ctx:    ctx,
		cancel: cancel,
		lines:  lines,
		theme:  theme,
		keys:   DefaultMatchKeyMap(),
		help:   help.New(),
		input:  ti,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case MatchDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Fire):
		if !m.prompting {
			return m, nil
		}
		line := m.input.Value()
		m.input.Reset()
		m.prompting = false
		m.addLog("> " + line)
		return m, m.sendLine(line)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// sendLine delivers line to the match off the Bubble Tea goroutine.
func (m Model) sendLine(line string) tea.Cmd {
	lines, ctx := m.lines, m.ctx
	return func() tea.Msg {
		//nolint:errcheck // Fails only once the match is over
		lines.Send(ctx, line)
		return nil
	}
}

// handleEvent folds a match event into the screen state.
func (m *Model) handleEvent(ev seabattle.Event) {
	switch e := ev.(type) {
	case seabattle.BoardsEvent:
		m.boards = &e
	case seabattle.PromptEvent:
		m.prompting = true
	default:
		if text := console.Message(ev); text != "" {
			m.addLog(text)
		}
	}
}

func (m *Model) addLog(text string) {
	m.log = append(m.log, text)
	if len(m.log) > logLines {
		m.log = m.log[len(m.log)-logLines:]
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.Title.Render(centerText("SEA BATTLE", m.width)))
	b.WriteString("\n\n")

	if m.boards != nil {
		b.WriteString(renderBoards(*m.boards, m.theme))
		b.WriteString("\n\n")
	}

	for i, text := range m.log {
		style := m.theme.Log
		if i == len(m.log)-1 {
			style = m.theme.LogLatest
		}
		b.WriteString(style.Render(text))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.prompting {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.theme.Log.Render("Opponent is thinking..."))
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}
