package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seabattle/internal/storage"
)

// maxMatches is how many matches the history browser loads.
const maxMatches = 100

// HistoryModel is the Bubble Tea model for browsing recorded matches. It
// shows the match list, and the shots of one match after Open.
type HistoryModel struct {
	store    *storage.Store
	matches  []storage.MatchRecord
	shots    []storage.ShotRecord
	open     string // Match ID whose shots are shown, empty for the list
	err      error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history browser over store.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.matches, m.err = store.RecentMatches(maxMatches)
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a table with the columns of the current view.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	if m.open == "" {
		columns = []table.Column{
			{Title: "Match", Width: 10},
			{Title: "Date", Width: 14},
			{Title: "UI", Width: 8},
			{Title: "Rounds", Width: 7},
			{Title: "Shots", Width: 7},
			{Title: "Ended", Width: 14},
		}
	} else {
		columns = []table.Column{
			{Title: "#", Width: 5},
			{Title: "Side", Width: 10},
			{Title: "Target", Width: 8},
			{Title: "Result", Width: 10},
		}
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded matches or shots.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	if m.open == "" {
		rows = make([]table.Row, len(m.matches))
		for i, r := range m.matches {
			ended := r.EndReason
			if ended == "" {
				ended = "-"
			}
			rows[i] = table.Row{
				r.MatchID,
				r.CreatedAt.Format("Jan 02 15:04"),
				r.Frontend,
				fmt.Sprintf("%d", r.Rounds),
				fmt.Sprintf("%d/%d", r.HumanShots, r.AutomatedShots),
				ended,
			}
		}
	} else {
		rows = make([]table.Row, len(m.shots))
		for i, s := range m.shots {
			rows[i] = table.Row{
				fmt.Sprintf("%d", s.Seq),
				s.Side,
				fmt.Sprintf("(%d, %d)", s.X, s.Y),
				ShotOutcome(s),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// ShotOutcome describes a recorded shot as miss, hit or sunk.
func ShotOutcome(s storage.ShotRecord) string {
	switch {
	case s.Sunk:
		return "sunk"
	case s.Hit:
		return "hit"
	default:
		return "miss"
	}
}

// openMatch switches to the shots of the selected match.
func (m *HistoryModel) openMatch() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.matches) {
		return
	}
	id := m.matches[i].MatchID
	shots, err := m.store.MatchShots(id)
	if err != nil {
		m.err = err
		return
	}
	m.open, m.shots = id, shots
	m.table = m.createTable()
	m.updateTableRows()
}

// closeMatch returns to the match list.
func (m *HistoryModel) closeMatch() {
	m.open, m.shots = "", nil
	m.table = m.createTable()
	m.updateTableRows()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.open == "" {
				m.quitting = true
				return m, tea.Quit
			}
			m.closeMatch()
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if m.open == "" {
				m.openMatch()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "MATCH HISTORY"
	if m.open != "" {
		title = fmt.Sprintf("MATCH %s", m.open)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	empty := ""
	switch {
	case m.open == "" && len(m.matches) == 0:
		empty = "No matches recorded yet.\nRun 'seabattle play' to start one!"
	case m.open != "" && len(m.shots) == 0:
		empty = "No shots were fired in this match."
	}
	if empty != "" {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render(empty)
	}

	return m.table.View()
}

// RunHistory runs the history browser until the player quits.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
