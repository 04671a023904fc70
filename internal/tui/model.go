package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/viralsweeper/internal/sweeper"
)

const (
	gridTop   = 2 // title and a blank line above the grid
	cellWidth = 2

	defeatMessage  = "You have been infected!"
	victoryMessage = "You have won!"
)

// SessionFactory starts a fresh game.
type SessionFactory func() (*sweeper.Session, error)

// Model renders snapshots of a session and forwards clicks to it. Flags
// only live here; the session never sees them.
type Model struct {
	newSession SessionFactory
	session    *sweeper.Session
	view       sweeper.View
	flags      map[sweeper.Point]bool
	cursor     sweeper.Point

	keys KeyMap
	help help.Model
	log  logrus.FieldLogger

	err error
}

func New(newSession SessionFactory, log logrus.FieldLogger) (Model, error) {
	m := Model{
		newSession: newSession,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		log:        log,
	}
	if err := m.restart(); err != nil {
		return Model{}, err
	}
	m.cursor = sweeper.Point{Row: m.view.Size / 2, Col: m.view.Size / 2}
	return m, nil
}

func (m *Model) restart() error {
	s, err := m.newSession()
	if err != nil {
		return fmt.Errorf("unable to start a new game: %w", err)
	}
	m.session = s
	m.view = s.Snapshot()
	m.flags = make(map[sweeper.Point]bool)
	m.log.WithField("session", s.ID()).Info("new game")
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		p, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = p
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.reveal()
		case tea.MouseButtonRight:
			m.toggleFlag()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1, 0)
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(0, -1)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(0, 1)
		case key.Matches(msg, m.keys.Reveal):
			m.reveal()
		case key.Matches(msg, m.keys.Flag):
			m.toggleFlag()
		case key.Matches(msg, m.keys.New):
			if err := m.restart(); err != nil {
				m.err = err
				m.log.WithError(err).Error("restart failed")
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *Model) moveCursor(dRow, dCol int) {
	last := m.view.Size - 1
	m.cursor.Row = min(max(m.cursor.Row+dRow, 0), last)
	m.cursor.Col = min(max(m.cursor.Col+dCol, 0), last)
}

func (m Model) cellAt(x, y int) (sweeper.Point, bool) {
	row, col := y-gridTop, x/cellWidth
	if row < 0 || row >= m.view.Size || col < 0 || col >= m.view.Size {
		return sweeper.Point{}, false
	}
	return sweeper.Point{Row: row, Col: col}, true
}

func (m *Model) reveal() {
	if m.view.Outcome.Terminal() || m.flags[m.cursor] {
		return
	}
	event := m.session.Click(m.cursor.Row, m.cursor.Col)
	m.view = m.session.Snapshot()
	for p := range m.flags {
		if m.view.At(p.Row, p.Col).State == sweeper.Open {
			delete(m.flags, p)
		}
	}
	if event.Terminal() {
		m.log.WithFields(logrus.Fields{
			"session": m.session.ID(),
			"outcome": event,
			"clicks":  m.view.Clicks,
		}).Info("game over")
	}
}

func (m *Model) toggleFlag() {
	if m.view.Outcome.Terminal() {
		return
	}
	if m.view.At(m.cursor.Row, m.cursor.Col).State != sweeper.Covered {
		return
	}
	if m.flags[m.cursor] {
		delete(m.flags, m.cursor)
	} else {
		m.flags[m.cursor] = true
	}
}

// Err is the error that made the program quit, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("viralsweeper"))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderGrid() string {
	rows := make([]string, m.view.Size)
	for row := range m.view.Size {
		var line strings.Builder
		for col := range m.view.Size {
			p := sweeper.Point{Row: row, Col: col}
			cell := m.renderCell(m.view.At(row, col), m.flags[p])
			if p == m.cursor && !m.view.Outcome.Terminal() {
				cell = CursorStyle.Render(cell)
			}
			line.WriteString(cell)
			line.WriteString(" ")
		}
		rows[row] = line.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(c sweeper.CellView, flagged bool) string {
	switch c.State {
	case sweeper.Open:
		if c.Count == 0 {
			return " "
		}
		return countStyle(c.Count).Render(fmt.Sprint(c.Count))
	case sweeper.Exploded:
		return ExplodedStyle.Render("X")
	case sweeper.Mine:
		if flagged {
			return FlagStyle.Render("F")
		}
		return VirusStyle.Render("@")
	default:
		if flagged {
			return FlagStyle.Render("F")
		}
		return CoveredStyle.Render("#")
	}
}

func (m Model) renderStatus() string {
	switch m.view.Outcome {
	case sweeper.Defeat:
		return DefeatStyle.Render(defeatMessage) +
			StatusBarStyle.Render("  press n for a new game")
	case sweeper.Victory:
		return VictoryStyle.Render(victoryMessage) +
			StatusBarStyle.Render("  press n for a new game")
	}
	return StatusBarStyle.Render(fmt.Sprintf(
		"viruses %d  flags %d  clicks %d",
		m.view.Hazards, len(m.flags), m.view.Clicks,
	))
}
