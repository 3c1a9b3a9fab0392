package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avorobev/breakout-tui/internal/auth"
)

// Scoreboard layout constants.
const (
	maxEntries = 100 // Max rows to load per view
)

// scoreboardView selects which leaderboard is displayed.
type scoreboardView int

const (
	viewPlayers scoreboardView = iota // Best score per user
	viewRuns                         // Individual run history
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Switch, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "players/runs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
type ScoreboardModel struct {
	store    *auth.Store
	view     scoreboardView
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *auth.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		view:   viewPlayers,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadRows()

	return m
}

// createTable creates a new table with columns for the current view.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	if m.view == viewPlayers {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 20},
			{Title: "High Score", Width: 12},
			{Title: "Joined", Width: 14},
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 20},
			{Title: "Score", Width: 10},
			{Title: "Level", Width: 6},
			{Title: "Date", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, margins
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

// loadRows fills the table with rows for the current view.
func (m *ScoreboardModel) loadRows() {
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	var rows []table.Row
	if m.view == viewPlayers {
		players, err := m.store.TopPlayers(maxEntries)
		if err == nil {
			rows = make([]table.Row, len(players))
			for i, p := range players {
				rows[i] = table.Row{
					fmt.Sprintf("#%d", i+1),
					p.Username,
					fmt.Sprintf("%d", p.HighScore),
					p.CreatedAt.Format("Jan 02 2006"),
				}
			}
		}
	} else {
		runs, err := m.store.TopRuns(maxEntries)
		if err == nil {
			rows = make([]table.Row, len(runs))
			for i, r := range runs {
				rows[i] = table.Row{
					fmt.Sprintf("#%d", i+1),
					r.Username,
					fmt.Sprintf("%d", r.Score),
					fmt.Sprintf("%d", r.Level),
					r.CreatedAt.Format("Jan 02 15:04"),
				}
			}
		}
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == viewPlayers {
				m.view = viewRuns
			} else {
				m.view = viewPlayers
			}
			m.table = m.createTable()
			m.loadRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "TOP PLAYERS"
	if m.view == viewRuns {
		title = "RECENT BEST RUNS"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := m.table.View()
	if len(m.table.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	b.WriteString(centerText(tableStyle.Render(content), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// centerText centers a (possibly multi-line) block within the given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunScoreboard runs the leaderboard screen until the user quits.
func RunScoreboard(store *auth.Store, width, height int) error {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
