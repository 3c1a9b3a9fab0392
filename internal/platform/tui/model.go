package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avorobev/breakout-tui/internal/audio"
	"github.com/avorobev/breakout-tui/internal/auth"
	"github.com/avorobev/breakout-tui/internal/breakout"
	"github.com/avorobev/breakout-tui/internal/core"
)

// Model is the Bubble Tea model for a game session: login form, menus and
// the game loop.
type Model struct {
	game        *breakout.Game
	screen      *core.Screen
	store       *auth.Store
	sound       *audio.Manager
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	login       loginForm
	focused     bool
	quitting    bool
	runRecorded bool // Whether the run has been recorded for current game over
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(game *breakout.Game, store *auth.Store, sound *audio.Manager, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		login:      newLoginForm(),
		focused:    true,
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(m.login.Init(), tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.FocusMsg:
		m.focused = true
		return m, nil

	case tea.BlurMsg:
		// Simulation suspends while unfocused; rendering continues.
		m.focused = false
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.game.Phase() == breakout.PhaseMainMenu {
		// Login form owns the keyboard; only ctrl+c quits here since
		// letters are being typed.
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg, m.game)
		return m, cmd
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.focused || m.game.Phase() == breakout.PhaseMainMenu {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.sound != nil {
		for _, ev := range result.Events {
			m.sound.Play(ev)
		}
	}

	// Record run history on game over (once)
	if m.gameState.GameOver && !m.runRecorded {
		if m.store != nil && m.game.Username() != "" {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.RecordRun(m.game.Username(), m.gameState.Score, m.gameState.Level)
		}
		m.runRecorded = true
	}
	if !m.gameState.GameOver {
		m.runRecorded = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.game.Phase() == breakout.PhaseMainMenu {
		return m.login.View(m.config.ScreenW, m.config.ScreenH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(game *breakout.Game, store *auth.Store, sound *audio.Manager, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),    // Use alternate screen buffer
		tea.WithReportFocus(),  // Needed to suspend simulation on blur
	)

	_, err := p.Run()
	return err
}
