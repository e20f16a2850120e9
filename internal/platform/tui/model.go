package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gemsnake/internal/core"
	"github.com/vovakirdan/gemsnake/internal/registry"
	"github.com/vovakirdan/gemsnake/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game at a fixed tick rate.
// It is used directly by the play command and embedded in menu and SSH sessions.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger
	quitting   bool
	backToMenu bool
	saved      bool // Whether the current game over has been recorded
}

// NewGameModel creates a model for the given game. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		logger:     logger,
	}
}

// Init seeds the record from history, starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	if rec, ok := m.game.(registry.Recorder); ok && m.store != nil {
		if n, err := m.store.LongestSnake(m.game.ID()); err != nil {
			m.logger.Warn("cannot load record length", "err", err)
		} else {
			rec.SetRecord(n)
		}
	}
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game re-checks its size on every Render; no reset needed.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu is only offered while the round is stopped.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.saved:
		m.recordRound()
		m.saved = true
	case !m.gameState.GameOver:
		m.saved = false // restarted
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRound saves the final score and, when available, the round summary.
func (m GameModel) recordRound() {
	if m.store == nil {
		return
	}
	id := m.game.ID()
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(id, m.gameState.Score); err != nil {
			m.logger.Warn("cannot save score", "err", err)
		}
	}
	if s, ok := m.game.(registry.Summarizer); ok {
		sum := s.Summary()
		if _, err := m.store.SaveRound(id, sum); err != nil {
			m.logger.Warn("cannot save round", "err", err)
			return
		}
		m.logger.Info("round saved",
			"destroyed", sum.Destroyed,
			"chain", sum.BiggestChain,
			"length", sum.Length,
			"reason", sum.Reason)
	}
}

// saveScreenshot saves the current screen to ~/.gemsnake/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".gemsnake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// standaloneModel quits instead of going back to a menu.
type standaloneModel struct {
	GameModel
}

func (m standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.GameModel.Update(msg)
	m.GameModel = next.(GameModel)
	if m.BackToMenu() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := standaloneModel{NewGameModel(game, store, cfg, logger)}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
