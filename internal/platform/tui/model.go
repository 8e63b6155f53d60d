package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vkulagin/mazehunt/internal/core"
	"github.com/vkulagin/mazehunt/internal/registry"
	"github.com/vkulagin/mazehunt/internal/storage"
)

// renderRate is the display frame rate. Simulation ticks are decoupled
// from it through the accumulator.
const renderRate = 30

// highScorer is implemented by games whose high score the platform seeds
// from storage and persists back on improvement.
type highScorer interface {
	SetHighScore(int)
	HighScore() int
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	acc        *Accumulator
	keys       *KeyMapper
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState

	persistedHigh int  // Highest score already written to storage
	runSaved      bool // Whether the finished run's score row has been saved
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := &Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		acc:        NewAccumulator(cfg.TickRate),
		keys:       NewKeyMapper(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}

	m.game.Reset(cfg)
	m.seedHighScore()
	return m
}

// seedHighScore reads the persisted high score into the game for display.
func (m *Model) seedHighScore() {
	if m.store == nil {
		return
	}
	hs, ok := m.game.(highScorer)
	if !ok {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "game", m.game.ID(), "error", err)
		return
	}
	hs.SetHighScore(best)
	m.persistedHigh = best
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return frameCmd(renderRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse forwards pointer intent to the input frame.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	mapper, _ := m.game.(PointerMapper)
	m.keys.MapMouseToFrame(msg, mapper, &m.inputFrame)
}

// handleResize processes window resize events.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleFrame advances the simulation by however many fixed ticks this
// render frame owes, then persists score outcomes.
func (m *Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	steps := m.acc.Advance(now)
	for i := 0; i < steps; i++ {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
	}
	m.inputFrame.Clear()

	m.persistOutcomes()

	return m, frameCmd(renderRate)
}

// persistOutcomes writes the high score as soon as it is beaten and the
// run's score row once per game over.
func (m *Model) persistOutcomes() {
	if m.store == nil {
		return
	}

	// The game raises its own high score the moment the session score
	// passes it; mirror every improvement to storage immediately.
	if hs, ok := m.game.(highScorer); ok {
		if best := hs.HighScore(); best > m.persistedHigh {
			if err := m.store.SetHighScore(m.game.ID(), best); err != nil {
				m.logger.Warn("could not persist high score", "error", err)
			}
			m.persistedHigh = best
		}
	}

	if m.gameState.Phase == core.PhaseGameOver {
		if !m.runSaved && m.gameState.Score > 0 {
			if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				m.logger.Warn("could not save score", "error", err)
			}
			m.runSaved = true
		}
		return
	}
	// Any non-game-over phase means a new run is in progress (or pending),
	// so the next game over saves a fresh row.
	m.runSaved = false
}

// View renders the current game state.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the game in the terminal.
func Run(g registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	m := NewModel(g, store, cfg, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
