package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/audio"
	"github.com/vovakirdan/skyraid/internal/backdrop"
	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/logging"
	"github.com/vovakirdan/skyraid/internal/registry"
	"github.com/vovakirdan/skyraid/internal/storage"
)

// Resizer is told about terminal size changes. The backdrop pipeline
// uses it to size the frames it prepares.
type Resizer interface {
	Resize(width, height int)
}

// Options wires platform services into a game model. Zero values are
// valid: no storage, no sound, no backdrop.
type Options struct {
	Store       *storage.Store
	Audio       audio.Sink
	Frames      <-chan backdrop.Frame
	Resizer     Resizer
	ScrollSpeed float64 // backdrop rows per tick
	HoldMs      int64   // how long a key press stays held
	Player      string
	RunID       string
	Logger      *log.Logger
	Embedded    bool // inside a session menu: esc after game over goes back
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	hold      *HoldTracker
	clock     core.Clock
	scroller  *backdrop.Scroller
	resizer   Resizer
	audio     audio.Sink
	logger    *log.Logger
	player    string
	runID     string
	embedded  bool

	gameState  core.GameState
	ticks      int
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	clock := core.NewSystemClock()
	if cfg.Clock == nil {
		cfg.Clock = clock
	}

	sink := opts.Audio
	if sink == nil {
		sink = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     opts.Store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		hold:      NewHoldTracker(opts.HoldMs),
		clock:     clock,
		scroller:  backdrop.NewScroller(opts.Frames, opts.ScrollSpeed),
		resizer:   opts.Resizer,
		audio:     sink,
		logger:    logger,
		player:    opts.Player,
		runID:     opts.RunID,
		embedded:  opts.Embedded,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.audio.StartMusic()
	m.logger.Info("round started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.audio.StopMusic()
		return m, tea.Quit
	}

	if action == core.ActionBack && m.embedded && m.gameState.GameOver {
		m.backToMenu = true
		return m, nil
	}

	m.hold.Press(action, m.clock.NowMs())
	return m, nil
}

// handleResize processes window resize events. The world is measured in
// its own units, so the round carries on at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if m.resizer != nil {
		m.resizer.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.hold.Frame(m.clock.NowMs()))
	m.gameState = result.State
	m.ticks++
	audio.PlayEvents(m.audio, result.Events)

	if result.Has(core.EventRestart) {
		m.logger.Info("round restarted", "game", m.game.ID())
		m.scoreSaved = false
		m.ticks = 0
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score, "ticks", m.ticks)
		if m.store != nil && m.gameState.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(storage.Run{
				GameID: m.game.ID(),
				Player: m.player,
				Score:  m.gameState.Score,
				Ticks:  m.ticks,
				RunID:  m.runID,
			})
		}
		m.scoreSaved = true
	}

	m.scroller.Tick(m.screen.Height())
	return m, tickCmd(m.config.TickRate)
}

// compose draws the backdrop and then the game into the screen buffer.
func (m *Model) compose() {
	m.screen.Clear()
	m.scroller.Draw(m.screen)
	m.game.Render(m.screen)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.compose()

	dir := filepath.Join(os.Getenv("HOME"), ".skyraid", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.compose()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
