package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-dash/internal/config"
	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/registry"
	"github.com/vovakirdan/pixel-dash/internal/storage"
)

// footerRows is the number of terminal rows reserved for the help line.
const footerRows = 1

// Options configures a play screen.
type Options struct {
	Store  *storage.Store // nil disables run history
	Logger *log.Logger    // nil uses the default logger
	Player string         // recorded with each run, e.g. the SSH user
	// Standalone makes Back quit the program instead of returning to a menu.
	Standalone bool
}

// errReporter is implemented by games that can fail to build their level.
type errReporter interface {
	Err() error
}

// Model is the Bubble Tea model for playing one level.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	player   string
	config   core.RuntimeConfig
	keys     GameKeyMap
	help     help.Model
	input    *core.InputCollector
	state    core.GameState
	lastTick time.Time

	deathCause string // detail of the last death event of the run
	standalone bool
	paused     bool
	quitting   bool
	backToMenu bool
	runSaved   bool // whether the finished run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:      opts.Store,
		logger:     logger,
		player:     opts.Player,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       h,
		input:      core.NewInputCollector(),
		standalone: opts.Standalone,
	}
}

// playHeight is the number of rows left for the game above the help line.
func playHeight(h int) int {
	return max(1, h-footerRows)
}

// gameConfig is the runtime config the game sees.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	if r, ok := m.game.(errReporter); ok && r.Err() != nil {
		m.logger.Error("level unavailable", "level", m.game.ID(), "error", r.Err())
	} else {
		m.logger.Info("level loaded", "level", m.game.ID(), "title", m.game.Title())
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		// Key repeats stop arriving while unfocused
		m.input.ReleaseAll()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.togglePause()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.standalone {
			m.quitting = true
		} else {
			m.backToMenu = true
		}
		return m, tea.Quit
	}

	if m.paused {
		return m, nil
	}

	if a := m.keys.ActionFor(msg); a != core.ActionNone {
		m.input.Press(a, time.Now())
	}

	return m, nil
}

// togglePause freezes or resumes frame delivery. The game never sees the
// paused wall time.
func (m *Model) togglePause() {
	m.paused = !m.paused
	m.lastTick = time.Time{}
	m.input.ReleaseAll()
	if m.paused {
		m.logger.Debug("paused", "level", m.game.ID())
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	// Resizers keep the current run; others restart at the title screen
	if r, ok := m.game.(core.Resizer); ok {
		r.Resize(msg.Width, playHeight(msg.Height))
	} else if !m.state.Finished() {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick runs one display frame worth of simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Frame(elapsed, m.input.Frame(now))
	// Edges are only consumed once a substep has observed them
	if result.Substeps > 0 {
		m.input.Consume()
	}

	m.logEvents(result.Events)
	m.state = result.State

	if m.state.Finished() {
		if !m.runSaved {
			m.saveRun()
		}
	} else {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// logEvents writes the frame's simulation events to the log.
func (m *Model) logEvents(events []core.Event) {
	for _, e := range events {
		kv := []any{"level", m.game.ID(), "tick", e.Tick, "x", int(e.X), "y", int(e.Y)}
		if e.Detail != "" {
			kv = append(kv, "detail", e.Detail)
		}

		switch e.Kind {
		case "jump", "land":
			m.logger.Debug(e.Kind, kv...)
		case "death":
			m.deathCause = e.Detail
			m.logger.Info(e.Kind, kv...)
		case "reset":
			m.deathCause = ""
			m.logger.Info("run started", kv...)
		default:
			m.logger.Info(e.Kind, kv...)
		}
	}
}

// saveRun records the finished run once.
func (m *Model) saveRun() {
	m.runSaved = true

	outcome := storage.OutcomeGameOver
	if m.state.Won {
		outcome = storage.OutcomeWin
	}
	m.logger.Info("run finished",
		"level", m.game.ID(),
		"outcome", outcome,
		"score", m.state.Score,
		"coins", m.state.Coins,
		"time", m.state.PlayTime.Round(time.Millisecond),
	)

	if m.store == nil {
		return
	}

	rec := storage.RunRecord{
		LevelID:    m.game.ID(),
		Player:     m.player,
		Outcome:    outcome,
		Score:      m.state.Score,
		Coins:      m.state.Coins,
		TotalCoins: m.state.TotalCoins,
		PlayTime:   m.state.PlayTime,
	}
	if !m.state.Won {
		rec.DeathCause = m.deathCause
	}
	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Warn("could not save run", "level", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(config.HomeDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	footer := footerStyle.Render(m.help.View(m.keys))
	if m.paused {
		footer = pausedStyle.Render(" PAUSED ") + " " + footer
	}

	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the last game state seen by the host.
func (m Model) State() core.GameState {
	return m.state
}

// Paused reports whether frame delivery is frozen.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single level.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.Standalone = true
	_, err := RunLevel(game, cfg, opts)
	return err
}

// RunLevel plays a level until the user quits or goes back, and returns the
// final model so a caller can tell the two apart.
func RunLevel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return model, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return model, nil
	}
	return m, nil
}
