// Package platformer adapts the deterministic platformer simulation to the
// terminal host. Every playable level is registered as its own game.
package platformer

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pixel-dash/internal/config"
	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/games/platformer/levels"
	"github.com/vovakirdan/pixel-dash/internal/games/platformer/sim"
	"github.com/vovakirdan/pixel-dash/internal/registry"
)

// Game implements registry.Game for one level.
type Game struct {
	level   levels.Level
	session *sim.Session
	runtime core.RuntimeConfig
	err     error // why the session could not be built
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// LoadTuning loads the configured tuning with the difficulty preset applied.
func LoadTuning() (sim.Tuning, error) {
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		return sim.Tuning{}, err
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	t := TuningFromConfig(cfg)
	if err := t.Validate(); err != nil {
		return sim.Tuning{}, fmt.Errorf("config: %w", err)
	}
	return t, nil
}

// TuningFromConfig converts the YAML config into simulation constants.
func TuningFromConfig(cfg config.PlatformerConfig) sim.Tuning {
	return sim.Tuning{
		PlayerSpeed:      cfg.Player.Speed,
		Gravity:          cfg.Physics.Gravity,
		JumpSpeed:        cfg.Physics.JumpSpeed,
		TerminalVelocity: cfg.Physics.TerminalVelocity,
		CoyoteTime:       cfg.Player.CoyoteTime,
		JumpBuffer:       cfg.Player.JumpBuffer,
		JumpCutThreshold: cfg.Physics.JumpCutThreshold,
		JumpCutFactor:    cfg.Physics.JumpCutFactor,
		PlayerWidth:      cfg.Player.Width,
		PlayerHeight:     cfg.Player.Height,

		EnemySpeed:  cfg.Enemy.Speed,
		EnemyWidth:  cfg.Enemy.Width,
		EnemyHeight: cfg.Enemy.Height,
		StompBounce: cfg.Enemy.StompBounce,
		StompScore:  cfg.Scoring.Stomp,

		CoinSize:  cfg.Coin.Size,
		CoinScore: cfg.Scoring.Coin,

		DeathDuration: cfg.Timing.DeathDuration,
		FallMargin:    cfg.Timing.FallMargin,

		CameraLerp:    cfg.Camera.Lerp,
		ViewportWidth: cfg.Camera.ViewportWidth,

		FixedStep:    cfg.Timing.FixedStep,
		MaxSubsteps:  cfg.Timing.MaxSubsteps,
		MaxFrameTime: cfg.Timing.MaxFrameTime,
	}
}

// Preflight checks that a level can be simulated with the configured tuning.
func Preflight(lvl levels.Level) error {
	t, err := LoadTuning()
	if err != nil {
		return err
	}
	if _, err := sim.NewSession(lvl.Level, t); err != nil {
		return fmt.Errorf("level %s: %w", lvl.ID, err)
	}
	return nil
}

// New creates a game for the given level.
func New(lvl levels.Level) *Game {
	return &Game{level: lvl}
}

// ID returns the level ID.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level name.
func (g *Game) Title() string {
	return g.level.Name
}

// Err reports why the last Reset could not build a session, if it failed.
func (g *Game) Err() error {
	return g.err
}

// Reset rebuilds the session for the screen size and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	t, err := LoadTuning()
	if err != nil {
		t = sim.DefaultTuning()
	}
	if vw := viewportWidth(g.level.Grid.CellSize(), runtime.ScreenW); vw > 0 {
		t.ViewportWidth = vw
	}

	s, err := sim.NewSession(g.level.Level, t)
	if err != nil {
		g.err = err
		g.session = nil
		return
	}
	g.session = s
	g.err = nil
}

// Resize adapts the camera to a new screen without restarting the run.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.session == nil {
		return
	}
	if vw := viewportWidth(g.level.Grid.CellSize(), width); vw > 0 {
		g.session.SetViewportWidth(vw)
	}
}

// Frame advances the simulation by the real time elapsed since the last frame.
func (g *Game) Frame(elapsed time.Duration, in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	steps := g.session.Frame(elapsed.Seconds(), in)
	return core.StepResult{
		State:    g.State(),
		Substeps: steps,
		Events:   convertEvents(g.session.DrainEvents()),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Phase: "error"}
	}
	snap := g.session.Snapshot()
	return core.GameState{
		Phase:      snap.State.String(),
		Score:      snap.Score,
		Coins:      snap.CoinsCollected,
		TotalCoins: snap.TotalCoins,
		PlayTime:   seconds(snap.PlayTime),
		Over:       snap.State == sim.StateGameOver,
		Won:        snap.State == sim.StateWin,
	}
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() (sim.Snapshot, bool) {
	if g.session == nil {
		return sim.Snapshot{}, false
	}
	return g.session.Snapshot(), true
}

func convertEvents(events []sim.Event) []core.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.Event, len(events))
	for i, e := range events {
		detail := ""
		switch e.Kind {
		case sim.EventDeath:
			detail = e.Cause.String()
		case sim.EventCoin, sim.EventStomp:
			detail = fmt.Sprintf("#%d", e.Index)
		}
		out[i] = core.Event{
			Kind:   e.Kind.String(),
			Detail: detail,
			Tick:   e.Tick,
			X:      e.X,
			Y:      e.Y,
		}
	}
	return out
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// RegisterLevels registers each level as a game. Levels whose ID is already
// registered replace the earlier entry. It returns the IDs that replaced one.
func RegisterLevels(lvls []levels.Level) []string {
	var replaced []string
	for _, lvl := range lvls {
		if registry.Replace(lvl.ID, func() registry.Game { return New(lvl) }) {
			replaced = append(replaced, lvl.ID)
		}
	}
	return replaced
}

// Register the built-in levels with the registry
func init() {
	builtin, err := levels.Builtin()
	if err != nil {
		panic(fmt.Sprintf("platformer: %v", err))
	}
	for _, lvl := range builtin {
		registry.Register(lvl.ID, func() registry.Game {
			return New(lvl)
		})
	}
}
