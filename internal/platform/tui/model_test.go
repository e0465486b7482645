package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/storage"
)

// fakeGame records what the host feeds it.
type fakeGame struct {
	id       string
	state    core.GameState
	substeps int
	events   []core.Event

	elapsed []time.Duration
	inputs  []core.InputFrame
	resets  int
	resized []int
}

func (g *fakeGame) ID() string    { return g.id }
func (g *fakeGame) Title() string { return "Fake " + g.id }
func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
}
func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "FAKE")
}
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Frame(elapsed time.Duration, in core.InputFrame) core.StepResult {
	g.elapsed = append(g.elapsed, elapsed)
	g.inputs = append(g.inputs, in)
	ev := g.events
	g.events = nil
	return core.StepResult{State: g.state, Substeps: g.substeps, Events: ev}
}
func (g *fakeGame) Resize(width, height int) {
	g.resized = append(g.resized, width, height)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestModel(g *fakeGame, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}
	m := NewModel(g, cfg, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTickMeasuresElapsed(t *testing.T) {
	g := &fakeGame{id: "fake", substeps: 1}
	m := newTestModel(g, Options{})

	t0 := time.Now()
	m = update(t, m, TickMsg(t0))
	m = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	m = update(t, m, TickMsg(t0.Add(50*time.Millisecond)))

	want := []time.Duration{0, 16 * time.Millisecond, 34 * time.Millisecond}
	if len(g.elapsed) != len(want) {
		t.Fatalf("frames = %d, want %d", len(g.elapsed), len(want))
	}
	for i, w := range want {
		if g.elapsed[i] != w {
			t.Errorf("frame %d elapsed = %v, want %v", i, g.elapsed[i], w)
		}
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}

func TestJumpEdgeKeptUntilASubstepRuns(t *testing.T) {
	g := &fakeGame{id: "fake"}
	m := newTestModel(g, Options{})

	m = update(t, m, runeKey('w'))

	now := time.Now()
	// No substep ran: the edge must survive to the next frame
	m = update(t, m, TickMsg(now))
	g.substeps = 1
	m = update(t, m, TickMsg(now.Add(10*time.Millisecond)))
	m = update(t, m, TickMsg(now.Add(20*time.Millisecond)))

	got := []bool{g.inputs[0].JumpPressed, g.inputs[1].JumpPressed, g.inputs[2].JumpPressed}
	want := []bool{true, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d JumpPressed = %v, want %v", i, got[i], want[i])
		}
	}
	if !g.inputs[2].JumpHeld {
		t.Error("jump should still be held inside the hold window")
	}
	if !g.inputs[0].StartPressed {
		t.Error("jump press should also be a start intent")
	}
}

func TestMovementKeys(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		left  bool
		right bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, true, false},
		{"a", runeKey('a'), true, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, false, true},
		{"d", runeKey('d'), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &fakeGame{id: "fake", substeps: 1}
			m := newTestModel(g, Options{})
			m = update(t, m, tt.msg)
			update(t, m, TickMsg(time.Now()))

			in := g.inputs[0]
			if in.MoveLeft != tt.left || in.MoveRight != tt.right {
				t.Errorf("input = %+v", in)
			}
		})
	}
}

func TestPauseFreezesFrames(t *testing.T) {
	g := &fakeGame{id: "fake", substeps: 1}
	m := newTestModel(g, Options{})

	t0 := time.Now()
	m = update(t, m, TickMsg(t0))
	m = update(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("expected paused")
	}

	m = update(t, m, TickMsg(t0.Add(time.Second)))
	m = update(t, m, runeKey('w')) // ignored while paused
	if len(g.elapsed) != 1 {
		t.Fatalf("frames = %d, want 1 (none while paused)", len(g.elapsed))
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg(t0.Add(5*time.Second)))
	if got := g.elapsed[len(g.elapsed)-1]; got != 0 {
		t.Errorf("first frame after resume elapsed = %v, want 0", got)
	}
	if g.inputs[len(g.inputs)-1].JumpPressed {
		t.Error("key pressed during pause leaked into the game")
	}
	if !strings.Contains(m.View(), "FAKE") {
		t.Error("view should render the game")
	}
}

func TestFinishedRunSavedOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{id: "fake-level", substeps: 1}
	m := newTestModel(g, Options{Store: store, Player: "ana"})
	now := time.Now()
	tick := func() {
		now = now.Add(16 * time.Millisecond)
		m = update(t, m, TickMsg(now))
	}

	g.state = core.GameState{Phase: "playing"}
	g.events = []core.Event{{Kind: "reset"}}
	tick()
	g.state = core.GameState{Phase: "win", Won: true, Score: 12, Coins: 4, TotalCoins: 6, PlayTime: 20 * time.Second}
	g.events = []core.Event{{Kind: "win"}}
	tick()
	tick()
	tick()

	runs, err := store.AllRuns("fake-level")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs saved = %d, want 1", len(runs))
	}
	r := runs[0]
	if !r.Won() || r.Score != 12 || r.Coins != 4 || r.TotalCoins != 6 || r.PlayTime != 20*time.Second || r.Player != "ana" {
		t.Errorf("run = %+v", r)
	}

	// A second run that ends in a death records the cause
	g.state = core.GameState{Phase: "playing"}
	g.events = []core.Event{{Kind: "reset"}}
	tick()
	g.state = core.GameState{Phase: "playing"}
	g.events = []core.Event{{Kind: "death", Detail: "enemy"}}
	tick()
	g.state = core.GameState{Phase: "game_over", Over: true, Score: 3}
	tick()
	tick()

	runs, err = store.AllRuns("fake-level")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs saved = %d, want 2", len(runs))
	}
	var lost storage.RunRecord
	for _, r := range runs {
		if !r.Won() {
			lost = r
		}
	}
	if lost.DeathCause != "enemy" || lost.Score != 3 {
		t.Errorf("lost run = %+v", lost)
	}
}

func TestFinishedRunWithoutStore(t *testing.T) {
	g := &fakeGame{id: "fake", substeps: 1, state: core.GameState{Over: true}}
	m := newTestModel(g, Options{})
	m = update(t, m, TickMsg(time.Now()))
	if !m.State().Finished() {
		t.Error("host should track the finished state")
	}
}

func TestBackAndQuit(t *testing.T) {
	tests := []struct {
		name       string
		standalone bool
		msg        tea.KeyMsg
		back, quit bool
	}{
		{"esc in session", false, tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"esc standalone", true, tea.KeyMsg{Type: tea.KeyEsc}, false, true},
		{"q", false, runeKey('q'), false, true},
		{"ctrl+c", false, tea.KeyMsg{Type: tea.KeyCtrlC}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(&fakeGame{id: "fake"}, Options{Standalone: tt.standalone})
			next, cmd := m.Update(tt.msg)
			m = next.(Model)
			if m.BackToMenu() != tt.back || m.IsQuitting() != tt.quit {
				t.Errorf("back = %v quit = %v", m.BackToMenu(), m.IsQuitting())
			}
			if tt.quit && cmd == nil {
				t.Error("quit should return a command")
			}
		})
	}
}

func TestResizeUsesResizer(t *testing.T) {
	g := &fakeGame{id: "fake"}
	m := newTestModel(g, Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize restarted the game (resets = %d)", g.resets)
	}
	if len(g.resized) != 2 || g.resized[0] != 100 || g.resized[1] != 30-footerRows {
		t.Errorf("resized = %v", g.resized)
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Errorf("view rows = %d, want 30", len(lines))
	}
}

func TestBlurReleasesKeys(t *testing.T) {
	g := &fakeGame{id: "fake", substeps: 1}
	m := newTestModel(g, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.BlurMsg{})
	update(t, m, TickMsg(time.Now()))

	if g.inputs[0].MoveRight {
		t.Error("held key survived focus loss")
	}
}
