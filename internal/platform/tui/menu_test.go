package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/registry"
	"github.com/vovakirdan/pixel-dash/internal/storage"
)

func init() {
	registry.Register("tui-alpha", func() registry.Game { return &fakeGame{id: "tui-alpha"} })
	registry.Register("tui-beta", func() registry.Game { return &fakeGame{id: "tui-beta"} })
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func TestMenuListsLevelsWithRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.RunRecord{LevelID: "tui-beta", Outcome: storage.OutcomeWin, Score: 9, PlayTime: 12500 * time.Millisecond}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel(store, testConfig())
	items := m.Items()
	if len(items) != 2 || items[0].LevelID != "tui-alpha" || items[1].LevelID != "tui-beta" {
		t.Fatalf("items = %+v", items)
	}
	if items[1].HighScore != 9 || items[1].BestTime != 12500*time.Millisecond {
		t.Errorf("beta record = %+v", items[1])
	}

	view := m.View()
	if !strings.Contains(view, "Fake tui-alpha") || !strings.Contains(view, "best 12.5s") {
		t.Errorf("view missing level info:\n%s", view)
	}
	if !strings.Contains(view, "new") {
		t.Error("unplayed level should be marked new")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // clamped at the last item
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil {
		t.Error("select should quit the menu program")
	}
	if m.Selected() == nil || m.Selected().LevelID != "tui-beta" {
		t.Errorf("selected = %+v", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardCyclesLevels(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.RunRecord{
		{LevelID: "tui-alpha", Outcome: storage.OutcomeGameOver, Score: 2, DeathCause: "hazard"},
		{LevelID: "tui-beta", Outcome: storage.OutcomeWin, Score: 7, PlayTime: 30 * time.Second},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 120, 30)
	if !strings.Contains(m.View(), "died: hazard") {
		t.Errorf("first level view:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	view := m.View()
	if !strings.Contains(view, "cleared") || !strings.Contains(view, "fastest clear 30.0s") {
		t.Errorf("second level view:\n%s", view)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), "ana", quietLogger())

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.game == nil {
		t.Fatalf("enter should start a level, screen = %v", s.screen)
	}
	if s.game.player != "ana" {
		t.Errorf("player = %q", s.game.player)
	}

	step(TickMsg(time.Now()))
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu || s.game != nil {
		t.Fatalf("esc should return to the menu, screen = %v", s.screen)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScoreboard {
		t.Fatalf("tab should open the scoreboard, screen = %v", s.screen)
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("esc should leave the scoreboard, screen = %v", s.screen)
	}

	next, cmd := s.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q should end the session")
	}
}
