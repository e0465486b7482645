package sim

import "testing"

const testDT = 1.0 / 60.0

// testGrid builds a 32-unit grid from rows using '.', '#', '^' and 'F'.
func testGrid(t *testing.T, rows ...string) *TileGrid {
	t.Helper()
	kinds := make([][]TileKind, len(rows))
	for r, row := range rows {
		kinds[r] = make([]TileKind, len(row))
		for c, ch := range row {
			switch ch {
			case '.':
				kinds[r][c] = TileEmpty
			case '#':
				kinds[r][c] = TileSolid
			case '^':
				kinds[r][c] = TileHazard
			case 'F':
				kinds[r][c] = TileGoal
			default:
				t.Fatalf("bad tile %q at (%d,%d)", ch, c, r)
			}
		}
	}
	g, err := NewTileGrid(kinds, 32)
	if err != nil {
		t.Fatalf("NewTileGrid: %v", err)
	}
	return g
}

func testLevel(t *testing.T, player Cell, coins []Cell, enemies []EnemySpawn, rows ...string) *Level {
	t.Helper()
	lvl, err := NewLevel("test", "Test", testGrid(t, rows...), player, coins, enemies)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return lvl
}

// playing returns a session that has already been reset into the playing state.
func playing(t *testing.T, lvl *Level) *Session {
	t.Helper()
	s, err := NewSession(lvl, DefaultTuning())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if !s.RequestReset() {
		t.Fatal("RequestReset from menu was refused")
	}
	s.DrainEvents()
	return s
}

// standOn places the player at rest on top of the given row.
func standOn(s *Session, x float64, floorRow int) {
	cs := s.level.Grid.CellSize()
	s.Player.X = x
	s.Player.Y = float64(floorRow)*cs - s.Player.H
	s.Player.VX, s.Player.VY = 0, 0
	s.Player.Grounded = true
	s.Player.CoyoteTimer = s.tuning.CoyoteTime
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// flatLevel is a ten-column corridor with a floor on row 4.
var flatLevel = []string{
	"..........",
	"..........",
	"..........",
	"..........",
	"##########",
}
