package sim

import "fmt"

// Validation error codes for malformed static data.
const (
	CodeEmptyGrid         = "EMPTY_GRID"
	CodeRaggedGrid        = "RAGGED_GRID"
	CodeBadCellSize       = "BAD_CELL_SIZE"
	CodeUnknownTile       = "UNKNOWN_TILE"
	CodeSpawnOutOfBounds  = "SPAWN_OUT_OF_BOUNDS"
	CodeBadPatrol         = "BAD_PATROL"
	CodeBadTuning         = "BAD_TUNING"
	CodeMissingLevelField = "MISSING_FIELD"
)

// ValidationError describes static data the simulation refuses to run with.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Cell addresses a grid cell.
type Cell struct {
	Col int
	Row int
}

// EnemySpawn places an enemy in a cell with an inclusive patrol column range.
type EnemySpawn struct {
	Col         int
	Row         int
	PatrolLeft  int
	PatrolRight int
}

// Level is the static input of a session: geometry plus spawn tables.
type Level struct {
	ID          string
	Name        string
	Grid        *TileGrid
	PlayerSpawn Cell
	Coins       []Cell
	Enemies     []EnemySpawn
}

// NewLevel validates spawn data against the grid and returns the level.
func NewLevel(id, name string, grid *TileGrid, player Cell, coins []Cell, enemies []EnemySpawn) (*Level, error) {
	if id == "" {
		return nil, ValidationError{Code: CodeMissingLevelField, Message: "level id is empty"}
	}
	if grid == nil {
		return nil, ValidationError{Code: CodeEmptyGrid, Message: "level has no grid"}
	}
	if !grid.InBounds(player.Col, player.Row) {
		return nil, spawnError("player", player.Col, player.Row)
	}
	for i, c := range coins {
		if !grid.InBounds(c.Col, c.Row) {
			return nil, spawnError(fmt.Sprintf("coin %d", i), c.Col, c.Row)
		}
	}
	for i, e := range enemies {
		if !grid.InBounds(e.Col, e.Row) {
			return nil, spawnError(fmt.Sprintf("enemy %d", i), e.Col, e.Row)
		}
		if e.PatrolLeft > e.Col || e.PatrolRight < e.Col ||
			e.PatrolLeft < 0 || e.PatrolRight >= grid.Cols() {
			return nil, ValidationError{
				Code: CodeBadPatrol,
				Message: fmt.Sprintf("enemy %d at column %d has patrol [%d, %d] outside the grid or not covering its spawn",
					i, e.Col, e.PatrolLeft, e.PatrolRight),
			}
		}
	}

	if name == "" {
		name = id
	}
	return &Level{
		ID:          id,
		Name:        name,
		Grid:        grid,
		PlayerSpawn: player,
		Coins:       append([]Cell(nil), coins...),
		Enemies:     append([]EnemySpawn(nil), enemies...),
	}, nil
}

func spawnError(what string, col, row int) error {
	return ValidationError{
		Code:    CodeSpawnOutOfBounds,
		Message: fmt.Sprintf("%s spawn (%d,%d) is outside the grid", what, col, row),
	}
}
