// Package formats provides level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/pixel-dash/internal/games/platformer/sim"
	"gopkg.in/yaml.v3"
)

// DefaultCellSize is used when a level file does not set cell_size.
const DefaultCellSize = 32

// Tile legend for the rows of a level file.
const (
	RuneEmpty  = '.'
	RuneSolid  = '#'
	RuneHazard = '^'
	RuneGoal   = 'F'
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	CellSize float64           `yaml:"cell_size,omitempty"`
	Player   YAMLCell          `yaml:"player"`
	Tiles    []string          `yaml:"tiles"`
	Coins    []YAMLCell        `yaml:"coins,omitempty"`
	Enemies  []YAMLEnemy       `yaml:"enemies,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLCell is a grid position.
type YAMLCell struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// YAMLEnemy is an enemy spawn with an inclusive [left, right] patrol column range.
type YAMLEnemy struct {
	Col    int   `yaml:"col"`
	Row    int   `yaml:"row"`
	Patrol []int `yaml:"patrol"`
}

// Level represents a parsed level ready for validation.
type Level struct {
	ID       string
	Name     string
	CellSize float64
	Tiles    [][]sim.TileKind
	Player   sim.Cell
	Coins    []sim.Cell
	Enemies  []sim.EnemySpawn
	Metadata map[string]string
}

// ParseYAML parses a YAML level file. Structural problems with the tile rows
// are reported as sim.ValidationError.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, sim.ValidationError{Code: sim.CodeMissingLevelField, Message: "missing id"}
	}

	cellSize := yl.CellSize
	if cellSize == 0 {
		cellSize = DefaultCellSize
	}

	tiles, err := ParseTiles(yl.Tiles)
	if err != nil {
		return Level{}, err
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		CellSize: cellSize,
		Tiles:    tiles,
		Player:   sim.Cell{Col: yl.Player.Col, Row: yl.Player.Row},
		Metadata: yl.Metadata,
	}

	for _, c := range yl.Coins {
		level.Coins = append(level.Coins, sim.Cell{Col: c.Col, Row: c.Row})
	}

	for i, e := range yl.Enemies {
		if len(e.Patrol) != 2 {
			return Level{}, sim.ValidationError{
				Code:    sim.CodeBadPatrol,
				Message: fmt.Sprintf("enemy %d: patrol needs [left, right], got %v", i, e.Patrol),
			}
		}
		level.Enemies = append(level.Enemies, sim.EnemySpawn{
			Col:         e.Col,
			Row:         e.Row,
			PatrolLeft:  e.Patrol[0],
			PatrolRight: e.Patrol[1],
		})
	}

	return level, nil
}

// ParseTiles converts legend rows into tile kinds. Row lengths are checked
// later by sim.NewTileGrid.
func ParseTiles(rows []string) ([][]sim.TileKind, error) {
	tiles := make([][]sim.TileKind, len(rows))
	for r, row := range rows {
		tiles[r] = make([]sim.TileKind, 0, len(row))
		for c, ch := range []rune(row) {
			kind, ok := TileFromRune(ch)
			if !ok {
				return nil, sim.ValidationError{
					Code:    sim.CodeUnknownTile,
					Message: fmt.Sprintf("row %d col %d: unknown tile %q", r, c, ch),
				}
			}
			tiles[r] = append(tiles[r], kind)
		}
	}
	return tiles, nil
}

// TileFromRune maps a legend rune to a tile kind.
func TileFromRune(ch rune) (sim.TileKind, bool) {
	switch ch {
	case RuneEmpty, ' ':
		return sim.TileEmpty, true
	case RuneSolid:
		return sim.TileSolid, true
	case RuneHazard:
		return sim.TileHazard, true
	case RuneGoal:
		return sim.TileGoal, true
	default:
		return sim.TileEmpty, false
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// Build validates the parsed data and constructs the simulation level.
func (l Level) Build() (*sim.Level, error) {
	grid, err := sim.NewTileGrid(l.Tiles, l.CellSize)
	if err != nil {
		return nil, err
	}
	return sim.NewLevel(l.ID, l.Name, grid, l.Player, l.Coins, l.Enemies)
}
