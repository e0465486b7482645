// Package sim is the deterministic simulation core of the platformer.
//
// Everything here is a pure function of static level data, tuning constants
// and per-frame input. It performs no I/O, owns no goroutines and reads no
// clocks: the host feeds elapsed time into a Session, which drains it in fixed
// substeps. The substep pipeline order (player, enemies, pickups, camera) is a
// hard invariant.
package sim

import (
	"fmt"

	"github.com/vovakirdan/pixel-dash/internal/core"
)

// TileKind classifies one grid cell.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileSolid
	TileHazard
	TileGoal
)

// String returns the tile kind name.
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileSolid:
		return "solid"
	case TileHazard:
		return "hazard"
	case TileGoal:
		return "goal"
	default:
		return fmt.Sprintf("TileKind(%d)", uint8(k))
	}
}

// TileGrid is the immutable level geometry, stored row-major.
type TileGrid struct {
	cols     int
	rows     int
	cellSize float64
	tiles    []TileKind
}

// NewTileGrid builds a grid from rows of tiles. Rows must be non-empty and
// all of the same length.
func NewTileGrid(rows [][]TileKind, cellSize float64) (*TileGrid, error) {
	if cellSize <= 0 {
		return nil, ValidationError{
			Code:    CodeBadCellSize,
			Message: fmt.Sprintf("cell size must be positive, got %g", cellSize),
		}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ValidationError{Code: CodeEmptyGrid, Message: "grid has no cells"}
	}

	cols := len(rows[0])
	tiles := make([]TileKind, 0, cols*len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return nil, ValidationError{
				Code:    CodeRaggedGrid,
				Message: fmt.Sprintf("row %d has %d cells, expected %d", r, len(row), cols),
			}
		}
		for c, kind := range row {
			if kind > TileGoal {
				return nil, ValidationError{
					Code:    CodeUnknownTile,
					Message: fmt.Sprintf("cell (%d,%d) has unknown tile %d", c, r, kind),
				}
			}
		}
		tiles = append(tiles, row...)
	}

	return &TileGrid{
		cols:     cols,
		rows:     len(rows),
		cellSize: cellSize,
		tiles:    tiles,
	}, nil
}

// TileAt returns the tile at (col, row). Anything outside the grid is empty.
func (g *TileGrid) TileAt(col, row int) TileKind {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return TileEmpty
	}
	return g.tiles[row*g.cols+col]
}

// InBounds reports whether (col, row) addresses a real cell.
func (g *TileGrid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// Cols returns the grid width in cells.
func (g *TileGrid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *TileGrid) Rows() int { return g.rows }

// CellSize returns the edge length of a cell in world units.
func (g *TileGrid) CellSize() float64 { return g.cellSize }

// Width returns the level width in world units.
func (g *TileGrid) Width() float64 { return float64(g.cols) * g.cellSize }

// Height returns the level height in world units.
func (g *TileGrid) Height() float64 { return float64(g.rows) * g.cellSize }

// CellRect returns the world-space box of a cell.
func (g *TileGrid) CellRect(col, row int) core.RectF {
	return core.NewRectF(float64(col)*g.cellSize, float64(row)*g.cellSize, g.cellSize, g.cellSize)
}

// Count returns how many cells hold the given kind.
func (g *TileGrid) Count(kind TileKind) int {
	n := 0
	for _, t := range g.tiles {
		if t == kind {
			n++
		}
	}
	return n
}
