package sim

import "github.com/vovakirdan/pixel-dash/internal/core"

// Axis selects which component of a displacement is being resolved.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Contact is the strongest tile interaction found while resolving an axis.
type Contact uint8

const (
	ContactNone Contact = iota
	ContactSolid
	ContactHazard
	ContactGoal
)

// String returns the contact name.
func (c Contact) String() string {
	switch c {
	case ContactNone:
		return "none"
	case ContactSolid:
		return "solid"
	case ContactHazard:
		return "hazard"
	case ContactGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving one axis.
type Resolution struct {
	Body    Body
	Contact Contact
	Landed  bool // pushed up out of a solid while moving down
}

// ResolveAxis resolves a body that was already displaced along axis this
// substep against the grid. Only the active axis position and velocity are
// ever changed. Hazard and goal contacts stop the scan immediately; solids are
// resolved independently in row-major order.
func ResolveAxis(g *TileGrid, b Body, axis Axis) Resolution {
	res := Resolution{Body: b}
	cs := g.CellSize()

	left := core.FloorDiv(b.X, cs)
	right := core.FloorDiv(b.X+b.W, cs)
	top := core.FloorDiv(b.Y, cs)
	bottom := core.FloorDiv(b.Y+b.H, cs)

	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			kind := g.TileAt(col, row)
			if kind == TileEmpty {
				continue
			}
			cell := g.CellRect(col, row)
			if !res.Body.Rect().Overlaps(cell) {
				continue
			}

			switch kind {
			case TileHazard:
				res.Contact = ContactHazard
				return res
			case TileGoal:
				res.Contact = ContactGoal
				return res
			case TileSolid:
				pushOut(&res, cell, axis)
			}
		}
	}
	return res
}

// pushOut moves the body to the near face of cell, opposite its velocity.
func pushOut(res *Resolution, cell core.RectF, axis Axis) {
	b := &res.Body
	res.Contact = ContactSolid

	if axis == AxisX {
		switch {
		case b.VX > 0:
			b.X = cell.X - b.W
		case b.VX < 0:
			b.X = cell.Right()
		}
		b.VX = 0
		return
	}

	switch {
	case b.VY > 0:
		b.Y = cell.Y - b.H
		b.VY = 0
		res.Landed = true
	case b.VY < 0:
		b.Y = cell.Bottom()
		b.VY = 0
	}
}
