package arena

import "github.com/vovakirdan/blarbs/internal/core"

// BlockingOrientationFor returns the orientation a stick must have to stand
// across a move in direction d: vertical for sideways moves, horizontal
// otherwise.
func BlockingOrientationFor(d core.Dir) Orientation {
	switch d.Axis() {
	case core.AxisHorizontal:
		return Vertical
	case core.AxisVertical:
		return Horizontal
	default:
		return None
	}
}

func crossesColumn(x int) bool {
	return x >= GridPad && x < GridPad+GridW
}

func crossesRow(y int) bool {
	return y >= GridPad && y < GridPad+GridH
}

func gate(x, y int) (core.Coord, bool) {
	if stickOffset(x, y) < 0 {
		return core.Coord{}, false
	}
	return core.C(x, y), true
}

// StickCoordAffectingLeft returns the stick crossed when leaving tile (x, y)
// to the left. The move crosses lattice column x; the stick sits on whichever
// of the tile's two left corners is a stick point.
func StickCoordAffectingLeft(x, y int) (core.Coord, bool) {
	if !crossesColumn(x) {
		return core.Coord{}, false
	}
	return gate(x, y+((x+y)&1))
}

// StickCoordAffectingRight returns the stick crossed when leaving tile
// (x, y) to the right.
func StickCoordAffectingRight(x, y int) (core.Coord, bool) {
	if !crossesColumn(x + 1) {
		return core.Coord{}, false
	}
	return gate(x+1, y+((x+1+y)&1))
}

// StickCoordAffectingUp returns the stick crossed when leaving tile (x, y)
// upward.
func StickCoordAffectingUp(x, y int) (core.Coord, bool) {
	if !crossesRow(y) {
		return core.Coord{}, false
	}
	return gate(x+((x+y)&1), y)
}

// StickCoordAffectingDown returns the stick crossed when leaving tile
// (x, y) downward.
func StickCoordAffectingDown(x, y int) (core.Coord, bool) {
	if !crossesRow(y + 1) {
		return core.Coord{}, false
	}
	return gate(x+((x+y+1)&1), y+1)
}

// StickCoordAffecting dispatches on d.
func StickCoordAffecting(x, y int, d core.Dir) (core.Coord, bool) {
	switch d {
	case core.DirLeft:
		return StickCoordAffectingLeft(x, y)
	case core.DirRight:
		return StickCoordAffectingRight(x, y)
	case core.DirUp:
		return StickCoordAffectingUp(x, y)
	case core.DirDown:
		return StickCoordAffectingDown(x, y)
	default:
		return core.Coord{}, false
	}
}

// CanMove reports whether a move from tile (x, y) in direction d is legal.
// The destination must lie inside the arena. A gating stick blocks only when
// it is frozen across the move; unfrozen gates get pushed aside.
func (a *Arena) CanMove(x, y int, d core.Dir) bool {
	if d == core.DirNone {
		return false
	}
	dx, dy := d.Delta()
	if !InBounds(x+dx, y+dy) {
		return false
	}
	g, ok := StickCoordAffecting(x, y, d)
	if !ok {
		return true
	}
	s := a.StickAt(g.X, g.Y)
	return !(s.Frozen() && s.Orientation() == BlockingOrientationFor(d))
}

func (a *Arena) CanMoveLeft(x, y int) bool  { return a.CanMove(x, y, core.DirLeft) }
func (a *Arena) CanMoveRight(x, y int) bool { return a.CanMove(x, y, core.DirRight) }
func (a *Arena) CanMoveUp(x, y int) bool    { return a.CanMove(x, y, core.DirUp) }
func (a *Arena) CanMoveDown(x, y int) bool  { return a.CanMove(x, y, core.DirDown) }
