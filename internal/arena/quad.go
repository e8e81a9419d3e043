package arena

import "github.com/vovakirdan/blarbs/internal/core"

// Quad is the diamond of four stick points around one lattice point.
type Quad struct {
	Top, Left, Right, Bottom core.Coord
}

// QuadAround returns the quad centred on c.
func QuadAround(c core.Coord) Quad {
	return Quad{
		Top:    core.C(c.X, c.Y-1),
		Left:   core.C(c.X-1, c.Y),
		Right:  core.C(c.X+1, c.Y),
		Bottom: core.C(c.X, c.Y+1),
	}
}

// Center returns the lattice point the quad surrounds.
func (q Quad) Center() core.Coord {
	return core.C(q.Top.X, q.Left.Y)
}

// Members returns the four points in top, left, right, bottom order.
func (q Quad) Members() [4]core.Coord {
	return [4]core.Coord{q.Top, q.Left, q.Right, q.Bottom}
}

// boxShape is the orientation each member needs, matching Members order.
var boxShape = [4]Orientation{Horizontal, Vertical, Vertical, Horizontal}

// QuadUpFromStickAt returns the quad above the stick at (x, y); the stick is
// its bottom member.
func QuadUpFromStickAt(x, y int) Quad {
	return Quad{
		Top:    core.C(x, y-2),
		Left:   core.C(x-1, y-1),
		Right:  core.C(x+1, y-1),
		Bottom: core.C(x, y),
	}
}

// QuadDownFromStickAt returns the quad below the stick; the stick is its top.
func QuadDownFromStickAt(x, y int) Quad {
	return Quad{
		Top:    core.C(x, y),
		Left:   core.C(x-1, y+1),
		Right:  core.C(x+1, y+1),
		Bottom: core.C(x, y+2),
	}
}

// QuadLeftFromStickAt returns the quad left of the stick; the stick is its
// right member.
func QuadLeftFromStickAt(x, y int) Quad {
	return Quad{
		Top:    core.C(x-1, y-1),
		Left:   core.C(x-2, y),
		Right:  core.C(x, y),
		Bottom: core.C(x-1, y+1),
	}
}

// QuadRightFromStickAt returns the quad right of the stick; the stick is its
// left member.
func QuadRightFromStickAt(x, y int) Quad {
	return Quad{
		Top:    core.C(x+1, y-1),
		Left:   core.C(x, y),
		Right:  core.C(x+2, y),
		Bottom: core.C(x+1, y+1),
	}
}

// QuadFromStickAt dispatches on d.
func QuadFromStickAt(x, y int, d core.Dir) Quad {
	switch d {
	case core.DirUp:
		return QuadUpFromStickAt(x, y)
	case core.DirDown:
		return QuadDownFromStickAt(x, y)
	case core.DirLeft:
		return QuadLeftFromStickAt(x, y)
	default:
		return QuadRightFromStickAt(x, y)
	}
}

// TopLeftOfQuad returns the upper-left corner of the quad's bounding box.
func TopLeftOfQuad(q Quad) core.Coord {
	return core.C(q.Left.X, q.Top.Y)
}

// QuadIsBox reports whether the quad is closed: top and bottom horizontal,
// left and right vertical. Frozen flags are ignored; missing members fail.
func (a *Arena) QuadIsBox(q Quad) bool {
	for i, m := range q.Members() {
		if a.StickOrientationAt(m.X, m.Y) != boxShape[i] {
			return false
		}
	}
	return true
}

// QuadIsFrozen reports whether all four members are real and frozen.
func (a *Arena) QuadIsFrozen(q Quad) bool {
	for _, m := range q.Members() {
		s := a.StickAt(m.X, m.Y)
		if s.IsNone() || !s.Frozen() {
			return false
		}
	}
	return true
}

// FreezeQuad freezes each member that exists. Repeat calls are no-ops.
func (a *Arena) FreezeQuad(q Quad) {
	for _, m := range q.Members() {
		a.FreezeStickAt(m.X, m.Y)
	}
}

// QuadClaimable reports whether the quad can still be turned into a frozen
// box: every member is real, no member is frozen in the wrong orientation,
// and the quad is not already a frozen box.
func (a *Arena) QuadClaimable(q Quad) bool {
	settled := true
	for i, m := range q.Members() {
		s := a.StickAt(m.X, m.Y)
		if s.IsNone() {
			return false
		}
		if !s.Frozen() {
			settled = false
			continue
		}
		if s.Orientation() != boxShape[i] {
			return false
		}
	}
	return !settled
}

// Quads returns every quad whose four members are real sticks, ordered by
// centre in row-major order.
func (a *Arena) Quads() []Quad {
	var out []Quad
	for y := GridPad; y < GridPad+GridH; y++ {
		for x := GridPad; x < GridPad+GridW; x++ {
			if IsStickPoint(x, y) {
				continue
			}
			q := QuadAround(core.C(x, y))
			if a.quadComplete(q) {
				out = append(out, q)
			}
		}
	}
	return out
}

func (a *Arena) quadComplete(q Quad) bool {
	for _, m := range q.Members() {
		if a.StickAt(m.X, m.Y).IsNone() {
			return false
		}
	}
	return true
}

// ClaimableQuads returns the quads for which QuadClaimable holds.
func (a *Arena) ClaimableQuads() []Quad {
	var out []Quad
	for _, q := range a.Quads() {
		if a.QuadClaimable(q) {
			out = append(out, q)
		}
	}
	return out
}

// BoxCount returns the number of frozen boxes.
func (a *Arena) BoxCount() int {
	n := 0
	for _, q := range a.Quads() {
		if a.QuadIsFrozen(q) && a.QuadIsBox(q) {
			n++
		}
	}
	return n
}
