// Package arena holds the stick grid: storage, coordinate mapping,
// orientation and freeze state, movement gating and box detection.
//
// Coordinates are always in padded arena space. Actors stand on tiles;
// sticks sit on the lattice points between tiles, one point out of two in a
// checkerboard, and each stick spans the two tiles on either side of its
// point. The grid is pure state: no I/O, no clocks, no callbacks.
package arena

import "github.com/vovakirdan/blarbs/internal/core"

const (
	SticksPerRow = 8
	StickRows    = 9

	GridW   = SticksPerRow*2 - 1
	GridH   = StickRows
	GridPad = 2

	ArenaW = GridW + GridPad*2
	ArenaH = GridH + GridPad*2

	// SlotCount is the size of the packed stick table.
	SlotCount = SticksPerRow * GridH
)

var bounds = core.NewRect(0, 0, ArenaW, ArenaH)

// Bounds returns the padded arena rectangle.
func Bounds() core.Rect {
	return bounds
}

// InBounds reports whether (x, y) is a tile inside the padded arena.
func InBounds(x, y int) bool {
	return bounds.Contains(x, y)
}

// stickOffset maps a padded arena coordinate to its slot in the stick
// table, or -1 when no stick can live there.
func stickOffset(x, y int) int {
	x -= GridPad
	y -= GridPad
	if x < 0 || y < 0 || x >= GridW || y >= GridH {
		return -1
	}
	// staggered grid, (0,0) holds a stick
	if (x^y)&1 != 0 {
		return -1
	}
	// odd rows start one cell in
	if y&1 != 0 {
		x--
	}
	x >>= 1
	return y*SticksPerRow + x
}

// slotCoord is the inverse of stickOffset. Trailing slots of odd rows have
// no coordinate.
func slotCoord(slot int) (core.Coord, bool) {
	if slot < 0 || slot >= SlotCount {
		return core.Coord{}, false
	}
	y := slot / SticksPerRow
	x := (slot % SticksPerRow) * 2
	if y&1 != 0 {
		x++
	}
	if x >= GridW {
		return core.Coord{}, false
	}
	return core.C(x+GridPad, y+GridPad), true
}

// IsStickPoint reports whether (x, y) maps to a stick slot.
func IsStickPoint(x, y int) bool {
	return stickOffset(x, y) >= 0
}
