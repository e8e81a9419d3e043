// Package inspect draws a diagnostic text picture of an arena into a
// core.Screen. Lattice points land on even screen cells and tiles on odd
// ones, so a stick covers five cells centred on its point.
package inspect

import (
	"github.com/vovakirdan/blarbs/internal/actor"
	"github.com/vovakirdan/blarbs/internal/arena"
	"github.com/vovakirdan/blarbs/internal/core"
)

// Screen dimensions needed for a full dump.
const (
	Width  = arena.ArenaW*2 + 1
	Height = arena.ArenaH*2 + 1
)

// Glyphs used in the dump.
const (
	GlyphHoriz  = '-'
	GlyphVert   = '|'
	GlyphFrozen = '='
	GlyphWall   = '#'
	GlyphBox    = 'X'
	GlyphPlayer = '@'
	GlyphChaser = 'M'
)

// NewScreen returns a screen sized for Draw.
func NewScreen() *core.Screen {
	return core.NewScreen(Width, Height)
}

// PointCell returns the screen cell of lattice point (x, y).
func PointCell(x, y int) (int, int) {
	return x * 2, y * 2
}

// TileCell returns the screen cell at the centre of tile (x, y).
func TileCell(x, y int) (int, int) {
	return x*2 + 1, y*2 + 1
}

// Draw clears dst and draws the stick grid, claimed boxes and any active
// actors.
func Draw(dst *core.Screen, ar *arena.Arena, actors ...*actor.Actor) {
	dst.Clear()
	dst.DrawBox(core.NewRect(0, 0, Width, Height))

	ar.ForEachStick(func(at core.Coord, s arena.Stick) {
		drawStick(dst, at, s)
	})

	for _, q := range ar.Quads() {
		if ar.QuadIsFrozen(q) && ar.QuadIsBox(q) {
			c := q.Center()
			x, y := PointCell(c.X, c.Y)
			dst.SetCell(x, y, GlyphBox, core.ColorBlue)
		}
	}

	for _, a := range actors {
		if a == nil || !a.Active {
			continue
		}
		x, y := TileCell(a.X, a.Y)
		if a.Kind.Primary() {
			dst.SetCell(x, y, GlyphPlayer, core.ColorGreen)
		} else {
			dst.SetCell(x, y, GlyphChaser, core.ColorRed)
		}
	}
}

func drawStick(dst *core.Screen, at core.Coord, s arena.Stick) {
	cx, cy := PointCell(at.X, at.Y)
	color := core.ColorYellow
	if s.Frozen() {
		color = core.ColorCyan
	}

	switch s.Orientation() {
	case arena.Horizontal:
		r := rune(GlyphHoriz)
		if s.Frozen() {
			r = GlyphFrozen
		}
		for dx := -2; dx <= 2; dx++ {
			dst.SetCell(cx+dx, cy, r, color)
		}
	case arena.Vertical:
		r := rune(GlyphVert)
		if s.Frozen() {
			r = GlyphWall
		}
		for dy := -2; dy <= 2; dy++ {
			dst.SetCell(cx, cy+dy, r, color)
		}
	}
}

// Stats summarises an arena for reports.
type Stats struct {
	Sticks    int
	Frozen    int
	Boxes     int
	Claimable int
}

// Summarize counts sticks, freezes and boxes.
func Summarize(ar *arena.Arena) Stats {
	return Stats{
		Sticks:    ar.StickCount(),
		Frozen:    ar.FrozenCount(),
		Boxes:     ar.BoxCount(),
		Claimable: len(ar.ClaimableQuads()),
	}
}
