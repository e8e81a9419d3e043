// Package actor holds the movers that walk the arena and the rules that
// tie a move to stick flips and box claims.
package actor

import "github.com/vovakirdan/blarbs/internal/core"

// Kind distinguishes the player from the other movers.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindChaser
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindChaser:
		return "chaser"
	default:
		return "unknown"
	}
}

// Primary reports whether the kind is the player-controlled mover.
func (k Kind) Primary() bool {
	return k == KindPlayer
}

// Actor is a mover standing on a tile.
type Actor struct {
	Kind    Kind
	Active  bool
	X, Y    int
	NextDir core.Dir
}

// New returns an inactive actor of the given kind.
func New(kind Kind) *Actor {
	return &Actor{Kind: kind}
}

// Spawn places the actor at (x, y) and activates it.
func (a *Actor) Spawn(x, y int) {
	a.X, a.Y = x, y
	a.NextDir = core.DirNone
	a.Active = true
}

// Translate moves the actor one tile in d without any checks.
func (a *Actor) Translate(d core.Dir) {
	dx, dy := d.Delta()
	a.X += dx
	a.Y += dy
}

// Pos returns the actor's tile.
func (a *Actor) Pos() core.Coord {
	return core.C(a.X, a.Y)
}

// Deactivate takes the actor off the board.
func (a *Actor) Deactivate() {
	a.Active = false
	a.NextDir = core.DirNone
}
