package actor

import (
	"github.com/vovakirdan/blarbs/internal/arena"
	"github.com/vovakirdan/blarbs/internal/core"
)

// ClaimPolicy decides which movers turn a freshly closed quad into a
// frozen box.
type ClaimPolicy uint8

const (
	// ClaimPrimaryOnly lets only the player claim boxes.
	ClaimPrimaryOnly ClaimPolicy = iota
	// ClaimAnyActor lets every mover claim boxes.
	ClaimAnyActor
)

// String returns the policy name used in configuration.
func (p ClaimPolicy) String() string {
	if p == ClaimAnyActor {
		return "any"
	}
	return "primary"
}

// Allows reports whether an actor of kind k may claim a box.
func (p ClaimPolicy) Allows(k Kind) bool {
	return p == ClaimAnyActor || k.Primary()
}

// Rules bundles the movement rule options.
type Rules struct {
	Claim ClaimPolicy
}

// ClassicRules are the rules the shipped puzzle is played with.
var ClassicRules = Rules{Claim: ClaimPrimaryOnly}

// MoveResult describes what a single ApplyMove did.
type MoveResult struct {
	Moved    bool
	From, To core.Coord

	// Gate is the stick crossed by the move, valid when HasGate is set.
	Gate    core.Coord
	HasGate bool
	Flipped bool

	// Box is the quad that was closed and frozen, valid when Boxed is set.
	Boxed bool
	Box   arena.Quad

	Events []core.Event
}

// CanMove reports whether act may step in direction d.
func CanMove(ar *arena.Arena, act *Actor, d core.Dir) bool {
	return ar.CanMove(act.X, act.Y, d)
}

// ApplyMove moves act one step in d under the classic rules.
func ApplyMove(ar *arena.Arena, act *Actor, d core.Dir) MoveResult {
	return ClassicRules.ApplyMove(ar, act, d)
}

// ApplyMove is the composite move: legality check, then a flip of a
// blocking gate with a box check on the far side, then the translation.
// An illegal move changes nothing.
func (r Rules) ApplyMove(ar *arena.Arena, act *Actor, d core.Dir) MoveResult {
	res := MoveResult{From: act.Pos(), To: act.Pos()}
	if !CanMove(ar, act, d) {
		return res
	}

	g, ok := arena.StickCoordAffecting(act.X, act.Y, d)
	if ok {
		res.Gate, res.HasGate = g, true
		if ar.StickOrientationAt(g.X, g.Y) == arena.BlockingOrientationFor(d) {
			ar.RotateStickAt(g.X, g.Y)
			res.Flipped = true
			res.Events = append(res.Events, ar.StickChangedAt(g))

			q := arena.QuadFromStickAt(g.X, g.Y, boxSide(act, g, d))
			if ar.QuadIsBox(q) && r.Claim.Allows(act.Kind) {
				ar.FreezeQuad(q)
				res.Boxed, res.Box = true, q
				for _, m := range q.Members() {
					if arena.IsStickPoint(m.X, m.Y) {
						res.Events = append(res.Events, ar.StickChangedAt(m))
					}
				}
				res.Events = append(res.Events, arena.BoxCompletedEvent{Quad: q, TopLeft: arena.TopLeftOfQuad(q)})
			}
		}
	}

	act.Translate(d)
	res.Moved = true
	res.To = act.Pos()
	return res
}

// boxSide picks the quad on the far side of a just-flipped gate. A sideways
// move leaves a horizontal stick, so the quad lies above or below it; a
// vertical move leaves a vertical stick and the quad lies left or right.
func boxSide(act *Actor, g core.Coord, d core.Dir) core.Dir {
	if d.IsHorizontal() {
		if g.Y <= act.Y {
			return core.DirUp
		}
		return core.DirDown
	}
	if g.X <= act.X {
		return core.DirLeft
	}
	return core.DirRight
}
