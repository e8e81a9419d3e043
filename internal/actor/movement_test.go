package actor

import (
	"testing"

	"github.com/vovakirdan/blarbs/internal/arena"
	"github.com/vovakirdan/blarbs/internal/core"
)

type step struct {
	d       core.Dir
	to      core.Coord
	gate    core.Coord
	hasGate bool
	flipped bool
	boxed   bool
}

func runSteps(t *testing.T, ar *arena.Arena, act *Actor, steps []step) MoveResult {
	t.Helper()
	var last MoveResult
	for i, s := range steps {
		last = ApplyMove(ar, act, s.d)
		if !last.Moved {
			t.Fatalf("step %d (%v): did not move", i, s.d)
		}
		if last.To != s.to || act.Pos() != s.to {
			t.Errorf("step %d (%v): to = %v, expected %v", i, s.d, last.To, s.to)
		}
		if last.HasGate != s.hasGate || (s.hasGate && last.Gate != s.gate) {
			t.Errorf("step %d (%v): gate = %v,%v, expected %v,%v", i, s.d, last.Gate, last.HasGate, s.gate, s.hasGate)
		}
		if last.Flipped != s.flipped {
			t.Errorf("step %d (%v): flipped = %v, expected %v", i, s.d, last.Flipped, s.flipped)
		}
		if last.Boxed != s.boxed {
			t.Errorf("step %d (%v): boxed = %v, expected %v", i, s.d, last.Boxed, s.boxed)
		}
	}
	return last
}

func TestApplyMoveClaimsBox(t *testing.T) {
	ar := arena.New()
	p := New(KindPlayer)
	p.Spawn(3, 0)

	last := runSteps(t, ar, p, []step{
		{d: core.DirDown, to: core.C(3, 1)},
		{d: core.DirDown, to: core.C(3, 2), gate: core.C(4, 2), hasGate: true},
		{d: core.DirDown, to: core.C(3, 3), gate: core.C(3, 3), hasGate: true, flipped: true},
		{d: core.DirLeft, to: core.C(2, 3), gate: core.C(3, 3), hasGate: true, flipped: true},
		{d: core.DirLeft, to: core.C(1, 3), gate: core.C(2, 4), hasGate: true},
		{d: core.DirDown, to: core.C(1, 4), gate: core.C(2, 4), hasGate: true, flipped: true, boxed: true},
	})

	box := arena.QuadAround(core.C(3, 4))
	if last.Box != box {
		t.Errorf("Box = %+v, expected %+v", last.Box, box)
	}

	want := map[core.Coord]arena.Stick{
		core.C(3, 3): 0x81,
		core.C(2, 4): 0x82,
		core.C(4, 4): 0x82,
		core.C(3, 5): 0x81,
	}
	for c, s := range want {
		if got := ar.StickAt(c.X, c.Y); got != s {
			t.Errorf("StickAt(%v) = %#x, expected %#x", c, byte(got), byte(s))
		}
	}
	if got := ar.FrozenCount(); got != 4 {
		t.Errorf("FrozenCount() = %d, expected 4", got)
	}

	// flip, four member updates, then the box
	if len(last.Events) != 6 {
		t.Fatalf("len(Events) = %d, expected 6", len(last.Events))
	}
	if ev, ok := last.Events[0].(arena.StickChangedEvent); !ok || ev.At != core.C(2, 4) {
		t.Errorf("Events[0] = %#v", last.Events[0])
	}
	done, ok := last.Events[5].(arena.BoxCompletedEvent)
	if !ok {
		t.Fatalf("Events[5] = %#v, expected BoxCompletedEvent", last.Events[5])
	}
	if done.TopLeft != core.C(2, 3) {
		t.Errorf("TopLeft = %v, expected (2,3)", done.TopLeft)
	}

	// the frozen vertical now walls the player in from the right
	back := New(KindPlayer)
	back.Spawn(1, 3)
	res := ApplyMove(ar, back, core.DirRight)
	if res.Moved || back.Pos() != core.C(1, 3) {
		t.Errorf("move through frozen wall: %+v", res)
	}
}

func TestApplyMoveSidewaysBox(t *testing.T) {
	ar := arena.New()
	p := New(KindPlayer)
	p.Spawn(6, 2)

	res := ApplyMove(ar, p, core.DirRight)
	if !res.Flipped || res.Gate != core.C(7, 3) {
		t.Fatalf("ApplyMove(R) = %+v", res)
	}
	if !res.Boxed || res.Box.Center() != core.C(7, 4) {
		t.Errorf("Box = %+v, boxed %v, expected centre (7,4)", res.Box, res.Boxed)
	}
	if got := ar.StickAt(7, 3); got != 0x81 {
		t.Errorf("StickAt(7,3) = %#x, expected 0x81", byte(got))
	}
}

func TestApplyMoveReturnTrip(t *testing.T) {
	ar := arena.New()
	p := New(KindPlayer)
	p.Spawn(3, 2)

	down := ApplyMove(ar, p, core.DirDown)
	if !down.Flipped || ar.StickOrientationAt(3, 3) != arena.Vertical {
		t.Fatalf("down: %+v, stick %v", down, ar.StickOrientationAt(3, 3))
	}

	// a flipped stick lies along the way back and is not touched again
	up := ApplyMove(ar, p, core.DirUp)
	if !up.Moved || up.Flipped || up.Gate != core.C(3, 3) {
		t.Errorf("up: %+v", up)
	}
	if p.Pos() != core.C(3, 2) {
		t.Errorf("Pos() = %v, expected (3,2)", p.Pos())
	}
	if got := ar.StickOrientationAt(3, 3); got != arena.Vertical {
		t.Errorf("StickOrientationAt(3,3) = %v, expected vertical", got)
	}
}

func TestApplyMoveIllegal(t *testing.T) {
	ar := arena.New()
	ar.FreezeStickAt(3, 3)
	before := ar.Snapshot()

	p := New(KindPlayer)
	p.Spawn(3, 2)
	res := ApplyMove(ar, p, core.DirDown)
	if res.Moved || res.Flipped || len(res.Events) != 0 {
		t.Errorf("blocked move = %+v", res)
	}
	if p.Pos() != core.C(3, 2) || ar.Snapshot() != before {
		t.Error("blocked move changed state")
	}

	edge := New(KindPlayer)
	edge.Spawn(0, 0)
	if res := ApplyMove(ar, edge, core.DirLeft); res.Moved || edge.Pos() != core.C(0, 0) {
		t.Errorf("move off the arena = %+v", res)
	}
}

func TestChaserDoesNotClaim(t *testing.T) {
	tests := []struct {
		name  string
		rules Rules
		boxed bool
	}{
		{"classic", ClassicRules, false},
		{"open", Rules{Claim: ClaimAnyActor}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ar := arena.New()
			c := New(KindChaser)
			c.Spawn(6, 2)

			res := tt.rules.ApplyMove(ar, c, core.DirRight)
			if !res.Flipped {
				t.Fatal("chaser did not flip the gate")
			}
			if res.Boxed != tt.boxed {
				t.Errorf("Boxed = %v, expected %v", res.Boxed, tt.boxed)
			}
			if !ar.QuadIsBox(arena.QuadAround(core.C(7, 4))) {
				t.Error("quad should be closed either way")
			}
			if got := ar.FrozenCount() > 0; got != tt.boxed {
				t.Errorf("frozen sticks present = %v, expected %v", got, tt.boxed)
			}
		})
	}
}
