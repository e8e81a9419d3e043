package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/blarbs/internal/actor"
	"github.com/vovakirdan/blarbs/internal/arena"
	"github.com/vovakirdan/blarbs/internal/core"
)

func TestChaserPursues(t *testing.T) {
	tests := []struct {
		name   string
		me     core.Coord
		target core.Coord
		bias   float64
		want   core.Dir
	}{
		{"horizontal towards left", core.C(10, 0), core.C(3, 0), 0, core.DirLeft},
		{"horizontal towards right", core.C(3, 0), core.C(10, 0), 0, core.DirRight},
		{"vertical towards down", core.C(0, 2), core.C(0, 9), 1, core.DirDown},
		{"vertical towards up", core.C(0, 9), core.C(0, 2), 1, core.DirUp},
		// up leaves the arena, so the vertical branch goes down
		{"top edge forces down", core.C(5, 0), core.C(5, 0), 1, core.DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := chaserBrain{rng: rand.New(rand.NewSource(1)), verticalBias: tt.bias}
			me := actor.New(actor.KindChaser)
			me.Spawn(tt.me.X, tt.me.Y)
			target := actor.New(actor.KindPlayer)
			target.Spawn(tt.target.X, tt.target.Y)

			if got := b.next(arena.New(), me, target, 1.0); got != tt.want {
				t.Errorf("next() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestChaserWandersWithinBounds(t *testing.T) {
	b := chaserBrain{rng: rand.New(rand.NewSource(99)), verticalBias: 0.5}
	ar := arena.New()
	me := actor.New(actor.KindChaser)
	me.Spawn(0, 0)
	target := actor.New(actor.KindPlayer)
	target.Spawn(18, 12)

	seen := map[core.Dir]bool{}
	for i := 0; i < 200; i++ {
		d := b.next(ar, me, target, 0)
		seen[d] = true
		// from the corner only right and down can succeed
		if d == core.DirLeft || d == core.DirUp {
			if ar.CanMove(me.X, me.Y, d) {
				t.Fatalf("wander picked %v and it is legal from the corner", d)
			}
		}
	}
	if !seen[core.DirRight] || !seen[core.DirDown] {
		t.Errorf("wander never tried both open directions: %v", seen)
	}
}
