package game

import (
	"math/rand"

	"github.com/vovakirdan/blarbs/internal/actor"
	"github.com/vovakirdan/blarbs/internal/arena"
	"github.com/vovakirdan/blarbs/internal/core"
)

// chaserBrain picks the chaser's next direction. Most ticks it closes in on
// the player along one axis; otherwise it wanders.
type chaserBrain struct {
	rng          *rand.Rand
	verticalBias float64
}

// next returns the chaser's direction for this tick. The result may still
// be blocked; ApplyMove then leaves the chaser in place.
func (b *chaserBrain) next(ar *arena.Arena, me, target *actor.Actor, chase float64) core.Dir {
	dx := target.X - me.X
	dy := target.Y - me.Y

	upOK := ar.CanMoveUp(me.X, me.Y)
	downOK := ar.CanMoveDown(me.X, me.Y)
	leftOK := ar.CanMoveLeft(me.X, me.Y)
	rightOK := ar.CanMoveRight(me.X, me.Y)
	horizOK := leftOK || rightOK
	vertOK := upOK || downOK

	if b.rng.Float64() < chase {
		if (b.rng.Float64() < b.verticalBias && vertOK) || !horizOK {
			if (dy > 0 && downOK) || !upOK {
				return core.DirDown
			}
			return core.DirUp
		}
		if (dx > 0 && rightOK) || !leftOK {
			return core.DirRight
		}
		return core.DirLeft
	}

	if (b.rng.Float64() < 0.5 && horizOK) || !vertOK {
		if b.rng.Float64() < 0.5 && rightOK {
			return core.DirRight
		}
		return core.DirLeft
	}
	if b.rng.Float64() < 0.5 && downOK {
		return core.DirDown
	}
	return core.DirUp
}
