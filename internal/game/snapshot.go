package game

import (
	"github.com/vovakirdan/blarbs/internal/arena"
	"github.com/vovakirdan/blarbs/internal/core"
)

// Snapshot captures the complete session state for determinism testing and
// replay checks.
type Snapshot struct {
	Tick         uint64
	Mode         Mode
	Score        int
	Lives        int
	Catches      int
	Player       core.Coord
	PlayerActive bool
	Chaser       core.Coord
	ChaserActive bool
	Sticks       [arena.SlotCount]arena.Stick
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:         s.tick,
		Mode:         s.mode,
		Score:        s.score,
		Lives:        s.lives,
		Catches:      s.catches,
		Player:       s.player.Pos(),
		PlayerActive: s.player.Active,
		Chaser:       s.chaser.Pos(),
		ChaserActive: s.chaser.Active,
		Sticks:       s.arena.Snapshot(),
	}
}
