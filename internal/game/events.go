package game

import (
	"github.com/vovakirdan/blarbs/internal/actor"
	"github.com/vovakirdan/blarbs/internal/core"
)

// Event is implemented by notifications the session adds on top of the
// arena's own events.
type Event interface {
	core.Event
	gameEvent()
}

// ModeChangedEvent reports a mode transition.
type ModeChangedEvent struct {
	From, To Mode
}

// ActorMovedEvent reports a completed step.
type ActorMovedEvent struct {
	Kind     actor.Kind
	From, To core.Coord
}

// CaughtEvent reports the chaser landing on the player. LivesLeft is zero
// when lives are unlimited.
type CaughtEvent struct {
	At        core.Coord
	LivesLeft int
}

func (ModeChangedEvent) EventType() string { return "mode_changed" }
func (ActorMovedEvent) EventType() string  { return "actor_moved" }
func (CaughtEvent) EventType() string      { return "caught" }

func (ModeChangedEvent) gameEvent() {}
func (ActorMovedEvent) gameEvent()  {}
func (CaughtEvent) gameEvent()      {}
