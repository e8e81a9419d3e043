package arena

import "github.com/vovakirdan/blarbs/internal/core"

// Event is implemented by every notification the arena produces.
type Event interface {
	core.Event
	arenaEvent()
}

// StickChangedEvent reports the new packed value of a stick after a flip or
// freeze.
type StickChangedEvent struct {
	At    core.Coord
	Stick Stick
}

func (StickChangedEvent) EventType() string { return "stick_changed" }
func (StickChangedEvent) arenaEvent()       {}

// BoxCompletedEvent reports a quad that was closed and frozen.
type BoxCompletedEvent struct {
	Quad    Quad
	TopLeft core.Coord
}

func (BoxCompletedEvent) EventType() string { return "box_completed" }
func (BoxCompletedEvent) arenaEvent()       {}

var (
	_ Event = StickChangedEvent{}
	_ Event = BoxCompletedEvent{}
)
