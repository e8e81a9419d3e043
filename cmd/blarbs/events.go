package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blarbs/internal/arena"
	"github.com/vovakirdan/blarbs/internal/core"
	"github.com/vovakirdan/blarbs/internal/game"
)

// logEvents writes one line per event. Stick and movement noise goes to
// debug; boxes, catches and mode changes to info.
func logEvents(logger *log.Logger, tick uint64, events []core.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case arena.StickChangedEvent:
			logger.Debug("stick", "tick", tick, "at", e.At, "value", e.Stick)
		case game.ActorMovedEvent:
			logger.Debug("move", "tick", tick, "actor", e.Kind, "from", e.From, "to", e.To)
		case arena.BoxCompletedEvent:
			logger.Info("box closed", "tick", tick, "centre", e.Quad.Center(), "top_left", e.TopLeft)
		case game.CaughtEvent:
			logger.Info("caught", "tick", tick, "at", e.At, "lives_left", e.LivesLeft)
		case game.ModeChangedEvent:
			logger.Info("mode", "tick", tick, "from", e.From, "to", e.To)
		default:
			logger.Debug(ev.EventType(), "tick", tick)
		}
	}
}
