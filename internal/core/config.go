package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	Seed int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed: 0, // 0 means the caller picks one (usually from the clock)
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the driver.
type GameState struct {
	Score    int    // Boxes claimed this round
	Lives    int    // Lives left, 0 when unlimited
	Mode     string // Mode name, e.g. "intro" or "playing"
	GameOver bool   // Whether the round has ended
	Paused   bool   // Whether the game is paused
}

// Event is a notification a game surfaces to its presentation layer.
// Consumers switch on the concrete type; EventType is for logs.
type Event interface {
	EventType() string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	Tick   uint64
	State  GameState
	Events []Event
}
