// Package registry provides a global registry of game variants.
// Variants register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blarbs/internal/config"
	"github.com/vovakirdan/blarbs/internal/core"
)

// Game is the interface every variant implements.
// Games contain pure logic; the driver handles input, timing and output.
type Game interface {
	// ID returns the variant identifier (e.g., "classic", "open").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws a diagnostic view of the current state into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Options are handed to every factory call.
type Options struct {
	Config config.Config
	Logger *log.Logger // nil discards output
}

// DefaultOptions returns options built from the hardcoded configuration.
func DefaultOptions() Options {
	return Options{Config: config.DefaultConfig()}
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a variant.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from an init() function.
// Panics if the ID is taken or the factory fails on default options.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Get title by creating a temporary instance
	g, err := f(DefaultOptions())
	if err != nil {
		panic(fmt.Sprintf("registry: game %q: %v", id, err))
	}

	factories[id] = f
	titles[id] = g.Title()
}

// List returns information about all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
