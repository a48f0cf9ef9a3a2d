// Package registry is a global registry of simulation factories.
// Simulations register themselves in init() functions so the platform can
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/vecgeom/internal/config"
	"github.com/vovakirdan/vecgeom/internal/core"
)

// Sim is the interface every terminal simulation implements.
// Simulations contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and rendering.
type Sim interface {
	// ID returns a unique identifier (e.g. "bounce"), used by the CLI and
	// the run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the simulation for the given screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current simulation state.
	State() core.SimState
}

// Configurable is implemented by simulations that read their world from a
// scene. The platform calls Configure before the first Reset.
type Configurable interface {
	Configure(sc config.Scene)
}

// SimInfo contains metadata about a registered simulation.
type SimInfo struct {
	ID    string
	Title string
}

// Factory creates a new simulation instance.
type Factory func() Sim

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a simulation factory to the registry.
// Panics if the ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: simulation %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered simulations, sorted by ID.
func List() []SimInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SimInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SimInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a simulation by ID.
func Create(id string) (Sim, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown simulation %q", id)
	}
	return f(), nil
}

// Exists checks if a simulation with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// CreateConfigured instantiates a simulation and hands it the scene when it
// reads one.
func CreateConfigured(id string, sc config.Scene) (Sim, error) {
	s, err := Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := s.(Configurable); ok {
		c.Configure(sc)
	}
	return s, nil
}
