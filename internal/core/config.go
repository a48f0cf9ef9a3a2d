package core

// RuntimeConfig is passed to simulations on Reset.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Simulation ticks per second
	Speed    float64 // Speed multiplier from the selected preset (1 = normal)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Speed:    1,
	}
}

// SimState is the externally visible state of a running simulation.
type SimState struct {
	Ticks    int  // Ticks simulated since the last reset
	Events   int  // Simulation-specific counter (collisions, revolutions)
	Finished bool // Tick budget reached; the run is recorded once
	Paused   bool
}

// StepResult is returned by Sim.Step after each tick.
type StepResult struct {
	State SimState
}
