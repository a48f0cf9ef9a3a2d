package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/vecgeom/internal/core"
)

// SpeedPreset is a named simulation speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// ParseSpeedPreset parses a preset name. The empty string is normal.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch p := SpeedPreset(strings.ToLower(s)); p {
	case "":
		return SpeedNormal, nil
	case SpeedSlow, SpeedNormal, SpeedFast:
		return p, nil
	default:
		return "", fmt.Errorf("unknown speed preset %q (want slow, normal or fast)", s)
	}
}

// Factor returns the base speed multiplier for the preset.
func (p SpeedPreset) Factor() float64 {
	switch p {
	case SpeedSlow:
		return 0.5
	case SpeedFast:
		return 2.0
	default:
		return 1.0
	}
}

// Ramp makes a simulation speed up over time.
type Ramp struct {
	Enabled bool    `yaml:"enabled"`
	MaxAt   int     `yaml:"max_at"` // Ticks at which the ramp tops out
	Gain    float64 `yaml:"gain"`   // Multiplier added to speed at the top
}

// SpeedRamp calculates the speed multiplier for a tick count.
type SpeedRamp struct {
	base float64
	ramp Ramp
}

// NewSpeedRamp creates a speed ramp starting from the preset's factor.
func NewSpeedRamp(preset SpeedPreset, ramp Ramp) *SpeedRamp {
	return &SpeedRamp{
		base: preset.Factor(),
		ramp: ramp,
	}
}

// Level returns the ramp progress (0.0 to 1.0) after the given ticks.
func (r *SpeedRamp) Level(ticks int) float64 {
	if !r.ramp.Enabled {
		return 0
	}
	maxAt := float64(r.ramp.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	return core.Clamp(float64(ticks)/maxAt, 0.0, 1.0)
}

// Speed returns the speed multiplier after the given ticks.
// It grows from the preset factor to factor * (1 + gain).
func (r *SpeedRamp) Speed(ticks int) float64 {
	return r.base * (1.0 + r.Level(ticks)*r.ramp.Gain)
}
