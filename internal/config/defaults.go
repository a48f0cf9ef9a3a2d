package config

import (
	_ "embed"
)

// DefaultSceneName is the scene used when none is named.
const DefaultSceneName = "default"

//go:embed defaults/default.yaml
var defaultSceneYAML []byte

// DefaultScene returns the hardcoded default scene. It mirrors
// defaults/default.yaml and is only used if the embedded copy fails to parse.
func DefaultScene() Scene {
	return Scene{
		Name:   DefaultSceneName,
		Bounds: Bounds{W: 80, H: 40},
		Segments: []Segment{
			{From: Point{X: 10, Y: 10}, To: Point{X: 70, Y: 10}},
			{From: Point{X: 20, Y: 30}, To: Point{X: 50, Y: 22}},
		},
		Circles: []Circle{
			{Center: Point{X: 40, Y: 20}, Radius: 2, Velocity: Point{X: 0.6, Y: 0.35}},
			{Center: Point{X: 15, Y: 30}, Radius: 1.5, Velocity: Point{X: -0.4, Y: 0.5}},
		},
		Probes: []Probe{
			{Kind: ProbePoint, Segment: 0, At: Point{X: 20, Y: 10}},
			{Kind: ProbePoint, Segment: 0, At: Point{X: 75, Y: 10}},
			{Kind: ProbeClosest, Segment: 1, At: Point{X: 30, Y: 35}},
			{Kind: ProbeCircle, Segment: 0, Circle: 0},
		},
		Orbit: Orbit{
			Axis:         "z",
			AngularSpeed: 0.05,
			Start:        Point{X: 12, Y: 0, Z: 6},
			Radius:       14,
		},
		Run: Run{
			MaxTicks: 1800,
			Speed:    SpeedNormal,
			Ramp: Ramp{
				Enabled: false,
				MaxAt:   1800,
				Gain:    1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default scene file.
func DefaultYAML() []byte {
	return defaultSceneYAML
}
