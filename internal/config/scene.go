// Package config provides YAML scene loading, validation and speed presets
// for the vecgeom simulations and the scene checker.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/vecgeom/vector"
)

// ErrInvalidScene is wrapped by every validation error.
var ErrInvalidScene = errors.New("invalid scene")

// Point is a vector written in YAML as a 2- or 3-element sequence.
type Point vector.Vector

// UnmarshalYAML decodes [x, y] or [x, y, z] through vector.New, so arity
// errors surface as config errors.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	var cs []float64
	if err := node.Decode(&cs); err != nil {
		return fmt.Errorf("line %d: expected [x, y] or [x, y, z]: %w", node.Line, err)
	}
	v, err := vector.New(cs...)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = Point(v)
	return nil
}

// Vec returns the point as a vector.
func (p Point) Vec() vector.Vector {
	return vector.Vector(p)
}

// Scene describes the world shared by the simulations and the checker.
type Scene struct {
	Name     string    `yaml:"name"`
	Bounds   Bounds    `yaml:"bounds"`
	Segments []Segment `yaml:"segments"`
	Circles  []Circle  `yaml:"circles"`
	Probes   []Probe   `yaml:"probes"`
	Orbit    Orbit     `yaml:"orbit"`
	Run      Run       `yaml:"run"`
}

// Bounds is the world size. The origin is the bottom-left corner.
type Bounds struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Segment is a wall between two points.
type Segment struct {
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// Circle is a ball with a per-tick velocity.
type Circle struct {
	Center   Point   `yaml:"center"`
	Radius   float64 `yaml:"radius"`
	Velocity Point   `yaml:"velocity"`
}

// ProbeKind selects the collision query a probe runs.
type ProbeKind string

const (
	ProbePoint   ProbeKind = "point"   // point on segment
	ProbeClosest ProbeKind = "closest" // closest point on the segment's line
	ProbeCircle  ProbeKind = "circle"  // segment against circle
)

// Probe is a single collision query against the scene geometry.
type Probe struct {
	Kind    ProbeKind `yaml:"kind"`
	Segment int       `yaml:"segment"`
	At      Point     `yaml:"at"`     // point and closest probes
	Circle  int       `yaml:"circle"` // circle probes
}

// Orbit configures the orbit simulation.
type Orbit struct {
	Axis         string  `yaml:"axis"`          // "x", "y" or "z"; empty means z
	AngularSpeed float64 `yaml:"angular_speed"` // radians per tick
	Start        Point   `yaml:"start"`
	Radius       float64 `yaml:"radius"` // when > 0, Start is rescaled to this length
}

// Run holds the shared simulation runtime settings.
type Run struct {
	MaxTicks int         `yaml:"max_ticks"` // 0 runs until quit
	Speed    SpeedPreset `yaml:"speed"`
	Ramp     Ramp        `yaml:"ramp"`
}

// ParseScene decodes and validates a scene. Missing optional fields get
// their defaults.
func ParseScene(data []byte) (Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scene{}, err
	}
	sc.applyDefaults()
	if err := sc.Validate(); err != nil {
		return Scene{}, err
	}
	return sc, nil
}

func (sc *Scene) applyDefaults() {
	if sc.Name == "" {
		sc.Name = DefaultSceneName
	}
	if sc.Bounds.W == 0 && sc.Bounds.H == 0 {
		sc.Bounds = DefaultScene().Bounds
	}
	if sc.Run.Speed == "" {
		sc.Run.Speed = SpeedNormal
	}
}

// Validate checks indices, sizes, axes and presets.
func (sc Scene) Validate() error {
	if sc.Bounds.W <= 0 || sc.Bounds.H <= 0 {
		return invalid("bounds must be positive, got %gx%g", sc.Bounds.W, sc.Bounds.H)
	}
	for i, s := range sc.Segments {
		if s.From == s.To {
			return invalid("segment %d has zero length at %v", i, s.From.Vec())
		}
	}
	for i, c := range sc.Circles {
		if c.Radius < 0 {
			return invalid("circle %d has negative radius %g", i, c.Radius)
		}
	}
	for i, p := range sc.Probes {
		if err := sc.validateProbe(p); err != nil {
			return fmt.Errorf("probe %d: %w", i, err)
		}
	}
	if _, err := vector.ParseAxis(sc.Orbit.Axis); err != nil {
		return fmt.Errorf("orbit: %w: %w", err, ErrInvalidScene)
	}
	if sc.Orbit.Radius < 0 {
		return invalid("orbit radius must not be negative, got %g", sc.Orbit.Radius)
	}
	if sc.Run.MaxTicks < 0 {
		return invalid("max_ticks must not be negative, got %d", sc.Run.MaxTicks)
	}
	if _, err := ParseSpeedPreset(string(sc.Run.Speed)); err != nil {
		return fmt.Errorf("run: %w: %w", err, ErrInvalidScene)
	}
	return nil
}

func (sc Scene) validateProbe(p Probe) error {
	if p.Segment < 0 || p.Segment >= len(sc.Segments) {
		return invalid("segment index %d out of range [0,%d)", p.Segment, len(sc.Segments))
	}
	switch p.Kind {
	case ProbePoint, ProbeClosest:
		return nil
	case ProbeCircle:
		if p.Circle < 0 || p.Circle >= len(sc.Circles) {
			return invalid("circle index %d out of range [0,%d)", p.Circle, len(sc.Circles))
		}
		return nil
	default:
		return invalid("unknown kind %q", p.Kind)
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidScene)
}
