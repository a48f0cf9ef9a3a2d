// Package orbit spins a 3D point about a chosen axis and draws its xy
// projection, a fading trail and a heading needle.
package orbit

import (
	"fmt"
	"math"

	"github.com/vovakirdan/vecgeom/internal/config"
	"github.com/vovakirdan/vecgeom/internal/core"
	"github.com/vovakirdan/vecgeom/internal/registry"
	"github.com/vovakirdan/vecgeom/vector"
)

const (
	TrailLen     = 48
	NeedleLength = 4.0 // World units
)

// Visual characters for rendering
const (
	PointChar  = '●'
	TrailChar  = '·'
	NeedleChar = '*'
	AxisChar   = '+'
)

var axisOrder = []vector.Axis{vector.AxisZ, vector.AxisX, vector.AxisY}

// Sim implements the orbit simulation.
type Sim struct {
	scene  config.Scene
	ramp   *config.SpeedRamp
	start  vector.Vector
	point  vector.Vector
	axis   vector.Axis
	trail  []vector.Vector
	turned float64 // Total angle rotated, radians
	ticks  int
	paused bool
	config core.RuntimeConfig
}

// New creates an orbit simulation over the default scene.
func New() *Sim {
	s := &Sim{}
	s.Configure(config.DefaultScene())
	return s
}

// ID returns the unique identifier for this simulation.
func (s *Sim) ID() string {
	return "orbit"
}

// Title returns the display name for this simulation.
func (s *Sim) Title() string {
	return "Orbit"
}

// Configure replaces the scene. It takes effect on the next Reset.
func (s *Sim) Configure(sc config.Scene) {
	s.scene = sc
}

// Reset puts the point back at its start position.
func (s *Sim) Reset(cfg core.RuntimeConfig) {
	s.config = cfg
	s.ramp = config.NewSpeedRamp(s.scene.Run.Speed, s.scene.Run.Ramp)
	s.start = startPoint(s.scene.Orbit)
	s.point = s.start
	s.axis, _ = vector.ParseAxis(s.scene.Orbit.Axis) // Validated with the scene
	s.trail = s.trail[:0]
	s.turned = 0
	s.ticks = 0
	s.paused = false
}

// startPoint applies the orbit radius to the configured start.
func startPoint(o config.Orbit) vector.Vector {
	p := o.Start.Vec()
	if o.Radius <= 0 {
		return p
	}
	if _, err := p.SetMagnitude(o.Radius); err != nil {
		return vector.New2(o.Radius, 0)
	}
	return p
}

// Step advances the simulation by one tick.
func (s *Sim) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		s.Reset(s.config)
		return core.StepResult{State: s.State()}
	}
	if s.finished() {
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionUp) {
		s.axis = cycleAxis(s.axis, 1)
	}
	if in.Has(core.ActionDown) {
		s.axis = cycleAxis(s.axis, -1)
	}

	angle := s.scene.Orbit.AngularSpeed * s.speed()
	if _, err := s.point.RotateAbout(angle, s.axis); err == nil {
		s.turned += math.Abs(angle)
	}

	s.trail = append(s.trail, s.point.XY())
	if len(s.trail) > TrailLen {
		s.trail = s.trail[len(s.trail)-TrailLen:]
	}
	s.ticks++

	return core.StepResult{State: s.State()}
}

// cycleAxis steps through z, x, y in the given direction.
func cycleAxis(a vector.Axis, dir int) vector.Axis {
	for i, ax := range axisOrder {
		if ax == a {
			n := len(axisOrder)
			return axisOrder[((i+dir)%n+n)%n]
		}
	}
	return vector.AxisZ
}

func (s *Sim) speed() float64 {
	base := s.config.Speed
	if base <= 0 {
		base = 1
	}
	return base * s.ramp.Speed(s.ticks)
}

// revolutions counts full turns, tolerating rounding in the summed angle.
func (s *Sim) revolutions() int {
	return int((s.turned + 1e-9) / (2 * math.Pi))
}

func (s *Sim) finished() bool {
	return s.scene.Run.MaxTicks > 0 && s.ticks >= s.scene.Run.MaxTicks
}

// Render draws the projection centered in the scene bounds.
func (s *Sim) Render(dst *core.Screen) {
	dst.Clear()
	w, h := s.scene.Bounds.W, s.scene.Bounds.H
	vp := core.NewViewport(w, h, dst.Width(), dst.Height())
	center := vector.New2(w/2, h/2)

	// Axes through the center
	dst.DrawLine(vp, vector.New2(0, h/2), vector.New2(w, h/2), '─', core.ColorGray)
	dst.DrawLine(vp, vector.New2(w/2, 0), vector.New2(w/2, h), '│', core.ColorGray)

	for _, p := range s.trail {
		x, y := vp.ToCell(vector.Add(center, p))
		dst.SetColored(x, y, TrailChar, core.ColorBlue)
	}

	// Needle from the center pointing along the projection's heading
	proj := s.point.XY()
	if !proj.IsZero() {
		needle := vector.New2(1, 0)
		needle.SetHeading(proj.Heading())
		if _, err := needle.SetMagnitude(math.Min(NeedleLength, proj.Magnitude())); err == nil {
			dst.DrawLine(vp, center, vector.Add(center, needle), NeedleChar, core.ColorYellow)
		}
	}

	cx, cy := vp.ToCell(center)
	dst.SetColored(cx, cy, AxisChar, core.ColorGray)
	x, y := vp.ToCell(vector.Add(center, proj))
	dst.SetColored(x, y, PointChar, core.ColorCyan)

	hud := fmt.Sprintf(" axis %s  rev %d  p=%s ", s.axis, s.revolutions(), s.point)
	dst.DrawTextColored(2, 0, hud, core.ColorCyan)
	swz := fmt.Sprintf(" xz=%s  yz=%s ", s.point.XZ(), s.point.YZ())
	dst.DrawTextColored(2, dst.Height()-1, swz, core.ColorGray)

	if s.paused {
		dst.DrawTextCentered(dst.Height()/2-2, " PAUSED - press P to resume ", core.ColorYellow)
	}
	if s.finished() {
		dst.DrawTextCentered(dst.Height()/2-2, fmt.Sprintf(" DONE  %d revolutions  |  R to restart ", s.revolutions()), core.ColorYellow)
	}
}

// State returns the current simulation state.
func (s *Sim) State() core.SimState {
	return core.SimState{
		Ticks:    s.ticks,
		Events:   s.revolutions(),
		Finished: s.finished(),
		Paused:   s.paused,
	}
}

func init() {
	registry.Register("orbit", func() registry.Sim {
		return New()
	})
}
