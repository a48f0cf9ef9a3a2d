// Package bounce simulates balls bouncing off the walls of a scene.
// Every tick each ball is tested against every wall with
// intersect.LineCircleCollision and reflected about the wall's tangent.
package bounce

import (
	"fmt"
	"math"

	"github.com/vovakirdan/vecgeom/internal/config"
	"github.com/vovakirdan/vecgeom/internal/core"
	"github.com/vovakirdan/vecgeom/internal/registry"
	"github.com/vovakirdan/vecgeom/intersect"
	"github.com/vovakirdan/vecgeom/vector"
)

// Tuning
const (
	BoostStep = 1.25 // Up/Down multiply or divide the speed by this
	MinBoost  = 0.25
	MaxBoost  = 4.0
)

// Visual characters for rendering
const (
	WallChar   = '#'
	BorderChar = '·'
	BallChar   = 'o'
	CenterChar = '●'
)

// Ball is a moving circle.
type Ball struct {
	Pos    vector.Vector
	Vel    vector.Vector // World units per tick at speed 1
	Radius float64
}

// Wall is a segment balls bounce off.
type Wall struct {
	A, B   vector.Vector
	Border bool // Generated from the scene bounds
}

// Sim implements the bounce simulation.
type Sim struct {
	scene  config.Scene
	ramp   *config.SpeedRamp
	walls  []Wall
	balls  []Ball
	boost  float64
	ticks  int
	hits   int
	paused bool
	config core.RuntimeConfig
}

// New creates a bounce simulation over the default scene.
func New() *Sim {
	s := &Sim{}
	s.Configure(config.DefaultScene())
	return s
}

// ID returns the unique identifier for this simulation.
func (s *Sim) ID() string {
	return "bounce"
}

// Title returns the display name for this simulation.
func (s *Sim) Title() string {
	return "Bounce"
}

// Configure replaces the scene. It takes effect on the next Reset.
func (s *Sim) Configure(sc config.Scene) {
	s.scene = sc
}

// Reset places the balls at their starting positions.
func (s *Sim) Reset(cfg core.RuntimeConfig) {
	s.config = cfg
	s.ramp = config.NewSpeedRamp(s.scene.Run.Speed, s.scene.Run.Ramp)
	s.walls = buildWalls(s.scene)
	s.balls = s.balls[:0]
	for _, c := range s.scene.Circles {
		s.balls = append(s.balls, Ball{
			Pos:    c.Center.Vec(),
			Vel:    c.Velocity.Vec(),
			Radius: c.Radius,
		})
	}
	s.boost = 1
	s.ticks = 0
	s.hits = 0
	s.paused = false
}

// buildWalls returns the scene segments followed by the four borders.
func buildWalls(sc config.Scene) []Wall {
	walls := make([]Wall, 0, len(sc.Segments)+4)
	for _, seg := range sc.Segments {
		walls = append(walls, Wall{A: seg.From.Vec(), B: seg.To.Vec()})
	}

	w, h := sc.Bounds.W, sc.Bounds.H
	corners := []vector.Vector{
		vector.New2(0, 0),
		vector.New2(w, 0),
		vector.New2(w, h),
		vector.New2(0, h),
	}
	for i, c := range corners {
		walls = append(walls, Wall{A: c, B: corners[(i+1)%len(corners)], Border: true})
	}
	return walls
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
		s.boost = core.Clamp(s.boost*BoostStep, MinBoost, MaxBoost)
	}
	if in.Has(core.ActionDown) {
		s.boost = core.Clamp(s.boost/BoostStep, MinBoost, MaxBoost)
	}

	speed := s.speed()
	for i := range s.balls {
		s.hits += s.advance(&s.balls[i], speed)
	}
	s.ticks++

	return core.StepResult{State: s.State()}
}

// speed returns the current per-tick multiplier.
func (s *Sim) speed() float64 {
	base := s.config.Speed
	if base <= 0 {
		base = 1
	}
	return base * s.ramp.Speed(s.ticks) * s.boost
}

// advance moves one ball and resolves its collisions, returning the number
// of walls it bounced off.
func (s *Sim) advance(b *Ball, speed float64) int {
	b.Pos.Add(vector.Mult(b.Vel, speed))

	hits := 0
	for _, w := range s.walls {
		hit, err := intersect.LineCircleCollision(w.A, w.B, b.Pos, b.Radius)
		if err != nil || !hit {
			continue
		}
		n, depth, ok := contactNormal(w, b.Pos, b.Radius)
		if !ok {
			continue
		}
		// Already moving away: leave it alone so it does not stick.
		if b.Vel.Dot(n) >= 0 {
			continue
		}
		tangent := vector.New2(-n.Y, n.X)
		b.Vel.Reflect(tangent)
		b.Pos.Add(vector.Mult(n, depth))
		hits++
	}

	s.contain(b)
	return hits
}

// contactNormal returns the unit vector from the wall towards the ball
// center and how far the ball overlaps the wall along it.
func contactNormal(w Wall, center vector.Vector, radius float64) (n vector.Vector, depth float64, ok bool) {
	contact, err := intersect.LineClosestPoint(w.A, w.B, center)
	if err != nil {
		return n, 0, false
	}
	if !intersect.LinePointCollision(w.A, w.B, contact) {
		// Past the end: the nearest endpoint is the contact.
		contact = w.A
		if vector.Sub(center, w.B).MagnitudeSquared() < vector.Sub(center, w.A).MagnitudeSquared() {
			contact = w.B
		}
	}

	n = vector.Sub(center, contact)
	dist := n.Magnitude()
	if _, err := n.Normalize(); err != nil {
		// Center exactly on the wall: push out along the wall's left normal.
		dir, err := vector.Normalize(vector.Sub(w.B, w.A))
		if err != nil {
			return n, 0, false
		}
		n = vector.New2(-dir.Y, dir.X)
	}
	return n, math.Max(radius-dist, 0), true
}

// contain clamps a ball that tunnelled through a border back into bounds.
func (s *Sim) contain(b *Ball) {
	r := vector.New2(b.Radius, b.Radius)
	lo := r
	hi := vector.Sub(vector.New2(s.scene.Bounds.W, s.scene.Bounds.H), r)
	if hi.X < lo.X || hi.Y < lo.Y {
		return
	}

	clamped := b.Pos.Max(lo).Min(hi)
	if clamped.X != b.Pos.X {
		b.Vel.X = -b.Vel.X
	}
	if clamped.Y != b.Pos.Y {
		b.Vel.Y = -b.Vel.Y
	}
	b.Pos.SetXY(clamped)
}

func (s *Sim) finished() bool {
	return s.scene.Run.MaxTicks > 0 && s.ticks >= s.scene.Run.MaxTicks
}

// Render draws the walls, the balls and the HUD.
func (s *Sim) Render(dst *core.Screen) {
	dst.Clear()
	vp := core.NewViewport(s.scene.Bounds.W, s.scene.Bounds.H, dst.Width(), dst.Height())

	for _, w := range s.walls {
		if w.Border {
			dst.DrawLine(vp, w.A, w.B, BorderChar, core.ColorGray)
		} else {
			dst.DrawLine(vp, w.A, w.B, WallChar, core.ColorWhite)
		}
	}

	for i, b := range s.balls {
		c := core.AccentColor(i)
		dst.DrawCircle(vp, b.Pos, b.Radius, BallChar, c)
		x, y := vp.ToCell(b.Pos)
		dst.SetColored(x, y, CenterChar, c)
	}

	hud := fmt.Sprintf(" %s  tick %d  hits %d  speed x%.2f ", s.scene.Name, s.ticks, s.hits, s.speed())
	dst.DrawTextColored(2, 0, hud, core.ColorCyan)

	if s.paused {
		s.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if s.finished() {
		s.drawCenteredMessage(dst, "DONE", fmt.Sprintf("%d hits  |  R to restart", s.hits))
	}
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (s *Sim) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(subtitle), len(title)) + 6
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorYellow)
	dst.DrawTextCentered(boxY+1, title, core.ColorYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}

// State returns the current simulation state.
func (s *Sim) State() core.SimState {
	return core.SimState{
		Ticks:    s.ticks,
		Events:   s.hits,
		Finished: s.finished(),
		Paused:   s.paused,
	}
}

func init() {
	registry.Register("bounce", func() registry.Sim {
		return New()
	})
}
