// Package probe runs the collision queries declared in a scene.
package probe

import (
	"fmt"

	"github.com/vovakirdan/vecgeom/internal/config"
	"github.com/vovakirdan/vecgeom/intersect"
	"github.com/vovakirdan/vecgeom/vector"
)

// Result is the outcome of one probe.
type Result struct {
	Index   int
	Kind    config.ProbeKind
	Segment config.Segment

	// Hit is set by point and circle probes, and by closest probes when the
	// projection lands on the segment.
	Hit bool

	// Closest is the projection computed by closest probes.
	Closest vector.Vector

	Err error
}

// Evaluate runs every probe of a validated scene in order.
// Errors are reported per probe and never stop the remaining probes.
func Evaluate(sc config.Scene) []Result {
	results := make([]Result, 0, len(sc.Probes))
	for i, p := range sc.Probes {
		results = append(results, run(sc, i, p))
	}
	return results
}

func run(sc config.Scene, i int, p config.Probe) Result {
	res := Result{Index: i, Kind: p.Kind}
	if p.Segment < 0 || p.Segment >= len(sc.Segments) {
		res.Err = fmt.Errorf("probe: segment index %d out of range", p.Segment)
		return res
	}
	seg := sc.Segments[p.Segment]
	res.Segment = seg
	l1, l2 := seg.From.Vec(), seg.To.Vec()

	switch p.Kind {
	case config.ProbePoint:
		res.Hit = intersect.LinePointCollision(l1, l2, p.At.Vec())

	case config.ProbeClosest:
		res.Closest, res.Err = intersect.LineClosestPoint(l1, l2, p.At.Vec())
		if res.Err == nil {
			res.Hit = intersect.LinePointCollision(l1, l2, res.Closest)
		}

	case config.ProbeCircle:
		if p.Circle < 0 || p.Circle >= len(sc.Circles) {
			res.Err = fmt.Errorf("probe: circle index %d out of range", p.Circle)
			return res
		}
		c := sc.Circles[p.Circle]
		res.Hit, res.Err = intersect.LineCircleCollision(l1, l2, c.Center.Vec(), c.Radius)

	default:
		res.Err = fmt.Errorf("probe: unknown kind %q", p.Kind)
	}
	return res
}

// Describe returns a one-line description of the query.
func Describe(sc config.Scene, r Result) string {
	p := sc.Probes[r.Index]
	seg := fmt.Sprintf("%v→%v", r.Segment.From.Vec(), r.Segment.To.Vec())
	switch r.Kind {
	case config.ProbePoint:
		return fmt.Sprintf("%v on %s", p.At.Vec(), seg)
	case config.ProbeClosest:
		return fmt.Sprintf("closest to %v on %s", p.At.Vec(), seg)
	case config.ProbeCircle:
		if p.Circle >= 0 && p.Circle < len(sc.Circles) {
			c := sc.Circles[p.Circle]
			return fmt.Sprintf("circle %v r=%g vs %s", c.Center.Vec(), c.Radius, seg)
		}
	}
	return seg
}

// Outcome formats the result column for a probe.
func (r Result) Outcome() string {
	switch {
	case r.Err != nil:
		return "error: " + r.Err.Error()
	case r.Kind == config.ProbeClosest && r.Hit:
		return fmt.Sprintf("%v (on segment)", r.Closest)
	case r.Kind == config.ProbeClosest:
		return fmt.Sprintf("%v (off segment)", r.Closest)
	case r.Hit:
		return "hit"
	default:
		return "miss"
	}
}
