package expr

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/vecgeom/intersect"
	"github.com/vovakirdan/vecgeom/vector"
)

type builtin struct {
	minArgs, maxArgs int
	help             string
	fn               func(args []Value) (Value, error)
}

var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"mag":     {1, 1, "mag(v) length of v", withVec(func(v vector.Vector) (Value, error) { return numberValue(v.Magnitude()), nil })},
		"magsq":   {1, 1, "magsq(v) squared length of v", withVec(func(v vector.Vector) (Value, error) { return numberValue(v.MagnitudeSquared()), nil })},
		"heading": {1, 1, "heading(v) angle of v in the xy plane", withVec(func(v vector.Vector) (Value, error) { return numberValue(v.Heading()), nil })},
		"abs":     {1, 1, "abs(v) component-wise absolute value", withVec(func(v vector.Vector) (Value, error) { return vectorValue(v.Abs()), nil })},
		"xy":      {1, 1, "xy(v) 2D swizzle", withVec(func(v vector.Vector) (Value, error) { return vectorValue(v.XY()), nil })},
		"xz":      {1, 1, "xz(v) 2D swizzle", withVec(func(v vector.Vector) (Value, error) { return vectorValue(v.XZ()), nil })},
		"yz":      {1, 1, "yz(v) 2D swizzle", withVec(func(v vector.Vector) (Value, error) { return vectorValue(v.YZ()), nil })},
		"normalize": {1, 1, "normalize(v) unit vector along v", withVec(func(v vector.Vector) (Value, error) {
			return fallible(vector.Normalize(v))
		})},
		"dot": {2, 2, "dot(a, b) scalar product", func(args []Value) (Value, error) {
			a, b, err := twoVecs(args)
			if err != nil {
				return Value{}, err
			}
			return numberValue(vector.Dot(a, b)), nil
		}},
		"min": {2, 2, "min(a, b) component-wise minimum", func(args []Value) (Value, error) {
			a, b, err := twoVecs(args)
			if err != nil {
				return Value{}, err
			}
			return vectorValue(a.Min(b)), nil
		}},
		"max": {2, 2, "max(a, b) component-wise maximum", func(args []Value) (Value, error) {
			a, b, err := twoVecs(args)
			if err != nil {
				return Value{}, err
			}
			return vectorValue(a.Max(b)), nil
		}},
		"reflect": {2, 2, "reflect(v, n) v mirrored about n", func(args []Value) (Value, error) {
			v, n, err := twoVecs(args)
			if err != nil {
				return Value{}, err
			}
			return vectorValue(*v.Reflect(n)), nil
		}},
		"lerp": {3, 3, "lerp(a, b, t) linear interpolation", func(args []Value) (Value, error) {
			a, b, err := twoVecs(args)
			if err != nil {
				return Value{}, err
			}
			t, err := args[2].number()
			if err != nil {
				return Value{}, err
			}
			return vectorValue(vector.Lerp(a, b, t)), nil
		}},
		"rotate": {2, 3, "rotate(v, angle[, x|y|z]) rotation, about z by default", rotate},
		"setmag": {2, 2, "setmag(v, n) v rescaled to length n", func(args []Value) (Value, error) {
			v, n, err := vecAndNumber(args)
			if err != nil {
				return Value{}, err
			}
			r, err := v.SetMagnitude(n)
			if err != nil {
				return Value{}, fmt.Errorf("expr: %w", err)
			}
			return vectorValue(*r), nil
		}},
		"setheading": {2, 2, "setheading(v, angle) v turned to face angle", func(args []Value) (Value, error) {
			v, a, err := vecAndNumber(args)
			if err != nil {
				return Value{}, err
			}
			return vectorValue(*v.SetHeading(a)), nil
		}},
		"onseg": {3, 3, "onseg(l1, l2, p) whether p lies on the segment", func(args []Value) (Value, error) {
			vs, err := vecs(args)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindBool, Bool: intersect.LinePointCollision(vs[0], vs[1], vs[2])}, nil
		}},
		"closest": {3, 3, "closest(l1, l2, p) projection of p on the line", func(args []Value) (Value, error) {
			vs, err := vecs(args)
			if err != nil {
				return Value{}, err
			}
			return fallible(intersect.LineClosestPoint(vs[0], vs[1], vs[2]))
		}},
		"hitcircle": {4, 4, "hitcircle(l1, l2, c, r) whether the segment touches the circle", func(args []Value) (Value, error) {
			vs, err := vecs(args[:3])
			if err != nil {
				return Value{}, err
			}
			r, err := args[3].number()
			if err != nil {
				return Value{}, err
			}
			hit, err := intersect.LineCircleCollision(vs[0], vs[1], vs[2], r)
			if err != nil {
				return Value{}, fmt.Errorf("expr: %w", err)
			}
			return Value{Kind: KindBool, Bool: hit}, nil
		}},
	}
}

// Functions returns one usage line per builtin, sorted by name.
func Functions() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]string, len(names))
	for i, name := range names {
		out[i] = builtins[name].help
	}
	return out
}

func call(name string, args []Value) (Value, error) {
	b, ok := builtins[name]
	if !ok {
		return Value{}, fmt.Errorf("expr: unknown function %q", name)
	}
	if len(args) < b.minArgs || len(args) > b.maxArgs {
		if b.minArgs == b.maxArgs {
			return Value{}, fmt.Errorf("expr: %s takes %d arguments, got %d", name, b.minArgs, len(args))
		}
		return Value{}, fmt.Errorf("expr: %s takes %d to %d arguments, got %d", name, b.minArgs, b.maxArgs, len(args))
	}
	return b.fn(args)
}

func rotate(args []Value) (Value, error) {
	v, angle, err := vecAndNumber(args[:2])
	if err != nil {
		return Value{}, err
	}
	axis := vector.AxisZ
	if len(args) == 3 {
		if args[2].Kind != KindAxis {
			return Value{}, fmt.Errorf("expr: rotate axis must be x, y or z, got %s: %w", args[2].Kind, ErrType)
		}
		axis = args[2].Axis
	}
	return fallible(vector.Rotate(v, angle, axis))
}

func withVec(fn func(vector.Vector) (Value, error)) func([]Value) (Value, error) {
	return func(args []Value) (Value, error) {
		v, err := args[0].vector()
		if err != nil {
			return Value{}, err
		}
		return fn(v)
	}
}

func fallible(v vector.Vector, err error) (Value, error) {
	if err != nil {
		return Value{}, fmt.Errorf("expr: %w", err)
	}
	return vectorValue(v), nil
}

func vecs(args []Value) ([]vector.Vector, error) {
	out := make([]vector.Vector, len(args))
	for i, a := range args {
		v, err := a.vector()
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func twoVecs(args []Value) (a, b vector.Vector, err error) {
	vs, err := vecs(args[:2])
	if err != nil {
		return a, b, err
	}
	return vs[0], vs[1], nil
}

func vecAndNumber(args []Value) (vector.Vector, float64, error) {
	v, err := args[0].vector()
	if err != nil {
		return v, 0, err
	}
	n, err := args[1].number()
	return v, n, err
}
