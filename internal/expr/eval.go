package expr

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/vecgeom/vector"
)

// Eval parses and evaluates a single expression:
//
//	expr := term (op term)?
//	term := number | "-" term | "(" expr ("," expr)* ")" | ident | ident "(" args ")"
//
// The left operand of an operator must be a vector (or a number for plain
// arithmetic). Mutating operators such as "+=" evaluate to the left vector
// after mutation. Errors from package vector are wrapped, so errors.Is still
// matches its sentinels.
func Eval(src string) (Value, error) {
	toks, err := lex(src)
	if err != nil {
		return Value{}, err
	}

	p := &parser{toks: toks}
	v, err := p.expr()
	if err != nil {
		return Value{}, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return Value{}, fmt.Errorf("expr: unexpected %s at %d", tok, tok.pos)
	}

	if v.literal != nil {
		vec, err := v.vector()
		if err != nil {
			return Value{}, fmt.Errorf("expr: %w", err)
		}
		return vectorValue(vec), nil
	}
	return v, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokenKind, what string) error {
	if tok := p.next(); tok.kind != kind {
		return fmt.Errorf("expr: expected %s, got %s at %d", what, tok, tok.pos)
	}
	return nil
}

func (p *parser) expr() (Value, error) {
	lhs, err := p.term()
	if err != nil {
		return Value{}, err
	}
	if p.peek().kind != tokOp {
		return lhs, nil
	}

	opTok := p.next()
	op, err := vector.ParseOp(opTok.text)
	if err != nil {
		return Value{}, fmt.Errorf("expr: %w", err)
	}
	rhs, err := p.term()
	if err != nil {
		return Value{}, err
	}
	return binary(lhs, op, rhs)
}

func (p *parser) term() (Value, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return numberValue(tok.num), nil

	case tokOp:
		if tok.text != "-" {
			return Value{}, fmt.Errorf("expr: unexpected %s at %d", tok, tok.pos)
		}
		v, err := p.term()
		if err != nil {
			return Value{}, err
		}
		return negate(v)

	case tokLParen:
		return p.group()

	case tokIdent:
		if p.peek().kind == tokLParen {
			p.next()
			args, err := p.args()
			if err != nil {
				return Value{}, err
			}
			return call(tok.text, args)
		}
		return constant(tok.text)

	default:
		return Value{}, fmt.Errorf("expr: unexpected %s at %d", tok, tok.pos)
	}
}

// group parses the rest of "(" expr ("," expr)* ")". A single element is
// plain grouping; a list of numbers is a vector literal.
func (p *parser) group() (Value, error) {
	items, err := p.args()
	if err != nil {
		return Value{}, err
	}
	if len(items) == 1 {
		return items[0], nil
	}

	comps := make([]float64, len(items))
	for i, it := range items {
		f, err := it.number()
		if err != nil {
			return Value{}, fmt.Errorf("expr: vector component %d: %w", i, err)
		}
		comps[i] = f
	}
	return Value{Kind: KindVector, literal: comps}, nil
}

// args parses a comma separated list up to and including ")".
func (p *parser) args() ([]Value, error) {
	var out []Value
	if p.peek().kind == tokRParen {
		p.next()
		return out, nil
	}
	for {
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		if p.peek().kind == tokComma {
			p.next()
			continue
		}
		if err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		return out, nil
	}
}

func negate(v Value) (Value, error) {
	switch v.Kind {
	case KindNumber:
		return numberValue(-v.Num), nil
	case KindVector:
		vec, err := v.vector()
		if err != nil {
			return Value{}, fmt.Errorf("expr: %w", err)
		}
		return vectorValue(*vec.Scale(-1)), nil
	default:
		return Value{}, fmt.Errorf("expr: cannot negate %s: %w", v.Kind, ErrType)
	}
}

// constants lists the names constant resolves, in display order.
var constants = []struct {
	names []string
	help  string
}{
	{[]string{"pi"}, "the circle constant 3.14159..."},
	{[]string{"tau"}, "2*pi"},
	{[]string{"zero"}, "the zero vector (0, 0)"},
	{[]string{"x", "y", "z"}, "rotation axes for rotate"},
}

// Constants returns one usage line per named constant.
func Constants() []string {
	out := make([]string, len(constants))
	for i, c := range constants {
		out[i] = strings.Join(c.names, ", ") + " " + c.help
	}
	return out
}

func constant(name string) (Value, error) {
	switch name {
	case "pi":
		return numberValue(math.Pi), nil
	case "tau":
		return numberValue(2 * math.Pi), nil
	case "zero":
		return vectorValue(vector.Zero()), nil
	case "x", "y", "z":
		axis, _ := vector.ParseAxis(name)
		return Value{Kind: KindAxis, Axis: axis}, nil
	default:
		return Value{}, fmt.Errorf("expr: unknown name %q", name)
	}
}

func binary(lhs Value, op vector.Op, rhs Value) (Value, error) {
	if lhs.Kind == KindNumber {
		return arithmetic(lhs, op, rhs)
	}

	v, err := lhs.vector()
	if err != nil {
		return Value{}, fmt.Errorf("expr: left of %s: %w", op, err)
	}
	arg, err := rhs.operand()
	if err != nil {
		return Value{}, fmt.Errorf("expr: right of %s: %w", op, err)
	}
	res, err := v.Apply(op, arg)
	if err != nil {
		return Value{}, fmt.Errorf("expr: %w", err)
	}
	if res.IsBool {
		return Value{Kind: KindBool, Bool: res.Bool}, nil
	}
	return vectorValue(res.Vector), nil
}

// arithmetic handles number op number. Assignment operators need a vector
// on the left.
func arithmetic(lhs Value, op vector.Op, rhs Value) (Value, error) {
	b, err := rhs.number()
	if err != nil {
		return Value{}, fmt.Errorf("expr: right of %s: %w", op, err)
	}
	a := lhs.Num

	switch op {
	case vector.OpAdd:
		return numberValue(a + b), nil
	case vector.OpSub:
		return numberValue(a - b), nil
	case vector.OpMul:
		return numberValue(a * b), nil
	case vector.OpDiv, vector.OpMod:
		if b == 0 {
			return Value{}, fmt.Errorf("expr: %g %s 0: %w", a, op, vector.ErrDivideByZero)
		}
		if op == vector.OpMod {
			return numberValue(math.Mod(a, b)), nil
		}
		return numberValue(a / b), nil
	case vector.OpEq:
		return Value{Kind: KindBool, Bool: a == b}, nil
	default:
		return Value{}, fmt.Errorf("expr: %s needs a vector on the left: %w", op, ErrType)
	}
}
