// Package expr evaluates one-line vector expressions such as
// "(1,2) += (3,4)" or "rotate((1,0), pi/2)" using package vector.
package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

// Longest operators first so "+=" wins over "+".
var opSymbols = []string{"+=", "-=", "*=", "/=", "==", "=", "+", "-", "*", "/", "%"}

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case c == utf8.RuneError && size == 1:
			return nil, fmt.Errorf("expr: invalid UTF-8 at %d", i)
		case unicode.IsSpace(c):
			i += size
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma, text: ",", pos: i})
			i++
		case (c >= '0' && c <= '9') || c == '.':
			start := i
			for i < len(src) && isNumberByte(src, i) {
				i++
			}
			text := src[start:i]
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("expr: bad number %q at %d", text, start)
			}
			toks = append(toks, token{kind: tokNumber, text: text, num: f, pos: start})
		case unicode.IsLetter(c) || c == '_':
			start := i
			for i < len(src) {
				r, n := utf8.DecodeRuneInString(src[i:])
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
					break
				}
				i += n
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], pos: start})
		default:
			op := matchOp(src[i:])
			if op == "" {
				return nil, fmt.Errorf("expr: unexpected %q at %d", c, i)
			}
			toks = append(toks, token{kind: tokOp, text: op, pos: i})
			i += len(op)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}

// isNumberByte accepts digits, a decimal point and an exponent with sign.
func isNumberByte(src string, i int) bool {
	c := src[i]
	switch {
	case c >= '0' && c <= '9', c == '.', c == 'e', c == 'E':
		return true
	case c == '+' || c == '-':
		return i > 0 && (src[i-1] == 'e' || src[i-1] == 'E')
	}
	return false
}

func matchOp(s string) string {
	for _, op := range opSymbols {
		if strings.HasPrefix(s, op) {
			return op
		}
	}
	return ""
}
