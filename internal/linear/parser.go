package linear

import (
	"regexp"
	"strconv"
	"strings"
)

var implicitMulPattern = regexp.MustCompile(`([0-9)])([xX(])`)

// EvalExpr parses a linear expression in x into its affine form.
//
//	Expr   := Term (('+' | '-') Term)*
//	Term   := Factor (('*' | '/') Factor)*
//	Factor := ('+' | '-')* ( '(' Expr ')' | 'x' | Number )
//
// ok is false when the input does not parse completely or is not linear.
func EvalExpr(expr string) (Affine, bool) {
	src := strings.Join(strings.Fields(expr), "")
	src = implicitMulPattern.ReplaceAllString(src, "${1}*${2}")

	p := &parser{src: src}
	result, ok := p.parseExpr()
	if !ok || p.pos != len(p.src) {
		return Affine{}, false
	}
	return result, true
}

type parser struct {
	src string
	pos int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) parseExpr() (Affine, bool) {
	left, ok := p.parseTerm()
	if !ok {
		return Affine{}, false
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, true
		}
		p.pos++
		right, ok := p.parseTerm()
		if !ok {
			return Affine{}, false
		}
		if op == '+' {
			left = left.add(right)
		} else {
			left = left.sub(right)
		}
	}
}

func (p *parser) parseTerm() (Affine, bool) {
	left, ok := p.parseFactor()
	if !ok {
		return Affine{}, false
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return left, true
		}
		p.pos++
		right, ok := p.parseFactor()
		if !ok {
			return Affine{}, false
		}
		if op == '*' {
			left, ok = left.mul(right)
		} else {
			left, ok = left.div(right)
		}
		if !ok {
			return Affine{}, false
		}
	}
}

func (p *parser) parseFactor() (Affine, bool) {
	negative := false
	for p.peek() == '+' || p.peek() == '-' {
		if p.peek() == '-' {
			negative = !negative
		}
		p.pos++
	}

	var (
		value Affine
		ok    bool
	)
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		value, ok = p.parseExpr()
		if !ok || p.peek() != ')' {
			return Affine{}, false
		}
		p.pos++
	case c == 'x' || c == 'X':
		p.pos++
		value, ok = Affine{AX: 1}, true
	case ('0' <= c && c <= '9') || c == '.':
		value, ok = p.parseNumber()
	}
	if !ok {
		return Affine{}, false
	}

	if negative {
		value = value.neg()
	}
	return value, true
}

func (p *parser) parseNumber() (Affine, bool) {
	start := p.pos
	for c := p.peek(); ('0' <= c && c <= '9') || c == '.'; c = p.peek() {
		p.pos++
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return Affine{}, false
	}
	return Affine{B: v}, true
}
