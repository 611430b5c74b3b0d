package latex

import (
	"fmt"
	"strings"
)

// Render parses a math.js-style expression (numbers, names, function calls,
// + - * / ^, unary signs, parentheses and an optional single '=') and returns
// its LaTeX form. Multiplication is written as \cdot.
func Render(expr string) (string, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return "", err
	}
	p := &renderParser{tokens: tokens}
	n, err := p.parseEquation()
	if err != nil {
		return "", err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return "", fmt.Errorf("unexpected %q at offset %d", tok.text, tok.pos)
	}
	return n.latex(), nil
}

// ---------- Tokens ----------

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenName
	tokenOperator
	tokenLParen
	tokenRParen
	tokenComma
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func tokenize(s string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isSpace(c):
			i++
		case isDigit(c) || (c == '.' && i+1 < len(s) && isDigit(s[i+1])):
			j := i
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			if j < len(s) && s[j] == '.' {
				j++
				for j < len(s) && isDigit(s[j]) {
					j++
				}
			}
			tokens = append(tokens, token{kind: tokenNumber, text: s[i:j], pos: i})
			i = j
		case isLetter(c) || c == '_':
			j := i + 1
			for j < len(s) && (isLetter(s[j]) || isDigit(s[j]) || s[j] == '_') {
				j++
			}
			tokens = append(tokens, token{kind: tokenName, text: s[i:j], pos: i})
			i = j
		case strings.IndexByte("+-*/^=", c) >= 0:
			tokens = append(tokens, token{kind: tokenOperator, text: string(c), pos: i})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokenLParen, text: "(", pos: i})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenRParen, text: ")", pos: i})
			i++
		case c == ',':
			tokens = append(tokens, token{kind: tokenComma, text: ",", pos: i})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q at offset %d", s[i:], i)
		}
	}
	return append(tokens, token{kind: tokenEOF, pos: len(s)}), nil
}

// ---------- Parser ----------
//
//	equation := expr ['=' expr]
//	expr     := term (('+' | '-') term)*
//	term     := unary (('*' | '/') unary)*
//	unary    := ('+' | '-') unary | power
//	power    := primary ['^' unary]
//	primary  := number | name ['(' [expr (',' expr)*] ')'] | '(' expr ')'

type renderParser struct {
	tokens []token
	pos    int
}

func (p *renderParser) peek() token {
	return p.tokens[p.pos]
}

func (p *renderParser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *renderParser) isOperator(ops string) bool {
	tok := p.peek()
	return tok.kind == tokenOperator && strings.Contains(ops, tok.text)
}

func (p *renderParser) parseEquation() (node, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.isOperator("=") {
		return left, nil
	}
	p.next()
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: '=', left: left, right: right}, nil
}

func (p *renderParser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.isOperator("+-") {
		op := p.next().text[0]
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *renderParser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.isOperator("*/") {
		op := p.next().text[0]
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *renderParser) parseUnary() (node, error) {
	if p.isOperator("+-") {
		op := p.next().text[0]
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: op, operand: operand}, nil
	}
	return p.parsePower()
}

func (p *renderParser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.isOperator("^") {
		return base, nil
	}
	p.next()
	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: '^', left: base, right: exponent}, nil
}

func (p *renderParser) parsePrimary() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNumber:
		return numberNode{text: tok.text}, nil

	case tokenName:
		if p.peek().kind != tokenLParen {
			return symbolNode{name: tok.text}, nil
		}
		p.next()
		var args []node
		if p.peek().kind != tokenRParen {
			for {
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.peek().kind != tokenComma {
					break
				}
				p.next()
			}
		}
		if err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return callNode{name: tok.text, args: args}, nil

	case tokenLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return groupNode{inner: inner}, nil
	}

	if tok.kind == tokenEOF {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	return nil, fmt.Errorf("unexpected %q at offset %d", tok.text, tok.pos)
}

func (p *renderParser) expect(kind tokenKind) error {
	tok := p.next()
	if tok.kind != kind {
		if tok.kind == tokenEOF {
			return fmt.Errorf("unexpected end of expression")
		}
		return fmt.Errorf("unexpected %q at offset %d", tok.text, tok.pos)
	}
	return nil
}

// ---------- Nodes ----------

type node interface {
	latex() string
}

type numberNode struct{ text string }

func (n numberNode) latex() string { return n.text }

var symbolLatex = map[string]string{
	"pi":       `\pi`,
	"alpha":    `\alpha`,
	"beta":     `\beta`,
	"gamma":    `\gamma`,
	"theta":    `\theta`,
	"Infinity": `\infty`,
}

type symbolNode struct{ name string }

func (n symbolNode) latex() string {
	if s, ok := symbolLatex[n.name]; ok {
		return s
	}
	return n.name
}

type groupNode struct{ inner node }

func (n groupNode) latex() string { return `\left(` + n.inner.latex() + `\right)` }

type unaryNode struct {
	op      byte
	operand node
}

func (n unaryNode) latex() string {
	if n.op == '+' {
		return "+" + n.operand.latex()
	}
	return "-" + n.operand.latex()
}

type binaryNode struct {
	op          byte
	left, right node
}

func (n binaryNode) latex() string {
	switch n.op {
	case '*':
		return n.left.latex() + `\cdot ` + n.right.latex()
	case '/':
		return `\frac{` + ungroup(n.left).latex() + `}{` + ungroup(n.right).latex() + `}`
	case '^':
		return n.left.latex() + `^{` + ungroup(n.right).latex() + `}`
	}
	return n.left.latex() + string(n.op) + n.right.latex()
}

type callNode struct {
	name string
	args []node
}

var namedFunctions = map[string]string{
	"sin": `\sin`,
	"cos": `\cos`,
	"tan": `\tan`,
	"log": `\log`,
	"ln":  `\ln`,
	"exp": `\exp`,
}

func (n callNode) latex() string {
	switch {
	case n.name == "sqrt" && len(n.args) == 1:
		return `\sqrt{` + n.args[0].latex() + `}`
	case n.name == "nthRoot" && len(n.args) == 2:
		return `\sqrt[` + n.args[1].latex() + `]{` + n.args[0].latex() + `}`
	case n.name == "abs" && len(n.args) == 1:
		return `\left|` + n.args[0].latex() + `\right|`
	}

	args := make([]string, len(n.args))
	for i, arg := range n.args {
		args[i] = arg.latex()
	}
	name, ok := namedFunctions[n.name]
	if !ok {
		name = `\mathrm{` + n.name + `}`
	}
	return name + `\left(` + strings.Join(args, ",") + `\right)`
}

func ungroup(n node) node {
	if g, ok := n.(groupNode); ok {
		return g.inner
	}
	return n
}
