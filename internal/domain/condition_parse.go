package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseCondition turns the admin editor's expression text, such as
// answers.state === 'CA' && answers.industry !== 'tech', into a Condition.
// Supported: === == !== != && || ! parentheses, quoted strings, numbers,
// true/false and bare paths (truthiness). Empty input yields nil.
func ParseCondition(text string) (*Condition, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := &condParser{toks: toks}
	c, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, fmt.Errorf("unexpected %q at offset %d", t.text, t.pos)
	}
	return &c, nil
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokPath
	tokLiteral
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokKind
	text string
	pos  int
}

var operators = []string{"===", "!==", "==", "!=", "&&", "||", "!"}

func lex(src string) ([]token, error) {
	var out []token
	rs := []rune(src)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			out = append(out, token{tokLParen, "(", i})
			i++
		case r == ')':
			out = append(out, token{tokRParen, ")", i})
			i++
		case r == '\'' || r == '"':
			start := i
			var sb strings.Builder
			i++
			for ; i < len(rs) && rs[i] != r; i++ {
				if rs[i] == '\\' && i+1 < len(rs) {
					i++
				}
				sb.WriteRune(rs[i])
			}
			if i >= len(rs) {
				return nil, fmt.Errorf("unterminated string at offset %d", start)
			}
			i++
			out = append(out, token{tokLiteral, sb.String(), start})
		case unicode.IsDigit(r) || r == '-':
			start := i
			i++
			for i < len(rs) && (unicode.IsDigit(rs[i]) || rs[i] == '.') {
				i++
			}
			out = append(out, token{tokLiteral, string(rs[start:i]), start})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i]) || rs[i] == '_' || rs[i] == '.' || rs[i] == '?') {
				i++
			}
			word := strings.ReplaceAll(string(rs[start:i]), "?", "")
			if word == "true" || word == "false" {
				out = append(out, token{tokLiteral, word, start})
				continue
			}
			out = append(out, token{tokPath, strings.TrimPrefix(word, "answers."), start})
		default:
			matched := false
			for _, op := range operators {
				if strings.HasPrefix(string(rs[i:]), op) {
					out = append(out, token{tokOp, op, i})
					i += len([]rune(op))
					matched = true
					break
				}
			}
			if !matched {
				return nil, fmt.Errorf("unexpected character %q at offset %d", r, i)
			}
		}
	}
	return append(out, token{kind: tokEOF, pos: len(rs)}), nil
}

type condParser struct {
	toks []token
	pos  int
}

func (p *condParser) peek() token { return p.toks[p.pos] }

func (p *condParser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *condParser) parseOr() (Condition, error) {
	left, err := p.parseAnd()
	if err != nil {
		return Condition{}, err
	}
	terms := []Condition{left}
	for t := p.peek(); t.kind == tokOp && t.text == "||"; t = p.peek() {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return Condition{}, err
		}
		terms = append(terms, right)
	}
	if len(terms) == 1 {
		return left, nil
	}
	return Or(terms...), nil
}

func (p *condParser) parseAnd() (Condition, error) {
	left, err := p.parseUnary()
	if err != nil {
		return Condition{}, err
	}
	terms := []Condition{left}
	for t := p.peek(); t.kind == tokOp && t.text == "&&"; t = p.peek() {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return Condition{}, err
		}
		terms = append(terms, right)
	}
	if len(terms) == 1 {
		return left, nil
	}
	return And(terms...), nil
}

func (p *condParser) parseUnary() (Condition, error) {
	t := p.peek()
	switch {
	case t.kind == tokOp && t.text == "!":
		p.next()
		inner, err := p.parseUnary()
		if err != nil {
			return Condition{}, err
		}
		return Not(inner), nil
	case t.kind == tokLParen:
		p.next()
		inner, err := p.parseOr()
		if err != nil {
			return Condition{}, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return Condition{}, fmt.Errorf("expected ) at offset %d", closing.pos)
		}
		return inner, nil
	}
	return p.parseComparison()
}

func (p *condParser) parseComparison() (Condition, error) {
	left := p.next()
	if left.kind != tokPath && left.kind != tokLiteral {
		return Condition{}, fmt.Errorf("expected operand at offset %d", left.pos)
	}
	op := p.peek()
	if op.kind != tokOp || (op.text != "===" && op.text != "==" && op.text != "!==" && op.text != "!=") {
		if left.kind != tokPath {
			return Condition{}, fmt.Errorf("bare literal %q at offset %d", left.text, left.pos)
		}
		return Present(left.text), nil
	}
	p.next()
	right := p.next()
	if right.kind != tokPath && right.kind != tokLiteral {
		return Condition{}, fmt.Errorf("expected operand at offset %d", right.pos)
	}
	path, value := left, right
	if left.kind == tokLiteral {
		path, value = right, left
	}
	if path.kind != tokPath || value.kind != tokLiteral {
		return Condition{}, fmt.Errorf("comparison at offset %d needs one path and one literal", left.pos)
	}
	if op.text == "===" || op.text == "==" {
		return Eq(path.text, value.text), nil
	}
	return Neq(path.text, value.text), nil
}
