package cfg

import (
	"fmt"
	"strings"
	"unicode"
)

// Kind is the syntactic kind of a statement value.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Statement is one `key = value;` assignment.
type Statement struct {
	Key  string
	Kind Kind
	// Value holds the string or digit run. For lists it is the items joined
	// with ", ".
	Value string
	Items []string
	Line  int
}

// Document is a parsed cfg file in source order.
type Document struct {
	Statements []Statement
}

// Get returns the first statement assigning key.
func (d *Document) Get(key string) (Statement, bool) {
	for _, s := range d.Statements {
		if s.Key == key {
			return s, true
		}
	}
	return Statement{}, false
}

// Parse reads every statement of a cfg file. The last statement may omit its
// terminator, as the tags line of generated files does.
func Parse(data string) (*Document, error) {
	p := &parser{src: []rune(data), line: 1}
	doc := &Document{}
	for {
		p.skipSpace()
		if p.eof() {
			return doc, nil
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		doc.Statements = append(doc.Statements, stmt)
	}
}

type parser struct {
	src  []rune
	pos  int
	line int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune { return p.src[p.pos] }

func (p *parser) next() rune {
	r := p.src[p.pos]
	p.pos++
	if r == '\n' {
		p.line++
	}
	return r
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.next()
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func isKeyRune(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsLetter(r) || isDigit(r)
}

// isDigit matches ASCII digits only, the same set as \d in GetValue.
func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func (p *parser) statement() (Statement, error) {
	stmt := Statement{Line: p.line}

	start := p.pos
	for !p.eof() && isKeyRune(p.peek()) {
		p.next()
	}
	if p.pos == start {
		return stmt, p.errorf("expected key, found %q", p.peek())
	}
	stmt.Key = string(p.src[start:p.pos])

	p.skipSpace()
	if p.eof() || p.peek() != '=' {
		return stmt, p.errorf("expected '=' after %q", stmt.Key)
	}
	p.next()
	p.skipSpace()
	if p.eof() {
		return stmt, p.errorf("missing value for %q", stmt.Key)
	}

	switch r := p.peek(); {
	case r == '"':
		s, err := p.quoted()
		if err != nil {
			return stmt, err
		}
		stmt.Kind, stmt.Value = KindString, s
	case r == '[':
		items, err := p.list()
		if err != nil {
			return stmt, err
		}
		stmt.Kind, stmt.Items = KindList, items
		stmt.Value = strings.Join(items, ", ")
	case isDigit(r):
		stmt.Kind, stmt.Value = KindNumber, p.number()
	default:
		return stmt, p.errorf("unexpected %q in value of %q", r, stmt.Key)
	}

	p.skipSpace()
	if p.eof() {
		return stmt, nil
	}
	if p.peek() != ';' {
		return stmt, p.errorf("expected ';' after value of %q", stmt.Key)
	}
	p.next()
	return stmt, nil
}

func (p *parser) quoted() (string, error) {
	line := p.line
	p.next()
	start := p.pos
	for !p.eof() {
		if p.peek() == '"' {
			s := string(p.src[start:p.pos])
			p.next()
			return s, nil
		}
		p.next()
	}
	return "", &SyntaxError{Line: line, Msg: "unterminated string"}
}

// number consumes a digit run and at most one trailing non-digit suffix.
func (p *parser) number() string {
	start := p.pos
	for !p.eof() && isDigit(p.peek()) {
		p.next()
	}
	digits := string(p.src[start:p.pos])
	if !p.eof() && p.peek() != ';' && !unicode.IsSpace(p.peek()) {
		p.next()
	}
	return digits
}

func (p *parser) list() ([]string, error) {
	line := p.line
	p.next()
	items := []string{}
	for {
		p.skipSpace()
		if p.eof() {
			return nil, &SyntaxError{Line: line, Msg: "unterminated list"}
		}
		if p.peek() == ']' {
			p.next()
			return items, nil
		}
		if len(items) > 0 {
			if p.peek() != ',' {
				return nil, p.errorf("expected ',' or ']' in list")
			}
			p.next()
			p.skipSpace()
			if p.eof() {
				return nil, &SyntaxError{Line: line, Msg: "unterminated list"}
			}
		}
		if p.peek() != '"' {
			return nil, p.errorf("list items must be quoted strings")
		}
		s, err := p.quoted()
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
}
