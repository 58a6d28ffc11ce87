package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrSyntax indicates malformed text when parsing an angle or a
	// range.
	ErrSyntax = errors.New("invalid syntax")

	// ErrUnit indicates an unrecognized unit suffix when parsing an
	// angle.
	ErrUnit = errors.New("unknown unit")
)

// ParseAngle parses an angle such as "90°", "90deg", "1.57 rad" or
// "1.57radians". A bare number is in degrees. The parsed value is not
// normalized.
func ParseAngle(s string) (Angle, error) {
	p := parser{s: s}
	return p.Angle()
}

// ParseRange parses a range in the form produced by Range.String, such
// as "[0°, 90°)". A bracket marks an inclusive end and a parenthesis an
// exclusive one.
func ParseRange(s string) (Range, error) {
	p := parser{s: s}
	return p.Range()
}

type parser struct {
	s   string
	pos int
	err error
}

func (p *parser) Angle() (a Angle, err error) {
	if p.err != nil {
		return Angle{}, p.err
	}

	defer p.catch(&err)

	a = p.angle()
	p.space()
	p.eof()
	return a, nil
}

func (p *parser) Range() (r Range, err error) {
	if p.err != nil {
		return Range{}, p.err
	}

	defer p.catch(&err)

	p.space()
	switch p.next() {
	case '[':
		r.IncludeStart = true
	case '(':
	default:
		p.throw(fmt.Errorf("expected '[' or '(' at offset %v: %w", p.pos, ErrSyntax))
	}

	r.Start = p.angle()
	p.space()
	p.expect(',')
	r.End = p.angle()
	p.space()

	switch p.next() {
	case ']':
		r.IncludeEnd = true
	case ')':
	default:
		p.throw(fmt.Errorf("expected ']' or ')' at offset %v: %w", p.pos, ErrSyntax))
	}

	p.space()
	p.eof()
	return r, nil
}

func (p *parser) angle() Angle {
	p.space()
	v := p.number()
	p.space()

	suffix := p.unit()
	if (suffix == "") || (suffix == "°") {
		return New(v, Degrees, false)
	}

	u, ok := LookupUnit(suffix)
	if !ok {
		p.throw(fmt.Errorf("unit %q: %w", suffix, ErrUnit))
	}
	return New(v, u, false)
}

func (p *parser) number() float64 {
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if !strings.ContainsRune("+-.0123456789eE", rune(c)) {
			break
		}
		if ((c == 'e') || (c == 'E')) && !p.exponent() {
			break
		}
		p.pos++
	}

	text := p.s[start:p.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.throw(fmt.Errorf("number %q at offset %v: %w", text, start, ErrSyntax))
	}
	return v
}

// exponent reports whether the 'e' at the current position starts an
// exponent rather than a unit name.
func (p *parser) exponent() bool {
	if p.pos+1 >= len(p.s) {
		return false
	}
	c := p.s[p.pos+1]
	return (c == '+') || (c == '-') || ((c >= '0') && (c <= '9'))
}

func (p *parser) unit() string {
	start := p.pos
	for p.pos < len(p.s) {
		r, size := utf8.DecodeRuneInString(p.s[p.pos:])
		if (r != '°') && !unicode.IsLetter(r) {
			break
		}
		p.pos += size
	}
	return p.s[start:p.pos]
}

func (p *parser) space() {
	for p.pos < len(p.s) {
		r, size := utf8.DecodeRuneInString(p.s[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *parser) next() rune {
	if p.pos >= len(p.s) {
		p.throw(fmt.Errorf("unexpected end of input: %w", ErrSyntax))
	}
	r, size := utf8.DecodeRuneInString(p.s[p.pos:])
	p.pos += size
	return r
}

func (p *parser) expect(want rune) {
	at := p.pos
	if got := p.next(); got != want {
		p.throw(fmt.Errorf("expected %q at offset %v, got %q: %w", want, at, got, ErrSyntax))
	}
}

func (p *parser) eof() {
	if p.pos < len(p.s) {
		p.throw(fmt.Errorf("trailing text %q: %w", p.s[p.pos:], ErrSyntax))
	}
}

type parserError struct {
	err error
}

func (p *parser) throw(err error) {
	if err != nil {
		panic(parserError{err: err})
	}
}

func (p *parser) catch(err *error) {
	switch r := recover().(type) {
	case parserError:
		*err = r.err
		p.err = r.err
	case nil:
		*err = p.err
	default:
		panic(r)
	}
}
