// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package sjson

import (
	"errors"

	"github.com/creachadair/sjson/internal/escape"

	"go4.org/mem"
)

// Parse parses an SJSON document from data and returns its root object.
//
// If the first non-whitespace byte of data is "{", the document is a single
// braced object. Otherwise the whole input is read as the members of an
// implicit root object. In case of error, the concrete type of the error is
// [*SyntaxError] and no partial result is returned.
func Parse(data []byte) (Object, error) { return parseRoot(mem.B(data)) }

// ParseString parses an SJSON document from s. See [Parse].
func ParseString(s string) (Object, error) { return parseRoot(mem.S(s)) }

// A parser holds the state of a single parse. The recursive descent reports
// syntax errors by panicking with a *SyntaxError, which parseRoot recovers.
type parser struct {
	scanner
}

func parseRoot(src mem.RO) (_ Object, err error) {
	defer func() {
		if x := recover(); x != nil {
			serr, ok := x.(*SyntaxError)
			if !ok {
				panic(x)
			}
			err = serr
		}
	}()
	p := &parser{scanner{src: src}}
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() Object {
	p.skipSpace()
	if p.peek() == '{' {
		obj := p.parseObject()
		p.skipSpace()
		if !p.atEOF() {
			p.fail(p.pos, "end-of-string")
		}
		return obj
	}

	var mb memberSet
	for {
		p.skipSpace()
		if p.atEOF() {
			return mb.result()
		}
		p.parseMember(&mb)
	}
}

// parseValue consumes a single value of any type.
func (p *parser) parseValue() Value {
	p.skipSpace()
	c := p.peek()
	switch {
	case c == eof:
		// fall through to the error below
	case numberChars.has(byte(c)):
		return p.parseNumber()
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		return String(p.parseString())
	case c == 't':
		p.consumeKeyword("true")
		return Bool(true)
	case c == 'f':
		p.consumeKeyword("false")
		return Bool(false)
	case c == 'n':
		p.consumeKeyword("null")
		return Null{}
	}
	p.fail(p.pos, `number, {, [, ", true, false or null`)
	panic("unreachable")
}

// parseNumber consumes a numeral. The numeral is a Float if its text contains
// any of ".eE", otherwise an Int.
func (p *parser) parseNumber() Value {
	start := p.pos
	var isFloat bool
	for !p.atEOF() {
		c := p.src.At(p.pos)
		if numberExpChars.has(c) {
			isFloat = true
		} else if !numberChars.has(c) {
			break
		}
		p.pos++
	}

	text := p.src.Slice(start, p.pos)
	n := numeralPrefix(text)
	if n == 0 {
		p.fail(start, "number")
	}
	text = text.SliceTo(n)

	// Range errors are ignored: the converted values are clamped to the
	// int64 range, or to positive or negative infinity.
	if isFloat {
		v, _ := mem.ParseFloat(text, 64)
		return Float(v)
	}
	v, _ := mem.ParseInt(text, 10, 64)
	return Int(v)
}

// numeralPrefix returns the length of the longest prefix of text that is a
// decimal numeral of the form [+-]digits[.digits][(e|E)[+-]digits], where at
// least one digit is required before or after the decimal point. It returns 0
// if there is no such prefix.
func numeralPrefix(text mem.RO) int {
	i := 0
	at := func(i int) byte {
		if i < text.Len() {
			return text.At(i)
		}
		return 0
	}
	digits := func() int {
		n := 0
		for isDigit(at(i)) {
			i++
			n++
		}
		return n
	}

	if c := at(i); c == '+' || c == '-' {
		i++
	}
	nd := digits()
	if at(i) == '.' {
		i++
		nd += digits()
	}
	if nd == 0 {
		return 0
	}
	end := i
	if c := at(i); c == 'e' || c == 'E' {
		i++
		if c := at(i); c == '+' || c == '-' {
			i++
		}
		if digits() != 0 {
			end = i
		}
	}
	return end
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// parseString consumes a raw literal ("""...""") or a quoted string.
func (p *parser) parseString() string {
	if p.hasPrefix(`"""`) {
		start := p.pos + 3
		i := mem.Index(p.src.SliceFrom(start), mem.S(`"""`))
		if i < 0 {
			p.fail(p.src.Len(), `"""`)
		}
		p.pos = start + i + 3
		return p.src.Slice(start, start+i).StringCopy()
	}

	p.consume('"')
	start := p.pos
	var esc bool
	for {
		if p.atEOF() {
			p.fail(p.pos, `"`)
		}
		c := p.src.At(p.pos)
		if c == '"' {
			break
		} else if c == '\\' {
			esc = true
			p.pos++ // skip the escaped byte, whatever it is
		}
		p.pos++
	}
	text := p.src.Slice(start, p.pos)
	p.pos++ // closing quote

	if !esc {
		return text.StringCopy()
	}
	dec, err := escape.Unquote(text)
	if eerr := (*escape.Error)(nil); errors.As(err, &eerr) {
		p.fail(start+eerr.Offset, eerr.Want)
	} else if err != nil {
		p.fail(start, err.Error())
	}
	return string(dec)
}

// parseArray consumes an array of zero or more values.
func (p *parser) parseArray() Array {
	arr := Array{}
	p.consume('[')
	for {
		p.skipSpace()
		if p.peek() == ']' {
			break
		}
		arr = append(arr, p.parseValue())
	}
	p.consume(']')
	return arr
}

// parseObject consumes a braced object of zero or more members.
func (p *parser) parseObject() Object {
	var mb memberSet
	p.consume('{')
	for {
		p.skipSpace()
		if p.peek() == '}' {
			break
		} else if p.atEOF() {
			p.fail(p.pos, "}")
		}
		p.parseMember(&mb)
	}
	p.consume('}')
	return mb.result()
}

// parseMember consumes a single "key sep value" member and adds it to mb.
// The separator may be either ":" or "=".
func (p *parser) parseMember(mb *memberSet) {
	key := p.parseKey()
	p.skipSpace()
	if p.peek() == ':' {
		p.consume(':')
	} else {
		p.consume('=')
	}
	mb.set(key, p.parseValue())
}

// parseKey consumes an object key, which is either a string or a bare run of
// bytes up to the next space, tab, newline, "=", or ":".
func (p *parser) parseKey() string {
	p.skipSpace()
	if p.peek() == '"' {
		return p.parseString()
	}
	start := p.pos
	for !p.atEOF() && !idTermChars.has(p.src.At(p.pos)) {
		p.pos++
	}
	return p.src.Slice(start, p.pos).StringCopy()
}

// A memberSet accumulates the members of an object. A repeated key replaces
// the value of the earlier member, keeping its position.
type memberSet struct {
	obj   Object
	index map[string]int
}

func (m *memberSet) set(key string, val Value) {
	if i, ok := m.index[key]; ok {
		m.obj[i].Value = val
		return
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[key] = len(m.obj)
	m.obj = append(m.obj, Field(key, val))
}

// result returns the accumulated object, which is never nil.
func (m *memberSet) result() Object {
	if m.obj == nil {
		return Object{}
	}
	return m.obj
}
