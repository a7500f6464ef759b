// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package sjson

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/creachadair/sjson/internal/escape"

	"go4.org/mem"
)

// Stringify renders v in canonical SJSON form.
//
// If v is an Object, its members are written one per line as "key = value",
// each terminated by a newline, with no enclosing braces. Any other value is
// rendered as it would appear inside a document. Nested arrays and objects
// place each element on its own line, indented by one tab per level.
//
// Stringify panics if v is nil or contains a value of a type not defined by
// this package.
func Stringify(v Value) string {
	var f formatter
	f.formatRoot(v)
	return string(f.buf)
}

// Format writes the canonical SJSON form of v to w. See [Stringify].
func Format(w io.Writer, v Value) error {
	var f formatter
	f.formatRoot(v)
	_, err := w.Write(f.buf)
	return err
}

type formatter struct {
	buf   []byte
	depth int
}

func (f *formatter) formatRoot(v Value) {
	obj, ok := v.(Object)
	if !ok {
		f.formatValue(v)
		return
	}
	for _, m := range obj {
		f.formatMember(m)
		f.newline()
	}
}

// newline starts a new line indented to the current depth.
func (f *formatter) newline() {
	f.buf = append(f.buf, '\n')
	for range f.depth {
		f.buf = append(f.buf, '\t')
	}
}

func (f *formatter) formatValue(v Value) {
	switch t := v.(type) {
	case Null:
		f.buf = append(f.buf, "null"...)
	case Bool:
		f.buf = strconv.AppendBool(f.buf, bool(t))
	case Int:
		f.buf = strconv.AppendInt(f.buf, int64(t), 10)
	case Float:
		f.buf = appendFloat(f.buf, float64(t))
	case String:
		f.formatString(string(t))
	case Array:
		f.buf = append(f.buf, '[')
		f.depth++
		for _, elt := range t {
			f.newline()
			f.formatValue(elt)
		}
		f.depth--
		f.newline()
		f.buf = append(f.buf, ']')
	case Object:
		f.buf = append(f.buf, '{')
		f.depth++
		for _, m := range t {
			f.newline()
			f.formatMember(m)
		}
		f.depth--
		f.newline()
		f.buf = append(f.buf, '}')
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func (f *formatter) formatMember(m *Member) {
	if isBareKey(m.Key) {
		f.buf = append(f.buf, m.Key...)
	} else {
		f.buf = append(f.buf, escape.Quote(mem.S(m.Key))...)
	}
	f.buf = append(f.buf, " = "...)
	f.formatValue(m.Value)
}

// formatString renders s as a raw literal if it spans lines, otherwise as a
// quoted string. A raw literal cannot contain its own delimiter or end with a
// quotation mark, so such strings are always quoted.
func (f *formatter) formatString(s string) {
	if strings.ContainsAny(s, "\r\n") && !strings.Contains(s, `"""`) && !strings.HasSuffix(s, `"`) {
		f.buf = append(f.buf, `"""`...)
		f.buf = append(f.buf, s...)
		f.buf = append(f.buf, `"""`...)
		return
	}
	f.buf = append(f.buf, escape.Quote(mem.S(s))...)
}

// isBareKey reports whether key can be written without quotation marks and
// read back as the same key.
func isBareKey(key string) bool {
	if key == "" {
		return false
	}
	switch key[0] {
	case '"', ',', '{', '}':
		return false
	}
	if strings.HasPrefix(key, "//") || strings.HasPrefix(key, "/*") {
		return false
	}
	return !strings.ContainsFunc(key, func(r rune) bool {
		return r == '=' || r == ':' || unicode.IsSpace(r) || r == 0xFEFF
	})
}

// appendFloat appends the text of v to buf, using plain notation for
// magnitudes in [1e-6, 1e21) and exponent notation otherwise. Finite values
// always carry a decimal point or an exponent, so that they read back as a
// Float and not an Int.
func appendFloat(buf []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(buf, "NaN"...)
	case math.IsInf(v, 1):
		return append(buf, "Infinity"...)
	case math.IsInf(v, -1):
		return append(buf, "-Infinity"...)
	}

	start := len(buf)
	if abs := math.Abs(v); abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		buf = strconv.AppendFloat(buf, v, 'f', -1, 64)
	} else {
		buf = strconv.AppendFloat(buf, v, 'e', -1, 64)
		buf = trimExponent(buf, start)
	}
	if !bytes.ContainsAny(buf[start:], ".e") {
		buf = append(buf, ".0"...)
	}
	return buf
}

// trimExponent removes leading zeroes from the exponent of the number that
// starts at offset start of buf, so "1e+07" becomes "1e+7".
func trimExponent(buf []byte, start int) []byte {
	e := bytes.IndexByte(buf[start:], 'e')
	if e < 0 {
		return buf
	}
	digits := start + e + 2 // skip "e" and the sign
	end := digits
	for end < len(buf)-1 && buf[end] == '0' {
		end++
	}
	return append(buf[:digits], buf[end:]...)
}
