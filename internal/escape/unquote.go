// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of SJSON and JSON strings.
package escape

import (
	"fmt"

	"go4.org/mem"
)

// An Error reports an invalid escape sequence. Offset is the position of the
// offending byte relative to the start of the unquoted input.
type Error struct {
	Offset int
	Want   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid escape at offset %d: want %s", e.Offset, e.Want)
}

// Unquote decodes the contents of a quoted SJSON string. The input must have
// the enclosing double quotation marks already removed.
//
// The C escapes \b \f \n \r \t are replaced by their control bytes. A \u
// escape is followed by four hexadecimal digits, decoded as two raw bytes
// (one per digit pair), not as a Unicode code point. Any other escaped byte
// stands for itself, which covers \" \\ and \/.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	base := 0 // offset of src in the original input
	for i >= 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		if i+1 >= src.Len() {
			return nil, &Error{Offset: base + i + 1, Want: "escaped byte"}
		}
		c := src.At(i + 1)
		next := i + 2
		switch c {
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			for k := 0; k < 2; k++ {
				b, err := parseHexByte(src, next)
				if err != nil {
					err.Offset += base
					return nil, err
				}
				dec = append(dec, b)
				next += 2
			}
		default:
			dec = append(dec, c)
		}

		src = src.SliceFrom(next)
		base += next
		i = mem.IndexByte(src, '\\')
	}
	return mem.Append(dec, src), nil
}

// parseHexByte decodes the two hexadecimal digits at offset pos of src.
func parseHexByte(src mem.RO, pos int) (byte, *Error) {
	var v byte
	for k := pos; k < pos+2; k++ {
		if k >= src.Len() {
			return 0, &Error{Offset: k, Want: "hex digit"}
		}
		d, ok := hexValue(src.At(k))
		if !ok {
			return 0, &Error{Offset: k, Want: "hex digit"}
		}
		v = v<<4 | d
	}
	return v, nil
}

func hexValue(b byte) (byte, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
