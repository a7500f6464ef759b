// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package sjson

import (
	"fmt"

	"go4.org/mem"
)

// nearLen is the maximum length of the context snippet in a SyntaxError.
const nearLen = 25

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Offset   int     // byte offset of the failure, 0-based
	Token    string  // the byte found at Offset, or "" at end of input
	Expected string  // a description of what was expected
	Location LineCol // the line and column of Offset
	Near     string  // up to 25 bytes of input starting at Offset
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	var eof string
	if e.Token == "" {
		eof = " (end of input)"
	}
	return fmt.Sprintf("Unexpected token '%s'%s, expected '%s' on line %d near '%s'",
		e.Token, eof, e.Expected, e.Location.Line, e.Near)
}

// AtEOF reports whether the failure occurred at the end of the input.
func (e *SyntaxError) AtEOF() bool { return e.Token == "" }

func newSyntaxError(src mem.RO, pos int, expected string) *SyntaxError {
	pos = min(pos, src.Len())
	serr := &SyntaxError{
		Offset:   pos,
		Expected: expected,
		Location: lineColAt(src, pos),
		Near:     src.Slice(pos, min(pos+nearLen, src.Len())).StringCopy(),
	}
	if pos < src.Len() {
		serr.Token = string([]byte{src.At(pos)})
	}
	return serr
}
