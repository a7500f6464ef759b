// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package sjson

import (
	"go4.org/mem"
)

// eof is returned by peek when no input remains.
const eof = -1

// A scanner is a cursor over an immutable input buffer.  The parser drives
// the scanner directly at each decision point; there is no token stream.
type scanner struct {
	src mem.RO
	pos int
}

func (s *scanner) atEOF() bool { return s.pos >= s.src.Len() }

// peek returns the byte at the cursor without consuming it, or eof.
func (s *scanner) peek() int {
	if s.atEOF() {
		return eof
	}
	return int(s.src.At(s.pos))
}

// byteAt returns the byte at offset i, or eof if i is out of range.
func (s *scanner) byteAt(i int) int {
	if i >= s.src.Len() {
		return eof
	}
	return int(s.src.At(i))
}

// skipSpace advances past whitespace, commas, and comments.
func (s *scanner) skipSpace() {
	for !s.atEOF() {
		c := s.src.At(s.pos)
		if c == '/' {
			if !s.skipComment() {
				return // not a comment; the caller sees the "/"
			}
			continue
		} else if !spaceChars.has(c) {
			return
		}
		s.pos++
	}
}

// skipComment consumes a comment beginning at the cursor, which must be on a
// "/". It reports false without moving the cursor if the "/" does not begin a
// comment. An unterminated block comment is a syntax error.
func (s *scanner) skipComment() bool {
	start := s.pos
	switch s.byteAt(start + 1) {
	case '/': // line comment to LF
		rest := s.src.SliceFrom(start + 2)
		if i := mem.IndexByte(rest, '\n'); i >= 0 {
			s.pos = start + 2 + i + 1
		} else {
			s.pos = s.src.Len()
		}
		return true

	case '*': // block comment
		rest := s.src.SliceFrom(start + 2)
		i := mem.Index(rest, mem.S("*/"))
		if i < 0 {
			s.fail(start, "*/")
		}
		s.pos = start + 2 + i + 2
		return true
	}
	return false
}

// consume skips whitespace and requires the next byte to be want.
func (s *scanner) consume(want byte) {
	s.skipSpace()
	if s.peek() != int(want) {
		s.fail(s.pos, string(want))
	}
	s.pos++
}

// consumeKeyword skips whitespace and requires the input to continue with the
// bytes of word.
func (s *scanner) consumeKeyword(word string) {
	s.skipSpace()
	for i := 0; i < len(word); i++ {
		if s.peek() != int(word[i]) {
			s.fail(s.pos, word[i:i+1])
		}
		s.pos++
	}
}

// hasPrefix reports whether the input at the cursor begins with p.
func (s *scanner) hasPrefix(p string) bool {
	return mem.HasPrefix(s.src.SliceFrom(s.pos), mem.S(p))
}

// fail aborts the parse with a syntax error at offset pos.
func (s *scanner) fail(pos int, expected string) {
	panic(newSyntaxError(s.src, pos, expected))
}
