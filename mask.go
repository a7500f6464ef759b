// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package sjson

// A charMask is a set of byte values. Bytes outside the ASCII range are never
// members of the masks defined here, but the table covers all 256 values so
// that membership needs no range check.
type charMask [4]uint64

func newCharMask(chars string) *charMask {
	var m charMask
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		m[c>>6] |= 1 << (c & 63)
	}
	return &m
}

// has reports whether c is a member of m.
func (m *charMask) has(c byte) bool { return m[c>>6]&(1<<(c&63)) != 0 }

var (
	numberChars    = newCharMask("-+0123456789")
	numberExpChars = newCharMask(".eE")
	idTermChars    = newCharMask(" \t\n=:")

	// Commas are whitespace, so separators between members and elements are
	// optional.
	spaceChars = newCharMask(" \n\r\t,")
)
