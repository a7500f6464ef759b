// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package sjson

import (
	"errors"
	"strings"

	"github.com/creachadair/sjson/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as an SJSON string value. Quotation marks, backslashes,
// solidus, and the C control escapes are escaped and double quotation marks
// are added. All other bytes are copied unchanged.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes an SJSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// A \u escape decodes its four hexadecimal digits as two raw bytes. Unquote
// reports an error for an incomplete or invalid \u escape.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unquote(mem.S(src[1 : len(src)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
