// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jsonconv converts between SJSON value trees and standard JSON.
//
// JSON input is read with the HuJSON parser, so comments and trailing commas
// are accepted. Member order is preserved in both directions.
package jsonconv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/creachadair/sjson"
	"github.com/creachadair/sjson/internal/escape"
	"github.com/tailscale/hujson"

	"go4.org/mem"
)

// FromJSON parses a single JSON value from data and converts it into an SJSON
// value. Numbers written with a fraction or exponent become sjson.Float, and
// other numbers become sjson.Int unless they are out of range for an int64.
// If an object repeats a key, the later value replaces the earlier one.
func FromJSON(data []byte) (sjson.Value, error) {
	v, err := hujson.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return fromHuJSON(v.Value)
}

func fromHuJSON(v hujson.ValueTrimmed) (sjson.Value, error) {
	switch t := v.(type) {
	case *hujson.Object:
		obj := sjson.Object{}
		for _, m := range t.Members {
			key, ok := m.Name.Value.(hujson.Literal)
			if !ok || key.Kind() != '"' {
				return nil, fmt.Errorf("invalid object key at offset %d", m.Name.StartOffset)
			}
			val, err := fromHuJSON(m.Value.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(key.String(), val)
		}
		return obj, nil

	case *hujson.Array:
		arr := make(sjson.Array, len(t.Elements))
		for i, elt := range t.Elements {
			val, err := fromHuJSON(elt.Value)
			if err != nil {
				return nil, err
			}
			arr[i] = val
		}
		return arr, nil

	case hujson.Literal:
		switch t.Kind() {
		case 'n':
			return sjson.Null{}, nil
		case 't', 'f':
			return sjson.Bool(t.Bool()), nil
		case '"':
			return sjson.String(t.String()), nil
		case '0':
			return fromNumber(t)
		}
		return nil, fmt.Errorf("invalid literal %q", t)
	}
	return nil, fmt.Errorf("unknown JSON value %T", v)
}

func fromNumber(lit hujson.Literal) (sjson.Value, error) {
	text := mem.B(lit)
	if bytes.ContainsAny(lit, ".eE") {
		f, err := mem.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", lit, err)
		}
		return sjson.Float(f), nil
	}
	if z, err := mem.ParseInt(text, 10, 64); err == nil {
		return sjson.Int(z), nil
	}
	f, err := mem.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", lit, err)
	}
	return sjson.Float(f), nil
}

// Compact renders v as standard JSON with no insignificant whitespace.
// Strings are escaped according to JSON rules, with invalid UTF-8 replaced by
// the Unicode replacement rune. Non-finite floating-point values, which JSON
// cannot represent, are rendered as null.
func Compact(v sjson.Value) []byte { return appendJSON(nil, v) }

// Indent renders v as JSON with each element on its own line, starting with
// prefix and indented by one copy of indent per level of nesting.
func Indent(v sjson.Value, prefix, indent string) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, Compact(v), prefix, indent); err != nil {
		// Compact always produces valid JSON.
		panic(fmt.Sprintf("indent JSON: %v", err))
	}
	return buf.Bytes()
}

func appendJSON(buf []byte, v sjson.Value) []byte {
	switch t := v.(type) {
	case sjson.Null:
		return append(buf, "null"...)
	case sjson.Bool:
		return strconv.AppendBool(buf, bool(t))
	case sjson.Int:
		return strconv.AppendInt(buf, int64(t), 10)
	case sjson.Float:
		f := float64(t)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return append(buf, "null"...)
		}
		return strconv.AppendFloat(buf, f, 'g', -1, 64)
	case sjson.String:
		return append(buf, escape.QuoteJSON(mem.S(string(t)))...)
	case sjson.Array:
		buf = append(buf, '[')
		for i, elt := range t {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendJSON(buf, elt)
		}
		return append(buf, ']')
	case sjson.Object:
		buf = append(buf, '{')
		for i, m := range t {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, escape.QuoteJSON(mem.S(m.Key))...)
			buf = append(buf, ':')
			buf = appendJSON(buf, m.Value)
		}
		return append(buf, '}')
	}
	panic(fmt.Sprintf("unknown value type %T", v))
}
