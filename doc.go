// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package sjson implements a parser and formatter for SJSON, a relaxed
// dialect of JSON intended to be written by hand.
//
// # Syntax
//
// SJSON differs from JSON in the following ways:
//
//   - Object keys may be written without quotation marks. A bare key runs up
//     to the next space, tab, newline, "=", or ":".
//   - Either "=" or ":" separates a key from its value.
//   - Commas between members and elements are optional; a comma is treated as
//     whitespace.
//   - Line comments (// ...) and block comments (/* ... */) are allowed
//     wherever whitespace is.
//   - A string enclosed in triple quotation marks ("""...""") is a raw
//     literal: its contents are taken verbatim, including newlines, with no
//     escape processing.
//   - A document whose first token is not "{" is an implicit object: the
//     whole input is a sequence of members with no enclosing braces.
//
// For example:
//
//	// A comment
//	name = "sjson"
//	version: 2
//	tags = ["red" "green" "light blue"]
//	text = """first line
//	second line"""
//
// # Parsing
//
// Parse and ParseString return the root object of a document:
//
//	obj, err := sjson.ParseString(`a = 1, b = [true null]`)
//	if err != nil {
//	   log.Fatalf("Parse: %v", err)
//	}
//
// A syntax error has concrete type *sjson.SyntaxError and reports the byte
// that was found, what was expected, the line number, and a short excerpt of
// the input at the failure.
//
// # Values
//
// The Value interface is implemented by the types Null, Bool, Int, Float,
// String, Array, and Object. A numeral is an Int unless its text contains a
// decimal point or an exponent, in which case it is a Float. Objects keep
// their members in order; if a key is repeated, the later value replaces the
// earlier one in place.
//
// # Formatting
//
// Stringify renders a value in canonical form. A root object is written as
// "key = value" lines without enclosing braces; arrays and nested objects put
// each element on its own line, indented with tabs:
//
//	fmt.Print(sjson.Stringify(obj))
//
// Parsing the canonical form of a value yields an equal value.
package sjson
