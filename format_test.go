// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package sjson_test

import (
	"math"
	"strings"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/creachadair/sjson"
	"github.com/creachadair/sjson/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		name  string
		input sjson.Value
		want  string
	}{
		{"Null", sjson.Null{}, "null"},
		{"True", sjson.Bool(true), "true"},
		{"False", sjson.Bool(false), "false"},
		{"Int", sjson.Int(1239), "1239"},
		{"NegativeInt", sjson.Int(-5), "-5"},
		{"String", sjson.String("just a sting string"), `"just a sting string"`},
		{"EmptyString", sjson.String(""), `""`},
		{"MultiLine", sjson.String("one\ntwo\nthree"), "\"\"\"one\ntwo\nthree\"\"\""},
		{"CarriageReturn", sjson.String("a\rb"), "\"\"\"a\rb\"\"\""},
		{"Escaping",
			sjson.String("θ\b\t\\\"//\\//ñëiø☃\\\\\fâônàæ"),
			`"θ\b\t\\\"\/\/\\\/\/ñëiø☃\\\\\fâônàæ"`},
		{"MultiLineInnerQuotes", sjson.String("say \"hi\"\nnow"), "\"\"\"say \"hi\"\nnow\"\"\""},
		{"MultiLineTrailingQuote", sjson.String("say\n\"hi\""), `"say\n\"hi\""`},
		{"MultiLineDelimiter", sjson.String("a\n\"\"\"b"), `"a\n\"\"\"b"`},
		{"OtherControl", sjson.String("a\x00\x1fb"), "\"a\x00\x1fb\""},

		{"Array", arr{sjson.Int(123), sjson.String("one two three"), sjson.Bool(true)},
			"[\n\t123\n\t\"one two three\"\n\ttrue\n]"},
		{"EmptyArray", arr{}, "[\n]"},
		{"NestedArray", arr{arr{sjson.Int(1)}, obj{}},
			"[\n\t[\n\t\t1\n\t]\n\t{\n\t}\n]"},

		{"EmptyRoot", obj{}, ""},
		{"Root", obj{
			field("a", sjson.Int(1)),
			field("b", sjson.String("B")),
			field("c", arr{sjson.Int(1), sjson.Int(2), sjson.Int(3)}),
		}, "a = 1\nb = \"B\"\nc = [\n\t1\n\t2\n\t3\n]\n"},
		{"NestedObject", obj{
			field("a", obj{field("b", sjson.String("b")), field("c", sjson.Int(3))}),
		}, "a = {\n\tb = \"b\"\n\tc = 3\n}\n"},
		{"EmptyNestedObject", obj{field("a", obj{})}, "a = {\n}\n"},
		{"QuotedKeys", obj{
			field("a b", sjson.Int(1)),
			field("c", obj{field("1=2", sjson.Bool(true))}),
		}, "\"a b\" = 1\nc = {\n\t\"1=2\" = true\n}\n"},
		{"LeadingSolidus", obj{field("/key_with_a_leading_solidus", sjson.Bool(true))},
			"/key_with_a_leading_solidus = true\n"},
		{"MultiLineMember", obj{field("text", sjson.String("x\ny"))},
			"text = \"\"\"x\ny\"\"\"\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := sjson.Stringify(tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Stringify: (-want, +got)\n%s", diff)
			}

			var buf strings.Builder
			if err := sjson.Format(&buf, tc.input); err != nil {
				t.Fatalf("Format: unexpected error: %v", err)
			}
			if buf.String() != got {
				t.Errorf("Format: got %#q, want %#q", buf.String(), got)
			}
		})
	}
}

func TestStringify_floats(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-3, "-3.0"},
		{42.4, "42.4"},
		{0.1, "0.1"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{1e-7, "1e-7"},
		{123456789, "123456789.0"},
		{1e20, "100000000000000000000.0"},
		{1e21, "1e+21"},
		{-2.5e100, "-2.5e+100"},
		{5e-324, "5e-324"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tc := range tests {
		if got := sjson.Stringify(sjson.Float(tc.input)); got != tc.want {
			t.Errorf("Stringify(%v): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestStringify_keys(t *testing.T) {
	tests := []struct {
		key, want string
	}{
		{"plain", "plain"},
		{"with-dash_and.dot", "with-dash_and.dot"},
		{"/solidus", "/solidus"},
		{"a/b", "a/b"},
		{"[x]", "[x]"},
		{"a\"b", "a\"b"},
		{"θ", "θ"},

		{"", `""`},
		{"a b", `"a b"`},
		{"a\tb", `"a\tb"`},
		{"a\nb", `"a\nb"`},
		{"a\rb", `"a\rb"`},
		{"a=b", `"a=b"`},
		{"a:b", `"a:b"`},
		{"\"x", `"\"x"`},
		{",x", `",x"`},
		{"}x", `"}x"`},
		{"{x", `"{x"`},
		{"//x", `"\/\/x"`},
		{"/*x", `"\/*x"`},
		{"a\xc2\xa0b", "\"a\xc2\xa0b\""},
	}
	for _, tc := range tests {
		input := obj{field(tc.key, sjson.Int(1))}
		got := sjson.Stringify(input)
		if want := tc.want + " = 1\n"; got != want {
			t.Errorf("Stringify key %q: got %#q, want %#q", tc.key, got, want)
		}

		// Every key must read back as itself.
		back, err := sjson.ParseString(got)
		if err != nil {
			t.Errorf("Parse %#q: unexpected error: %v", got, err)
		} else if diff := cmp.Diff(input, back); diff != "" {
			t.Errorf("Parse %#q: (-want, +got)\n%s", got, diff)
		}
	}
}

func TestStringify_invalid(t *testing.T) {
	mtest.MustPanic(t, func() { sjson.Stringify(nil) })
	mtest.MustPanic(t, func() { sjson.Stringify(arr{sjson.Int(1), nil}) })
	mtest.MustPanic(t, func() { sjson.Stringify(obj{field("x", nil)}) })
}

func TestRoundTrip(t *testing.T) {
	t.Run("Canonical", func(t *testing.T) {
		input := string(testutil.Fixture(t, "canonical.sjson"))
		doc := testutil.MustParse(t, input)
		if diff := cmp.Diff(input, sjson.Stringify(doc)); diff != "" {
			t.Errorf("Stringify: (-want, +got)\n%s", diff)
		}
	})

	t.Run("Sample", func(t *testing.T) {
		input := testutil.Fixture(t, "sample.sjson")
		doc, err := sjson.Parse(input)
		if err != nil {
			t.Fatalf("Parse: unexpected error: %v", err)
		}
		text := sjson.Stringify(doc)
		back := testutil.MustParse(t, text)
		if diff := cmp.Diff(doc, back); diff != "" {
			t.Errorf("Parse(Stringify(v)): (-want, +got)\n%s", diff)
		}
		if again := sjson.Stringify(back); again != text {
			t.Errorf("Stringify is not stable:\n first: %#q\nsecond: %#q", text, again)
		}
	})

	t.Run("Values", func(t *testing.T) {
		values := []sjson.Value{
			sjson.Null{},
			sjson.Bool(false),
			sjson.Int(math.MinInt64),
			sjson.Int(math.MaxInt64),
			sjson.Float(1),
			sjson.Float(-0.125),
			sjson.Float(6.02214076e23),
			sjson.Float(math.SmallestNonzeroFloat64),
			sjson.Float(math.MaxFloat64),
			sjson.String("tab\tquote\"back\\slash/"),
			sjson.String("\x00\x01\x7f\xff"),
			sjson.String("first\nsecond"),
			arr{},
			arr{sjson.Int(1), arr{arr{}}, obj{field("k", sjson.Null{})}},
			obj{},
			obj{field("a b", obj{field("c=d", arr{sjson.String("e")})})},
		}
		for _, v := range values {
			// Wrap each value as a member, since only objects are documents.
			want := obj{field("v", v)}
			text := sjson.Stringify(want)
			got, err := sjson.ParseString(text)
			if err != nil {
				t.Errorf("Parse %#q: unexpected error: %v", text, err)
				continue
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Parse %#q: (-want, +got)\n%s", text, diff)
			}
		}
	})
}
