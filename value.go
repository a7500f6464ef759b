// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package sjson

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
)

// A Value is an arbitrary SJSON value. The concrete type of a Value is one of
// Null, Bool, Int, Float, String, Array, or Object.
type Value interface{ isValue() }

// Null represents the null constant.
type Null struct{}

// A Bool is a Boolean constant, true or false.
type Bool bool

// An Int is a numeral written without a fraction or exponent.
type Int int64

// A Float is a numeral written with a fraction and/or an exponent.
type Float float64

// A String is a string value. Its contents are the decoded bytes of the
// source text, which are not required to be valid UTF-8.
type String string

// An Array is a sequence of values.
type Array []Value

// An Object is a collection of key-value members, in order of first
// insertion.
type Object []*Member

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Field constructs an object member with the given key and value.
func Field(key string, val Value) *Member { return &Member{Key: key, Value: val} }

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Get returns the value of the member of o with the given key, and reports
// whether such a member exists.
func (o Object) Get(key string) (Value, bool) {
	if m := o.Find(key); m != nil {
		return m.Value, true
	}
	return nil, false
}

// Set sets the value of key in o. If o already has a member with that key,
// its value is replaced in place; otherwise a new member is appended.
func (o *Object) Set(key string, val Value) {
	if m := o.Find(key); m != nil {
		m.Value = val
		return
	}
	*o = append(*o, Field(key, val))
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// ToValue converts a Go value into an SJSON value. It panics if v cannot be
// converted.
//
// The supported types are nil (Null), bool, the signed and unsigned integer
// types (Int, or Float for unsigned values too large for an Int),
// float32 and float64 (Float), string (String), []any (Array),
// map[string]any (Object, with keys in sorted order), *Member (an Object with
// that one member), and any Value, which is returned unmodified.
func ToValue(v any) Value {
	if v == nil {
		return Null{}
	}
	switch t := v.(type) {
	case Value:
		return t
	case *Member:
		return Object{t}
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float32:
		return Float(t)
	case float64:
		return Float(t)
	case []any:
		arr := make(Array, len(t))
		for i, elt := range t {
			arr[i] = ToValue(elt)
		}
		return arr
	case map[string]any:
		obj := make(Object, 0, len(t))
		for _, key := range slices.Sorted(maps.Keys(t)) {
			obj = append(obj, Field(key, ToValue(t[key])))
		}
		return obj
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return Int(u)
		}
		return Float(rv.Uint())
	}
	panic(fmt.Sprintf("cannot convert %T to a value", v))
}
