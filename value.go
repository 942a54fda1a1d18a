package jsontree

import (
	"math"

	"github.com/keosu/jsontree/i18n"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lower-case variant name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is one node of a JSON tree: Null, Bool, Number, String, Array, or
// Object. Numbers keep the integral/fractional distinction so that 42 does not
// round-trip as 42.0. The zero Value is Null.
//
// A tree is exclusively owned root-to-leaf: children are never shared between
// trees and graphs must be acyclic. A Value is not safe for concurrent
// mutation; external synchronization applies if a tree is shared.
type Value struct {
	kind     Kind
	b        bool
	i        int64
	f        float64
	integral bool
	s        string
	arr      []*Value
	obj      *OrderedMap[*Value]
}

// ---- factories ----

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integral number value.
func Int(i int64) Value { return Value{kind: KindNumber, i: i, integral: true} }

// Float returns a fractional number value.
func Float(f float64) Value { return Value{kind: KindNumber, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// NewArray returns an empty array value.
func NewArray() Value { return Value{kind: KindArray, arr: []*Value{}} }

// NewObject returns an empty object value.
func NewObject() Value { return Value{kind: KindObject, obj: NewOrderedMap[*Value]()} }

// ---- predicates ----

// Kind returns the variant of the value.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsArray() bool  { return v.kind == KindArray }
func (v Value) IsObject() bool { return v.kind == KindObject }

// IsIntegral reports whether the value is a number without a fractional or
// exponent part.
func (v Value) IsIntegral() bool { return v.kind == KindNumber && v.integral }

// ---- typed accessors ----

func (v Value) mismatch(want string) Issues {
	return singleIssue(CodeTypeMismatch, "/", i18n.T(CodeTypeMismatch, map[string]string{"expected": want, "got": v.kind.String()}))
}

// AsBool returns the boolean payload, failing with type_mismatch for any other
// variant.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, v.mismatch("bool")
	}
	return v.b, nil
}

// AsInt returns the numeric payload as int64. Fractional numbers convert when
// they carry no fraction and fit the int64 range; anything else fails.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindNumber {
		return 0, v.mismatch("number")
	}
	if v.integral {
		return v.i, nil
	}
	if math.Trunc(v.f) != v.f || math.IsInf(v.f, 0) || math.IsNaN(v.f) {
		return 0, singleIssue(CodeTypeMismatch, "/", i18n.T(CodeTypeMismatch, map[string]string{"expected": "integral number"}))
	}
	if v.f < math.MinInt64 || v.f >= math.MaxInt64 {
		return 0, singleIssue(CodeOverflow, "/", i18n.T(CodeOverflow, nil))
	}
	return int64(v.f), nil
}

// AsFloat is the unified numeric accessor: it reads both integral and
// fractional numbers.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindNumber {
		return 0, v.mismatch("number")
	}
	if v.integral {
		return float64(v.i), nil
	}
	return v.f, nil
}

// AsString returns the string payload.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", v.mismatch("string")
	}
	return v.s, nil
}

// Len returns the element count of an array or the entry count of an object,
// and 0 for every other variant.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// ---- array operations ----

// Append adds an element at the end of an array value. Calling it on any other
// variant fails with type_mismatch.
func (v *Value) Append(elem Value) error {
	if v.kind != KindArray {
		return v.mismatch("array")
	}
	e := elem
	v.arr = append(v.arr, &e)
	return nil
}

// Index returns the i-th element of an array. The returned pointer aliases the
// tree; mutating it mutates the tree.
func (v Value) Index(i int) (*Value, error) {
	if v.kind != KindArray {
		return nil, v.mismatch("array")
	}
	if i < 0 || i >= len(v.arr) {
		return nil, singleIssue(CodeIndexOutOfRange, "/", i18n.T(CodeIndexOutOfRange, nil))
	}
	return v.arr[i], nil
}

// ---- object operations ----

// Contains reports whether an object value has the given key. Any other
// variant reports false.
func (v Value) Contains(key string) bool {
	return v.kind == KindObject && v.obj.Contains(key)
}

// Set upserts key on an object value. New keys append at the end; existing
// keys keep their position (last assignment wins, never a duplicate entry).
func (v *Value) Set(key string, val Value) error {
	if v.kind != KindObject {
		return v.mismatch("object")
	}
	c := val
	v.obj.Set(key, &c)
	return nil
}

// Key returns the child stored under key, failing with key_not_found when the
// key is absent.
func (v Value) Key(key string) (*Value, error) {
	if v.kind != KindObject {
		return nil, v.mismatch("object")
	}
	c, ok := v.obj.Get(key)
	if !ok {
		return nil, singleIssue(CodeKeyNotFound, "/"+key, i18n.T(CodeKeyNotFound, nil))
	}
	return c, nil
}

// Keys returns the object's keys in insertion order, or nil for other
// variants.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return v.obj.Keys()
}

// ---- equality ----

// Equal reports structural equality: same variant, and for composites,
// recursively equal children in the same order. The integral/fractional
// distinction is part of number equality.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		if v.integral != o.integral {
			return false
		}
		if v.integral {
			return v.i == o.i
		}
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(*o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.obj.Len() != o.obj.Len() {
			return false
		}
		ks, os := v.obj.Keys(), o.obj.Keys()
		for i := range ks {
			if ks[i] != os[i] {
				return false
			}
			if !v.obj.at(i).Equal(*o.obj.at(i)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
