// Package dsl provides declarative codec registration for user-defined types:
// Struct builds an aggregate codec from an ordered field list and Enum builds
// a string codec from an ordered variant list. Both are evaluated once at
// registration and generate the whole codec mechanically; call sites carry no
// per-field boilerplate and nothing uses runtime reflection.
package dsl

import (
	jsontree "github.com/keosu/jsontree"
	"github.com/keosu/jsontree/i18n"
)

// StructField binds one declared field of T: its JSON name, its codec, and a
// pointer accessor supplying both the getter and the setter.
type StructField[T any] struct {
	name   string
	encode func(*T) jsontree.Value
	decode func(*T, jsontree.Value) error
}

// Field declares a field named name, serialized with c, reached through
// access. The field's concrete type F is erased here so that fields of
// different types share one list.
func Field[T, F any](name string, c jsontree.Codec[F], access func(*T) *F) StructField[T] {
	return StructField[T]{
		name: name,
		encode: func(t *T) jsontree.Value {
			return c.Encode(*access(t))
		},
		decode: func(t *T, v jsontree.Value) error {
			fv, err := c.Decode(v)
			if err != nil {
				return jsontree.RebaseIssues("/"+name, err)
			}
			*access(t) = fv
			return nil
		},
	}
}

// Struct builds T's codec from its declared field list. Encoding emits a JSON
// object with one entry per field in declaration order. Decoding requires an
// object; a declared field whose key is present decodes through its own codec
// (the first failure aborts, annotated with the field name), and a missing
// key leaves the field at its zero value. The lenient missing-key policy is
// deliberate: documents written by older or newer revisions of a type still
// load.
func Struct[T any](fields ...StructField[T]) jsontree.Codec[T] {
	return structCodec[T]{fields: fields}
}

type structCodec[T any] struct{ fields []StructField[T] }

func (c structCodec[T]) Encode(v T) jsontree.Value {
	obj := jsontree.NewObject()
	for _, f := range c.fields {
		_ = obj.Set(f.name, f.encode(&v))
	}
	return obj
}

func (c structCodec[T]) Decode(v jsontree.Value) (T, error) {
	var out T
	if !v.IsObject() {
		msg := i18n.T(jsontree.CodeTypeMismatch, map[string]string{"expected": "object", "got": v.Kind().String()})
		return out, jsontree.Issues{{Path: "/", Code: jsontree.CodeTypeMismatch, Message: msg, Offset: -1}}
	}
	for _, f := range c.fields {
		if !v.Contains(f.name) {
			continue
		}
		child, _ := v.Key(f.name)
		if err := f.decode(&out, *child); err != nil {
			var zero T
			return zero, err
		}
	}
	return out, nil
}
