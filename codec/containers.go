package codec

import (
	"sort"
	"strconv"

	jsontree "github.com/keosu/jsontree"
	"github.com/keosu/jsontree/i18n"
)

func mismatch(want string, got jsontree.Kind) jsontree.Issues {
	msg := i18n.T(jsontree.CodeTypeMismatch, map[string]string{"expected": want, "got": got.String()})
	return jsontree.Issues{{Path: "/", Code: jsontree.CodeTypeMismatch, Message: msg, Offset: -1}}
}

// SliceOf maps []T to a JSON array by applying inner per element, preserving
// order. The first element failure aborts decoding, annotated with the
// element index.
func SliceOf[T any](inner jsontree.Codec[T]) jsontree.Codec[[]T] {
	return sliceCodec[T]{inner: inner}
}

type sliceCodec[T any] struct{ inner jsontree.Codec[T] }

func (c sliceCodec[T]) Encode(vs []T) jsontree.Value {
	arr := jsontree.NewArray()
	for _, v := range vs {
		_ = arr.Append(c.inner.Encode(v))
	}
	return arr
}

func (c sliceCodec[T]) Decode(v jsontree.Value) ([]T, error) {
	if !v.IsArray() {
		return nil, mismatch("array", v.Kind())
	}
	out := make([]T, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem, _ := v.Index(i)
		dv, err := c.inner.Decode(*elem)
		if err != nil {
			return nil, jsontree.RebaseIssues("/"+strconv.Itoa(i), err)
		}
		out = append(out, dv)
	}
	return out, nil
}

// MapOf maps map[string]T to a JSON object key-for-key. Go maps carry no
// insertion order, so encoding sorts keys for deterministic output; use
// OrderedMapOf when order must survive a round trip. Failures are annotated
// with the offending key.
func MapOf[T any](inner jsontree.Codec[T]) jsontree.Codec[map[string]T] {
	return mapCodec[T]{inner: inner}
}

type mapCodec[T any] struct{ inner jsontree.Codec[T] }

func (c mapCodec[T]) Encode(vs map[string]T) jsontree.Value {
	obj := jsontree.NewObject()
	keys := make([]string, 0, len(vs))
	for k := range vs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_ = obj.Set(k, c.inner.Encode(vs[k]))
	}
	return obj
}

func (c mapCodec[T]) Decode(v jsontree.Value) (map[string]T, error) {
	if !v.IsObject() {
		return nil, mismatch("object", v.Kind())
	}
	out := make(map[string]T, v.Len())
	for _, k := range v.Keys() {
		child, _ := v.Key(k)
		dv, err := c.inner.Decode(*child)
		if err != nil {
			return nil, jsontree.RebaseIssues("/"+k, err)
		}
		out[k] = dv
	}
	return out, nil
}

// OrderedMapOf maps *jsontree.OrderedMap[T] to a JSON object, preserving
// insertion order in both directions.
func OrderedMapOf[T any](inner jsontree.Codec[T]) jsontree.Codec[*jsontree.OrderedMap[T]] {
	return orderedMapCodec[T]{inner: inner}
}

type orderedMapCodec[T any] struct{ inner jsontree.Codec[T] }

func (c orderedMapCodec[T]) Encode(vs *jsontree.OrderedMap[T]) jsontree.Value {
	obj := jsontree.NewObject()
	for _, k := range vs.Keys() {
		v, _ := vs.Get(k)
		_ = obj.Set(k, c.inner.Encode(v))
	}
	return obj
}

func (c orderedMapCodec[T]) Decode(v jsontree.Value) (*jsontree.OrderedMap[T], error) {
	if !v.IsObject() {
		return nil, mismatch("object", v.Kind())
	}
	out := jsontree.NewOrderedMap[T]()
	for _, k := range v.Keys() {
		child, _ := v.Key(k)
		dv, err := c.inner.Decode(*child)
		if err != nil {
			return nil, jsontree.RebaseIssues("/"+k, err)
		}
		out.Set(k, dv)
	}
	return out, nil
}

// OptionalOf maps *T to T's representation when present and to null when nil.
// Decoding null yields nil; a containing object's missing key also yields nil
// because struct decoding leaves absent fields at their zero value.
func OptionalOf[T any](inner jsontree.Codec[T]) jsontree.Codec[*T] {
	return optionalCodec[T]{inner: inner}
}

type optionalCodec[T any] struct{ inner jsontree.Codec[T] }

func (c optionalCodec[T]) Encode(v *T) jsontree.Value {
	if v == nil {
		return jsontree.Null()
	}
	return c.inner.Encode(*v)
}

func (c optionalCodec[T]) Decode(v jsontree.Value) (*T, error) {
	if v.IsNull() {
		return nil, nil
	}
	dv, err := c.inner.Decode(v)
	if err != nil {
		return nil, err
	}
	return &dv, nil
}
