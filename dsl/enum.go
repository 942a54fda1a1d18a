package dsl

import (
	"strconv"

	jsontree "github.com/keosu/jsontree"
	"github.com/keosu/jsontree/i18n"
)

// EnumVariant pairs a variant's registered name with its value.
type EnumVariant[E comparable] struct {
	name  string
	value E
}

// Variant declares one enum variant.
func Variant[E comparable](name string, value E) EnumVariant[E] {
	return EnumVariant[E]{name: name, value: value}
}

// Enum builds E's codec from its ordered variant list. Values serialize to
// the JSON string holding the variant's registered name; an unregistered
// value serializes as "Unknown". Decoding matches the string exactly against
// the list and fails with invalid_enum otherwise.
func Enum[E comparable](variants ...EnumVariant[E]) jsontree.Codec[E] {
	return enumCodec[E]{variants: variants}
}

type enumCodec[E comparable] struct{ variants []EnumVariant[E] }

func (c enumCodec[E]) Encode(v E) jsontree.Value {
	for _, ev := range c.variants {
		if ev.value == v {
			return jsontree.String(ev.name)
		}
	}
	return jsontree.String("Unknown")
}

func (c enumCodec[E]) Decode(v jsontree.Value) (E, error) {
	var zero E
	s, err := v.AsString()
	if err != nil {
		return zero, err
	}
	for _, ev := range c.variants {
		if ev.name == s {
			return ev.value, nil
		}
	}
	return zero, jsontree.Issues{{Path: "/", Code: jsontree.CodeInvalidEnum, Message: i18n.T(jsontree.CodeInvalidEnum, map[string]string{"value": strconv.Quote(s)}), Offset: -1}}
}
