// Package codec provides the built-in codecs: primitives plus the container
// combinators SliceOf, MapOf, OrderedMapOf, and OptionalOf. Every codec
// composes only over the codecs of the types it contains; registering a new
// one never touches an existing one.
package codec

import (
	"math"

	jsontree "github.com/keosu/jsontree"
	"github.com/keosu/jsontree/i18n"
)

// Bool maps bool to the JSON boolean variant.
func Bool() jsontree.Codec[bool] { return boolCodec{} }

type boolCodec struct{}

func (boolCodec) Encode(v bool) jsontree.Value          { return jsontree.Bool(v) }
func (boolCodec) Decode(v jsontree.Value) (bool, error) { return v.AsBool() }

// Int maps int to the JSON number variant. Decoding accepts integral numbers
// only; a string or a genuinely fractional number is a type mismatch.
func Int() jsontree.Codec[int] { return intCodec{} }

type intCodec struct{}

func (intCodec) Encode(v int) jsontree.Value { return jsontree.Int(int64(v)) }

func (intCodec) Decode(v jsontree.Value) (int, error) {
	i, err := v.AsInt()
	if err != nil {
		return 0, err
	}
	if int64(int(i)) != i {
		return 0, jsontree.Issues{{Path: "/", Code: jsontree.CodeOverflow, Message: i18n.T(jsontree.CodeOverflow, nil), Offset: -1}}
	}
	return int(i), nil
}

// Int64 maps int64 to the JSON number variant.
func Int64() jsontree.Codec[int64] { return int64Codec{} }

type int64Codec struct{}

func (int64Codec) Encode(v int64) jsontree.Value           { return jsontree.Int(v) }
func (int64Codec) Decode(v jsontree.Value) (int64, error)  { return v.AsInt() }

// Float64 maps float64 to the JSON number variant through the unified numeric
// accessor, so both 42 and 42.5 decode.
func Float64() jsontree.Codec[float64] { return float64Codec{} }

type float64Codec struct{}

func (float64Codec) Encode(v float64) jsontree.Value {
	// whole doubles still encode as fractional literals; the integral flag
	// belongs to values built via Int or parsed without '.'/exponent
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return jsontree.Null()
	}
	return jsontree.Float(v)
}

func (float64Codec) Decode(v jsontree.Value) (float64, error) { return v.AsFloat() }

// String maps string to the JSON string variant.
func String() jsontree.Codec[string] { return stringCodec{} }

type stringCodec struct{}

func (stringCodec) Encode(v string) jsontree.Value            { return jsontree.String(v) }
func (stringCodec) Decode(v jsontree.Value) (string, error)   { return v.AsString() }
