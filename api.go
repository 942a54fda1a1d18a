package jsontree

// Codec performs bidirectional transformation between a Go type T and the
// JSON value tree. Encode never fails: every T has a tree representation.
// Decode fails with Issues when the tree's shape does not match T.
//
// Codecs compose structurally: a codec for a container is built from the
// codec of its element type, and a codec for an aggregate from the codecs of
// its fields. There is no central dispatch and no runtime reflection;
// resolving T to its codec happens at compile time by passing codec values.
type Codec[T any] interface {
	Encode(v T) Value
	Decode(v Value) (T, error)
}

// EncodeToString encodes v with c and renders it at the given indent
// (zero for compact).
func EncodeToString[T any](c Codec[T], v T, indent int) string {
	return c.Encode(v).Dump(indent)
}

// DecodeFromString parses text and decodes the resulting tree with c. Parse
// failures and decode failures are both surfaced as Issues, each under its
// own code.
func DecodeFromString[T any](c Codec[T], text string) (T, error) {
	var zero T
	v, err := Parse(text)
	if err != nil {
		return zero, err
	}
	return c.Decode(v)
}

// CodecFunc adapts a pair of functions into a Codec.
type CodecFunc[T any] struct {
	EncodeFunc func(T) Value
	DecodeFunc func(Value) (T, error)
}

func (c CodecFunc[T]) Encode(v T) Value          { return c.EncodeFunc(v) }
func (c CodecFunc[T]) Decode(v Value) (T, error) { return c.DecodeFunc(v) }
