package jsontree

// Package jsontree provides:
//
// - An owned JSON value tree (Value) with factories, typed accessors, and
//   structural equality that keeps the integral/fractional number distinction
// - A strict recursive-descent parser (Parse) with positioned parse errors
// - A compact and pretty printer (Value.Dump)
// - Compile-time codec composition (Codec[T]) with positioned decode errors
//   via Issues (JSON Pointer, code, message)
// - Whole-file helpers (SaveFile/LoadFile) over the textio collaborator
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place declarative struct/enum registration under dsl/, built-in codecs under codec/,
//   interop drivers under bridge/, and the CLI under cmd/jsontree.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := jsontree.Parse(text)
//	text = v.Dump(2)
//
//	personCodec := dsl.Struct[Person](
//		dsl.Field("name", codec.String(), func(p *Person) *string { return &p.Name }),
//		dsl.Field("age", codec.Int(), func(p *Person) *int { return &p.Age }),
//	)
//	p, err := jsontree.DecodeFromString(personCodec, text)
