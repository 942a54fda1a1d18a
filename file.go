package jsontree

import (
	"github.com/keosu/jsontree/internal/textio"
)

// saveIndent is the pretty indent used for files written by SaveFile and
// SaveValue.
const saveIndent = 2

// SaveFile encodes v with c and writes it to path as a pretty-printed JSON
// document. Write failures surface as io_error.
func SaveFile[T any](path string, c Codec[T], v T) error {
	return SaveValue(path, c.Encode(v))
}

// LoadFile reads path, parses it, and decodes the tree with c. Each stage's
// failure short-circuits under its own code: io_error, parse_error, then
// whatever the codec reports.
func LoadFile[T any](path string, c Codec[T]) (T, error) {
	var zero T
	v, err := LoadValue(path)
	if err != nil {
		return zero, err
	}
	return c.Decode(v)
}

// SaveValue writes a raw value tree to path as a pretty-printed JSON
// document.
func SaveValue(path string, v Value) error {
	if err := textio.WriteText(path, v.Dump(saveIndent)+"\n"); err != nil {
		return Issues{{Path: "/", Code: CodeIO, Message: "write " + path, Cause: err, Offset: -1}}
	}
	return nil
}

// LoadValue reads path and parses its contents into a value tree.
func LoadValue(path string) (Value, error) {
	text, err := textio.ReadText(path)
	if err != nil {
		return Value{}, Issues{{Path: "/", Code: CodeIO, Message: "read " + path, Cause: err, Offset: -1}}
	}
	return Parse(text)
}
