// Package bridge provides interop drivers between the value tree and other
// representations: arbitrary Go values via go-json, and YAML documents via
// yaml.v3.
package bridge

import (
	j "github.com/goccy/go-json"

	jsontree "github.com/keosu/jsontree"
)

// FromGo converts an arbitrary Go value into a value tree by marshalling it
// with go-json and parsing the result. Struct json tags apply as usual. Use a
// dsl.Struct codec instead when field order and lenient decoding matter.
func FromGo(v any) (jsontree.Value, error) {
	data, err := j.Marshal(v)
	if err != nil {
		return jsontree.Value{}, jsontree.Issues{{Path: "/", Code: jsontree.CodeParseError, Message: "marshal: " + err.Error(), Cause: err, Offset: -1}}
	}
	return jsontree.Parse(string(data))
}

// ToGo decodes a value tree into out (a pointer) by rendering the compact
// form and unmarshalling it with go-json.
func ToGo(v jsontree.Value, out any) error {
	if err := j.Unmarshal([]byte(v.Dump(0)), out); err != nil {
		return jsontree.Issues{{Path: "/", Code: jsontree.CodeTypeMismatch, Message: "unmarshal: " + err.Error(), Cause: err, Offset: -1}}
	}
	return nil
}
