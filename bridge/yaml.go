package bridge

import (
	"strconv"

	"gopkg.in/yaml.v3"

	jsontree "github.com/keosu/jsontree"
)

// FromYAML converts a YAML document into a value tree. Decoding goes through
// yaml.Node so mapping key order survives. Integers map to integral numbers,
// floats to fractional ones.
func FromYAML(data []byte) (jsontree.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return jsontree.Value{}, jsontree.Issues{{Path: "/", Code: jsontree.CodeParseError, Message: "yaml: " + err.Error(), Cause: err, Offset: -1}}
	}
	if root.Kind == 0 || len(root.Content) == 0 && root.Kind == yaml.DocumentNode {
		return jsontree.Null(), nil
	}
	return yamlNodeToValue(&root, 0)
}

const maxAliasDepth = 1000

func yamlNodeToValue(n *yaml.Node, depth int) (jsontree.Value, error) {
	if depth > maxAliasDepth {
		return jsontree.Value{}, jsontree.Issues{{Path: "/", Code: jsontree.CodeParseError, Message: "yaml: alias nesting too deep", Offset: -1}}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		return yamlNodeToValue(n.Content[0], depth+1)
	case yaml.AliasNode:
		return yamlNodeToValue(n.Alias, depth+1)
	case yaml.SequenceNode:
		arr := jsontree.NewArray()
		for _, c := range n.Content {
			v, err := yamlNodeToValue(c, depth+1)
			if err != nil {
				return jsontree.Value{}, err
			}
			_ = arr.Append(v)
		}
		return arr, nil
	case yaml.MappingNode:
		obj := jsontree.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return jsontree.Value{}, jsontree.Issues{{Path: "/", Code: jsontree.CodeParseError, Message: "yaml: non-scalar mapping key", Offset: -1}}
			}
			v, err := yamlNodeToValue(n.Content[i+1], depth+1)
			if err != nil {
				return jsontree.Value{}, err
			}
			_ = obj.Set(key.Value, v)
		}
		return obj, nil
	case yaml.ScalarNode:
		return yamlScalarToValue(n)
	default:
		return jsontree.Null(), nil
	}
}

func yamlScalarToValue(n *yaml.Node) (jsontree.Value, error) {
	switch n.Tag {
	case "!!null":
		return jsontree.Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return jsontree.Value{}, yamlScalarErr(n, err)
		}
		return jsontree.Bool(b), nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			// out of int64 range; keep the magnitude as a double
			f, ferr := strconv.ParseFloat(n.Value, 64)
			if ferr != nil {
				return jsontree.Value{}, yamlScalarErr(n, err)
			}
			return jsontree.Float(f), nil
		}
		return jsontree.Int(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return jsontree.Value{}, yamlScalarErr(n, err)
		}
		return jsontree.Float(f), nil
	default:
		return jsontree.String(n.Value), nil
	}
}

func yamlScalarErr(n *yaml.Node, err error) error {
	return jsontree.Issues{{
		Path:    "/",
		Code:    jsontree.CodeParseError,
		Message: "yaml: bad scalar " + strconv.Quote(n.Value),
		Cause:   err,
		Offset:  -1,
		Line:    n.Line,
		Col:     n.Column,
	}}
}
