package jsontree

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeParseError      = "parse_error"
	CodeTypeMismatch    = "type_mismatch"
	CodeInvalidEnum     = "invalid_enum"
	CodeIndexOutOfRange = "index_out_of_range"
	CodeKeyNotFound     = "key_not_found"
	CodeOverflow        = "overflow"
	CodeIO              = "io_error"
)

// Issue represents a single failure entry.
type Issue struct {
	Path    string // JSON Pointer into the value tree (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	Offset  int64 // Byte offset in the input text (-1 when unknown).
	Line    int   // 1-based line of the failure in the input text (0 when unknown).
	Col     int   // 1-based column of the failure (0 when unknown).
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Path != "" {
			fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		} else {
			b.WriteString(it.Code)
		}
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// RebaseIssues prefixes every issue path in err with base so that a child
// failure reports the path to the offending node from the parent's point of
// view. Non-Issues errors are wrapped into a single parse_error entry at base.
func RebaseIssues(base string, err error) Issues {
	if err == nil {
		return nil
	}
	child, ok := AsIssues(err)
	if !ok {
		return Issues{{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err, Offset: -1}}
	}
	out := make(Issues, 0, len(child))
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

func singleIssue(code, path, msg string) Issues {
	return Issues{{Path: path, Code: code, Message: msg, Offset: -1}}
}
