package jsontree

import (
	"math"
	"strconv"
	"strings"
)

// Dump renders the value as JSON text. An indent of zero or less produces the
// compact form with no insignificant whitespace; a positive indent produces
// the pretty form with one entry per line and each nesting level indented by
// that many additional spaces. Object keys always appear in insertion order.
func (v Value) Dump(indent int) string {
	var b strings.Builder
	if indent <= 0 {
		writeCompact(&b, v)
	} else {
		writePretty(&b, v, indent, 0)
	}
	return b.String()
}

// String renders the compact form, making Values printable via fmt.
func (v Value) String() string { return v.Dump(0) }

func writeCompact(b *strings.Builder, v Value) {
	switch v.kind {
	case KindArray:
		b.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCompact(b, *e)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, k := range v.obj.Keys() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeString(b, k)
			b.WriteByte(':')
			writeCompact(b, *v.obj.at(i))
		}
		b.WriteByte('}')
	default:
		writeScalar(b, v)
	}
}

func writePretty(b *strings.Builder, v Value, indent, depth int) {
	switch v.kind {
	case KindArray:
		if len(v.arr) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, e := range v.arr {
			if i > 0 {
				b.WriteString(",\n")
			}
			writeIndent(b, indent*(depth+1))
			writePretty(b, *e, indent, depth+1)
		}
		b.WriteByte('\n')
		writeIndent(b, indent*depth)
		b.WriteByte(']')
	case KindObject:
		if v.obj.Len() == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		for i, k := range v.obj.Keys() {
			if i > 0 {
				b.WriteString(",\n")
			}
			writeIndent(b, indent*(depth+1))
			writeString(b, k)
			b.WriteString(": ")
			writePretty(b, *v.obj.at(i), indent, depth+1)
		}
		b.WriteByte('\n')
		writeIndent(b, indent*depth)
		b.WriteByte('}')
	default:
		writeScalar(b, v)
	}
}

func writeIndent(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte(' ')
	}
}

func writeScalar(b *strings.Builder, v Value) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(formatNumber(v))
	case KindString:
		writeString(b, v.s)
	}
}

// formatNumber renders integral numbers as plain integers and fractional ones
// in the shortest decimal/exponential form. A fractional value whose shortest
// form has no '.' or exponent gains a trailing ".0" so that re-parsing keeps
// the fractional flag. Non-finite floats have no JSON representation and
// render as null.
func formatNumber(v Value) string {
	if v.integral {
		return strconv.FormatInt(v.i, 10)
	}
	if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
		return "null"
	}
	s := strconv.FormatFloat(v.f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

const hexDigits = "0123456789abcdef"

// writeString renders s with JSON escaping: quote, backslash, the short
// control escapes, and \u00XX for remaining control bytes. Everything else
// passes through as UTF-8.
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\b':
			b.WriteString(`\b`)
		case c == '\f':
			b.WriteString(`\f`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20:
			b.WriteString(`\u00`)
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xf])
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}
