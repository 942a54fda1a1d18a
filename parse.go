package jsontree

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Parse converts JSON text into a Value. The grammar is strict: no comments,
// no trailing commas, no unquoted keys, exactly one document per input. On
// failure the returned error is Issues with a single parse_error entry
// carrying the byte offset and line/column of the first violation.
func Parse(text string) (Value, error) {
	p := &parser{src: text}
	p.skipWS()
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	p.skipWS()
	if p.pos != len(p.src) {
		return Value{}, p.errAt(p.pos, "trailing data after top-level value")
	}
	return v, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// literals known to be valid.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// parser is a recursive-descent parser with one byte of lookahead and no
// backtracking.
type parser struct {
	src string
	pos int
}

func (p *parser) errAt(at int, format string, args ...any) error {
	line, col := lineCol(p.src, at)
	return Issues{{
		Path:    "/",
		Code:    CodeParseError,
		Message: fmt.Sprintf(format, args...),
		Offset:  int64(at),
		Line:    line,
		Col:     col,
	}}
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(src string, at int) (int, int) {
	if at > len(src) {
		at = len(src)
	}
	line := 1 + strings.Count(src[:at], "\n")
	col := at - strings.LastIndex(src[:at], "\n")
	return line, col
}

func (p *parser) skipWS() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseValue() (Value, error) {
	if p.pos >= len(p.src) {
		return Value{}, p.errAt(p.pos, "unexpected end of input")
	}
	switch c := p.src[p.pos]; {
	case c == 'n':
		return p.parseLiteral("null", Null())
	case c == 't':
		return p.parseLiteral("true", Bool(true))
	case c == 'f':
		return p.parseLiteral("false", Bool(false))
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseObject()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return Value{}, p.errAt(p.pos, "unexpected character %q", c)
	}
}

func (p *parser) parseLiteral(lit string, v Value) (Value, error) {
	if !strings.HasPrefix(p.src[p.pos:], lit) {
		return Value{}, p.errAt(p.pos, "unexpected character %q", p.src[p.pos])
	}
	p.pos += len(lit)
	return v, nil
}

// parseNumber scans -?digit+(.digit+)?([eE][+-]?digit+)?. A literal without a
// fraction or exponent produces an integral number; otherwise a fractional
// one. Integral literals beyond the int64 range fall back to float64.
func (p *parser) parseNumber() (Value, error) {
	start := p.pos
	if p.pos < len(p.src) && p.src[p.pos] == '-' {
		p.pos++
	}
	if err := p.scanDigits("digit after minus sign"); err != nil {
		return Value{}, err
	}
	integral := true
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		integral = false
		p.pos++
		if err := p.scanDigits("digit after decimal point"); err != nil {
			return Value{}, err
		}
	}
	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		integral = false
		p.pos++
		if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		if err := p.scanDigits("digit in exponent"); err != nil {
			return Value{}, err
		}
	}
	lit := p.src[start:p.pos]
	if integral {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Int(i), nil
		}
		// out of int64 range; keep the magnitude as a double
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Value{}, p.errAt(start, "invalid number %q", lit)
	}
	return Float(f), nil
}

func (p *parser) scanDigits(want string) error {
	if p.pos >= len(p.src) || p.src[p.pos] < '0' || p.src[p.pos] > '9' {
		return p.errAt(p.pos, "invalid number: expected %s", want)
	}
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	return nil
}

func (p *parser) parseString() (string, error) {
	start := p.pos
	p.pos++ // opening quote
	var b strings.Builder
	for {
		if p.pos >= len(p.src) {
			return "", p.errAt(start, "unterminated string")
		}
		c := p.src[p.pos]
		switch {
		case c == '"':
			p.pos++
			return b.String(), nil
		case c == '\\':
			if err := p.parseEscape(&b); err != nil {
				return "", err
			}
		case c < 0x20:
			return "", p.errAt(p.pos, "unescaped control character in string")
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
}

func (p *parser) parseEscape(b *strings.Builder) error {
	at := p.pos
	p.pos++ // backslash
	if p.pos >= len(p.src) {
		return p.errAt(at, "unterminated escape sequence")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case '"', '\\', '/':
		b.WriteByte(c)
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r, err := p.parseHexRune(at)
		if err != nil {
			return err
		}
		if utf16.IsSurrogate(r) {
			if p.pos+1 < len(p.src) && p.src[p.pos] == '\\' && p.src[p.pos+1] == 'u' {
				at2 := p.pos
				p.pos += 2
				r2, err := p.parseHexRune(at2)
				if err != nil {
					return err
				}
				if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
					b.WriteRune(dec)
					return nil
				}
			}
			return p.errAt(at, "invalid surrogate pair in \\u escape")
		}
		b.WriteRune(r)
	default:
		return p.errAt(at, "invalid escape sequence \\%c", c)
	}
	return nil
}

func (p *parser) parseHexRune(at int) (rune, error) {
	if p.pos+4 > len(p.src) {
		return 0, p.errAt(at, "truncated \\u escape")
	}
	n, err := strconv.ParseUint(p.src[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, p.errAt(at, "invalid \\u escape %q", p.src[p.pos:p.pos+4])
	}
	p.pos += 4
	return rune(n), nil
}

func (p *parser) parseArray() (Value, error) {
	p.pos++ // '['
	arr := NewArray()
	p.skipWS()
	if p.pos < len(p.src) && p.src[p.pos] == ']' {
		p.pos++
		return arr, nil
	}
	for {
		p.skipWS()
		elem, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		_ = arr.Append(elem)
		p.skipWS()
		if p.pos >= len(p.src) {
			return Value{}, p.errAt(p.pos, "unexpected end of input in array")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return arr, nil
		default:
			return Value{}, p.errAt(p.pos, "expected ',' or ']' in array, got %q", p.src[p.pos])
		}
	}
}

func (p *parser) parseObject() (Value, error) {
	p.pos++ // '{'
	obj := NewObject()
	p.skipWS()
	if p.pos < len(p.src) && p.src[p.pos] == '}' {
		p.pos++
		return obj, nil
	}
	for {
		p.skipWS()
		if p.pos >= len(p.src) {
			return Value{}, p.errAt(p.pos, "unexpected end of input in object")
		}
		if p.src[p.pos] != '"' {
			return Value{}, p.errAt(p.pos, "expected string key, got %q", p.src[p.pos])
		}
		key, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		p.skipWS()
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			return Value{}, p.errAt(p.pos, "expected ':' after object key")
		}
		p.pos++
		p.skipWS()
		val, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		// duplicate keys: last assignment wins
		_ = obj.Set(key, val)
		p.skipWS()
		if p.pos >= len(p.src) {
			return Value{}, p.errAt(p.pos, "unexpected end of input in object")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return obj, nil
		default:
			return Value{}, p.errAt(p.pos, "expected ',' or '}' in object, got %q", p.src[p.pos])
		}
	}
}
