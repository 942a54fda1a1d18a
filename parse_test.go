package jsontree_test

import (
	"strings"
	"testing"

	jsontree "github.com/keosu/jsontree"
)

func mustParse(t *testing.T, text string) jsontree.Value {
	t.Helper()
	v, err := jsontree.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return v
}

func parseErr(t *testing.T, text string) jsontree.Issue {
	t.Helper()
	_, err := jsontree.Parse(text)
	if err == nil {
		t.Fatalf("Parse(%q): expected error", text)
	}
	iss, ok := jsontree.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("Parse(%q): expected Issues, got %v", text, err)
	}
	if iss[0].Code != jsontree.CodeParseError {
		t.Fatalf("Parse(%q): expected parse_error, got %s", text, iss[0].Code)
	}
	return iss[0]
}

func TestParse_Literals(t *testing.T) {
	if !mustParse(t, "null").IsNull() {
		t.Fatalf("null")
	}
	if b, _ := mustParse(t, "true").AsBool(); !b {
		t.Fatalf("true")
	}
	if b, _ := mustParse(t, "false").AsBool(); b {
		t.Fatalf("false")
	}
	if !mustParse(t, " \t\r\n null \t\r\n ").IsNull() {
		t.Fatalf("surrounding whitespace should be skipped")
	}
}

func TestParse_Numbers(t *testing.T) {
	cases := []struct {
		in       string
		integral bool
		f        float64
	}{
		{"42", true, 42},
		{"-10", true, -10},
		{"0", true, 0},
		{"3.14", false, 3.14},
		{"-0.5", false, -0.5},
		{"1e3", false, 1000},
		{"1E-2", false, 0.01},
		{"2.5e+2", false, 250},
	}
	for _, tc := range cases {
		v := mustParse(t, tc.in)
		if !v.IsNumber() {
			t.Fatalf("%q: not a number", tc.in)
		}
		if v.IsIntegral() != tc.integral {
			t.Fatalf("%q: integral = %v, want %v", tc.in, v.IsIntegral(), tc.integral)
		}
		if f, _ := v.AsFloat(); f != tc.f {
			t.Fatalf("%q: value = %v, want %v", tc.in, f, tc.f)
		}
	}
}

func TestParse_NumberErrors(t *testing.T) {
	for _, in := range []string{"-", "1.", ".5", "1e", "1e+", "+1", "0x10"} {
		if _, err := jsontree.Parse(in); err == nil {
			t.Fatalf("Parse(%q): expected error", in)
		}
	}
}

func TestParse_IntegerOverflowFallsBackToDouble(t *testing.T) {
	v := mustParse(t, "92233720368547758080") // 10 * 2^63
	if v.IsIntegral() {
		t.Fatalf("out-of-range integer literal should decay to a double")
	}
	if f, _ := v.AsFloat(); f != 92233720368547758080.0 {
		t.Fatalf("magnitude lost: %v", f)
	}
}

func TestParse_Strings(t *testing.T) {
	cases := map[string]string{
		`"hello world"`:        "hello world",
		`""`:                   "",
		`"a\"b"`:               `a"b`,
		`"a\\b"`:               `a\b`,
		`"a\/b"`:               "a/b",
		`"\b\f\n\r\t"`:         "\b\f\n\r\t",
		`"\u0041"`:            "A",
		`"\u00e9"`:            "é",
		`"\ud83d\ude00"`:      "😀", // surrogate pair
		`"plain unicode: 漢字"`:  "plain unicode: 漢字",
	}
	for in, want := range cases {
		v := mustParse(t, in)
		if s, _ := v.AsString(); s != want {
			t.Fatalf("Parse(%s) = %q, want %q", in, s, want)
		}
	}
}

func TestParse_StringErrors(t *testing.T) {
	parseErr(t, `"unterminated`)
	parseErr(t, `"bad escape \x"`)
	parseErr(t, `"truncated \u00"`)
	parseErr(t, `"lone surrogate \ud83d"`)
	parseErr(t, "\"control \x01 char\"")
}

func TestParse_Array(t *testing.T) {
	v := mustParse(t, "[1, 2, 3, 4, 5]")
	if !v.IsArray() || v.Len() != 5 {
		t.Fatalf("bad array: %v", v)
	}
	first, _ := v.Index(0)
	last, _ := v.Index(4)
	if n, _ := first.AsInt(); n != 1 {
		t.Fatalf("first = %v", n)
	}
	if n, _ := last.AsInt(); n != 5 {
		t.Fatalf("last = %v", n)
	}

	if mustParse(t, "[]").Len() != 0 {
		t.Fatalf("empty array")
	}
	if mustParse(t, "[[1],[2,[3]]]").Len() != 2 {
		t.Fatalf("nested array")
	}

	parseErr(t, "[1,2")
	parseErr(t, "[1,]")
	parseErr(t, "[1 2]")
}

func TestParse_Object(t *testing.T) {
	v := mustParse(t, `{"name": "Alice", "age": 30}`)
	if !v.IsObject() || v.Len() != 2 {
		t.Fatalf("bad object: %v", v)
	}
	name, _ := v.Key("name")
	if s, _ := name.AsString(); s != "Alice" {
		t.Fatalf("name = %q", s)
	}
	age, _ := v.Key("age")
	if n, _ := age.AsInt(); n != 30 {
		t.Fatalf("age = %v", n)
	}

	parseErr(t, `{"a":1`)
	parseErr(t, `{"a":1,}`)
	parseErr(t, `{a:1}`)
	parseErr(t, `{"a" 1}`)
	parseErr(t, `{1:2}`)
}

func TestParse_DuplicateKeysLastWins(t *testing.T) {
	v := mustParse(t, `{"a":1,"a":2}`)
	if v.Len() != 1 {
		t.Fatalf("duplicate key must not create a second entry")
	}
	a, _ := v.Key("a")
	if n, _ := a.AsInt(); n != 2 {
		t.Fatalf("last assignment should win, got %v", n)
	}
}

func TestParse_TrailingData(t *testing.T) {
	it := parseErr(t, "null garbage")
	if !strings.Contains(it.Message, "trailing") {
		t.Fatalf("expected trailing-data message, got %q", it.Message)
	}
	parseErr(t, "{} {}")
	// trailing whitespace is fine
	mustParse(t, "1 \n\t ")
}

func TestParse_ErrorLocality(t *testing.T) {
	it := parseErr(t, `{"a": }`)
	if it.Offset < 6 {
		t.Fatalf("error position should point at or after the '}': offset %d", it.Offset)
	}
	if it.Line != 1 || it.Col < 7 {
		t.Fatalf("line/col = %d/%d", it.Line, it.Col)
	}

	it = parseErr(t, "{\n  \"a\": [1,\n  bad]\n}")
	if it.Line != 3 {
		t.Fatalf("expected failure on line 3, got %d", it.Line)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	it := parseErr(t, "")
	if !strings.Contains(it.Message, "end of input") {
		t.Fatalf("message = %q", it.Message)
	}
	parseErr(t, "   \t\n ")
}
