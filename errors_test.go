package jsontree_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	jsontree "github.com/keosu/jsontree"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := jsontree.Issues{
		{Path: "/age", Code: jsontree.CodeTypeMismatch, Message: "expected number, got string"},
	}
	msg := iss.Error()
	if !strings.Contains(msg, "type_mismatch at /age") {
		t.Fatalf("summary = %q", msg)
	}
	if !strings.Contains(msg, "expected number, got string") {
		t.Fatalf("summary = %q", msg)
	}
}

func TestIssues_ErrorTruncatesLongLists(t *testing.T) {
	var iss jsontree.Issues
	for i := 0; i < 5; i++ {
		iss = jsontree.AppendIssues(iss, jsontree.Issue{Path: fmt.Sprintf("/%d", i), Code: jsontree.CodeTypeMismatch})
	}
	msg := iss.Error()
	if !strings.Contains(msg, "(total 5)") {
		t.Fatalf("summary should report the total: %q", msg)
	}
	if strings.Contains(msg, "/4") {
		t.Fatalf("summary should stop after the first few: %q", msg)
	}
}

func TestAsIssues(t *testing.T) {
	if _, ok := jsontree.AsIssues(nil); ok {
		t.Fatalf("nil is not Issues")
	}
	if _, ok := jsontree.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain errors are not Issues")
	}

	wrapped := fmt.Errorf("loading config: %w", jsontree.Issues{{Path: "/", Code: jsontree.CodeParseError}})
	iss, ok := jsontree.AsIssues(wrapped)
	if !ok || len(iss) != 1 {
		t.Fatalf("wrapped Issues should unwrap, got %v", wrapped)
	}
}

func TestRebaseIssues(t *testing.T) {
	child := jsontree.Issues{
		{Path: "/inner", Code: jsontree.CodeTypeMismatch},
		{Path: "/", Code: jsontree.CodeKeyNotFound},
	}
	out := jsontree.RebaseIssues("/outer", child)
	if out[0].Path != "/outer/inner" {
		t.Fatalf("path = %q", out[0].Path)
	}
	if out[1].Path != "/outer" {
		t.Fatalf("root child path should collapse onto the base, got %q", out[1].Path)
	}

	// non-Issues errors become a single entry at the base
	out = jsontree.RebaseIssues("/outer", errors.New("boom"))
	if len(out) != 1 || out[0].Path != "/outer" || out[0].Cause == nil {
		t.Fatalf("out = %+v", out)
	}

	if jsontree.RebaseIssues("/outer", nil) != nil {
		t.Fatalf("nil stays nil")
	}
}
