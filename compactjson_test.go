package compactjson

import (
	"bytes"
	"strings"
	"testing"
)

func TestPretty(t *testing.T) {
	out, err := Pretty([]byte(`{"b":1,"a":[true,null]}`), nil)
	if err != nil {
		t.Fatalf("Pretty failed: %v", err)
	}
	expected := "{ \"b\": 1, \"a\": [true, null] }\n"
	if string(out) != expected {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", expected, out)
	}
}

func TestPretty_ParseError(t *testing.T) {
	if _, err := Pretty([]byte(`{"a":`), nil); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestPrettyTo(t *testing.T) {
	var buf bytes.Buffer
	opts := *DefaultOptions
	opts.EOLStyle = EOLCRLF
	opts.PrefixString = "// "
	opts.MaxInlineComplexity = 0

	err := PrettyTo(&buf, []byte(`{"a": 1}`), &opts)
	if err != nil {
		t.Fatalf("PrettyTo failed: %v", err)
	}
	expected := "// {\r\n//     \"a\": 1\r\n// }\r\n"
	if buf.String() != expected {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", expected, buf.String())
	}
}

func TestFormat_NilOptionsUsesDefaults(t *testing.T) {
	out, err := Format(NewArray(NewInt(1), NewInt(2)), nil)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if out != "[1, 2]" {
		t.Fatalf("unexpected output %q", out)
	}
}

// Formatting must never change what the document says, only how it is laid
// out. Reparsing the output has to give back the input tree, and formatting
// that reparse has to reproduce the same text.
func TestRoundTripAndIdempotence(t *testing.T) {
	docs := []string{
		`null`,
		`[]`,
		`{}`,
		`[1, 2.50, -3e2, "x", true, null]`,
		`{"a": {"b": [1, 2]}, "c": [[1], [2, 3]], "d": "\u0001\ud83d\ude00"}`,
		`[{"x": 1, "y": 2.5}, {"x": 10, "y": 0.25}, {"x": 100}]`,
		`[[1, 2, 3], [4, 5, 6], [7, 8]]`,
		`{"deep": {"deeper": {"deepest": [1, [2, [3, [4]]]]}}}`,
	}
	variants := []func(*Options){
		func(o *Options) {},
		func(o *Options) { o.MaxInlineLength = 10 },
		func(o *Options) { o.MaxInlineComplexity = 0; o.MaxCompactListComplexity = 0 },
		func(o *Options) { o.CommaPadding = false; o.ColonPadding = false },
		func(o *Options) { o.UseTabToIndent = true; o.AlignExpandedPropertyNames = true },
		func(o *Options) { o.EnsureASCII = false; o.JustifyNumbers = false },
	}

	for _, doc := range docs {
		tree, err := ParseBytes([]byte(doc))
		if err != nil {
			t.Fatalf("parse %q failed: %v", doc, err)
		}
		for i, mutate := range variants {
			opts := *DefaultOptions
			mutate(&opts)

			first, err := Format(tree, &opts)
			if err != nil {
				t.Fatalf("doc %q variant %d: format failed: %v", doc, i, err)
			}
			reparsed, err := ParseBytes([]byte(first))
			if err != nil {
				t.Fatalf("doc %q variant %d: output %q does not reparse: %v", doc, i, first, err)
			}
			if !tree.Equal(reparsed) {
				t.Fatalf("doc %q variant %d: output %q changed the document", doc, i, first)
			}
			second, err := Format(reparsed, &opts)
			if err != nil {
				t.Fatalf("doc %q variant %d: second format failed: %v", doc, i, err)
			}
			if first != second {
				t.Fatalf("doc %q variant %d: not idempotent\nfirst:\n%q\nsecond:\n%q", doc, i, first, second)
			}
		}
	}
}

func TestPrefixAppearsOnEveryLine(t *testing.T) {
	opts := *DefaultOptions
	opts.PrefixString = "\t"
	opts.MaxInlineComplexity = 0

	out, err := Format(NewObject(
		Member{Key: "a", Value: NewInt(1)},
		Member{Key: "b", Value: NewInt(2)},
	), &opts)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "\t") {
			t.Fatalf("line %q lacks the prefix in output %q", line, out)
		}
	}
}
