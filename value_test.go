package compactjson

import (
	"math"
	"testing"
)

func TestNewNumber(t *testing.T) {
	valid := []string{"0", "-0", "1", "-12", "3.25", "0.001", "1e5", "1.5E-10", "2e+3", "1e999"}
	for _, token := range valid {
		v, err := NewNumber(token)
		if err != nil {
			t.Fatalf("NewNumber(%q) failed: %v", token, err)
		}
		if v.NumberText() != token {
			t.Fatalf("NumberText = %q, expected %q", v.NumberText(), token)
		}
	}

	invalid := []string{"", "-", "01", "+1", ".5", "1.", "1e", "NaN", "Infinity", "0x10", "1_000"}
	for _, token := range invalid {
		if _, err := NewNumber(token); err == nil {
			t.Fatalf("NewNumber(%q) unexpectedly succeeded", token)
		}
	}
}

func TestNewFloat_TokenForms(t *testing.T) {
	if got := NewFloat(2.5).NumberText(); got != "2.5" {
		t.Fatalf("NewFloat(2.5) token = %q", got)
	}
	if got := NewFloat(math.Inf(-1)).NumberText(); got != "-Infinity" {
		t.Fatalf("NewFloat(-Inf) token = %q", got)
	}
}

func TestValueEqual(t *testing.T) {
	a, _ := NewNumber("1.0")
	b, _ := NewNumber("1")
	if !a.Equal(b) {
		t.Fatal("1.0 and 1 should compare equal by magnitude")
	}

	x := NewObject(
		Member{Key: "k", Value: NewArray(NewInt(1), NewNull())},
	)
	y := NewObject(
		Member{Key: "k", Value: NewArray(NewInt(1), NewNull())},
	)
	if !x.Equal(y) {
		t.Fatal("identical trees should be equal")
	}

	z := NewObject(
		Member{Key: "k", Value: NewArray(NewInt(2), NewNull())},
	)
	if x.Equal(z) {
		t.Fatal("different trees should not be equal")
	}
	if x.Equal(NewArray()) {
		t.Fatal("object and array should not be equal")
	}
}

func TestQuoteString(t *testing.T) {
	cases := []struct {
		in          string
		ensureASCII bool
		expected    string
	}{
		{"plain", true, `"plain"`},
		{`quote " and \ slash`, true, `"quote \" and \\ slash"`},
		{"tab\tnewline\n", true, `"tab\tnewline\n"`},
		{"ctrl\x01", true, `"ctrl\u0001"`},
		{"héllo", true, `"h\u00e9llo"`},
		{"héllo", false, "\"héllo\""},
		{"smile \U0001F600", true, `"smile \ud83d\ude00"`},
		{"smile \U0001F600", false, "\"smile \U0001F600\""},
	}
	for _, tc := range cases {
		if got := quoteString(tc.in, tc.ensureASCII); got != tc.expected {
			t.Fatalf("quoteString(%q, %v) = %s, expected %s", tc.in, tc.ensureASCII, got, tc.expected)
		}
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		Null: "null", Bool: "bool", Number: "number",
		String: "string", Array: "array", Object: "object",
		Invalid: "invalid",
	}
	for k, s := range kinds {
		if k.String() != s {
			t.Fatalf("Kind(%d).String() = %q, expected %q", k, k.String(), s)
		}
	}
}
