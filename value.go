package compactjson

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// Kind identifies which JSON shape a Value carries.
type Kind uint8

const (
	Invalid Kind = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "invalid"
	}
}

// Member is one key/value pair of an Object. Members keep document order and
// keys are not required to be unique.
type Member struct {
	Key   string
	Value Value
}

// Value is a node of an already-parsed JSON tree: null, bool, number, string,
// array or object. Values are treated as read-only for the whole formatting
// pass, so a tree can be formatted concurrently from multiple goroutines.
//
// Numbers keep their source token verbatim, so formatting preserves the
// original precision and trailing zeros. The parsed magnitude is only used
// for structural comparison.
type Value struct {
	kind    Kind
	boolVal bool
	numText string
	numVal  float64
	strVal  string
	items   []Value
	members []Member
}

// NewNull returns the JSON null value.
func NewNull() Value { return Value{kind: Null} }

// NewBool returns a JSON boolean.
func NewBool(b bool) Value { return Value{kind: Bool, boolVal: b} }

// NewString returns a JSON string.
func NewString(s string) Value { return Value{kind: String, strVal: s} }

// NewArray returns a JSON array with the given elements.
func NewArray(items ...Value) Value { return Value{kind: Array, items: items} }

// NewObject returns a JSON object with the given members, in order.
func NewObject(members ...Member) Value { return Value{kind: Object, members: members} }

// NewInt returns a JSON number from an integer.
func NewInt(i int64) Value {
	return Value{kind: Number, numText: strconv.FormatInt(i, 10), numVal: float64(i)}
}

// NewFloat returns a JSON number from a float. Non-finite values produce a
// token that Format rejects with ErrUnsupportedValue.
func NewFloat(f float64) Value {
	var text string
	switch {
	case math.IsNaN(f):
		text = "NaN"
	case math.IsInf(f, 1):
		text = "Infinity"
	case math.IsInf(f, -1):
		text = "-Infinity"
	default:
		text = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return Value{kind: Number, numText: text, numVal: f}
}

// NewNumber returns a JSON number from its textual token, preserving the
// token exactly. The token must be a valid JSON number.
func NewNumber(token string) (Value, error) {
	if !isJSONNumber(token) {
		return Value{}, fmt.Errorf("%w: malformed number %q", ErrUnsupportedValue, token)
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		var ne *strconv.NumError
		// An out-of-range token is still a valid JSON number; the
		// magnitude just saturates.
		if !(errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange)) {
			return Value{}, fmt.Errorf("%w: malformed number %q", ErrUnsupportedValue, token)
		}
	}
	return Value{kind: Number, numText: token, numVal: f}, nil
}

// Kind reports the JSON shape of v.
func (v Value) Kind() Kind { return v.kind }

// BoolValue returns the boolean payload. Valid only when Kind is Bool.
func (v Value) BoolValue() bool { return v.boolVal }

// StringValue returns the string payload. Valid only when Kind is String.
func (v Value) StringValue() string { return v.strVal }

// NumberText returns the numeric token exactly as supplied.
func (v Value) NumberText() string { return v.numText }

// Float64 returns the parsed magnitude of a Number.
func (v Value) Float64() float64 { return v.numVal }

// Items returns the elements of an Array. The returned slice must not be
// modified.
func (v Value) Items() []Value { return v.items }

// Members returns the members of an Object. The returned slice must not be
// modified.
func (v Value) Members() []Member { return v.members }

// Equal reports structural equality. Numbers compare by magnitude, so "1.0"
// and "1" are equal.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case Bool:
		return v.boolVal == w.boolVal
	case Number:
		return v.numVal == w.numVal
	case String:
		return v.strVal == w.strVal
	case Array:
		if len(v.items) != len(w.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(w.items[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.members) != len(w.members) {
			return false
		}
		for i := range v.members {
			if v.members[i].Key != w.members[i].Key {
				return false
			}
			if !v.members[i].Value.Equal(w.members[i].Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// isJSONNumber reports whether token matches the RFC 8259 number grammar.
// NaN and Infinity spellings fail here, which is what routes them to
// ErrUnsupportedValue during formatting.
func isJSONNumber(token string) bool {
	s := token
	if len(s) == 0 {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	// Integer part: "0" or a non-zero digit followed by digits.
	switch {
	case s[0] == '0':
		s = s[1:]
	case s[0] >= '1' && s[0] <= '9':
		i := 1
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		s = s[i:]
	default:
		return false
	}
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == 0 {
			return false
		}
		s = s[i:]
	}
	if len(s) > 0 && (s[0] == 'e' || s[0] == 'E') {
		s = s[1:]
		if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
			s = s[1:]
		}
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == 0 {
			return false
		}
		s = s[i:]
	}
	return len(s) == 0
}

const hexDigits = "0123456789abcdef"

// quoteString renders s as a JSON string literal. When ensureASCII is true
// every non-ASCII rune is escaped as \uXXXX (with surrogate pairs above the
// BMP), matching encoding/json's HTML-free escaping otherwise.
func quoteString(s string, ensureASCII bool) string {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	for _, r := range s {
		switch r {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			switch {
			case r < 0x20:
				buf = appendEscapedRune(buf, r)
			case r < utf8.RuneSelf:
				buf = append(buf, byte(r))
			case ensureASCII || r == utf8.RuneError:
				if r > 0xFFFF {
					hi, lo := utf16.EncodeRune(r)
					buf = appendEscapedRune(buf, hi)
					buf = appendEscapedRune(buf, lo)
				} else {
					buf = appendEscapedRune(buf, r)
				}
			default:
				buf = utf8.AppendRune(buf, r)
			}
		}
	}
	buf = append(buf, '"')
	return string(buf)
}

func appendEscapedRune(buf []byte, r rune) []byte {
	return append(buf, '\\', 'u',
		hexDigits[r>>12&0xF],
		hexDigits[r>>8&0xF],
		hexDigits[r>>4&0xF],
		hexDigits[r&0xF])
}
