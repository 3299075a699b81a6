package compactjson

import (
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// maxParseDepth bounds container nesting while building the tree, mirroring
// the formatter's own depth guard.
const maxParseDepth = 1000

// Parse reads exactly one JSON document from r and builds the ordered value
// tree the formatter consumes. Object member order is preserved and numbers
// keep their source tokens. Trailing non-whitespace input is an error.
func Parse(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := parseNext(dec, 0)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, fmt.Errorf("parse json: input is empty")
		}
		return Value{}, fmt.Errorf("parse json: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("parse json: trailing data after document")
	}
	return v, nil
}

func parseNext(dec *json.Decoder, depth int) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return parseToken(dec, tok, depth)
}

func parseToken(dec *json.Decoder, tok json.Token, depth int) (Value, error) {
	if depth > maxParseDepth {
		return Value{}, ErrTooDeep
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			var items []Value
			for dec.More() {
				item, err := parseNext(dec, depth+1)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return NewArray(items...), nil
		case '{':
			var members []Member
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				val, err := parseNext(dec, depth+1)
				if err != nil {
					return Value{}, err
				}
				members = append(members, Member{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return NewObject(members...), nil
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return NewString(t), nil
	case json.Number:
		return NewNumber(t.String())
	case bool:
		return NewBool(t), nil
	case nil:
		return NewNull(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}
