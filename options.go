package compactjson

import "fmt"

// EOLStyle selects the line ending written between physical lines.
type EOLStyle uint8

const (
	// EOLLF ends lines with "\n".
	EOLLF EOLStyle = iota
	// EOLCRLF ends lines with "\r\n".
	EOLCRLF
)

// Options controls the formatting behavior. Start from a copy of
// DefaultOptions; a zero Options is not valid. All fields are read-only once
// formatting begins, so one Options value can serve concurrent calls.
type Options struct {
	// EOLStyle dictates what sort of line endings to use.
	EOLStyle EOLStyle

	// MaxInlineLength is the maximum length of a complex element on a
	// single line. This includes only the data for the inlined element,
	// not indentation or leading property names.
	MaxInlineLength int

	// MaxInlineComplexity is the maximum nesting level that can be
	// displayed on a single line. A primitive type or an empty array or
	// object has a complexity of 0. A non-empty container has a
	// complexity one greater than its most complex child.
	MaxInlineComplexity int

	// MaxCompactListComplexity is the maximum nesting level that can be
	// arranged spanning multiple lines, with multiple items per line.
	MaxCompactListComplexity int

	// NestedBracketPadding pads the brackets of an inlined container
	// with spaces when it holds other containers.
	NestedBracketPadding bool

	// SimpleBracketPadding pads the brackets of an inlined container
	// with spaces when it holds only primitives.
	SimpleBracketPadding bool

	// ColonPadding includes a space after property colons.
	ColonPadding bool

	// CommaPadding includes a space after commas separating elements.
	CommaPadding bool

	// AlwaysExpandDepth forces full expansion of containers at or above
	// this depth, regardless of other settings. -1 = never; 0 = root
	// only; 1 = root and its children.
	AlwaysExpandDepth int

	// IndentSpaces is the number of spaces per indent level, unless
	// UseTabToIndent is set.
	IndentSpaces int

	// UseTabToIndent uses a single tab per indent level instead of
	// spaces.
	UseTabToIndent bool

	// TableObjectMinimumSimilarity is a value from 0 to 100 indicating
	// how similar a group of inline objects needs to be to format as a
	// table. Objects with no property names in common score 0; objects
	// that share every property name score 100.
	TableObjectMinimumSimilarity int

	// TableArrayMinimumSimilarity is the same gate for groups of inline
	// arrays, scored on how close their lengths are.
	TableArrayMinimumSimilarity int

	// AlignExpandedPropertyNames pads the property names of expanded
	// objects to the same width.
	AlignExpandedPropertyNames bool

	// JustifyNumbers right-aligns groups of sibling numbers with
	// matching precision.
	JustifyNumbers bool

	// PrefixString is attached to the beginning of every line, before
	// regular indentation.
	PrefixString string

	// EnsureASCII escapes all non-ASCII characters in the output. When
	// false they are written verbatim.
	EnsureASCII bool

	// EastAsianStringWidths measures strings with wide-character
	// semantics instead of codepoint counts.
	EastAsianStringWidths bool

	// MultilineCompactObject lets objects use the packed multi-line
	// layout that is otherwise reserved for arrays.
	MultilineCompactObject bool

	// MaxDepth bounds the value-tree nesting the formatter will walk
	// before failing with ErrTooDeep.
	MaxDepth int
}

// DefaultOptions holds the fallback formatting configuration. Functions that
// take *Options treat nil as DefaultOptions.
var DefaultOptions = &Options{
	EOLStyle:                     EOLLF,
	MaxInlineLength:              80,
	MaxInlineComplexity:          2,
	MaxCompactListComplexity:     1,
	NestedBracketPadding:         true,
	SimpleBracketPadding:         false,
	ColonPadding:                 true,
	CommaPadding:                 true,
	AlwaysExpandDepth:            -1,
	IndentSpaces:                 4,
	UseTabToIndent:               false,
	TableObjectMinimumSimilarity: 75,
	TableArrayMinimumSimilarity:  75,
	AlignExpandedPropertyNames:   false,
	JustifyNumbers:               true,
	PrefixString:                 "",
	EnsureASCII:                  true,
	EastAsianStringWidths:        false,
	MultilineCompactObject:       false,
	MaxDepth:                     100,
}

func (o *Options) validate() error {
	switch {
	case o.EOLStyle != EOLLF && o.EOLStyle != EOLCRLF:
		return fmt.Errorf("%w: unknown EOL style %d", ErrInvalidOptions, o.EOLStyle)
	case o.MaxInlineLength < 0:
		return fmt.Errorf("%w: MaxInlineLength must be >= 0, got %d", ErrInvalidOptions, o.MaxInlineLength)
	case o.MaxInlineComplexity < 0:
		return fmt.Errorf("%w: MaxInlineComplexity must be >= 0, got %d", ErrInvalidOptions, o.MaxInlineComplexity)
	case o.MaxCompactListComplexity < 0:
		return fmt.Errorf("%w: MaxCompactListComplexity must be >= 0, got %d", ErrInvalidOptions, o.MaxCompactListComplexity)
	case o.AlwaysExpandDepth < -1:
		return fmt.Errorf("%w: AlwaysExpandDepth must be >= -1, got %d", ErrInvalidOptions, o.AlwaysExpandDepth)
	case o.IndentSpaces <= 0:
		return fmt.Errorf("%w: IndentSpaces must be positive, got %d", ErrInvalidOptions, o.IndentSpaces)
	case o.TableObjectMinimumSimilarity < 0 || o.TableObjectMinimumSimilarity > 100:
		return fmt.Errorf("%w: TableObjectMinimumSimilarity must be within 0..100, got %d", ErrInvalidOptions, o.TableObjectMinimumSimilarity)
	case o.TableArrayMinimumSimilarity < 0 || o.TableArrayMinimumSimilarity > 100:
		return fmt.Errorf("%w: TableArrayMinimumSimilarity must be within 0..100, got %d", ErrInvalidOptions, o.TableArrayMinimumSimilarity)
	case o.MaxDepth <= 0:
		return fmt.Errorf("%w: MaxDepth must be positive, got %d", ErrInvalidOptions, o.MaxDepth)
	}
	return nil
}

// eol returns the configured line ending.
func (o *Options) eol() string {
	if o.EOLStyle == EOLCRLF {
		return "\r\n"
	}
	return "\n"
}

// indentUnit returns one level of indentation.
func (o *Options) indentUnit() string {
	if o.UseTabToIndent {
		return "\t"
	}
	return spaces(o.IndentSpaces)
}

// commaString returns the element separator including padding.
func (o *Options) commaString() string {
	if o.CommaPadding {
		return ", "
	}
	return ","
}

// colonString returns the key/value separator including padding.
func (o *Options) colonString() string {
	if o.ColonPadding {
		return ": "
	}
	return ":"
}
