package compactjson

import (
	"fmt"
	"strings"
)

// layoutKind records which of the four layout strategies a node ended up
// with. tableRow marks a container rewritten as one padded line of a table.
type layoutKind uint8

const (
	layoutInline layoutKind = iota
	layoutTableRow
	layoutMultilineCompact
	layoutExpanded
)

// inlineLike reports whether a layout occupies exactly one physical line.
func (l layoutKind) inlineLike() bool {
	return l == layoutInline || l == layoutTableRow
}

// valueClass is the fine-grained shape used by layout decisions. It splits
// numbers into integer and float so numeric columns can align on the decimal
// point, and has a mixed class for columns holding several shapes.
type valueClass uint8

const (
	classNull valueClass = iota
	classBool
	classInt
	classFloat
	classString
	classArray
	classObject
	classMixed
)

// formattedNode carries a JSON element and how it has been formatted. value
// holds the rendered text and valueLength its display width, excluding
// indentation and any leading property name.
type formattedNode struct {
	name        string
	nameLength  int
	value       string
	valueLength int
	complexity  int
	depth       int
	class       valueClass
	layout      layoutKind
	children    []*formattedNode
}

// cleanup drops grandchildren that can no longer influence layout, keeping
// the walk's working set proportional to the tree depth.
func (n *formattedNode) cleanup() {
	if n.layout != layoutInline {
		n.children = nil
	}
	for _, child := range n.children {
		child.children = nil
	}
}

// Complexity returns the visual-complexity metric for v: primitives and
// empty containers score 0, and a non-empty container scores one more than
// its most complex child.
func Complexity(v Value) int {
	switch v.kind {
	case Array:
		max := -1
		for _, item := range v.items {
			if c := Complexity(item); c > max {
				max = c
			}
		}
		return max + 1
	case Object:
		max := -1
		for _, m := range v.members {
			if c := Complexity(m.Value); c > max {
				max = c
			}
		}
		return max + 1
	default:
		return 0
	}
}

// formatter performs one top-down formatting pass. It holds only the
// resolved Options and a few derived strings; all real state lives in the
// formattedNode tree it builds.
type formatter struct {
	opts   Options
	eol    string
	indent string
	comma  string
	colon  string

	indentCache map[int]string
}

func newFormatter(opts Options) *formatter {
	return &formatter{
		opts:        opts,
		eol:         opts.eol(),
		indent:      opts.indentUnit(),
		comma:       opts.commaString(),
		colon:       opts.colonString(),
		indentCache: make(map[int]string),
	}
}

func (f *formatter) strLen(s string) int {
	return stringWidth(s, f.opts.EastAsianStringWidths)
}

// writeIndent appends the per-line prefix and depth levels of indentation.
func (f *formatter) writeIndent(b *strings.Builder, depth int) {
	pad, ok := f.indentCache[depth]
	if !ok {
		pad = strings.Repeat(f.indent, depth)
		f.indentCache[depth] = pad
	}
	b.WriteString(f.opts.PrefixString)
	b.WriteString(pad)
}

// formatValue is the base of recursion. Nearly everything comes through
// here.
func (f *formatter) formatValue(depth int, v Value) (*formattedNode, error) {
	if depth > f.opts.MaxDepth {
		return nil, fmt.Errorf("%w: nesting beyond %d levels", ErrTooDeep, f.opts.MaxDepth)
	}
	var (
		node *formattedNode
		err  error
	)
	switch v.kind {
	case Array:
		node, err = f.formatArray(depth, v)
	case Object:
		node, err = f.formatObject(depth, v)
	default:
		node, err = f.formatScalar(depth, v)
	}
	if err != nil {
		return nil, err
	}
	node.cleanup()
	return node, nil
}

// formatScalar formats a JSON element other than an array or object.
func (f *formatter) formatScalar(depth int, v Value) (*formattedNode, error) {
	node := &formattedNode{depth: depth}
	switch v.kind {
	case Null:
		node.value = "null"
		node.class = classNull
	case Bool:
		node.class = classBool
		if v.boolVal {
			node.value = "true"
		} else {
			node.value = "false"
		}
	case Number:
		if !isJSONNumber(v.numText) {
			return nil, fmt.Errorf("%w: number %q has no JSON representation", ErrUnsupportedValue, v.numText)
		}
		node.value = v.numText
		if strings.ContainsAny(v.numText, ".eE") {
			node.class = classFloat
		} else {
			node.class = classInt
		}
	case String:
		node.value = quoteString(v.strVal, f.opts.EnsureASCII)
		node.class = classString
	default:
		return nil, fmt.Errorf("%w: invalid value", ErrUnsupportedValue)
	}
	node.valueLength = f.strLen(node.value)
	return node, nil
}

func (f *formatter) formatArray(depth int, v Value) (*formattedNode, error) {
	if len(v.items) == 0 {
		return f.emptyContainer(depth, classArray), nil
	}

	// Recursively format all of this array's elements.
	children := make([]*formattedNode, len(v.items))
	maxComplexity := 0
	for i, item := range v.items {
		child, err := f.formatValue(depth+1, item)
		if err != nil {
			return nil, err
		}
		children[i] = child
		if child.complexity > maxComplexity {
			maxComplexity = child.complexity
		}
	}

	node := &formattedNode{
		complexity: maxComplexity + 1,
		depth:      depth,
		class:      classArray,
		children:   children,
	}

	if f.tryInlineArray(node) {
		return node, nil
	}

	f.justifyParallelNumbers(node.children)

	if f.tryTableArrayOfObjects(node) {
		return node, nil
	}
	if f.tryTableArrayOfArrays(node) {
		return node, nil
	}
	if f.tryMultilineCompactArray(node) {
		return node, nil
	}
	f.expandArray(node)
	return node, nil
}

func (f *formatter) formatObject(depth int, v Value) (*formattedNode, error) {
	if len(v.members) == 0 {
		return f.emptyContainer(depth, classObject), nil
	}

	// Recursively format all of this object's property values. Duplicate
	// keys are kept in document order.
	children := make([]*formattedNode, len(v.members))
	maxComplexity := 0
	for i, m := range v.members {
		child, err := f.formatValue(depth+1, m.Value)
		if err != nil {
			return nil, err
		}
		child.name = quoteString(m.Key, f.opts.EnsureASCII)
		child.nameLength = f.strLen(child.name)
		children[i] = child
		if child.complexity > maxComplexity {
			maxComplexity = child.complexity
		}
	}

	node := &formattedNode{
		complexity: maxComplexity + 1,
		depth:      depth,
		class:      classObject,
		children:   children,
	}

	if f.tryInlineObject(node) {
		return node, nil
	}
	if f.tryTableObjectOfObjects(node) {
		return node, nil
	}
	if f.tryTableObjectOfArrays(node) {
		return node, nil
	}
	if f.tryMultilineCompactObject(node, false) {
		return node, nil
	}
	f.expandObject(node, false)
	return node, nil
}

func (f *formatter) emptyContainer(depth int, class valueClass) *formattedNode {
	node := &formattedNode{depth: depth, class: class}
	if class == classArray {
		node.value = "[]"
	} else {
		node.value = "{}"
	}
	node.valueLength = 2
	return node
}

// bracketPadding decides whether an inlined container gets spaces inside its
// brackets: containers holding other non-empty containers use the nested
// setting, everything else the simple one.
func (f *formatter) bracketPadding(item *formattedNode) bool {
	if item.complexity >= 2 {
		return f.opts.NestedBracketPadding
	}
	return f.opts.SimpleBracketPadding
}

// tryInlineArray formats this array in a single line, if possible.
func (f *formatter) tryInlineArray(item *formattedNode) bool {
	if item.depth <= f.opts.AlwaysExpandDepth || item.complexity > f.opts.MaxInlineComplexity {
		return false
	}
	for _, child := range item.children {
		if child.layout != layoutInline {
			return false
		}
	}

	pad := f.bracketPadding(item)
	lineLength := 2
	if pad {
		lineLength += 2
	}
	lineLength += (len(item.children) - 1) * len(f.comma)
	for _, child := range item.children {
		lineLength += child.valueLength
	}
	if lineLength > f.opts.MaxInlineLength {
		return false
	}

	var b strings.Builder
	b.WriteByte('[')
	if pad {
		b.WriteByte(' ')
	}
	for i, child := range item.children {
		if i > 0 {
			b.WriteString(f.comma)
		}
		b.WriteString(child.value)
	}
	if pad {
		b.WriteByte(' ')
	}
	b.WriteByte(']')

	item.value = b.String()
	item.valueLength = lineLength
	item.layout = layoutInline
	return true
}

// tryInlineObject formats this object as a single line, if possible.
func (f *formatter) tryInlineObject(item *formattedNode) bool {
	if item.depth <= f.opts.AlwaysExpandDepth || item.complexity > f.opts.MaxInlineComplexity {
		return false
	}
	for _, child := range item.children {
		if child.layout != layoutInline {
			return false
		}
	}

	pad := f.bracketPadding(item)
	lineLength := 2
	if pad {
		lineLength += 2
	}
	lineLength += len(item.children) * len(f.colon)
	lineLength += (len(item.children) - 1) * len(f.comma)
	for _, child := range item.children {
		lineLength += child.nameLength + child.valueLength
	}
	if lineLength > f.opts.MaxInlineLength {
		return false
	}

	var b strings.Builder
	b.WriteByte('{')
	if pad {
		b.WriteByte(' ')
	}
	for i, child := range item.children {
		if i > 0 {
			b.WriteString(f.comma)
		}
		b.WriteString(child.name)
		b.WriteString(f.colon)
		b.WriteString(child.value)
	}
	if pad {
		b.WriteByte(' ')
	}
	b.WriteByte('}')

	item.value = b.String()
	item.valueLength = lineLength
	item.layout = layoutInline
	return true
}

// tryMultilineCompactArray formats this array spanning multiple lines, but
// with several items per line, if possible. A new line starts whenever the
// running width exceeds MaxInlineLength or the element style switches
// between single-line and multi-line.
func (f *formatter) tryMultilineCompactArray(item *formattedNode) bool {
	if item.depth <= f.opts.AlwaysExpandDepth || item.complexity > f.opts.MaxCompactListComplexity {
		return false
	}

	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(f.eol)
	f.writeIndent(&b, item.depth+1)

	lineLength := 0
	for i, child := range item.children {
		segmentLength := child.valueLength + len(f.comma)
		if i != 0 {
			prev := item.children[i-1]
			newLine := false
			switch {
			case !child.layout.inlineLike():
				newLine = prev.layout.inlineLike()
			case !prev.layout.inlineLike():
				newLine = true
			case lineLength+segmentLength > f.opts.MaxInlineLength+len(f.comma) && lineLength > 0:
				newLine = true
			}
			if newLine {
				// Comma padding is dropped at a line break so no
				// line ends in whitespace.
				b.WriteByte(',')
				b.WriteString(f.eol)
				f.writeIndent(&b, item.depth+1)
				lineLength = 0
			} else {
				b.WriteString(f.comma)
			}
		}
		b.WriteString(child.value)
		lineLength += segmentLength
	}

	b.WriteString(f.eol)
	f.writeIndent(&b, item.depth)
	b.WriteByte(']')

	item.value = b.String()
	item.layout = layoutMultilineCompact
	return true
}

// tryMultilineCompactObject is the object variant of the packed multi-line
// layout, available only when MultilineCompactObject is set. forceAlignNames
// pads property names to a common width, which table layouts require.
func (f *formatter) tryMultilineCompactObject(item *formattedNode, forceAlignNames bool) bool {
	if !f.opts.MultilineCompactObject ||
		item.depth <= f.opts.AlwaysExpandDepth ||
		item.complexity > f.opts.MaxCompactListComplexity {
		return false
	}

	maxNameLength := 0
	for _, child := range item.children {
		if child.nameLength > maxNameLength {
			maxNameLength = child.nameLength
		}
	}

	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(f.eol)
	f.writeIndent(&b, item.depth+1)

	lineLength := 0
	for i, child := range item.children {
		name := child.name
		if forceAlignNames {
			name += spaces(maxNameLength - child.nameLength)
			child.nameLength = maxNameLength
		}
		segmentLength := child.nameLength + len(f.colon) + child.valueLength + len(f.comma)
		if i != 0 {
			prev := item.children[i-1]
			newLine := false
			switch {
			case !child.layout.inlineLike():
				newLine = prev.layout.inlineLike()
			case !prev.layout.inlineLike():
				newLine = true
			case lineLength+segmentLength > f.opts.MaxInlineLength+len(f.comma) && lineLength > 0:
				newLine = true
			}
			if newLine {
				b.WriteByte(',')
				b.WriteString(f.eol)
				f.writeIndent(&b, item.depth+1)
				lineLength = 0
			} else {
				b.WriteString(f.comma)
			}
		}
		b.WriteString(name)
		b.WriteString(f.colon)
		b.WriteString(child.value)
		lineLength += segmentLength
	}

	b.WriteString(f.eol)
	f.writeIndent(&b, item.depth)
	b.WriteByte('}')

	item.value = b.String()
	item.layout = layoutMultilineCompact
	return true
}

// expandArray writes this array with each element starting on its own line.
// The elements might span multiple lines themselves.
func (f *formatter) expandArray(item *formattedNode) {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(f.eol)
	for i, child := range item.children {
		if i > 0 {
			b.WriteByte(',')
			b.WriteString(f.eol)
		}
		f.writeIndent(&b, child.depth)
		b.WriteString(child.value)
	}
	b.WriteString(f.eol)
	f.writeIndent(&b, item.depth)
	b.WriteByte(']')

	item.value = b.String()
	item.layout = layoutExpanded
}

// expandObject writes this object with each property starting on its own
// line. Property names are padded to a common width when the option demands
// it or a table layout has already aligned them.
func (f *formatter) expandObject(item *formattedNode, forceAlignNames bool) {
	maxNameLength := 0
	for _, child := range item.children {
		if child.nameLength > maxNameLength {
			maxNameLength = child.nameLength
		}
	}

	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(f.eol)
	for i, child := range item.children {
		if i > 0 {
			b.WriteByte(',')
			b.WriteString(f.eol)
		}
		f.writeIndent(&b, child.depth)
		b.WriteString(child.name)
		if f.opts.AlignExpandedPropertyNames || forceAlignNames {
			b.WriteString(spaces(maxNameLength - child.nameLength))
		}
		b.WriteString(f.colon)
		b.WriteString(child.value)
	}
	b.WriteString(f.eol)
	f.writeIndent(&b, item.depth)
	b.WriteByte('}')

	item.value = b.String()
	item.layout = layoutExpanded
}
