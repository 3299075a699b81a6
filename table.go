package compactjson

import (
	"sort"
	"strings"
)

// columnStats accumulates what is known about one column of a prospective
// table: which property it belongs to, how wide its widest cell is, and the
// digit counts needed to align numeric cells on the decimal point.
type columnStats struct {
	justify        bool
	propName       string
	propNameLength int
	orderSum       int
	count          int
	maxRawWidth    int
	asIsWidth      int
	class          valueClass
	intDigits      int
	fracDigits     int
}

func (f *formatter) newColumnStats() *columnStats {
	return &columnStats{justify: f.opts.JustifyNumbers, class: classNull}
}

// update folds one cell into the column's stats. index is the cell's
// position within its own container, used to pick a stable column order when
// some objects lack the property.
func (cs *columnStats) update(node *formattedNode, index int) {
	cs.orderSum += index
	cs.count++
	if node.valueLength > cs.maxRawWidth {
		cs.maxRawWidth = node.valueLength
	}

	switch {
	case cs.class == classNull:
		cs.class = node.class
	case cs.class == classFloat && node.class == classInt:
	case cs.class == classInt && node.class == classFloat:
		cs.class = classFloat
	case cs.class != node.class:
		cs.class = classMixed
	}

	switch node.class {
	case classFloat:
		if hasExponent(node.value) {
			// Exponent tokens are excluded from decimal alignment
			// and rendered as-is.
			if node.valueLength > cs.asIsWidth {
				cs.asIsWidth = node.valueLength
			}
			return
		}
		whole, frac, _ := strings.Cut(node.value, ".")
		if len(whole) > cs.intDigits {
			cs.intDigits = len(whole)
		}
		if len(frac) > cs.fracDigits {
			cs.fracDigits = len(frac)
		}
	case classInt:
		if len(node.value) > cs.intDigits {
			cs.intDigits = len(node.value)
		}
	}
}

// width is the display width every cell in this column is padded to.
func (cs *columnStats) width() int {
	if !cs.justify {
		return cs.maxRawWidth
	}
	switch cs.class {
	case classInt:
		if cs.asIsWidth > cs.intDigits {
			return cs.asIsWidth
		}
		return cs.intDigits
	case classFloat:
		w := cs.intDigits + cs.fracDigits
		if cs.fracDigits > 0 {
			w++
		}
		if cs.asIsWidth > w {
			w = cs.asIsWidth
		}
		return w
	default:
		return cs.maxRawWidth
	}
}

// formatCell pads one rendered cell to the column width. Numeric columns are
// right-justified on the decimal point; everything else, including exponent
// tokens, is left-justified.
func (cs *columnStats) formatCell(value string, valueLength int) string {
	if cs.justify && (cs.class == classInt || cs.class == classFloat) && !hasExponent(value) {
		aligned := alignDecimal(value, cs.fracDigits)
		return padLeft(aligned, len(aligned), cs.width())
	}
	return padRight(value, valueLength, cs.width())
}

// propertyStats checks whether this node's object children can be formatted
// as a table and, if so, returns per-property column stats in display order.
// Returns nil when the children are not eligible, not similar enough, or the
// padded row would overflow MaxInlineLength. A sibling that repeats a key is
// ineligible: one column cannot carry two cells of the same row, and dropping
// an occurrence would change the document.
func (f *formatter) propertyStats(item *formattedNode) []*columnStats {
	if len(item.children) < 2 {
		return nil
	}

	index := make(map[string]*columnStats)
	var stats []*columnStats
	for _, child := range item.children {
		if child.class != classObject || child.layout != layoutInline {
			return nil
		}
		seen := make(map[string]bool, len(child.children))
		for i, prop := range child.children {
			if seen[prop.name] {
				return nil
			}
			seen[prop.name] = true
			cs := index[prop.name]
			if cs == nil {
				cs = f.newColumnStats()
				cs.propName = prop.name
				cs.propNameLength = prop.nameLength
				index[prop.name] = cs
				stats = append(stats, cs)
			}
			cs.update(prop, i)
		}
	}
	if len(stats) == 0 {
		return nil
	}

	// Order columns by their average position. A crude metric, but it
	// handles the occasional missing property well enough.
	sort.SliceStable(stats, func(i, j int) bool {
		return float64(stats[i].orderSum)/float64(stats[i].count) <
			float64(stats[j].orderSum)/float64(stats[j].count)
	})

	totalPropCount := 0
	for _, cs := range stats {
		totalPropCount += cs.count
	}
	similarity := 100 * float64(totalPropCount) / float64(len(stats)*len(item.children))
	if similarity < float64(f.opts.TableObjectMinimumSimilarity) {
		return nil
	}

	if f.objectRowWidth(stats) > f.opts.MaxInlineLength {
		return nil
	}
	return stats
}

// listStats is the array analogue of propertyStats: one column per element
// index, similarity scored on how close the sibling lengths are.
func (f *formatter) listStats(item *formattedNode) []*columnStats {
	if len(item.children) < 2 {
		return nil
	}
	for _, child := range item.children {
		if child.class != classArray || child.layout != layoutInline {
			return nil
		}
	}

	minLength, maxLength := len(item.children[0].children), 0
	for _, child := range item.children {
		if len(child.children) > maxLength {
			maxLength = len(child.children)
		}
		if len(child.children) < minLength {
			minLength = len(child.children)
		}
	}
	if maxLength == 0 {
		return nil
	}

	similarity := 100 * float64(minLength) / float64(maxLength)
	if similarity < float64(f.opts.TableArrayMinimumSimilarity) {
		return nil
	}

	stats := make([]*columnStats, maxLength)
	for i := range stats {
		stats[i] = f.newColumnStats()
	}
	for _, row := range item.children {
		for i, cell := range row.children {
			stats[i].update(cell, i)
		}
	}

	if f.arrayRowWidth(stats) > f.opts.MaxInlineLength {
		return nil
	}
	return stats
}

// objectRowWidth is the width of one fully padded object table row,
// including brackets, colons and commas.
func (f *formatter) objectRowWidth(stats []*columnStats) int {
	w := 4
	for _, cs := range stats {
		w += cs.propNameLength + cs.width()
	}
	w += len(f.colon) * len(stats)
	w += len(f.comma) * (len(stats) - 1)
	return w
}

func (f *formatter) arrayRowWidth(stats []*columnStats) int {
	w := 4
	for _, cs := range stats {
		w += cs.width()
	}
	w += len(f.comma) * (len(stats) - 1)
	return w
}

// formatObjectTableRow rewrites one object onto a single line, each property
// padded to its column. Missing properties leave blank space so later
// columns still start at the same position, with no padding token written.
func (f *formatter) formatObjectTableRow(item *formattedNode, stats []*columnStats) {
	highestNonBlank := -1
	segments := make([]string, len(stats))
	for colIndex, cs := range stats {
		var prop *formattedNode
		for _, child := range item.children {
			if child.name == cs.propName {
				prop = child
				break
			}
		}
		if prop == nil {
			segments[colIndex] = spaces(cs.propNameLength + len(f.colon) + cs.width())
			continue
		}
		segments[colIndex] = cs.propName + f.colon + cs.formatCell(prop.value, prop.valueLength)
		highestNonBlank = colIndex
	}

	var b strings.Builder
	b.WriteString("{ ")
	needsComma := false
	for i, segment := range segments {
		if needsComma && i <= highestNonBlank {
			b.WriteString(f.comma)
		} else if i > 0 {
			b.WriteString(spaces(len(f.comma)))
		}
		b.WriteString(segment)
		needsComma = strings.TrimSpace(segment) != ""
	}
	b.WriteString(" }")

	item.value = b.String()
	item.layout = layoutTableRow
}

// formatArrayTableRow rewrites one array onto a single line, each element
// padded to its column. Rows shorter than the widest sibling are padded out
// so the closing brackets line up.
func (f *formatter) formatArrayTableRow(item *formattedNode, stats []*columnStats) {
	var b strings.Builder
	b.WriteString("[ ")
	for i, child := range item.children {
		if i > 0 {
			b.WriteString(f.comma)
		}
		b.WriteString(stats[i].formatCell(child.value, child.valueLength))
	}
	for i := len(item.children); i < len(stats); i++ {
		pad := stats[i].width()
		if i > 0 {
			pad += len(f.comma)
		}
		b.WriteString(spaces(pad))
	}
	b.WriteString(" ]")

	item.value = b.String()
	item.valueLength = f.arrayRowWidth(stats)
	item.layout = layoutTableRow
}

// tryTableArrayOfObjects formats this array with one child object per line,
// those objects padded to line up as a table.
func (f *formatter) tryTableArrayOfObjects(item *formattedNode) bool {
	stats := f.propertyStats(item)
	if stats == nil {
		return false
	}
	rowWidth := f.objectRowWidth(stats)

	// Reformat the immediate children with the computed column widths.
	// Their own children are not recomputed, so this is not recursive.
	for _, child := range item.children {
		f.formatObjectTableRow(child, stats)
		child.valueLength = rowWidth
	}

	if !f.tryMultilineCompactArray(item) {
		f.expandArray(item)
	}
	return true
}

// tryTableArrayOfArrays formats this array with one child array per line,
// padded into columns by element index.
func (f *formatter) tryTableArrayOfArrays(item *formattedNode) bool {
	stats := f.listStats(item)
	if stats == nil {
		return false
	}
	rowWidth := f.arrayRowWidth(stats)

	for _, child := range item.children {
		f.formatArrayTableRow(child, stats)
		child.valueLength = rowWidth
	}

	if !f.tryMultilineCompactArray(item) {
		f.expandArray(item)
	}
	return true
}

// tryTableObjectOfObjects formats this object with one child object per
// line, padded to line up as a table. Property names of the outer object are
// aligned so the rows start at one column.
func (f *formatter) tryTableObjectOfObjects(item *formattedNode) bool {
	stats := f.propertyStats(item)
	if stats == nil {
		return false
	}
	rowWidth := f.objectRowWidth(stats)

	for _, child := range item.children {
		f.formatObjectTableRow(child, stats)
		child.valueLength = rowWidth
	}

	if !f.tryMultilineCompactObject(item, true) {
		f.expandObject(item, true)
	}
	return true
}

// tryTableObjectOfArrays formats this object with one child array per line,
// padded into columns by element index.
func (f *formatter) tryTableObjectOfArrays(item *formattedNode) bool {
	stats := f.listStats(item)
	if stats == nil {
		return false
	}
	rowWidth := f.arrayRowWidth(stats)

	for _, child := range item.children {
		f.formatArrayTableRow(child, stats)
		child.valueLength = rowWidth
	}

	if !f.tryMultilineCompactObject(item, true) {
		f.expandObject(item, true)
	}
	return true
}
