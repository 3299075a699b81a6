// Package compactjson renders an already-parsed JSON value tree into text
// that balances compactness against readability. Any given container is
// formatted one of four ways:
//
//   - arrays and objects are written on a single line, if their contents
//     aren't too complex and the resulting line wouldn't be too long;
//   - arrays (and, optionally, objects) can be written on multiple lines
//     with several simple items per line;
//   - groups of similar sibling containers are written as a table, one row
//     per sibling, with padded columns and decimal-aligned numbers;
//   - otherwise each element starts on its own line, indented one step
//     deeper than its parent.
//
// The engine is a pure recursive walk over the Value tree: no I/O, no
// shared mutable state, safe to run concurrently on independent trees.
//
// Basic usage:
//
//	src := []byte(`{"widget": {"size": [10, 20], "visible": true}}`)
//	out, err := compactjson.Pretty(src, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(string(out))
//
// To format a tree built programmatically, use Format with the Value
// constructors:
//
//	v := compactjson.NewObject(
//		compactjson.Member{Key: "id", Value: compactjson.NewInt(7)},
//		compactjson.Member{Key: "name", Value: compactjson.NewString("x")},
//	)
//	opts := *compactjson.DefaultOptions
//	opts.MaxInlineLength = 40
//	text, err := compactjson.Format(v, &opts)
package compactjson
