package compactjson

import (
	"bytes"
	"io"
)

// Format renders an already-parsed value tree using the given options, nil
// meaning DefaultOptions. The result carries no trailing line ending; every
// physical line starts with Options.PrefixString.
func Format(v Value, opts *Options) (string, error) {
	o := resolveOptions(opts)
	if err := o.validate(); err != nil {
		return "", err
	}
	f := newFormatter(o)
	root, err := f.formatValue(0, v)
	if err != nil {
		return "", err
	}
	return o.PrefixString + root.value, nil
}

// Pretty parses a single JSON document and formats it, appending the
// configured line ending so the result is ready to write to a stream.
func Pretty(in []byte, opts *Options) ([]byte, error) {
	v, err := ParseBytes(in)
	if err != nil {
		return nil, err
	}
	o := resolveOptions(opts)
	out, err := Format(v, &o)
	if err != nil {
		return nil, err
	}
	return append([]byte(out), o.eol()...), nil
}

// PrettyTo formats a single JSON document onto the provided writer.
func PrettyTo(w io.Writer, in []byte, opts *Options) error {
	out, err := Pretty(in, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// ParseBytes parses one JSON document from a byte slice into a value tree.
func ParseBytes(in []byte) (Value, error) {
	return Parse(bytes.NewReader(in))
}

func resolveOptions(opts *Options) Options {
	if opts == nil {
		return *DefaultOptions
	}
	return *opts
}
