// Package format encodes regexlib trees for output.
package format

import (
	"fmt"
	"io"
	"sort"

	"regexparse/regexlib"
)

type Encoder interface {
	Encode(n regexlib.Node) error
}

type Options struct {
	Indent int // spaces per nesting level; 0 means compact where the format allows it
}

type factory func(w io.Writer, opts Options) Encoder

var encoders = map[string]factory{
	"sexpr":   func(w io.Writer, o Options) Encoder { return &SexprEncoder{w: w, indent: o.Indent} },
	"json":    func(w io.Writer, o Options) Encoder { return NewJSONEncoder(w, o.Indent) },
	"yaml":    func(w io.Writer, o Options) Encoder { return NewYAMLEncoder(w, o.Indent) },
	"dot":     func(w io.Writer, o Options) Encoder { return &DOTEncoder{w: w} },
	"pattern": func(w io.Writer, o Options) Encoder { return &PatternEncoder{w: w} },
}

// New returns the encoder registered under name.
func New(name string, w io.Writer, opts Options) (Encoder, error) {
	f, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	return f(w, opts), nil
}

// Names lists the registered formats in sorted order.
func Names() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is a registered format.
func Known(name string) bool {
	_, ok := encoders[name]
	return ok
}
