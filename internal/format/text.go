package format

import (
	"fmt"
	"io"

	"regexparse/internal/notation"
	"regexparse/regexlib"
)

type SexprEncoder struct {
	w      io.Writer
	indent int
}

func (e *SexprEncoder) Encode(n regexlib.Node) error {
	return notation.Write(e.w, n, e.indent)
}

type DOTEncoder struct {
	w io.Writer
}

func (e *DOTEncoder) Encode(n regexlib.Node) error {
	return regexlib.ExportDOT(e.w, n)
}

// PatternEncoder writes the canonical pattern text of the tree.
type PatternEncoder struct {
	w io.Writer
}

func (e *PatternEncoder) Encode(n regexlib.Node) error {
	_, err := fmt.Fprintln(e.w, regexlib.Pattern(n))
	return err
}
