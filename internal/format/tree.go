package format

import (
	"encoding/json"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"regexparse/regexlib"
)

// treeNode is the shape shared by the JSON and YAML encoders.
type treeNode struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Char     string     `json:"char,omitempty" yaml:"char,omitempty"`
	Children []treeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func buildTree(n regexlib.Node) treeNode {
	if c, ok := n.(*regexlib.Char); ok {
		return treeNode{Kind: n.Kind().String(), Char: string(c.C)}
	}
	t := treeNode{Kind: n.Kind().String()}
	for _, k := range regexlib.Children(n) {
		if k != nil {
			t.Children = append(t.Children, buildTree(k))
		}
	}
	return t
}

type JSONEncoder struct {
	w      io.Writer
	indent int
}

func NewJSONEncoder(w io.Writer, indent int) *JSONEncoder {
	return &JSONEncoder{w: w, indent: indent}
}

func (e *JSONEncoder) Encode(n regexlib.Node) error {
	enc := json.NewEncoder(e.w)
	enc.SetEscapeHTML(false)
	if e.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", e.indent))
	}
	return enc.Encode(buildTree(n))
}

type YAMLEncoder struct {
	w      io.Writer
	indent int
}

func NewYAMLEncoder(w io.Writer, indent int) *YAMLEncoder {
	return &YAMLEncoder{w: w, indent: indent}
}

func (e *YAMLEncoder) Encode(n regexlib.Node) error {
	enc := yaml.NewEncoder(e.w)
	if e.indent > 0 {
		enc.SetIndent(e.indent)
	}
	if err := enc.Encode(buildTree(n)); err != nil {
		return err
	}
	return enc.Close()
}
