package notation

import (
	"bytes"
	"strings"
	"testing"

	"regexparse/regexlib"
)

func TestReadMatchesParse(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
	}{
		{"a", "(seq (char 'a'))"},
		{"a+", "(seq (plus (char 'a')))"},
		{"a|b|c", `
			; right-nested alternation
			(or (seq (char 'a'))
			    (or (seq (char 'b'))
			        (seq (char 'c'))))`},
		{"(ab)+", "(seq (plus (seq (char 'a') (char 'b'))))"},
		{`\+\\`, `(seq (char '+') (char '\\'))`},
		{"x?*", "(seq(star(question(char 'x'))))"},
		{"日", "(seq (char '日'))"},
		{"\t", `(seq (char '\t'))`},
	}
	for _, tt := range tests {
		got, err := Read("test", tt.text)
		if err != nil {
			t.Fatalf("%q: %v", tt.pattern, err)
		}
		want := regexlib.MustParse(tt.pattern)
		if !regexlib.Equal(got, want) {
			t.Fatalf("%q: got %v want %v", tt.pattern, got, want)
		}
	}
}

func TestReadStringRoundTrip(t *testing.T) {
	for _, p := range []string{"a(b|c)*d", `'\(\)"`, "((a|b)|c)+?", "\x00| "} {
		n := regexlib.MustParse(p)
		back, err := Read("rt", n.String())
		if err != nil {
			t.Fatalf("%q: %v (text %s)", p, err, n)
		}
		if !regexlib.Equal(back, n) {
			t.Fatalf("%q: got %v want %v", p, back, n)
		}
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"(plus)", "in.rx:1:1: plus takes one operand, got 0"},
		{"(seq (or (seq (char 'a'))))", "in.rx:1:6: or takes two operands, got 1"},
		{"(seq)", "in.rx:1:1: seq must not be empty"},
		{"(char)", "in.rx:1:1: char takes exactly one character literal"},
		{"(char 'a' (char 'b'))", "in.rx:1:1: char takes exactly one character literal"},
		{"(char 'ab')", "in.rx:1:1: bad character literal 'ab'"},
		{"(star 'a')", "in.rx:1:1: star does not take a character literal"},
		{"\n  (dot)", "in.rx:2:3: unknown node \"dot\""},
	}
	for _, tt := range tests {
		_, err := Read("in.rx", tt.text)
		if err == nil || err.Error() != tt.want {
			t.Errorf("%q: got %v want %s", tt.text, err, tt.want)
		}
	}
	for _, text := range []string{"", "(seq (char 'a')", "seq", "(SEQ (char 'a'))", "(seq (char 'a')) extra"} {
		if _, err := Read("in.rx", text); err == nil {
			t.Errorf("%q: expected a syntax error", text)
		}
	}
}

func TestWrite(t *testing.T) {
	n := regexlib.MustParse("a(b|c)*")
	tests := []struct {
		indent int
		want   string
	}{
		{0, "(seq (char 'a') (star (or (seq (char 'b')) (seq (char 'c')))))\n"},
		{2, `(seq
  (char 'a')
  (star
    (or
      (seq (char 'b'))
      (seq (char 'c')))))
`},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Write(&buf, n, tt.indent); err != nil {
			t.Fatal(err)
		}
		if buf.String() != tt.want {
			t.Errorf("indent %d: got\n%s\nwant\n%s", tt.indent, buf.String(), tt.want)
		}
		back, err := Read("w", buf.String())
		if err != nil || !regexlib.Equal(back, n) {
			t.Errorf("indent %d: output does not read back: %v", tt.indent, err)
		}
	}
}

func TestWriteFlatLeaf(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, regexlib.MustParse("xyz"), 4); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "(seq (char 'x') (char 'y') (char 'z'))" {
		t.Fatalf("got %s", got)
	}
}
