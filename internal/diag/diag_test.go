package diag

import (
	"errors"
	"testing"

	"regexparse/regexlib"
)

func parseErr(t *testing.T, pattern string) error {
	t.Helper()
	_, err := regexlib.Parse(pattern)
	if err == nil {
		t.Fatalf("%q should not parse", pattern)
	}
	return err
}

func TestCaret(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"+", "+\n^"},
		{"ab|*", "ab|*\n   ^"},
		{`x\q`, "x\\q\n  ^"},
		{"日本)", "日本)\n    ^"},
		{"\t)", "·)\n ^"},
	}
	for _, tt := range tests {
		if got := Caret(tt.pattern, parseErr(t, tt.pattern)); got != tt.want {
			t.Errorf("%q: got\n%s\nwant\n%s", tt.pattern, got, tt.want)
		}
	}
}

func TestCaretWithoutPosition(t *testing.T) {
	if got := Caret("(a", parseErr(t, "(a")); got != "" {
		t.Fatalf("NoRightParen: got %q", got)
	}
	if got := Caret("a", errors.New("boom")); got != "" {
		t.Fatalf("foreign error: got %q", got)
	}
}

func TestDescribe(t *testing.T) {
	err := parseErr(t, "a)")
	want := "invalid right parenthesis at position 1\n  a)\n   ^"
	if got := Describe("a)", err, true); got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
	if got := Describe("a)", err, false); got != err.Error() {
		t.Fatalf("no caret: got %q", got)
	}
	if got := Describe("", parseErr(t, ""), true); got != "empty pattern" {
		t.Fatalf("empty: got %q", got)
	}
}
